// Package svixclient provides the primary entry point for constructing a
// Svix API client that implements the svix.Client interface.
//
// It wires the region resolver, the shared HTTP transport and the settings
// loader to the resource interfaces and types defined in the svix package.
// Most applications import svixclient to build a client, then use the
// returned svix.Client to reach resource-specific clients, for example
// Applications(), Endpoints(), Messages(), etc.
//
// Quick start
//
//	import (
//	  "context"
//	  "log"
//
//	  "github.com/fivetwenty-io/svix-client/pkg/svix"
//	  "github.com/fivetwenty-io/svix-client/pkg/svixclient"
//	)
//
//	func example() {
//	  ctx := context.Background()
//
//	  // The ".eu" suffix routes requests to https://api.eu.svix.com.
//	  cli := svixclient.New("testsk_xxx.eu", nil)
//
//	  app, err := cli.Applications().GetOrCreate(ctx, svix.ApplicationIn{
//	    Name: "Acme",
//	    UID:  svix.String("acme"),
//	  }, nil)
//	  if err != nil { log.Fatal(err) }
//
//	  _, err = cli.Messages().Create(ctx, app.ID, svix.MessageIn{
//	    EventType: "invoice.paid",
//	    Payload:   map[string]any{"id": "inv_1"},
//	  }, &svix.PostOptions{IdempotencyKey: svix.String("invoice-inv_1")})
//	  if err != nil { log.Fatal(err) }
//	}
//
// # Settings files and environment
//
// NewFromConfig reads a YAML file and then SVIX_TOKEN, SVIX_SERVER_URL,
// SVIX_TIMEOUT, SVIX_DEBUG and SVIX_RETRY_MAX from the environment:
//
//	token: testsk_xxx.eu
//	timeout: 30s      # "none" or null: never time out
//	retry_max: 2
//
// # Helpers
//
// NewWithServerURL pins the API host, for example a self-hosted server.
// NewFromEnv is NewFromConfig without a file.
package svixclient
