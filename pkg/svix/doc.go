// Package svix provides types, interfaces, and helpers for working with the
// Svix webhook API.
//
// # Overview
//
// The svix package defines the request and response models (e.g.,
// ApplicationIn, EndpointOut, MessageAttemptOut), the per-call option
// structs, and the interfaces of the resource clients (e.g.,
// ApplicationsClient, EndpointsClient). The concrete implementation is built
// by the svixclient package, which resolves the regional host from the
// token and wires the HTTP transport.
//
// Getting a client
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
//	  cli := svixclient.New("testsk_xxx.eu", nil)
//
//	  app, err := cli.Applications().Create(ctx, svix.ApplicationIn{Name: "demo"}, &svix.PostOptions{
//	    IdempotencyKey: svix.String("create-demo"),
//	  })
//	  if err != nil { log.Fatal(err) }
//	  _ = app
//	}
//
// # Options
//
// Every optional parameter is a pointer; nil means "not sent" and lets the
// server apply its default. A nil options pointer means all defaults. The
// String, Int32, Bool, Order and Duration helpers build the pointers inline.
//
// # Pagination
//
// List operations return a ListResponse carrying an opaque Iterator. Feed it
// back through the options to get the next page, or let a
// PaginationIterator do it:
//
//	it := svix.NewPaginationIterator(ctx, func(ctx context.Context, cur *string) (*svix.ListResponseApplicationOut, error) {
//	  return cli.Applications().List(ctx, &svix.ApplicationListOptions{Iterator: cur})
//	})
//	for it.HasNext() {
//	  app, err := it.Next()
//	  if err != nil { break }
//	  _ = app
//	}
//
// # Errors
//
// Every failed call returns one of three error types: TransportError when no
// response was received (IsTimeout reports timeouts), APIError for non-2xx
// responses, and SerializationError when a successful response body could
// not be decoded. Helpers such as IsNotFound and IsConflict branch on common
// API error cases.
package svix
