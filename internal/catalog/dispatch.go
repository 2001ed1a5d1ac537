package catalog

import (
	"context"
	"encoding/json"

	"github.com/fivetwenty-io/svix-client/internal/config"
	"github.com/fivetwenty-io/svix-client/internal/constants"
	internalhttp "github.com/fivetwenty-io/svix-client/internal/http"
	"github.com/fivetwenty-io/svix-client/pkg/svix"
)

// Dispatch performs operation id and decodes the response body into T.
// Transport and API errors are returned as produced by the transport; a body
// that does not decode into T is a *svix.SerializationError.
func Dispatch[T any](ctx context.Context, cfg *config.Configuration, id OperationID, params Params) (*T, error) {
	resp, err := send(ctx, cfg, id, params)
	if err != nil {
		return nil, err
	}

	var out T

	err = json.Unmarshal(resp.Body, &out)
	if err != nil {
		return nil, &svix.SerializationError{StatusCode: resp.StatusCode, Body: resp.Body, Err: err}
	}

	return &out, nil
}

// DispatchNoContent performs operation id and discards any response body.
func DispatchNoContent(ctx context.Context, cfg *config.Configuration, id OperationID, params Params) error {
	_, err := send(ctx, cfg, id, params)

	return err
}

func send(ctx context.Context, cfg *config.Configuration, id OperationID, params Params) (*internalhttp.Response, error) {
	op, err := Lookup(id)
	if err != nil {
		return nil, err
	}

	err = params.validate(op)
	if err != nil {
		return nil, err
	}

	path, err := params.buildPath(op)
	if err != nil {
		return nil, err
	}

	query, err := params.buildQuery()
	if err != nil {
		return nil, err
	}

	headers := map[string]string{
		constants.HeaderAuthorization: "Bearer " + cfg.Token,
		constants.HeaderUserAgent:     cfg.UserAgent,
	}

	if params.IdempotencyKey != nil {
		headers[constants.HeaderIdempotencyKey] = *params.IdempotencyKey
	}

	resp, err := cfg.Transport.Do(ctx, &internalhttp.Request{
		Method:  op.Method,
		BaseURL: cfg.BaseURL,
		Path:    path,
		Query:   query,
		Body:    params.Body,
		Headers: headers,
	})
	if err != nil {
		return nil, err //nolint:wrapcheck // typed transport and API errors reach the caller unchanged
	}

	return resp, nil
}
