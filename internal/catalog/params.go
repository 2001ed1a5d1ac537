package catalog

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/fivetwenty-io/svix-client/internal/constants"
	"github.com/oapi-codegen/runtime"
)

// Query holds the query parameters of one call. Only parameters present in
// the map are sent.
type Query map[string]interface{}

// Params is the wire-parameter record of one call.
type Params struct {
	Path           map[string]string
	Query          Query
	IdempotencyKey *string
	Body           interface{}
}

// Optional adds value to q under name when it is set.
func Optional[T any](q Query, name string, value *T) {
	if value != nil {
		q[name] = *value
	}
}

// OptionalSlice adds values to q under name when the slice is not empty.
func OptionalSlice[T any](q Query, name string, values []T) {
	if len(values) > 0 {
		q[name] = values
	}
}

// validate checks params against the descriptor of op.
func (p Params) validate(op Operation) error {
	for _, name := range op.PathParams() {
		if p.Path[name] == "" {
			return fmt.Errorf("%w %q for %s", constants.ErrMissingPathParam, name, op.ID)
		}
	}

	for name := range p.Query {
		if !op.AcceptsQuery(name) {
			return fmt.Errorf("%w: %q for %s", constants.ErrUnexpectedQueryParam, name, op.ID)
		}
	}

	if p.IdempotencyKey != nil && !op.Idempotent {
		return fmt.Errorf("%w: %s", constants.ErrIdempotencyNotAccepted, op.ID)
	}

	if op.Body && p.Body == nil {
		return fmt.Errorf("%w: %s", constants.ErrMissingBody, op.ID)
	}

	if !op.Body && p.Body != nil {
		return fmt.Errorf("%w: %s", constants.ErrUnexpectedBody, op.ID)
	}

	return nil
}

// buildPath substitutes the escaped path parameters into the path template.
func (p Params) buildPath(op Operation) (string, error) {
	path := op.Path

	for _, name := range op.PathParams() {
		styled, err := runtime.StyleParamWithLocation("simple", false, name, runtime.ParamLocationPath, p.Path[name])
		if err != nil {
			return "", fmt.Errorf("encoding path parameter %q: %w", name, err)
		}

		path = strings.ReplaceAll(path, "{"+name+"}", styled)
	}

	return path, nil
}

// buildQuery encodes the query parameters in form style; slices are exploded
// into repeated keys.
func (p Params) buildQuery() (url.Values, error) {
	values := url.Values{}

	for name, value := range p.Query {
		styled, err := runtime.StyleParamWithLocation("form", true, name, runtime.ParamLocationQuery, value)
		if err != nil {
			return nil, fmt.Errorf("encoding query parameter %q: %w", name, err)
		}

		parsed, err := url.ParseQuery(styled)
		if err != nil {
			return nil, fmt.Errorf("encoding query parameter %q: %w", name, err)
		}

		for key, list := range parsed {
			values[key] = append(values[key], list...)
		}
	}

	return values, nil
}
