package client

import (
	"context"
	"fmt"
	"net/url"
	"slices"
	"strings"

	"github.com/fivetwenty-io/lockstep-client/internal/constants"
	"github.com/fivetwenty-io/lockstep-client/internal/http"
	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
	"go.uber.org/multierr"
)

// Dispatcher sends one request and returns the raw response.
type Dispatcher interface {
	Do(ctx context.Context, req *http.Request) (*http.Response, error)
}

// Route describes an endpoint's request: verb, path template and the query
// parameters it accepts. Path parameters are written as {name}.
type Route struct {
	Name   string
	Method string
	Path   string
	Query  []string
	Accept string
}

// Endpoint is a Route plus the decoder for its success payload.
type Endpoint[T any] struct {
	Route
	Decode lockstep.Decoder[T]
}

// Call holds the arguments of one endpoint invocation.
type Call struct {
	Path  map[string]string
	Query url.Values
	Body  any
}

// Invoke validates call against ep, dispatches it and decodes the response.
func Invoke[T any](ctx context.Context, d Dispatcher, ep Endpoint[T], call Call) (*lockstep.Response[T], error) {
	resp, err := dispatch(ctx, d, ep.Route, call)
	if err != nil {
		return nil, err
	}

	result, err := lockstep.NewResponse(resp.Raw(), ep.Decode)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ep.Name, err)
	}

	return result, nil
}

// InvokeRaw validates call against route and dispatches it without decoding.
func InvokeRaw(ctx context.Context, d Dispatcher, route Route, call Call) (*lockstep.RawResponse, error) {
	resp, err := dispatch(ctx, d, route, call)
	if err != nil {
		return nil, err
	}

	return resp.Raw(), nil
}

func dispatch(ctx context.Context, d Dispatcher, route Route, call Call) (*http.Response, error) {
	path, err := ExpandPath(route.Path, call.Path)
	err = multierr.Append(err, checkQuery(route, call.Query))

	if err != nil {
		return nil, fmt.Errorf("%s: %w: %w", route.Name, constants.ErrInvalidRequest, err)
	}

	resp, err := d.Do(ctx, &http.Request{
		Name:   route.Name,
		Method: route.Method,
		Path:   path,
		Query:  call.Query,
		Body:   call.Body,
		Accept: route.Accept,
	})
	if err != nil {
		return nil, fmt.Errorf("%s: %w", route.Name, err)
	}

	return resp, nil
}

// ExpandPath substitutes {name} segments of template with escaped values
// from params. Every placeholder needs a non-empty value and every param must
// match a placeholder.
func ExpandPath(template string, params map[string]string) (string, error) {
	var (
		b    strings.Builder
		errs error
		used = make(map[string]bool, len(params))
	)

	rest := template
	for {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			b.WriteString(rest)

			break
		}

		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			b.WriteString(rest)

			break
		}

		name := rest[open+1 : open+end]
		b.WriteString(rest[:open])

		value, ok := params[name]
		switch {
		case !ok || value == "":
			errs = multierr.Append(errs, fmt.Errorf("%w: %s", constants.ErrMissingPathParameter, name))
		default:
			b.WriteString(url.PathEscape(value))
		}

		used[name] = true
		rest = rest[open+end+1:]
	}

	for name := range params {
		if !used[name] {
			errs = multierr.Append(errs, fmt.Errorf("%w: path %s", constants.ErrUndeclaredParameter, name))
		}
	}

	if errs != nil {
		return "", errs
	}

	return b.String(), nil
}

func checkQuery(route Route, query url.Values) error {
	var errs error

	for key := range query {
		if !slices.Contains(route.Query, key) {
			errs = multierr.Append(errs, fmt.Errorf("%w: query %s", constants.ErrUndeclaredParameter, key))
		}
	}

	return errs
}
