// Package endpoint fetches schemas from live GraphQL endpoints.
package endpoint

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"git.sr.ht/~emersion/gqlclient"

	"github.com/sanixdarker/gql-jddf/internal/introspection"
)

// DefaultTimeout bounds an introspection request when the caller does not
// pick one.
const DefaultTimeout = 30 * time.Second

// Client talks to one GraphQL endpoint.
type Client struct {
	gql *gqlclient.Client
}

// New builds a client for the endpoint at url. Extra headers ride on every
// request, so auth tokens pass through.
func New(url string, headers http.Header, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	hc := &http.Client{
		Timeout: timeout,
		Transport: &headerTransport{
			base:    http.DefaultTransport,
			headers: headers,
		},
	}
	return &Client{gql: gqlclient.New(url, hc)}
}

// Introspect runs the standard introspection query and returns the schema,
// enforcing the same envelope checks as the document decoder.
func (c *Client) Introspect(ctx context.Context) (*introspection.Schema, error) {
	op := gqlclient.NewOperation(introspection.Query)
	var data struct {
		Schema *introspection.Schema `json:"__schema"`
	}
	if err := c.gql.Execute(ctx, op, &data); err != nil {
		return nil, fmt.Errorf("introspect endpoint: %w", err)
	}
	if data.Schema == nil {
		return nil, fmt.Errorf("%w: no __schema object", introspection.ErrMalformedEnvelope)
	}
	if data.Schema.QueryType == nil || data.Schema.QueryType.Name == "" {
		return nil, fmt.Errorf("%w: no query root name", introspection.ErrMalformedEnvelope)
	}
	return data.Schema, nil
}

// IntrospectRaw runs the standard introspection query and returns the
// __schema object exactly as the server sent it, undecoded.
func (c *Client) IntrospectRaw(ctx context.Context) (json.RawMessage, error) {
	op := gqlclient.NewOperation(introspection.Query)
	var data struct {
		Schema json.RawMessage `json:"__schema"`
	}
	if err := c.gql.Execute(ctx, op, &data); err != nil {
		return nil, fmt.Errorf("introspect endpoint: %w", err)
	}
	if len(data.Schema) == 0 || string(data.Schema) == "null" {
		return nil, fmt.Errorf("%w: no __schema object", introspection.ErrMalformedEnvelope)
	}
	return data.Schema, nil
}

// headerTransport adds fixed headers to every outgoing request.
type headerTransport struct {
	base    http.RoundTripper
	headers http.Header
}

func (t *headerTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	if len(t.headers) == 0 {
		return t.base.RoundTrip(req)
	}
	clone := req.Clone(req.Context())
	for key, values := range t.headers {
		for _, v := range values {
			clone.Header.Set(key, v)
		}
	}
	return t.base.RoundTrip(clone)
}
