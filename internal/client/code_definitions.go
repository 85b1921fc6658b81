package client

import (
	"context"

	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

// CodeDefinitionsClient implements lockstep.CodeDefinitionsClient.
type CodeDefinitionsClient struct {
	dispatcher Dispatcher
}

// NewCodeDefinitionsClient creates a new code definitions client.
func NewCodeDefinitionsClient(d Dispatcher) *CodeDefinitionsClient {
	return &CodeDefinitionsClient{dispatcher: d}
}

// Retrieve implements lockstep.CodeDefinitionsClient.Retrieve.
func (c *CodeDefinitionsClient) Retrieve(ctx context.Context, id string, opts *lockstep.RetrieveOptions) (*lockstep.Response[lockstep.CodeDefinitionModel], error) {
	return Invoke(ctx, c.dispatcher, codeDefinitionEndpoints.Retrieve, Call{Path: byID(id), Query: opts.ToValues()})
}

// Query implements lockstep.CodeDefinitionsClient.Query.
func (c *CodeDefinitionsClient) Query(ctx context.Context, opts *lockstep.QueryOptions) (*lockstep.Response[lockstep.FetchResult[lockstep.CodeDefinitionModel]], error) {
	return Invoke(ctx, c.dispatcher, codeDefinitionEndpoints.Query, Call{Query: opts.ToValues()})
}
