package client

import (
	"context"

	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

// SyncClient implements lockstep.SyncClient.
type SyncClient struct {
	dispatcher Dispatcher
}

// NewSyncClient creates a new sync client.
func NewSyncClient(d Dispatcher) *SyncClient {
	return &SyncClient{dispatcher: d}
}

// Create implements lockstep.SyncClient.Create.
func (c *SyncClient) Create(ctx context.Context, req lockstep.SyncRequestModel) (*lockstep.Response[lockstep.SyncSubmitModel], error) {
	return Invoke(ctx, c.dispatcher, syncEndpoints.Create, Call{Body: req})
}

// CreateBatch implements lockstep.SyncClient.CreateBatch.
func (c *SyncClient) CreateBatch(ctx context.Context, batch lockstep.BatchSyncModel) (*lockstep.Response[lockstep.SyncSubmitModel], error) {
	return Invoke(ctx, c.dispatcher, syncEndpoints.CreateBatch, Call{Body: batch})
}
