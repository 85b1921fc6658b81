package client

import (
	"context"

	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

// InvoicesClient implements lockstep.InvoicesClient.
type InvoicesClient struct {
	dispatcher Dispatcher
}

// NewInvoicesClient creates a new invoices client.
func NewInvoicesClient(d Dispatcher) *InvoicesClient {
	return &InvoicesClient{dispatcher: d}
}

// Retrieve implements lockstep.InvoicesClient.Retrieve.
func (c *InvoicesClient) Retrieve(ctx context.Context, id string, opts *lockstep.RetrieveOptions) (*lockstep.Response[lockstep.InvoiceModel], error) {
	return Invoke(ctx, c.dispatcher, invoiceEndpoints.Retrieve, Call{Path: byID(id), Query: opts.ToValues()})
}

// Update implements lockstep.InvoicesClient.Update.
func (c *InvoicesClient) Update(ctx context.Context, id string, patch lockstep.Patch) (*lockstep.Response[lockstep.InvoiceModel], error) {
	return Invoke(ctx, c.dispatcher, invoiceEndpoints.Update, Call{Path: byID(id), Body: patch})
}

// Delete implements lockstep.InvoicesClient.Delete.
func (c *InvoicesClient) Delete(ctx context.Context, id string) (*lockstep.Response[lockstep.DeleteResult], error) {
	return Invoke(ctx, c.dispatcher, invoiceEndpoints.Delete, Call{Path: byID(id)})
}

// Create implements lockstep.InvoicesClient.Create.
func (c *InvoicesClient) Create(ctx context.Context, invoices []lockstep.InvoiceModel) (*lockstep.Response[[]lockstep.InvoiceModel], error) {
	return Invoke(ctx, c.dispatcher, invoiceEndpoints.Create, Call{Body: invoices})
}

// BulkDelete implements lockstep.InvoicesClient.BulkDelete.
func (c *InvoicesClient) BulkDelete(ctx context.Context, req *lockstep.BulkDeleteRequestModel) (*lockstep.Response[lockstep.DeleteResult], error) {
	return Invoke(ctx, c.dispatcher, invoiceEndpoints.BulkDelete, Call{Body: req})
}

// Query implements lockstep.InvoicesClient.Query.
func (c *InvoicesClient) Query(ctx context.Context, opts *lockstep.QueryOptions) (*lockstep.Response[lockstep.FetchResult[lockstep.InvoiceModel]], error) {
	return Invoke(ctx, c.dispatcher, invoiceEndpoints.Query, Call{Query: opts.ToValues()})
}

// RetrievePDF implements lockstep.InvoicesClient.RetrievePDF.
func (c *InvoicesClient) RetrievePDF(ctx context.Context, id string) (*lockstep.RawResponse, error) {
	return InvokeRaw(ctx, c.dispatcher, invoiceEndpoints.RetrievePDF, Call{Path: byID(id)})
}

// QuerySummaryView implements lockstep.InvoicesClient.QuerySummaryView.
func (c *InvoicesClient) QuerySummaryView(
	ctx context.Context, opts *lockstep.QueryOptions,
) (*lockstep.Response[lockstep.SummaryFetchResult[lockstep.InvoiceSummaryModel, lockstep.InvoiceSummaryTotalsModel]], error) {
	return Invoke(ctx, c.dispatcher, invoiceEndpoints.QuerySummaryView, Call{Query: opts.ToValues()})
}

// QueryAtRiskView implements lockstep.InvoicesClient.QueryAtRiskView.
func (c *InvoicesClient) QueryAtRiskView(ctx context.Context, opts *lockstep.QueryOptions) (*lockstep.Response[lockstep.FetchResult[lockstep.AtRiskInvoiceSummaryModel]], error) {
	return Invoke(ctx, c.dispatcher, invoiceEndpoints.QueryAtRiskView, Call{Query: opts.ToValues()})
}

func byID(id string) map[string]string {
	return map[string]string{"id": id}
}
