package client

import (
	"context"

	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

// AttachmentsClient implements lockstep.AttachmentsClient.
type AttachmentsClient struct {
	dispatcher Dispatcher
}

// NewAttachmentsClient creates a new attachments client.
func NewAttachmentsClient(d Dispatcher) *AttachmentsClient {
	return &AttachmentsClient{dispatcher: d}
}

// RetrieveHeader implements lockstep.AttachmentsClient.RetrieveHeader.
func (c *AttachmentsClient) RetrieveHeader(
	ctx context.Context, opts *lockstep.QueryOptions,
) (*lockstep.Response[lockstep.AttachmentHeaderInfoModel], error) {
	return Invoke(ctx, c.dispatcher, attachmentEndpoints.RetrieveHeader, Call{Query: opts.ToValues()})
}

// CustomersClient implements lockstep.CustomersClient.
type CustomersClient struct {
	dispatcher Dispatcher
}

// NewCustomersClient creates a new customers client.
func NewCustomersClient(d Dispatcher) *CustomersClient {
	return &CustomersClient{dispatcher: d}
}

// RetrieveDetails implements lockstep.CustomersClient.RetrieveDetails.
func (c *CustomersClient) RetrieveDetails(ctx context.Context, id string) (*lockstep.Response[lockstep.CustomerDetailsModel], error) {
	return Invoke(ctx, c.dispatcher, customerEndpoints.RetrieveDetails, Call{Path: byID(id)})
}

// ReportsClient implements lockstep.ReportsClient.
type ReportsClient struct {
	dispatcher Dispatcher
}

// NewReportsClient creates a new reports client.
func NewReportsClient(d Dispatcher) *ReportsClient {
	return &ReportsClient{dispatcher: d}
}

// IncomeStatement implements lockstep.ReportsClient.IncomeStatement.
func (c *ReportsClient) IncomeStatement(ctx context.Context, opts *lockstep.ReportOptions) (*lockstep.Response[lockstep.FinancialReportModel], error) {
	return Invoke(ctx, c.dispatcher, reportEndpoints.IncomeStatement, Call{Query: opts.ToValues()})
}

// BalanceSheet implements lockstep.ReportsClient.BalanceSheet.
func (c *ReportsClient) BalanceSheet(ctx context.Context, opts *lockstep.ReportOptions) (*lockstep.Response[lockstep.FinancialReportModel], error) {
	return Invoke(ctx, c.dispatcher, reportEndpoints.BalanceSheet, Call{Query: opts.ToValues()})
}
