package client

import (
	"net/http"

	"github.com/fivetwenty-io/lockstep-client/internal/constants"
	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

var (
	includeParams = []string{"include"}
	queryParams   = []string{"filter", "include", "order", "pageSize", "pageNumber"}
)

func single[T any](name, method, path string, query ...string) Endpoint[T] {
	return Endpoint[T]{
		Route:  Route{Name: name, Method: method, Path: path, Query: query},
		Decode: lockstep.DecodeJSON[T],
	}
}

func list[T any](name, method, path string, query ...string) Endpoint[[]T] {
	return Endpoint[[]T]{
		Route:  Route{Name: name, Method: method, Path: path, Query: query},
		Decode: lockstep.DecodeList(lockstep.DecodeJSON[T]),
	}
}

func page[T any](name, path string) Endpoint[lockstep.FetchResult[T]] {
	return Endpoint[lockstep.FetchResult[T]]{
		Route:  Route{Name: name, Method: http.MethodGet, Path: path, Query: queryParams},
		Decode: lockstep.DecodeFetchResult(lockstep.DecodeJSON[T]),
	}
}

func summaryPage[T, S any](name, path string) Endpoint[lockstep.SummaryFetchResult[T, S]] {
	return Endpoint[lockstep.SummaryFetchResult[T, S]]{
		Route:  Route{Name: name, Method: http.MethodGet, Path: path, Query: queryParams},
		Decode: lockstep.DecodeSummaryFetchResult[T, S](lockstep.DecodeJSON[T]),
	}
}

var invoiceEndpoints = struct {
	Retrieve         Endpoint[lockstep.InvoiceModel]
	Update           Endpoint[lockstep.InvoiceModel]
	Delete           Endpoint[lockstep.DeleteResult]
	Create           Endpoint[[]lockstep.InvoiceModel]
	BulkDelete       Endpoint[lockstep.DeleteResult]
	Query            Endpoint[lockstep.FetchResult[lockstep.InvoiceModel]]
	RetrievePDF      Route
	QuerySummaryView Endpoint[lockstep.SummaryFetchResult[lockstep.InvoiceSummaryModel, lockstep.InvoiceSummaryTotalsModel]]
	QueryAtRiskView  Endpoint[lockstep.FetchResult[lockstep.AtRiskInvoiceSummaryModel]]
}{
	Retrieve:   single[lockstep.InvoiceModel]("Invoices.Retrieve", http.MethodGet, "/api/v1/Invoices/{id}", includeParams...),
	Update:     single[lockstep.InvoiceModel]("Invoices.Update", http.MethodPatch, "/api/v1/Invoices/{id}"),
	Delete:     single[lockstep.DeleteResult]("Invoices.Delete", http.MethodDelete, "/api/v1/Invoices/{id}"),
	Create:     list[lockstep.InvoiceModel]("Invoices.Create", http.MethodPost, "/api/v1/Invoices"),
	BulkDelete: single[lockstep.DeleteResult]("Invoices.BulkDelete", http.MethodDelete, "/api/v1/Invoices"),
	Query:      page[lockstep.InvoiceModel]("Invoices.Query", "/api/v1/Invoices/query"),
	RetrievePDF: Route{
		Name:   "Invoices.RetrievePDF",
		Method: http.MethodGet,
		Path:   "/api/v1/Invoices/{id}/pdf",
		Accept: constants.MediaTypePDF,
	},
	QuerySummaryView: summaryPage[lockstep.InvoiceSummaryModel, lockstep.InvoiceSummaryTotalsModel](
		"Invoices.QuerySummaryView", "/api/v1/Invoices/views/summary"),
	QueryAtRiskView: page[lockstep.AtRiskInvoiceSummaryModel]("Invoices.QueryAtRiskView", "/api/v1/Invoices/views/at-risk-summary"),
}

var codeDefinitionEndpoints = struct {
	Retrieve Endpoint[lockstep.CodeDefinitionModel]
	Query    Endpoint[lockstep.FetchResult[lockstep.CodeDefinitionModel]]
}{
	Retrieve: single[lockstep.CodeDefinitionModel]("CodeDefinitions.Retrieve", http.MethodGet, "/api/v1/CodeDefinitions/{id}", includeParams...),
	Query:    page[lockstep.CodeDefinitionModel]("CodeDefinitions.Query", "/api/v1/CodeDefinitions/query"),
}

var currencyRateEndpoints = struct {
	Retrieve     Endpoint[lockstep.CurrencyRateModel]
	RetrieveBulk Endpoint[[]lockstep.CurrencyRateModel]
}{
	Retrieve: single[lockstep.CurrencyRateModel]("CurrencyRates.Retrieve", http.MethodGet,
		"/api/v1/CurrencyRates/{sourceCurrency}/{destinationCurrency}", "date", "dataProvider"),
	RetrieveBulk: list[lockstep.CurrencyRateModel]("CurrencyRates.RetrieveBulk", http.MethodPost,
		"/api/v1/CurrencyRates/bulk", "destinationCurrency"),
}

var customFieldDefinitionEndpoints = struct {
	Retrieve Endpoint[lockstep.CustomFieldDefinitionModel]
	Update   Endpoint[lockstep.CustomFieldDefinitionModel]
	Delete   Endpoint[lockstep.DeleteResult]
	Create   Endpoint[[]lockstep.CustomFieldDefinitionModel]
	Query    Endpoint[lockstep.FetchResult[lockstep.CustomFieldDefinitionModel]]
}{
	Retrieve: single[lockstep.CustomFieldDefinitionModel]("CustomFieldDefinitions.Retrieve", http.MethodGet,
		"/api/v1/CustomFieldDefinitions/{id}", includeParams...),
	Update: single[lockstep.CustomFieldDefinitionModel]("CustomFieldDefinitions.Update", http.MethodPatch,
		"/api/v1/CustomFieldDefinitions/{id}"),
	Delete: single[lockstep.DeleteResult]("CustomFieldDefinitions.Delete", http.MethodDelete,
		"/api/v1/CustomFieldDefinitions/{id}"),
	Create: list[lockstep.CustomFieldDefinitionModel]("CustomFieldDefinitions.Create", http.MethodPost,
		"/api/v1/CustomFieldDefinitions"),
	Query: page[lockstep.CustomFieldDefinitionModel]("CustomFieldDefinitions.Query", "/api/v1/CustomFieldDefinitions/query"),
}

var customFieldValueEndpoints = struct {
	Retrieve Endpoint[lockstep.CustomFieldValueModel]
	Update   Endpoint[lockstep.CustomFieldValueModel]
	Delete   Endpoint[lockstep.DeleteResult]
	Create   Endpoint[[]lockstep.CustomFieldValueModel]
	Query    Endpoint[lockstep.FetchResult[lockstep.CustomFieldValueModel]]
}{
	Retrieve: single[lockstep.CustomFieldValueModel]("CustomFieldValues.Retrieve", http.MethodGet,
		"/api/v1/CustomFieldValues/{definitionId}/{recordKey}", includeParams...),
	Update: single[lockstep.CustomFieldValueModel]("CustomFieldValues.Update", http.MethodPatch,
		"/api/v1/CustomFieldValues/{definitionId}/{recordKey}"),
	Delete: single[lockstep.DeleteResult]("CustomFieldValues.Delete", http.MethodDelete,
		"/api/v1/CustomFieldValues/{definitionId}/{recordKey}"),
	Create: list[lockstep.CustomFieldValueModel]("CustomFieldValues.Create", http.MethodPost,
		"/api/v1/CustomFieldValues"),
	Query: page[lockstep.CustomFieldValueModel]("CustomFieldValues.Query", "/api/v1/CustomFieldValues/query"),
}

var userAccountEndpoints = struct {
	RetrieveInviteData Endpoint[lockstep.InviteDataModel]
	Invite             Endpoint[[]lockstep.InviteModel]
	TransferOwner      Endpoint[lockstep.TransferOwnerModel]
	RetrieveUserGroups Endpoint[[]lockstep.UserGroupModel]
}{
	RetrieveInviteData: single[lockstep.InviteDataModel]("UserAccounts.RetrieveInviteData", http.MethodGet,
		"/api/v1/UserAccounts/invite", "code"),
	Invite: list[lockstep.InviteModel]("UserAccounts.Invite", http.MethodPost, "/api/v1/UserAccounts/invite"),
	TransferOwner: single[lockstep.TransferOwnerModel]("UserAccounts.TransferOwner", http.MethodPost,
		"/api/v1/UserAccounts/transfer-owner"),
	RetrieveUserGroups: list[lockstep.UserGroupModel]("UserAccounts.RetrieveUserGroups", http.MethodGet,
		"/api/v1/UserAccounts/user-groups"),
}

var attachmentEndpoints = struct {
	RetrieveHeader Endpoint[lockstep.AttachmentHeaderInfoModel]
}{
	RetrieveHeader: single[lockstep.AttachmentHeaderInfoModel]("Attachments.RetrieveHeader", http.MethodGet,
		"/api/v1/Attachments/header", queryParams...),
}

var customerEndpoints = struct {
	RetrieveDetails Endpoint[lockstep.CustomerDetailsModel]
}{
	RetrieveDetails: single[lockstep.CustomerDetailsModel]("Customers.RetrieveDetails", http.MethodGet,
		"/api/v1/Companies/views/customer-details/{id}"),
}

var reportParams = []string{
	"startDate", "endDate", "columnOption", "displayDepth",
	"comparisonPeriod", "showCurrencyDifference", "showPercentageDifference",
}

var reportEndpoints = struct {
	IncomeStatement Endpoint[lockstep.FinancialReportModel]
	BalanceSheet    Endpoint[lockstep.FinancialReportModel]
}{
	IncomeStatement: single[lockstep.FinancialReportModel]("Reports.IncomeStatement", http.MethodGet,
		"/api/v1/Reports/income-statement", reportParams...),
	BalanceSheet: single[lockstep.FinancialReportModel]("Reports.BalanceSheet", http.MethodGet,
		"/api/v1/Reports/balance-sheet", reportParams...),
}

var syncEndpoints = struct {
	Create      Endpoint[lockstep.SyncSubmitModel]
	CreateBatch Endpoint[lockstep.SyncSubmitModel]
}{
	Create:      single[lockstep.SyncSubmitModel]("Sync.Create", http.MethodPost, "/api/v1/Sync"),
	CreateBatch: single[lockstep.SyncSubmitModel]("Sync.CreateBatch", http.MethodPost, "/api/v1/Sync/batch"),
}

var statusEndpoint = single[lockstep.StatusModel]("Status.Ping", http.MethodGet, "/api/v1/Status")

// Routes lists every endpoint the client can call.
func Routes() []Route {
	return []Route{
		invoiceEndpoints.Retrieve.Route,
		invoiceEndpoints.Update.Route,
		invoiceEndpoints.Delete.Route,
		invoiceEndpoints.Create.Route,
		invoiceEndpoints.BulkDelete.Route,
		invoiceEndpoints.Query.Route,
		invoiceEndpoints.RetrievePDF,
		invoiceEndpoints.QuerySummaryView.Route,
		invoiceEndpoints.QueryAtRiskView.Route,
		codeDefinitionEndpoints.Retrieve.Route,
		codeDefinitionEndpoints.Query.Route,
		currencyRateEndpoints.Retrieve.Route,
		currencyRateEndpoints.RetrieveBulk.Route,
		customFieldDefinitionEndpoints.Retrieve.Route,
		customFieldDefinitionEndpoints.Update.Route,
		customFieldDefinitionEndpoints.Delete.Route,
		customFieldDefinitionEndpoints.Create.Route,
		customFieldDefinitionEndpoints.Query.Route,
		customFieldValueEndpoints.Retrieve.Route,
		customFieldValueEndpoints.Update.Route,
		customFieldValueEndpoints.Delete.Route,
		customFieldValueEndpoints.Create.Route,
		customFieldValueEndpoints.Query.Route,
		userAccountEndpoints.RetrieveInviteData.Route,
		userAccountEndpoints.Invite.Route,
		userAccountEndpoints.TransferOwner.Route,
		userAccountEndpoints.RetrieveUserGroups.Route,
		attachmentEndpoints.RetrieveHeader.Route,
		customerEndpoints.RetrieveDetails.Route,
		reportEndpoints.IncomeStatement.Route,
		reportEndpoints.BalanceSheet.Route,
		syncEndpoints.Create.Route,
		syncEndpoints.CreateBatch.Route,
		statusEndpoint.Route,
	}
}
