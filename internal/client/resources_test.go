package client

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

const emptyPage = `{"records":[],"totalCount":0,"pageSize":25,"pageNumber":0}`

//nolint:funlen
func TestInvoicesClient(t *testing.T) {
	t.Parallel()

	RunOperationTest(t, TestOperation[lockstep.InvoiceModel]{
		Name:           "Update",
		ExpectedMethod: http.MethodPatch,
		ExpectedPath:   "/api/v1/Invoices/inv-1",
		ExpectedBody:   `{"specialTerms":"Net 45"}`,
		Response:       `{"invoiceId":"inv-1","specialTerms":"Net 45"}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.InvoiceModel], error) {
			return c.Invoices().Update(ctx, "inv-1", lockstep.Patch{"specialTerms": "Net 45"})
		},
		Check: func(t *testing.T, v lockstep.InvoiceModel) {
			t.Helper()
			assert.Equal(t, "Net 45", v.SpecialTerms.OrElse(""))
		},
	})

	RunOperationTest(t, TestOperation[lockstep.DeleteResult]{
		Name:           "Delete",
		ExpectedMethod: http.MethodDelete,
		ExpectedPath:   "/api/v1/Invoices/inv-1",
		Response:       `{}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.DeleteResult], error) {
			return c.Invoices().Delete(ctx, "inv-1")
		},
		Check: func(t *testing.T, v lockstep.DeleteResult) {
			t.Helper()
			assert.False(t, v.Errors.IsPresent())
		},
	})

	RunOperationTest(t, TestOperation[[]lockstep.InvoiceModel]{
		Name:           "Create",
		ExpectedMethod: http.MethodPost,
		ExpectedPath:   "/api/v1/Invoices",
		ExpectedBody:   `[{"invoiceId":"new-1","totalAmount":250.5}]`,
		Response:       `[{"invoiceId":"new-1","totalAmount":250.5}]`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[[]lockstep.InvoiceModel], error) {
			return c.Invoices().Create(ctx, []lockstep.InvoiceModel{{
				InvoiceID:   "new-1",
				TotalAmount: lockstep.Some(lockstep.NewMoney(250.5)),
			}})
		},
		Check: func(t *testing.T, v []lockstep.InvoiceModel) {
			t.Helper()
			require.Len(t, v, 1)
			assert.Equal(t, "new-1", v[0].InvoiceID)
		},
	})

	RunOperationTest(t, TestOperation[lockstep.DeleteResult]{
		Name:           "BulkDelete",
		ExpectedMethod: http.MethodDelete,
		ExpectedPath:   "/api/v1/Invoices",
		ExpectedBody:   `{"idList":["a","b"]}`,
		Response:       `{"errors":[{"title":"Not Found","status":404}]}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.DeleteResult], error) {
			return c.Invoices().BulkDelete(ctx, &lockstep.BulkDeleteRequestModel{IDList: []string{"a", "b"}})
		},
		Check: func(t *testing.T, v lockstep.DeleteResult) {
			t.Helper()
			errs, ok := v.Errors.Get()
			require.True(t, ok)
			require.Len(t, errs, 1)
			assert.Equal(t, http.StatusNotFound, errs[0].Status)
		},
	})

	RunOperationTest(t, TestOperation[lockstep.FetchResult[lockstep.InvoiceModel]]{
		Name:           "Query",
		ExpectedMethod: http.MethodGet,
		ExpectedPath:   "/api/v1/Invoices/query",
		ExpectedQuery:  "filter=invoiceStatusCode+eq+Open&include=Customer&order=invoiceDate+desc&pageNumber=1&pageSize=2",
		Response: `{"records":[{"invoiceId":"a"},{"invoiceId":"b"}],` +
			`"totalCount":10,"pageSize":2,"pageNumber":1}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.FetchResult[lockstep.InvoiceModel]], error) {
			opts := (&lockstep.QueryOptions{}).
				WithFilter("invoiceStatusCode eq Open").
				WithInclude("Customer").
				WithOrder("invoiceDate desc").
				WithPageSize(2).
				WithPageNumber(1)

			return c.Invoices().Query(ctx, opts)
		},
		Check: func(t *testing.T, v lockstep.FetchResult[lockstep.InvoiceModel]) {
			t.Helper()
			require.Len(t, v.Records, 2)
			assert.Equal(t, 10, v.TotalCount)
			assert.True(t, v.HasMore())
			assert.Equal(t, 2, v.NextPageNumber())
		},
	})

	RunOperationTest(t, TestOperation[lockstep.SummaryFetchResult[lockstep.InvoiceSummaryModel, lockstep.InvoiceSummaryTotalsModel]]{
		Name:           "QuerySummaryView",
		ExpectedMethod: http.MethodGet,
		ExpectedPath:   "/api/v1/Invoices/views/summary",
		ExpectedQuery:  "pageSize=1",
		Response: `{"records":[{"invoiceId":"a","outstandingBalance":"12.34"}],"totalCount":1,"pageSize":1,"pageNumber":0,` +
			`"summary":{"totalInvoicesOpen":1,"totalInvoiceBalance":12.34},` +
			`"agingSummary":[{"bucket":"0-30","invoiceCount":1}]}`,
		Call: func(
			ctx context.Context, c *Client,
		) (*lockstep.Response[lockstep.SummaryFetchResult[lockstep.InvoiceSummaryModel, lockstep.InvoiceSummaryTotalsModel]], error) {
			return c.Invoices().QuerySummaryView(ctx, (&lockstep.QueryOptions{}).WithPageSize(1))
		},
		Check: func(t *testing.T, v lockstep.SummaryFetchResult[lockstep.InvoiceSummaryModel, lockstep.InvoiceSummaryTotalsModel]) {
			t.Helper()
			require.Len(t, v.Records, 1)
			assert.Equal(t, "12.34", v.Records[0].OutstandingBalance.OrElse(lockstep.Money{}).String())

			summary, ok := v.Summary.Get()
			require.True(t, ok)
			assert.Equal(t, 1, summary.TotalInvoicesOpen.OrElse(0))

			aging, ok := v.AgingSummary.Get()
			require.True(t, ok)
			require.Len(t, aging, 1)
			assert.Equal(t, "0-30", aging[0].Bucket.OrElse(""))
		},
	})

	RunOperationTest(t, TestOperation[lockstep.FetchResult[lockstep.AtRiskInvoiceSummaryModel]]{
		Name:           "QueryAtRiskView",
		ExpectedMethod: http.MethodGet,
		ExpectedPath:   "/api/v1/Invoices/views/at-risk-summary",
		Response:       emptyPage,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.FetchResult[lockstep.AtRiskInvoiceSummaryModel]], error) {
			return c.Invoices().QueryAtRiskView(ctx, nil)
		},
		Check: func(t *testing.T, v lockstep.FetchResult[lockstep.AtRiskInvoiceSummaryModel]) {
			t.Helper()
			assert.Empty(t, v.Records)
			assert.False(t, v.HasMore())
		},
	})
}

func TestCodeDefinitionsClient(t *testing.T) {
	t.Parallel()

	RunOperationTest(t, TestOperation[lockstep.CodeDefinitionModel]{
		Name:           "Retrieve",
		ExpectedMethod: http.MethodGet,
		ExpectedPath:   "/api/v1/CodeDefinitions/code-1",
		Response:       `{"codeDefinitionId":"code-1","codeType":"AccountType","code":"AR"}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.CodeDefinitionModel], error) {
			return c.CodeDefinitions().Retrieve(ctx, "code-1", nil)
		},
		Check: func(t *testing.T, v lockstep.CodeDefinitionModel) {
			t.Helper()
			assert.Equal(t, "AR", v.Code.OrElse(""))
		},
	})

	RunOperationTest(t, TestOperation[lockstep.FetchResult[lockstep.CodeDefinitionModel]]{
		Name:           "Query",
		ExpectedMethod: http.MethodGet,
		ExpectedPath:   "/api/v1/CodeDefinitions/query",
		ExpectedQuery:  "pageSize=200",
		Response:       `{"records":[{"codeDefinitionId":"code-1"}],"totalCount":1,"pageSize":200,"pageNumber":0}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.FetchResult[lockstep.CodeDefinitionModel]], error) {
			return c.CodeDefinitions().Query(ctx, (&lockstep.QueryOptions{}).WithPageSize(200))
		},
		Check: func(t *testing.T, v lockstep.FetchResult[lockstep.CodeDefinitionModel]) {
			t.Helper()
			require.Len(t, v.Records, 1)
			assert.Equal(t, "code-1", v.Records[0].CodeDefinitionID)
		},
	})
}

func TestCurrencyRatesClient(t *testing.T) {
	t.Parallel()

	RunOperationTest(t, TestOperation[lockstep.CurrencyRateModel]{
		Name:           "Retrieve",
		ExpectedMethod: http.MethodGet,
		ExpectedPath:   "/api/v1/CurrencyRates/USD/EUR",
		ExpectedQuery:  "date=2022-01-31",
		Response:       `{"sourceCurrency":"USD","destinationCurrency":"EUR","date":"2022-01-31","currencyRate":0.89}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.CurrencyRateModel], error) {
			return c.CurrencyRates().Retrieve(ctx, "USD", "EUR", &lockstep.CurrencyRateOptions{
				Date: lockstep.Some("2022-01-31"),
			})
		},
		Check: func(t *testing.T, v lockstep.CurrencyRateModel) {
			t.Helper()
			assert.Equal(t, "0.89", v.CurrencyRate.OrElse(lockstep.Money{}).String())
		},
	})

	RunOperationTest(t, TestOperation[[]lockstep.CurrencyRateModel]{
		Name:           "RetrieveBulk",
		ExpectedMethod: http.MethodPost,
		ExpectedPath:   "/api/v1/CurrencyRates/bulk",
		ExpectedQuery:  "destinationCurrency=USD",
		ExpectedBody:   `[{"date":"2022-01-31","sourceCurrency":"EUR"}]`,
		Response:       `[{"sourceCurrency":"EUR","destinationCurrency":"USD","currencyRate":"1.12"}]`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[[]lockstep.CurrencyRateModel], error) {
			return c.CurrencyRates().RetrieveBulk(ctx, "USD", []lockstep.BulkCurrencyConversionModel{
				{Date: "2022-01-31", SourceCurrency: "EUR"},
			})
		},
		Check: func(t *testing.T, v []lockstep.CurrencyRateModel) {
			t.Helper()
			require.Len(t, v, 1)
			assert.Equal(t, "1.12", v[0].CurrencyRate.OrElse(lockstep.Money{}).String())
		},
	})
}

//nolint:funlen
func TestCustomFieldsClients(t *testing.T) {
	t.Parallel()

	RunOperationTest(t, TestOperation[lockstep.CustomFieldDefinitionModel]{
		Name:           "Definitions.Retrieve",
		ExpectedMethod: http.MethodGet,
		ExpectedPath:   "/api/v1/CustomFieldDefinitions/def-1",
		ExpectedQuery:  "include=Values",
		Response:       `{"customFieldDefinitionId":"def-1","customFieldLabel":"Region"}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.CustomFieldDefinitionModel], error) {
			return c.CustomFieldDefinitions().Retrieve(ctx, "def-1", &lockstep.RetrieveOptions{Include: []string{"Values"}})
		},
	})

	RunOperationTest(t, TestOperation[lockstep.CustomFieldDefinitionModel]{
		Name:           "Definitions.Update",
		ExpectedMethod: http.MethodPatch,
		ExpectedPath:   "/api/v1/CustomFieldDefinitions/def-1",
		ExpectedBody:   `{"customFieldLabel":"Territory"}`,
		Response:       `{"customFieldDefinitionId":"def-1","customFieldLabel":"Territory"}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.CustomFieldDefinitionModel], error) {
			return c.CustomFieldDefinitions().Update(ctx, "def-1", lockstep.Patch{"customFieldLabel": "Territory"})
		},
	})

	RunOperationTest(t, TestOperation[lockstep.DeleteResult]{
		Name:           "Definitions.Delete",
		ExpectedMethod: http.MethodDelete,
		ExpectedPath:   "/api/v1/CustomFieldDefinitions/def-1",
		Response:       `{}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.DeleteResult], error) {
			return c.CustomFieldDefinitions().Delete(ctx, "def-1")
		},
	})

	RunOperationTest(t, TestOperation[[]lockstep.CustomFieldDefinitionModel]{
		Name:           "Definitions.Create",
		ExpectedMethod: http.MethodPost,
		ExpectedPath:   "/api/v1/CustomFieldDefinitions",
		ExpectedBody:   `[{"customFieldDefinitionId":"def-2","tableKey":"Invoice"}]`,
		Response:       `[{"customFieldDefinitionId":"def-2","tableKey":"Invoice"}]`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[[]lockstep.CustomFieldDefinitionModel], error) {
			return c.CustomFieldDefinitions().Create(ctx, []lockstep.CustomFieldDefinitionModel{
				{CustomFieldDefinitionID: "def-2", TableKey: lockstep.Some("Invoice")},
			})
		},
	})

	RunOperationTest(t, TestOperation[lockstep.FetchResult[lockstep.CustomFieldDefinitionModel]]{
		Name:           "Definitions.Query",
		ExpectedMethod: http.MethodGet,
		ExpectedPath:   "/api/v1/CustomFieldDefinitions/query",
		Response:       emptyPage,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.FetchResult[lockstep.CustomFieldDefinitionModel]], error) {
			return c.CustomFieldDefinitions().Query(ctx, nil)
		},
	})

	RunOperationTest(t, TestOperation[lockstep.CustomFieldValueModel]{
		Name:           "Values.Retrieve",
		ExpectedMethod: http.MethodGet,
		ExpectedPath:   "/api/v1/CustomFieldValues/def-1/rec%201",
		Response:       `{"customFieldDefinitionId":"def-1","recordKey":"rec 1","stringValue":"West"}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.CustomFieldValueModel], error) {
			return c.CustomFieldValues().Retrieve(ctx, "def-1", "rec 1", nil)
		},
		Check: func(t *testing.T, v lockstep.CustomFieldValueModel) {
			t.Helper()
			assert.Equal(t, "rec 1", v.RecordKey)
			assert.Equal(t, "West", v.StringValue.OrElse(""))
		},
	})

	RunOperationTest(t, TestOperation[lockstep.CustomFieldValueModel]{
		Name:           "Values.Update",
		ExpectedMethod: http.MethodPatch,
		ExpectedPath:   "/api/v1/CustomFieldValues/def-1/rec-1",
		ExpectedBody:   `{"stringValue":"East"}`,
		Response:       `{"customFieldDefinitionId":"def-1","recordKey":"rec-1","stringValue":"East"}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.CustomFieldValueModel], error) {
			return c.CustomFieldValues().Update(ctx, "def-1", "rec-1", lockstep.Patch{"stringValue": "East"})
		},
	})

	RunOperationTest(t, TestOperation[lockstep.DeleteResult]{
		Name:           "Values.Delete",
		ExpectedMethod: http.MethodDelete,
		ExpectedPath:   "/api/v1/CustomFieldValues/def-1/rec-1",
		Response:       `{}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.DeleteResult], error) {
			return c.CustomFieldValues().Delete(ctx, "def-1", "rec-1")
		},
	})

	RunOperationTest(t, TestOperation[[]lockstep.CustomFieldValueModel]{
		Name:           "Values.Create",
		ExpectedMethod: http.MethodPost,
		ExpectedPath:   "/api/v1/CustomFieldValues",
		ExpectedBody:   `[{"customFieldDefinitionId":"def-1","recordKey":"rec-1","numericValue":5}]`,
		Response:       `[{"customFieldDefinitionId":"def-1","recordKey":"rec-1","numericValue":5}]`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[[]lockstep.CustomFieldValueModel], error) {
			return c.CustomFieldValues().Create(ctx, []lockstep.CustomFieldValueModel{{
				CustomFieldDefinitionID: "def-1",
				RecordKey:               "rec-1",
				NumericValue:            lockstep.Some(lockstep.NewMoney(5)),
			}})
		},
	})

	RunOperationTest(t, TestOperation[lockstep.FetchResult[lockstep.CustomFieldValueModel]]{
		Name:           "Values.Query",
		ExpectedMethod: http.MethodGet,
		ExpectedPath:   "/api/v1/CustomFieldValues/query",
		ExpectedQuery:  "filter=recordKey+eq+rec-1",
		Response:       emptyPage,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.FetchResult[lockstep.CustomFieldValueModel]], error) {
			return c.CustomFieldValues().Query(ctx, (&lockstep.QueryOptions{}).WithFilter("recordKey eq rec-1"))
		},
	})
}

//nolint:funlen
func TestUserAccountsClient(t *testing.T) {
	t.Parallel()

	RunOperationTest(t, TestOperation[lockstep.InviteDataModel]{
		Name:           "RetrieveInviteData",
		ExpectedMethod: http.MethodGet,
		ExpectedPath:   "/api/v1/UserAccounts/invite",
		ExpectedQuery:  "code=invite-code",
		Response:       `{"email":"new@example.com","userStatus":"Invited"}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.InviteDataModel], error) {
			return c.UserAccounts().RetrieveInviteData(ctx, "invite-code")
		},
		Check: func(t *testing.T, v lockstep.InviteDataModel) {
			t.Helper()
			assert.Equal(t, "Invited", v.UserStatus.OrElse(""))
		},
	})

	RunOperationTest(t, TestOperation[[]lockstep.InviteModel]{
		Name:           "Invite",
		ExpectedMethod: http.MethodPost,
		ExpectedPath:   "/api/v1/UserAccounts/invite",
		ExpectedBody:   `[{"email":"new@example.com"}]`,
		Response:       `[{"email":"new@example.com","success":true}]`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[[]lockstep.InviteModel], error) {
			return c.UserAccounts().Invite(ctx, []lockstep.InviteSubmitModel{{Email: "new@example.com"}})
		},
		Check: func(t *testing.T, v []lockstep.InviteModel) {
			t.Helper()
			require.Len(t, v, 1)
			assert.True(t, v[0].Success.OrElse(false))
		},
	})

	RunOperationTest(t, TestOperation[lockstep.TransferOwnerModel]{
		Name:           "TransferOwner",
		ExpectedMethod: http.MethodPost,
		ExpectedPath:   "/api/v1/UserAccounts/transfer-owner",
		ExpectedBody:   `{"targetUserId":"user-2"}`,
		Response:       `{"previousOwner":{"userId":"user-1"},"newOwner":{"userId":"user-2"}}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.TransferOwnerModel], error) {
			return c.UserAccounts().TransferOwner(ctx, lockstep.TransferOwnerSubmitModel{TargetUserID: "user-2"})
		},
		Check: func(t *testing.T, v lockstep.TransferOwnerModel) {
			t.Helper()
			owner, ok := v.NewOwner.Get()
			require.True(t, ok)
			assert.Equal(t, "user-2", owner.UserID)
		},
	})

	RunOperationTest(t, TestOperation[[]lockstep.UserGroupModel]{
		Name:           "RetrieveUserGroups",
		ExpectedMethod: http.MethodGet,
		ExpectedPath:   "/api/v1/UserAccounts/user-groups",
		Response:       `[{"groupKey":"g-1","groupName":"Acme"}]`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[[]lockstep.UserGroupModel], error) {
			return c.UserAccounts().RetrieveUserGroups(ctx)
		},
		Check: func(t *testing.T, v []lockstep.UserGroupModel) {
			t.Helper()
			require.Len(t, v, 1)
			assert.Equal(t, "Acme", v[0].GroupName.OrElse(""))
		},
	})
}

//nolint:funlen
func TestViewClients(t *testing.T) {
	t.Parallel()

	RunOperationTest(t, TestOperation[lockstep.AttachmentHeaderInfoModel]{
		Name:           "Attachments.RetrieveHeader",
		ExpectedMethod: http.MethodGet,
		ExpectedPath:   "/api/v1/Attachments/header",
		ExpectedQuery:  "filter=companyId+eq+c-1",
		Response:       `{"companyId":"c-1","totalAttachments":3,"totalActive":2}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.AttachmentHeaderInfoModel], error) {
			return c.Attachments().RetrieveHeader(ctx, (&lockstep.QueryOptions{}).WithFilter("companyId eq c-1"))
		},
		Check: func(t *testing.T, v lockstep.AttachmentHeaderInfoModel) {
			t.Helper()
			assert.Equal(t, 3, v.TotalAttachments.OrElse(0))
		},
	})

	RunOperationTest(t, TestOperation[lockstep.CustomerDetailsModel]{
		Name:           "Customers.RetrieveDetails",
		ExpectedMethod: http.MethodGet,
		ExpectedPath:   "/api/v1/Companies/views/customer-details/cust-1",
		Response:       `{"customerId":"cust-1","name":"Acme","outstandingAmount":1200}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.CustomerDetailsModel], error) {
			return c.Customers().RetrieveDetails(ctx, "cust-1")
		},
		Check: func(t *testing.T, v lockstep.CustomerDetailsModel) {
			t.Helper()
			assert.Equal(t, "Acme", v.Name.OrElse(""))
			assert.Equal(t, "1200", v.OutstandingAmount.OrElse(lockstep.Money{}).String())
		},
	})

	reportQuery := "columnOption=ByMonth&displayDepth=2&endDate=2022-12-31&showCurrencyDifference=true&startDate=2022-01-01"
	reportOpts := &lockstep.ReportOptions{
		StartDate:              lockstep.Some("2022-01-01"),
		EndDate:                lockstep.Some("2022-12-31"),
		ColumnOption:           lockstep.Some("ByMonth"),
		DisplayDepth:           lockstep.Some(2),
		ShowCurrencyDifference: lockstep.Some(true),
	}

	RunOperationTest(t, TestOperation[lockstep.FinancialReportModel]{
		Name:           "Reports.IncomeStatement",
		ExpectedMethod: http.MethodGet,
		ExpectedPath:   "/api/v1/Reports/income-statement",
		ExpectedQuery:  reportQuery,
		Response:       `{"reportName":"Income Statement","rows":[{"label":"Revenue","rows":[{"label":"Sales"}]}]}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.FinancialReportModel], error) {
			return c.Reports().IncomeStatement(ctx, reportOpts)
		},
		Check: func(t *testing.T, v lockstep.FinancialReportModel) {
			t.Helper()
			rows, ok := v.Rows.Get()
			require.True(t, ok)
			require.Len(t, rows, 1)

			children, ok := rows[0].Rows.Get()
			require.True(t, ok)
			assert.Equal(t, "Sales", children[0].Label.OrElse(""))
		},
	})

	RunOperationTest(t, TestOperation[lockstep.FinancialReportModel]{
		Name:           "Reports.BalanceSheet",
		ExpectedMethod: http.MethodGet,
		ExpectedPath:   "/api/v1/Reports/balance-sheet",
		ExpectedQuery:  reportQuery,
		Response:       `{"reportName":"Balance Sheet"}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.FinancialReportModel], error) {
			return c.Reports().BalanceSheet(ctx, reportOpts)
		},
	})
}

func TestSyncClient(t *testing.T) {
	t.Parallel()

	RunOperationTest(t, TestOperation[lockstep.SyncSubmitModel]{
		Name:           "Create",
		ExpectedMethod: http.MethodPost,
		ExpectedPath:   "/api/v1/Sync",
		ExpectedBody:   `{"appEnrollmentId":"enr-1"}`,
		Response:       `{"syncRequestId":"sync-1","statusCode":"Ready"}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.SyncSubmitModel], error) {
			return c.Sync().Create(ctx, lockstep.SyncRequestModel{AppEnrollmentID: "enr-1"})
		},
		Check: func(t *testing.T, v lockstep.SyncSubmitModel) {
			t.Helper()
			assert.Equal(t, "sync-1", v.SyncRequestID.OrElse(""))
		},
	})

	batch := lockstep.BatchSyncModel{
		Companies: []lockstep.CompanySyncModel{{ErpKey: "C1", CompanyName: "Acme"}},
	}

	RunOperationTest(t, TestOperation[lockstep.SyncSubmitModel]{
		Name:           "CreateBatch",
		ExpectedMethod: http.MethodPost,
		ExpectedPath:   "/api/v1/Sync/batch",
		ExpectedBody:   MustJSON(t, batch),
		Response:       `{"syncRequestId":"sync-2","statusCode":"Ready"}`,
		Call: func(ctx context.Context, c *Client) (*lockstep.Response[lockstep.SyncSubmitModel], error) {
			return c.Sync().CreateBatch(ctx, batch)
		},
	})
}
