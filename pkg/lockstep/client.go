package lockstep

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/fivetwenty-io/lockstep-client/internal/constants"
	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

// Client is the main interface for the Lockstep Platform API.
type Client interface {
	ResourceClients

	// Status checks the credentials and reports the caller's account.
	Status(ctx context.Context) (*Response[StatusModel], error)
}

// ResourceClients groups the per-resource clients.
type ResourceClients interface {
	Invoices() InvoicesClient
	CodeDefinitions() CodeDefinitionsClient
	CurrencyRates() CurrencyRatesClient
	CustomFieldDefinitions() CustomFieldDefinitionsClient
	CustomFieldValues() CustomFieldValuesClient
	UserAccounts() UserAccountsClient
	Attachments() AttachmentsClient
	Customers() CustomersClient
	Reports() ReportsClient
	Sync() SyncClient
}

// InvoicesClient defines operations for invoices.
type InvoicesClient interface {
	Retrieve(ctx context.Context, id string, opts *RetrieveOptions) (*Response[InvoiceModel], error)
	Update(ctx context.Context, id string, patch Patch) (*Response[InvoiceModel], error)
	Delete(ctx context.Context, id string) (*Response[DeleteResult], error)
	Create(ctx context.Context, invoices []InvoiceModel) (*Response[[]InvoiceModel], error)
	BulkDelete(ctx context.Context, req *BulkDeleteRequestModel) (*Response[DeleteResult], error)
	Query(ctx context.Context, opts *QueryOptions) (*Response[FetchResult[InvoiceModel]], error)
	RetrievePDF(ctx context.Context, id string) (*RawResponse, error)
	QuerySummaryView(ctx context.Context, opts *QueryOptions) (*Response[SummaryFetchResult[InvoiceSummaryModel, InvoiceSummaryTotalsModel]], error)
	QueryAtRiskView(ctx context.Context, opts *QueryOptions) (*Response[FetchResult[AtRiskInvoiceSummaryModel]], error)
}

// CodeDefinitionsClient defines operations for code definitions.
type CodeDefinitionsClient interface {
	Retrieve(ctx context.Context, id string, opts *RetrieveOptions) (*Response[CodeDefinitionModel], error)
	Query(ctx context.Context, opts *QueryOptions) (*Response[FetchResult[CodeDefinitionModel]], error)
}

// CurrencyRatesClient defines operations for currency rates.
type CurrencyRatesClient interface {
	Retrieve(ctx context.Context, sourceCurrency, destinationCurrency string, opts *CurrencyRateOptions) (*Response[CurrencyRateModel], error)
	RetrieveBulk(ctx context.Context, destinationCurrency string, conversions []BulkCurrencyConversionModel) (*Response[[]CurrencyRateModel], error)
}

// CustomFieldDefinitionsClient defines operations for custom field definitions.
type CustomFieldDefinitionsClient interface {
	Retrieve(ctx context.Context, id string, opts *RetrieveOptions) (*Response[CustomFieldDefinitionModel], error)
	Update(ctx context.Context, id string, patch Patch) (*Response[CustomFieldDefinitionModel], error)
	Delete(ctx context.Context, id string) (*Response[DeleteResult], error)
	Create(ctx context.Context, definitions []CustomFieldDefinitionModel) (*Response[[]CustomFieldDefinitionModel], error)
	Query(ctx context.Context, opts *QueryOptions) (*Response[FetchResult[CustomFieldDefinitionModel]], error)
}

// CustomFieldValuesClient defines operations for custom field values.
type CustomFieldValuesClient interface {
	Retrieve(ctx context.Context, definitionID, recordKey string, opts *RetrieveOptions) (*Response[CustomFieldValueModel], error)
	Update(ctx context.Context, definitionID, recordKey string, patch Patch) (*Response[CustomFieldValueModel], error)
	Delete(ctx context.Context, definitionID, recordKey string) (*Response[DeleteResult], error)
	Create(ctx context.Context, values []CustomFieldValueModel) (*Response[[]CustomFieldValueModel], error)
	Query(ctx context.Context, opts *QueryOptions) (*Response[FetchResult[CustomFieldValueModel]], error)
}

// UserAccountsClient defines operations for user accounts and invitations.
type UserAccountsClient interface {
	RetrieveInviteData(ctx context.Context, code string) (*Response[InviteDataModel], error)
	Invite(ctx context.Context, invites []InviteSubmitModel) (*Response[[]InviteModel], error)
	TransferOwner(ctx context.Context, req TransferOwnerSubmitModel) (*Response[TransferOwnerModel], error)
	RetrieveUserGroups(ctx context.Context) (*Response[[]UserGroupModel], error)
}

// AttachmentsClient defines operations for attachments.
type AttachmentsClient interface {
	RetrieveHeader(ctx context.Context, opts *QueryOptions) (*Response[AttachmentHeaderInfoModel], error)
}

// CustomersClient defines operations for customer views.
type CustomersClient interface {
	RetrieveDetails(ctx context.Context, id string) (*Response[CustomerDetailsModel], error)
}

// ReportsClient defines operations for financial reports.
type ReportsClient interface {
	IncomeStatement(ctx context.Context, opts *ReportOptions) (*Response[FinancialReportModel], error)
	BalanceSheet(ctx context.Context, opts *ReportOptions) (*Response[FinancialReportModel], error)
}

// SyncClient defines operations for the sync engine.
type SyncClient interface {
	Create(ctx context.Context, req SyncRequestModel) (*Response[SyncSubmitModel], error)
	CreateBatch(ctx context.Context, batch BatchSyncModel) (*Response[SyncSubmitModel], error)
}

// Logger interface for logging.
type Logger interface {
	Debug(msg string, fields map[string]interface{})
	Info(msg string, fields map[string]interface{})
	Warn(msg string, fields map[string]interface{})
	Error(msg string, fields map[string]interface{})
}

// Config represents client configuration for building a lockstep.Client.
//
// Exactly one of APIKey and BearerToken must be set. When BaseURL is empty
// the URL of Environment is used, and sandbox is the default environment.
type Config struct {
	// Environment: "sbx" for sandbox or "prd" for production.
	Environment string `validate:"omitempty,oneof=sbx prd"`
	// BaseURL: overrides the environment URL (e.g., "https://api.sbx.lockstep.io").
	// lsclient.New trims a trailing slash and adds "https://" if no scheme is present.
	BaseURL string `validate:"omitempty,url"`

	// Authentication (provide one)
	// APIKey: sent in the Api-Key header.
	APIKey string
	// BearerToken: a JWT sent as "Authorization: Bearer". Its exp claim, when
	// present, is checked before each request.
	BearerToken string

	// Optional configurations
	// AppName: identifies the calling application in the User-Agent.
	AppName string
	// UserAgent: overrides the default User-Agent header.
	UserAgent string
	// HTTPTimeout: per-request timeout of the underlying http.Client.
	HTTPTimeout time.Duration `validate:"gte=0"`
	// RetryMax: retries performed by the transport. Zero keeps every call
	// at-most-once, which is the default.
	RetryMax int `validate:"gte=0"`
	// RetryWaitMin: minimum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMin time.Duration `validate:"gte=0"`
	// RetryWaitMax: maximum backoff between retries. Applied when RetryMax > 0.
	RetryWaitMax time.Duration `validate:"gte=0"`
	// MaxResponseBytes: cap on a response body. Zero uses the default of 64 MiB.
	MaxResponseBytes int64 `validate:"gte=0"`
	// Debug: enables request/response logging when a Logger is provided.
	Debug bool
	// Logger: optional structured logger used by the HTTP layer.
	Logger Logger `validate:"-"`
	// Interceptors: optional hooks run around every request.
	Interceptors *InterceptorChain `validate:"-"`
	// HTTPClient: optional base client, for custom TLS or proxies.
	HTTPClient *http.Client `validate:"-"`
}

var configValidator = validator.New()

// Validate checks the configuration and returns every problem found.
func (c *Config) Validate() error {
	var result error

	err := configValidator.Struct(c)
	if err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return fmt.Errorf("%w: %w", constants.ErrInvalidConfig, err)
		}

		for _, fe := range fieldErrs {
			result = multierr.Append(result, fmt.Errorf("%w: %s failed %q", constants.ErrInvalidConfig, fe.Field(), fe.Tag()))
		}
	}

	switch {
	case c.APIKey == "" && c.BearerToken == "":
		result = multierr.Append(result, constants.ErrNoCredentials)
	case c.APIKey != "" && c.BearerToken != "":
		result = multierr.Append(result, constants.ErrAmbiguousCredentials)
	}

	return result
}
