package client

import (
	"context"
	"fmt"

	"github.com/fivetwenty-io/lockstep-client/internal/auth"
	"github.com/fivetwenty-io/lockstep-client/internal/constants"
	"github.com/fivetwenty-io/lockstep-client/internal/http"
	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

// Client implements the lockstep.Client interface.
type Client struct {
	dispatcher Dispatcher
	baseURL    string

	// Resource clients
	invoices               lockstep.InvoicesClient
	codeDefinitions        lockstep.CodeDefinitionsClient
	currencyRates          lockstep.CurrencyRatesClient
	customFieldDefinitions lockstep.CustomFieldDefinitionsClient
	customFieldValues      lockstep.CustomFieldValuesClient
	userAccounts           lockstep.UserAccountsClient
	attachments            lockstep.AttachmentsClient
	customers              lockstep.CustomersClient
	reports                lockstep.ReportsClient
	sync                   lockstep.SyncClient
}

// createCredentials picks the credential provider named by config.
func createCredentials(config *lockstep.Config) (auth.Credentials, error) {
	switch {
	case config.APIKey != "" && config.BearerToken != "":
		return nil, constants.ErrAmbiguousCredentials
	case config.APIKey != "":
		key, err := auth.NewAPIKey(config.APIKey)
		if err != nil {
			return nil, err
		}

		return key, nil
	case config.BearerToken != "":
		token, err := auth.NewBearerToken(config.BearerToken)
		if err != nil {
			return nil, err
		}

		return token, nil
	default:
		return nil, constants.ErrNoCredentials
	}
}

// createHTTPClientOptions builds HTTP client options from config.
func createHTTPClientOptions(config *lockstep.Config) []http.Option {
	var httpOpts []http.Option

	if config.Logger != nil {
		httpOpts = append(httpOpts, http.WithLogger(config.Logger))
	}

	if config.Debug {
		httpOpts = append(httpOpts, http.WithDebug(true))
	}

	switch {
	case config.UserAgent != "":
		httpOpts = append(httpOpts, http.WithUserAgent(config.UserAgent))
	case config.AppName != "":
		httpOpts = append(httpOpts, http.WithUserAgent(config.AppName+" "+constants.DefaultUserAgent))
	}

	if config.HTTPClient != nil {
		httpOpts = append(httpOpts, http.WithHTTPClient(config.HTTPClient))
	}

	if config.HTTPTimeout > 0 {
		httpOpts = append(httpOpts, http.WithTimeout(config.HTTPTimeout))
	}

	if config.RetryMax > 0 {
		retryWaitMin := constants.DefaultRetryWaitMin
		retryWaitMax := constants.DefaultRetryWaitMax

		if config.RetryWaitMin > 0 {
			retryWaitMin = config.RetryWaitMin
		}

		if config.RetryWaitMax > 0 {
			retryWaitMax = config.RetryWaitMax
		}

		httpOpts = append(httpOpts, http.WithRetryConfig(config.RetryMax, retryWaitMin, retryWaitMax))
	}

	if config.MaxResponseBytes > 0 {
		httpOpts = append(httpOpts, http.WithMaxResponseBytes(config.MaxResponseBytes))
	}

	if config.Interceptors != nil {
		httpOpts = append(httpOpts, http.WithInterceptors(config.Interceptors))
	}

	return httpOpts
}

// New creates a Lockstep API client for config.BaseURL, which must already
// be resolved.
func New(ctx context.Context, config *lockstep.Config) (*Client, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("creating client: %w", err)
	}

	if config.BaseURL == "" {
		return nil, fmt.Errorf("%w: base URL is required", constants.ErrInvalidConfig)
	}

	credentials, err := createCredentials(config)
	if err != nil {
		return nil, fmt.Errorf("creating credentials: %w", err)
	}

	dispatcher := http.NewClient(config.BaseURL, credentials, createHTTPClientOptions(config)...)

	client := NewWithDispatcher(dispatcher)
	client.baseURL = dispatcher.BaseURL()

	return client, nil
}

// NewWithDispatcher creates a client that sends every request through d.
func NewWithDispatcher(d Dispatcher) *Client {
	client := &Client{dispatcher: d}
	client.initializeResourceClients()

	return client
}

// BaseURL returns the API root the client talks to. It is empty for clients
// built on a custom dispatcher.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Status implements lockstep.Client.Status.
func (c *Client) Status(ctx context.Context) (*lockstep.Response[lockstep.StatusModel], error) {
	return Invoke(ctx, c.dispatcher, statusEndpoint, Call{})
}

// Resource client accessors

// Invoices implements lockstep.Client.Invoices.
func (c *Client) Invoices() lockstep.InvoicesClient {
	return c.invoices
}

// CodeDefinitions implements lockstep.Client.CodeDefinitions.
func (c *Client) CodeDefinitions() lockstep.CodeDefinitionsClient {
	return c.codeDefinitions
}

// CurrencyRates implements lockstep.Client.CurrencyRates.
func (c *Client) CurrencyRates() lockstep.CurrencyRatesClient {
	return c.currencyRates
}

// CustomFieldDefinitions implements lockstep.Client.CustomFieldDefinitions.
func (c *Client) CustomFieldDefinitions() lockstep.CustomFieldDefinitionsClient {
	return c.customFieldDefinitions
}

// CustomFieldValues implements lockstep.Client.CustomFieldValues.
func (c *Client) CustomFieldValues() lockstep.CustomFieldValuesClient {
	return c.customFieldValues
}

// UserAccounts implements lockstep.Client.UserAccounts.
func (c *Client) UserAccounts() lockstep.UserAccountsClient {
	return c.userAccounts
}

// Attachments implements lockstep.Client.Attachments.
func (c *Client) Attachments() lockstep.AttachmentsClient {
	return c.attachments
}

// Customers implements lockstep.Client.Customers.
func (c *Client) Customers() lockstep.CustomersClient {
	return c.customers
}

// Reports implements lockstep.Client.Reports.
func (c *Client) Reports() lockstep.ReportsClient {
	return c.reports
}

// Sync implements lockstep.Client.Sync.
func (c *Client) Sync() lockstep.SyncClient {
	return c.sync
}

// initializeResourceClients initializes all resource-specific clients.
func (c *Client) initializeResourceClients() {
	c.invoices = NewInvoicesClient(c.dispatcher)
	c.codeDefinitions = NewCodeDefinitionsClient(c.dispatcher)
	c.currencyRates = NewCurrencyRatesClient(c.dispatcher)
	c.customFieldDefinitions = NewCustomFieldDefinitionsClient(c.dispatcher)
	c.customFieldValues = NewCustomFieldValuesClient(c.dispatcher)
	c.userAccounts = NewUserAccountsClient(c.dispatcher)
	c.attachments = NewAttachmentsClient(c.dispatcher)
	c.customers = NewCustomersClient(c.dispatcher)
	c.reports = NewReportsClient(c.dispatcher)
	c.sync = NewSyncClient(c.dispatcher)
}

var _ lockstep.Client = (*Client)(nil)
