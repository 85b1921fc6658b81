package client

import (
	"context"
	"net/url"

	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

// CurrencyRatesClient implements lockstep.CurrencyRatesClient.
type CurrencyRatesClient struct {
	dispatcher Dispatcher
}

// NewCurrencyRatesClient creates a new currency rates client.
func NewCurrencyRatesClient(d Dispatcher) *CurrencyRatesClient {
	return &CurrencyRatesClient{dispatcher: d}
}

// Retrieve implements lockstep.CurrencyRatesClient.Retrieve.
func (c *CurrencyRatesClient) Retrieve(
	ctx context.Context, sourceCurrency, destinationCurrency string, opts *lockstep.CurrencyRateOptions,
) (*lockstep.Response[lockstep.CurrencyRateModel], error) {
	return Invoke(ctx, c.dispatcher, currencyRateEndpoints.Retrieve, Call{
		Path: map[string]string{
			"sourceCurrency":      sourceCurrency,
			"destinationCurrency": destinationCurrency,
		},
		Query: opts.ToValues(),
	})
}

// RetrieveBulk implements lockstep.CurrencyRatesClient.RetrieveBulk.
func (c *CurrencyRatesClient) RetrieveBulk(
	ctx context.Context, destinationCurrency string, conversions []lockstep.BulkCurrencyConversionModel,
) (*lockstep.Response[[]lockstep.CurrencyRateModel], error) {
	return Invoke(ctx, c.dispatcher, currencyRateEndpoints.RetrieveBulk, Call{
		Query: url.Values{"destinationCurrency": {destinationCurrency}},
		Body:  conversions,
	})
}
