package lockstep

import (
	"fmt"
	"net/url"
	"strings"
)

// QueryOptions are the filter and paging parameters shared by query endpoints.
// Unset options are left out of the request URL.
type QueryOptions struct {
	// Filter is a Searchlight expression such as `invoiceStatusCode eq 'Open'`.
	Filter Optional[string]
	// Include names related collections to embed in each record.
	Include []string
	// Order is a sort expression such as `invoiceDate desc`.
	Order Optional[string]
	// PageSize defaults to 250 on the server, with a maximum of 500.
	PageSize Optional[int]
	// PageNumber is zero-based.
	PageNumber Optional[int]
}

// NewQueryOptions creates empty query options.
func NewQueryOptions() *QueryOptions {
	return &QueryOptions{}
}

// WithFilter sets the filter expression.
func (q *QueryOptions) WithFilter(filter string) *QueryOptions {
	q.Filter = Some(filter)

	return q
}

// WithInclude appends related collections to include.
func (q *QueryOptions) WithInclude(include ...string) *QueryOptions {
	q.Include = append(q.Include, include...)

	return q
}

// WithOrder sets the sort expression.
func (q *QueryOptions) WithOrder(order string) *QueryOptions {
	q.Order = Some(order)

	return q
}

// WithPageSize sets the page size.
func (q *QueryOptions) WithPageSize(size int) *QueryOptions {
	q.PageSize = Some(size)

	return q
}

// WithPageNumber sets the zero-based page number.
func (q *QueryOptions) WithPageNumber(page int) *QueryOptions {
	q.PageNumber = Some(page)

	return q
}

// ToValues converts the options to URL query values.
func (q *QueryOptions) ToValues() url.Values {
	values := url.Values{}
	if q == nil {
		return values
	}

	setOptional(values, "filter", q.Filter)
	setList(values, "include", q.Include)
	setOptional(values, "order", q.Order)
	setOptional(values, "pageSize", q.PageSize)
	setOptional(values, "pageNumber", q.PageNumber)

	return values
}

// RetrieveOptions apply to single-record retrieval.
type RetrieveOptions struct {
	Include []string
}

// ToValues converts the options to URL query values.
func (o *RetrieveOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	setList(values, "include", o.Include)

	return values
}

// CurrencyRateOptions select the rate to retrieve.
type CurrencyRateOptions struct {
	// Date is the rate date as YYYY-MM-DD. The server uses today when unset.
	Date Optional[string]
	// DataProvider names the rate source.
	DataProvider Optional[string]
}

// ToValues converts the options to URL query values.
func (o *CurrencyRateOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	setOptional(values, "date", o.Date)
	setOptional(values, "dataProvider", o.DataProvider)

	return values
}

// ReportOptions shape a financial report.
type ReportOptions struct {
	StartDate                Optional[string]
	EndDate                  Optional[string]
	ColumnOption             Optional[string]
	DisplayDepth             Optional[int]
	ComparisonPeriod         Optional[string]
	ShowCurrencyDifference   Optional[bool]
	ShowPercentageDifference Optional[bool]
}

// ToValues converts the options to URL query values.
func (o *ReportOptions) ToValues() url.Values {
	values := url.Values{}
	if o == nil {
		return values
	}

	setOptional(values, "startDate", o.StartDate)
	setOptional(values, "endDate", o.EndDate)
	setOptional(values, "columnOption", o.ColumnOption)
	setOptional(values, "displayDepth", o.DisplayDepth)
	setOptional(values, "comparisonPeriod", o.ComparisonPeriod)
	setOptional(values, "showCurrencyDifference", o.ShowCurrencyDifference)
	setOptional(values, "showPercentageDifference", o.ShowPercentageDifference)

	return values
}

func setOptional[T any](values url.Values, key string, opt Optional[T]) {
	v, ok := opt.Get()
	if !ok {
		return
	}

	s := fmt.Sprint(v)
	if s == "" {
		return
	}

	values.Set(key, s)
}

func setList(values url.Values, key string, items []string) {
	kept := make([]string, 0, len(items))

	for _, item := range items {
		if item = strings.TrimSpace(item); item != "" {
			kept = append(kept, item)
		}
	}

	if len(kept) > 0 {
		values.Set(key, strings.Join(kept, ","))
	}
}
