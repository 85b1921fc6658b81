package lockstep

// FetchResult is one page of a query. Records never outnumber PageSize, and
// TotalCount counts matches across all pages.
type FetchResult[T any] struct {
	Records    []T `json:"records"    yaml:"records"`
	TotalCount int `json:"totalCount" yaml:"totalCount"`
	PageSize   int `json:"pageSize"   yaml:"pageSize"`
	PageNumber int `json:"pageNumber" yaml:"pageNumber"`
}

// HasMore reports whether pages after this one hold further records.
func (f *FetchResult[T]) HasMore() bool {
	if f.PageSize <= 0 {
		return false
	}

	return (f.PageNumber+1)*f.PageSize < f.TotalCount
}

// NextPageNumber returns the page number a caller should request next.
// Pages are zero-based.
func (f *FetchResult[T]) NextPageNumber() int {
	return f.PageNumber + 1
}

// SummaryFetchResult is a page that also carries totals computed over the
// whole result set.
type SummaryFetchResult[T, S any] struct {
	FetchResult[T] `yaml:",inline"`

	Summary      Optional[S]             `json:"summary,omitzero"      yaml:"summary,omitempty"`
	AgingSummary Optional[[]AgingBucket] `json:"agingSummary,omitzero" yaml:"agingSummary,omitempty"`
}

// AgingBucket is one aging band of outstanding amounts.
type AgingBucket struct {
	Bucket                   Optional[string] `json:"bucket,omitzero"`
	OutstandingBalanceAmount Optional[Money]  `json:"outstandingBalanceAmount,omitzero"`
	InvoiceCount             Optional[int]    `json:"invoiceCount,omitzero"`
}
