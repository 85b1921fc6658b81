// Package lockstep provides types, interfaces, and helpers for working with the
// Lockstep Platform API.
//
// # Overview
//
// The lockstep package defines the records (InvoiceModel, CodeDefinitionModel,
// CurrencyRateModel, ...), the result types every call returns, and the
// interfaces of the per-resource clients. A concrete client is built by the
// lsclient package:
//
//	cli, err := lsclient.NewWithAPIKey(ctx, "sbx", os.Getenv("LOCKSTEP_API_KEY"))
//	if err != nil { log.Fatal(err) }
//
//	resp, err := cli.Invoices().Retrieve(ctx, "abc", nil)
//	if err != nil { log.Fatal(err) } // transport or decode failure
//	if !resp.OK() { log.Printf("lookup failed: %v", resp.Err()) }
//	invoice, _ := resp.Value()
//
// # Results and errors
//
// A JSON call returns a *Response[T]. Any HTTP response becomes a Response:
// a 2xx status carries a value, anything else an *ErrorResult. When the error
// body is empty or not JSON, a synthetic ErrorResult holds the status and raw
// body instead.
//
// Calls return a Go error only when the Response cannot be trusted:
// *TransportError when no HTTP response was obtained, *DecodeError when a 2xx
// body does not match the expected shape, and ErrInvalidRequest when the call
// was rejected locally before anything was sent.
//
// Binary endpoints such as Invoices().RetrievePDF return a *RawResponse; its
// OK and Err methods discriminate success the same way.
//
// # Queries and pagination
//
// Query endpoints return one FetchResult page per call. Paging is explicit:
//
//	opts := lockstep.NewQueryOptions().WithFilter("invoiceStatusCode eq 'Open'").WithPageSize(100)
//	for {
//	  resp, err := cli.Invoices().Query(ctx, opts)
//	  if err != nil || !resp.OK() { break }
//	  page, _ := resp.Value()
//	  // use page.Records
//	  if !page.HasMore() { break }
//	  opts.WithPageNumber(page.NextPageNumber())
//	}
//
// Options left unset are omitted from the request URL.
//
// # Optional fields
//
// Record fields the server may omit are Optional[T]. Absent values are left
// out when a record is sent and a JSON null decodes as absent.
//
// # Interceptors and metrics
//
// An InterceptorChain in Config runs hooks around every request. Logging,
// header and Prometheus metrics interceptors are provided; see
// NewMetricsCollector.
package lockstep
