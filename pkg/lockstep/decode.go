package lockstep

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/fivetwenty-io/lockstep-client/internal/constants"
	"github.com/go-playground/validator/v10"
	"go.uber.org/multierr"
)

// Decoder turns a successful response body into a payload of type T.
type Decoder[T any] func(body []byte) (T, error)

var recordValidator = newRecordValidator()

func newRecordValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(jsonFieldName)

	return v
}

func jsonFieldName(fld reflect.StructField) string {
	name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	return name
}

// NewResponse builds the Response for a raw JSON response. A 2xx body that
// does not decode is returned as a *DecodeError and never as a Response.
func NewResponse[T any](raw *RawResponse, decode Decoder[T]) (*Response[T], error) {
	if !raw.OK() {
		return Failed[T](raw.StatusCode, ParseErrorResult(raw.StatusCode, raw.Body)), nil
	}

	value, err := decode(raw.Body)
	if err != nil {
		var zero T

		return nil, &DecodeError{
			StatusCode: raw.StatusCode,
			Target:     fmt.Sprintf("%T", zero),
			Body:       snippet(raw.Body),
			Err:        err,
		}
	}

	return Succeeded(raw.StatusCode, value), nil
}

// DecodeJSON decodes a single record and checks its required fields.
func DecodeJSON[T any](body []byte) (T, error) {
	var record T

	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return record, constants.ErrEmptyBody
	}

	if bytes.Equal(trimmed, []byte("null")) {
		return record, constants.ErrNullBody
	}

	err := json.Unmarshal(trimmed, &record)
	if err != nil {
		return record, err
	}

	err = validateRecord(record)
	if err != nil {
		return record, err
	}

	return record, nil
}

// DecodeList decodes a JSON array, passing each element through record.
func DecodeList[T any](record Decoder[T]) Decoder[[]T] {
	return func(body []byte) ([]T, error) {
		trimmed := bytes.TrimSpace(body)
		if len(trimmed) == 0 {
			return nil, constants.ErrEmptyBody
		}

		var elems []json.RawMessage

		err := json.Unmarshal(trimmed, &elems)
		if err != nil {
			return nil, err
		}

		return decodeRecords(elems, record)
	}
}

// DecodeFetchResult decodes a page, passing each record through record and
// copying the page metadata as sent.
func DecodeFetchResult[T any](record Decoder[T]) Decoder[FetchResult[T]] {
	return func(body []byte) (FetchResult[T], error) {
		var page rawPage

		err := decodeObject(body, &page)
		if err != nil {
			return FetchResult[T]{}, err
		}

		return assemblePage(page, record)
	}
}

// DecodeSummaryFetchResult decodes a page that also carries summary totals.
func DecodeSummaryFetchResult[T, S any](record Decoder[T]) Decoder[SummaryFetchResult[T, S]] {
	return func(body []byte) (SummaryFetchResult[T, S], error) {
		var page rawPage

		err := decodeObject(body, &page)
		if err != nil {
			return SummaryFetchResult[T, S]{}, err
		}

		result, err := assemblePage(page, record)
		if err != nil {
			return SummaryFetchResult[T, S]{}, err
		}

		var extras summaryExtras[S]

		err = json.Unmarshal(body, &extras)
		if err != nil {
			return SummaryFetchResult[T, S]{}, fmt.Errorf("decoding summary: %w", err)
		}

		return SummaryFetchResult[T, S]{
			FetchResult:  result,
			Summary:      extras.Summary,
			AgingSummary: extras.AgingSummary,
		}, nil
	}
}

type rawPage struct {
	Records    []json.RawMessage `json:"records"`
	TotalCount *int              `json:"totalCount"`
	PageSize   *int              `json:"pageSize"`
	PageNumber *int              `json:"pageNumber"`
}

type summaryExtras[S any] struct {
	Summary      Optional[S]             `json:"summary"`
	AgingSummary Optional[[]AgingBucket] `json:"agingSummary"`
}

func decodeObject(body []byte, out any) error {
	trimmed := bytes.TrimSpace(body)
	if len(trimmed) == 0 {
		return constants.ErrEmptyBody
	}

	if trimmed[0] != '{' {
		return constants.ErrNotJSONObject
	}

	return json.Unmarshal(trimmed, out)
}

func assemblePage[T any](page rawPage, record Decoder[T]) (FetchResult[T], error) {
	var err error
	if page.TotalCount == nil {
		err = multierr.Append(err, fmt.Errorf("%w: totalCount", constants.ErrMissingPageMetadata))
	}

	if page.PageSize == nil {
		err = multierr.Append(err, fmt.Errorf("%w: pageSize", constants.ErrMissingPageMetadata))
	}

	if page.PageNumber == nil {
		err = multierr.Append(err, fmt.Errorf("%w: pageNumber", constants.ErrMissingPageMetadata))
	}

	if err != nil {
		return FetchResult[T]{}, err
	}

	records, err := decodeRecords(page.Records, record)
	if err != nil {
		return FetchResult[T]{}, err
	}

	result := FetchResult[T]{
		Records:    records,
		TotalCount: *page.TotalCount,
		PageSize:   *page.PageSize,
		PageNumber: *page.PageNumber,
	}

	if len(result.Records) > result.PageSize || result.TotalCount < len(result.Records) {
		return FetchResult[T]{}, fmt.Errorf("%w: %d records, pageSize %d, totalCount %d",
			constants.ErrPageInvariantViolation, len(result.Records), result.PageSize, result.TotalCount)
	}

	return result, nil
}

func decodeRecords[T any](elems []json.RawMessage, record Decoder[T]) ([]T, error) {
	records := make([]T, 0, len(elems))

	for i, elem := range elems {
		r, err := record(elem)
		if err != nil {
			return nil, fmt.Errorf("record %d: %w", i, err)
		}

		records = append(records, r)
	}

	return records, nil
}

func validateRecord(record any) error {
	rv := reflect.ValueOf(record)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return nil
		}

		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return nil
	}

	err := recordValidator.Struct(rv.Interface())
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	var combined error
	for _, fe := range fieldErrs {
		combined = multierr.Append(combined, fmt.Errorf("%w: %s (%s)", constants.ErrRequiredField, fe.Field(), fe.Tag()))
	}

	return combined
}
