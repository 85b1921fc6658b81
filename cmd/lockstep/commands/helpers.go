package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-runewidth"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/lockstep-client/internal/constants"
	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

// Common string constants used throughout the commands package.
const (
	NotAvailable = "N/A"
	Masked       = "***"

	// Output formats.
	OutputFormatTable = "table"
	OutputFormatJSON  = "json"
	OutputFormatYAML  = "yaml"

	defaultJSONIndent = 2
)

var titleCaser = cases.Title(language.English)

// ValidateOutputFormat rejects formats other than table, json and yaml.
func ValidateOutputFormat(format string) error {
	switch format {
	case OutputFormatTable, OutputFormatJSON, OutputFormatYAML:
		return nil
	default:
		return fmt.Errorf("%w: %q (use table, json or yaml)", constants.ErrInvalidOutputFormat, format)
	}
}

// StandardJSONRenderer writes v as indented JSON.
func StandardJSONRenderer(w io.Writer, v interface{}) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", strings.Repeat(" ", defaultJSONIndent))

	return encoder.Encode(v)
}

// StandardYAMLRenderer writes v as YAML.
func StandardYAMLRenderer(w io.Writer, v interface{}) error {
	encoder := yaml.NewEncoder(w)
	defer func() { _ = encoder.Close() }()

	return encoder.Encode(v)
}

// renderTable writes rows under header. Long cells are truncated.
func renderTable(w io.Writer, header []string, rows [][]string) error {
	table := tablewriter.NewWriter(w)
	table.Header(header)

	for _, row := range rows {
		cells := make([]string, len(row))
		for i, value := range row {
			cells[i] = cell(value)
		}

		err := table.Append(cells)
		if err != nil {
			return fmt.Errorf("failed to append table row: %w", err)
		}
	}

	err := table.Render()
	if err != nil {
		return fmt.Errorf("failed to render table: %w", err)
	}

	return nil
}

// renderProperties writes a two column Property/Value table.
func renderProperties(w io.Writer, properties [][2]string) error {
	rows := make([][]string, 0, len(properties))
	for _, property := range properties {
		rows = append(rows, []string{property[0], property[1]})
	}

	return renderTable(w, []string{"Property", "Value"}, rows)
}

func cell(value string) string {
	if value == "" {
		return NotAvailable
	}

	return runewidth.Truncate(value, constants.TableCellMaxLen, "...")
}

// statusLabel title-cases a status code such as "OPEN" or "past due".
func statusLabel(status string) string {
	return titleCaser.String(strings.ToLower(status))
}

// outputFormat is the --output flag, or the configured default.
func outputFormat() string {
	format := viper.GetString("output")
	if format == "" {
		return OutputFormatTable
	}

	return format
}

// outputResponse prints a single-record response. JSON output is the whole
// envelope, so failures are printed as well as returned.
func outputResponse[T any](cmd *cobra.Command, resp *lockstep.Response[T], table func(io.Writer, T) error) error {
	w := cmd.OutOrStdout()

	switch outputFormat() {
	case OutputFormatJSON:
		err := StandardJSONRenderer(w, resp)
		if err != nil {
			return err
		}

		_, err = resp.Unwrap()

		return err
	case OutputFormatYAML:
		value, err := resp.Unwrap()
		if err != nil {
			return err
		}

		return StandardYAMLRenderer(w, value)
	default:
		value, err := resp.Unwrap()
		if err != nil {
			return err
		}

		return table(w, value)
	}
}

// outputRecords prints records collected from one or more pages.
func outputRecords[T any](cmd *cobra.Command, records []T, table func(io.Writer, []T) error) error {
	w := cmd.OutOrStdout()

	switch outputFormat() {
	case OutputFormatJSON:
		return StandardJSONRenderer(w, records)
	case OutputFormatYAML:
		return StandardYAMLRenderer(w, records)
	default:
		if len(records) == 0 {
			_, _ = io.WriteString(w, "No records found\n")

			return nil
		}

		return table(w, records)
	}
}

// fetchPages reads zero-based pages from startPage on. Without all only one page is read;
// with all it follows HasMore until maxPages pages have been read. The last
// page read is returned with the records so callers can report what is left.
func fetchPages[T any](
	ctx context.Context,
	fetch func(ctx context.Context, pageNumber int) (*lockstep.Response[lockstep.FetchResult[T]], error),
	startPage int,
	all bool,
	maxPages int,
) ([]T, *lockstep.FetchResult[T], error) {
	var records []T

	pageNumber := startPage

	for read := 0; ; read++ {
		resp, err := fetch(ctx, pageNumber)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to fetch page %d: %w", pageNumber, err)
		}

		page, err := resp.Unwrap()
		if err != nil {
			return nil, nil, fmt.Errorf("failed to fetch page %d: %w", pageNumber, err)
		}

		records = append(records, page.Records...)

		if !all || !page.HasMore() || read+1 >= maxPages {
			return records, &page, nil
		}

		pageNumber = page.NextPageNumber()
	}
}

// writePageHint tells table readers how to see the rest of a result set.
func writePageHint[T any](w io.Writer, page *lockstep.FetchResult[T]) {
	if page == nil || !page.HasMore() {
		return
	}

	_, _ = fmt.Fprintf(w, "\nShowing %d of %d records. Use --page %d or --all to see more.\n",
		(page.PageNumber+1)*page.PageSize, page.TotalCount, page.NextPageNumber())
}

// queryOptions builds options from the shared list flags.
func queryOptions(filter, order string, include []string, pageSize int) *lockstep.QueryOptions {
	opts := lockstep.NewQueryOptions()
	if filter != "" {
		opts.WithFilter(filter)
	}

	if order != "" {
		opts.WithOrder(order)
	}

	if len(include) > 0 {
		opts.WithInclude(include...)
	}

	if pageSize > 0 {
		opts.WithPageSize(pageSize)
	}

	return opts
}

// listFlags are the flags shared by query commands.
type listFlags struct {
	filter   string
	order    string
	include  []string
	pageSize int
	page     int
	all      bool
	maxPages int
}

func (f *listFlags) register(cmd *cobra.Command, defaultPageSize int) {
	cmd.Flags().StringVar(&f.filter, "filter", "", "Searchlight filter expression")
	cmd.Flags().StringVar(&f.order, "order", "", "sort expression, e.g. \"invoiceDate desc\"")
	cmd.Flags().StringSliceVar(&f.include, "include", nil, "related collections to include")
	cmd.Flags().IntVar(&f.pageSize, "page-size", defaultPageSize, "records per page")
	cmd.Flags().IntVar(&f.page, "page", 0, "zero-based page to start from")
	cmd.Flags().BoolVar(&f.all, "all", false, "fetch following pages")
	cmd.Flags().IntVar(&f.maxPages, "max-pages", constants.DefaultMaxPages, "stop after this many pages with --all")
}

func (f *listFlags) options(pageNumber int) *lockstep.QueryOptions {
	return queryOptions(f.filter, f.order, f.include, f.pageSize).WithPageNumber(pageNumber)
}
