package commands

import (
	"context"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

type reportFunc func(ctx context.Context, opts *lockstep.ReportOptions) (*lockstep.Response[lockstep.FinancialReportModel], error)

// NewReportsCommand creates the reports command group.
func NewReportsCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "reports",
		Aliases: []string{"report"},
		Short:   "Run financial reports",
		Long:    "Run the income statement and balance sheet reports",
	}

	cmd.AddCommand(newReportCommand("income-statement", "Run the income statement",
		func(client lockstep.Client) reportFunc { return client.Reports().IncomeStatement }))
	cmd.AddCommand(newReportCommand("balance-sheet", "Run the balance sheet",
		func(client lockstep.Client) reportFunc { return client.Reports().BalanceSheet }))

	return cmd
}

func newReportCommand(use, short string, report func(lockstep.Client) reportFunc) *cobra.Command {
	var (
		startDate string
		endDate   string
		columns   string
		depth     int
	)

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			opts := &lockstep.ReportOptions{}
			if startDate != "" {
				opts.StartDate = lockstep.Some(startDate)
			}

			if endDate != "" {
				opts.EndDate = lockstep.Some(endDate)
			}

			if columns != "" {
				opts.ColumnOption = lockstep.Some(columns)
			}

			if depth > 0 {
				opts.DisplayDepth = lockstep.Some(depth)
			}

			resp, err := report(client)(commandContext(cmd), opts)
			if err != nil {
				return err
			}

			return outputResponse(cmd, resp, renderReport)
		},
	}

	cmd.Flags().StringVar(&startDate, "start-date", "", "first day of the report (YYYY-MM-DD)")
	cmd.Flags().StringVar(&endDate, "end-date", "", "last day of the report (YYYY-MM-DD)")
	cmd.Flags().StringVar(&columns, "columns", "", "column option, e.g. ByMonth")
	cmd.Flags().IntVar(&depth, "depth", 0, "maximum row depth")

	return cmd
}

func renderReport(w io.Writer, report lockstep.FinancialReportModel) error {
	_, _ = io.WriteString(w, strings.TrimSpace(report.ReportName.String()+" "+
		report.ReportStartDate.String()+" - "+report.ReportEndDate.String())+"\n")

	rows, _ := report.Rows.Get()

	var table [][]string

	flattenReportRows(rows, 0, &table)

	return renderTable(w, []string{"Line", "Values"}, table)
}

func flattenReportRows(rows []lockstep.FinancialReportRowModel, depth int, out *[][]string) {
	for _, row := range rows {
		cells, _ := row.Cells.Get()

		values := make([]string, 0, len(cells))
		for _, c := range cells {
			values = append(values, c.Value.String())
		}

		*out = append(*out, []string{strings.Repeat("  ", depth) + row.Label.String(), strings.Join(values, " | ")})

		children, _ := row.Rows.Get()
		flattenReportRows(children, depth+1, out)
	}
}
