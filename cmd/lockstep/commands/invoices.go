package commands

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lockstep-client/internal/constants"
	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

// NewInvoicesCommand creates the invoices command group.
func NewInvoicesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "invoices",
		Aliases: []string{"invoice", "inv"},
		Short:   "Manage invoices",
		Long:    "Retrieve, query, download and delete invoices",
	}

	cmd.AddCommand(newInvoicesGetCommand())
	cmd.AddCommand(newInvoicesListCommand())
	cmd.AddCommand(newInvoicesSummaryCommand())
	cmd.AddCommand(newInvoicesAtRiskCommand())
	cmd.AddCommand(newInvoicesPDFCommand())
	cmd.AddCommand(newInvoicesDeleteCommand())

	return cmd
}

func newInvoicesGetCommand() *cobra.Command {
	var include []string

	cmd := &cobra.Command{
		Use:   "get INVOICE_ID",
		Short: "Get invoice details",
		Long:  "Display a single invoice",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Invoices().Retrieve(commandContext(cmd), args[0], &lockstep.RetrieveOptions{Include: include})
			if err != nil {
				return err
			}

			return outputResponse(cmd, resp, renderInvoice)
		},
	}

	cmd.Flags().StringSliceVar(&include, "include", nil, "related collections to include (Addresses, Lines, Payments, ...)")

	return cmd
}

func newInvoicesListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List invoices",
		Long:  "Query invoices with an optional filter. Use --all to follow pages up to --max-pages.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			fetch := func(ctx context.Context, pageNumber int) (*lockstep.Response[lockstep.FetchResult[lockstep.InvoiceModel]], error) {
				return client.Invoices().Query(ctx, flags.options(pageNumber))
			}

			records, last, err := fetchPages(commandContext(cmd), fetch, flags.page, flags.all, flags.maxPages)
			if err != nil {
				return fmt.Errorf("failed to list invoices: %w", err)
			}

			err = outputRecords(cmd, records, renderInvoiceTable)
			if err == nil && outputFormat() == OutputFormatTable {
				writePageHint(cmd.OutOrStdout(), last)
			}

			return err
		},
	}

	flags.register(cmd, constants.DefaultPageSize)

	return cmd
}

func newInvoicesSummaryCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "summary",
		Short: "Show the invoice summary view",
		Long:  "Query the invoice summary view, including totals and aging buckets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Invoices().QuerySummaryView(commandContext(cmd), flags.options(flags.page))
			if err != nil {
				return err
			}

			return outputResponse(cmd, resp, renderInvoiceSummary)
		},
	}

	flags.register(cmd, constants.DefaultPageSize)

	return cmd
}

func newInvoicesAtRiskCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "at-risk",
		Short: "List at-risk invoices",
		Long:  "Query the at-risk invoice view",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			fetch := func(ctx context.Context, pageNumber int) (*lockstep.Response[lockstep.FetchResult[lockstep.AtRiskInvoiceSummaryModel]], error) {
				return client.Invoices().QueryAtRiskView(ctx, flags.options(pageNumber))
			}

			records, last, err := fetchPages(commandContext(cmd), fetch, flags.page, flags.all, flags.maxPages)
			if err != nil {
				return fmt.Errorf("failed to list at-risk invoices: %w", err)
			}

			err = outputRecords(cmd, records, renderAtRiskTable)
			if err == nil && outputFormat() == OutputFormatTable {
				writePageHint(cmd.OutOrStdout(), last)
			}

			return err
		},
	}

	flags.register(cmd, constants.DefaultPageSize)

	return cmd
}

func newInvoicesPDFCommand() *cobra.Command {
	var outputFile string

	cmd := &cobra.Command{
		Use:   "pdf INVOICE_ID",
		Short: "Download an invoice PDF",
		Long:  "Download the PDF rendition of an invoice to --output-file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if outputFile == "" {
				return constants.ErrOutputFileRequired
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			raw, err := client.Invoices().RetrievePDF(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			if !raw.OK() {
				return raw.Err()
			}

			err = os.WriteFile(filepath.Clean(outputFile), raw.Body, constants.ConfigFilePerm)
			if err != nil {
				return fmt.Errorf("failed to write %s: %w", outputFile, err)
			}

			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d bytes (%s) to %s\n", len(raw.Body), raw.ContentType(), outputFile)

			return nil
		},
	}

	cmd.Flags().StringVarP(&outputFile, "output-file", "f", "", "file to write the PDF to")

	return cmd
}

func newInvoicesDeleteCommand() *cobra.Command {
	var force bool

	cmd := &cobra.Command{
		Use:   "delete INVOICE_ID",
		Short: "Delete an invoice",
		Long:  "Delete an invoice. Asks for confirmation unless --force is set.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !force {
				_, _ = fmt.Fprintf(cmd.ErrOrStderr(), "Delete invoice %s? Type the invoice id to confirm: ", args[0])

				answer, err := readLine(cmd.InOrStdin())
				if err != nil {
					return err
				}

				if answer != args[0] {
					_, _ = io.WriteString(cmd.OutOrStdout(), "Delete cancelled\n")

					return nil
				}
			}

			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Invoices().Delete(commandContext(cmd), args[0])
			if err != nil {
				return err
			}

			return outputResponse(cmd, resp, func(w io.Writer, result lockstep.DeleteResult) error {
				return renderDeleteResult(w, args[0], result)
			})
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "skip confirmation")

	return cmd
}

func renderInvoice(w io.Writer, invoice lockstep.InvoiceModel) error {
	return renderProperties(w, [][2]string{
		{"Invoice ID", invoice.InvoiceID},
		{"Reference", invoice.ReferenceCode.String()},
		{"Customer ID", invoice.CustomerID.String()},
		{"Status", statusLabel(invoice.InvoiceStatusCode.String())},
		{"Type", invoice.InvoiceTypeCode.String()},
		{"Currency", invoice.CurrencyCode.String()},
		{"Total", invoice.TotalAmount.String()},
		{"Outstanding", invoice.OutstandingBalanceAmount.String()},
		{"Invoice Date", invoice.InvoiceDate.String()},
		{"Due Date", invoice.PaymentDueDate.String()},
		{"Modified", invoice.Modified.String()},
	})
}

func renderInvoiceTable(w io.Writer, invoices []lockstep.InvoiceModel) error {
	rows := make([][]string, 0, len(invoices))
	for _, invoice := range invoices {
		rows = append(rows, []string{
			invoice.InvoiceID,
			invoice.ReferenceCode.String(),
			statusLabel(invoice.InvoiceStatusCode.String()),
			invoice.CurrencyCode.String(),
			invoice.TotalAmount.String(),
			invoice.OutstandingBalanceAmount.String(),
			invoice.PaymentDueDate.String(),
		})
	}

	return renderTable(w, []string{"Invoice ID", "Reference", "Status", "Currency", "Total", "Outstanding", "Due"}, rows)
}

func renderInvoiceSummary(w io.Writer, result lockstep.SummaryFetchResult[lockstep.InvoiceSummaryModel, lockstep.InvoiceSummaryTotalsModel]) error {
	if len(result.Records) == 0 {
		_, _ = io.WriteString(w, "No records found\n")
	} else {
		rows := make([][]string, 0, len(result.Records))
		for _, summary := range result.Records {
			rows = append(rows, []string{
				summary.InvoiceNumber.String(),
				summary.CustomerName.String(),
				statusLabel(summary.Status.String()),
				summary.InvoiceAmount.String(),
				summary.OutstandingBalance.String(),
				summary.DaysPastDue.String(),
			})
		}

		err := renderTable(w, []string{"Number", "Customer", "Status", "Amount", "Outstanding", "Days Past Due"}, rows)
		if err != nil {
			return err
		}
	}

	if totals, ok := result.Summary.Get(); ok {
		_, _ = io.WriteString(w, "\n")

		err := renderProperties(w, [][2]string{
			{"Open Invoices", totals.TotalInvoicesOpen.String()},
			{"Past Due Invoices", totals.TotalInvoicesPastDue.String()},
			{"Total Amount", totals.TotalInvoiceAmount.String()},
			{"Total Balance", totals.TotalInvoiceBalance.String()},
			{"Past Due Balance", totals.TotalPastDueBalance.String()},
		})
		if err != nil {
			return err
		}
	}

	if buckets, ok := result.AgingSummary.Get(); ok && len(buckets) > 0 {
		_, _ = io.WriteString(w, "\n")

		rows := make([][]string, 0, len(buckets))
		for _, bucket := range buckets {
			rows = append(rows, []string{bucket.Bucket.String(), bucket.InvoiceCount.String(), bucket.OutstandingBalanceAmount.String()})
		}

		err := renderTable(w, []string{"Aging Bucket", "Invoices", "Outstanding"}, rows)
		if err != nil {
			return err
		}
	}

	writePageHint(w, &result.FetchResult)

	return nil
}

func renderAtRiskTable(w io.Writer, invoices []lockstep.AtRiskInvoiceSummaryModel) error {
	rows := make([][]string, 0, len(invoices))
	for _, invoice := range invoices {
		rows = append(rows, []string{
			invoice.InvoiceNumber.String(),
			invoice.CustomerName.String(),
			statusLabel(invoice.Status.String()),
			invoice.OutstandingBalance.String(),
			invoice.PaymentDueDate.String(),
			invoice.DaysPastDue.String(),
		})
	}

	return renderTable(w, []string{"Number", "Customer", "Status", "Outstanding", "Due", "Days Past Due"}, rows)
}

func renderDeleteResult(w io.Writer, id string, result lockstep.DeleteResult) error {
	failures, _ := result.Errors.Get()
	if len(failures) == 0 {
		_, _ = fmt.Fprintf(w, "Deleted %s\n", id)

		return nil
	}

	rows := make([][]string, 0, len(failures))
	for i, failure := range failures {
		rows = append(rows, []string{strconv.Itoa(i + 1), strings.TrimSpace(failure.Error())})
	}

	return renderTable(w, []string{"#", "Error"}, rows)
}
