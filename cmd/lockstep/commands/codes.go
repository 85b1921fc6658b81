package commands

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lockstep-client/internal/constants"
	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

// NewCodesCommand creates the codes command group.
func NewCodesCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:     "codes",
		Aliases: []string{"code", "code-definitions"},
		Short:   "Browse code definitions",
		Long:    "List and inspect the code definitions (status, terms and type codes) of the account",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "get CODE_DEFINITION_ID",
		Short: "Get a code definition",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.CodeDefinitions().Retrieve(commandContext(cmd), args[0], nil)
			if err != nil {
				return err
			}

			return outputResponse(cmd, resp, func(w io.Writer, code lockstep.CodeDefinitionModel) error {
				return renderCodeTable(w, []lockstep.CodeDefinitionModel{code})
			})
		},
	})
	cmd.AddCommand(newCodesListCommand())

	return cmd
}

func newCodesListCommand() *cobra.Command {
	var flags listFlags

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List code definitions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			fetch := func(ctx context.Context, pageNumber int) (*lockstep.Response[lockstep.FetchResult[lockstep.CodeDefinitionModel]], error) {
				return client.CodeDefinitions().Query(ctx, flags.options(pageNumber))
			}

			records, last, err := fetchPages(commandContext(cmd), fetch, flags.page, flags.all, flags.maxPages)
			if err != nil {
				return fmt.Errorf("failed to list code definitions: %w", err)
			}

			err = outputRecords(cmd, records, renderCodeTable)
			if err == nil && outputFormat() == OutputFormatTable {
				writePageHint(cmd.OutOrStdout(), last)
			}

			return err
		},
	}

	flags.register(cmd, constants.CodeDefinitionPageSize)

	return cmd
}

func renderCodeTable(w io.Writer, codes []lockstep.CodeDefinitionModel) error {
	rows := make([][]string, 0, len(codes))
	for _, code := range codes {
		rows = append(rows, []string{
			code.CodeDefinitionID,
			code.CodeType.String(),
			code.Code.String(),
			code.CodeDescription.String(),
		})
	}

	return renderTable(w, []string{"ID", "Type", "Code", "Description"}, rows)
}
