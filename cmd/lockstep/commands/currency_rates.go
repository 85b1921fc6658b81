package commands

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

// NewCurrencyRateCommand creates the currency-rate command.
func NewCurrencyRateCommand() *cobra.Command {
	var (
		date     string
		provider string
	)

	cmd := &cobra.Command{
		Use:     "currency-rate SOURCE DESTINATION",
		Aliases: []string{"fx"},
		Short:   "Show a currency exchange rate",
		Long:    "Show the rate between two ISO 4217 currencies, for today or for --date (YYYY-MM-DD)",
		Args:    cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			opts := &lockstep.CurrencyRateOptions{}
			if date != "" {
				opts.Date = lockstep.Some(date)
			}

			if provider != "" {
				opts.DataProvider = lockstep.Some(provider)
			}

			resp, err := client.CurrencyRates().Retrieve(commandContext(cmd),
				strings.ToUpper(args[0]), strings.ToUpper(args[1]), opts)
			if err != nil {
				return err
			}

			return outputResponse(cmd, resp, renderCurrencyRate)
		},
	}

	cmd.Flags().StringVar(&date, "date", "", "rate date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&provider, "provider", "", "rate data provider")

	return cmd
}

func renderCurrencyRate(w io.Writer, rate lockstep.CurrencyRateModel) error {
	return renderProperties(w, [][2]string{
		{"Source", rate.SourceCurrency},
		{"Destination", rate.DestinationCurrency},
		{"Date", rate.Date.String()},
		{"Rate", rate.CurrencyRate.String()},
	})
}
