package commands

import (
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

// NewStatusCommand creates the status command.
func NewStatusCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check credentials and connectivity",
		Long:  "Call the Platform status endpoint and show the account the credentials belong to",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			client, err := CreateClient(cmd)
			if err != nil {
				return err
			}

			resp, err := client.Status(commandContext(cmd))
			if err != nil {
				return err
			}

			return outputResponse(cmd, resp, renderStatus)
		},
	}
}

func renderStatus(w io.Writer, status lockstep.StatusModel) error {
	loggedIn := ""
	if value, ok := status.LoggedIn.Get(); ok {
		loggedIn = strconv.FormatBool(value)
	}

	roles, _ := status.Roles.Get()

	return renderProperties(w, [][2]string{
		{"Logged In", loggedIn},
		{"User", status.UserName.String()},
		{"Account", status.AccountName.String()},
		{"Role", status.UserRole.String()},
		{"Roles", strings.Join(roles, ", ")},
		{"Group Key", status.GroupKey.String()},
		{"Base Currency", status.BaseCurrencyCode.String()},
		{"Environment", status.Environment.String()},
		{"Server Version", status.Version.String()},
	})
}
