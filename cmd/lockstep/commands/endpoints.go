package commands

import (
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lockstep-client/internal/client"
)

// EndpointInfo describes one API operation the client can call.
type EndpointInfo struct {
	Name   string   `json:"name"             yaml:"name"`
	Method string   `json:"method"           yaml:"method"`
	Path   string   `json:"path"             yaml:"path"`
	Query  []string `json:"query,omitempty"  yaml:"query,omitempty"`
	Accept string   `json:"accept,omitempty" yaml:"accept,omitempty"`
}

// NewEndpointsCommand creates the endpoints command.
func NewEndpointsCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "endpoints",
		Short: "List the API operations this client supports",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			routes := client.Routes()

			infos := make([]EndpointInfo, 0, len(routes))
			for _, route := range routes {
				infos = append(infos, EndpointInfo{
					Name:   route.Name,
					Method: route.Method,
					Path:   route.Path,
					Query:  route.Query,
					Accept: route.Accept,
				})
			}

			return outputRecords(cmd, infos, renderEndpointTable)
		},
	}
}

func renderEndpointTable(w io.Writer, infos []EndpointInfo) error {
	rows := make([][]string, 0, len(infos))
	for _, info := range infos {
		rows = append(rows, []string{info.Name, info.Method, info.Path, strings.Join(info.Query, ",")})
	}

	return renderTable(w, []string{"Name", "Method", "Path", "Query"}, rows)
}
