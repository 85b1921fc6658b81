package commands

import (
	"io"
	"runtime"

	"github.com/spf13/cobra"

	"github.com/fivetwenty-io/lockstep-client/internal/constants"
)

// VersionInfo describes the CLI build.
type VersionInfo struct {
	Version    string `json:"version"     yaml:"version"`
	Commit     string `json:"commit"      yaml:"commit"`
	Built      string `json:"built"       yaml:"built"`
	SDKVersion string `json:"sdk_version" yaml:"sdk_version"`
	GoVersion  string `json:"go_version"  yaml:"go_version"`
}

// NewVersionCommand creates the version command.
func NewVersionCommand(version, commit, date string) *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Display version information",
		Long:  "Display detailed version information about the Lockstep CLI",
		RunE: func(cmd *cobra.Command, args []string) error {
			info := VersionInfo{
				Version:    version,
				Commit:     commit,
				Built:      date,
				SDKVersion: constants.SDKVersion,
				GoVersion:  runtime.Version(),
			}

			w := cmd.OutOrStdout()

			switch outputFormat() {
			case OutputFormatJSON:
				return StandardJSONRenderer(w, info)
			case OutputFormatYAML:
				return StandardYAMLRenderer(w, info)
			default:
				return renderVersionTable(w, info)
			}
		},
	}
}

func renderVersionTable(w io.Writer, info VersionInfo) error {
	return renderProperties(w, [][2]string{
		{"Version", info.Version},
		{"Commit", info.Commit},
		{"Built", info.Built},
		{"SDK Version", info.SDKVersion},
		{"Go Version", info.GoVersion},
	})
}
