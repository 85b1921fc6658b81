package commands

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
)

const testAPIKey = "test-api-key"

// findSubcommand finds a subcommand by name within a cobra command.
func findSubcommand(cmd *cobra.Command, name string) *cobra.Command {
	for _, c := range cmd.Commands() {
		if c.Name() == name {
			return c
		}
	}

	return nil
}

// useViper resets the global viper state for one test and points the config
// file into a temp directory.
func useViper(t *testing.T, values map[string]interface{}) {
	t.Helper()

	viper.Reset()
	t.Cleanup(viper.Reset)

	viper.SetConfigFile(filepath.Join(t.TempDir(), "config.yml"))

	for key, value := range values {
		viper.Set(key, value)
	}
}

// useServer starts a server and points the CLI at it.
func useServer(t *testing.T, handler http.HandlerFunc, values map[string]interface{}) {
	t.Helper()

	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	if values == nil {
		values = map[string]interface{}{}
	}

	values["base_url"] = server.URL
	values["api_key"] = testAPIKey

	useViper(t, values)
}

func runCommand(t *testing.T, cmd *cobra.Command, stdin string, args ...string) (string, error) {
	t.Helper()

	var stdout, stderr bytes.Buffer

	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)

	err := cmd.Execute()

	return stdout.String(), err
}

func writeJSON(t *testing.T, w http.ResponseWriter, status int, body interface{}) {
	t.Helper()

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	assert.NoError(t, json.NewEncoder(w).Encode(body))
}
