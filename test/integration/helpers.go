//go:build integration

package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"os/exec"
	"strings"
	"testing"
	"time"

	"github.com/joho/godotenv"
	"github.com/stretchr/testify/require"

	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
	"github.com/fivetwenty-io/lockstep-client/pkg/lsclient"
)

// TestConfig holds configuration for integration tests.
type TestConfig struct {
	APIKey     string
	BinaryPath string
	Verbose    bool
}

// LoadTestConfig loads configuration from the environment, after an
// optional .env next to the tests.
func LoadTestConfig() *TestConfig {
	_ = godotenv.Load()

	return &TestConfig{
		APIKey:     os.Getenv("LOCKSTEP_API_KEY"),
		BinaryPath: getBinaryPath(),
		Verbose:    os.Getenv("LOCKSTEP_TEST_VERBOSE") == "true",
	}
}

// getBinaryPath determines the path to the lockstep binary.
func getBinaryPath() string {
	if path := os.Getenv("LOCKSTEP_BINARY_PATH"); path != "" {
		return path
	}

	for _, candidate := range []string{"../../lockstep", "./lockstep", "../lockstep"} {
		if _, err := os.Stat(candidate); err == nil {
			return candidate
		}
	}

	return "lockstep"
}

// SkipIfMissingConfig skips the test when no sandbox API key is configured.
func (config *TestConfig) SkipIfMissingConfig(t *testing.T) {
	t.Helper()

	if config.APIKey == "" {
		t.Skip("LOCKSTEP_API_KEY not set, skipping integration test")
	}
}

// SkipIfMissingBinary skips CLI tests when the binary has not been built.
func (config *TestConfig) SkipIfMissingBinary(t *testing.T) {
	t.Helper()

	config.SkipIfMissingConfig(t)

	if _, err := exec.LookPath(config.BinaryPath); err != nil {
		t.Skipf("lockstep binary not found at %s, skipping integration test", config.BinaryPath)
	}
}

// NewSandboxClient creates a client from LOCKSTEP_* variables.
func NewSandboxClient(t *testing.T) lockstep.Client {
	t.Helper()

	client, err := lsclient.NewFromEnv(context.Background())
	require.NoError(t, err)

	return client
}

// TestContext returns a context that ends with the test or after timeout.
func TestContext(t *testing.T, timeout time.Duration) context.Context {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	t.Cleanup(cancel)

	return ctx
}

// CommandRunner provides utilities for running lockstep commands.
type CommandRunner struct {
	config *TestConfig
	t      *testing.T
}

// NewCommandRunner creates a new command runner.
func NewCommandRunner(config *TestConfig, t *testing.T) *CommandRunner {
	return &CommandRunner{
		config: config,
		t:      t,
	}
}

// Run executes a lockstep command and returns its output.
func (runner *CommandRunner) Run(args ...string) (stdout, stderr string, err error) {
	// #nosec G204 -- test binary under our control
	cmd := exec.Command(runner.config.BinaryPath, args...)

	var stdoutBuf, stderrBuf bytes.Buffer

	cmd.Stdout = &stdoutBuf
	cmd.Stderr = &stderrBuf

	if runner.config.Verbose {
		runner.t.Logf("Running: %s %s", runner.config.BinaryPath, strings.Join(args, " "))
	}

	err = cmd.Run()
	stdout = stdoutBuf.String()
	stderr = stderrBuf.String()

	if runner.config.Verbose && err != nil {
		runner.t.Logf("Command failed: %v\nStdout: %s\nStderr: %s", err, stdout, stderr)
	}

	return stdout, stderr, err
}

// AssertJSONOutput checks that output is valid JSON.
func AssertJSONOutput(t *testing.T, output string) {
	t.Helper()

	var decoded interface{}
	require.NoError(t, json.Unmarshal([]byte(output), &decoded), "output is not valid JSON: %s", output)
}
