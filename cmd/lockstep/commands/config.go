package commands

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/fivetwenty-io/lockstep-client/internal/constants"
)

const (
	configDirName  = ".lockstep"
	configFileName = "config.yml"
)

// Config represents the CLI configuration file.
type Config struct {
	Environment string `json:"env,omitempty"          yaml:"env,omitempty"`
	BaseURL     string `json:"base_url,omitempty"     yaml:"base_url,omitempty"`
	APIKey      string `json:"api_key,omitempty"      yaml:"api_key,omitempty"`
	BearerToken string `json:"bearer_token,omitempty" yaml:"bearer_token,omitempty"`
	AppName     string `json:"app_name,omitempty"     yaml:"app_name,omitempty"`
	Output      string `json:"output,omitempty"       yaml:"output,omitempty"`
	Timeout     string `json:"timeout,omitempty"      yaml:"timeout,omitempty"`
}

// configFields maps config keys to their fields.
var configFields = map[string]func(*Config) *string{
	"env":          func(c *Config) *string { return &c.Environment },
	"base_url":     func(c *Config) *string { return &c.BaseURL },
	"api_key":      func(c *Config) *string { return &c.APIKey },
	"bearer_token": func(c *Config) *string { return &c.BearerToken },
	"app_name":     func(c *Config) *string { return &c.AppName },
	"output":       func(c *Config) *string { return &c.Output },
	"timeout":      func(c *Config) *string { return &c.Timeout },
}

var secretKeys = map[string]bool{"api_key": true, "bearer_token": true}

// NewConfigCommand creates the config command group.
func NewConfigCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "config",
		Short: "Manage CLI configuration",
		Long:  "Manage the Lockstep CLI configuration file (" + filepath.Join("~", configDirName, configFileName) + ")",
	}

	cmd.AddCommand(newConfigShowCommand())
	cmd.AddCommand(newConfigSetCommand())
	cmd.AddCommand(newConfigUnsetCommand())
	cmd.AddCommand(newConfigSetAPIKeyCommand())

	return cmd
}

func newConfigShowCommand() *cobra.Command {
	var showSecrets bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show current configuration",
		Long:  "Display the configuration file. Credentials are masked unless --show-secrets is set.",
		RunE: func(cmd *cobra.Command, args []string) error {
			config, err := loadConfig()
			if err != nil {
				return err
			}

			if !showSecrets {
				config = maskSecrets(config)
			}

			w := cmd.OutOrStdout()

			switch outputFormat() {
			case OutputFormatJSON:
				return StandardJSONRenderer(w, config)
			case OutputFormatYAML:
				return StandardYAMLRenderer(w, config)
			default:
				return renderConfigTable(w, config)
			}
		},
	}

	cmd.Flags().BoolVar(&showSecrets, "show-secrets", false, "print credentials in clear text")

	return cmd
}

func newConfigSetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set KEY VALUE",
		Short: "Set a configuration value",
		Long:  "Set a configuration value. Keys: " + strings.Join(configKeys(), ", "),
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfig(cmd.OutOrStdout(), args[0], args[1])
		},
	}
}

func newConfigUnsetCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "unset KEY",
		Short: "Unset a configuration value",
		Long:  "Remove a configuration value from the configuration file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return updateConfig(cmd.OutOrStdout(), args[0], "")
		},
	}
}

func newConfigSetAPIKeyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "set-api-key",
		Short: "Store an API key",
		Long:  "Prompt for an API key without echoing it and store it in the configuration file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			key, err := readSecret(cmd.InOrStdin(), cmd.ErrOrStderr(), "API key: ")
			if err != nil {
				return err
			}

			if key == "" {
				return constants.ErrNoAPIKeyEntered
			}

			return updateConfig(cmd.OutOrStdout(), "api_key", key)
		},
	}
}

// readSecret reads one line from in, hiding input when in is a terminal.
func readSecret(in io.Reader, prompt io.Writer, label string) (string, error) {
	_, _ = io.WriteString(prompt, label)

	if file, ok := in.(*os.File); ok && term.IsTerminal(int(file.Fd())) {
		secret, err := term.ReadPassword(int(file.Fd()))

		_, _ = io.WriteString(prompt, "\n")

		if err != nil {
			return "", fmt.Errorf("failed to read secret: %w", err)
		}

		return strings.TrimSpace(string(secret)), nil
	}

	return readLine(in)
}

func readLine(in io.Reader) (string, error) {
	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("failed to read input: %w", err)
	}

	return strings.TrimSpace(line), nil
}

func updateConfig(w io.Writer, key, value string) error {
	field, ok := configFields[key]
	if !ok {
		return fmt.Errorf("%w: %q (valid keys: %s)", constants.ErrUnknownConfigKey, key, strings.Join(configKeys(), ", "))
	}

	err := validateConfigValue(key, value)
	if err != nil {
		return err
	}

	config, err := loadConfig()
	if err != nil {
		return err
	}

	*field(config) = value

	err = saveConfig(config)
	if err != nil {
		return err
	}

	shown := value
	if secretKeys[key] && shown != "" {
		shown = Masked
	}

	if value == "" {
		_, _ = fmt.Fprintf(w, "Unset %s\n", key)
	} else {
		_, _ = fmt.Fprintf(w, "Set %s to %s\n", key, shown)
	}

	return nil
}

func validateConfigValue(key, value string) error {
	if value == "" {
		return nil
	}

	switch key {
	case "output":
		return ValidateOutputFormat(value)
	case "env":
		if value != constants.EnvironmentSandbox && value != constants.EnvironmentProduction {
			return fmt.Errorf("%w: %q (use %s or %s)", constants.ErrUnknownEnvironment, value,
				constants.EnvironmentSandbox, constants.EnvironmentProduction)
		}
	}

	return nil
}

// configFilePath is the file given with --config, or ~/.lockstep/config.yml.
func configFilePath() (string, error) {
	if file := viper.ConfigFileUsed(); file != "" {
		return file, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	return filepath.Join(home, configDirName, configFileName), nil
}

// loadConfig reads the configuration file only, so values coming from flags
// or the environment are never written back.
func loadConfig() (*Config, error) {
	path, err := configFilePath()
	if err != nil {
		return nil, err
	}

	config := &Config{}

	// #nosec G304 -- the path is the user's own config file
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return config, nil
	}

	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	err = yaml.Unmarshal(data, config)
	if err != nil {
		return nil, fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return config, nil
}

func saveConfig(config *Config) error {
	path, err := configFilePath()
	if err != nil {
		return err
	}

	err = os.MkdirAll(filepath.Dir(path), constants.ConfigDirPerm)
	if err != nil {
		return fmt.Errorf("failed to create config directory: %w", err)
	}

	data, err := yaml.Marshal(config)
	if err != nil {
		return fmt.Errorf("failed to marshal config to YAML: %w", err)
	}

	err = os.WriteFile(path, data, constants.ConfigFilePerm)
	if err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}

func maskSecrets(config *Config) *Config {
	masked := *config

	for key := range secretKeys {
		if value := configFields[key](&masked); *value != "" {
			*value = Masked
		}
	}

	return &masked
}

func renderConfigTable(w io.Writer, config *Config) error {
	properties := make([][2]string, 0, len(configFields))
	for _, key := range configKeys() {
		properties = append(properties, [2]string{key, *configFields[key](config)})
	}

	return renderProperties(w, properties)
}

func configKeys() []string {
	keys := make([]string, 0, len(configFields))
	for key := range configFields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	return keys
}
