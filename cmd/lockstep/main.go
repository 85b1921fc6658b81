package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/lockstep-client/cmd/lockstep/commands"
	"github.com/fivetwenty-io/lockstep-client/internal/constants"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

var rootCmd = &cobra.Command{
	Use:   "lockstep",
	Short: "Lockstep Platform CLI",
	Long: `A command-line interface for the Lockstep Platform API.

Credentials and the target environment come from flags, LOCKSTEP_* environment
variables (a .env file in the working directory is loaded first) or
~/.lockstep/config.yml, in that order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return commands.ValidateOutputFormat(viper.GetString("output"))
	},
	PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
		if !viper.GetBool("metrics") {
			return nil
		}

		return commands.RenderMetrics(cmd.ErrOrStderr(), commands.MetricsRegistry)
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	// Global flags
	flags := rootCmd.PersistentFlags()
	flags.StringP("config", "c", "", "config file (default is $HOME/.lockstep/config.yml)")
	flags.StringP("env", "e", "", "environment: sbx or prd (default sbx)")
	flags.String("base-url", "", "API root URL, overrides --env")
	flags.String("api-key", "", "API key")
	flags.String("bearer-token", "", "JWT bearer token")
	flags.String("app-name", "", "application name sent in the User-Agent")
	flags.Duration("timeout", constants.DefaultHTTPTimeout, "HTTP timeout")
	flags.StringP("output", "o", commands.OutputFormatTable, "output format (table, json, yaml)")
	flags.BoolP("verbose", "v", false, "log API calls to stderr")
	flags.Bool("metrics", false, "print a per-endpoint call summary to stderr")

	// Bind flags to viper
	for key, flag := range map[string]string{
		"config":       "config",
		"env":          "env",
		"base_url":     "base-url",
		"api_key":      "api-key",
		"bearer_token": "bearer-token",
		"app_name":     "app-name",
		"timeout":      "timeout",
		"output":       "output",
		"verbose":      "verbose",
		"metrics":      "metrics",
	} {
		_ = viper.BindPFlag(key, flags.Lookup(flag))
	}

	// Add commands
	rootCmd.AddCommand(commands.NewVersionCommand(version, commit, date))
	rootCmd.AddCommand(commands.NewConfigCommand())
	rootCmd.AddCommand(commands.NewStatusCommand())
	rootCmd.AddCommand(commands.NewInvoicesCommand())
	rootCmd.AddCommand(commands.NewCodesCommand())
	rootCmd.AddCommand(commands.NewCurrencyRateCommand())
	rootCmd.AddCommand(commands.NewReportsCommand())
	rootCmd.AddCommand(commands.NewEndpointsCommand())
}

func initConfig() {
	err := godotenv.Load(constants.DotEnvFile)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "Error loading %s: %v\n", constants.DotEnvFile, err)
	}

	cfgFile := viper.GetString("config")

	if cfgFile != "" {
		// Use config file from the flag
		viper.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}

		// Search config in ~/.lockstep/config.yml
		viper.AddConfigPath(filepath.Join(home, ".lockstep"))
		viper.SetConfigType("yml")
		viper.SetConfigName("config")
	}

	// LOCKSTEP_API_KEY, LOCKSTEP_BASE_URL, ...
	viper.SetEnvPrefix(constants.EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		if viper.GetBool("verbose") {
			fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
