package commands

import (
	"context"
	"io"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
	"github.com/fivetwenty-io/lockstep-client/pkg/lsclient"
)

// MetricsRegistry holds the metrics of every call made by this process.
var MetricsRegistry = prometheus.NewRegistry()

var metricsCollector = lockstep.NewMetricsCollector(MetricsRegistry)

// CreateClient builds a client from flags, LOCKSTEP_* variables and the
// config file, in that order of precedence.
func CreateClient(cmd *cobra.Command) (lockstep.Client, error) {
	logger := newLogger(cmd.ErrOrStderr(), viper.GetBool("verbose"))

	chain := lockstep.NewInterceptorChain()
	chain.AddRequestInterceptor(lockstep.LoggingInterceptor(logger))
	chain.AddResponseInterceptor(lockstep.LoggingResponseInterceptor(logger))
	metricsCollector.Attach(chain)

	config := &lockstep.Config{
		Environment:  viper.GetString("env"),
		BaseURL:      viper.GetString("base_url"),
		APIKey:       viper.GetString("api_key"),
		BearerToken:  viper.GetString("bearer_token"),
		AppName:      viper.GetString("app_name"),
		HTTPTimeout:  viper.GetDuration("timeout"),
		Logger:       logger,
		Interceptors: chain,
	}

	return lsclient.New(commandContext(cmd), config)
}

// newLogger returns a console logger on w when verbose is set.
func newLogger(w io.Writer, verbose bool) lockstep.Logger {
	if !verbose {
		return lockstep.NoopLogger{}
	}

	log := zerolog.New(zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}).
		Level(zerolog.DebugLevel).
		With().Timestamp().Logger()

	return lockstep.NewZerologLogger(log)
}

func commandContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}

	return context.Background()
}
