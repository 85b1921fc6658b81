package lsclient

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"

	"github.com/fivetwenty-io/lockstep-client/internal/constants"
	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

// EnvConfig lists the LOCKSTEP_* variables NewFromEnv reads.
type EnvConfig struct {
	Environment      string        `envconfig:"ENV" default:"sbx"`
	BaseURL          string        `envconfig:"BASE_URL"`
	APIKey           string        `envconfig:"API_KEY"`
	BearerToken      string        `envconfig:"BEARER_TOKEN"`
	AppName          string        `envconfig:"APP_NAME"`
	HTTPTimeout      time.Duration `envconfig:"HTTP_TIMEOUT"`
	RetryMax         int           `envconfig:"RETRY_MAX"`
	MaxResponseBytes int64         `envconfig:"MAX_RESPONSE_BYTES"`
	Debug            bool          `envconfig:"DEBUG"`
}

// Config converts the variables to a client configuration.
func (e EnvConfig) Config() *lockstep.Config {
	return &lockstep.Config{
		Environment:      e.Environment,
		BaseURL:          e.BaseURL,
		APIKey:           e.APIKey,
		BearerToken:      e.BearerToken,
		AppName:          e.AppName,
		HTTPTimeout:      e.HTTPTimeout,
		RetryMax:         e.RetryMax,
		MaxResponseBytes: e.MaxResponseBytes,
		Debug:            e.Debug,
	}
}

// LoadEnv loads envFiles, or an optional .env when none are named, into the
// process environment without overriding variables already set, then reads
// the LOCKSTEP_* variables. A LOCKSTEP_* variable set to the empty string is
// treated as absent and is removed from the environment.
func LoadEnv(envFiles ...string) (*EnvConfig, error) {
	if len(envFiles) == 0 {
		err := godotenv.Load(constants.DotEnvFile)
		if err != nil && !errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("loading %s: %w", constants.DotEnvFile, err)
		}
	} else {
		err := godotenv.Load(envFiles...)
		if err != nil {
			return nil, fmt.Errorf("loading env files: %w", err)
		}
	}

	err := unsetEmpty(constants.EnvPrefix + "_")
	if err != nil {
		return nil, err
	}

	var env EnvConfig

	err = envconfig.Process(constants.EnvPrefix, &env)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", constants.ErrInvalidConfig, err)
	}

	return &env, nil
}

func unsetEmpty(prefix string) error {
	for _, entry := range os.Environ() {
		key, value, _ := strings.Cut(entry, "=")
		if value != "" || !strings.HasPrefix(key, prefix) {
			continue
		}

		err := os.Unsetenv(key)
		if err != nil {
			return fmt.Errorf("unsetting %s: %w", key, err)
		}
	}

	return nil
}

// NewFromEnv creates a client from LOCKSTEP_* variables. See LoadEnv.
func NewFromEnv(ctx context.Context, envFiles ...string) (lockstep.Client, error) {
	env, err := LoadEnv(envFiles...)
	if err != nil {
		return nil, err
	}

	return New(ctx, env.Config())
}
