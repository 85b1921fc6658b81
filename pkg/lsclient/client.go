package lsclient

import (
	"context"
	"fmt"
	"strings"

	"github.com/fivetwenty-io/lockstep-client/internal/client"
	"github.com/fivetwenty-io/lockstep-client/internal/constants"
	"github.com/fivetwenty-io/lockstep-client/pkg/lockstep"
)

var environmentURLs = map[string]string{
	constants.EnvironmentSandbox:    constants.SandboxBaseURL,
	constants.EnvironmentProduction: constants.ProductionBaseURL,
}

// New creates a Lockstep API client. config is not modified.
func New(ctx context.Context, config *lockstep.Config) (lockstep.Client, error) {
	if config == nil {
		return nil, fmt.Errorf("%w: config is required", constants.ErrInvalidConfig)
	}

	resolved := *config

	err := Normalize(&resolved)
	if err != nil {
		return nil, err
	}

	err = resolved.Validate()
	if err != nil {
		return nil, err
	}

	c, err := client.New(ctx, &resolved)
	if err != nil {
		return nil, fmt.Errorf("failed to create new client: %w", err)
	}

	return c, nil
}

// NewWithAPIKey creates a client for environment, a short name or a URL,
// that authenticates with an API key.
func NewWithAPIKey(ctx context.Context, environment, apiKey string) (lockstep.Client, error) {
	return New(ctx, configFor(environment, &lockstep.Config{APIKey: apiKey}))
}

// NewWithBearerToken creates a client for environment, a short name or a URL,
// that authenticates with a JWT bearer token.
func NewWithBearerToken(ctx context.Context, environment, token string) (lockstep.Client, error) {
	return New(ctx, configFor(environment, &lockstep.Config{BearerToken: token}))
}

func configFor(environment string, config *lockstep.Config) *lockstep.Config {
	if _, known := environmentURLs[strings.ToLower(strings.TrimSpace(environment))]; known {
		config.Environment = environment
	} else {
		config.BaseURL = environment
	}

	return config
}

// Normalize resolves config.BaseURL in place: an empty URL takes the URL of
// config.Environment (sandbox by default), a short environment name given as
// the URL is expanded, a missing scheme becomes https and a trailing slash is
// dropped.
func Normalize(config *lockstep.Config) error {
	config.Environment = strings.ToLower(strings.TrimSpace(config.Environment))
	baseURL := strings.TrimSpace(config.BaseURL)

	if url, known := environmentURLs[strings.ToLower(baseURL)]; known {
		config.Environment = strings.ToLower(baseURL)
		baseURL = url
	}

	if baseURL == "" {
		env := config.Environment
		if env == "" {
			env = constants.EnvironmentSandbox
		}

		url, known := environmentURLs[env]
		if !known {
			return fmt.Errorf("%w: %q (use %s or %s)", constants.ErrUnknownEnvironment, config.Environment,
				constants.EnvironmentSandbox, constants.EnvironmentProduction)
		}

		config.Environment = env
		baseURL = url
	}

	baseURL = strings.TrimSuffix(baseURL, "/")
	if !strings.HasPrefix(baseURL, "http://") && !strings.HasPrefix(baseURL, "https://") {
		baseURL = "https://" + baseURL
	}

	config.BaseURL = baseURL

	return nil
}
