package constants

import "errors"

// Configuration errors.
var (
	ErrNoCredentials        = errors.New("no credentials configured, set an API key or a bearer token")
	ErrAmbiguousCredentials = errors.New("both an API key and a bearer token are configured")
	ErrUnknownEnvironment   = errors.New("unknown environment")
	ErrInvalidConfig        = errors.New("invalid configuration")
	ErrNoAPIKeyEntered      = errors.New("no API key entered")
)

// Token errors.
var (
	ErrInvalidJWTFormat  = errors.New("invalid JWT format")
	ErrNoExpirationClaim = errors.New("no expiration claim found")
	ErrTokenExpired      = errors.New("bearer token has expired")
	ErrEmptyCredential   = errors.New("credential value is empty")
)

// Request errors.
var (
	ErrInvalidRequest         = errors.New("invalid request")
	ErrMissingPathParameter   = errors.New("missing path parameter")
	ErrUndeclaredParameter    = errors.New("parameter not declared by endpoint")
	ErrResponseTooLarge       = errors.New("response body exceeds size limit")
	ErrPageInvariantViolation = errors.New("page metadata does not match records")
	ErrMissingPageMetadata    = errors.New("page metadata field missing")
	ErrNotJSONObject          = errors.New("body is not a JSON object")
	ErrEmptyBody              = errors.New("response body is empty")
	ErrNullBody               = errors.New("response body is null")
	ErrRequiredField          = errors.New("required field missing")
)

// CLI errors.
var (
	ErrInvalidOutputFormat = errors.New("invalid output format")
	ErrUnknownConfigKey    = errors.New("unknown configuration key")
	ErrOutputFileRequired  = errors.New("--output-file is required for binary downloads")
)
