package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// Platform environments.
const (
	// EnvironmentSandbox is the short name of the sandbox environment.
	EnvironmentSandbox = "sbx"

	// EnvironmentProduction is the short name of the production environment.
	EnvironmentProduction = "prd"

	// SandboxBaseURL is the API root for the sandbox environment.
	SandboxBaseURL = "https://api.sbx.lockstep.io"

	// ProductionBaseURL is the API root for the production environment.
	ProductionBaseURL = "https://api.lockstep.io"
)

// Environment variable loading.
const (
	// EnvPrefix prefixes every LOCKSTEP_* variable.
	EnvPrefix = "LOCKSTEP"

	// DotEnvFile is loaded, when present, before reading the environment.
	DotEnvFile = ".env"
)

// SDK identification.
const (
	// SDKType is sent in the SdkType header.
	SDKType = "Go"

	// SDKVersion is sent in the SdkVersion header and the default User-Agent.
	SDKVersion = "2022.4.32"

	// DefaultUserAgent is used when the configuration does not set one.
	DefaultUserAgent = "lockstep-client-go/" + SDKVersion
)

// Request headers.
const (
	HeaderAccept        = "Accept"
	HeaderAPIKey        = "Api-Key"
	HeaderAuthorization = "Authorization"
	HeaderContentType   = "Content-Type"
	HeaderRequestID     = "X-Request-Id"
	HeaderSDKType       = "SdkType"
	HeaderSDKVersion    = "SdkVersion"
	HeaderUserAgent     = "User-Agent"
)

// Media types.
const (
	// MediaTypeJSON is the default Accept and Content-Type.
	MediaTypeJSON = "application/json"

	// MediaTypePDF is requested by binary document endpoints.
	MediaTypePDF = "application/pdf"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout is the default timeout for HTTP requests.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Retry limits. Retries are off unless the caller opts in.
const (
	// DefaultRetryMax keeps every call at-most-once.
	DefaultRetryMax = 0

	// DefaultRetryWaitMin is the minimum wait time between opt-in retries.
	DefaultRetryWaitMin = 1 * time.Second

	// DefaultRetryWaitMax is the maximum wait time between opt-in retries.
	DefaultRetryWaitMax = 10 * time.Second
)

// Response limits.
const (
	// DefaultMaxResponseBytes caps how much of a response body is read.
	DefaultMaxResponseBytes int64 = 64 << 20
)

// Pagination limits.
const (
	// DefaultPageSize is the page size the Platform uses for most query endpoints.
	DefaultPageSize = 250

	// CodeDefinitionPageSize is the page size the Platform uses for code definitions.
	CodeDefinitionPageSize = 200

	// MaxPageSize is the largest page size the Platform accepts.
	MaxPageSize = 500

	// DefaultMaxPages bounds explicit page loops in the CLI.
	DefaultMaxPages = 20
)

// Display limits.
const (
	// ErrorBodySnippetLen bounds how much of an unexpected body is kept in errors.
	ErrorBodySnippetLen = 512

	// TableCellMaxLen truncates long cells in table output.
	TableCellMaxLen = 40
)
