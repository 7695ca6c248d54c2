package constants

import "time"

// File and directory permissions.
const (
	// ConfigDirPerm is the permission for configuration directories.
	ConfigDirPerm = 0750

	// ConfigFilePerm is the permission for configuration files.
	ConfigFilePerm = 0600
)

// API surface.
const (
	// APIBaseURL is the default API origin.
	APIBaseURL = "https://yougile.com"

	// APIPrefix is the versioned path prefix shared by every endpoint.
	APIPrefix = "/api-v2"
)

// HTTP and network timeouts.
const (
	// DefaultHTTPTimeout bounds a single transport attempt.
	DefaultHTTPTimeout = 30 * time.Second

	// ShortHTTPTimeout is used for quick operations.
	ShortHTTPTimeout = 10 * time.Second
)

// Rate limiting.
const (
	// DefaultRateLimit is the documented per-window request quota.
	DefaultRateLimit = 50

	// DefaultRateWindow is the trailing window the quota applies to.
	DefaultRateWindow = 60 * time.Second
)

// Retry behavior.
const (
	// DefaultMaxAttempts caps transport attempts per logical request.
	DefaultMaxAttempts = 5

	// DefaultRetryWaitMin is the backoff base delay.
	DefaultRetryWaitMin = 500 * time.Millisecond

	// DefaultRetryWaitMax caps the backoff delay.
	DefaultRetryWaitMax = 30 * time.Second

	// BackoffMultiplier is the base for exponential backoff.
	BackoffMultiplier = 2
)

// Pagination and display limits.
const (
	// DefaultPageSize is the default number of items per page.
	DefaultPageSize = 50

	// MaxPageSize is the largest page the API serves.
	MaxPageSize = 1000
)

// Cache sizing.
const (
	// DefaultCacheSize is the default cache entry limit.
	DefaultCacheSize = 1000

	// DefaultCacheTTL is the default cache time-to-live.
	DefaultCacheTTL = 5 * time.Minute
)

// UI and display constants.
const (
	// CheckMarkSymbol indicates current/active items.
	CheckMarkSymbol = "✓"

	// NotAvailable is used when information is not available.
	NotAvailable = "N/A"

	// MaskedSecret hides sensitive information.
	MaskedSecret = "***"
)

// Format constants.
const (
	// FormatTable for tabular output.
	FormatTable = "table"

	// FormatJSON for JSON output format.
	FormatJSON = "json"

	// FormatYAML for YAML output format.
	FormatYAML = "yaml"
)

// Boolean string constants.
const (
	// BooleanTrue string representation.
	BooleanTrue = "true"

	// BooleanFalse string representation.
	BooleanFalse = "false"
)
