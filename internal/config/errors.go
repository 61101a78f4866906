package config

import "errors"

// Validation errors returned by [StructuredConfig.validate].
var (
	ErrEmptyDSN          = errors.New("database DSN is not specified")
	ErrEmptyTokenSignKey = errors.New("token sign key is not specified")
	ErrEmptyHTTPAddress  = errors.New("http address is not specified")
	ErrInvalidDuration   = errors.New("token duration and request timeout must be positive")
	ErrInvalidBCryptCost = errors.New("bcrypt cost is out of range")
	ErrInvalidRateLimit  = errors.New("auth rate limit and burst must be positive")
)

// Validation errors returned by [ClientConfig.validate] when required
// configuration groups are incomplete or invalid.
var (
	// ErrInvalidAdapterConfigs indicates invalid client adapter settings
	// (for example, a server URL without scheme or a zero request timeout).
	ErrInvalidAdapterConfigs = errors.New("invalid adapter configuration")
	// ErrInvalidStorageConfigs indicates that the session file location
	// could not be determined.
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
