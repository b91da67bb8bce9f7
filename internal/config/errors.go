package config

import "errors"

// Validation errors returned by [StructuredConfig.validate] when required
// configuration values are missing.
var (
	// ErrMissingTokenSignKey indicates that no token signing secret was
	// provided by any configuration source. The service refuses to start
	// without one: tokens signed with an empty key would be forgeable.
	ErrMissingTokenSignKey = errors.New("token sign key is required")

	// ErrInvalidStorageConfigs indicates invalid storage settings
	// (for example, an empty database DSN).
	ErrInvalidStorageConfigs = errors.New("invalid storage configuration")
)
