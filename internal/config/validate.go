package config

import (
	"errors"
	"path/filepath"
	"strings"

	"github.com/thoreinstein/agentsync/internal/paths"
)

// Validation errors for configuration fields.
var (
	// ErrVersionTooLow indicates the version field is below the minimum.
	ErrVersionTooLow = errors.New("version must be >= 1")

	// ErrInvalidPlatform indicates an unrecognized platform name.
	ErrInvalidPlatform = errors.New("invalid platform")

	// ErrInvalidPolicy indicates an unrecognized conflict policy.
	ErrInvalidPolicy = errors.New("conflict_policy must be \"backup\" or \"skip\"")

	// ErrInvalidPath indicates a path value is malformed.
	ErrInvalidPath = errors.New("invalid path")
)

// Validate checks a Config for validity.
// Returns nil if valid, or a slice of validation errors.
func Validate(cfg *Config) []error {
	if cfg == nil {
		return []error{errors.New("config is nil")}
	}

	var errs []error

	// Version must be >= 1
	if cfg.Version < 1 {
		errs = append(errs, ErrVersionTooLow)
	}

	switch cfg.ConflictPolicy {
	case "", PolicyBackup, PolicySkip:
	default:
		errs = append(errs, ErrInvalidPolicy)
	}

	// Validate platform names
	for _, platform := range cfg.Targets {
		if !paths.ValidPlatform(platform) {
			errs = append(errs, &PlatformError{
				Platform: platform,
				Err:      ErrInvalidPlatform,
			})
		}
	}

	if cfg.SyncHome != "" {
		if err := validatePath(cfg.SyncHome); err != nil {
			errs = append(errs, &PathError{
				Field: "sync_home",
				Path:  cfg.SyncHome,
				Err:   err,
			})
		}
	}

	return errs
}

// validatePath checks if a path string is well-formed.
// It does not check if the path exists, only that it's syntactically valid.
func validatePath(path string) error {
	// Empty paths are valid (they mean "use default")
	if path == "" {
		return nil
	}

	// Check for null bytes which are never valid in paths
	if strings.ContainsRune(path, '\x00') {
		return ErrInvalidPath
	}

	// Clean the path and check it's not empty after cleaning
	cleaned := filepath.Clean(path)
	if cleaned == "" || cleaned == "." {
		return ErrInvalidPath
	}

	return nil
}

// PlatformError represents an error for a specific platform.
type PlatformError struct {
	Platform string
	Err      error
}

func (e *PlatformError) Error() string {
	return e.Err.Error() + ": " + e.Platform
}

func (e *PlatformError) Unwrap() error {
	return e.Err
}

// PathError represents an error for a specific path field.
type PathError struct {
	Field string
	Path  string
	Err   error
}

func (e *PathError) Error() string {
	return e.Field + ": " + e.Err.Error() + ": " + e.Path
}

func (e *PathError) Unwrap() error {
	return e.Err
}
