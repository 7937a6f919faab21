package gen

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure cases.
var (
	// ErrMissingConfig indicates a configuration error.
	ErrMissingConfig = errors.New("heragen: missing configuration")
	// ErrGenerationFailed indicates a rendering or file system failure.
	ErrGenerationFailed = errors.New("heragen: generation failed")
	// ErrInvariant indicates a defect in the renderer itself.
	ErrInvariant = errors.New("heragen: renderer invariant violated")
)

// ConfigError represents a configuration error.
type ConfigError struct {
	Option  string
	Value   any
	Message string
}

// Error implements the error interface.
func (e *ConfigError) Error() string {
	if e.Value != nil {
		return fmt.Sprintf("heragen: config error for %q (value: %v): %s", e.Option, e.Value, e.Message)
	}
	return fmt.Sprintf("heragen: config error for %q: %s", e.Option, e.Message)
}

// Is reports whether the target matches the sentinel error for ConfigError.
func (e *ConfigError) Is(target error) bool {
	return target == ErrMissingConfig
}

// NewConfigError creates a new ConfigError.
func NewConfigError(option string, value any, message string) *ConfigError {
	return &ConfigError{
		Option:  option,
		Value:   value,
		Message: message,
	}
}

// GenerationError represents a failure while rendering, staging or
// committing artifacts.
type GenerationError struct {
	Phase   string // "render", "stage", "commit", "discard"
	File    string
	Message string
	Cause   error
}

// Error implements the error interface.
func (e *GenerationError) Error() string {
	var b strings.Builder
	b.WriteString("heragen: generation error")
	if e.Phase != "" {
		b.WriteString(" in phase ")
		b.WriteString(e.Phase)
	}
	if e.File != "" {
		b.WriteString(" (file: ")
		b.WriteString(e.File)
		b.WriteString(")")
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Cause != nil {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *GenerationError) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches the sentinel error for GenerationError.
func (e *GenerationError) Is(target error) bool {
	return target == ErrGenerationFailed
}

// NewGenerationError creates a new GenerationError.
func NewGenerationError(phase, file, message string, cause error) *GenerationError {
	return &GenerationError{
		Phase:   phase,
		File:    file,
		Message: message,
		Cause:   cause,
	}
}

// InvariantError reports output the renderer must never produce, such as
// two icon imports that differ only in case.
type InvariantError struct {
	Entity  string
	Message string
}

// Error implements the error interface.
func (e *InvariantError) Error() string {
	if e.Entity != "" {
		return fmt.Sprintf("heragen: invariant violated rendering %s: %s", e.Entity, e.Message)
	}
	return "heragen: invariant violated: " + e.Message
}

// Is reports whether the target matches the sentinel error for InvariantError.
func (e *InvariantError) Is(target error) bool {
	return target == ErrInvariant
}

// NewInvariantError creates a new InvariantError.
func NewInvariantError(entity, message string) *InvariantError {
	return &InvariantError{Entity: entity, Message: message}
}

// IsConfigError reports whether the error is a ConfigError.
func IsConfigError(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr)
}

// IsGenerationError reports whether the error is a GenerationError.
func IsGenerationError(err error) bool {
	var genErr *GenerationError
	return errors.As(err, &genErr)
}

// IsInvariantError reports whether the error is an InvariantError.
func IsInvariantError(err error) bool {
	var invErr *InvariantError
	return errors.As(err, &invErr)
}
