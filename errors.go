package heragen

import (
	"errors"
	"fmt"
	"strings"
)

// ErrEntityTypeNotFound is returned when an entity type key is not present
// in the preset registry.
var ErrEntityTypeNotFound = errors.New("heragen: entity type not found")

// EntityTypeNotFoundError is returned by registry lookups for unknown keys.
// It carries the valid keys so callers can print them.
type EntityTypeNotFoundError struct {
	key   string
	valid []string
}

// Error returns the error string.
func (e *EntityTypeNotFoundError) Error() string {
	return fmt.Sprintf("heragen: entity type %q not found", e.key)
}

// Is reports whether the target error matches EntityTypeNotFoundError.
// This allows errors.Is(err, ErrEntityTypeNotFound) to return true.
func (e *EntityTypeNotFoundError) Is(err error) bool {
	return err == ErrEntityTypeNotFound
}

// Key returns the key that was looked up.
func (e *EntityTypeNotFoundError) Key() string {
	return e.key
}

// ValidKeys returns the keys known to the registry, sorted.
func (e *EntityTypeNotFoundError) ValidKeys() []string {
	return append([]string(nil), e.valid...)
}

// NewEntityTypeNotFoundError returns a new EntityTypeNotFoundError.
func NewEntityTypeNotFoundError(key string, valid []string) *EntityTypeNotFoundError {
	return &EntityTypeNotFoundError{key: key, valid: append([]string(nil), valid...)}
}

// IsEntityTypeNotFound returns true if the error is an EntityTypeNotFoundError.
func IsEntityTypeNotFound(err error) bool {
	if err == nil {
		return false
	}
	var e *EntityTypeNotFoundError
	return errors.As(err, &e) || errors.Is(err, ErrEntityTypeNotFound)
}

// AggregateError represents multiple errors collected during a batch run,
// e.g. generating every preset at once.
type AggregateError struct {
	Errors []error
}

// Error returns the error string.
func (e *AggregateError) Error() string {
	if len(e.Errors) == 0 {
		return "heragen: no errors"
	}
	if len(e.Errors) == 1 {
		return e.Errors[0].Error()
	}
	var sb strings.Builder
	sb.WriteString("heragen: multiple errors:")
	for i, err := range e.Errors {
		fmt.Fprintf(&sb, "\n  [%d] %v", i+1, err)
	}
	return sb.String()
}

// Unwrap returns the collected errors.
func (e *AggregateError) Unwrap() []error {
	return e.Errors
}

// NewAggregateError returns a new AggregateError if there are errors,
// otherwise returns nil.
func NewAggregateError(errs ...error) error {
	var filtered []error
	for _, err := range errs {
		if err != nil {
			filtered = append(filtered, err)
		}
	}
	if len(filtered) == 0 {
		return nil
	}
	if len(filtered) == 1 {
		return filtered[0]
	}
	return &AggregateError{Errors: filtered}
}
