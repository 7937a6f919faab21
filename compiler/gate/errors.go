package gate

import (
	"errors"
	"fmt"
	"strings"
)

// ErrGateFailed is matched by every gate failure.
var ErrGateFailed = errors.New("heragen: quality gate failed")

// Error is returned by a failing gate. A gate may report several problems
// at once, e.g. every missing component of a page.
type Error struct {
	Gate     string
	Phase    Phase
	Key      string
	Problems []string
	Cause    error
}

// Error implements the error interface.
func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString("heragen: gate ")
	b.WriteString(e.Gate)
	b.WriteString(" failed")
	if e.Key != "" {
		b.WriteString(" for ")
		b.WriteString(e.Key)
	}
	if e.Phase != 0 {
		fmt.Fprintf(&b, " (%s)", e.Phase)
	}
	switch len(e.Problems) {
	case 0:
	case 1:
		b.WriteString(": ")
		b.WriteString(e.Problems[0])
	default:
		b.WriteString(":")
		for _, p := range e.Problems {
			b.WriteString("\n  - ")
			b.WriteString(p)
		}
	}
	if e.Cause != nil && len(e.Problems) == 0 {
		b.WriteString(": ")
		b.WriteString(e.Cause.Error())
	}
	return b.String()
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Cause
}

// Is reports whether the target matches ErrGateFailed.
func (e *Error) Is(target error) bool {
	return target == ErrGateFailed
}

// Failf returns an error carrying a single formatted problem. Gate checks
// return it and the pipeline fills in the gate, phase and key.
func Failf(format string, a ...any) *Error {
	return &Error{Problems: []string{fmt.Sprintf(format, a...)}}
}

// Fail returns an error carrying problems.
func Fail(problems ...string) *Error {
	return &Error{Problems: problems}
}

// IsGateError reports whether err is a gate failure.
func IsGateError(err error) bool {
	var gerr *Error
	return errors.As(err, &gerr)
}

// AsError returns the gate failure in err's chain, if any.
func AsError(err error) (*Error, bool) {
	var gerr *Error
	if errors.As(err, &gerr) {
		return gerr, true
	}
	return nil, false
}
