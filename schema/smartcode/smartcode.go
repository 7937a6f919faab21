// Package smartcode implements the HERA smart-code grammar.
//
// A smart code is a dot-delimited identifier of the form
//
//	HERA.<A>.<B>.<C>.<D>[.<E>].v<N>
//
// where every letter segment is uppercase with underscores and the final
// segment is a lowercase "v" followed by digits. The format is shared by
// the whole ERP, so the pattern below must not change.
//
// Codes for dynamic fields and audit events are derived from an entity
// code by replacing its ENTITY segment:
//
//	smartcode.DynamicField("HERA.CRM.CUSTOMER.ENTITY.CONTACT.v1", "email")
//	// HERA.CRM.CUSTOMER.DYN.CONTACT.EMAIL.V1
package smartcode

import (
	"fmt"
	"regexp"
	"strings"
)

// Pattern is the source of the validation expression.
const Pattern = `^HERA\.[A-Z_]+\.[A-Z_]+\.[A-Z_]+\.[A-Z_]+(\.[A-Z_]+)?\.v\d+$`

var pattern = regexp.MustCompile(Pattern)

const (
	// Root is the first segment of every smart code.
	Root = "HERA"
	// EntitySegment marks the entity position in a preset code.
	EntitySegment = "ENTITY"
	// DynamicSegment replaces EntitySegment in dynamic-field codes.
	DynamicSegment = "DYN"
	// EventSegment replaces EntitySegment in audit-event codes.
	EventSegment = "EVENT"
	// DerivedVersion is appended to every derived code.
	DerivedVersion = "V1"
)

// Audit event names emitted for every entity.
const (
	EventCreated       = "CREATED"
	EventUpdated       = "UPDATED"
	EventDeleted       = "DELETED"
	EventStatusChanged = "STATUS_CHANGED"
)

// Valid reports whether code matches Pattern.
func Valid(code string) bool {
	return pattern.MatchString(code)
}

// Validate returns a descriptive error if code does not match Pattern.
func Validate(code string) error {
	if code == "" {
		return fmt.Errorf("smart code is empty")
	}
	if !Valid(code) {
		return fmt.Errorf("smart code %q does not match %s", code, Pattern)
	}
	return nil
}

// Code is a parsed smart code.
type Code struct {
	Segments []string // letter segments after HERA
	Version  int
}

// Parse splits a valid smart code into its segments and version.
func Parse(code string) (Code, error) {
	if err := Validate(code); err != nil {
		return Code{}, err
	}
	parts := strings.Split(code, ".")
	var version int
	if _, err := fmt.Sscanf(parts[len(parts)-1], "v%d", &version); err != nil {
		return Code{}, fmt.Errorf("smart code %q: bad version: %w", code, err)
	}
	return Code{
		Segments: parts[1 : len(parts)-1],
		Version:  version,
	}, nil
}

// String reassembles the code.
func (c Code) String() string {
	return Root + "." + strings.Join(c.Segments, ".") + fmt.Sprintf(".v%d", c.Version)
}

// DynamicField returns the code of a dynamic field attached to the entity
// identified by code.
func DynamicField(code, fieldName string) string {
	return derive(code, DynamicSegment, strings.ToUpper(fieldName))
}

// Event returns the code of an audit event of the entity identified by code.
func Event(code, event string) string {
	return derive(code, EventSegment, event)
}

// derive strips the version of code, swaps the ENTITY segment for kind
// (or appends kind when there is none) and appends name and DerivedVersion.
func derive(code, kind, name string) string {
	base := code
	if i := strings.LastIndex(base, "."); i >= 0 && isVersion(base[i+1:]) {
		base = base[:i]
	}
	segs := strings.Split(base, ".")
	replaced := false
	for i, s := range segs {
		if s == EntitySegment {
			segs[i] = kind
			replaced = true
			break
		}
	}
	if !replaced {
		segs = append(segs, kind)
	}
	return strings.Join(segs, ".") + "." + name + "." + DerivedVersion
}

func isVersion(s string) bool {
	if len(s) < 2 || s[0] != 'v' {
		return false
	}
	for _, r := range s[1:] {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
