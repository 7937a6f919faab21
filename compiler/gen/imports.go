package gen

import (
	"slices"
	"strings"
)

// BaseIcons are imported by every generated page.
var BaseIcons = []string{"Plus", "Search", "Edit", "Trash2", "Eye", "Filter", "Download"}

// ApprovalIcons are imported when the preset requires approval.
var ApprovalIcons = []string{"CheckCircle", "XCircle", "Clock"}

// ImportSet collects named imports of one module specifier.
type ImportSet struct {
	names []string
}

// Add appends names to the set. Duplicates are dropped by Names.
func (s *ImportSet) Add(names ...string) {
	for _, n := range names {
		if n = strings.TrimSpace(n); n != "" {
			s.names = append(s.names, n)
		}
	}
}

// Names returns the deduplicated names sorted case-insensitively.
// Two names that differ only in case cannot both be imported and are
// reported as an InvariantError.
func (s *ImportSet) Names() ([]string, error) {
	names := slices.Clone(s.names)
	slices.SortStableFunc(names, func(a, b string) int {
		if c := strings.Compare(strings.ToLower(a), strings.ToLower(b)); c != 0 {
			return c
		}
		return strings.Compare(a, b)
	})
	names = slices.Compact(names)
	for i := 1; i < len(names); i++ {
		if strings.EqualFold(names[i-1], names[i]) {
			return nil, NewInvariantError("", "import "+names[i-1]+" collides with "+names[i])
		}
	}
	return names, nil
}
