package preset

import (
	"slices"
	"strings"
)

// EntityType is the uppercase key of a preset, e.g. CONTACT.
type EntityType string

// Normalize returns the canonical form of a user supplied key.
func Normalize(key string) EntityType {
	return EntityType(strings.ToUpper(strings.TrimSpace(key)))
}

// String implements fmt.Stringer.
func (t EntityType) String() string { return string(t) }

// ReservedFields are column names owned by the universal entity tables.
// A preset may not declare them as default fields.
var ReservedFields = []string{"id", "entity_id", "organization_id", "created_at", "updated_at"}

// IsReserved reports whether name is one of ReservedFields.
func IsReserved(name string) bool {
	return slices.Contains(ReservedFields, name)
}

// BusinessRules are the optional behaviors of an entity. Only StatusWorkflow,
// RequiresApproval and GDPRCompliance change the rendered page; the others
// are carried into the generated README and config.
type BusinessRules struct {
	StatusWorkflow     bool `json:"status_workflow,omitempty" yaml:"status_workflow,omitempty"`
	RequiresApproval   bool `json:"requires_approval,omitempty" yaml:"requires_approval,omitempty"`
	GDPRCompliance     bool `json:"gdpr_compliance,omitempty" yaml:"gdpr_compliance,omitempty"`
	AuditTrail         bool `json:"audit_trail,omitempty" yaml:"audit_trail,omitempty"`
	DuplicateDetection bool `json:"duplicate_detection,omitempty" yaml:"duplicate_detection,omitempty"`
	CreditLimitCheck   bool `json:"credit_limit_check,omitempty" yaml:"credit_limit_check,omitempty"`
	StockTracking      bool `json:"stock_tracking,omitempty" yaml:"stock_tracking,omitempty"`
	MultiCurrency      bool `json:"multi_currency,omitempty" yaml:"multi_currency,omitempty"`
}

// Enabled returns the names of the enabled rules in declaration order.
func (r BusinessRules) Enabled() []string {
	var names []string
	for _, f := range []struct {
		name string
		on   bool
	}{
		{"status_workflow", r.StatusWorkflow},
		{"requires_approval", r.RequiresApproval},
		{"gdpr_compliance", r.GDPRCompliance},
		{"audit_trail", r.AuditTrail},
		{"duplicate_detection", r.DuplicateDetection},
		{"credit_limit_check", r.CreditLimitCheck},
		{"stock_tracking", r.StockTracking},
		{"multi_currency", r.MultiCurrency},
	} {
		if f.on {
			names = append(names, f.name)
		}
	}
	return names
}

// UI holds presentation hints for the generated page.
type UI struct {
	Icon         string `json:"icon" yaml:"icon"`
	PrimaryColor string `json:"primary_color" yaml:"primary_color"`
	AccentColor  string `json:"accent_color" yaml:"accent_color"`
}

// EntityPreset declares one business-object type.
type EntityPreset struct {
	Key           EntityType    `json:"key" yaml:"key"`
	Title         string        `json:"title" yaml:"title"`
	TitlePlural   string        `json:"title_plural" yaml:"title_plural"`
	Description   string        `json:"description,omitempty" yaml:"description,omitempty"`
	SmartCode     string        `json:"smart_code" yaml:"smart_code"`
	Module        Module        `json:"module" yaml:"module"`
	DefaultFields []string      `json:"default_fields" yaml:"default_fields"`
	KPIMetrics    []string      `json:"kpi_metrics,omitempty" yaml:"kpi_metrics,omitempty"`
	BusinessRules BusinessRules `json:"business_rules" yaml:"business_rules"`
	UI            UI            `json:"ui" yaml:"ui"`
}

// Clone returns a deep copy of p.
func (p EntityPreset) Clone() EntityPreset {
	c := p
	c.DefaultFields = slices.Clone(p.DefaultFields)
	c.KPIMetrics = slices.Clone(p.KPIMetrics)
	return c
}

// CardFields returns the fields shown on mobile cards.
func (p EntityPreset) CardFields() []string {
	return firstN(p.DefaultFields, 4)
}

// TableColumns returns the fields shown as table columns.
func (p EntityPreset) TableColumns() []string {
	return firstN(p.DefaultFields, 5)
}

// ReservedConflicts returns the default fields that collide with ReservedFields.
func (p EntityPreset) ReservedConflicts() []string {
	var conflicts []string
	for _, f := range p.DefaultFields {
		if IsReserved(f) {
			conflicts = append(conflicts, f)
		}
	}
	return conflicts
}

func firstN(s []string, n int) []string {
	if len(s) < n {
		n = len(s)
	}
	return slices.Clone(s[:n])
}
