package gen

import (
	"fmt"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/syssam/heragen/schema/field"
	"github.com/syssam/heragen/schema/preset"
	"github.com/syssam/heragen/schema/smartcode"
)

// Structural markers of every generated page.
const (
	PageDirective = "'use client'"
	PageHook      = "useUniversalEntity"
	PageLayout    = "MobilePageLayout"
)

// ComponentImport is an import from the application's component tree.
type ComponentImport struct {
	Names  string // import clause, e.g. "MobileDataTable, type TableColumn"
	Module string // path below @/components
}

// Specifier returns the module specifier of the import.
func (c ComponentImport) Specifier() string {
	return "@/components/" + c.Module
}

// pageComponents are imported by every page.
var pageComponents = []ComponentImport{
	{Names: "useHERAAuth", Module: "auth/HERAAuthProvider"},
	{Names: PageLayout, Module: "mobile/" + PageLayout},
	{Names: "MobileFilters, type FilterFieldConfig", Module: "mobile/MobileFilters"},
	{Names: "MobileDataTable, type TableColumn", Module: "mobile/MobileDataTable"},
	{Names: "EntityForm", Module: "entity/EntityForm"},
}

// FieldModel is a field as seen by the templates.
type FieldModel struct {
	field.Config
	Const     string // SMART_CODES key suffix, e.g. CLOSE_DATE
	TSType    string
	InputType string
}

// EventCode is an audit event with its smart code.
type EventCode struct {
	Name string
	Code string
}

// PageModel is the data every template is executed with. Directive, Hook
// and Layout are set by newPageModel and never derived from the preset.
type PageModel struct {
	Directive string
	Hook      string
	Layout    string

	EntityType    string
	Title         string
	TitlePlural   string
	Description   string
	Module        string
	SmartCode     string
	TypeName      string
	ComponentName string
	Route         string
	APIRoute      string

	Fields       []FieldModel
	CardFields   []FieldModel
	TableColumns []FieldModel
	Events       []EventCode
	KPIMetrics   []string
	Rules        []string

	Icon         string
	Icons        []string
	Components   []ComponentImport
	PrimaryColor string
	AccentColor  string

	StatusWorkflow   bool
	RequiresApproval bool
	GDPRCompliance   bool
	// HasStatusField is set when the preset declares its own status field.
	HasStatusField bool
}

// newPageModel builds the template model of p.
func newPageModel(p preset.EntityPreset, fields []field.Config) (*PageModel, error) {
	var icons ImportSet
	icons.Add(BaseIcons...)
	icons.Add(p.UI.Icon)
	if p.BusinessRules.RequiresApproval {
		icons.Add(ApprovalIcons...)
	}
	names, err := icons.Names()
	if err != nil {
		if inv, ok := err.(*InvariantError); ok {
			inv.Entity = string(p.Key)
		}
		return nil, err
	}

	m := &PageModel{
		Directive:        PageDirective,
		Hook:             PageHook,
		Layout:           PageLayout,
		EntityType:       string(p.Key),
		Title:            p.Title,
		TitlePlural:      p.TitlePlural,
		Description:      p.Description,
		Module:           string(p.Module),
		SmartCode:        p.SmartCode,
		TypeName:         inflect.Camelize(Kebab(p.Title)),
		ComponentName:    inflect.Camelize(Kebab(p.TitlePlural)) + "Page",
		Route:            "/" + ResolvePath(p),
		APIRoute:         APIRoute(p),
		KPIMetrics:       p.KPIMetrics,
		Rules:            p.BusinessRules.Enabled(),
		Icon:             p.UI.Icon,
		Icons:            names,
		Components:       pageComponents,
		PrimaryColor:     p.UI.PrimaryColor,
		AccentColor:      p.UI.AccentColor,
		StatusWorkflow:   p.BusinessRules.StatusWorkflow,
		RequiresApproval: p.BusinessRules.RequiresApproval,
		GDPRCompliance:   p.BusinessRules.GDPRCompliance,
	}
	if m.Icon == "" {
		m.Icon = "Plus"
	}
	if err := checkFieldNames(p, fields); err != nil {
		return nil, err
	}
	for _, f := range fields {
		m.Fields = append(m.Fields, FieldModel{
			Config:    f,
			Const:     strings.ToUpper(f.Name),
			TSType:    f.Type.TSType(),
			InputType: f.Type.InputType(),
		})
		if f.Name == "status" {
			m.HasStatusField = true
		}
	}
	m.CardFields = firstFields(m.Fields, len(p.CardFields()))
	m.TableColumns = firstFields(m.Fields, len(p.TableColumns()))
	m.Events = Events(p)
	return m, nil
}

// fixedMembers are emitted on every entity interface.
var fixedMembers = []string{"id", "entity_name", "smart_code", "created_at", "updated_at"}

// checkFieldNames rejects fields that would repeat an interface member or a
// SMART_CODES key.
func checkFieldNames(p preset.EntityPreset, fields []field.Config) error {
	taken := make(map[string]string, len(fields)+len(fixedMembers)+2)
	for _, n := range fixedMembers {
		taken[n] = "a built-in member"
	}
	if p.BusinessRules.RequiresApproval {
		taken["approval_status"] = "the approval member"
	}
	if p.BusinessRules.GDPRCompliance {
		taken["anonymized_at"] = "the anonymization member"
	}
	consts := make(map[string]string, len(fields))
	for _, f := range fields {
		if owner, ok := taken[f.Name]; ok {
			return NewInvariantError(string(p.Key), fmt.Sprintf("field %q collides with %s", f.Name, owner))
		}
		taken[f.Name] = "another field"
		c := strings.ToUpper(f.Name)
		if other, ok := consts[c]; ok {
			return NewInvariantError(string(p.Key), fmt.Sprintf("fields %q and %q share the key FIELD_%s", other, f.Name, c))
		}
		consts[c] = f.Name
	}
	return nil
}

// Events returns the audit events of p with their smart codes.
func Events(p preset.EntityPreset) []EventCode {
	names := []string{smartcode.EventCreated, smartcode.EventUpdated, smartcode.EventDeleted}
	if p.BusinessRules.StatusWorkflow {
		names = append(names, smartcode.EventStatusChanged)
	}
	events := make([]EventCode, 0, len(names))
	for _, n := range names {
		events = append(events, EventCode{Name: n, Code: smartcode.Event(p.SmartCode, n)})
	}
	return events
}

func firstFields(fs []FieldModel, n int) []FieldModel {
	if len(fs) < n {
		n = len(fs)
	}
	return fs[:n]
}

// entityConfig is the document written to entity.config.json.
type entityConfig struct {
	EntityType    string               `json:"entity_type"`
	Title         string               `json:"title"`
	TitlePlural   string               `json:"title_plural"`
	Description   string               `json:"description,omitempty"`
	Module        string               `json:"module"`
	SmartCode     string               `json:"smart_code"`
	Route         string               `json:"route"`
	APIRoute      string               `json:"api_route"`
	Fields        []field.Config       `json:"fields"`
	CardFields    []string             `json:"card_fields"`
	TableColumns  []string             `json:"table_columns"`
	Events        map[string]string    `json:"events"`
	KPIMetrics    []string             `json:"kpi_metrics"`
	BusinessRules preset.BusinessRules `json:"business_rules"`
	UI            preset.UI            `json:"ui"`
}

func newEntityConfig(p preset.EntityPreset, m *PageModel) entityConfig {
	cfg := entityConfig{
		EntityType:    m.EntityType,
		Title:         m.Title,
		TitlePlural:   m.TitlePlural,
		Description:   m.Description,
		Module:        m.Module,
		SmartCode:     m.SmartCode,
		Route:         m.Route,
		APIRoute:      m.APIRoute,
		Fields:        make([]field.Config, 0, len(m.Fields)),
		CardFields:    p.CardFields(),
		TableColumns:  p.TableColumns(),
		Events:        make(map[string]string, len(m.Events)),
		KPIMetrics:    p.KPIMetrics,
		BusinessRules: p.BusinessRules,
		UI:            p.UI,
	}
	for _, f := range m.Fields {
		cfg.Fields = append(cfg.Fields, f.Config)
	}
	for _, e := range m.Events {
		cfg.Events[e.Name] = e.Code
	}
	if cfg.KPIMetrics == nil {
		cfg.KPIMetrics = []string{}
	}
	return cfg
}
