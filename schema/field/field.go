// Package field classifies preset field names into UI field configurations.
//
// Classification is a pure function of the name: the input type comes from
// a closed, case-sensitive table, the label from the name itself and the
// required flag from a fixed set of commonly mandatory fields.
//
//	field.Classify("close_date")
//	// {Type: date, Label: "Close Date", Required: false}
package field

import (
	"slices"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/syssam/heragen/schema/smartcode"
)

// Type is the input type of a generated form field.
type Type string

// Field types understood by the generated pages.
const (
	TypeText   Type = "text"
	TypeNumber Type = "number"
	TypeDate   Type = "date"
	TypeEmail  Type = "email"
	TypePhone  Type = "phone"
	TypeURL    Type = "url"
)

// Types lists every field type.
var Types = []Type{TypeText, TypeNumber, TypeDate, TypeEmail, TypePhone, TypeURL}

// String implements fmt.Stringer.
func (t Type) String() string { return string(t) }

// InputType returns the HTML input type used to edit a field of type t.
func (t Type) InputType() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeDate:
		return "date"
	case TypeEmail:
		return "email"
	case TypePhone:
		return "tel"
	case TypeURL:
		return "url"
	default:
		return "text"
	}
}

// TSType returns the TypeScript type of a field value.
func (t Type) TSType() string {
	if t == TypeNumber {
		return "number"
	}
	return "string"
}

// types maps exact field names to their type. Names not listed are text.
var types = map[string]Type{
	"email": TypeEmail,

	"phone":  TypePhone,
	"mobile": TypePhone,
	"fax":    TypePhone,

	"website":      TypeURL,
	"url":          TypeURL,
	"linkedin_url": TypeURL,
	"receipt_url":  TypeURL,
	"file_url":     TypeURL,

	"revenue":       TypeNumber,
	"value":         TypeNumber,
	"amount":        TypeNumber,
	"price":         TypeNumber,
	"cost":          TypeNumber,
	"budget":        TypeNumber,
	"spent":         TypeNumber,
	"balance":       TypeNumber,
	"debit":         TypeNumber,
	"credit":        TypeNumber,
	"tax":           TypeNumber,
	"fee":           TypeNumber,
	"discount":      TypeNumber,
	"employees":     TypeNumber,
	"headcount":     TypeNumber,
	"probability":   TypeNumber,
	"score":         TypeNumber,
	"rating":        TypeNumber,
	"quantity":      TypeNumber,
	"stock_level":   TypeNumber,
	"reorder_point": TypeNumber,
	"capacity":      TypeNumber,
	"hours":         TypeNumber,
	"days":          TypeNumber,
	"weight":        TypeNumber,
	"distance":      TypeNumber,
	"variance":      TypeNumber,
	"defects":       TypeNumber,
	"threshold":     TypeNumber,
	"rebate_rate":   TypeNumber,
	"fiscal_year":   TypeNumber,

	"close_date":        TypeDate,
	"due_date":          TypeDate,
	"start_date":        TypeDate,
	"end_date":          TypeDate,
	"hire_date":         TypeDate,
	"order_date":        TypeDate,
	"invoice_date":      TypeDate,
	"payment_date":      TypeDate,
	"expense_date":      TypeDate,
	"delivery_date":     TypeDate,
	"posting_date":      TypeDate,
	"consent_date":      TypeDate,
	"expiry_date":       TypeDate,
	"valid_from":        TypeDate,
	"valid_until":       TypeDate,
	"needed_by":         TypeDate,
	"week_start":        TypeDate,
	"count_date":        TypeDate,
	"movement_date":     TypeDate,
	"manufacture_date":  TypeDate,
	"inspection_date":   TypeDate,
	"effective_date":    TypeDate,
	"review_date":       TypeDate,
	"requested_date":    TypeDate,
	"pickup_date":       TypeDate,
	"last_service_date": TypeDate,
}

// required is the set of field names treated as mandatory on create.
var required = []string{"email", "phone", "owner", "account", "company", "industry", "sku", "price"}

var titleCaser = cases.Title(language.English, cases.NoLower)

// Classification is the outcome of Classify.
type Classification struct {
	Type     Type
	Label    string
	Required bool
}

// Classify returns the type, label and required flag of the field name.
func Classify(name string) Classification {
	t, ok := types[name]
	if !ok {
		t = TypeText
	}
	return Classification{
		Type:     t,
		Label:    Label(name),
		Required: slices.Contains(required, name),
	}
}

// Label converts a snake_case field name to a display label.
func Label(name string) string {
	return titleCaser.String(strings.ReplaceAll(name, "_", " "))
}

// Config is the derived configuration of one preset field.
type Config struct {
	Name      string `json:"name"`
	Type      Type   `json:"type"`
	Label     string `json:"label"`
	Required  bool   `json:"required"`
	SmartCode string `json:"smart_code"`
}

// Derive classifies names and attaches the dynamic-field smart code of
// each to code. The result keeps the order of names.
func Derive(code string, names []string) []Config {
	configs := make([]Config, 0, len(names))
	for _, name := range names {
		c := Classify(name)
		configs = append(configs, Config{
			Name:      name,
			Type:      c.Type,
			Label:     c.Label,
			Required:  c.Required,
			SmartCode: smartcode.DynamicField(code, name),
		})
	}
	return configs
}
