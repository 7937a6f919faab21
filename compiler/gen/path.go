package gen

import (
	"path"
	"regexp"
	"strings"

	"github.com/go-openapi/inflect"

	"github.com/syssam/heragen/schema/preset"
)

// ModulePrefix returns the directory under src/app the pages of module m
// are generated in. Unknown modules fall back to their lower-cased name.
func ModulePrefix(m preset.Module) string {
	switch m {
	case preset.ModuleCRM:
		return "crm/"
	case preset.ModuleSales:
		return "enterprise/sales/"
	case preset.ModuleProcurement:
		return "enterprise/procurement/purchasing-rebates/"
	case preset.ModuleInventory:
		return "enterprise/inventory/"
	case preset.ModuleFinance:
		return "enterprise/finance/"
	case preset.ModuleHR:
		return "enterprise/hr/"
	case preset.ModuleManufacturing:
		return "enterprise/manufacturing/"
	case preset.ModuleProjects:
		return "enterprise/projects/"
	case preset.ModuleService:
		return "enterprise/service/"
	case preset.ModuleCompliance:
		return "enterprise/compliance/"
	case preset.ModuleAudit:
		return "audit/"
	case preset.ModuleWasteManagement:
		return "greenworms/waste-management/"
	default:
		return strings.ToLower(string(m)) + "/"
	}
}

var nonAlnum = regexp.MustCompile(`[^A-Za-z0-9]+`)

// Kebab converts s to a lower-case, dash separated path segment.
//
//	Kebab("Bills of Materials") // bills-of-materials
func Kebab(s string) string {
	return inflect.Parameterize(nonAlnum.ReplaceAllString(inflect.Asciify(s), " "))
}

// ResolvePath returns the route of p relative to src/app,
// e.g. "crm/contacts".
func ResolvePath(p preset.EntityPreset) string {
	return ModulePrefix(p.Module) + Kebab(p.TitlePlural)
}

// PagePath returns the project relative path of the page of p.
func PagePath(p preset.EntityPreset) string {
	return path.Join("src/app", ResolvePath(p), "page.tsx")
}

// APIPath returns the project relative path of the route handler of p.
func APIPath(p preset.EntityPreset) string {
	return path.Join("src/app/api/v2", Kebab(p.TitlePlural), "route.ts")
}

// APIRoute returns the URL path served by the route handler of p.
func APIRoute(p preset.EntityPreset) string {
	return "/api/v2/" + Kebab(p.TitlePlural)
}

// ReadmePath returns the project relative path of the README of p.
func ReadmePath(p preset.EntityPreset) string {
	return path.Join("src/app", ResolvePath(p), "README.md")
}

// ConfigPath returns the project relative path of the entity config of p.
func ConfigPath(p preset.EntityPreset) string {
	return path.Join("src/app", ResolvePath(p), "entity.config.json")
}
