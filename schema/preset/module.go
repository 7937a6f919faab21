package preset

import "slices"

// Module is the logical grouping tag of a preset. It decides where the
// generated files land in the application tree.
type Module string

// Known modules.
const (
	ModuleCRM             Module = "CRM"
	ModuleSales           Module = "SALES"
	ModuleProcurement     Module = "PROCUREMENT"
	ModuleInventory       Module = "INVENTORY"
	ModuleFinance         Module = "FINANCE"
	ModuleHR              Module = "HR"
	ModuleManufacturing   Module = "MANUFACTURING"
	ModuleProjects        Module = "PROJECTS"
	ModuleService         Module = "SERVICE"
	ModuleCompliance      Module = "COMPLIANCE"
	ModuleAudit           Module = "AUDIT"
	ModuleWasteManagement Module = "WASTE_MANAGEMENT"
)

// AllModules lists every known module. Switches over Module must handle
// each of them; the tests in compiler/gen check this.
var AllModules = []Module{
	ModuleCRM,
	ModuleSales,
	ModuleProcurement,
	ModuleInventory,
	ModuleFinance,
	ModuleHR,
	ModuleManufacturing,
	ModuleProjects,
	ModuleService,
	ModuleCompliance,
	ModuleAudit,
	ModuleWasteManagement,
}

// Known reports whether m is one of AllModules.
func (m Module) Known() bool {
	return slices.Contains(AllModules, m)
}

// String implements fmt.Stringer.
func (m Module) String() string { return string(m) }
