package gen

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/syssam/heragen/schema/preset"
)

func TestModulePrefix(t *testing.T) {
	t.Run("every known module has an explicit prefix", func(t *testing.T) {
		for _, m := range preset.AllModules {
			fallback := strings.ToLower(string(m)) + "/"
			got := ModulePrefix(m)
			assert.True(t, strings.HasSuffix(got, "/"), m)
			if m != preset.ModuleCRM && m != preset.ModuleAudit {
				assert.NotEqual(t, fallback, got, "module %s uses the fallback prefix", m)
			}
		}
	})

	tests := []struct {
		module preset.Module
		want   string
	}{
		{preset.ModuleCRM, "crm/"},
		{preset.ModuleProcurement, "enterprise/procurement/purchasing-rebates/"},
		{preset.ModuleWasteManagement, "greenworms/waste-management/"},
		{"LOGISTICS", "logistics/"},
		{"Field_Ops", "field_ops/"},
	}
	for _, tt := range tests {
		t.Run(string(tt.module), func(t *testing.T) {
			assert.Equal(t, tt.want, ModulePrefix(tt.module))
		})
	}
}

func TestKebab(t *testing.T) {
	tests := map[string]string{
		"Contacts":           "contacts",
		"Bills of Materials": "bills-of-materials",
		"Sales  Orders":      "sales-orders",
		"R&D Projects":       "r-d-projects",
		"Purchase_Orders":    "purchase-orders",
		" Trailing Space ":   "trailing-space",
		"Café Visits":        "cafe-visits",
	}
	for in, want := range tests {
		assert.Equal(t, want, Kebab(in), in)
	}
}

func TestResolvePath(t *testing.T) {
	reg := preset.Default()
	lookup := func(key string) preset.EntityPreset {
		p, err := reg.Lookup(key)
		if err != nil {
			t.Fatal(err)
		}
		return p
	}

	contact := lookup("CONTACT")
	assert.Equal(t, "crm/contacts", ResolvePath(contact))
	assert.Equal(t, "src/app/crm/contacts/page.tsx", PagePath(contact))
	assert.Equal(t, "src/app/api/v2/contacts/route.ts", APIPath(contact))
	assert.Equal(t, "src/app/crm/contacts/README.md", ReadmePath(contact))
	assert.Equal(t, "src/app/crm/contacts/entity.config.json", ConfigPath(contact))
	assert.Equal(t, "/api/v2/contacts", APIRoute(contact))

	assert.Equal(t, "enterprise/manufacturing/bills-of-materials", ResolvePath(lookup("BOM")))
	assert.Equal(t, "enterprise/procurement/purchasing-rebates/rebate-agreements", ResolvePath(lookup("REBATE_AGREEMENT")))

	t.Run("fallback for unknown module", func(t *testing.T) {
		p := preset.EntityPreset{Module: "LOGISTICS", TitlePlural: "Shipments"}
		assert.Equal(t, "logistics/shipments", ResolvePath(p))
	})

	t.Run("catalog paths are unique", func(t *testing.T) {
		seen := make(map[string]preset.EntityType)
		apis := make(map[string]preset.EntityType)
		for _, p := range reg.All() {
			if other, ok := seen[PagePath(p)]; ok {
				t.Errorf("%s and %s both resolve to %s", other, p.Key, PagePath(p))
			}
			seen[PagePath(p)] = p.Key
			if other, ok := apis[APIPath(p)]; ok {
				t.Errorf("%s and %s both resolve to %s", other, p.Key, APIPath(p))
			}
			apis[APIPath(p)] = p.Key
		}
	})
}
