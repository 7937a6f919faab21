package preset_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/heragen/schema/preset"
)

const shipmentOverlay = `
presets:
  - key: shipment
    title: Shipment
    title_plural: Shipments
    description: Outbound shipments
    smart_code: HERA.LOGISTICS.TRANSPORT.ENTITY.SHIPMENT.v1
    module: LOGISTICS
    default_fields: [carrier, tracking_number, ship_date, status]
    business_rules:
      status_workflow: true
    ui:
      icon: Truck
      primary_color: "#123456"
      accent_color: "#654321"
`

func TestParseOverlay(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		ov, err := preset.ParseOverlay([]byte(shipmentOverlay))
		require.NoError(t, err)
		require.Len(t, ov.Presets, 1)

		p := ov.Presets[0]
		assert.Equal(t, preset.EntityType("SHIPMENT"), p.Key)
		assert.Equal(t, preset.Module("LOGISTICS"), p.Module)
		assert.True(t, p.BusinessRules.StatusWorkflow)
		assert.Equal(t, "#123456", p.UI.PrimaryColor)

		reg, err := ov.Registry()
		require.NoError(t, err)
		got, err := reg.Lookup("shipment")
		require.NoError(t, err)
		assert.Equal(t, []string{"carrier", "tracking_number", "ship_date", "status"}, got.DefaultFields)
	})

	t.Run("empty document", func(t *testing.T) {
		ov, err := preset.ParseOverlay(nil)
		require.NoError(t, err)
		assert.Empty(t, ov.Presets)
	})

	tests := []struct {
		name string
		yaml string
	}{
		{
			name: "bad smart code",
			yaml: `
presets:
  - key: SHIPMENT
    title: Shipment
    title_plural: Shipments
    smart_code: HERA.LOGISTICS.SHIPMENT
    module: LOGISTICS
    default_fields: [carrier]
`,
		},
		{
			name: "reserved field",
			yaml: `
presets:
  - key: SHIPMENT
    title: Shipment
    title_plural: Shipments
    smart_code: HERA.LOGISTICS.TRANSPORT.ENTITY.SHIPMENT.v1
    module: LOGISTICS
    default_fields: [carrier, created_at]
`,
		},
		{
			name: "missing title",
			yaml: `
presets:
  - key: SHIPMENT
    title_plural: Shipments
    smart_code: HERA.LOGISTICS.TRANSPORT.ENTITY.SHIPMENT.v1
    module: LOGISTICS
    default_fields: [carrier]
`,
		},
		{
			name: "unknown attribute",
			yaml: `
presets:
  - key: SHIPMENT
    title: Shipment
    title_plural: Shipments
    smart_code: HERA.LOGISTICS.TRANSPORT.ENTITY.SHIPMENT.v1
    module: LOGISTICS
    default_fields: [carrier]
    colour: red
`,
		},
		{
			name: "no fields",
			yaml: `
presets:
  - key: SHIPMENT
    title: Shipment
    title_plural: Shipments
    smart_code: HERA.LOGISTICS.TRANSPORT.ENTITY.SHIPMENT.v1
    module: LOGISTICS
    default_fields: []
`,
		},
		{
			name: "repeated field",
			yaml: `
presets:
  - key: SHIPMENT
    title: Shipment
    title_plural: Shipments
    smart_code: HERA.LOGISTICS.TRANSPORT.ENTITY.SHIPMENT.v1
    module: LOGISTICS
    default_fields: [carrier, carrier]
`,
		},
		{
			name: "field shadows entity name",
			yaml: `
presets:
  - key: SHIPMENT
    title: Shipment
    title_plural: Shipments
    smart_code: HERA.LOGISTICS.TRANSPORT.ENTITY.SHIPMENT.v1
    module: LOGISTICS
    default_fields: [carrier, entity_name]
`,
		},
		{
			name: "field shadows smart code",
			yaml: `
presets:
  - key: SHIPMENT
    title: Shipment
    title_plural: Shipments
    smart_code: HERA.LOGISTICS.TRANSPORT.ENTITY.SHIPMENT.v1
    module: LOGISTICS
    default_fields: [smart_code]
`,
		},
		{
			name: "malformed yaml",
			yaml: "presets: [",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := preset.ParseOverlay([]byte(tt.yaml))
			assert.Error(t, err)
		})
	}
}

func TestLoadOverlay(t *testing.T) {
	t.Run("reads file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "presets.yaml")
		require.NoError(t, os.WriteFile(path, []byte(shipmentOverlay), 0o644))
		ov, err := preset.LoadOverlay(path)
		require.NoError(t, err)
		assert.Len(t, ov.Presets, 1)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := preset.LoadOverlay(filepath.Join(t.TempDir(), "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("redefining a built-in key fails at merge", func(t *testing.T) {
		ov, err := preset.ParseOverlay([]byte(`
presets:
  - key: CONTACT
    title: Contact
    title_plural: Contacts
    smart_code: HERA.CRM.CUSTOMER.ENTITY.CONTACT.v2
    module: CRM
    default_fields: [email]
`))
		require.NoError(t, err)
		_, err = ov.Registry()
		assert.Error(t, err)
	})
}
