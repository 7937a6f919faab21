package preset_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syssam/heragen"
	"github.com/syssam/heragen/schema/preset"
)

func TestRegistryLookup(t *testing.T) {
	reg := preset.Default()

	t.Run("case insensitive", func(t *testing.T) {
		for _, key := range []string{"CONTACT", "contact", " Contact "} {
			p, err := reg.Lookup(key)
			require.NoError(t, err, key)
			assert.Equal(t, preset.Contact, p.Key)
			assert.Equal(t, "HERA.CRM.CUSTOMER.ENTITY.CONTACT.v1", p.SmartCode)
		}
	})

	t.Run("unknown key lists valid keys", func(t *testing.T) {
		_, err := reg.Lookup("NONEXISTENT_ENTITY")
		require.Error(t, err)
		assert.True(t, errors.Is(err, heragen.ErrEntityTypeNotFound))

		var nf *heragen.EntityTypeNotFoundError
		require.ErrorAs(t, err, &nf)
		assert.Equal(t, "NONEXISTENT_ENTITY", nf.Key())
		assert.Equal(t, reg.Keys(), nf.ValidKeys())
	})

	t.Run("returned presets are copies", func(t *testing.T) {
		p, err := reg.Lookup("CONTACT")
		require.NoError(t, err)
		p.DefaultFields[0] = "mutated"
		p.Title = "mutated"

		again, err := reg.Lookup("CONTACT")
		require.NoError(t, err)
		assert.Equal(t, "email", again.DefaultFields[0])
		assert.Equal(t, "Contact", again.Title)
	})
}

func TestRegistryListing(t *testing.T) {
	reg := preset.Default()

	keys := reg.Keys()
	assert.True(t, sort.StringsAreSorted(keys))
	assert.Equal(t, reg.Len(), len(keys))
	assert.GreaterOrEqual(t, reg.Len(), 40)

	all := reg.All()
	require.Len(t, all, len(keys))
	for i, p := range all {
		assert.Equal(t, keys[i], string(p.Key))
	}

	assert.True(t, reg.Has("bom"))
	assert.False(t, reg.Has("WIDGET"))
	assert.Same(t, reg, preset.Default())
}

func TestNew(t *testing.T) {
	t.Run("extra presets are added", func(t *testing.T) {
		reg, err := preset.New(preset.EntityPreset{
			Key:           "shipment",
			Title:         "Shipment",
			TitlePlural:   "Shipments",
			SmartCode:     "HERA.LOGISTICS.TRANSPORT.ENTITY.SHIPMENT.v1",
			Module:        "LOGISTICS",
			DefaultFields: []string{"carrier"},
		})
		require.NoError(t, err)
		assert.Equal(t, preset.Default().Len()+1, reg.Len())
		assert.True(t, reg.Has("SHIPMENT"))
	})

	t.Run("built-in keys cannot be redefined", func(t *testing.T) {
		_, err := preset.New(preset.EntityPreset{Key: "contact"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "duplicate key CONTACT")
	})

	t.Run("smart codes cannot be reused", func(t *testing.T) {
		_, err := preset.New(preset.EntityPreset{
			Key:           "PERSON",
			Title:         "Person",
			TitlePlural:   "People",
			SmartCode:     "HERA.CRM.CUSTOMER.ENTITY.CONTACT.v1",
			Module:        preset.ModuleCRM,
			DefaultFields: []string{"email"},
		})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "PERSON reuses smart code HERA.CRM.CUSTOMER.ENTITY.CONTACT.v1 of CONTACT")
	})

	t.Run("empty key", func(t *testing.T) {
		_, err := preset.New(preset.EntityPreset{SmartCode: "HERA.X.Y.Z.W.v1"})
		require.Error(t, err)
	})
}
