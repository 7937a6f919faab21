package gen

import (
	"errors"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/syssam/heragen/schema/preset"
)

func TestWithRoot(t *testing.T) {
	t.Run("sets root", func(t *testing.T) {
		c := &Config{}
		require.NoError(t, WithRoot("/srv/app")(c))
		assert.Equal(t, "/srv/app", c.Root)
	})

	t.Run("empty root returns error", func(t *testing.T) {
		err := WithRoot("")(&Config{})
		require.Error(t, err)
		assert.True(t, IsConfigError(err))
	})
}

func TestWithFeatures(t *testing.T) {
	tests := []struct {
		name    string
		names   []string
		want    []string
		wantErr bool
	}{
		{"api only", []string{"api"}, []string{"page", "api"}, false},
		{"page is implicit", []string{"page", "readme"}, []string{"page", "readme"}, false},
		{"none", nil, []string{"page"}, false},
		{"unknown", []string{"graphql"}, nil, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := &Config{}
			err := WithFeatures(tt.names...)(c)
			if tt.wantErr {
				require.Error(t, err)
				assert.True(t, IsConfigError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, c.FeatureNames())
		})
	}
}

func TestWithWorkers(t *testing.T) {
	c := &Config{}
	require.NoError(t, WithWorkers(3)(c))
	assert.Equal(t, 3, c.Workers)

	for _, n := range []int{0, -1} {
		err := WithWorkers(n)(c)
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrMissingConfig))
	}
}

func TestNilOptions(t *testing.T) {
	assert.True(t, IsConfigError(WithLogger(nil)(&Config{})))
	assert.True(t, IsConfigError(WithRegistry(nil)(&Config{})))
}

func TestSimpleOptions(t *testing.T) {
	logger := zap.NewNop()
	reg := preset.Default()
	c := &Config{}
	err := c.Apply(
		WithIndustry("salon"),
		WithSkipGates("dependency-exists"),
		WithTypeScriptGate(true),
		WithDryRun(true),
		WithLogger(logger),
		WithRegistry(reg),
	)
	require.NoError(t, err)
	assert.Equal(t, "salon", c.Industry)
	assert.Equal(t, []string{"dependency-exists"}, c.SkipGates)
	assert.True(t, c.TypeScriptGate)
	assert.True(t, c.DryRun)
	assert.Same(t, logger, c.Logger)
	assert.Same(t, reg, c.Registry)
}

func TestApplyAll(t *testing.T) {
	t.Run("collects every error", func(t *testing.T) {
		c := &Config{}
		err := c.ApplyAll(WithRoot(""), WithWorkers(0), WithIndustry("retail"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "Root")
		assert.Contains(t, err.Error(), "Workers")
		assert.Equal(t, "retail", c.Industry)
	})

	t.Run("Apply stops at first error", func(t *testing.T) {
		c := &Config{}
		err := c.Apply(WithRoot(""), WithIndustry("retail"))
		require.Error(t, err)
		assert.Empty(t, c.Industry)
	})
}

func TestNewConfig(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		c, err := NewConfig()
		require.NoError(t, err)
		assert.Equal(t, ".", c.Root)
		assert.Equal(t, runtime.GOMAXPROCS(0), c.Workers)
		assert.Equal(t, []string{"page", "api", "readme", "config"}, c.FeatureNames())
		assert.NotNil(t, c.Logger)
		assert.Same(t, preset.Default(), c.Registry)
		assert.Nil(t, c.Ledger)
		assert.False(t, c.TypeScriptGate)
	})

	t.Run("invalid options", func(t *testing.T) {
		_, err := NewConfig(WithWorkers(-2))
		assert.Error(t, err)
	})

	t.Run("MustNewConfig panics", func(t *testing.T) {
		assert.Panics(t, func() { MustNewConfig(WithRoot("")) })
		assert.NotPanics(t, func() { MustNewConfig() })
	})

	t.Run("HasFeature", func(t *testing.T) {
		c := MustNewConfig(WithFeatures("readme"))
		assert.True(t, c.HasFeature("page"))
		assert.True(t, c.HasFeature("readme"))
		assert.False(t, c.HasFeature("api"))
	})
}

func TestFeatures(t *testing.T) {
	for _, f := range AllFeatures {
		got, err := FeatureByName(f.Name)
		require.NoError(t, err)
		assert.Equal(t, f.Name, got.Name)
		assert.NotEmpty(t, f.Description)
		assert.NotEqual(t, "", f.Stage.String())
	}
	assert.Equal(t, "stable", FeaturePage.Stage.String())
	assert.Len(t, DefaultFeatures(), len(AllFeatures))
}
