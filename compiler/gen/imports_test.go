package gen

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestImportSet(t *testing.T) {
	t.Run("dedup and case-insensitive sort", func(t *testing.T) {
		var s ImportSet
		s.Add(BaseIcons...)
		s.Add("Users", "Plus", "eye", "")
		_, err := s.Names()
		require.Error(t, err)
		assert.True(t, IsInvariantError(err))
	})

	t.Run("sorted output", func(t *testing.T) {
		var s ImportSet
		s.Add(BaseIcons...)
		s.Add("Trash2", "Users", "CheckCircle", "Plus")
		got, err := s.Names()
		require.NoError(t, err)
		assert.Equal(t, []string{"CheckCircle", "Download", "Edit", "Eye", "Filter", "Plus", "Search", "Trash2", "Users"}, got)
	})

	t.Run("empty", func(t *testing.T) {
		var s ImportSet
		got, err := s.Names()
		require.NoError(t, err)
		assert.Empty(t, got)
	})

	t.Run("order of insertion does not matter", func(t *testing.T) {
		var a, b ImportSet
		a.Add("b", "A", "c")
		b.Add("c", "b", "A")
		ga, err := a.Names()
		require.NoError(t, err)
		gb, err := b.Names()
		require.NoError(t, err)
		assert.Equal(t, ga, gb)
		assert.Equal(t, []string{"A", "b", "c"}, ga)
	})
}
