package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCatalog(t *testing.T, pairs ...string) *Catalog[string] {
	t.Helper()
	c := New[string]()
	for i := 0; i+1 < len(pairs); i += 2 {
		require.NoError(t, c.Set(pairs[i], pairs[i+1]))
	}
	return c
}

func TestGet(t *testing.T) {
	c := newCatalog(t, "fast", "f1", "slow", "f2")

	t.Run("literal hit", func(t *testing.T) {
		value, err := c.Get("fast")
		require.NoError(t, err)
		assert.Equal(t, "f1", value)
	})

	t.Run("miss", func(t *testing.T) {
		_, err := c.Get("missing")
		assert.ErrorIs(t, err, ErrKeyNotFound)
	})

	t.Run("wildcards are rejected", func(t *testing.T) {
		for _, key := range []string{WildcardAll, WildcardDefault, WildcardNone} {
			_, err := c.Get(key)
			assert.ErrorIs(t, err, ErrReservedKey, key)
		}
	})
}

func TestSelect(t *testing.T) {
	c := newCatalog(t, "fast", "f1", "slow", "f2", "exact", "f3")

	t.Run("all returns every value in insertion order", func(t *testing.T) {
		assert.Equal(t, []string{"f1", "f2", "f3"}, c.Select("all"))
		assert.Len(t, c.Select("all"), c.Len())
	})

	t.Run("list lookup concatenates", func(t *testing.T) {
		assert.Equal(t, []string{"f1", "f2"}, c.Select("fast", "slow"))

		// Select(k1, k2) == Select(k1) + Select(k2)
		combined := append(c.Select("fast"), c.Select("slow")...)
		assert.Equal(t, combined, c.Select("fast", "slow"))
	})

	t.Run("unknown keys contribute nothing", func(t *testing.T) {
		assert.Equal(t, []string{"f1"}, c.Select("fast", "missing"))
	})

	t.Run("none is empty", func(t *testing.T) {
		assert.Empty(t, c.Select("none"))
	})

	t.Run("default without subset is everything", func(t *testing.T) {
		assert.Equal(t, c.Select("all"), c.Select("default"))
	})

	t.Run("default with subset", func(t *testing.T) {
		c.SetDefaults("slow", "exact")
		assert.Equal(t, []string{"f2", "f3"}, c.Select("default"))
	})

	t.Run("wildcards mix with literals", func(t *testing.T) {
		c.SetDefaults("slow")
		assert.Equal(t, []string{"f1", "f2"}, c.Select("fast", "default"))
	})
}

func TestSet(t *testing.T) {
	c := New[int]()

	t.Run("reserved keys rejected", func(t *testing.T) {
		assert.ErrorIs(t, c.Set("all", 1), ErrReservedKey)
		assert.ErrorIs(t, c.Set("default", 1), ErrReservedKey)
		assert.ErrorIs(t, c.Set("none", 1), ErrReservedKey)
	})

	t.Run("overwrite keeps insertion order", func(t *testing.T) {
		require.NoError(t, c.Set("a", 1))
		require.NoError(t, c.Set("b", 2))
		require.NoError(t, c.Set("a", 3))
		assert.Equal(t, []string{"a", "b"}, c.Keys())
		assert.Equal(t, []int{3, 2}, c.Select("all"))
	})
}

func TestDelete(t *testing.T) {
	c := newCatalog(t, "a", "1", "b", "2")
	c.SetDefaults("a", "b")

	assert.True(t, c.Delete("a"))
	assert.False(t, c.Delete("a"))
	assert.Equal(t, []string{"b"}, c.Keys())
	assert.Equal(t, []string{"b"}, c.Defaults())
	assert.False(t, c.Contains("a"))
}
