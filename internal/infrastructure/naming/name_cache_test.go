package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/webnotify/internal/domain/entity"
)

const (
	originA = entity.Origin("https://a.example.com")
	originB = entity.Origin("https://b.example.com")
	originC = entity.Origin("https://c.example.com")
)

func TestNameCache_EvictsLeastRecentlyUsed(t *testing.T) {
	c := newNameCache(2)
	c.set(originA, "a")
	c.set(originB, "b")
	c.set(originC, "c")

	_, ok := c.get(originA)
	assert.False(t, ok, "oldest entry should have been evicted")

	name, ok := c.get(originB)
	assert.True(t, ok)
	assert.Equal(t, "b", name)
}

func TestNameCache_GetRefreshesRecency(t *testing.T) {
	c := newNameCache(2)
	c.set(originA, "a")
	c.set(originB, "b")

	// Touch A so B becomes the eviction candidate.
	_, _ = c.get(originA)
	c.set(originC, "c")

	_, ok := c.get(originA)
	assert.True(t, ok)
	_, ok = c.get(originB)
	assert.False(t, ok)
}

func TestNameCache_SetUpdatesExisting(t *testing.T) {
	c := newNameCache(2)
	c.set(originA, "a")
	c.set(originA, "renamed")

	name, ok := c.get(originA)
	assert.True(t, ok)
	assert.Equal(t, "renamed", name)
}

func TestNameCache_ClampsCapacity(t *testing.T) {
	c := newNameCache(0)
	c.set(originA, "a")
	c.set(originB, "b")

	_, ok := c.get(originA)
	assert.False(t, ok)
	_, ok = c.get(originB)
	assert.True(t, ok)
}
