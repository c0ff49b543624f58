package cache_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bnema/webnotify/internal/domain/entity"
	"github.com/bnema/webnotify/internal/infrastructure/cache"
)

const (
	originA = entity.Origin("https://a.example.com")
	originB = entity.Origin("https://b.example.com")
)

func TestPermissions_UninitializedAnswersAsk(t *testing.T) {
	c := cache.NewPermissions()

	assert.False(t, c.Initialized())
	assert.Equal(t, entity.PermissionAsk, c.Query(originA))

	// Even with a decisive default pending, nothing leaks before the first
	// snapshot.
	c.ApplyDefaultPolicy(entity.PermissionAllow)
	assert.Equal(t, entity.PermissionAsk, c.Query(originA))
}

func TestPermissions_QueryAfterSnapshot(t *testing.T) {
	c := cache.NewPermissions()
	c.ApplyFullSnapshot(
		[]entity.Origin{originA},
		[]entity.Origin{originB},
		entity.PermissionAsk,
	)

	assert.True(t, c.Initialized())
	assert.Equal(t, entity.PermissionAllow, c.Query(originA))
	assert.Equal(t, entity.PermissionBlock, c.Query(originB))
	assert.Equal(t, entity.PermissionAsk, c.Query("https://other.example.com"))
}

func TestPermissions_DefaultPolicyAppliesToUndecided(t *testing.T) {
	c := cache.NewPermissions()
	c.ApplyFullSnapshot(nil, nil, entity.PermissionBlock)

	assert.Equal(t, entity.PermissionBlock, c.Query(originA))

	c.ApplyDefaultPolicy(entity.PermissionAllow)
	assert.Equal(t, entity.PermissionAllow, c.Query(originA))
}

func TestPermissions_IncrementalMovesBetweenSets(t *testing.T) {
	c := cache.NewPermissions()
	c.ApplyFullSnapshot(nil, []entity.Origin{originA}, entity.PermissionAsk)

	assert.Equal(t, entity.PermissionBlock, c.Query(originA))

	c.ApplyIncrementalAllow(originA)
	assert.Equal(t, entity.PermissionAllow, c.Query(originA))

	c.ApplyIncrementalDeny(originA)
	assert.Equal(t, entity.PermissionBlock, c.Query(originA))

	allowed, denied, _ := c.Snapshot()
	assert.Empty(t, allowed)
	assert.Equal(t, []entity.Origin{originA}, denied)
}

func TestPermissions_SnapshotReplacesState(t *testing.T) {
	c := cache.NewPermissions()
	c.ApplyFullSnapshot([]entity.Origin{originA}, nil, entity.PermissionAsk)
	c.ApplyFullSnapshot(nil, []entity.Origin{originB}, entity.PermissionBlock)

	allowed, denied, policy := c.Snapshot()
	assert.Empty(t, allowed)
	assert.Equal(t, []entity.Origin{originB}, denied)
	assert.Equal(t, entity.PermissionBlock, policy)
	assert.Equal(t, entity.PermissionBlock, c.Query(originA))
}
