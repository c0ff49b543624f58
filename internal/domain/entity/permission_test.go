package entity_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/webnotify/internal/domain/entity"
)

func TestPermissionState_IsValid(t *testing.T) {
	assert.True(t, entity.PermissionAllow.IsValid())
	assert.True(t, entity.PermissionBlock.IsValid())
	assert.True(t, entity.PermissionAsk.IsValid())
	assert.False(t, entity.PermissionState("maybe").IsValid())
	assert.False(t, entity.PermissionState("").IsValid())
}

func TestParsePermissionState(t *testing.T) {
	state, err := entity.ParsePermissionState("allow")
	require.NoError(t, err)
	assert.Equal(t, entity.PermissionAllow, state)

	_, err = entity.ParsePermissionState("granted")
	assert.Error(t, err)
}

func TestNormalizePolicy(t *testing.T) {
	// Unknown and unset values normalize to the factory default. A caller
	// choosing "ask" explicitly is indistinguishable from never configuring.
	assert.Equal(t, entity.FactoryDefaultPolicy, entity.NormalizePolicy(""))
	assert.Equal(t, entity.FactoryDefaultPolicy, entity.NormalizePolicy("bogus"))
	assert.Equal(t, entity.FactoryDefaultPolicy, entity.NormalizePolicy("ask"))
	assert.Equal(t, entity.PermissionAllow, entity.NormalizePolicy("allow"))
	assert.Equal(t, entity.PermissionBlock, entity.NormalizePolicy("block"))
}

func TestDecisionDelta_Changed(t *testing.T) {
	assert.False(t, entity.DecisionDelta{}.Changed())
	assert.True(t, entity.DecisionDelta{AllowedChanged: true}.Changed())
	assert.True(t, entity.DecisionDelta{DeniedChanged: true}.Changed())
}
