package system

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newHealth(maxHealth, regen float64) *HealthSystem {
	h := NewHealthSystem()
	h.Initialize(maxHealth, regen)
	return h
}

func TestHealthInitialize(t *testing.T) {
	h := newHealth(100, 5)
	assert.Equal(t, 100.0, h.Current())
	assert.Equal(t, 100.0, h.Max())
	assert.False(t, h.IsZero())
}

func TestHealthReduceClampsAtZero(t *testing.T) {
	h := newHealth(10, 0)
	h.Reduce(4)
	assert.InDelta(t, 6, h.Current(), 1e-9)

	h.Reduce(100)
	assert.Zero(t, h.Current())
	assert.True(t, h.IsZero())
}

func TestHealthRegenerationWithDepletion(t *testing.T) {
	h := newHealth(100, 5)
	h.Reduce(50)
	h.Update(2.0)

	// +10 regen, then one depletion tick of 0.1
	assert.InDelta(t, 59.9, h.Current(), 0.01)
}

func TestHealthRegenDoesNotExceedMax(t *testing.T) {
	h := newHealth(10, 100)
	h.Reduce(1)
	h.Update(0.1)
	assert.LessOrEqual(t, h.Current(), h.Max())
}

func TestHealthDepletionCadence(t *testing.T) {
	h := newHealth(10, 0)

	h.Update(0.2)
	assert.Equal(t, 10.0, h.Current(), "no tick before the interval")

	h.Update(0.1)
	assert.InDelta(t, 9.9, h.Current(), 1e-9)

	h.Update(0.29)
	assert.InDelta(t, 9.9, h.Current(), 1e-9)
}

func TestHealthDepletionScalesWithLevel(t *testing.T) {
	h := newHealth(10, 0)
	h.SetCurrentLevel(6)
	h.Update(0.3)
	assert.InDelta(t, 10-0.1*2, h.Current(), 1e-9)
}

func TestHealthRestoreAndReset(t *testing.T) {
	h := newHealth(10, 0)
	h.Reduce(7)
	h.RestoreToMax()
	assert.Equal(t, 10.0, h.Current())

	h.Reduce(3)
	h.Reset(15)
	assert.Equal(t, 15.0, h.Current())
	assert.Equal(t, 15.0, h.Max())
}

func TestHealthSetMaxClampsCurrent(t *testing.T) {
	h := newHealth(20, 0)
	h.SetMaxHealth(12)
	assert.Equal(t, 12.0, h.Current())

	h.SetMaxHealth(30)
	assert.Equal(t, 12.0, h.Current())
	assert.Equal(t, 30.0, h.Max())
}

func TestHealthIgnoresNonPositiveDelta(t *testing.T) {
	h := newHealth(10, 1)
	h.Reduce(5)
	h.Update(0)
	h.Update(-1)
	assert.Equal(t, 5.0, h.Current())
}
