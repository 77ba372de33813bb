package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPRNGIsDeterministicForSeed(t *testing.T) {
	a, b := NewPRNG(42), NewPRNG(42)
	for i := 0; i < 20; i++ {
		assert.Equal(t, a.Intn(100), b.Intn(100))
		assert.Equal(t, a.Float64(), b.Float64())
	}
}

func TestPRNGRangeStaysInBounds(t *testing.T) {
	p := NewPRNG(7)
	for i := 0; i < 1000; i++ {
		v := p.Range(-150, 150)
		assert.GreaterOrEqual(t, v, -150.0)
		assert.Less(t, v, 150.0)
	}
}

func TestMathHelpers(t *testing.T) {
	assert.Equal(t, 5.0, Lerp(0, 10, 0.5))
	assert.Equal(t, 1.0, Clamp(3, 0, 1))
	assert.Equal(t, 0.0, Clamp(-3, 0, 1))
	assert.InDelta(t, 10.0, WrapDegrees(370), 1e-9)
	assert.InDelta(t, 350.0, WrapDegrees(-10), 1e-9)
}
