package tuple

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPoint(t *testing.T) {
	p := NewPoint(4, -4, 3)
	assert.Equal(t, 1.0, p.W())

	x, y, z := p.Get()
	assert.Equal(t, [3]float64{4, -4, 3}, [3]float64{x, y, z})
	assert.Equal(t, "[4 -4 3 1]", p.String())
}

func TestPointEq(t *testing.T) {
	p := NewPoint(1, 2, 3)

	assert.True(t, p.Eq(p))
	assert.True(t, p.Eq(NewPoint(1.0+Epsilon/2, 2, 3)))
	assert.True(t, p.Eq(NewPoint(1, 2, 3.0-Epsilon/2)))
	assert.False(t, p.Eq(NewPoint(1.00001, 2, 3)))
	assert.False(t, p.Eq(NewPoint(1, 2, 4)))
}

func TestPointArithmetic(t *testing.T) {
	t.Run("AddVector", func(t *testing.T) {
		r := NewPoint(3, -2, 5).Add(NewVector(-2, 3, 1))
		assert.True(t, r.Eq(NewPoint(1, 1, 6)), "got %v", r)
	})

	t.Run("SubPoint", func(t *testing.T) {
		r := NewPoint(3, 2, 1).Sub(NewPoint(5, 6, 7))
		assert.True(t, r.Eq(NewVector(-2, -4, -6)), "got %v", r)
		assert.Equal(t, 0.0, r.W())
	})

	t.Run("SubVector", func(t *testing.T) {
		r := NewPoint(3, 2, 1).SubVector(NewVector(5, 6, 7))
		assert.True(t, r.Eq(NewPoint(-2, -4, -6)), "got %v", r)
		assert.Equal(t, 1.0, r.W())
	})

	t.Run("RoundTrip", func(t *testing.T) {
		a, b := NewPoint(1.5, -7, 0.25), NewPoint(-3, 2, 9)
		assert.True(t, b.Add(a.Sub(b)).Eq(a))
		assert.True(t, a.SubVector(a.Sub(b)).Eq(b))
	})

	t.Run("Immutable", func(t *testing.T) {
		p := NewPoint(1, 2, 3)
		_ = p.Add(NewVector(1, 1, 1))
		assert.True(t, p.Eq(NewPoint(1, 2, 3)))
	})
}
