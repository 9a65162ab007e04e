package tuple

import (
	"fmt"
	"image/color"
	"math"
)

// Color is a red, green, blue intensity triple. Components are nominally in
// [0, 1] but may leave that range during blending.
type Color struct {
	v [3]float64
}

var _ color.Color = Color{}

// NewColor creates a Color from its red, green and blue components.
func NewColor(r, g, b float64) Color {
	return Color{v: [3]float64{r, g, b}}
}

// Add o to c
func (c Color) Add(o Color) (res Color) {
	zip(res.v[:], c.v[:], o.v[:], add)
	return
}

// Sub o from c
func (c Color) Sub(o Color) (res Color) {
	zip(res.v[:], c.v[:], o.v[:], sub)
	return
}

// Mul scales c by s
func (c Color) Mul(s float64) (res Color) {
	scale(res.v[:], c.v[:], s)
	return
}

// Div divides every component of c by s
func (c Color) Div(s float64) (res Color) {
	divide(res.v[:], c.v[:], s)
	return
}

// Hadamard multiplies c and o per component.
func (c Color) Hadamard(o Color) (res Color) {
	zip(res.v[:], c.v[:], o.v[:], mul)
	return
}

// Eq returns true if c and o are within Epsilon of each other
func (c Color) Eq(o Color) bool {
	return approxEq(c.v[:], o.v[:])
}

// RGBA clamps c to [0, 1] and returns alpha-premultiplied 16-bit values
// with full opacity.
func (c Color) RGBA() (r, g, b, a uint32) {
	conv := func(x float64) uint32 {
		switch {
		case x <= 0 || math.IsNaN(x):
			return 0
		case x >= 1:
			return 0xffff
		}
		return uint32(x*0xffff + 0.5)
	}
	return conv(c.v[0]), conv(c.v[1]), conv(c.v[2]), 0xffff
}

/* Getters */

// Red component of c
func (c Color) Red() float64 {
	return c.v[0]
}

// Green component of c
func (c Color) Green() float64 {
	return c.v[1]
}

// Blue component of c
func (c Color) Blue() float64 {
	return c.v[2]
}

// Get returns red, green and blue.
func (c Color) Get() (r, g, b float64) {
	return c.v[0], c.v[1], c.v[2]
}

func (c Color) String() string {
	return fmt.Sprint(c.v)
}
