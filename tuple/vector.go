package tuple

import (
	"fmt"
	"math"
)

// Vector is a displacement with direction and magnitude. Its discriminant
// is always 0.
type Vector struct {
	v [4]float64
}

// NewVector creates a Vector (x, y, z).
func NewVector(x, y, z float64) Vector {
	return Vector{v: [4]float64{x, y, z, vectorW}}
}

// Tuple widens v to a generic Tuple.
func (v Vector) Tuple() Tuple {
	return Tuple{v: v.v}
}

// Add o to v
func (v Vector) Add(o Vector) (res Vector) {
	zip(res.v[:], v.v[:], o.v[:], add)
	return
}

// AddPoint displaces p by v
func (v Vector) AddPoint(p Point) (res Point) {
	zip(res.v[:], v.v[:], p.v[:], add)
	return
}

// Sub o from v
func (v Vector) Sub(o Vector) (res Vector) {
	zip(res.v[:], v.v[:], o.v[:], sub)
	return
}

// Mul scales v by s
func (v Vector) Mul(s float64) (res Vector) {
	scale(res.v[:], v.v[:], s)
	return
}

// Div divides every component of v by s
func (v Vector) Div(s float64) (res Vector) {
	divide(res.v[:], v.v[:], s)
	return
}

// Neg returns the negative vector of v (-v)
func (v Vector) Neg() Vector {
	return v.Mul(-1.0)
}

// Magnitude returns the L2 norm of v. The discriminant is part of the sum.
func (v Vector) Magnitude() float64 {
	var sum float64
	for _, c := range v.v {
		sum += c * c
	}
	return math.Sqrt(sum)
}

// Normalize returns v scaled to unit length. The zero vector normalizes to
// NaN components.
func (v Vector) Normalize() Vector {
	return v.Div(v.Magnitude())
}

// Dot returns the dot product of v and o (v⋅o)
func (v Vector) Dot(o Vector) float64 {
	return Dot(v, o)
}

// Cross returns the cross product of v and o (v×o)
func (v Vector) Cross(o Vector) Vector {
	return Cross(v, o)
}

// Eq returns true if v and o are within Epsilon of each other
func (v Vector) Eq(o Vector) bool {
	return approxEq(v.v[:], o.v[:])
}

// Dot returns the dot product of a and b over x, y and z.
func Dot(a, b Vector) (d float64) {
	for i := 0; i < 3; i++ {
		d += a.v[i] * b.v[i]
	}
	return
}

// Cross returns the cross product of a and b.
func Cross(a, b Vector) Vector {
	return NewVector(
		a.v[1]*b.v[2]-a.v[2]*b.v[1],
		a.v[2]*b.v[0]-a.v[0]*b.v[2],
		a.v[0]*b.v[1]-a.v[1]*b.v[0],
	)
}

/* Getters */

// X value of v
func (v Vector) X() float64 {
	return v.v[0]
}

// Y value of v
func (v Vector) Y() float64 {
	return v.v[1]
}

// Z value of v
func (v Vector) Z() float64 {
	return v.v[2]
}

// W value of v. It is 0 unless a division by zero or an infinite scale
// turned it into NaN.
func (v Vector) W() float64 {
	return v.v[3]
}

// Get returns x, y and z.
func (v Vector) Get() (x, y, z float64) {
	return v.v[0], v.v[1], v.v[2]
}

func (v Vector) String() string {
	return fmt.Sprint(v.v)
}
