// Package tuple implements the homogeneous-coordinate algebra used by the
// ray tracer: points, vectors and colors stored as small float64 arrays.
//
// Point and Vector are distinct types so that geometrically meaningless
// combinations (point + point, vector - point, the magnitude of a point)
// cannot be written. Tuple is the unconstrained 4-tuple for intermediate
// values that are neither.
package tuple

import (
	"errors"
	"fmt"
	"math"
)

// Epsilon is the tolerance used for approximate equality of components.
const Epsilon = 1.1920929e-07

const (
	pointW  = 1.0
	vectorW = 0.0
)

var (
	// ErrInvalidOperand is returned when a generic Tuple is narrowed to a
	// Point or Vector but carries the wrong discriminant.
	ErrInvalidOperand = errors.New("invalid operand")

	// ErrComponentCount is returned when decoding a value with the wrong
	// number of components.
	ErrComponentCount = errors.New("wrong component count")
)

// Equal reports whether a and b differ by less than Epsilon.
func Equal(a, b float64) bool {
	return math.Abs(a-b) < Epsilon
}

func add(x, y float64) float64 { return x + y }
func sub(x, y float64) float64 { return x - y }
func mul(x, y float64) float64 { return x * y }

// zip writes f(a[i], b[i]) into dst. All three share one length.
func zip(dst, a, b []float64, f func(x, y float64) float64) {
	for i := range dst {
		dst[i] = f(a[i], b[i])
	}
}

func scale(dst, a []float64, s float64) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

func divide(dst, a []float64, s float64) {
	for i := range dst {
		dst[i] = a[i] / s
	}
}

func approxEq(a, b []float64) bool {
	for i := range a {
		if !Equal(a[i], b[i]) {
			return false
		}
	}
	return true
}

// Tupler is implemented by every 4-component kind. Generic Tuple
// arithmetic accepts any of them.
type Tupler interface {
	Tuple() Tuple
}

// Tuple is an unconstrained (x, y, z, w) value.
type Tuple struct {
	v [4]float64
}

/* Constructors */

// New creates a Tuple from its four components.
func New(x, y, z, w float64) Tuple {
	return Tuple{v: [4]float64{x, y, z, w}}
}

/* Methods */

// Tuple returns t unchanged.
func (t Tuple) Tuple() Tuple {
	return t
}

// Add o to t
func (t Tuple) Add(o Tupler) (res Tuple) {
	ot := o.Tuple()
	zip(res.v[:], t.v[:], ot.v[:], add)
	return
}

// Sub o from t
func (t Tuple) Sub(o Tupler) (res Tuple) {
	ot := o.Tuple()
	zip(res.v[:], t.v[:], ot.v[:], sub)
	return
}

// Mul scales t by s
func (t Tuple) Mul(s float64) (res Tuple) {
	scale(res.v[:], t.v[:], s)
	return
}

// Div divides every component of t by s
func (t Tuple) Div(s float64) (res Tuple) {
	divide(res.v[:], t.v[:], s)
	return
}

// Neg returns -t
func (t Tuple) Neg() Tuple {
	return t.Mul(-1.0)
}

// Eq returns true if every component of t is within Epsilon of o
func (t Tuple) Eq(o Tuple) bool {
	return approxEq(t.v[:], o.v[:])
}

// IsPoint reports whether the discriminant marks t as a point.
func (t Tuple) IsPoint() bool {
	return Equal(t.v[3], pointW)
}

// IsVector reports whether the discriminant marks t as a vector.
func (t Tuple) IsVector() bool {
	return Equal(t.v[3], vectorW)
}

// Point narrows t to a Point. It fails with ErrInvalidOperand unless
// IsPoint holds.
func (t Tuple) Point() (Point, error) {
	if !t.IsPoint() {
		return Point{}, fmt.Errorf("%v is not a point: %w", t, ErrInvalidOperand)
	}
	return NewPoint(t.v[0], t.v[1], t.v[2]), nil
}

// Vector narrows t to a Vector. It fails with ErrInvalidOperand unless
// IsVector holds.
func (t Tuple) Vector() (Vector, error) {
	if !t.IsVector() {
		return Vector{}, fmt.Errorf("%v is not a vector: %w", t, ErrInvalidOperand)
	}
	return NewVector(t.v[0], t.v[1], t.v[2]), nil
}

/* Getters */

// X value of t
func (t Tuple) X() float64 {
	return t.v[0]
}

// Y value of t
func (t Tuple) Y() float64 {
	return t.v[1]
}

// Z value of t
func (t Tuple) Z() float64 {
	return t.v[2]
}

// W value of t
func (t Tuple) W() float64 {
	return t.v[3]
}

// Get all values from t
func (t Tuple) Get() [4]float64 {
	return t.v
}

func (t Tuple) String() string {
	return fmt.Sprint(t.v)
}
