package tuple

import "fmt"

// Point is a position in 3-space. Its discriminant is always 1.
type Point struct {
	v [4]float64
}

// NewPoint creates a Point at (x, y, z).
func NewPoint(x, y, z float64) Point {
	return Point{v: [4]float64{x, y, z, pointW}}
}

// Tuple widens p to a generic Tuple.
func (p Point) Tuple() Tuple {
	return Tuple{v: p.v}
}

// Add displaces p by v
func (p Point) Add(v Vector) (res Point) {
	zip(res.v[:], p.v[:], v.v[:], add)
	return
}

// Sub returns the displacement from o to p
func (p Point) Sub(o Point) (res Vector) {
	zip(res.v[:], p.v[:], o.v[:], sub)
	return
}

// SubVector displaces p by -v
func (p Point) SubVector(v Vector) (res Point) {
	zip(res.v[:], p.v[:], v.v[:], sub)
	return
}

// Eq returns true if p and o are within Epsilon of each other
func (p Point) Eq(o Point) bool {
	return approxEq(p.v[:], o.v[:])
}

// X value of p
func (p Point) X() float64 {
	return p.v[0]
}

// Y value of p
func (p Point) Y() float64 {
	return p.v[1]
}

// Z value of p
func (p Point) Z() float64 {
	return p.v[2]
}

// W is always 1.
func (p Point) W() float64 {
	return p.v[3]
}

// Get returns x, y and z.
func (p Point) Get() (x, y, z float64) {
	return p.v[0], p.v[1], p.v[2]
}

func (p Point) String() string {
	return fmt.Sprint(p.v)
}
