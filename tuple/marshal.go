package tuple

import (
	"encoding/json"
	"fmt"
)

// unmarshalN decodes a JSON number array of exactly len(dst) elements.
func unmarshalN(b []byte, dst []float64) error {
	var vs []float64
	if err := json.Unmarshal(b, &vs); err != nil {
		return err
	}
	if len(vs) != len(dst) {
		return fmt.Errorf("%w: expected %d, got %d", ErrComponentCount, len(dst), len(vs))
	}
	copy(dst, vs)
	return nil
}

func (t *Tuple) UnmarshalJSON(b []byte) error {
	return unmarshalN(b, t.v[:])
}

func (t Tuple) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.v)
}

// UnmarshalJSON decodes [x, y, z]. The discriminant is never read.
func (p *Point) UnmarshalJSON(b []byte) error {
	var xyz [3]float64
	if err := unmarshalN(b, xyz[:]); err != nil {
		return err
	}
	*p = NewPoint(xyz[0], xyz[1], xyz[2])
	return nil
}

func (p Point) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.v[:3])
}

// UnmarshalJSON decodes [x, y, z]. The discriminant is never read.
func (v *Vector) UnmarshalJSON(b []byte) error {
	var xyz [3]float64
	if err := unmarshalN(b, xyz[:]); err != nil {
		return err
	}
	*v = NewVector(xyz[0], xyz[1], xyz[2])
	return nil
}

func (v Vector) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.v[:3])
}

func (c *Color) UnmarshalJSON(b []byte) error {
	return unmarshalN(b, c.v[:])
}

func (c Color) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.v)
}
