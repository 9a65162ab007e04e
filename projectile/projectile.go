// Package projectile drives the tuple algebra through a simple ballistic
// simulation: a projectile moving under constant gravity and wind.
package projectile

import (
	"errors"
	"fmt"

	"github.com/contexD/ray-tracer-challenge/tuple"
)

// DefaultMaxTicks bounds Simulate when no limit is given.
const DefaultMaxTicks = 10000

var (
	// ErrTickLimit is returned when a projectile is still airborne after
	// the tick limit.
	ErrTickLimit = errors.New("tick limit reached")
)

// Projectile is a position and the velocity applied to it each tick.
type Projectile struct {
	Position tuple.Point  `json:"position"`
	Velocity tuple.Vector `json:"velocity"`
}

// Environment holds the constant accelerations applied each tick.
type Environment struct {
	Gravity tuple.Vector `json:"gravity"`
	Wind    tuple.Vector `json:"wind"`
}

// Launch creates a projectile at position moving along direction with the
// given speed.
func Launch(position tuple.Point, direction tuple.Vector, speed float64) Projectile {
	return Projectile{
		Position: position,
		Velocity: direction.Normalize().Mul(speed),
	}
}

// Airborne reports whether p is still above the ground plane.
func (p Projectile) Airborne() bool {
	return p.Position.Y() > 0
}

// Tick advances p by one step in env.
func (p Projectile) Tick(env Environment) Projectile {
	return Projectile{
		Position: p.Position.Add(p.Velocity),
		Velocity: p.Velocity.Add(env.Gravity).Add(env.Wind),
	}
}

func (p Projectile) String() string {
	return fmt.Sprintf("Projectile(%v, %v)", p.Position, p.Velocity)
}

// Flight summarizes a finished simulation.
type Flight struct {
	Ticks   int
	Launch  Projectile
	Landing Projectile
	Apex    tuple.Point
}

// Displacement returns the vector from the launch to the landing position.
func (f Flight) Displacement() tuple.Vector {
	return f.Landing.Position.Sub(f.Launch.Position)
}

// Distance is the length of the displacement projected onto the ground
// plane.
func (f Flight) Distance() float64 {
	d := f.Displacement()
	return tuple.NewVector(d.X(), 0, d.Z()).Magnitude()
}

// Simulate ticks p in env until it is no longer airborne. visit, if not
// nil, is called after every tick with the tick number (starting at 1) and
// the new state. maxTicks <= 0 selects DefaultMaxTicks.
func Simulate(p Projectile, env Environment, maxTicks int, visit func(tick int, p Projectile)) (Flight, error) {
	if maxTicks <= 0 {
		maxTicks = DefaultMaxTicks
	}

	f := Flight{Launch: p, Landing: p, Apex: p.Position}
	for f.Landing.Airborne() {
		if f.Ticks == maxTicks {
			return f, fmt.Errorf("still airborne at %v after %d ticks: %w",
				f.Landing.Position, f.Ticks, ErrTickLimit)
		}

		f.Landing = f.Landing.Tick(env)
		f.Ticks++
		if f.Landing.Position.Y() > f.Apex.Y() {
			f.Apex = f.Landing.Position
		}
		if visit != nil {
			visit(f.Ticks, f.Landing)
		}
	}
	return f, nil
}
