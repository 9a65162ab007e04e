package projectile

import (
	"context"
	"fmt"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/contexD/ray-tracer-challenge/tuple"
)

// SweepOptions configures Sweep.
type SweepOptions struct {
	// Workers limits concurrent simulations. Zero means GOMAXPROCS.
	Workers int

	// MaxTicks is passed to Simulate for every launch.
	MaxTicks int
}

// Sweep simulates one launch per speed from position along direction and
// returns the flights in the order of speeds. Simulations run concurrently
// and share no state. The first failure cancels the remaining launches.
func Sweep(ctx context.Context, env Environment, position tuple.Point, direction tuple.Vector,
	speeds []float64, opts SweepOptions) ([]Flight, error) {

	workers := opts.Workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	flights := make([]Flight, len(speeds))

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, speed := range speeds {
		i, speed := i, speed
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			f, err := Simulate(Launch(position, direction, speed), env, opts.MaxTicks, nil)
			if err != nil {
				return fmt.Errorf("speed %v: %w", speed, err)
			}
			flights[i] = f
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return flights, nil
}
