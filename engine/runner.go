package engine

import (
	"context"
	"time"
)

// Runner drives the frame callback at a fixed cadence. Each tick advances
// the simulation exactly one nominal step and then invokes FrameHook (the
// render pass). Ticks the runner falls behind on are dropped, not replayed:
// the simulation deliberately tracks nominal time, not wall time
type Runner struct {
	Sim       *Simulation
	FrameHook func()
}

// Run loops until ctx is cancelled. fps values below 1 fall back to 60
func (r *Runner) Run(ctx context.Context, fps int) error {
	if fps < 1 {
		fps = 60
	}

	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
			r.Sim.Step()
			if r.FrameHook != nil {
				r.FrameHook()
			}
		}
	}
}
