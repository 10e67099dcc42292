// Package sched runs a task on a fixed delay. The wait starts after the
// task returns, so the effective period is the delay plus task latency;
// there is no jitter, drift correction, or catch-up.
package sched

import (
	"context"
	"time"
)

type Loop struct {
	Period time.Duration
}

// Run invokes task immediately, then again after each fixed wait, until
// ctx is cancelled or task returns an error. Cancellation is checked
// before every run and during every wait; it returns nil.
func (l Loop) Run(ctx context.Context, task func() error) error {
	for {
		if ctx.Err() != nil {
			return nil
		}
		if err := task(); err != nil {
			return err
		}
		select {
		case <-ctx.Done():
			return nil
		case <-time.After(l.Period):
		}
	}
}
