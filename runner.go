// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"context"
	"time"

	"code.hybscloud.com/iox"
)

// Runner drives an [App] by calling Update in a loop on the calling
// goroutine. It stops when its context ends, when the App calls Exit, or
// on the conditions set by its options.
type Runner struct {
	app       *App
	interval  time.Duration
	delta     time.Duration
	fixed     bool
	untilIdle bool
	maxTicks  uint64
	now       func() time.Time
}

// RunnerOption configures a [Runner].
type RunnerOption func(*Runner)

// WithInterval sets the wall time between ticks. Zero runs ticks back to
// back, backing off with iox.Backoff while the App is idle.
func WithInterval(d time.Duration) RunnerOption {
	return func(r *Runner) { r.interval = d }
}

// WithFixedDelta passes d to every Update instead of the measured wall
// time since the previous tick.
func WithFixedDelta(d time.Duration) RunnerOption {
	return func(r *Runner) { r.delta, r.fixed = d, true }
}

// UntilIdle stops the Runner after the first tick that leaves no
// coroutine running or queued.
func UntilIdle() RunnerOption {
	return func(r *Runner) { r.untilIdle = true }
}

// WithMaxTicks stops the Runner after n ticks. Zero means no limit.
func WithMaxTicks(n uint64) RunnerOption {
	return func(r *Runner) { r.maxTicks = n }
}

// NewRunner creates a Runner for app.
func NewRunner(app *App, opts ...RunnerOption) *Runner {
	r := &Runner{app: app, now: time.Now}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Run ticks the App until a stop condition holds.
// Returns ctx.Err() if the context ended, nil otherwise.
func (r *Runner) Run(ctx context.Context) error {
	log := r.app.Logger().WithField("interval", r.interval)
	log.Debug("runner started")
	defer log.Debug("runner stopped")

	var ticker *time.Ticker
	if r.interval > 0 {
		ticker = time.NewTicker(r.interval)
		defer ticker.Stop()
	}
	var bo iox.Backoff
	last := r.now()
	var ticks uint64
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		now := r.now()
		delta := now.Sub(last)
		if r.fixed {
			delta = r.delta
		}
		last = now

		r.app.Update(delta)
		ticks++

		if r.app.Exiting() {
			return nil
		}
		if r.untilIdle && r.app.Idle() {
			return nil
		}
		if r.maxTicks > 0 && ticks >= r.maxTicks {
			return nil
		}

		if ticker != nil {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case <-ticker.C:
			}
			continue
		}
		if r.app.Idle() {
			bo.Wait()
		} else {
			bo.Reset()
		}
	}
}
