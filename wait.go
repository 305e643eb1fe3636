// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import "time"

func stopIf(stop bool) Result {
	if stop {
		return Stop()
	}
	return Continue()
}

// Wait returns a step that continues until the deltas reported by clock
// add up to d, then stops. The tick the step first runs counts.
// A non-positive d stops on the first run.
//
// Use app.Time() for virtual time and app.RealTime() for wall time.
func Wait(clock Clock, d time.Duration) StepFunc {
	var elapsed time.Duration
	return func() Result {
		elapsed += clock.Delta()
		return stopIf(elapsed >= d)
	}
}

// WaitUntil returns a step that polls cond once per tick and stops on the
// first tick it reports true.
func WaitUntil(cond func() bool) StepFunc {
	return func() Result {
		return stopIf(cond())
	}
}

// WaitWhile returns a step that polls cond once per tick and stops on the
// first tick it reports false.
func WaitWhile(cond func() bool) StepFunc {
	return func() Result {
		return stopIf(!cond())
	}
}

// WithInput adapts a step that needs a caller-supplied value into a
// zero-argument step closing over v.
func WithInput[T any](v T, step func(T) Result) StepFunc {
	return func() Result {
		return step(v)
	}
}

// Do returns a step that calls f once and stops.
func Do(f func()) StepFunc {
	return func() Result {
		f()
		return Stop()
	}
}
