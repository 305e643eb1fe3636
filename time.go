// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import "time"

// Clock reports the time that passed during the current tick.
type Clock interface {
	Delta() time.Duration
}

// Time is a tick clock advanced once per [App.Update].
type Time struct {
	delta   time.Duration
	elapsed time.Duration
	ticks   uint64
}

// Delta returns the duration of the current tick.
func (t *Time) Delta() time.Duration { return t.delta }

// Elapsed returns the sum of all deltas so far.
func (t *Time) Elapsed() time.Duration { return t.elapsed }

// Ticks returns the number of ticks so far.
func (t *Time) Ticks() uint64 { return t.ticks }

func (t *Time) advance(d time.Duration) {
	if d < 0 {
		d = 0
	}
	t.delta = d
	t.elapsed += d
	t.ticks++
}
