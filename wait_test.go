// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"testing"
	"time"

	"code.hybscloud.com/coro"
)

// fixedClock reports the same delta every tick.
type fixedClock time.Duration

func (c fixedClock) Delta() time.Duration { return time.Duration(c) }

// runsUntilStop resumes s until it stops and returns the number of runs.
func runsUntilStop(tb testing.TB, s coro.Step, limit int) int {
	tb.Helper()
	for i := 1; i <= limit; i++ {
		if s.Resume().IsStop() {
			return i
		}
	}
	tb.Fatalf("step still running after %d runs", limit)
	return 0
}

func TestWait(t *testing.T) {
	cases := []struct {
		name  string
		delta time.Duration
		wait  time.Duration
		runs  int
	}{
		{"exact", 100 * time.Millisecond, 300 * time.Millisecond, 3},
		{"overshoot", 100 * time.Millisecond, 250 * time.Millisecond, 3},
		{"one tick", time.Second, time.Second, 1},
		{"zero", time.Second, 0, 1},
		{"negative", time.Second, -time.Second, 1},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := runsUntilStop(t, coro.Wait(fixedClock(tc.delta), tc.wait), 100)
			if got != tc.runs {
				t.Fatalf("runs got %d, want %d", got, tc.runs)
			}
		})
	}
}

func TestWaitOnAppClock(t *testing.T) {
	app := coro.New()
	var log []string
	app.Submit(coro.Wait(app.Time(), 50*time.Millisecond), record(&log, "done"))
	for range 5 {
		app.Update(10 * time.Millisecond)
	}
	wantLog(t, log)
	app.Update(10 * time.Millisecond)
	wantLog(t, log, "done")
}

func TestWaitUntil(t *testing.T) {
	ready := false
	polls := 0
	s := coro.WaitUntil(func() bool {
		polls++
		return ready
	})
	for range 3 {
		if s.Resume().IsStop() {
			t.Fatal("stopped before condition held")
		}
	}
	ready = true
	if !s.Resume().IsStop() {
		t.Fatal("did not stop once condition held")
	}
	if polls != 4 {
		t.Fatalf("polled %d times, want 4", polls)
	}
}

func TestWaitWhile(t *testing.T) {
	busy := 2
	s := coro.WaitWhile(func() bool {
		busy--
		return busy >= 0
	})
	if got := runsUntilStop(t, s, 10); got != 3 {
		t.Fatalf("runs got %d, want 3", got)
	}
}

func TestWithInput(t *testing.T) {
	var got []int
	show := func(i int) coro.Result {
		got = append(got, i)
		return coro.Stop()
	}
	reg, inv := coro.NewRegistry(), coro.NewSystems()
	reg.Submit(inv, coro.StepFunc(func() coro.Result {
		r := coro.Stop()
		for i := range 4 {
			r = r.Append(coro.WithInput(i, show))
		}
		return r
	}))
	tick(t, reg, inv, 5)
	if len(got) != 4 || got[0] != 0 || got[3] != 3 {
		t.Fatalf("inputs got %v, want [0 1 2 3]", got)
	}
	if reg.Len() != 0 {
		t.Fatalf("stacks got %d, want 0", reg.Len())
	}
}
