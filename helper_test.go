// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"slices"
	"testing"

	"code.hybscloud.com/coro"
)

// record returns a step that appends name to log and stops.
func record(log *[]string, name string) coro.StepFunc {
	return coro.Do(func() { *log = append(*log, name) })
}

// runFor returns a step that stops on its n-th run and continues before
// that. Every run is counted in runs.
func runFor(n int, runs *int) coro.StepFunc {
	seen := 0
	return func() coro.Result {
		seen++
		*runs++
		if seen >= n {
			return coro.Stop()
		}
		return coro.Continue()
	}
}

// tick runs n registry passes, failing the test on any error.
func tick(tb testing.TB, reg *coro.Registry, inv coro.Invoker, n int) {
	tb.Helper()
	for range n {
		if err := reg.Tick(inv); err != nil {
			tb.Fatalf("Tick: %v", err)
		}
	}
}

// trackingInvoker records every handle it issues so tests can break the
// bookkeeping on purpose.
type trackingInvoker struct {
	*coro.Systems
	issued []coro.Handle
}

func newTrackingInvoker() *trackingInvoker {
	return &trackingInvoker{Systems: coro.NewSystems()}
}

func (t *trackingInvoker) Register(s coro.Step) coro.Handle {
	h := t.Systems.Register(s)
	t.issued = append(t.issued, h)
	return h
}

func wantLog(tb testing.TB, got []string, want ...string) {
	tb.Helper()
	if len(want) == 0 && len(got) == 0 {
		return
	}
	if !slices.Equal(got, want) {
		tb.Fatalf("log got %q, want %q", got, want)
	}
}
