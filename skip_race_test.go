// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

//go:build race

package coro_test

import "testing"

// skipRace skips the cross-goroutine Mailbox tests under -race.
// lfq's SPSC publishes a slot with a release store on the tail index and
// the detector, which only orders accesses to the same variable, reports
// the slot read on the tick thread as a race.
func skipRace(tb testing.TB) {
	tb.Helper()
	tb.Skip("mailbox SPSC ordering is invisible to the race detector")
}
