// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"testing"

	"code.hybscloud.com/coro"
)

func TestHandlesMonotonic(t *testing.T) {
	h1 := coro.NextHandle()
	h2 := coro.NextHandle()
	h3 := coro.NextHandle()
	if h1 == 0 {
		t.Fatal("zero handle issued")
	}
	if h1 >= h2 || h2 >= h3 {
		t.Fatalf("handles not increasing: %d, %d, %d", h1, h2, h3)
	}
}

func TestSystemsIssuesDistinctHandles(t *testing.T) {
	inv := coro.NewSystems()
	seen := make(map[coro.Handle]bool)
	for range 100 {
		h := inv.Register(coro.StepFunc(coro.Stop))
		if seen[h] {
			t.Fatalf("handle %d issued twice", h)
		}
		seen[h] = true
	}
	if inv.Len() != 100 {
		t.Fatalf("registered got %d, want 100", inv.Len())
	}
}

func TestSerialsMonotonic(t *testing.T) {
	reg, inv := coro.NewRegistry(), coro.NewSystems()
	s1 := reg.Submit(inv)
	s2 := reg.Submit(inv)
	if s1 >= s2 {
		t.Fatalf("serials not increasing: %d >= %d", s1, s2)
	}
}
