// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"testing"

	"code.hybscloud.com/coro"
)

func TestResultBuilders(t *testing.T) {
	if r := coro.Continue(); !r.IsContinue() || r.IsStop() || len(r.Children) != 0 {
		t.Fatalf("Continue() got %+v", r)
	}
	if r := coro.Stop(); !r.IsStop() || r.IsContinue() || len(r.Children) != 0 {
		t.Fatalf("Stop() got %+v", r)
	}
}

func TestResultWithPreservesDirective(t *testing.T) {
	var log []string
	a, b := record(&log, "a"), record(&log, "b")

	r := coro.Continue().With(a, b)
	if !r.IsContinue() {
		t.Fatalf("With changed directive to %v", r.Directive)
	}
	if len(r.Children) != 2 {
		t.Fatalf("children got %d, want 2", len(r.Children))
	}

	s := coro.Stop().With(coro.Seq{a, coro.Seq{b}})
	if !s.IsStop() {
		t.Fatalf("With changed directive to %v", s.Directive)
	}
	if len(s.Children) != 2 {
		t.Fatalf("children got %d, want 2", len(s.Children))
	}

	// With replaces children.
	if got := len(s.With(a).Children); got != 1 {
		t.Fatalf("With on result with children got %d children, want 1", got)
	}
}

func TestNewResult(t *testing.T) {
	var log []string
	r := coro.NewResult(coro.DirectiveStop, record(&log, "x"))
	if !r.IsStop() || len(r.Children) != 1 {
		t.Fatalf("NewResult got %+v", r)
	}
	if r := coro.NewResult(coro.DirectiveContinue); r.IsStop() || len(r.Children) != 0 {
		t.Fatalf("NewResult without children got %+v", r)
	}
}

func TestResultAppendDoesNotAlias(t *testing.T) {
	var log []string
	base := coro.Stop().With(record(&log, "a"))
	one := base.Append(record(&log, "b"))
	two := base.Append(record(&log, "c"), record(&log, "d"))

	if len(base.Children) != 1 {
		t.Fatalf("Append modified receiver: %d children", len(base.Children))
	}
	if len(one.Children) != 2 || len(two.Children) != 3 {
		t.Fatalf("Append got %d and %d children, want 2 and 3", len(one.Children), len(two.Children))
	}
	if !one.IsStop() || !two.IsStop() {
		t.Fatal("Append changed directive")
	}

	one.Children[0].Resume()
	two.Children[2].Resume()
	wantLog(t, log, "a", "d")

	if same := base.Append(); len(same.Children) != 1 {
		t.Fatalf("empty Append got %d children", len(same.Children))
	}
}

func TestDirectiveString(t *testing.T) {
	if s := coro.DirectiveContinue.String(); s != "continue" {
		t.Fatalf("got %q", s)
	}
	if s := coro.DirectiveStop.String(); s != "stop" {
		t.Fatalf("got %q", s)
	}
	if s := coro.Directive(9).String(); s != "directive(?)" {
		t.Fatalf("got %q", s)
	}
}
