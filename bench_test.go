// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro_test

import (
	"testing"

	"code.hybscloud.com/coro"
	"code.hybscloud.com/kont"
)

// BenchmarkTickContinue measures one pass over 64 stacks that never stop.
func BenchmarkTickContinue(b *testing.B) {
	b.ReportAllocs()
	reg, inv := coro.NewRegistry(), coro.NewSystems()
	for range 64 {
		reg.Submit(inv, coro.StepFunc(coro.Continue))
	}
	for b.Loop() {
		if err := reg.Tick(inv); err != nil {
			b.Fatal(err)
		}
	}
}

// BenchmarkLaunchAndFinish measures launching a three-step coroutine and
// running it to completion.
func BenchmarkLaunchAndFinish(b *testing.B) {
	b.ReportAllocs()
	reg, inv := coro.NewRegistry(), coro.NewSystems()
	stop := coro.StepFunc(coro.Stop)
	for b.Loop() {
		reg.Submit(inv, stop, coro.Seq{stop, stop})
		for reg.Len() > 0 {
			if err := reg.Tick(inv); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkChildren measures a step that hands off to two children.
func BenchmarkChildren(b *testing.B) {
	b.ReportAllocs()
	reg, inv := coro.NewRegistry(), coro.NewSystems()
	stop := coro.StepFunc(coro.Stop)
	parent := coro.StepFunc(func() coro.Result {
		return coro.Stop().With(stop, stop)
	})
	for b.Loop() {
		reg.Submit(inv, parent)
		for reg.Len() > 0 {
			if err := reg.Tick(inv); err != nil {
				b.Fatal(err)
			}
		}
	}
}

// BenchmarkScriptYield measures a script yielding three times.
func BenchmarkScriptYield(b *testing.B) {
	b.ReportAllocs()
	reg, inv := coro.NewRegistry(), coro.NewSystems()
	for b.Loop() {
		s := coro.Script(coro.YieldThen(coro.YieldThen(coro.YieldThen(kont.Pure(struct{}{})))))
		reg.Submit(inv, s)
		for reg.Len() > 0 {
			if err := reg.Tick(inv); err != nil {
				b.Fatal(err)
			}
		}
	}
}
