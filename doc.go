// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package coro provides cooperative, tick-driven coroutines built from
// non-blocking step functions.
//
// A coroutine is a stack of registered steps. Once per tick the host calls
// [Registry.Tick], which resumes the top step of every live stack exactly
// once and interprets its [Result]: continue, stop, or run these children
// first. Children run first-listed first and must fully unwind before the
// step that returned them is resumed again.
//
// # Architecture
//
//   - Steps: [Step] values resumed at most once per tick; [StepFunc] adapts closures.
//   - Composition: [Seq] and [Collect] flatten nested sequences depth-first, left to right.
//   - Scheduling: [Registry] owns the stacks; [Invoker] is the host's registration boundary, [Systems] its in-memory form.
//   - Launching: [Launch] starts an independent stack. Launches issued during a pass first run on the next pass.
//   - Hosting: [App] bundles an invoker, a registry, a deferred [Commands] queue, a lock-free [Mailbox] (lfq) and clocks; [Runner] ticks it.
//   - Scripts: [Script] drives a [code.hybscloud.com/kont] computation one [Yield] or [Await] effect per tick.
//
// # Concurrency
//
// Everything runs on the tick thread. Stacks interleave across ticks and are
// mutually unordered within a tick. Other goroutines launch coroutines only
// through [Mailbox.Post], which returns [code.hybscloud.com/iox.ErrWouldBlock]
// on backpressure.
//
// # Errors
//
// A missing handle is an internal-consistency failure: [Registry.Tick]
// returns an error wrapping [ErrUnknownHandle] and [App.Update] panics.
// Step failures are not scheduler errors; steps record them in shared
// state and stop.
//
// # Example
//
//	app := coro.New()
//	app.Submit(coro.Seq{
//		coro.Do(func() { fmt.Println("ready") }),
//		coro.Wait(app.Time(), time.Second),
//		coro.Do(func() { fmt.Println("go") }),
//	})
//	for !app.Idle() {
//		app.Update(16 * time.Millisecond)
//	}
package coro
