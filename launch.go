// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

// Launch is a request to start a new, independent coroutine from an
// ordered step sequence. The steps are not registered until [Launch.Apply].
// Each Launch may be applied at most once.
type Launch struct {
	steps   []Step
	applied bool
}

// NewLaunch flattens items into a launch. The first-listed step runs first.
func NewLaunch(items ...Steps) *Launch {
	return &Launch{steps: Collect(items...)}
}

// Len returns the number of flattened steps.
func (l *Launch) Len() int {
	return len(l.steps)
}

// Apply registers the launch's steps with inv and installs them as a new
// stack in reg. Panics if the launch was already applied.
func (l *Launch) Apply(reg *Registry, inv Invoker) Serial {
	if l.applied {
		panic("coro: launch applied twice")
	}
	l.applied = true
	s := newStack(inv, l.steps)
	l.steps = nil
	reg.insert(s)
	return s.serial
}

// LaunchFunc returns a setup hook that submits a coroutine built by factory
// each time it runs. Steps carry state, so every launch needs fresh values.
func LaunchFunc(factory func() Steps) func(*App) {
	return func(app *App) {
		app.Submit(factory())
	}
}
