// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"io"
	"time"

	"github.com/sirupsen/logrus"
)

// App is a minimal tick host: it owns the invocation table, the coroutine
// registry, the deferred launch queue, the mailbox and the clocks, and
// advances all of them once per [App.Update].
type App struct {
	systems  *Systems
	registry *Registry
	commands Commands
	mailbox  *Mailbox

	time     Time
	realTime Time
	now      func() time.Time
	lastReal time.Time

	startup []func(*App)
	started bool
	exiting bool

	log logrus.FieldLogger
}

// Option configures an [App].
type Option func(*App)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l logrus.FieldLogger) Option {
	return func(a *App) { a.log = l }
}

// WithStartup adds hooks run once, at the start of the first Update.
func WithStartup(hooks ...func(*App)) Option {
	return func(a *App) { a.startup = append(a.startup, hooks...) }
}

// WithRealClock replaces the wall clock used for [App.RealTime].
func WithRealClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// New creates an App.
func New(opts ...Option) *App {
	a := &App{
		systems:  NewSystems(),
		registry: NewRegistry(),
		mailbox:  NewMailbox(),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(a)
	}
	if a.log == nil {
		l := logrus.New()
		l.SetOutput(io.Discard)
		a.log = l
	}
	return a
}

// Submit queues a new coroutine built from items. It may be called before
// the first Update or from inside a running step; either way the new
// coroutine's first step runs on the next pass that starts after the call.
func (a *App) Submit(items ...Steps) {
	a.commands.Launch(items...)
}

// Update runs one tick: startup hooks (first Update only), mailbox
// launches, launches queued since the last Update, the clocks, the registry
// pass, then launches queued during the pass.
//
// A registry failure means a handle went missing; Update logs it and
// panics rather than dropping the stack.
func (a *App) Update(delta time.Duration) {
	if !a.started {
		a.started = true
		for _, hook := range a.startup {
			hook(a)
		}
	}
	a.mailbox.drain(a.registry, a.systems, a.launched)
	a.commands.apply(a.registry, a.systems, a.launched)

	a.time.advance(delta)
	now := a.now()
	if a.lastReal.IsZero() {
		a.realTime.advance(0)
	} else {
		a.realTime.advance(now.Sub(a.lastReal))
	}
	a.lastReal = now

	if err := a.registry.Tick(a.systems); err != nil {
		a.log.WithError(err).WithField("tick", a.time.Ticks()).Error("coroutine pass failed")
		panic(err)
	}
	a.commands.apply(a.registry, a.systems, a.launched)
}

func (a *App) launched(s Serial) {
	a.log.WithFields(logrus.Fields{
		"stack": s,
		"tick":  a.time.Ticks(),
	}).Debug("coroutine launched")
}

// Coroutines returns the number of live coroutine stacks.
func (a *App) Coroutines() int {
	return a.registry.Len() + a.registry.Pending()
}

// Idle reports whether nothing is running or queued, counting launches
// still waiting in the Mailbox.
func (a *App) Idle() bool {
	return a.Coroutines() == 0 && a.commands.Len() == 0 && a.mailbox.Len() == 0
}

// Exit asks the driving [Runner] to stop after the current tick.
func (a *App) Exit() { a.exiting = true }

// Exiting reports whether Exit was called.
func (a *App) Exiting() bool { return a.exiting }

// Time returns the virtual clock, advanced by the delta passed to Update.
func (a *App) Time() *Time { return &a.time }

// RealTime returns the wall clock, advanced by the real time between Updates.
func (a *App) RealTime() *Time { return &a.realTime }

// Commands returns the deferred launch queue.
func (a *App) Commands() *Commands { return &a.commands }

// Mailbox returns the cross-goroutine launch queue.
func (a *App) Mailbox() *Mailbox { return a.mailbox }

// Registry returns the coroutine registry.
func (a *App) Registry() *Registry { return a.registry }

// Systems returns the invocation table.
func (a *App) Systems() *Systems { return a.systems }

// Logger returns the App's logger.
func (a *App) Logger() logrus.FieldLogger { return a.log }

// Close discards every unfinished coroutine and releases its steps.
// Launches still queued are dropped without being registered.
func (a *App) Close() error {
	clear(a.commands.queue)
	a.commands.queue = a.commands.queue[:0]
	a.mailbox.drain(a.registry, a.systems, nil)
	err := a.registry.Close(a.systems)
	if err != nil {
		a.log.WithError(err).Error("coroutine teardown failed")
	}
	return err
}
