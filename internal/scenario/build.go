// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package scenario

import (
	"fmt"
	"io"
	"strings"

	"code.hybscloud.com/coro"
	"github.com/sirupsen/logrus"
)

// State is the shared world the scenario's coroutines read and write.
// Coroutines never talk to each other directly, only through State.
type State struct {
	Counters map[string]int
	// Errors records predicate failures. A failing predicate stops its
	// wait as if it had been satisfied.
	Errors []error

	clock *coro.Time
}

// Builder turns scenario actions into coro steps bound to one App.
type Builder struct {
	app   *coro.App
	out   io.Writer
	log   logrus.FieldLogger
	eval  *evaluator
	state *State
}

// NewBuilder creates a Builder writing print output to out.
func NewBuilder(app *coro.App, out io.Writer) *Builder {
	return &Builder{
		app:  app,
		out:  out,
		log:  app.Logger(),
		eval: newEvaluator(),
		state: &State{
			Counters: make(map[string]int),
			clock:    app.Time(),
		},
	}
}

// State returns the shared state.
func (b *Builder) State() *State { return b.state }

// Launch submits every coroutine of sc to the App. Nothing is submitted
// and no counter is seeded unless every coroutine builds.
func (b *Builder) Launch(sc *Scenario) error {
	built := make([]coro.Seq, len(sc.Coroutines))
	for i, co := range sc.Coroutines {
		steps, err := b.Steps(co.Actions)
		if err != nil {
			return fmt.Errorf("coroutine %q: %w", co.Name, err)
		}
		built[i] = steps
	}
	for k, v := range sc.Counters {
		b.state.Counters[k] = v
	}
	for i, co := range sc.Coroutines {
		b.log.WithFields(logrus.Fields{
			"coroutine": co.Name,
			"index":     i,
			"actions":   len(co.Actions),
		}).Debug("scenario coroutine submitted")
		b.app.Submit(built[i])
	}
	return nil
}

// Steps builds a fresh step sequence for actions.
func (b *Builder) Steps(actions []Action) (coro.Seq, error) {
	mk, err := b.compile(actions)
	if err != nil {
		return nil, err
	}
	return mk(), nil
}

// maker builds a fresh copy of already checked steps. Steps carry their
// own progress, so every run of a repeat or spawn needs new ones.
type maker func() coro.Seq

func (b *Builder) compile(actions []Action) (maker, error) {
	mks := make([]func() coro.Steps, 0, len(actions))
	for _, a := range actions {
		mk, err := b.step(a)
		if err != nil {
			return nil, err
		}
		mks = append(mks, mk)
	}
	return func() coro.Seq {
		seq := make(coro.Seq, len(mks))
		for i, mk := range mks {
			seq[i] = mk()
		}
		return seq
	}, nil
}

func (b *Builder) step(a Action) (func() coro.Steps, error) {
	switch {
	case a.Print != "":
		text := a.Print
		return func() coro.Steps {
			return coro.Do(func() { fmt.Fprintln(b.out, b.expand(text)) })
		}, nil
	case a.Wait != 0:
		d := a.Wait
		return func() coro.Steps { return coro.Wait(b.app.Time(), d) }, nil
	case a.Until != "":
		return b.poll(a.Until, true)
	case a.While != "":
		return b.poll(a.While, false)
	case len(a.Add) > 0:
		add := a.Add
		return func() coro.Steps {
			return coro.Do(func() {
				for k, v := range add {
					b.state.Counters[k] += v
				}
			})
		}, nil
	case a.Repeat != nil:
		return b.repeat(*a.Repeat)
	case a.Spawn != nil:
		body, err := b.compile(a.Spawn)
		if err != nil {
			return nil, err
		}
		return func() coro.Steps {
			return coro.Do(func() { b.app.Submit(body()) })
		}, nil
	case a.Exit:
		return func() coro.Steps { return coro.Do(b.app.Exit) }, nil
	default:
		return nil, fmt.Errorf("empty action")
	}
}

// poll waits until the predicate matches want.
func (b *Builder) poll(src string, want bool) (func() coro.Steps, error) {
	p, err := b.eval.compile(src)
	if err != nil {
		return nil, err
	}
	return func() coro.Steps {
		return coro.WaitUntil(func() bool {
			ok, err := b.eval.eval(p, b.state)
			if err != nil {
				b.state.Errors = append(b.state.Errors, err)
				b.log.WithError(err).WithField("predicate", src).Warn("predicate failed")
				return true
			}
			return ok == want
		})
	}, nil
}

// repeat hands off to Times fresh copies of the body, run in order.
func (b *Builder) repeat(r Repeat) (func() coro.Steps, error) {
	body, err := b.compile(r.Actions)
	if err != nil {
		return nil, err
	}
	return func() coro.Steps {
		return coro.StepFunc(func() coro.Result {
			res := coro.Stop()
			for range r.Times {
				res = res.Append(body())
			}
			return res
		})
	}, nil
}

// expand replaces {name} with the counter value and {tick} with the tick.
func (b *Builder) expand(text string) string {
	if !strings.Contains(text, "{") {
		return text
	}
	pairs := []string{"{tick}", fmt.Sprint(b.app.Time().Ticks())}
	for k, v := range b.state.Counters {
		pairs = append(pairs, "{"+k+"}", fmt.Sprint(v))
	}
	return strings.NewReplacer(pairs...).Replace(text)
}
