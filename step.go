// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

// Step is a stateful, non-blocking unit of work resumed at most once per tick
// while it is the top of its coroutine stack.
// Resume must not block: returning [Continue] is how a step defers the rest
// of its work to a later tick.
type Step interface {
	Resume() Result
}

// Steps is anything that flattens into an ordered list of steps.
// A single step appends itself; a [Seq] appends its items depth-first.
type Steps interface {
	AppendSteps(dst []Step) []Step
}

// StepFunc adapts a closure to [Step]. State the step needs across ticks
// lives in the closure.
type StepFunc func() Result

// Resume implements [Step].
func (f StepFunc) Resume() Result { return f() }

// AppendSteps implements [Steps].
func (f StepFunc) AppendSteps(dst []Step) []Step { return append(dst, f) }

// single lifts a Step without its own AppendSteps into Steps.
type single struct{ s Step }

func (o single) AppendSteps(dst []Step) []Step { return append(dst, o.s) }

// Of lifts s into [Steps] so it can be listed in a [Seq] or launched.
// Values that already implement [Steps] are returned unchanged.
func Of(s Step) Steps {
	if s == nil {
		panic("coro: nil step")
	}
	if ss, ok := s.(Steps); ok {
		return ss
	}
	return single{s: s}
}

// Seq is an ordered, possibly nested sequence of steps meant to run strictly
// one after another. Nested sequences flatten in the order encountered:
// Seq{a, Seq{b, c}, d} runs a, b, c, d.
type Seq []Steps

// AppendSteps implements [Steps].
func (q Seq) AppendSteps(dst []Step) []Step {
	for _, item := range q {
		if item == nil {
			panic("coro: nil step in sequence")
		}
		dst = item.AppendSteps(dst)
	}
	return dst
}

// Collect flattens items into a single ordered step list.
func Collect(items ...Steps) []Step {
	if len(items) == 0 {
		return nil
	}
	return Seq(items).AppendSteps(make([]Step, 0, len(items)))
}
