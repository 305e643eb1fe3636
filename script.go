// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"code.hybscloud.com/kont"
)

// Yield is the effect operation for suspending a script until next tick.
// Perform(Yield{}) resumes with struct{} on the following tick.
type Yield struct {
	kont.Phantom[struct{}]
}

// Await is the effect operation for running steps as children.
// Perform(Await{Steps: s}) resumes once every step in s has fully unwound.
type Await struct {
	kont.Phantom[struct{}]
	Steps []Step
}

// Task is a step that lists itself as a one-element sequence.
type Task interface {
	Step
	Steps
}

// scriptStep drives a kont computation one effect per Resume.
// The computation is built on first Resume so that nothing it does runs
// before the step is scheduled.
type scriptStep[A any] struct {
	start func() kont.Expr[A]
	susp  *kont.Suspension[A]
}

// Script turns a Cont-world computation into a step.
// Each Resume evaluates up to the next [Yield] or [Await]; the step stops
// when the computation completes. Its result value is discarded.
func Script[A any](m kont.Eff[A]) Task {
	return &scriptStep[A]{start: func() kont.Expr[A] { return kont.Reify(m) }}
}

// ExprScript turns an Expr-world computation into a step.
func ExprScript[A any](m kont.Expr[A]) Task {
	return &scriptStep[A]{start: func() kont.Expr[A] { return m }}
}

// Resume implements [Step].
// Panics on an effect other than Yield or Await.
func (s *scriptStep[A]) Resume() Result {
	var susp *kont.Suspension[A]
	switch {
	case s.start != nil:
		start := s.start
		s.start = nil
		_, susp = kont.StepExpr(start())
	case s.susp != nil:
		_, susp = s.susp.Resume(struct{}{})
	default:
		return Stop()
	}
	s.susp = susp
	if susp == nil {
		return Stop()
	}
	switch op := susp.Op().(type) {
	case Yield:
		return Continue()
	case Await:
		return Result{Directive: DirectiveContinue, Children: op.Steps}
	default:
		panic("coro: unhandled effect in script")
	}
}

// AppendSteps implements [Steps].
func (s *scriptStep[A]) AppendSteps(dst []Step) []Step { return append(dst, s) }

// Release implements [Releaser]: a script discarded mid-flight drops its
// pending suspension without resuming it.
func (s *scriptStep[A]) Release() {
	if s.susp != nil {
		s.susp.Discard()
		s.susp = nil
	}
}

// YieldThen suspends until next tick and then continues with next.
// Fuses Perform(Yield{}) + Then.
func YieldThen[B any](next kont.Eff[B]) kont.Eff[B] {
	return kont.Then(kont.Perform(Yield{}), next)
}

// AwaitThen runs items as children and then continues with next.
// Fuses Perform(Await{...}) + Then.
func AwaitThen[B any](next kont.Eff[B], items ...Steps) kont.Eff[B] {
	return kont.Then(kont.Perform(Await{Steps: Collect(items...)}), next)
}

// Loop runs a script body once per tick.
// body returns Left(nextState) to run again on the next tick or Right(result)
// to finish.
func Loop[S, A any](initial S, body func(S) kont.Eff[kont.Either[S, A]]) kont.Eff[A] {
	return kont.Bind(body(initial), func(e kont.Either[S, A]) kont.Eff[A] {
		if left, ok := e.GetLeft(); ok {
			return kont.Bind(kont.Perform(Yield{}), func(struct{}) kont.Eff[A] {
				return Loop(left, body)
			})
		}
		right, _ := e.GetRight()
		return kont.Pure(right)
	})
}

// Pre-erased operation and frame for Expr-world yields.
var (
	exprReturnFrame kont.Frame  = kont.ReturnFrame{}
	exprYield       kont.Erased = Yield{}
)

func identityResume(v kont.Erased) kont.Erased { return v }

// exprEffectThen suspends on op and then continues with next.
func exprEffectThen[B any](op kont.Erased, next kont.Expr[B]) kont.Expr[B] {
	tf := kont.AcquireThenFrame()
	tf.Second = kont.Expr[kont.Erased]{Value: kont.Erased(next.Value), Frame: next.Frame}
	tf.Next = exprReturnFrame
	ef := kont.AcquireEffectFrame()
	ef.Operation = op
	ef.Resume = identityResume
	ef.Next = tf
	return kont.ExprSuspend[B](ef)
}

// ExprYieldThen suspends until next tick and then continues with next.
// Fuses ExprPerform(Yield{}) + ExprThen.
func ExprYieldThen[B any](next kont.Expr[B]) kont.Expr[B] {
	return exprEffectThen(exprYield, next)
}

// ExprAwaitThen runs items as children and then continues with next.
// Fuses ExprPerform(Await{...}) + ExprThen.
func ExprAwaitThen[B any](next kont.Expr[B], items ...Steps) kont.Expr[B] {
	return exprEffectThen(kont.Erased(Await{Steps: Collect(items...)}), next)
}
