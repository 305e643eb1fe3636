// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

// Directive tells the scheduler what to do with the step that just ran.
type Directive uint8

const (
	// DirectiveContinue keeps the step on its stack; it is resumed again
	// after any children have fully unwound.
	DirectiveContinue Directive = iota
	// DirectiveStop removes the step permanently and releases its handle.
	DirectiveStop
)

func (d Directive) String() string {
	switch d {
	case DirectiveContinue:
		return "continue"
	case DirectiveStop:
		return "stop"
	default:
		return "directive(?)"
	}
}

// Result is the value a [Step] returns from Resume.
// Children run to completion, first-listed first, before the step that
// returned them is resumed again. A stopping step with children replaces
// itself with them.
type Result struct {
	Directive Directive
	Children  []Step
}

// Continue resumes the same step next tick.
func Continue() Result {
	return Result{Directive: DirectiveContinue}
}

// Stop finishes the step.
func Stop() Result {
	return Result{Directive: DirectiveStop}
}

// NewResult builds a result with directive d and the given children.
func NewResult(d Directive, children ...Steps) Result {
	return Result{Directive: d, Children: Collect(children...)}
}

// With returns a result with the same directive as r and children replaced
// by the given steps.
func (r Result) With(children ...Steps) Result {
	return NewResult(r.Directive, children...)
}

// Append returns a result with the same directive as r and the given steps
// appended after r's children. r itself is not modified.
func (r Result) Append(children ...Steps) Result {
	if len(children) == 0 {
		return r
	}
	all := make([]Step, len(r.Children), len(r.Children)+len(children))
	copy(all, r.Children)
	return Result{Directive: r.Directive, Children: Seq(children).AppendSteps(all)}
}

// IsStop reports whether r finishes its step.
func (r Result) IsStop() bool { return r.Directive == DirectiveStop }

// IsContinue reports whether r keeps its step on the stack.
func (r Result) IsContinue() bool { return r.Directive == DirectiveContinue }
