// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

// Invoker is the host's single-shot invocation facility.
// Register installs a step and returns a fresh handle, Run resumes the step
// bound to a handle exactly once, and Remove releases the handle and any
// state the step held. Run and Remove must fail with an error wrapping
// [ErrUnknownHandle] for handles they do not hold.
type Invoker interface {
	Register(s Step) Handle
	Run(h Handle) (Result, error)
	Remove(h Handle) error
}

// Releaser is implemented by steps that hold state needing cleanup when
// their handle is removed, whether they stopped or their stack was
// discarded.
type Releaser interface {
	Release()
}

// Systems is the in-memory [Invoker] used by [App].
// Not safe for concurrent use; it belongs to the tick thread.
type Systems struct {
	steps map[Handle]Step
}

// NewSystems creates an empty invocation table.
func NewSystems() *Systems {
	return &Systems{steps: make(map[Handle]Step)}
}

// Register implements [Invoker].
func (s *Systems) Register(step Step) Handle {
	if step == nil {
		panic("coro: register nil step")
	}
	if s.steps == nil {
		s.steps = make(map[Handle]Step)
	}
	h := NextHandle()
	s.steps[h] = step
	return h
}

// Run implements [Invoker].
func (s *Systems) Run(h Handle) (Result, error) {
	step, ok := s.steps[h]
	if !ok {
		return Result{}, unknownHandle("run", h)
	}
	return step.Resume(), nil
}

// Remove implements [Invoker].
func (s *Systems) Remove(h Handle) error {
	step, ok := s.steps[h]
	if !ok {
		return unknownHandle("remove", h)
	}
	delete(s.steps, h)
	if r, ok := step.(Releaser); ok {
		r.Release()
	}
	return nil
}

// Len returns the number of registered steps.
func (s *Systems) Len() int {
	return len(s.steps)
}
