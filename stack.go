// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

// stack is one coroutine's current call depth.
// The last handle is the active step; no other handle is ever run.
type stack struct {
	serial  Serial
	handles []Handle
}

// newStack registers steps in reverse so the first-listed step is on top.
func newStack(inv Invoker, steps []Step) *stack {
	s := &stack{
		serial:  nextSerial(),
		handles: make([]Handle, 0, len(steps)),
	}
	for i := len(steps) - 1; i >= 0; i-- {
		s.handles = append(s.handles, inv.Register(steps[i]))
	}
	return s
}

func (s *stack) empty() bool { return len(s.handles) == 0 }

// advance resumes the top step once and applies its result: a stopping step
// is removed and popped, then children are pushed in reverse so the
// first-listed child runs next tick. Depth changes by
// (-1 if stopped) + len(children).
func (s *stack) advance(inv Invoker) error {
	n := len(s.handles)
	if n == 0 {
		return nil
	}
	top := s.handles[n-1]
	r, err := inv.Run(top)
	if err != nil {
		return err
	}
	if r.IsStop() {
		if err := inv.Remove(top); err != nil {
			return err
		}
		s.handles = s.handles[:n-1]
	}
	for i := len(r.Children) - 1; i >= 0; i-- {
		s.handles = append(s.handles, inv.Register(r.Children[i]))
	}
	return nil
}

// release removes every remaining handle, top first.
// Used when a stack is discarded without finishing.
func (s *stack) release(inv Invoker) error {
	var first error
	for i := len(s.handles) - 1; i >= 0; i-- {
		if err := inv.Remove(s.handles[i]); err != nil && first == nil {
			first = err
		}
	}
	s.handles = s.handles[:0]
	return first
}
