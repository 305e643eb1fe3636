// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

// Registry holds every live coroutine stack and advances each one once per
// [Registry.Tick].
//
// Stacks submitted while a pass is in progress are parked and merged after
// the pass without being advanced: a stack added during tick T first runs
// on tick T+1 and is never dropped.
//
// A Registry is owned by the tick thread and is not safe for concurrent use.
// Producers on other goroutines hand launches over through a [Mailbox].
type Registry struct {
	stacks  []*stack
	spare   []*stack
	pending []*stack
	passing bool
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{}
}

// Submit registers items with inv and installs them as a new stack.
// Returns the new stack's serial.
func (r *Registry) Submit(inv Invoker, items ...Steps) Serial {
	return NewLaunch(items...).Apply(r, inv)
}

func (r *Registry) insert(s *stack) {
	if r.passing {
		r.pending = append(r.pending, s)
		return
	}
	r.stacks = append(r.stacks, s)
}

// Tick advances every live stack exactly once and drops stacks left empty.
//
// An error from inv means a handle the registry owns went missing. The pass
// stops there: the failing stack and every stack not yet visited stay
// registered, and the error is returned annotated with the stack serial.
// Calling Tick from inside a step panics.
func (r *Registry) Tick(inv Invoker) (err error) {
	if r.passing {
		panic("coro: Tick called during a pass")
	}
	r.passing = true
	cur := r.stacks
	next := r.spare[:0]
	i := 0
	defer func() {
		next = append(next, cur[i:]...)
		clear(cur)
		r.stacks, r.spare = next, cur[:0]
		r.passing = false
		r.merge()
	}()
	for ; i < len(cur); i++ {
		s := cur[i]
		if err = s.advance(inv); err != nil {
			return stackFailure(err, s.serial)
		}
		if !s.empty() {
			next = append(next, s)
		}
	}
	return nil
}

func (r *Registry) merge() {
	if len(r.pending) == 0 {
		return
	}
	r.stacks = append(r.stacks, r.pending...)
	clear(r.pending)
	r.pending = r.pending[:0]
}

// Len returns the number of stacks the next pass will advance.
func (r *Registry) Len() int {
	return len(r.stacks)
}

// Pending returns the number of stacks submitted during the pass in
// progress. Zero outside a pass.
func (r *Registry) Pending() int {
	return len(r.pending)
}

// Passing reports whether a pass is in progress.
func (r *Registry) Passing() bool {
	return r.passing
}

// Close discards every stack, releasing all handles it still holds.
// Returns the first error reported by inv.
func (r *Registry) Close(inv Invoker) error {
	if r.passing {
		panic("coro: Close called during a pass")
	}
	var first error
	for _, s := range r.stacks {
		if err := s.release(inv); err != nil && first == nil {
			first = stackFailure(err, s.serial)
		}
	}
	for _, s := range r.pending {
		if err := s.release(inv); err != nil && first == nil {
			first = stackFailure(err, s.serial)
		}
	}
	clear(r.stacks)
	clear(r.pending)
	r.stacks, r.pending = r.stacks[:0], r.pending[:0]
	return first
}
