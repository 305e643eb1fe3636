// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package coro

import (
	"context"

	"code.hybscloud.com/atomix"
	"code.hybscloud.com/iox"
	"code.hybscloud.com/lfq"
)

// MailboxCapacity is the number of launches a [Mailbox] holds before
// Post reports iox.ErrWouldBlock.
const MailboxCapacity = 64

// Commands is the deferred launch queue of an [App].
// Launches queued here are applied in FIFO order at one fixed point per
// Update: after the registry pass of the Update they were issued in, or
// before the pass if they were issued between Updates.
type Commands struct {
	queue []*Launch
}

// Launch queues a new coroutine built from items.
func (c *Commands) Launch(items ...Steps) {
	c.Queue(NewLaunch(items...))
}

// Queue defers l until the next apply point.
func (c *Commands) Queue(l *Launch) {
	if l == nil {
		panic("coro: queue nil launch")
	}
	c.queue = append(c.queue, l)
}

// Len returns the number of queued launches.
func (c *Commands) Len() int {
	return len(c.queue)
}

// apply drains the queue into reg, calling fn with each new serial.
// Launches queued by fn itself are applied in the same drain.
func (c *Commands) apply(reg *Registry, inv Invoker, fn func(Serial)) {
	for i := 0; i < len(c.queue); i++ {
		l := c.queue[i]
		c.queue[i] = nil
		s := l.Apply(reg, inv)
		if fn != nil {
			fn(s)
		}
	}
	c.queue = c.queue[:0]
}

// Mailbox hands launches from one producer goroutine to the tick thread.
// Transport is a bounded lock-free SPSC queue from lfq: at most one
// goroutine may post at a time, and only the owning App drains it.
type Mailbox struct {
	q lfq.SPSC[*Launch]
	// queued counts launches posted and not yet drained. It is raised
	// before Enqueue so a reader never sees it lag the queue.
	queued atomix.Uint32
}

// NewMailbox creates an empty mailbox.
func NewMailbox() *Mailbox {
	m := &Mailbox{}
	m.q.Init(MailboxCapacity)
	return m
}

// Post queues a launch without blocking.
// Returns iox.ErrWouldBlock when the mailbox is full; the launch is not
// queued and may be retried after the tick thread drains.
func (m *Mailbox) Post(items ...Steps) error {
	l := NewLaunch(items...)
	return m.enqueue(&l)
}

func (m *Mailbox) enqueue(l **Launch) error {
	m.queued.Add(1)
	err := m.q.Enqueue(l)
	if err != nil {
		m.queued.Add(^uint32(0))
	}
	return err
}

// Len returns the number of launches posted and not yet drained.
// Safe to call from any goroutine.
func (m *Mailbox) Len() int {
	return int(m.queued.Load())
}

// PostWait queues a launch, backing off with iox.Backoff while the
// mailbox is full. Returns ctx.Err() if ctx ends first.
func (m *Mailbox) PostWait(ctx context.Context, items ...Steps) error {
	l := NewLaunch(items...)
	var bo iox.Backoff
	for {
		err := m.enqueue(&l)
		if err == nil {
			return nil
		}
		if !iox.IsWouldBlock(err) {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		bo.Wait()
	}
}

// drain applies every posted launch to reg.
func (m *Mailbox) drain(reg *Registry, inv Invoker, fn func(Serial)) int {
	n := 0
	for {
		l, err := m.q.Dequeue()
		if err != nil {
			return n
		}
		m.queued.Add(^uint32(0))
		s := l.Apply(reg, inv)
		n++
		if fn != nil {
			fn(s)
		}
	}
}
