/*
 * MIT License
 *
 * Copyright (c) 2022-2025  Arsene Tochemey Gandote
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 */

package entity

import (
	"context"
	"sync"

	"go.uber.org/atomic"
)

// Handle is the typed calling surface of an entity actor. The production
// Client implements it, and so does the testkit mock, so orchestration code
// written against Handle cannot tell a double from the real thing.
//
// Every call constructs the request, attaches a fresh single-use reply,
// sends it (suspending while the queue is full) and awaits the answer.
// Structural failures (runtime gone, identifier unknown) and entity-level
// rejections surface as distinct error values; see the package errors and
// HookError.
type Handle[E any, I comparable, C, U, A, R any] interface {
	// Create asks the runtime to construct and store a new entity and
	// returns the assigned identifier.
	Create(ctx context.Context, params C) (I, error)

	// Get returns a clone of the stored entity. Absence is not an error:
	// found is false and the entity is the zero value.
	Get(ctx context.Context, id I) (entity E, found bool, err error)

	// Update applies a partial update and returns the updated entity.
	Update(ctx context.Context, id I, update U) (E, error)

	// Delete removes the entity after its OnDelete hook succeeds.
	Delete(ctx context.Context, id I) error

	// Perform executes one domain-specific action and returns its result.
	Perform(ctx context.Context, id I, action A) (R, error)
}

// mailbox is the channel pair shared by a runtime and every clone of its
// client handle. done closes once the last handle is released; terminated
// closes once the runtime has drained and stopped.
type mailbox[E any, I comparable, C, U, A, R any] struct {
	requests   chan request[E, I, C, U, A, R]
	done       chan struct{}
	terminated chan struct{}
	handles    *atomic.Int64
	stopping   sync.Once
}

func (m *mailbox[E, I, C, U, A, R]) release() {
	if m.handles.Dec() <= 0 {
		m.stopping.Do(func() { close(m.done) })
	}
}

// Client is the sending half of an entity actor's bounded queue. It is safe
// for concurrent use; Clone hands out additional handles backed by the same
// runtime. The runtime terminates once every handle has been closed.
type Client[E any, I comparable, C, U, A, R any] struct {
	mailbox *mailbox[E, I, C, U, A, R]
	closed  atomic.Bool
}

// enforce compilation error
var _ Handle[None, string, None, None, None, None] = (*Client[None, string, None, None, None, None])(nil)

// Clone returns a new handle addressing the same runtime. Each clone must
// be closed independently.
func (c *Client[E, I, C, U, A, R]) Clone() *Client[E, I, C, U, A, R] {
	c.mailbox.handles.Inc()
	return &Client[E, I, C, U, A, R]{mailbox: c.mailbox}
}

// Close releases this handle. Closing the last handle signals the runtime
// to drain its queue and terminate. Close is idempotent per handle.
func (c *Client[E, I, C, U, A, R]) Close() {
	if c.closed.CompareAndSwap(false, true) {
		c.mailbox.release()
	}
}

// Create implements Handle.
func (c *Client[E, I, C, U, A, R]) Create(ctx context.Context, params C) (I, error) {
	rp := newReply[I]()
	if err := c.send(ctx, &createRequest[E, I, C, U, A, R]{params: params, reply: rp}); err != nil {
		var zero I
		return zero, err
	}
	return rp.await(ctx, c.mailbox.terminated)
}

// Get implements Handle.
func (c *Client[E, I, C, U, A, R]) Get(ctx context.Context, id I) (E, bool, error) {
	rp := newReply[snapshot[E]]()
	if err := c.send(ctx, &getRequest[E, I, C, U, A, R]{id: id, reply: rp}); err != nil {
		var zero E
		return zero, false, err
	}
	snap, err := rp.await(ctx, c.mailbox.terminated)
	return snap.entity, snap.found, err
}

// Update implements Handle.
func (c *Client[E, I, C, U, A, R]) Update(ctx context.Context, id I, update U) (E, error) {
	rp := newReply[E]()
	if err := c.send(ctx, &updateRequest[E, I, C, U, A, R]{id: id, update: update, reply: rp}); err != nil {
		var zero E
		return zero, err
	}
	return rp.await(ctx, c.mailbox.terminated)
}

// Delete implements Handle.
func (c *Client[E, I, C, U, A, R]) Delete(ctx context.Context, id I) error {
	rp := newReply[None]()
	if err := c.send(ctx, &deleteRequest[E, I, C, U, A, R]{id: id, reply: rp}); err != nil {
		return err
	}
	_, err := rp.await(ctx, c.mailbox.terminated)
	return err
}

// Perform implements Handle.
func (c *Client[E, I, C, U, A, R]) Perform(ctx context.Context, id I, action A) (R, error) {
	rp := newReply[R]()
	if err := c.send(ctx, &actionRequest[E, I, C, U, A, R]{id: id, action: action, reply: rp}); err != nil {
		var zero R
		return zero, err
	}
	return rp.await(ctx, c.mailbox.terminated)
}

// send enqueues the request, suspending the caller while the queue is full.
// It fails with ErrUnavailable once the last handle has been released and
// with the context error when the caller gives up first.
func (c *Client[E, I, C, U, A, R]) send(ctx context.Context, req request[E, I, C, U, A, R]) error {
	if c.closed.Load() {
		return ErrUnavailable
	}
	// prefer the shutdown signal over a racing enqueue
	select {
	case <-c.mailbox.done:
		return ErrUnavailable
	default:
	}
	select {
	case c.mailbox.requests <- req:
		return nil
	case <-c.mailbox.done:
		return ErrUnavailable
	case <-ctx.Done():
		return ctx.Err()
	}
}
