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
	"fmt"
	"reflect"

	"go.uber.org/atomic"

	"github.com/tochemey/entities/internal/validation"
	"github.com/tochemey/entities/log"
)

// runtime states
const (
	idle int32 = iota
	running
	terminated
)

// Runtime is the server half of an entity actor. It owns the in-memory
// store for one entity type and processes requests strictly sequentially,
// so entity state needs no locking. A Runtime is created together with its
// Client by New and begins processing once Start supplies the dependency
// bundle.
type Runtime[E Entity[E, U, A, R, D], I comparable, C, U, A, R, D any] struct {
	mailbox *mailbox[E, I, C, U, A, R]
	store   map[I]E
	nextID  func() I
	factory Factory[E, I, C]
	status  *atomic.Int32
	logger  log.Logger
	name    string
}

// New allocates a runtime and the client handle addressing it. The capacity
// bounds the request queue: once it is full, callers suspend on send until
// the runtime catches up. nextID assigns identifiers so the ID scheme stays
// decoupled from the runtime; factory performs pure construction.
//
// The runtime does not process anything until Start is called; requests
// sent before then simply queue.
func New[E Entity[E, U, A, R, D], I comparable, C, U, A, R, D any](
	capacity int,
	nextID func() I,
	factory Factory[E, I, C],
	opts ...Option,
) (*Runtime[E, I, C, U, A, R, D], *Client[E, I, C, U, A, R], error) {
	if err := validation.New(validation.FailFast()).
		AddAssertion(capacity > 0, "queue capacity must be greater than zero").
		AddAssertion(nextID != nil, "identifier generator is required").
		AddAssertion(factory != nil, "entity factory is required").
		Validate(); err != nil {
		return nil, nil, err
	}

	cfg := &config{logger: log.DefaultLogger}
	for _, opt := range opts {
		opt.Apply(cfg)
	}
	if cfg.name == "" {
		cfg.name = entityName[E]()
	}

	mb := &mailbox[E, I, C, U, A, R]{
		requests:   make(chan request[E, I, C, U, A, R], capacity),
		done:       make(chan struct{}),
		terminated: make(chan struct{}),
		handles:    atomic.NewInt64(1),
	}

	rt := &Runtime[E, I, C, U, A, R, D]{
		mailbox: mb,
		store:   make(map[I]E),
		nextID:  nextID,
		factory: factory,
		status:  atomic.NewInt32(idle),
		logger:  cfg.logger,
		name:    cfg.name,
	}
	return rt, &Client[E, I, C, U, A, R]{mailbox: mb}, nil
}

// Start injects the dependency bundle and begins message processing. It
// returns ErrAlreadyStarted on a second call. The context is threaded
// through to every hook invocation; it does not terminate the runtime,
// which stops only once every client handle has been released.
func (r *Runtime[E, I, C, U, A, R, D]) Start(ctx context.Context, deps D) error {
	if !r.status.CompareAndSwap(idle, running) {
		return ErrAlreadyStarted
	}
	r.logger.Infof("(%s) runtime started", r.name)
	go r.run(ctx, deps)
	return nil
}

// Done returns a channel closed once the runtime has terminated: every
// client handle released and the queue drained. Orchestrators hold on to it
// to join the runtime during shutdown.
func (r *Runtime[E, I, C, U, A, R, D]) Done() <-chan struct{} {
	return r.mailbox.terminated
}

// Running reports whether the runtime is processing messages.
func (r *Runtime[E, I, C, U, A, R, D]) Running() bool {
	return r.status.Load() == running
}

func (r *Runtime[E, I, C, U, A, R, D]) run(ctx context.Context, deps D) {
	for {
		select {
		case req := <-r.mailbox.requests:
			r.handle(ctx, deps, req)
		case <-r.mailbox.done:
			r.drain(ctx, deps)
			r.status.Store(terminated)
			r.logger.Infof("(%s) runtime terminated, store size=%d", r.name, len(r.store))
			close(r.mailbox.terminated)
			return
		}
	}
}

// drain answers whatever was enqueued before the last handle was released.
func (r *Runtime[E, I, C, U, A, R, D]) drain(ctx context.Context, deps D) {
	for {
		select {
		case req := <-r.mailbox.requests:
			r.handle(ctx, deps, req)
		default:
			return
		}
	}
}

func (r *Runtime[E, I, C, U, A, R, D]) handle(ctx context.Context, deps D, req request[E, I, C, U, A, R]) {
	switch msg := req.(type) {
	case *createRequest[E, I, C, U, A, R]:
		r.handleCreate(ctx, deps, msg)
	case *getRequest[E, I, C, U, A, R]:
		r.handleGet(msg)
	case *updateRequest[E, I, C, U, A, R]:
		r.handleUpdate(ctx, deps, msg)
	case *deleteRequest[E, I, C, U, A, R]:
		r.handleDelete(ctx, deps, msg)
	case *actionRequest[E, I, C, U, A, R]:
		r.handleAction(ctx, deps, msg)
	}
}

func (r *Runtime[E, I, C, U, A, R, D]) handleCreate(ctx context.Context, deps D, msg *createRequest[E, I, C, U, A, R]) {
	id := r.nextID()
	item, err := r.factory(id, msg.params)
	if err != nil {
		r.logger.Warnf("(%s) create rejected: %v", r.name, err)
		msg.reply.completeError(NewHookError(err))
		return
	}
	if err := item.OnCreate(ctx, deps); err != nil {
		r.logger.Warnf("(%s) OnCreate failed for id=%v: %v", r.name, id, err)
		msg.reply.completeError(NewHookError(err))
		return
	}
	r.store[id] = item
	r.logger.Debugf("(%s) created id=%v, store size=%d", r.name, id, len(r.store))
	msg.reply.completeValue(id)
}

func (r *Runtime[E, I, C, U, A, R, D]) handleGet(msg *getRequest[E, I, C, U, A, R]) {
	item, ok := r.store[msg.id]
	if !ok {
		msg.reply.completeValue(snapshot[E]{})
		return
	}
	msg.reply.completeValue(snapshot[E]{entity: item.Clone(), found: true})
}

func (r *Runtime[E, I, C, U, A, R, D]) handleUpdate(ctx context.Context, deps D, msg *updateRequest[E, I, C, U, A, R]) {
	item, ok := r.store[msg.id]
	if !ok {
		msg.reply.completeError(notFound(msg.id))
		return
	}
	// the hook runs on a clone and only a successful clone is swapped in,
	// so a hook that mutates before failing cannot corrupt committed state
	work := item.Clone()
	if err := work.OnUpdate(ctx, msg.update, deps); err != nil {
		r.logger.Warnf("(%s) OnUpdate failed for id=%v: %v", r.name, msg.id, err)
		msg.reply.completeError(NewHookError(err))
		return
	}
	r.store[msg.id] = work
	r.logger.Debugf("(%s) updated id=%v", r.name, msg.id)
	msg.reply.completeValue(work.Clone())
}

func (r *Runtime[E, I, C, U, A, R, D]) handleDelete(ctx context.Context, deps D, msg *deleteRequest[E, I, C, U, A, R]) {
	item, ok := r.store[msg.id]
	if !ok {
		msg.reply.completeError(notFound(msg.id))
		return
	}
	if err := item.OnDelete(ctx, deps); err != nil {
		r.logger.Warnf("(%s) OnDelete failed for id=%v: %v", r.name, msg.id, err)
		msg.reply.completeError(NewHookError(err))
		return
	}
	delete(r.store, msg.id)
	r.logger.Debugf("(%s) deleted id=%v, store size=%d", r.name, msg.id, len(r.store))
	msg.reply.completeValue(None{})
}

func (r *Runtime[E, I, C, U, A, R, D]) handleAction(ctx context.Context, deps D, msg *actionRequest[E, I, C, U, A, R]) {
	item, ok := r.store[msg.id]
	if !ok {
		msg.reply.completeError(notFound(msg.id))
		return
	}
	work := item.Clone()
	result, err := work.HandleAction(ctx, msg.action, deps)
	if err != nil {
		r.logger.Warnf("(%s) action failed for id=%v: %v", r.name, msg.id, err)
		msg.reply.completeError(NewHookError(err))
		return
	}
	r.store[msg.id] = work
	r.logger.Debugf("(%s) action handled for id=%v", r.name, msg.id)
	msg.reply.completeValue(result)
}

func notFound[I comparable](id I) error {
	return fmt.Errorf("%w: %v", ErrNotFound, id)
}

// entityName derives a short name for log entries from the entity type.
func entityName[E any]() string {
	t := reflect.TypeOf((*E)(nil)).Elem()
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	if t.Name() == "" {
		return t.String()
	}
	return t.Name()
}
