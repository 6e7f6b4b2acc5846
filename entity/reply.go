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
)

// result couples a reply value with the error that may replace it.
type result[T any] struct {
	value T
	err   error
}

// reply is the single-use response channel attached to every request. The
// producing side completes it at most once; completing it twice is a
// programming error inside the runtime and panics. The consuming side awaits
// it at most once.
type reply[T any] struct {
	once sync.Once
	ch   chan result[T]
}

func newReply[T any]() *reply[T] {
	// capacity 1 so the runtime never blocks on an abandoned caller
	return &reply[T]{ch: make(chan result[T], 1)}
}

// complete resolves the reply with either a value or an error.
func (r *reply[T]) complete(value T, err error) {
	completed := false
	r.once.Do(func() {
		r.ch <- result[T]{value: value, err: err}
		completed = true
	})
	if !completed {
		panic("entity: reply completed more than once")
	}
}

func (r *reply[T]) completeValue(value T) {
	r.complete(value, nil)
}

func (r *reply[T]) completeError(err error) {
	var zero T
	r.complete(zero, err)
}

// await blocks until the reply is completed, the caller's context is done,
// or the runtime terminates without answering. The last case surfaces as
// ErrUnavailable rather than as a hang.
func (r *reply[T]) await(ctx context.Context, terminated <-chan struct{}) (T, error) {
	var zero T
	select {
	case res := <-r.ch:
		return res.value, res.err
	case <-ctx.Done():
		return zero, ctx.Err()
	case <-terminated:
		// the runtime may have answered right before terminating
		select {
		case res := <-r.ch:
			return res.value, res.err
		default:
			return zero, ErrUnavailable
		}
	}
}
