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

package orders

import (
	"github.com/tochemey/entities/entity"
	"github.com/tochemey/entities/id"
)

// Runtime is the order actor runtime. Its dependency bundle is supplied at
// Start, after the user and product runtimes exist.
type Runtime = entity.Runtime[*Order, string, CreateOrder, UpdateOrder, entity.None, entity.None, Deps]

// Client is the handle addressing the order runtime.
type Client = entity.Client[*Order, string, CreateOrder, UpdateOrder, entity.None, entity.None]

// Handle is the call surface of the order runtime, satisfied by both
// Client and a testkit mock.
type Handle = entity.Handle[*Order, string, CreateOrder, UpdateOrder, entity.None, entity.None]

// NewRuntime allocates the order runtime and its client handle.
// Identifiers are random and prefixed with "order".
func NewRuntime(capacity int, opts ...entity.Option) (*Runtime, *Client, error) {
	return entity.New[*Order, string, CreateOrder, UpdateOrder, entity.None, entity.None, Deps](
		capacity,
		id.UUID("order"),
		New,
		opts...,
	)
}
