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

// request is the closed set of messages a client sends to a runtime. Each
// variant carries the operation input and a single-use reply whose success
// type is fixed by the variant, so the caller never has to inspect a reply
// of an unexpected shape. The interface is sealed by the unexported
// operation method.
type request[E any, I comparable, C, U, A, R any] interface {
	// operation names the request variant for logging and diagnostics.
	operation() string
}

// snapshot is the reply payload of a get request: a clone of the stored
// entity when found, the zero value otherwise.
type snapshot[E any] struct {
	entity E
	found  bool
}

type createRequest[E any, I comparable, C, U, A, R any] struct {
	params C
	reply  *reply[I]
}

type getRequest[E any, I comparable, C, U, A, R any] struct {
	id    I
	reply *reply[snapshot[E]]
}

type updateRequest[E any, I comparable, C, U, A, R any] struct {
	id     I
	update U
	reply  *reply[E]
}

type deleteRequest[E any, I comparable, C, U, A, R any] struct {
	id    I
	reply *reply[None]
}

type actionRequest[E any, I comparable, C, U, A, R any] struct {
	id     I
	action A
	reply  *reply[R]
}

func (*createRequest[E, I, C, U, A, R]) operation() string { return "create" }
func (*getRequest[E, I, C, U, A, R]) operation() string    { return "get" }
func (*updateRequest[E, I, C, U, A, R]) operation() string { return "update" }
func (*deleteRequest[E, I, C, U, A, R]) operation() string { return "delete" }
func (*actionRequest[E, I, C, U, A, R]) operation() string { return "action" }
