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

// Package entity implements a generic, typed actor runtime for data entities.
//
// Each Runtime owns a private keyed store of one entity type and processes
// requests strictly one at a time from a bounded queue, so entity state never
// needs locking. The only way to reach a runtime is a Client handle, which
// turns each call into a typed request message carrying a single-use reply.
// Requests are answered exactly once and in the order they were sent.
//
// A runtime is built in two phases. New allocates the runtime together with
// its client handle; Start supplies the dependency bundle and begins message
// processing. Because dependencies arrive at start time rather than at
// construction time, two actors whose dependency bundles contain each other's
// clients can both be allocated before either is started.
//
// Hooks may call other actors' clients. While such a call is in flight the
// calling runtime cannot dequeue its next message, which keeps its state
// sequentially consistent across the cross-actor call. The dependency graph
// between actors must therefore be acyclic: if actor A's hook calls actor B
// and one of B's hooks calls back into A, both block forever. Enforcing
// acyclicity is the responsibility of whoever wires the actors together.
//
// Releasing every client handle (Close on each clone) is the sole
// termination signal. The runtime then drains its queue, answers every
// remaining request, and stops.
package entity
