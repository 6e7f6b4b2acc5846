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

// Package id provides ready-made identifier generators for entity runtimes.
// A runtime only needs a func() I, so any custom scheme can be supplied
// instead.
package id

import (
	"fmt"

	"github.com/google/uuid"
	"go.uber.org/atomic"
)

// Sequential returns a generator producing "prefix_1", "prefix_2", ...
// identifiers. The generator is safe for concurrent use, though a runtime
// only ever calls it from its own loop.
func Sequential(prefix string) func() string {
	counter := atomic.NewUint64(0)
	return func() string {
		return fmt.Sprintf("%s_%d", prefix, counter.Inc())
	}
}

// UUID returns a generator producing random RFC 4122 identifiers,
// optionally prefixed ("prefix_1f6b..."). Use it when identifiers must not
// be guessable or when stores are merged offline.
func UUID(prefix string) func() string {
	return func() string {
		if prefix == "" {
			return uuid.NewString()
		}
		return fmt.Sprintf("%s_%s", prefix, uuid.NewString())
	}
}
