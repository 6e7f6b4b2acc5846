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
	"errors"
	"fmt"
)

// Structural errors originate from the runtime and channel layer. They mean
// the actor system did not answer as expected, as opposed to an operation
// being understood and rejected by the entity's business rules (see
// HookError).
var (
	// ErrNotFound is returned when the requested identifier has no entity
	// in the runtime's store. It is reported to the caller and processing
	// continues with the next message.
	ErrNotFound = errors.New("entity not found")

	// ErrUnavailable is returned when the runtime can no longer answer:
	// every client handle was released, or the runtime terminated before
	// answering an in-flight request.
	ErrUnavailable = errors.New("entity runtime is not available")

	// ErrAlreadyStarted is returned when Start is called on a runtime that
	// has already started.
	ErrAlreadyStarted = errors.New("entity runtime has already started")
)

// HookError wraps an error returned by an entity hook or factory. The
// wrapped error is the entity's own error type and is reachable through
// errors.As and errors.Is, so callers can match on exactly which domain
// error occurred.
type HookError struct {
	cause error
}

// NewHookError wraps the given entity error.
func NewHookError(cause error) *HookError {
	return &HookError{cause: cause}
}

func (e *HookError) Error() string {
	return fmt.Sprintf("entity hook failed: %v", e.cause)
}

func (e *HookError) Unwrap() error {
	return e.cause
}
