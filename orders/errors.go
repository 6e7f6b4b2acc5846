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
	"errors"
	"fmt"
)

var (
	// ErrInvalidQuantity is returned when an order is placed for zero or
	// fewer units.
	ErrInvalidQuantity = errors.New("order quantity must be positive")

	// ErrUnknownUser is returned when the referenced user does not exist.
	ErrUnknownUser = errors.New("order references an unknown user")

	// ErrUnknownProduct is returned when the referenced product does not
	// exist.
	ErrUnknownProduct = errors.New("order references an unknown product")

	// ErrNoActions is returned for any action sent to an order, since
	// orders define none.
	ErrNoActions = errors.New("orders do not define actions")
)

// InvalidTransitionError is returned for a status move outside the order
// lifecycle.
type InvalidTransitionError struct {
	From Status
	To   Status
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid status transition from %q to %q", e.From, e.To)
}

// UserServiceError wraps a failure of the user runtime during an order
// operation. The cause is reachable through errors.As and errors.Is.
type UserServiceError struct {
	cause error
}

func (e *UserServiceError) Error() string {
	return fmt.Sprintf("user service: %v", e.cause)
}

func (e *UserServiceError) Unwrap() error {
	return e.cause
}

// ProductServiceError wraps a failure of the product runtime during an
// order operation, typically an insufficient stock rejection.
type ProductServiceError struct {
	cause error
}

func (e *ProductServiceError) Error() string {
	return fmt.Sprintf("product service: %v", e.cause)
}

func (e *ProductServiceError) Unwrap() error {
	return e.cause
}
