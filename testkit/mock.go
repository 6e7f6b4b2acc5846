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

// Package testkit provides a drop-in test double for an entity client
// handle. A Mock records expected calls together with their canned
// outcomes and fails the test on any deviation, so orchestration logic can
// be exercised without starting a live runtime.
package testkit

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/tochemey/entities/entity"
)

// Mock implements the same call surface as an entity client, driven by a
// FIFO queue of expectations. Register expectations with the Expect
// methods, hand the mock to the code under test, then call Verify.
//
// Calls that were never registered, calls whose input differs from the
// registered one, and registered expectations that were never invoked all
// fail the test.
type Mock[E any, I comparable, C, U, A, R any] struct {
	t            testing.TB
	mu           sync.Mutex
	expectations []*expectation[E, I, R]
}

// enforce compilation error
var _ entity.Handle[entity.None, string, entity.None, entity.None, entity.None, entity.None] = (*Mock[entity.None, string, entity.None, entity.None, entity.None, entity.None])(nil)

// expectation records one expected call and its canned outcome. The input
// payloads are kept as any so one struct covers every operation.
type expectation[E any, I comparable, R any] struct {
	operation string
	id        I
	matchID   bool
	input     any
	matchIn   bool

	entity E
	found  bool
	newID  I
	result R
	err    error
}

func (x *expectation[E, I, R]) describe() string {
	switch {
	case x.matchID && x.matchIn:
		return fmt.Sprintf("%s(id=%v, %+v)", x.operation, x.id, x.input)
	case x.matchID:
		return fmt.Sprintf("%s(id=%v)", x.operation, x.id)
	case x.matchIn:
		return fmt.Sprintf("%s(%+v)", x.operation, x.input)
	default:
		return x.operation
	}
}

// New creates a mock handle bound to the given test.
func New[E any, I comparable, C, U, A, R any](t testing.TB) *Mock[E, I, C, U, A, R] {
	return &Mock[E, I, C, U, A, R]{t: t}
}

// Verify asserts that every registered expectation was invoked. Call it
// once the code under test has finished.
func (m *Mock[E, I, C, U, A, R]) Verify() {
	m.t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, x := range m.expectations {
		m.t.Errorf("testkit: expected call never made: %s", x.describe())
	}
	m.expectations = nil
}

// ExpectCreate registers an expected Create call with the given payload.
func (m *Mock[E, I, C, U, A, R]) ExpectCreate(params C) *CreateCall[E, I, R] {
	x := &expectation[E, I, R]{operation: "create", input: params, matchIn: true}
	m.push(x)
	return &CreateCall[E, I, R]{expectation: x}
}

// ExpectGet registers an expected Get call for the given identifier.
func (m *Mock[E, I, C, U, A, R]) ExpectGet(id I) *GetCall[E, I, R] {
	x := &expectation[E, I, R]{operation: "get", id: id, matchID: true}
	m.push(x)
	return &GetCall[E, I, R]{expectation: x}
}

// ExpectUpdate registers an expected Update call with the given identifier
// and payload.
func (m *Mock[E, I, C, U, A, R]) ExpectUpdate(id I, update U) *UpdateCall[E, I, R] {
	x := &expectation[E, I, R]{operation: "update", id: id, matchID: true, input: update, matchIn: true}
	m.push(x)
	return &UpdateCall[E, I, R]{expectation: x}
}

// ExpectDelete registers an expected Delete call for the given identifier.
func (m *Mock[E, I, C, U, A, R]) ExpectDelete(id I) *DeleteCall[E, I, R] {
	x := &expectation[E, I, R]{operation: "delete", id: id, matchID: true}
	m.push(x)
	return &DeleteCall[E, I, R]{expectation: x}
}

// ExpectPerform registers an expected Perform call with the given
// identifier and action.
func (m *Mock[E, I, C, U, A, R]) ExpectPerform(id I, action A) *PerformCall[E, I, R] {
	x := &expectation[E, I, R]{operation: "perform", id: id, matchID: true, input: action, matchIn: true}
	m.push(x)
	return &PerformCall[E, I, R]{expectation: x}
}

// Create implements the client handle surface.
func (m *Mock[E, I, C, U, A, R]) Create(_ context.Context, params C) (I, error) {
	m.t.Helper()
	x, err := m.next("create", nil, false, params, true)
	if err != nil {
		var zero I
		return zero, err
	}
	return x.newID, x.err
}

// Get implements the client handle surface.
func (m *Mock[E, I, C, U, A, R]) Get(_ context.Context, id I) (E, bool, error) {
	m.t.Helper()
	x, err := m.next("get", id, true, nil, false)
	if err != nil {
		var zero E
		return zero, false, err
	}
	return x.entity, x.found, x.err
}

// Update implements the client handle surface.
func (m *Mock[E, I, C, U, A, R]) Update(_ context.Context, id I, update U) (E, error) {
	m.t.Helper()
	x, err := m.next("update", id, true, update, true)
	if err != nil {
		var zero E
		return zero, err
	}
	return x.entity, x.err
}

// Delete implements the client handle surface.
func (m *Mock[E, I, C, U, A, R]) Delete(_ context.Context, id I) error {
	m.t.Helper()
	x, err := m.next("delete", id, true, nil, false)
	if err != nil {
		return err
	}
	return x.err
}

// Perform implements the client handle surface.
func (m *Mock[E, I, C, U, A, R]) Perform(_ context.Context, id I, action A) (R, error) {
	m.t.Helper()
	x, err := m.next("perform", id, true, action, true)
	if err != nil {
		var zero R
		return zero, err
	}
	return x.result, x.err
}

func (m *Mock[E, I, C, U, A, R]) push(x *expectation[E, I, R]) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.expectations = append(m.expectations, x)
}

// next pops the front expectation and checks it against the actual call.
// Deviations are reported on the test and returned as errors so the code
// under test still gets a sensible failure to propagate.
func (m *Mock[E, I, C, U, A, R]) next(operation string, id any, matchID bool, input any, matchIn bool) (*expectation[E, I, R], error) {
	m.t.Helper()
	m.mu.Lock()
	defer m.mu.Unlock()

	if len(m.expectations) == 0 {
		m.t.Errorf("testkit: unexpected %s call, no expectations left", operation)
		return nil, fmt.Errorf("testkit: unexpected %s call", operation)
	}

	x := m.expectations[0]
	m.expectations = m.expectations[1:]

	if x.operation != operation {
		m.t.Errorf("testkit: got %s call, expected %s", operation, x.describe())
		return nil, fmt.Errorf("testkit: got %s call, expected %s", operation, x.operation)
	}
	if matchID && !assert.ObjectsAreEqual(x.id, id) {
		m.t.Errorf("testkit: %s called with id=%v, expected id=%v", operation, id, x.id)
		return nil, fmt.Errorf("testkit: %s id mismatch", operation)
	}
	if matchIn && !assert.ObjectsAreEqual(x.input, input) {
		m.t.Errorf("testkit: %s called with %+v, expected %+v", operation, input, x.input)
		return nil, fmt.Errorf("testkit: %s input mismatch", operation)
	}
	return x, nil
}

// CreateCall sets the canned outcome of an expected Create call.
type CreateCall[E any, I comparable, R any] struct {
	expectation *expectation[E, I, R]
}

// Return resolves the call with the given assigned identifier.
func (c *CreateCall[E, I, R]) Return(id I) {
	c.expectation.newID = id
}

// ReturnError resolves the call with the given error.
func (c *CreateCall[E, I, R]) ReturnError(err error) {
	c.expectation.err = err
}

// GetCall sets the canned outcome of an expected Get call.
type GetCall[E any, I comparable, R any] struct {
	expectation *expectation[E, I, R]
}

// Return resolves the call with the given entity.
func (c *GetCall[E, I, R]) Return(found E) {
	c.expectation.entity = found
	c.expectation.found = true
}

// ReturnMissing resolves the call with a not-found result.
func (c *GetCall[E, I, R]) ReturnMissing() {
	c.expectation.found = false
}

// ReturnError resolves the call with the given error.
func (c *GetCall[E, I, R]) ReturnError(err error) {
	c.expectation.err = err
}

// UpdateCall sets the canned outcome of an expected Update call.
type UpdateCall[E any, I comparable, R any] struct {
	expectation *expectation[E, I, R]
}

// Return resolves the call with the given updated entity.
func (c *UpdateCall[E, I, R]) Return(updated E) {
	c.expectation.entity = updated
}

// ReturnError resolves the call with the given error.
func (c *UpdateCall[E, I, R]) ReturnError(err error) {
	c.expectation.err = err
}

// DeleteCall sets the canned outcome of an expected Delete call.
type DeleteCall[E any, I comparable, R any] struct {
	expectation *expectation[E, I, R]
}

// Return resolves the call successfully.
func (c *DeleteCall[E, I, R]) Return() {}

// ReturnError resolves the call with the given error.
func (c *DeleteCall[E, I, R]) ReturnError(err error) {
	c.expectation.err = err
}

// PerformCall sets the canned outcome of an expected Perform call.
type PerformCall[E any, I comparable, R any] struct {
	expectation *expectation[E, I, R]
}

// Return resolves the call with the given action result.
func (c *PerformCall[E, I, R]) Return(result R) {
	c.expectation.result = result
}

// ReturnError resolves the call with the given error.
func (c *PerformCall[E, I, R]) ReturnError(err error) {
	c.expectation.err = err
}
