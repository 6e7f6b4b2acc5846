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
	"errors"
	"fmt"
	"testing"
	"time"

	"go.uber.org/goleak"

	"github.com/tochemey/entities/id"
	"github.com/tochemey/entities/log"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

var (
	errLabelRequired = errors.New("label is required")
	errNegativeStock = errors.New("stock cannot be negative")
	errItemLocked    = errors.New("item is locked")
)

// stockItem is the entity used throughout the package tests. Its hooks
// exercise every failure path the runtime has to cope with.
type stockItem struct {
	ID       string
	Label    string
	Quantity int
}

type newStock struct {
	Label    string
	Quantity int
}

type restock struct {
	Add int
}

type reserve struct {
	Qty int
}

func (s *stockItem) Clone() *stockItem {
	clone := *s
	return &clone
}

func (s *stockItem) OnCreate(context.Context, None) error {
	if s.Quantity < 0 {
		return errNegativeStock
	}
	return nil
}

func (s *stockItem) OnUpdate(_ context.Context, update restock, _ None) error {
	// mutate first so a failing update proves state is rolled back
	s.Quantity += update.Add
	if s.Quantity < 0 {
		return errNegativeStock
	}
	return nil
}

func (s *stockItem) OnDelete(context.Context, None) error {
	if s.Label == "locked" {
		return errItemLocked
	}
	return nil
}

func (s *stockItem) HandleAction(_ context.Context, action reserve, _ None) (int, error) {
	if action.Qty > s.Quantity {
		return 0, fmt.Errorf("insufficient stock: requested %d, available %d", action.Qty, s.Quantity)
	}
	s.Quantity -= action.Qty
	return s.Quantity, nil
}

func newStockItem(itemID string, params newStock) (*stockItem, error) {
	if params.Label == "" {
		return nil, errLabelRequired
	}
	return &stockItem{ID: itemID, Label: params.Label, Quantity: params.Quantity}, nil
}

// newStockRuntime builds a started runtime over stockItem with sequential
// identifiers and a discarded log.
func newStockRuntime(t *testing.T, capacity int) (*Runtime[*stockItem, string, newStock, restock, reserve, int, None], *Client[*stockItem, string, newStock, restock, reserve, int]) {
	t.Helper()
	runtime, client, err := New[*stockItem, string, newStock, restock, reserve, int, None](
		capacity,
		id.Sequential("e"),
		newStockItem,
		WithLogger(log.DiscardLogger),
	)
	if err != nil {
		t.Fatalf("failed to build runtime: %v", err)
	}
	return runtime, client
}

// join closes the handle and waits for the runtime to wind down so goleak
// stays quiet.
func join(t *testing.T, runtime interface{ Done() <-chan struct{} }, client interface{ Close() }) {
	t.Helper()
	client.Close()
	select {
	case <-runtime.Done():
	case <-time.After(5 * time.Second):
		t.Fatal("runtime did not terminate")
	}
}
