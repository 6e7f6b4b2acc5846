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

package products

import (
	"context"
	"fmt"

	"github.com/tochemey/entities/entity"
	"github.com/tochemey/entities/id"
)

// Runtime is the product actor runtime.
type Runtime = entity.Runtime[*Product, string, CreateProduct, UpdateProduct, Action, Result, Deps]

// Handle is the call surface of the product runtime, satisfied by both
// Client and a testkit mock.
type Handle = entity.Handle[*Product, string, CreateProduct, UpdateProduct, Action, Result]

type rawClient = entity.Client[*Product, string, CreateProduct, UpdateProduct, Action, Result]

// Client is the handle addressing the product runtime, with typed helpers
// over the stock actions.
type Client struct {
	*rawClient
}

// NewRuntime allocates the product runtime and its client handle.
// Identifiers are sequential and prefixed with "prod".
func NewRuntime(capacity int, opts ...entity.Option) (*Runtime, *Client, error) {
	runtime, client, err := entity.New[*Product, string, CreateProduct, UpdateProduct, Action, Result, Deps](
		capacity,
		id.Sequential("prod"),
		New,
		opts...,
	)
	if err != nil {
		return nil, nil, err
	}
	return runtime, &Client{rawClient: client}, nil
}

// Clone returns a new handle addressing the same runtime.
func (c *Client) Clone() *Client {
	return &Client{rawClient: c.rawClient.Clone()}
}

// CheckStock reports the product's available stock.
func (c *Client) CheckStock(ctx context.Context, productID string) (int, error) {
	result, err := c.Perform(ctx, productID, CheckStock{})
	if err != nil {
		return 0, err
	}
	level, ok := result.(StockLevel)
	if !ok {
		return 0, fmt.Errorf("unexpected stock result %T", result)
	}
	return level.Available, nil
}

// Reserve takes quantity units from stock and returns the remaining level.
func (c *Client) Reserve(ctx context.Context, productID string, quantity int) (int, error) {
	result, err := c.Perform(ctx, productID, ReserveStock{Quantity: quantity})
	if err != nil {
		return 0, err
	}
	reserved, ok := result.(StockReserved)
	if !ok {
		return 0, fmt.Errorf("unexpected stock result %T", result)
	}
	return reserved.Remaining, nil
}

// Release returns quantity units to stock and returns the new level.
func (c *Client) Release(ctx context.Context, productID string, quantity int) (int, error) {
	result, err := c.Perform(ctx, productID, ReleaseStock{Quantity: quantity})
	if err != nil {
		return 0, err
	}
	released, ok := result.(StockReleased)
	if !ok {
		return 0, fmt.Errorf("unexpected stock result %T", result)
	}
	return released.Remaining, nil
}
