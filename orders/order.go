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

// Package orders defines the order entity. Orders are the composition
// point of the system: creating one consults the user runtime and reserves
// stock on the product runtime, deleting one returns the reservation. The
// dependency graph stays acyclic, orders call into users and products and
// never the other way around.
package orders

import (
	"context"
	"fmt"

	"github.com/tochemey/entities/entity"
	"github.com/tochemey/entities/products"
	"github.com/tochemey/entities/users"
)

// Status is the order lifecycle state.
type Status string

const (
	// StatusCreated is the state of a freshly placed order holding a
	// stock reservation.
	StatusCreated Status = "created"
	// StatusFulfilled is the terminal state, the reservation has shipped.
	StatusFulfilled Status = "fulfilled"
)

// Order is a placed order referencing a user and a product by identifier.
type Order struct {
	ID        string
	UserID    string
	ProductID string
	Quantity  int
	Total     float64
	Status    Status
}

// CreateOrder carries the construction parameters of a new order.
type CreateOrder struct {
	UserID    string
	ProductID string
	Quantity  int
}

// UpdateOrder is a partial update; only the status can change after
// placement.
type UpdateOrder struct {
	Status *Status
}

// Deps is the dependency bundle of the order runtime. The handles are
// interfaces so tests can substitute testkit mocks.
type Deps struct {
	Users    users.Handle
	Products products.Handle
}

// enforce compilation error
var _ entity.Entity[*Order, UpdateOrder, entity.None, entity.None, Deps] = (*Order)(nil)

// New constructs an order from its creation parameters. It is the factory
// handed to the runtime; cross-actor checks happen later in OnCreate.
func New(id string, params CreateOrder) (*Order, error) {
	if params.Quantity <= 0 {
		return nil, ErrInvalidQuantity
	}
	return &Order{
		ID:        id,
		UserID:    params.UserID,
		ProductID: params.ProductID,
		Quantity:  params.Quantity,
	}, nil
}

// Clone returns a deep copy.
func (o *Order) Clone() *Order {
	clone := *o
	return &clone
}

// OnCreate verifies the referenced user, prices the order and reserves
// stock. It runs inside the order runtime loop; the calls below suspend on
// the downstream queues but can never deadlock since the dependency graph
// is acyclic.
func (o *Order) OnCreate(ctx context.Context, deps Deps) error {
	_, ok, err := deps.Users.Get(ctx, o.UserID)
	if err != nil {
		return &UserServiceError{cause: err}
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownUser, o.UserID)
	}

	item, ok, err := deps.Products.Get(ctx, o.ProductID)
	if err != nil {
		return &ProductServiceError{cause: err}
	}
	if !ok {
		return fmt.Errorf("%w: %s", ErrUnknownProduct, o.ProductID)
	}

	if _, err := deps.Products.Perform(ctx, o.ProductID, products.ReserveStock{Quantity: o.Quantity}); err != nil {
		return &ProductServiceError{cause: err}
	}

	o.Total = item.Price * float64(o.Quantity)
	o.Status = StatusCreated
	return nil
}

// OnUpdate applies a status transition. The only legal move is from
// created to fulfilled.
func (o *Order) OnUpdate(_ context.Context, update UpdateOrder, _ Deps) error {
	if update.Status == nil {
		return nil
	}
	next := *update.Status
	if o.Status == StatusCreated && next == StatusFulfilled {
		o.Status = next
		return nil
	}
	return &InvalidTransitionError{From: o.Status, To: next}
}

// OnDelete cancels the order. An unfulfilled order still holds a stock
// reservation, which is returned to the product; a fulfilled order has
// shipped and releases nothing.
func (o *Order) OnDelete(ctx context.Context, deps Deps) error {
	if o.Status != StatusCreated {
		return nil
	}
	if _, err := deps.Products.Perform(ctx, o.ProductID, products.ReleaseStock{Quantity: o.Quantity}); err != nil {
		return &ProductServiceError{cause: err}
	}
	return nil
}

// HandleAction implements entity.Entity. Orders define no actions.
func (o *Order) HandleAction(context.Context, entity.None, Deps) (entity.None, error) {
	return entity.None{}, ErrNoActions
}
