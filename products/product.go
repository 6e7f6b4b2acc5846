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

// Package products defines the product catalog entity, its stock actions
// and its actor wiring. Stock reservation runs inside the runtime loop, so
// check-then-reserve is free of races without any locking.
package products

import (
	"context"

	"github.com/tochemey/entities/entity"
)

// Product is a catalog entry with an available stock level.
type Product struct {
	ID       string
	Name     string
	Price    float64
	Quantity int
}

// CreateProduct carries the construction parameters of a catalog entry.
type CreateProduct struct {
	Name     string
	Price    float64
	Quantity int
}

// UpdateProduct is a partial update; nil fields are left untouched. A
// Quantity update restocks to the given absolute level.
type UpdateProduct struct {
	Name     *string
	Price    *float64
	Quantity *int
}

// Deps is the dependency bundle of the product runtime. Products depend on
// nothing else.
type Deps struct{}

// enforce compilation error
var _ entity.Entity[*Product, UpdateProduct, Action, Result, Deps] = (*Product)(nil)

// New constructs a product from its creation parameters. It is the factory
// handed to the runtime.
func New(id string, params CreateProduct) (*Product, error) {
	if params.Name == "" {
		return nil, ErrNameRequired
	}
	if params.Price < 0 {
		return nil, &InvalidPriceError{Price: params.Price}
	}
	if params.Quantity < 0 {
		return nil, &InvalidQuantityError{Quantity: params.Quantity}
	}
	return &Product{ID: id, Name: params.Name, Price: params.Price, Quantity: params.Quantity}, nil
}

// Clone returns a deep copy.
func (p *Product) Clone() *Product {
	clone := *p
	return &clone
}

// OnCreate implements entity.Entity. Construction is fully validated by the
// factory.
func (p *Product) OnCreate(context.Context, Deps) error {
	return nil
}

// OnUpdate applies a partial update, validating every candidate value
// before any field is assigned.
func (p *Product) OnUpdate(_ context.Context, update UpdateProduct, _ Deps) error {
	if update.Name != nil && *update.Name == "" {
		return ErrNameRequired
	}
	if update.Price != nil && *update.Price < 0 {
		return &InvalidPriceError{Price: *update.Price}
	}
	if update.Quantity != nil && *update.Quantity < 0 {
		return &InvalidQuantityError{Quantity: *update.Quantity}
	}
	if update.Name != nil {
		p.Name = *update.Name
	}
	if update.Price != nil {
		p.Price = *update.Price
	}
	if update.Quantity != nil {
		p.Quantity = *update.Quantity
	}
	return nil
}

// OnDelete implements entity.Entity. Catalog entries can always be removed.
func (p *Product) OnDelete(context.Context, Deps) error {
	return nil
}

// HandleAction executes one stock action. The runtime serializes actions,
// so reservation is atomic with respect to every other call.
func (p *Product) HandleAction(_ context.Context, action Action, _ Deps) (Result, error) {
	switch act := action.(type) {
	case CheckStock:
		return StockLevel{Available: p.Quantity}, nil
	case ReserveStock:
		if act.Quantity <= 0 {
			return nil, &InvalidQuantityError{Quantity: act.Quantity}
		}
		if act.Quantity > p.Quantity {
			return nil, &InsufficientStockError{Requested: act.Quantity, Available: p.Quantity}
		}
		p.Quantity -= act.Quantity
		return StockReserved{Remaining: p.Quantity}, nil
	case ReleaseStock:
		if act.Quantity <= 0 {
			return nil, &InvalidQuantityError{Quantity: act.Quantity}
		}
		p.Quantity += act.Quantity
		return StockReleased{Remaining: p.Quantity}, nil
	default:
		return nil, ErrUnsupportedAction
	}
}
