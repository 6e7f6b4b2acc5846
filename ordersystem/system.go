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

// Package ordersystem wires the user, product and order runtimes into one
// system with a deterministic start and stop order.
package ordersystem

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/tochemey/entities/entity"
	"github.com/tochemey/entities/log"
	"github.com/tochemey/entities/orders"
	"github.com/tochemey/entities/products"
	"github.com/tochemey/entities/users"
)

// System owns the three runtimes and their primary client handles. Build
// it with New, begin processing with Start and stop it with Shutdown.
type System struct {
	logger log.Logger

	usersRuntime    *users.Runtime
	usersClient     *users.Client
	productsRuntime *products.Runtime
	productsClient  *products.Client
	ordersRuntime   *orders.Runtime
	ordersClient    *orders.Client

	// dedicated handles held by the order runtime's dependency bundle;
	// they stay open until the order runtime has terminated
	depsUsers    *users.Client
	depsProducts *products.Client
}

// New allocates the three runtimes. Nothing processes until Start.
func New(cfg *Config, logger log.Logger) (*System, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = log.DefaultLogger
	}

	usersRuntime, usersClient, err := users.NewRuntime(cfg.QueueCapacity, entity.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	productsRuntime, productsClient, err := products.NewRuntime(cfg.QueueCapacity, entity.WithLogger(logger))
	if err != nil {
		return nil, err
	}
	ordersRuntime, ordersClient, err := orders.NewRuntime(cfg.QueueCapacity, entity.WithLogger(logger))
	if err != nil {
		return nil, err
	}

	return &System{
		logger:          logger,
		usersRuntime:    usersRuntime,
		usersClient:     usersClient,
		productsRuntime: productsRuntime,
		productsClient:  productsClient,
		ordersRuntime:   ordersRuntime,
		ordersClient:    ordersClient,
		depsUsers:       usersClient.Clone(),
		depsProducts:    productsClient.Clone(),
	}, nil
}

// Start begins processing on every runtime. Users and products start
// first; the order runtime receives its dependency handles last, which is
// the point of the two-phase construction.
func (s *System) Start(ctx context.Context) error {
	if err := s.usersRuntime.Start(ctx, users.Deps{}); err != nil {
		return err
	}
	if err := s.productsRuntime.Start(ctx, products.Deps{}); err != nil {
		return err
	}
	deps := orders.Deps{Users: s.depsUsers, Products: s.depsProducts}
	if err := s.ordersRuntime.Start(ctx, deps); err != nil {
		return err
	}
	s.logger.Info("order system started")
	return nil
}

// Users returns the user handle. It is owned by the system; do not close
// it, Shutdown does.
func (s *System) Users() *users.Client {
	return s.usersClient
}

// Products returns the product handle owned by the system.
func (s *System) Products() *products.Client {
	return s.productsClient
}

// Orders returns the order handle owned by the system.
func (s *System) Orders() *orders.Client {
	return s.ordersClient
}

// Shutdown stops the system in reverse dependency order: the order runtime
// drains first, while its user and product handles are still live, then
// the leaf runtimes drain. Queued requests are answered, not dropped. The
// context bounds the whole wait.
func (s *System) Shutdown(ctx context.Context) error {
	s.ordersClient.Close()
	select {
	case <-s.ordersRuntime.Done():
	case <-ctx.Done():
		return ctx.Err()
	}

	s.depsUsers.Close()
	s.depsProducts.Close()
	s.usersClient.Close()
	s.productsClient.Close()

	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		select {
		case <-s.usersRuntime.Done():
			return nil
		case <-egCtx.Done():
			return egCtx.Err()
		}
	})
	eg.Go(func() error {
		select {
		case <-s.productsRuntime.Done():
			return nil
		case <-egCtx.Done():
			return egCtx.Err()
		}
	})
	if err := eg.Wait(); err != nil {
		return err
	}
	s.logger.Info("order system stopped")
	return nil
}
