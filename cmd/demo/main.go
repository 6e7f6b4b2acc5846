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

// Demo walks the order system through its lifecycle: placing an order,
// overselling, restocking with a retry, and a graceful shutdown.
package main

import (
	"context"
	"errors"
	"os"
	"time"

	"github.com/flowchartsman/retry"

	"github.com/tochemey/entities/log"
	"github.com/tochemey/entities/orders"
	"github.com/tochemey/entities/ordersystem"
	"github.com/tochemey/entities/products"
	"github.com/tochemey/entities/users"
)

func main() {
	ctx := context.Background()

	cfg, err := ordersystem.LoadConfig()
	if err != nil {
		log.DefaultLogger.Fatal(err)
	}
	level, _ := log.ParseLevel(cfg.LogLevel)
	logger := log.New(level, os.Stderr)

	system, err := ordersystem.New(cfg, logger)
	if err != nil {
		logger.Fatal(err)
	}
	if err := system.Start(ctx); err != nil {
		logger.Fatal(err)
	}

	userID, err := system.Users().Create(ctx, users.CreateUser{Name: "alice", Email: "alice@example.com"})
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("registered user %s", userID)

	productID, err := system.Products().Create(ctx, products.CreateProduct{Name: "widget", Price: 9.99, Quantity: 5})
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("listed product %s with 5 units", productID)

	orderID, err := system.Orders().Create(ctx, orders.CreateOrder{UserID: userID, ProductID: productID, Quantity: 3})
	if err != nil {
		logger.Fatal(err)
	}
	placed, _, err := system.Orders().Get(ctx, orderID)
	if err != nil {
		logger.Fatal(err)
	}
	logger.Infof("placed order %s, total %.2f", orderID, placed.Total)

	// overselling is rejected atomically, stock stays at 2
	_, err = system.Orders().Create(ctx, orders.CreateOrder{UserID: userID, ProductID: productID, Quantity: 10})
	var insufficient *products.InsufficientStockError
	if !errors.As(err, &insufficient) {
		logger.Fatalf("expected a stock rejection, got: %v", err)
	}
	logger.Infof("oversell rejected: requested %d, available %d", insufficient.Requested, insufficient.Available)

	// retry the big order, restocking after each rejection until it fits
	retrier := retry.NewRetrier(5, 50*time.Millisecond, time.Second)
	err = retrier.Run(func() error {
		bigID, err := system.Orders().Create(ctx, orders.CreateOrder{UserID: userID, ProductID: productID, Quantity: 10})
		var insufficient *products.InsufficientStockError
		switch {
		case err == nil:
			logger.Infof("placed order %s after restock", bigID)
			return nil
		case errors.As(err, &insufficient):
			level := insufficient.Requested + insufficient.Available
			if _, err := system.Products().Update(ctx, productID, products.UpdateProduct{Quantity: &level}); err != nil {
				return retry.Stop(err)
			}
			logger.Infof("restocked %s to %d units", productID, level)
			return err
		default:
			return retry.Stop(err)
		}
	})
	if err != nil {
		logger.Fatal(err)
	}

	shutdownCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()
	if err := system.Shutdown(shutdownCtx); err != nil {
		logger.Fatal(err)
	}
}
