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

package ordersystem

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"

	"github.com/tochemey/entities/log"
	"github.com/tochemey/entities/orders"
	"github.com/tochemey/entities/products"
	"github.com/tochemey/entities/users"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestLoadConfig(t *testing.T) {
	t.Run("With defaults", func(t *testing.T) {
		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, 64, cfg.QueueCapacity)
		require.Equal(t, "info", cfg.LogLevel)
	})
	t.Run("With environment overrides", func(t *testing.T) {
		t.Setenv("QUEUE_CAPACITY", "8")
		t.Setenv("LOG_LEVEL", "debug")
		cfg, err := LoadConfig()
		require.NoError(t, err)
		require.Equal(t, 8, cfg.QueueCapacity)
		require.Equal(t, "debug", cfg.LogLevel)
	})
	t.Run("With an invalid capacity", func(t *testing.T) {
		t.Setenv("QUEUE_CAPACITY", "0")
		_, err := LoadConfig()
		require.Error(t, err)
		require.ErrorContains(t, err, "queue capacity must be greater than zero")
	})
	t.Run("With an invalid log level", func(t *testing.T) {
		t.Setenv("LOG_LEVEL", "chatty")
		_, err := LoadConfig()
		require.Error(t, err)
		require.ErrorContains(t, err, "log level is not recognized")
	})
}

func newTestSystem(t *testing.T) *System {
	t.Helper()
	system, err := New(&Config{QueueCapacity: 16, LogLevel: "info"}, log.DiscardLogger)
	require.NoError(t, err)
	require.NoError(t, system.Start(context.TODO()))
	return system
}

func TestSystem(t *testing.T) {
	t.Run("With an order placed and cancelled", func(t *testing.T) {
		ctx := context.TODO()
		system := newTestSystem(t)

		userID, err := system.Users().Create(ctx, users.CreateUser{Name: "alice", Email: "alice@example.com"})
		require.NoError(t, err)
		productID, err := system.Products().Create(ctx, products.CreateProduct{Name: "widget", Price: 9.99, Quantity: 100})
		require.NoError(t, err)

		orderID, err := system.Orders().Create(ctx, orders.CreateOrder{UserID: userID, ProductID: productID, Quantity: 3})
		require.NoError(t, err)

		placed, ok, err := system.Orders().Get(ctx, orderID)
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, orders.StatusCreated, placed.Status)
		require.InDelta(t, 29.97, placed.Total, 1e-9)

		available, err := system.Products().CheckStock(ctx, productID)
		require.NoError(t, err)
		require.Equal(t, 97, available)

		// cancelling returns the reservation
		require.NoError(t, system.Orders().Delete(ctx, orderID))
		available, err = system.Products().CheckStock(ctx, productID)
		require.NoError(t, err)
		require.Equal(t, 100, available)

		require.NoError(t, system.Shutdown(ctx))
	})
	t.Run("With an oversold product", func(t *testing.T) {
		ctx := context.TODO()
		system := newTestSystem(t)

		userID, err := system.Users().Create(ctx, users.CreateUser{Name: "alice", Email: "alice@example.com"})
		require.NoError(t, err)
		productID, err := system.Products().Create(ctx, products.CreateProduct{Name: "widget", Price: 9.99, Quantity: 2})
		require.NoError(t, err)

		_, err = system.Orders().Create(ctx, orders.CreateOrder{UserID: userID, ProductID: productID, Quantity: 10})
		var insufficient *products.InsufficientStockError
		require.ErrorAs(t, err, &insufficient)
		require.Equal(t, 10, insufficient.Requested)
		require.Equal(t, 2, insufficient.Available)

		// the failed order must not exist and stock must be untouched
		available, err := system.Products().CheckStock(ctx, productID)
		require.NoError(t, err)
		require.Equal(t, 2, available)

		require.NoError(t, system.Shutdown(ctx))
	})
	t.Run("With a fulfilled order", func(t *testing.T) {
		ctx := context.TODO()
		system := newTestSystem(t)

		userID, err := system.Users().Create(ctx, users.CreateUser{Name: "alice", Email: "alice@example.com"})
		require.NoError(t, err)
		productID, err := system.Products().Create(ctx, products.CreateProduct{Name: "widget", Price: 9.99, Quantity: 10})
		require.NoError(t, err)
		orderID, err := system.Orders().Create(ctx, orders.CreateOrder{UserID: userID, ProductID: productID, Quantity: 4})
		require.NoError(t, err)

		next := orders.StatusFulfilled
		fulfilled, err := system.Orders().Update(ctx, orderID, orders.UpdateOrder{Status: &next})
		require.NoError(t, err)
		require.Equal(t, orders.StatusFulfilled, fulfilled.Status)

		// deleting a fulfilled order does not restock
		require.NoError(t, system.Orders().Delete(ctx, orderID))
		available, err := system.Products().CheckStock(ctx, productID)
		require.NoError(t, err)
		require.Equal(t, 6, available)

		require.NoError(t, system.Shutdown(ctx))
	})
	t.Run("With an unknown user", func(t *testing.T) {
		ctx := context.TODO()
		system := newTestSystem(t)

		productID, err := system.Products().Create(ctx, products.CreateProduct{Name: "widget", Price: 9.99, Quantity: 10})
		require.NoError(t, err)

		_, err = system.Orders().Create(ctx, orders.CreateOrder{UserID: "user_ghost", ProductID: productID, Quantity: 1})
		require.ErrorIs(t, err, orders.ErrUnknownUser)

		require.NoError(t, system.Shutdown(ctx))
	})
	t.Run("With calls after shutdown", func(t *testing.T) {
		ctx := context.TODO()
		system := newTestSystem(t)
		require.NoError(t, system.Shutdown(ctx))

		_, err := system.Users().Create(ctx, users.CreateUser{Name: "alice", Email: "alice@example.com"})
		require.Error(t, err)
	})
}
