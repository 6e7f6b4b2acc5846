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
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestClient(t *testing.T) {
	t.Run("With a full queue and an impatient caller", func(t *testing.T) {
		// runtime deliberately not started so the queue stays full
		runtime, client := newStockRuntime(t, 1)

		ctx := context.TODO()
		_, err := client.Create(timeoutCtx(t, time.Second), newStock{Label: "widget", Quantity: 1})
		// the first request fits in the queue but is never answered;
		// the deadline surfaces instead of a hang
		require.ErrorIs(t, err, context.DeadlineExceeded)

		// the second request cannot even enqueue
		_, err = client.Create(timeoutCtx(t, 100*time.Millisecond), newStock{Label: "widget", Quantity: 1})
		require.ErrorIs(t, err, context.DeadlineExceeded)

		// start and release so the goroutine winds down
		require.NoError(t, runtime.Start(ctx, None{}))
		join(t, runtime, client)
	})
	t.Run("With a send on a closed handle", func(t *testing.T) {
		runtime, client := newStockRuntime(t, 1)
		require.NoError(t, runtime.Start(context.TODO(), None{}))

		clone := client.Clone()
		clone.Close()
		_, err := clone.Create(context.TODO(), newStock{Label: "widget", Quantity: 1})
		require.ErrorIs(t, err, ErrUnavailable)

		join(t, runtime, client)
	})
	t.Run("With nested clones", func(t *testing.T) {
		runtime, client := newStockRuntime(t, 1)
		require.NoError(t, runtime.Start(context.TODO(), None{}))

		first := client.Clone()
		second := first.Clone()
		client.Close()
		first.Close()

		itemID, err := second.Create(context.TODO(), newStock{Label: "widget", Quantity: 1})
		require.NoError(t, err)
		require.NotEmpty(t, itemID)

		join(t, runtime, second)
	})
}

func timeoutCtx(t *testing.T, d time.Duration) context.Context {
	t.Helper()
	ctx, cancel := context.WithTimeout(context.TODO(), d)
	t.Cleanup(cancel)
	return ctx
}
