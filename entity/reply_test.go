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
	"testing"

	"github.com/stretchr/testify/require"
)

func TestReply(t *testing.T) {
	t.Run("With a value", func(t *testing.T) {
		rp := newReply[int]()
		rp.completeValue(42)
		value, err := rp.await(context.TODO(), nil)
		require.NoError(t, err)
		require.Equal(t, 42, value)
	})
	t.Run("With an error", func(t *testing.T) {
		boom := errors.New("boom")
		rp := newReply[int]()
		rp.completeError(boom)
		_, err := rp.await(context.TODO(), nil)
		require.ErrorIs(t, err, boom)
	})
	t.Run("With a double completion", func(t *testing.T) {
		rp := newReply[int]()
		rp.completeValue(1)
		require.PanicsWithValue(t, "entity: reply completed more than once", func() {
			rp.completeValue(2)
		})
	})
	t.Run("With a cancelled context", func(t *testing.T) {
		rp := newReply[int]()
		ctx, cancel := context.WithCancel(context.TODO())
		cancel()
		_, err := rp.await(ctx, nil)
		require.ErrorIs(t, err, context.Canceled)
	})
	t.Run("With a terminated runtime", func(t *testing.T) {
		rp := newReply[int]()
		terminated := make(chan struct{})
		close(terminated)
		_, err := rp.await(context.TODO(), terminated)
		require.ErrorIs(t, err, ErrUnavailable)
	})
	t.Run("With an answer racing termination", func(t *testing.T) {
		// an answer delivered before the terminated signal must win
		rp := newReply[int]()
		rp.completeValue(7)
		terminated := make(chan struct{})
		close(terminated)
		value, err := rp.await(context.TODO(), terminated)
		require.NoError(t, err)
		require.Equal(t, 7, value)
	})
}
