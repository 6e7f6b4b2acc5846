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

package testkit

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type account struct {
	ID      string
	Owner   string
	Balance int
}

type openAccount struct {
	Owner string
}

type adjustBalance struct {
	Delta int
}

type withdraw struct {
	Amount int
}

type accountMock = Mock[*account, string, openAccount, adjustBalance, withdraw, int]

// recorder captures failures instead of failing the enclosing test, so the
// mock's own failure reporting can be asserted on.
type recorder struct {
	testing.TB
	failures []string
}

func (r *recorder) Errorf(format string, args ...any) {
	r.failures = append(r.failures, fmt.Sprintf(format, args...))
}

func (r *recorder) Helper() {}

func TestMock(t *testing.T) {
	t.Run("With matching calls in order", func(t *testing.T) {
		ctx := context.TODO()
		mock := New[*account, string, openAccount, adjustBalance, withdraw, int](t)

		mock.ExpectCreate(openAccount{Owner: "alice"}).Return("acc_1")
		mock.ExpectGet("acc_1").Return(&account{ID: "acc_1", Owner: "alice", Balance: 0})
		mock.ExpectUpdate("acc_1", adjustBalance{Delta: 50}).Return(&account{ID: "acc_1", Owner: "alice", Balance: 50})
		mock.ExpectPerform("acc_1", withdraw{Amount: 20}).Return(30)
		mock.ExpectDelete("acc_1").Return()

		id, err := mock.Create(ctx, openAccount{Owner: "alice"})
		require.NoError(t, err)
		require.Equal(t, "acc_1", id)

		found, ok, err := mock.Get(ctx, "acc_1")
		require.NoError(t, err)
		require.True(t, ok)
		require.Equal(t, "alice", found.Owner)

		updated, err := mock.Update(ctx, "acc_1", adjustBalance{Delta: 50})
		require.NoError(t, err)
		require.Equal(t, 50, updated.Balance)

		remaining, err := mock.Perform(ctx, "acc_1", withdraw{Amount: 20})
		require.NoError(t, err)
		require.Equal(t, 30, remaining)

		require.NoError(t, mock.Delete(ctx, "acc_1"))
		mock.Verify()
	})
	t.Run("With a missing entity", func(t *testing.T) {
		ctx := context.TODO()
		mock := New[*account, string, openAccount, adjustBalance, withdraw, int](t)
		mock.ExpectGet("acc_404").ReturnMissing()

		found, ok, err := mock.Get(ctx, "acc_404")
		require.NoError(t, err)
		require.False(t, ok)
		require.Nil(t, found)
		mock.Verify()
	})
	t.Run("With a canned error", func(t *testing.T) {
		ctx := context.TODO()
		boom := errors.New("ledger offline")
		mock := New[*account, string, openAccount, adjustBalance, withdraw, int](t)
		mock.ExpectPerform("acc_1", withdraw{Amount: 5}).ReturnError(boom)

		_, err := mock.Perform(ctx, "acc_1", withdraw{Amount: 5})
		require.ErrorIs(t, err, boom)
		mock.Verify()
	})
	t.Run("With an unexpected call", func(t *testing.T) {
		ctx := context.TODO()
		rec := &recorder{TB: t}
		mock := New[*account, string, openAccount, adjustBalance, withdraw, int](rec)

		_, err := mock.Create(ctx, openAccount{Owner: "bob"})
		require.Error(t, err)
		require.Len(t, rec.failures, 1)
		assert.Contains(t, rec.failures[0], "unexpected create call")
	})
	t.Run("With a call out of order", func(t *testing.T) {
		ctx := context.TODO()
		rec := &recorder{TB: t}
		mock := New[*account, string, openAccount, adjustBalance, withdraw, int](rec)
		mock.ExpectDelete("acc_1")

		_, _, err := mock.Get(ctx, "acc_1")
		require.Error(t, err)
		require.Len(t, rec.failures, 1)
		assert.Contains(t, rec.failures[0], "got get call")
	})
	t.Run("With an input mismatch", func(t *testing.T) {
		ctx := context.TODO()
		rec := &recorder{TB: t}
		mock := New[*account, string, openAccount, adjustBalance, withdraw, int](rec)
		mock.ExpectUpdate("acc_1", adjustBalance{Delta: 10}).Return(&account{ID: "acc_1"})

		_, err := mock.Update(ctx, "acc_1", adjustBalance{Delta: 99})
		require.Error(t, err)
		require.Len(t, rec.failures, 1)
		assert.Contains(t, rec.failures[0], "expected")
	})
	t.Run("With an identifier mismatch", func(t *testing.T) {
		ctx := context.TODO()
		rec := &recorder{TB: t}
		mock := New[*account, string, openAccount, adjustBalance, withdraw, int](rec)
		mock.ExpectDelete("acc_1")

		err := mock.Delete(ctx, "acc_2")
		require.Error(t, err)
		require.Len(t, rec.failures, 1)
		assert.Contains(t, rec.failures[0], "id=acc_2")
	})
	t.Run("With unmet expectations", func(t *testing.T) {
		rec := &recorder{TB: t}
		mock := New[*account, string, openAccount, adjustBalance, withdraw, int](rec)
		mock.ExpectCreate(openAccount{Owner: "carol"}).Return("acc_9")
		mock.ExpectGet("acc_9").ReturnMissing()

		mock.Verify()
		require.Len(t, rec.failures, 2)
		assert.Contains(t, rec.failures[0], "never made")
	})
	t.Run("With a typed alias", func(t *testing.T) {
		ctx := context.TODO()
		var mock *accountMock = New[*account, string, openAccount, adjustBalance, withdraw, int](t)
		mock.ExpectGet("acc_1").ReturnMissing()
		_, ok, err := mock.Get(ctx, "acc_1")
		require.NoError(t, err)
		require.False(t, ok)
		mock.Verify()
	})
}
