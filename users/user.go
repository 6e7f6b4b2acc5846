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

// Package users defines the user account entity and its actor wiring.
package users

import (
	"context"
	"strings"

	"github.com/tochemey/entities/entity"
)

// User is a registered account. It lives inside a single runtime goroutine
// and is only ever seen by callers as a clone.
type User struct {
	ID    string
	Name  string
	Email string
}

// CreateUser carries the construction parameters of a new account.
type CreateUser struct {
	Name  string
	Email string
}

// UpdateUser is a partial update; nil fields are left untouched.
type UpdateUser struct {
	Name  *string
	Email *string
}

// Deps is the dependency bundle of the user runtime. Users depend on
// nothing else.
type Deps struct{}

// enforce compilation error
var _ entity.Entity[*User, UpdateUser, entity.None, entity.None, Deps] = (*User)(nil)

// New constructs a user from its creation parameters. It is the factory
// handed to the runtime.
func New(id string, params CreateUser) (*User, error) {
	if err := validate(params.Name, params.Email); err != nil {
		return nil, err
	}
	return &User{ID: id, Name: params.Name, Email: params.Email}, nil
}

// Clone returns a deep copy.
func (u *User) Clone() *User {
	clone := *u
	return &clone
}

// OnCreate implements entity.Entity. Construction is fully validated by the
// factory, so there is nothing left to do.
func (u *User) OnCreate(context.Context, Deps) error {
	return nil
}

// OnUpdate applies a partial update. Every candidate value is validated
// before any field is assigned, so a rejected update leaves the user
// untouched.
func (u *User) OnUpdate(_ context.Context, update UpdateUser, _ Deps) error {
	name := u.Name
	email := u.Email
	if update.Name != nil {
		name = *update.Name
	}
	if update.Email != nil {
		email = *update.Email
	}
	if err := validate(name, email); err != nil {
		return err
	}
	u.Name = name
	u.Email = email
	return nil
}

// OnDelete implements entity.Entity. Accounts can always be removed.
func (u *User) OnDelete(context.Context, Deps) error {
	return nil
}

// HandleAction implements entity.Entity. Users define no actions.
func (u *User) HandleAction(context.Context, entity.None, Deps) (entity.None, error) {
	return entity.None{}, ErrNoActions
}

func validate(name, email string) error {
	if name == "" {
		return ErrNameRequired
	}
	if !strings.Contains(email, "@") {
		return &InvalidEmailError{Email: email}
	}
	return nil
}
