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

import "context"

// Entity is the capability contract a data type must satisfy to be managed
// by a Runtime. It is implemented on the pointer type of the entity so hooks
// can mutate state in place:
//
//	var _ entity.Entity[*Product, UpdateProduct, Action, ActionResult, Deps] = (*Product)(nil)
//
// The type parameters substitute for associated types:
//
//   - E is the entity type itself (self-referential, so Clone is typed).
//   - U is the partial-update payload. Fields are individually optional;
//     absent fields leave the corresponding state untouched.
//   - A and R are a matched pair: the domain-specific actions the entity
//     answers beyond plain CRUD, and their results. Use None for entities
//     without actions.
//   - D is the dependency bundle injected at runtime start, typically other
//     actors' client handles. Use None when the entity depends on nothing.
//
// The identifier and creation payload types appear on Factory rather than
// here: construction happens before an entity value exists.
//
// Every hook may fail with the entity's own error type. The runtime reports
// such failures to the caller wrapped in a HookError and never conflates
// them with its own structural errors.
type Entity[E any, U, A, R, D any] interface {
	// Clone returns a deep copy of the entity. The runtime clones on every
	// read so callers never alias stored state, and clones before running
	// OnUpdate and HandleAction so a hook that fails midway cannot corrupt
	// committed state.
	Clone() E

	// OnCreate runs after construction and before the entity becomes
	// visible to reads. When it fails the entity is not stored.
	OnCreate(ctx context.Context, deps D) error

	// OnUpdate applies the present fields of the update payload. When it
	// fails the stored entity is left exactly as it was.
	OnUpdate(ctx context.Context, update U, deps D) error

	// OnDelete runs before removal. When it fails the entity stays in the
	// store.
	OnDelete(ctx context.Context, deps D) error

	// HandleAction performs one domain-specific action and returns its
	// result. Actions may mutate; when the hook fails the stored entity is
	// left exactly as it was.
	HandleAction(ctx context.Context, action A, deps D) (R, error)
}

// Factory constructs an entity from a runtime-assigned identifier and a
// creation payload. It must be pure: no side effects, no calls to other
// actors. Side effects belong in OnCreate.
type Factory[E any, I comparable, C any] func(id I, params C) (E, error)

// None is the unit type for entities that declare no actions, no action
// results or no dependencies.
type None struct{}
