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

// Package validation helps accumulate constructor and configuration checks
// into a single error.
package validation

import (
	"errors"

	"go.uber.org/multierr"
)

// Validator interface generalizes the validator implementations.
type Validator interface {
	Validate() error
}

// Chain represents a list of validators and is used to accumulate their
// violations and return them as a single error.
type Chain struct {
	failFast   bool
	validators []Validator
}

// ChainOption configures a validation chain at creation time.
type ChainOption func(*Chain)

// New creates a new validation chain.
func New(opts ...ChainOption) *Chain {
	chain := new(Chain)
	for _, opt := range opts {
		opt(chain)
	}
	return chain
}

// FailFast sets whether a chain should stop validation on the first error.
func FailFast() ChainOption {
	return func(c *Chain) { c.failFast = true }
}

// AddValidator adds a validator to the validation chain.
func (c *Chain) AddValidator(v Validator) *Chain {
	c.validators = append(c.validators, v)
	return c
}

// AddAssertion adds a boolean assertion to the validation chain. The
// message becomes the violation when the assertion does not hold.
func (c *Chain) AddAssertion(isTrue bool, message string) *Chain {
	c.validators = append(c.validators, booleanValidator{isTrue: isTrue, message: message})
	return c
}

// Validate runs the validation chain and returns the resulting error(s).
// By default every violation is reported; use the FailFast option to stop
// on the first one.
func (c *Chain) Validate() error {
	var violations error
	for _, v := range c.validators {
		if violation := v.Validate(); violation != nil {
			if c.failFast {
				return violation
			}
			violations = multierr.Append(violations, violation)
		}
	}
	return violations
}

// booleanValidator turns a plain assertion into a Validator.
type booleanValidator struct {
	isTrue  bool
	message string
}

func (v booleanValidator) Validate() error {
	if !v.isTrue {
		return errors.New(v.message)
	}
	return nil
}
