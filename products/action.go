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

package products

// Action is the sealed set of stock operations a product accepts.
type Action interface {
	isAction()
}

// CheckStock reports the current stock level without changing it.
type CheckStock struct{}

// ReserveStock atomically takes the given quantity from stock.
type ReserveStock struct {
	Quantity int
}

// ReleaseStock returns a previously reserved quantity to stock.
type ReleaseStock struct {
	Quantity int
}

func (CheckStock) isAction()   {}
func (ReserveStock) isAction() {}
func (ReleaseStock) isAction() {}

// Result is the sealed set of stock action outcomes.
type Result interface {
	isResult()
}

// StockLevel answers CheckStock.
type StockLevel struct {
	Available int
}

// StockReserved answers ReserveStock.
type StockReserved struct {
	Remaining int
}

// StockReleased answers ReleaseStock.
type StockReleased struct {
	Remaining int
}

func (StockLevel) isResult()    {}
func (StockReserved) isResult() {}
func (StockReleased) isResult() {}
