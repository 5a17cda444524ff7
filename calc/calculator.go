// The MIT License (MIT)
//
// # Copyright (c) 2016 xtaci
//
// Permission is hereby granted, free of charge, to any person obtaining a copy
// of this software and associated documentation files (the "Software"), to deal
// in the Software without restriction, including without limitation the rights
// to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
// copies of the Software, and to permit persons to whom the Software is
// furnished to do so, subject to the following conditions:
//
// The above copyright notice and this permission notice shall be included in all
// copies or substantial portions of the Software.
//
// THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
// IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
// FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
// AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
// LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
// OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
// SOFTWARE.

// Package calc defines the Calculator registry: the immutable tables of
// named constants, unary functions, and binary operators that an RPN
// search draws its building blocks from.
package calc

import (
	"github.com/pkg/errors"
)

// ConstOp is a named scalar, e.g. {value: math.Pi, name: "PI"}.
type ConstOp struct {
	Value float64
	Name  string
}

// UnaryOp is a named func(float64) float64.
type UnaryOp struct {
	Func func(float64) float64
	Name string
}

// BinaryOp is a named func(a, b float64) float64. In RPN evaluation the
// most recently pushed operand is passed first: Func(b, a).
type BinaryOp struct {
	Func func(a, b float64) float64
	Name string
}

// Calculator is an immutable, read-only-after-construction triple of
// operation tables. The zero value is not valid; build one with New or
// BuildFromNames.
type Calculator struct {
	consts  []ConstOp
	unaries []UnaryOp
	binarys []BinaryOp

	constIndex  map[string]int
	unaryIndex  map[string]int
	binaryIndex map[string]int
}

// ErrEmptyConstants is returned by New when n_C == 0, violating the
// invariant that a calculator always has at least one constant.
var ErrEmptyConstants = errors.New("calculator: constants table must not be empty")

// New constructs a Calculator from explicit tables. Name strings must be
// unique within their own table; New does not itself enforce this (callers
// constructing tables by hand are trusted, the way CALC4.h's static
// initializer is trusted) but lookups simply report the first occurrence.
func New(consts []ConstOp, unaries []UnaryOp, binarys []BinaryOp) (*Calculator, error) {
	if len(consts) == 0 {
		return nil, ErrEmptyConstants
	}
	c := &Calculator{
		consts:      append([]ConstOp(nil), consts...),
		unaries:     append([]UnaryOp(nil), unaries...),
		binarys:     append([]BinaryOp(nil), binarys...),
		constIndex:  make(map[string]int, len(consts)),
		unaryIndex:  make(map[string]int, len(unaries)),
		binaryIndex: make(map[string]int, len(binarys)),
	}
	for i, op := range c.consts {
		if _, exists := c.constIndex[op.Name]; !exists {
			c.constIndex[op.Name] = i
		}
	}
	for i, op := range c.unaries {
		if _, exists := c.unaryIndex[op.Name]; !exists {
			c.unaryIndex[op.Name] = i
		}
	}
	for i, op := range c.binarys {
		if _, exists := c.binaryIndex[op.Name]; !exists {
			c.binaryIndex[op.Name] = i
		}
	}
	return c, nil
}

// NConst, NUnary, NBinary and NTotal report the table sizes.
func (c *Calculator) NConst() int  { return len(c.consts) }
func (c *Calculator) NUnary() int  { return len(c.unaries) }
func (c *Calculator) NBinary() int { return len(c.binarys) }
func (c *Calculator) NTotal() int  { return len(c.consts) + len(c.unaries) + len(c.binarys) }

// Const, Unary and Binary return the table entry at index i. Callers are
// expected to have validated i against the corresponding N* bound; out of
// range indices panic, mirroring unchecked C array access in the source.
func (c *Calculator) Const(i int) ConstOp   { return c.consts[i] }
func (c *Calculator) Unary(i int) UnaryOp   { return c.unaries[i] }
func (c *Calculator) Binary(i int) BinaryOp { return c.binarys[i] }

// LookupConst, LookupUnary and LookupBinary return the table index for a
// name, or ok=false if the name is not present.
func (c *Calculator) LookupConst(name string) (int, bool) {
	i, ok := c.constIndex[name]
	return i, ok
}

func (c *Calculator) LookupUnary(name string) (int, bool) {
	i, ok := c.unaryIndex[name]
	return i, ok
}

func (c *Calculator) LookupBinary(name string) (int, bool) {
	i, ok := c.binaryIndex[name]
	return i, ok
}
