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

package rpn

import (
	"math"

	"github.com/VA00/ConstantRecognition/calc"
)

// Assignment selects a concrete operator at each skeleton slot. In
// function mode, a[i] == 0 at a SymConst slot means "push the free
// variable x"; constants are then indexed from 1.
type Assignment []int

// Mode selects how SymConst slots resolve.
type Mode int

const (
	// ModeValue resolves every SymConst slot to a calculator constant
	// (constant and batch recognition).
	ModeValue Mode = iota
	// ModeFunction additionally admits the free variable x at index 0
	// of a SymConst slot (function recognition).
	ModeFunction
)

// Stack is a reusable fixed-capacity evaluation stack, owned by a single
// worker and cleared between evaluations instead of reallocated.
type Stack struct {
	values [StackMax]float64
	sp     int
}

func (s *Stack) reset() { s.sp = 0 }

// Evaluate runs skeleton s with assignment a against c, returning the
// single resulting value or NaN if the program underflows, overflows the
// fixed stack depth, or does not end with exactly one value on the stack.
// x is only consulted in ModeFunction. The evaluator is pure: identical
// inputs always produce identical output, and it never mutates c.
func Evaluate(st *Stack, s Skeleton, a Assignment, c *calc.Calculator, mode Mode, x float64) float64 {
	st.reset()
	for i, sym := range s {
		switch sym {
		case SymConst:
			if st.sp >= StackMax {
				return math.NaN()
			}
			if mode == ModeFunction && a[i] == 0 {
				st.values[st.sp] = x
			} else {
				idx := a[i]
				if mode == ModeFunction {
					idx--
				}
				st.values[st.sp] = c.Const(idx).Value
			}
			st.sp++
		case SymUnary:
			if st.sp < 1 {
				return math.NaN()
			}
			st.values[st.sp-1] = c.Unary(a[i]).Func(st.values[st.sp-1])
		case SymBinary:
			if st.sp < 2 {
				return math.NaN()
			}
			st.sp--
			b := st.values[st.sp]
			second := st.values[st.sp-1]
			// The most recently pushed operand (b) is passed first:
			// this is part of the stable contract, not an accident.
			st.values[st.sp-1] = c.Binary(a[i]).Func(b, second)
		}
	}
	if st.sp == 1 {
		return st.values[0]
	}
	return math.NaN()
}
