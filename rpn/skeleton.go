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

// Package rpn enumerates and evaluates Reverse-Polish expressions over a
// calc.Calculator: the structural skeletons (C, U, B slot sequences), the
// stack machine that runs a concrete assignment, and the per-skeleton
// assignment generator.
package rpn

// Symbol is one slot kind in an RPN skeleton.
type Symbol byte

const (
	SymConst Symbol = iota
	SymUnary
	SymBinary
)

// Skeleton is a sequence of slot kinds, the structural backbone of an RPN
// program before any operator has been chosen.
type Skeleton []Symbol

// MaxCodeLength bounds K. StackMax bounds the evaluator's value stack.
// Both default to 32, matching MAX_CODE_LENGTH / MAX_STACK_DEPTH in the
// original C core.
const (
	MaxCodeLength = 32
	StackMax      = 32
)

// Valid reports whether s is a syntactically valid RPN program: the
// running stack depth (C: +1, U: +0, B: -1) never drops below 1 after the
// first symbol and ends at exactly 1.
func Valid(s Skeleton) bool {
	depth := 0
	for _, sym := range s {
		switch sym {
		case SymConst:
			depth++
		case SymUnary:
			if depth < 1 {
				return false
			}
		case SymBinary:
			if depth < 2 {
				return false
			}
			depth--
		}
	}
	return depth == 1
}

// String renders a skeleton using the C/U/B alphabet, mainly for debugging
// and tests.
func (s Skeleton) String() string {
	out := make([]byte, len(s))
	for i, sym := range s {
		switch sym {
		case SymConst:
			out[i] = 'C'
		case SymUnary:
			out[i] = 'U'
		case SymBinary:
			out[i] = 'B'
		}
	}
	return string(out)
}
