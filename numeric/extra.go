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

package numeric

import "math"

// The calculator tables reach for scalar operations the standard math
// package doesn't expose as plain func(float64) float64 / func(float64,
// float64) float64 values: squaring, reciprocal, and decimal digit
// concatenation. These are the Go equivalents of math2.h's static inline
// helpers.

// Sqr returns x*x.
func Sqr(x float64) float64 { return x * x }

// Inv returns the reciprocal 1/x.
func Inv(x float64) float64 { return 1.0 / x }

// Percent returns 0.01*x.
func Percent(x float64) float64 { return 0.01 * x }

// Plus, Times, Subtract and Divide give +, *, -, / a func(float64,
// float64) float64 shape so they can sit in a BinaryOp table next to
// math.Pow.
func Plus(a, b float64) float64     { return a + b }
func Times(a, b float64) float64    { return a * b }
func Subtract(a, b float64) float64 { return a - b }
func Divide(a, b float64) float64   { return a / b }

// Concat treats a and b as decimal digit strings and concatenates them:
// concat(9, 9) = 99. Used by the CASIO_HL_815L calculator's "II" button.
func Concat(a, b float64) float64 {
	return a*math.Pow(10.0, 1.0+math.Floor(math.Log10(b))) + b
}
