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

// Package calctables provides a handful of ready-made calc.Calculator
// instances, the way CALC4.h, CALC_EXAMPLE.h and CASIO_HL_815L.h ship
// static instruction-set definitions for the C core.
package calctables

import (
	"math"

	"github.com/VA00/ConstantRecognition/calc"
	"github.com/VA00/ConstantRecognition/numeric"
)

// CALC4 returns the 36-button "master" calculator: 13 constants, 18
// unary functions, 5 binary operators. It is the default calculator for
// general-purpose constant and function recognition.
func CALC4() *calc.Calculator {
	c, err := calc.New(
		[]calc.ConstOp{
			{math.Pi, "PI"},
			{math.E, "EULER"},
			{-1.0, "NEG"},
			{1.61803398874989484820458683436563812, "GOLDENRATIO"},
			{1.0, "ONE"},
			{2.0, "TWO"},
			{3.0, "THREE"},
			{4.0, "FOUR"},
			{5.0, "FIVE"},
			{6.0, "SIX"},
			{7.0, "SEVEN"},
			{8.0, "EIGHT"},
			{9.0, "NINE"},
		},
		[]calc.UnaryOp{
			{math.Log, "LOG"},
			{math.Exp, "EXP"},
			{numeric.Inv, "INV"},
			{math.Gamma, "GAMMA"},
			{math.Sqrt, "SQRT"},
			{numeric.Sqr, "SQR"},
			{math.Sin, "SIN"},
			{math.Asin, "ARCSIN"},
			{math.Cos, "COS"},
			{math.Acos, "ARCCOS"},
			{math.Tan, "TAN"},
			{math.Atan, "ARCTAN"},
			{math.Sinh, "SINH"},
			{math.Asinh, "ARCSINH"},
			{math.Cosh, "COSH"},
			{math.Acosh, "ARCCOSH"},
			{math.Tanh, "TANH"},
			{math.Atanh, "ARCTANH"},
		},
		[]calc.BinaryOp{
			{numeric.Plus, "PLUS"},
			{numeric.Times, "TIMES"},
			{numeric.Subtract, "SUBTRACT"},
			{numeric.Divide, "DIVIDE"},
			{math.Pow, "POWER"},
		},
	)
	if err != nil {
		// CALC4's tables are a fixed, non-empty literal; a construction
		// error here means the table above was edited into an invalid
		// shape, a programmer error rather than a runtime condition.
		panic(err)
	}
	return c
}

// Example returns the 11-button tutorial calculator: pi, e, 1, 2;
// log, exp, sqrt, sqr; subtract, times, power. Meant as a minimal,
// easy-to-read starting point for a custom instruction set.
func Example() *calc.Calculator {
	c, err := calc.New(
		[]calc.ConstOp{
			{math.Pi, "PI"},
			{math.E, "EULER"},
			{1.0, "ONE"},
			{2.0, "TWO"},
		},
		[]calc.UnaryOp{
			{math.Log, "LOG"},
			{math.Exp, "EXP"},
			{math.Sqrt, "SQRT"},
			{numeric.Sqr, "SQR"},
		},
		[]calc.BinaryOp{
			{numeric.Subtract, "SUBTRACT"},
			{numeric.Times, "TIMES"},
			{math.Pow, "POWER"},
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// CasioHL815L returns a 17-button office-calculator instruction set: the
// ten digits, SQRT and PERCENT, and PLUS/SUBTRACT/TIMES/DIVIDE plus a
// digit-concatenation operator ("II", e.g. 9 II 9 = 99). Useful for
// recognizing formulas expressible the way a pocket calculator's keypad
// would enter them.
func CasioHL815L() *calc.Calculator {
	c, err := calc.New(
		[]calc.ConstOp{
			{0.0, "ZERO"},
			{1.0, "ONE"},
			{2.0, "TWO"},
			{3.0, "THREE"},
			{4.0, "FOUR"},
			{5.0, "FIVE"},
			{6.0, "SIX"},
			{7.0, "SEVEN"},
			{8.0, "EIGHT"},
			{9.0, "NINE"},
		},
		[]calc.UnaryOp{
			{math.Sqrt, "SQRT"},
			{numeric.Percent, "PERCENT"},
		},
		[]calc.BinaryOp{
			{numeric.Plus, "PLUS"},
			{numeric.Subtract, "SUBTRACT"},
			{numeric.Times, "TIMES"},
			{numeric.Divide, "DIVIDE"},
			{numeric.Concat, "II"},
		},
	)
	if err != nil {
		panic(err)
	}
	return c
}

// ByName resolves one of the built-in calculators by its CLI/config name
// ("CALC4", "EXAMPLE", "CASIO_HL_815L"), case-sensitively, the way
// cmd/vsearch's --calculator flag selects an instruction set.
func ByName(name string) (*calc.Calculator, bool) {
	switch name {
	case "CALC4":
		return CALC4(), true
	case "EXAMPLE":
		return Example(), true
	case "CASIO_HL_815L":
		return CasioHL815L(), true
	default:
		return nil, false
	}
}
