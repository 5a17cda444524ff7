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

package calc

import (
	"math"
	"testing"
)

func testCalculator(t *testing.T) *Calculator {
	t.Helper()
	c, err := New(
		[]ConstOp{{math.Pi, "PI"}, {math.E, "EULER"}, {1.0, "ONE"}},
		[]UnaryOp{{math.Sqrt, "SQRT"}, {math.Log, "LOG"}},
		[]BinaryOp{{func(a, b float64) float64 { return a + b }, "PLUS"}},
	)
	if err != nil {
		t.Fatalf("New returned error: %v", err)
	}
	return c
}

func TestNewRejectsEmptyConstants(t *testing.T) {
	_, err := New(nil, nil, nil)
	if err != ErrEmptyConstants {
		t.Fatalf("New(no consts) error = %v, want ErrEmptyConstants", err)
	}
}

func TestNewCounts(t *testing.T) {
	c := testCalculator(t)
	if c.NConst() != 3 || c.NUnary() != 2 || c.NBinary() != 1 || c.NTotal() != 6 {
		t.Fatalf("unexpected table sizes: const=%d unary=%d binary=%d total=%d",
			c.NConst(), c.NUnary(), c.NBinary(), c.NTotal())
	}
}

func TestLookupRoundTrip(t *testing.T) {
	c := testCalculator(t)
	idx, ok := c.LookupConst("EULER")
	if !ok || c.Const(idx).Value != math.E {
		t.Fatalf("LookupConst(EULER) = %d, %v; Const(idx).Value = %v", idx, ok, c.Const(idx).Value)
	}
	if _, ok := c.LookupConst("NOPE"); ok {
		t.Fatalf("LookupConst(NOPE) should fail")
	}
}

func TestBuildFromNamesNilMeansAll(t *testing.T) {
	full := testCalculator(t)
	sub, err := BuildFromNames(full, nil, nil, nil)
	if err != nil {
		t.Fatalf("BuildFromNames returned error: %v", err)
	}
	if sub.NConst() != full.NConst() || sub.NUnary() != full.NUnary() || sub.NBinary() != full.NBinary() {
		t.Fatalf("nil lists should select everything")
	}
}

func TestBuildFromNamesEmptyMeansNone(t *testing.T) {
	full := testCalculator(t)
	sub, err := BuildFromNames(full, []string{"PI", "ONE"}, []string{}, []string{})
	if err != nil {
		t.Fatalf("BuildFromNames returned error: %v", err)
	}
	if sub.NConst() != 2 || sub.NUnary() != 0 || sub.NBinary() != 0 {
		t.Fatalf("got const=%d unary=%d binary=%d, want 2/0/0", sub.NConst(), sub.NUnary(), sub.NBinary())
	}
	if sub.Const(0).Name != "PI" || sub.Const(1).Name != "ONE" {
		t.Fatalf("selection should preserve caller order, got %s, %s", sub.Const(0).Name, sub.Const(1).Name)
	}
}

func TestBuildFromNamesSkipsUnknown(t *testing.T) {
	full := testCalculator(t)
	sub, err := BuildFromNames(full, []string{"PI", "BOGUS", "ONE"}, nil, nil)
	if err != nil {
		t.Fatalf("BuildFromNames returned error: %v", err)
	}
	if sub.NConst() != 2 {
		t.Fatalf("unknown names should be silently skipped, got NConst=%d", sub.NConst())
	}
}

func TestBuildFromNamesRequiresBase(t *testing.T) {
	_, err := BuildFromNames(nil, nil, nil, nil)
	if err != ErrNoBaseCalculator {
		t.Fatalf("BuildFromNames(nil, ...) error = %v, want ErrNoBaseCalculator", err)
	}
}
