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
	"testing"

	"github.com/VA00/ConstantRecognition/calc"
)

// motzkin[i] is the Motzkin number M(i), for i=0..12. A skeleton of
// length k has M(k-1) valid forms, so length k is checked against
// motzkin[k-1].
var motzkin = []int{1, 1, 2, 4, 9, 21, 51, 127, 323, 835, 2188, 5798, 15511}

func TestEnumerateMotzkinCounts(t *testing.T) {
	for k := 1; k <= 10; k++ {
		count := 0
		Enumerate(k, func(s Skeleton) bool {
			count++
			if !Valid(s) {
				t.Fatalf("Enumerate yielded invalid skeleton %s", s)
			}
			return true
		})
		want := motzkin[k-1]
		if count != want {
			t.Fatalf("K=%d: got %d valid skeletons, want %d (Motzkin M(%d))", k, count, want, k-1)
		}
	}
}

func TestEnumerateKZeroYieldsNothing(t *testing.T) {
	count := 0
	Enumerate(0, func(Skeleton) bool { count++; return true })
	if count != 0 {
		t.Fatalf("K=0 should yield nothing, got %d", count)
	}
}

func TestEnumerateKOneYieldsOnlyConstant(t *testing.T) {
	var got []Skeleton
	Enumerate(1, func(s Skeleton) bool {
		got = append(got, append(Skeleton(nil), s...))
		return true
	})
	if len(got) != 1 || got[0][0] != SymConst {
		t.Fatalf("K=1 should yield exactly {C}, got %v", got)
	}
}

func TestSkeletonsCannotStartWithUnaryOrBinary(t *testing.T) {
	if Valid(Skeleton{SymUnary}) {
		t.Fatalf("{U} must be invalid (stack underflow)")
	}
	if Valid(Skeleton{SymBinary, SymConst, SymConst}) {
		t.Fatalf("{B,C,C} must be invalid: B needs depth>=2 up front")
	}
}

func TestEnumerateRangeShardsPartitionExactly(t *testing.T) {
	for _, tc := range []struct{ k, ncpus int }{
		{4, 3}, {5, 7}, {6, 4}, {3, 1}, {2, 5},
	} {
		n := TotalCandidates(tc.k)
		seen := make(map[uint64]bool)
		var total uint64
		for w := 0; w < tc.ncpus; w++ {
			start, end := shardBounds(n, tc.ncpus, w)
			total += end - start
			for idx := start; idx < end; idx++ {
				if seen[idx] {
					t.Fatalf("K=%d ncpus=%d: index %d visited twice", tc.k, tc.ncpus, idx)
				}
				seen[idx] = true
			}
		}
		if total != n {
			t.Fatalf("K=%d ncpus=%d: shard union has %d entries, want %d", tc.k, tc.ncpus, total, n)
		}
	}
}

// shardBounds mirrors search.Shard's formula locally so rpn's tests don't
// need to import package search (which itself depends on rpn).
func shardBounds(n uint64, ncpus, w int) (start, end uint64) {
	base := n / uint64(ncpus)
	rem := n % uint64(ncpus)
	start = uint64(w)*base + uint64(min(w, int(rem)))
	chunk := base
	if uint64(w) < rem {
		chunk++
	}
	end = start + chunk
	return
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

func testCalc(t *testing.T) *calc.Calculator {
	t.Helper()
	c, err := calc.New(
		[]calc.ConstOp{{math.Pi, "PI"}, {2.0, "TWO"}},
		[]calc.UnaryOp{{math.Sqrt, "SQRT"}, {func(x float64) float64 { return x * x }, "SQR"}},
		[]calc.BinaryOp{{func(a, b float64) float64 { return a + b }, "PLUS"}},
	)
	if err != nil {
		t.Fatalf("testCalc: %v", err)
	}
	return c
}

func TestEvaluateConstant(t *testing.T) {
	c := testCalc(t)
	s := Skeleton{SymConst, SymUnary}
	a := Assignment{0, 1} // PI, SQR
	var stack Stack
	got := Evaluate(&stack, s, a, c, ModeValue, 0)
	want := math.Pi * math.Pi
	if math.Abs(got-want) > 1e-12 {
		t.Fatalf("Evaluate(PI,SQR) = %v, want %v", got, want)
	}
}

func TestEvaluateUnderflowIsNaN(t *testing.T) {
	c := testCalc(t)
	s := Skeleton{SymConst, SymBinary} // underflow: needs depth 2
	a := Assignment{0, 0}
	var stack Stack
	got := Evaluate(&stack, s, a, c, ModeValue, 0)
	if !math.IsNaN(got) {
		t.Fatalf("Evaluate with stack underflow = %v, want NaN", got)
	}
}

func TestEvaluateBinaryArgumentOrder(t *testing.T) {
	c, err := calc.New(
		[]calc.ConstOp{{3.0, "THREE"}, {2.0, "TWO"}},
		nil,
		[]calc.BinaryOp{{func(b, a float64) float64 { return b - a }, "SUBTRACT"}},
	)
	if err != nil {
		t.Fatalf("calc.New: %v", err)
	}
	// THREE, TWO, SUBTRACT -> push 3, push 2, pop(b=2) pop(a=3) -> func(2,3) = 2-3 = -1
	s := Skeleton{SymConst, SymConst, SymBinary}
	a := Assignment{0, 1, 0}
	var stack Stack
	got := Evaluate(&stack, s, a, c, ModeValue, 0)
	if got != -1.0 {
		t.Fatalf("Evaluate binary order = %v, want -1 (func receives most-recently-pushed first)", got)
	}
}

func TestEvaluateFunctionModeVariable(t *testing.T) {
	c := testCalc(t)
	s := Skeleton{SymConst, SymUnary} // x, SQR
	a := Assignment{0, 1}
	var stack Stack
	got := Evaluate(&stack, s, a, c, ModeFunction, 3.0)
	if got != 9.0 {
		t.Fatalf("Evaluate(x,SQR) at x=3 = %v, want 9", got)
	}
}

func TestEvaluateFunctionModeConstantShift(t *testing.T) {
	c := testCalc(t)
	s := Skeleton{SymConst}
	a := Assignment{1} // index 0 reserved for x, so 1 => const index 0 => PI
	var stack Stack
	got := Evaluate(&stack, s, a, c, ModeFunction, 99.0)
	if math.Abs(got-math.Pi) > 1e-12 {
		t.Fatalf("Evaluate function-mode constant = %v, want PI", got)
	}
}

func TestEvaluateDeterministic(t *testing.T) {
	c := testCalc(t)
	s := Skeleton{SymConst, SymConst, SymBinary}
	a := Assignment{0, 1, 0}
	var s1, s2 Stack
	v1 := Evaluate(&s1, s, a, c, ModeValue, 0)
	v2 := Evaluate(&s2, s, a, c, ModeValue, 0)
	if v1 != v2 {
		t.Fatalf("Evaluate is not deterministic: %v != %v", v1, v2)
	}
}

func TestGeneratorDeterministicFirstResult(t *testing.T) {
	c := testCalc(t)
	s := Skeleton{SymConst, SymConst, SymBinary}
	var first Assignment
	NewGenerator(s, c, ModeValue).Each(func(a Assignment) bool {
		first = append(Assignment(nil), a...)
		return false // stop at the very first
	})
	want := Assignment{0, 0, 0}
	for i := range want {
		if first[i] != want[i] {
			t.Fatalf("first assignment = %v, want %v", first, want)
		}
	}
}

func TestGeneratorFunctionModeSkipsAssignmentsWithoutVariable(t *testing.T) {
	c := testCalc(t)
	s := Skeleton{SymConst}
	var seenVariable, seenPureConst bool
	NewGenerator(s, c, ModeFunction).Each(func(a Assignment) bool {
		if a[0] == 0 {
			seenVariable = true
		} else {
			seenPureConst = true
		}
		return true
	})
	if !seenVariable {
		t.Fatalf("generator never yielded an assignment binding the variable")
	}
	if seenPureConst {
		t.Fatalf("generator yielded a pure-constant assignment in function mode, want only variable-binding ones")
	}
}

func TestFormatRendersVariableAndNames(t *testing.T) {
	c := testCalc(t)
	s := Skeleton{SymConst, SymUnary}
	got := Format(s, Assignment{0, 1}, c, ModeFunction)
	if got != "x, SQR" {
		t.Fatalf("Format = %q, want %q", got, "x, SQR")
	}
	got = Format(s, Assignment{0, 1}, c, ModeValue)
	if got != "PI, SQR" {
		t.Fatalf("Format = %q, want %q", got, "PI, SQR")
	}
}
