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

package search

import (
	"context"
	"math"
	"strings"
	"testing"

	"github.com/VA00/ConstantRecognition/calctables"
	"github.com/VA00/ConstantRecognition/numeric"
)

// These end-to-end scenarios pin the documented behavior of the search
// driver against the shipped calculators: a regression net over the
// whole pipeline (enumeration, evaluation, scoring, termination
// classification) rather than any one unit.

func runSingle(t *testing.T, d *Driver) *Result {
	t.Helper()
	res, err := d.Run(context.Background())
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	return res
}

// E1: pi^2 should be found exactly via PI, SQR.
func TestE1RecognizesPiSquared(t *testing.T) {
	d := &Driver{
		Mode:  ModeConstant,
		Data:  []DataPoint{{Y: math.Pi * math.Pi}},
		MinK:  1,
		MaxK:  4,
		Ncpus: 1,
		Calc:  calctables.CALC4(),
	}
	res := runSingle(t, d)
	if res.Summary.Result != Success {
		t.Fatalf("E1: result = %v, want SUCCESS", res.Summary.Result)
	}
	if res.Summary.RPN != "PI, SQR" {
		t.Fatalf("E1: RPN = %q, want %q", res.Summary.RPN, "PI, SQR")
	}
}

// E2: the golden ratio is a single CALC4 constant, found at K=1.
func TestE2RecognizesGoldenRatioAtKOne(t *testing.T) {
	d := &Driver{
		Mode:  ModeConstant,
		Data:  []DataPoint{{Y: 1.6180339887498949}},
		MinK:  1,
		MaxK:  3,
		Ncpus: 1,
		Calc:  calctables.CALC4(),
	}
	res := runSingle(t, d)
	if res.Summary.Result != Success {
		t.Fatalf("E2: result = %v, want SUCCESS", res.Summary.Result)
	}
	if res.Summary.K != 1 || !strings.Contains(res.Summary.RPN, "GOLDENRATIO") {
		t.Fatalf("E2: K=%d RPN=%q, want K=1 containing GOLDENRATIO", res.Summary.K, res.Summary.RPN)
	}
}

// E3: a tolerance match on a rounded pi, via the delta/compression stop
// rule rather than an ULP-exact one.
func TestE3RecognizesRoundedPiViaTolerance(t *testing.T) {
	d := &Driver{
		Mode:  ModeConstant,
		Data:  []DataPoint{{Y: 3.1416, DY: 0.0001}},
		MinK:  1,
		MaxK:  4,
		Ncpus: 1,
		Calc:  calctables.CALC4(),
	}
	res := runSingle(t, d)
	if res.Summary.Result != Success {
		t.Fatalf("E3: result = %v, want SUCCESS", res.Summary.Result)
	}
	if res.Summary.RPN != "PI" {
		t.Fatalf("E3: RPN = %q, want %q", res.Summary.RPN, "PI")
	}
}

// E4: y = e^x tabulated at four points should resolve to "x, EXP".
func TestE4RecognizesExpFunction(t *testing.T) {
	data := []DataPoint{
		{X: 0, Y: 1},
		{X: 1, Y: math.E},
		{X: 2, Y: math.E * math.E},
		{X: 3, Y: math.E * math.E * math.E},
	}
	d := &Driver{
		Mode:   ModeFunction,
		Data:   data,
		MinK:   1,
		MaxK:   3,
		Ncpus:  1,
		Calc:   calctables.CALC4(),
		Metric: numeric.MSE,
	}
	res := runSingle(t, d)
	if res.Summary.Result != Success {
		t.Fatalf("E4: result = %v, want SUCCESS", res.Summary.Result)
	}
	if res.Summary.RPN != "x, EXP" {
		t.Fatalf("E4: RPN = %q, want %q", res.Summary.RPN, "x, EXP")
	}
}

// E5: y = x^2 tabulated at five points should resolve to "x, SQR".
func TestE5RecognizesSquareFunction(t *testing.T) {
	data := []DataPoint{
		{X: 0, Y: 0}, {X: 1, Y: 1}, {X: 2, Y: 4}, {X: 3, Y: 9}, {X: 4, Y: 16},
	}
	d := &Driver{
		Mode:   ModeFunction,
		Data:   data,
		MinK:   1,
		MaxK:   3,
		Ncpus:  1,
		Calc:   calctables.CALC4(),
		Metric: numeric.MSE,
	}
	res := runSingle(t, d)
	if res.Summary.Result != Success {
		t.Fatalf("E5: result = %v, want SUCCESS", res.Summary.Result)
	}
	if res.Summary.RPN != "x, SQR" {
		t.Fatalf("E5: RPN = %q, want %q", res.Summary.RPN, "x, SQR")
	}
}

// E6: the fine-structure constant has no short exact CALC4 expression;
// the search should fail but still report its best-found candidate.
func TestE6FineStructureConstantFailsWithBestRecorded(t *testing.T) {
	d := &Driver{
		Mode:  ModeConstant,
		Data:  []DataPoint{{Y: 0.0072973525693}},
		MinK:  1,
		MaxK:  6,
		Ncpus: 1,
		Calc:  calctables.CALC4(),
	}
	res := runSingle(t, d)
	if res.Summary.Result == Success {
		t.Fatalf("E6: result = SUCCESS, want FAILURE (no short exact expression expected)")
	}
	if res.Summary.RPN == "" {
		t.Fatalf("E6: expected a best-found RPN to be reported even on failure")
	}
}

// E7: sqrt(137) needs K=6 on the 17-button office calculator (digit
// concatenation then SQRT); a shallow search misses it, the documented
// "small calculators can miss representable targets" case.
func TestE7ShallowSearchMissesSqrt137OnOfficeCalculator(t *testing.T) {
	d := &Driver{
		Mode:  ModeConstant,
		Data:  []DataPoint{{Y: math.Sqrt(137), DY: 1e-6}},
		MinK:  1,
		MaxK:  4,
		Ncpus: 1,
		Calc:  calctables.CasioHL815L(),
	}
	res := runSingle(t, d)
	if res.Summary.Result == Success {
		t.Fatalf("E7: result = SUCCESS, want FAILURE at this K range (target needs K=6)")
	}
}
