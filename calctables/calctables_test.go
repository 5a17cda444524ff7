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

package calctables

import "testing"

func TestCALC4ButtonCount(t *testing.T) {
	c := CALC4()
	if c.NConst() != 13 || c.NUnary() != 18 || c.NBinary() != 5 || c.NTotal() != 36 {
		t.Fatalf("CALC4 = %d/%d/%d (total %d), want 13/18/5 (total 36)",
			c.NConst(), c.NUnary(), c.NBinary(), c.NTotal())
	}
}

func TestExampleButtonCount(t *testing.T) {
	c := Example()
	if c.NTotal() != 11 {
		t.Fatalf("Example.NTotal() = %d, want 11", c.NTotal())
	}
}

func TestCasioHL815LButtonCount(t *testing.T) {
	c := CasioHL815L()
	if c.NConst() != 10 || c.NUnary() != 2 || c.NBinary() != 5 || c.NTotal() != 17 {
		t.Fatalf("CasioHL815L = %d/%d/%d (total %d), want 10/2/5 (total 17)",
			c.NConst(), c.NUnary(), c.NBinary(), c.NTotal())
	}
}

func TestByNameKnownAndUnknown(t *testing.T) {
	for _, name := range []string{"CALC4", "EXAMPLE", "CASIO_HL_815L"} {
		if _, ok := ByName(name); !ok {
			t.Fatalf("ByName(%q) = false, want true", name)
		}
	}
	if _, ok := ByName("NOPE"); ok {
		t.Fatalf("ByName(%q) = true, want false", "NOPE")
	}
}

func TestCasioConcatOperator(t *testing.T) {
	c := CasioHL815L()
	idx, ok := c.LookupBinary("II")
	if !ok {
		t.Fatalf("CasioHL815L has no II operator")
	}
	// concat(9, 9) = 99, called as Func(b=9, a=9) since both operands
	// happen to be equal here.
	got := c.Binary(idx).Func(9.0, 9.0)
	if got != 99.0 {
		t.Fatalf("II(9,9) = %v, want 99", got)
	}
}
