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
	"strings"

	"github.com/VA00/ConstantRecognition/calc"
)

// Format renders skeleton s with assignment a as a comma-separated list of
// operator names, e.g. "PI, SQR". In ModeFunction, a constant slot bound
// to the free variable renders as "x".
func Format(s Skeleton, a Assignment, c *calc.Calculator, mode Mode) string {
	var b strings.Builder
	for i, sym := range s {
		if i > 0 {
			b.WriteString(", ")
		}
		switch sym {
		case SymConst:
			if mode == ModeFunction && a[i] == 0 {
				b.WriteByte('x')
				continue
			}
			idx := a[i]
			if mode == ModeFunction {
				idx--
			}
			b.WriteString(c.Const(idx).Name)
		case SymUnary:
			b.WriteString(c.Unary(a[i]).Name)
		case SymBinary:
			b.WriteString(c.Binary(a[i]).Name)
		}
	}
	return b.String()
}
