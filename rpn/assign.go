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

import "github.com/VA00/ConstantRecognition/calc"

// Generator walks every assignment of a fixed skeleton depth-first,
// position by position, in order of increasing operator index — so the
// first assignment a caller's callback accepts for a given skeleton is
// deterministic and reproducible across runs.
type Generator struct {
	skeleton Skeleton
	calc     *calc.Calculator
	mode     Mode
	indices  Assignment
}

// NewGenerator prepares a Generator over skeleton s for calculator c. The
// returned Generator reuses one Assignment buffer across calls to Each;
// callers that retain an assignment past the yield callback must copy it.
func NewGenerator(s Skeleton, c *calc.Calculator, mode Mode) *Generator {
	return &Generator{
		skeleton: s,
		calc:     c,
		mode:     mode,
		indices:  make(Assignment, len(s)),
	}
}

// Each visits every assignment in the Cartesian product of per-slot option
// counts. In ModeFunction, an assignment is only passed to yield if it
// binds the free variable at least once (contains_variable in the
// original core); assignments that never touch x are enumerated but
// contribute nothing, matching spec.md's "function-mode relevance" rule.
// Returning false from yield stops the walk early.
func (g *Generator) Each(yield func(Assignment) bool) bool {
	return g.recurse(0, false, yield)
}

func (g *Generator) recurse(pos int, sawVariable bool, yield func(Assignment) bool) bool {
	if pos == len(g.skeleton) {
		if g.mode == ModeFunction && !sawVariable {
			return true
		}
		return yield(g.indices)
	}

	n := g.optionsAt(pos)
	for i := 0; i < n; i++ {
		g.indices[pos] = i
		boundVariable := sawVariable || (g.mode == ModeFunction && g.skeleton[pos] == SymConst && i == 0)
		if !g.recurse(pos+1, boundVariable, yield) {
			return false
		}
	}
	return true
}

func (g *Generator) optionsAt(pos int) int {
	switch g.skeleton[pos] {
	case SymConst:
		if g.mode == ModeFunction {
			return g.calc.NConst() + 1
		}
		return g.calc.NConst()
	case SymUnary:
		return g.calc.NUnary()
	case SymBinary:
		return g.calc.NBinary()
	}
	return 0
}
