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
	"github.com/pkg/errors"
)

// ErrNoBaseCalculator is returned by BuildFromNames when the caller asks
// for a sub-calculator but supplies no full calculator to draw from.
var ErrNoBaseCalculator = errors.New("calc: BuildFromNames requires a base calculator")

// BuildFromNames constructs a sub-calculator of full by selecting entries
// from three optional comma-separated name lists.
//
// For each of consts, unaries, binarys:
//   - nil means "use every entry of full, in full's own order"
//   - a non-nil but empty slice means "this category is empty"
//   - otherwise, entries are selected in the order names first appear in
//     the list; unknown names are silently skipped (lenient parsing, the
//     same policy the source's WASM string-based operator selection uses)
func BuildFromNames(full *Calculator, consts, unaries, binarys []string) (*Calculator, error) {
	if full == nil {
		return nil, ErrNoBaseCalculator
	}

	selectedConsts := selectConsts(full, consts)
	selectedUnaries := selectUnaries(full, unaries)
	selectedBinarys := selectBinarys(full, binarys)

	return New(selectedConsts, selectedUnaries, selectedBinarys)
}

func selectConsts(full *Calculator, names []string) []ConstOp {
	if names == nil {
		return append([]ConstOp(nil), full.consts...)
	}
	out := make([]ConstOp, 0, len(names))
	for _, name := range names {
		if i, ok := full.LookupConst(name); ok {
			out = append(out, full.consts[i])
		}
	}
	return out
}

func selectUnaries(full *Calculator, names []string) []UnaryOp {
	if names == nil {
		return append([]UnaryOp(nil), full.unaries...)
	}
	out := make([]UnaryOp, 0, len(names))
	for _, name := range names {
		if i, ok := full.LookupUnary(name); ok {
			out = append(out, full.unaries[i])
		}
	}
	return out
}

func selectBinarys(full *Calculator, names []string) []BinaryOp {
	if names == nil {
		return append([]BinaryOp(nil), full.binarys...)
	}
	out := make([]BinaryOp, 0, len(names))
	for _, name := range names {
		if i, ok := full.LookupBinary(name); ok {
			out = append(out, full.binarys[i])
		}
	}
	return out
}
