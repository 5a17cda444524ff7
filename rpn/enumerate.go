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

// TotalCandidates returns 3^k, the number of ternary strings of length k
// (valid or not) — the candidate space a worker's shard is carved out of.
func TotalCandidates(k int) uint64 {
	n := uint64(1)
	for i := 0; i < k; i++ {
		n *= 3
	}
	return n
}

// IndexToSkeleton decodes t as k base-3 digits, most-significant first,
// into a raw (possibly invalid) skeleton buffer. out must have length k;
// this lets callers reuse one scratch buffer across an enumeration instead
// of allocating per candidate.
func IndexToSkeleton(t uint64, out Skeleton) {
	k := len(out)
	for i := k - 1; i >= 0; i-- {
		out[i] = Symbol(t % 3)
		t /= 3
	}
}

// Increment advances a raw ternary buffer to its successor in the
// canonical order (base-3 increment with carry from the least significant
// digit), the same traversal int_to_ternary/ternary_increment perform in
// the original C core. It returns false on overflow past the last
// candidate (3^k - 1 -> 0...0), which callers iterating a bounded range
// never observe.
func Increment(s Skeleton) bool {
	for i := len(s) - 1; i >= 0; i-- {
		s[i]++
		if s[i] < 3 {
			return true
		}
		s[i] = 0
	}
	return false
}

// Enumerate calls yield once for every valid skeleton of length k, in
// canonical (lexicographic base-3) order, stopping early if yield returns
// false. K=0 yields nothing; the sole K=1 skeleton is {SymConst}.
func Enumerate(k int, yield func(Skeleton) bool) {
	EnumerateRange(k, 0, TotalCandidates(k), yield)
}

// EnumerateRange is Enumerate restricted to ternary indices [start, end),
// the shape a worker shard (see package search) iterates. The callback
// receives a scratch buffer that is reused and mutated between calls;
// callers that need to retain a skeleton past the callback must copy it.
func EnumerateRange(k int, start, end uint64, yield func(Skeleton) bool) {
	if k <= 0 || start >= end {
		return
	}
	buf := make(Skeleton, k)
	IndexToSkeleton(start, buf)
	for t := start; t < end; t++ {
		if Valid(buf) {
			if !yield(buf) {
				return
			}
		}
		if t+1 < end {
			Increment(buf)
		}
	}
}
