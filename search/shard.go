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

// Package search implements the outer search driver: scoring, per-target
// best-state tracking, deterministic worker sharding, the K-loop state
// machine, and the result-stream formatter.
package search

// Shard gives the half-open ternary-index range [Start, End) a worker
// with index W of Ncpus owns at a given K, per spec.md's load-balanced
// near-equal partition. The union across W in [0, Ncpus) covers
// [0, N) exactly and the shards are pairwise disjoint.
type Shard struct {
	Start, End uint64
}

// ShardFor computes the shard of the candidate space [0, n) belonging to
// worker w of ncpus workers.
//
//	chunk   = ceil(n / ncpus)
//	start_w = w*(n/ncpus) + min(w, n mod ncpus)
//	end_w   = start_w + chunk'
//
// where chunk' is (n/ncpus) plus one more for the first (n mod ncpus)
// workers, so the larger remainder slices land on the low-numbered
// workers rather than all on the last one.
func ShardFor(n uint64, ncpus, w int) Shard {
	if ncpus <= 0 {
		return Shard{0, n}
	}
	base := n / uint64(ncpus)
	rem := n % uint64(ncpus)
	start := uint64(w)*base + uint64(minInt(w, int(rem)))
	chunk := base
	if uint64(w) < rem {
		chunk++
	}
	return Shard{Start: start, End: start + chunk}
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
