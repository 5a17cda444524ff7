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

package numeric

import (
	"math/bits"

	"github.com/klauspost/cpuid/v2"
)

// HasFastPopcount reports whether the running CPU exposes a hardware
// POPCNT instruction. Mirrors the probe-then-branch pattern the teacher
// uses to pick AVX2 code paths for its XOR/crypt routines: we don't assume
// the toolchain always lowers bits.OnesCount64 to a single instruction,
// we ask first.
func HasFastPopcount() bool {
	return cpuid.CPU.Supports(cpuid.POPCNT)
}

// popcount64 counts set bits in x. On CPUs without hardware POPCNT it
// falls back to the portable software implementation, the same
// SWAR (SIMD-within-a-register) trick the original C source used when
// __builtin_popcountll wasn't available.
func popcount64(x uint64) int {
	if HasFastPopcount() {
		return bits.OnesCount64(x)
	}
	return softwarePopcount64(x)
}

func softwarePopcount64(x uint64) int {
	x = x - ((x >> 1) & 0x5555555555555555)
	x = (x & 0x3333333333333333) + ((x >> 2) & 0x3333333333333333)
	x = (x + (x >> 4)) & 0x0f0f0f0f0f0f0f0f
	return int((x * 0x0101010101010101) >> 56)
}
