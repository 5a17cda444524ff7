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

// Package numeric provides binary64 error norms and bit-level distance
// metrics used to score candidate RPN expressions against a target value.
package numeric

import (
	"math"
)

// Metric names a comparison between a computed value and a target.
type Metric int

const (
	ABS Metric = iota
	REL
	MSE
	MAE
	MAX
	ULP
	HAMMING
)

var metricNames = [...]string{"ABS", "REL", "MSE", "MAE", "MAX", "ULP", "HAMMING"}

func (m Metric) String() string {
	if m < 0 || int(m) >= len(metricNames) {
		return "UNKNOWN"
	}
	return metricNames[m]
}

// ParseMetric parses the wire name of a Metric, as used by the result
// stream's "metric" field.
func ParseMetric(name string) (Metric, bool) {
	for i, n := range metricNames {
		if n == name {
			return Metric(i), true
		}
	}
	return 0, false
}

// CompareMode controls whether a new score must strictly improve the
// current best (STRICT) or merely tie-or-improve it (EQUAL).
type CompareMode int

const (
	STRICT CompareMode = iota
	EQUAL
)

func (c CompareMode) String() string {
	if c == EQUAL {
		return "EQUAL"
	}
	return "STRICT"
}

// ParseCompareMode parses the wire name of a CompareMode.
func ParseCompareMode(name string) (CompareMode, bool) {
	switch name {
	case "STRICT":
		return STRICT, true
	case "EQUAL":
		return EQUAL, true
	}
	return 0, false
}

// Better reports whether err improves upon best under c.
func (c CompareMode) Better(err, best float64) bool {
	if c == EQUAL {
		return err <= best
	}
	return err < best
}

// AbsError computes |v - t|.
func AbsError(v, t float64) float64 {
	return math.Abs(v - t)
}

// RelError computes |v - t| when t == 0, else |v/t - 1|.
func RelError(v, t float64) float64 {
	if t == 0.0 {
		return math.Abs(v)
	}
	return math.Abs(v/t - 1.0)
}

// SingleError dispatches to the appropriate scalar metric for a single
// computed/target pair. Non-finite computed values map to math.MaxFloat64
// so they never win a comparison. ULP and HAMMING, being discrete bit
// metrics, are defined here on a single pair; MSE/MAE/MAX only make sense
// across a tabulated data set and are computed by Aggregate, so on a
// single pair they reduce to the absolute error.
func SingleError(computed, target float64, metric Metric) float64 {
	if math.IsNaN(computed) || math.IsInf(computed, 0) {
		return math.MaxFloat64
	}
	switch metric {
	case ABS, MSE, MAE, MAX:
		return AbsError(computed, target)
	case REL:
		return RelError(computed, target)
	case ULP:
		return float64(ULPDistance(target, computed))
	case HAMMING:
		return float64(HammingDistance(target, computed))
	default:
		return AbsError(computed, target)
	}
}

// Aggregate reduces a slice of (computed, target) residuals to a single
// error under metric, for function-mode scoring across a tabulated data
// set. Non-finite computed values are penalized rather than excluded, so a
// formula cannot dodge the aggregate by going to infinity off-sample.
func Aggregate(computed, target []float64, metric Metric) float64 {
	if len(computed) == 0 {
		return math.MaxFloat64
	}
	const nonFinitePenalty = 1e10
	var sum, maxErr float64
	for i := range computed {
		c := computed[i]
		if math.IsNaN(c) || math.IsInf(c, 0) {
			sum += nonFinitePenalty
			if nonFinitePenalty > maxErr {
				maxErr = nonFinitePenalty
			}
			continue
		}
		diff := c - target[i]
		abs := math.Abs(diff)
		switch metric {
		case MSE:
			sum += diff * diff
		case MAX:
			if abs > maxErr {
				maxErr = abs
			}
		case REL:
			sum += RelError(c, target[i])
		default: // ABS, MAE, and anything else falls back to mean absolute
			sum += abs
		}
	}
	if metric == MAX {
		return maxErr
	}
	return sum / float64(len(computed))
}

// ULPDistance reports the number of representable binary64 values between
// ref and val, using the signed-integer reinterpretation that preserves
// numeric ordering of finite values. Non-finite inputs return
// math.MaxInt64, the largest representable distance.
func ULPDistance(ref, val float64) int64 {
	if math.IsNaN(ref) || math.IsNaN(val) || math.IsInf(ref, 0) || math.IsInf(val, 0) {
		return math.MaxInt64
	}
	iRef := normalizeOrdering(int64(math.Float64bits(ref)))
	iVal := normalizeOrdering(int64(math.Float64bits(val)))
	diff := iVal - iRef
	if diff < 0 {
		diff = -diff
	}
	return diff
}

// normalizeOrdering remaps the signed two's-complement reinterpretation of
// an IEEE-754 bit pattern so that integer ordering matches numeric
// ordering across the sign boundary.
func normalizeOrdering(i int64) int64 {
	if i < 0 {
		return math.MinInt64 - i
	}
	return i
}

// HammingDistance counts the differing bits between the IEEE-754
// representations of a and b (0-64).
func HammingDistance(a, b float64) int {
	return popcount64(math.Float64bits(a) ^ math.Float64bits(b))
}

// CompressionRatio is the heuristic c = (-log10 e) / (K * log10 nTotal),
// clamped to 0 when e >= 1 or the denominator is non-positive. When e == 0
// the numerator is taken from the target's own decimal digit count, the
// number of significant digits an exact match is worth.
func CompressionRatio(err, target float64, k, nTotal int) float64 {
	denom := float64(k) * math.Log10(float64(nTotal))
	if target == 0.0 {
		return 0.0
	}
	var numerator float64
	if err == 0.0 {
		numerator = math.Floor(math.Log10(math.Abs(target))) + 1.0
	} else {
		if err >= 1.0 {
			return 0.0
		}
		numerator = -math.Log10(err)
	}
	if denom <= 0.0 {
		return 0.0
	}
	return numerator / denom
}
