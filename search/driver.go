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
	"sync"
	"time"

	"github.com/pkg/errors"

	"github.com/VA00/ConstantRecognition/calc"
	"github.com/VA00/ConstantRecognition/numeric"
	"github.com/VA00/ConstantRecognition/rpn"
)

// epsMax is the largest error treated as an "exact" match: 16 machine
// epsilons (16 * 2^-52).
const epsMax = 16 * 2.220446049250313e-16

// functionMatchThreshold is the aggregate error below which function-mode
// search declares success.
const functionMatchThreshold = 1e-12

// compressionStopThreshold is the minimum compression ratio the
// tolerance-based stop rule requires (spec.md's hand-tuned 1.05).
const compressionStopThreshold = 1.05

// earlyAbortMinK, earlyAbortVisited and earlyAbortValid parameterize the
// early-abort heuristic: a worker whose shard at K > earlyAbortMinK has
// visited more than earlyAbortVisited candidates but found
// earlyAbortValid or fewer valid skeletons was handed a pathological
// (near-empty) shard and is not worth continuing.
const (
	earlyAbortMinK   = 4
	earlyAbortVisited = 250
	earlyAbortValid   = 12
)

// Driver runs one worker's share of a search: a single (cpuID, ncpus)
// shard, iterated sequentially and synchronously with no suspension
// points, exactly as spec.md §5 requires.
type Driver struct {
	Mode      Mode
	Data      []DataPoint
	MinK      int
	MaxK      int
	CPUID     int
	Ncpus     int
	Calc      *calc.Calculator
	Metric    numeric.Metric
	Compare   numeric.CompareMode
	NumToFind int // batch mode only; <=0 means "find all"

	// StopRequested, when non-nil, is polled once per skeleton; if it
	// returns true the driver halts as if the shard had been exhausted.
	// This is the cooperative cancellation hook spec.md §5 describes: an
	// optional pre-iteration check on a caller-provided predicate, not a
	// dictated implementation.
	StopRequested func() bool

	// ProgressPath and ProgressInterval, when both set, make Run log a
	// CSV counters snapshot on this schedule for the run's duration; see
	// ProgressLogger.
	ProgressPath     string
	ProgressInterval time.Duration

	progressMu       sync.Mutex
	progressSnapshot Counters
}

// Snapshot returns the most recently published Counters reading, safe to
// call from a goroutine other than the one running Run.
func (d *Driver) Snapshot() Counters {
	d.progressMu.Lock()
	defer d.progressMu.Unlock()
	return d.progressSnapshot
}

func (d *Driver) publish(c Counters) {
	d.progressMu.Lock()
	d.progressSnapshot = c
	d.progressMu.Unlock()
}

// ErrInvalidParameters is the cause wrapped by validation failures. Run
// does not return it as an error: it returns a Result with a FAILURE
// summary whose Diagnostic holds the wrapped message, and a nil error.
var ErrInvalidParameters = errors.New("search: invalid input parameters")

// Run executes this worker's shard across [MinK, MaxK], returning a
// Result whose Records stream every INTERMEDIATE/K_BEST/SUCCESS/BEST
// improvement in deterministic enumeration order, and whose Summary
// classifies how the search terminated.
func (d *Driver) Run(ctx context.Context) (*Result, error) {
	if err := d.validate(); err != nil {
		return &Result{
			Header:     d.header(),
			Summary:    Summary{Result: Failure},
			Diagnostic: err.Error(),
		}, nil
	}

	run := &runState{
		driver:  d,
		targets: make([]TargetState, len(d.Data)),
	}
	for i := range run.targets {
		run.targets[i] = newTargetState()
	}
	run.funcBest = newTargetState()

	effectiveNum := d.NumToFind
	if effectiveNum <= 0 {
		effectiveNum = len(d.Data)
	}
	if d.Mode == ModeFunction {
		effectiveNum = 1
	}
	run.numToFind = effectiveNum

	if d.ProgressPath != "" && d.ProgressInterval > 0 {
		progressCtx, stopProgress := context.WithCancel(ctx)
		defer stopProgress()
		go ProgressLogger(progressCtx, d.ProgressPath, d.ProgressInterval, d.Snapshot)
	}

	aborted := run.search(ctx)

	result := &Result{Header: d.header()}
	result.Records = run.records
	result.Summary = run.summarize(aborted)
	return result, nil
}

func (d *Driver) validate() error {
	if d.Calc == nil || d.Calc.NConst() == 0 {
		return errors.Wrap(ErrInvalidParameters, "calculator must have at least one constant")
	}
	if d.MinK < 1 || d.MinK > d.MaxK || d.MaxK > rpn.MaxCodeLength {
		return errors.Wrapf(ErrInvalidParameters, "k_min=%d k_max=%d out of range [1,%d]", d.MinK, d.MaxK, rpn.MaxCodeLength)
	}
	if d.Ncpus < 1 || d.CPUID < 0 || d.CPUID >= d.Ncpus {
		return errors.Wrapf(ErrInvalidParameters, "cpu_id=%d ncpus=%d out of range", d.CPUID, d.Ncpus)
	}
	if len(d.Data) == 0 {
		return errors.Wrap(ErrInvalidParameters, "data must not be empty")
	}
	return nil
}

func (d *Driver) header() Header {
	n, u, b := 0, 0, 0
	if d.Calc != nil {
		n, u, b = d.Calc.NConst(), d.Calc.NUnary(), d.Calc.NBinary()
	}
	var target, delta float64
	if len(d.Data) > 0 {
		target, delta = d.Data[0].Y, d.Data[0].DY
	}
	numToFind := d.NumToFind
	if numToFind <= 0 {
		numToFind = len(d.Data)
	}
	if d.Mode == ModeFunction {
		numToFind = 1
	}
	return Header{
		Mode:      d.Mode,
		Metric:    d.Metric,
		Compare:   d.Compare,
		NData:     len(d.Data),
		Target:    target,
		Delta:     delta,
		NumToFind: numToFind,
		CPUID:     d.CPUID,
		Ncpus:     d.Ncpus,
		MinK:      d.MinK,
		MaxK:      d.MaxK,
		NConst:    n,
		NUnary:    u,
		NBinary:   b,
		NTotal:    n + u + b,
	}
}

// runState is the per-run mutable scratch the original C core kept in its
// SearchState struct: counters, per-target best state, and the growing
// record log. It is never shared between workers.
type runState struct {
	driver    *Driver
	targets   []TargetState
	funcBest  TargetState
	numFound  int
	numToFind int
	stop      bool
	records   []Record
	counters  Counters
	stack     rpn.Stack
}

func (r *runState) search(ctx context.Context) bool {
	d := r.driver
	for k := d.MinK; k <= d.MaxK; k++ {
		n := rpn.TotalCandidates(k)
		shard := ShardFor(n, d.Ncpus, d.CPUID)

		skeleton := make(rpn.Skeleton, k)
		rpn.IndexToSkeleton(shard.Start, skeleton)
		for t := shard.Start; t < shard.End; t++ {
			if ctx.Err() != nil || (d.StopRequested != nil && d.StopRequested()) {
				r.stop = true
				break
			}
			r.counters.SkeletonsVisited++
			if rpn.Valid(skeleton) {
				r.counters.SkeletonsValid++
				r.visitSkeleton(skeleton, k)
			}
			if r.counters.SkeletonsVisited%4096 == 0 {
				d.publish(r.counters)
			}
			if r.stop {
				break
			}
			if t+1 < shard.End {
				rpn.Increment(skeleton)
			}
		}

		if r.stop {
			return false
		}

		if d.Mode != ModeFunction {
			r.emitKBest(k)
		}

		if k > earlyAbortMinK && r.counters.SkeletonsVisited > earlyAbortVisited && r.counters.SkeletonsValid <= earlyAbortValid {
			d.publish(r.counters)
			return true // aborted
		}
	}
	d.publish(r.counters)
	return false
}

func (r *runState) visitSkeleton(skeleton rpn.Skeleton, k int) {
	d := r.driver
	mode := rpn.ModeValue
	if d.Mode == ModeFunction {
		mode = rpn.ModeFunction
	}
	gen := rpn.NewGenerator(skeleton, d.Calc, mode)
	gen.Each(func(a rpn.Assignment) bool {
		r.counters.AssignmentsEvaluated++
		if d.Mode == ModeFunction {
			return r.evaluateFunction(skeleton, a, k)
		}
		return r.evaluateConstantOrBatch(skeleton, a, k)
	})
}

func (r *runState) evaluateFunction(skeleton rpn.Skeleton, a rpn.Assignment, k int) bool {
	d := r.driver
	computed := make([]float64, len(d.Data))
	target := make([]float64, len(d.Data))
	for i, p := range d.Data {
		computed[i] = rpn.Evaluate(&r.stack, skeleton, a, d.Calc, rpn.ModeFunction, p.X)
		target[i] = p.Y
	}
	err := numeric.Aggregate(computed, target, d.Metric)

	if !d.Compare.Better(err, r.funcBest.BestErr) {
		return true
	}
	r.funcBest.BestErr = err
	r.funcBest.BestK = k
	r.funcBest.BestValue = computed[0]
	r.funcBest.BestSkeleton = append(rpn.Skeleton(nil), skeleton...)
	r.funcBest.BestAssignment = append(rpn.Assignment(nil), a...)

	r.records = append(r.records, Record{
		RPN:  rpn.Format(skeleton, a, d.Calc, rpn.ModeFunction),
		Err:  err,
		K:    k,
		Kind: Intermediate,
		CPUID: d.CPUID,
	})

	if err < functionMatchThreshold {
		r.numFound = 1
		r.stop = true
		return false
	}
	return true
}

func (r *runState) evaluateConstantOrBatch(skeleton rpn.Skeleton, a rpn.Assignment, k int) bool {
	d := r.driver
	computed := rpn.Evaluate(&r.stack, skeleton, a, d.Calc, rpn.ModeValue, 0)
	if math.IsNaN(computed) || math.IsInf(computed, 0) {
		return true
	}

	for i := range r.targets {
		t := &r.targets[i]
		if t.Found {
			continue
		}
		target := d.Data[i].Y
		delta := d.Data[i].DY
		err := numeric.SingleError(computed, target, d.Metric)

		if d.Compare.Better(err, t.BestErr) {
			t.BestErr = err
			t.BestK = k
			t.BestValue = computed
			t.BestSkeleton = append(rpn.Skeleton(nil), skeleton...)
			t.BestAssignment = append(rpn.Assignment(nil), a...)

			r.records = append(r.records, Record{
				RPN:             rpn.Format(skeleton, a, d.Calc, rpn.ModeValue),
				Err:             err,
				K:               k,
				Kind:            Intermediate,
				CPUID:           d.CPUID,
				HammingDistance: numeric.HammingDistance(target, computed),
			})
		}

		if isExactMatch(err, computed, target, delta, k, d.Calc.NTotal()) {
			t.Found = true
			r.numFound++

			if len(d.Data) > 1 {
				r.records = append(r.records, Record{
					RPN:             rpn.Format(skeleton, a, d.Calc, rpn.ModeValue),
					Err:             err,
					K:               k,
					Kind:            RecordSuccess,
					CPUID:           d.CPUID,
					HammingDistance: numeric.HammingDistance(target, computed),
					TargetID:        d.Data[i].X,
					HasTargetID:     true,
					Target:          target,
					HasTarget:       true,
				})
			}

			if r.numToFind > 0 && r.numFound >= r.numToFind {
				r.stop = true
				return false
			}
			break // one formula matches one target; lets the same value be found by multiple formulas
		}
	}
	return true
}

// isExactMatch implements spec.md §4.6's stop rule: an ULP-scale exact
// match, or a tolerance-and-compression match when the caller declared an
// uncertainty.
func isExactMatch(err, computed, target, delta float64, k, nTotal int) bool {
	if err <= epsMax {
		return true
	}
	if delta > 0 {
		compression := numeric.CompressionRatio(err, target, k, nTotal)
		if err == 0 {
			compression = 10.0 // an exact value trivially clears the bar
		}
		if math.Abs(computed-target) <= 2.0*delta && compression >= compressionStopThreshold {
			return true
		}
	}
	return false
}

func (r *runState) emitKBest(k int) {
	d := r.driver
	for i := range r.targets {
		t := &r.targets[i]
		if t.Found || t.BestK == 0 {
			continue
		}
		r.records = append(r.records, Record{
			RPN:             rpn.Format(t.BestSkeleton, t.BestAssignment, d.Calc, rpn.ModeValue),
			Err:             t.BestErr,
			K:               t.BestK,
			Kind:            KBest,
			CPUID:           d.CPUID,
			HammingDistance: numeric.HammingDistance(d.Data[i].Y, t.BestValue),
		})
	}
}

func (r *runState) summarize(aborted bool) Summary {
	d := r.driver
	if d.Mode == ModeFunction {
		resultType := Failure
		if r.funcBest.BestErr < functionMatchThreshold {
			resultType = Success
		}
		if aborted {
			resultType = Aborted
		}
		return Summary{
			Result:   resultType,
			RPN:      rpn.Format(r.funcBest.BestSkeleton, r.funcBest.BestAssignment, d.Calc, rpn.ModeFunction),
			Err:      r.funcBest.BestErr,
			K:        r.funcBest.BestK,
			NumFound: r.numFound,
			Counters: r.counters,
		}
	}

	notFound := 0
	for i := range r.targets {
		if !r.targets[i].Found {
			notFound++
			if len(d.Data) > 1 {
				t := &r.targets[i]
				r.records = append(r.records, Record{
					RPN:             rpn.Format(t.BestSkeleton, t.BestAssignment, d.Calc, rpn.ModeValue),
					Err:             t.BestErr,
					K:               t.BestK,
					Kind:            Best,
					CPUID:           d.CPUID,
					HammingDistance: numeric.HammingDistance(d.Data[i].Y, t.BestValue),
					TargetID:        d.Data[i].X,
					HasTargetID:     true,
					Target:          d.Data[i].Y,
					HasTarget:       true,
				})
			}
		}
	}

	first := &r.targets[0]
	compression := numeric.CompressionRatio(first.BestErr, d.Data[0].Y, first.BestK, d.Calc.NTotal())

	resultType := Failure
	switch {
	case r.numFound == len(d.Data):
		resultType = Success
	case r.numFound > 0:
		resultType = Partial
	}
	if aborted {
		resultType = Aborted
	}

	if len(d.Data) == 1 && resultType != Success {
		kind := RecordFailure
		if resultType == Aborted {
			kind = RecordAborted
		}
		r.records = append(r.records, Record{
			RPN:             rpn.Format(first.BestSkeleton, first.BestAssignment, d.Calc, rpn.ModeValue),
			Err:             first.BestErr,
			K:               first.BestK,
			Kind:            kind,
			CPUID:           d.CPUID,
			HammingDistance: numeric.HammingDistance(d.Data[0].Y, first.BestValue),
		})
	}

	return Summary{
		Result:           resultType,
		RPN:              rpn.Format(first.BestSkeleton, first.BestAssignment, d.Calc, rpn.ModeValue),
		Err:              first.BestErr,
		InputAbsErr:      d.Data[0].DY,
		CompressionRatio: compression,
		K:                first.BestK,
		HammingDistance:  numeric.HammingDistance(d.Data[0].Y, first.BestValue),
		NumFound:         r.numFound,
		NumNotFound:      notFound,
		Counters:         r.counters,
	}
}
