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
	"math"

	"github.com/VA00/ConstantRecognition/numeric"
	"github.com/VA00/ConstantRecognition/rpn"
)

// DataPoint is one target sample. For constant recognition X is unused;
// for function recognition X is the independent variable; for batch
// recognition X carries the caller's target_id. DY is the user-declared
// absolute tolerance (0 = unspecified).
type DataPoint struct {
	X, Y, DY float64
}

// Mode selects which of the three entry points' semantics the driver
// runs under.
type Mode int

const (
	ModeConstant Mode = iota
	ModeFunction
	ModeBatch
)

func (m Mode) String() string {
	switch m {
	case ModeFunction:
		return "FUNCTION"
	case ModeBatch:
		return "BATCH"
	default:
		return "CONSTANT"
	}
}

// ResultType classifies how a search terminated.
type ResultType int

const (
	Success ResultType = iota
	Partial
	Failure
	Aborted
)

func (r ResultType) String() string {
	switch r {
	case Success:
		return "SUCCESS"
	case Partial:
		return "PARTIAL"
	case Aborted:
		return "ABORTED"
	default:
		return "FAILURE"
	}
}

// RecordKind tags one entry of the result stream.
type RecordKind int

const (
	Intermediate RecordKind = iota
	KBest
	RecordSuccess
	Best
	RecordAborted
	RecordFailure
)

func (k RecordKind) String() string {
	switch k {
	case KBest:
		return "K_BEST"
	case RecordSuccess:
		return "SUCCESS"
	case Best:
		return "BEST"
	case RecordAborted:
		return "ABORTED"
	case RecordFailure:
		return "FAILURE"
	default:
		return "INTERMEDIATE"
	}
}

// TargetState is the per-target best-known state tracked during a
// constant or batch search.
type TargetState struct {
	BestErr        float64
	BestValue      float64
	BestK          int
	BestSkeleton   rpn.Skeleton
	BestAssignment rpn.Assignment
	Found          bool
}

func newTargetState() TargetState {
	return TargetState{BestErr: math.Inf(1)}
}

// Counters accumulates the three global counters spec.md tracks across a
// search: how many ternary candidates were visited, how many of those
// were syntactically valid RPN, and how many complete assignments were
// evaluated.
type Counters struct {
	SkeletonsVisited     uint64
	SkeletonsValid       uint64
	AssignmentsEvaluated uint64
}

// Record is one result-stream record, written by Stream.WriteRecord.
type Record struct {
	RPN             string
	Err             float64
	K               int
	Kind            RecordKind
	CPUID           int
	HammingDistance int
	TargetID        float64
	HasTargetID     bool
	Target          float64
	HasTarget       bool
}

// Summary is the terminal record closing out a search.
type Summary struct {
	Result           ResultType
	RPN              string
	Err              float64
	InputAbsErr      float64
	CompressionRatio float64
	K                int
	HammingDistance  int
	NumFound         int
	NumNotFound      int
	Counters         Counters
}

// Header captures the run's configuration, echoed back in the result
// stream for reproducibility.
type Header struct {
	Mode      Mode
	Metric    numeric.Metric
	Compare   numeric.CompareMode
	NData     int
	Target    float64
	Delta     float64
	NumToFind int
	CPUID     int
	Ncpus     int
	MinK      int
	MaxK      int
	NConst    int
	NUnary    int
	NBinary   int
	NTotal    int
}

// Result is the complete output of a search: header, ordered result
// records, and a terminal summary.
type Result struct {
	Header     Header
	Records    []Record
	Summary    Summary
	Diagnostic string
}
