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

	"golang.org/x/sync/errgroup"

	"github.com/VA00/ConstantRecognition/calc"
	"github.com/VA00/ConstantRecognition/numeric"
)

// Plan is the shared configuration every worker's Driver is built from;
// only CPUID differs between workers in a RunWorkers fan-out.
type Plan struct {
	Mode      Mode
	Data      []DataPoint
	MinK, MaxK int
	Calc      *calc.Calculator
	Metric    numeric.Metric
	Compare   numeric.CompareMode
	NumToFind int
	Ncpus     int
}

// RunWorkers launches one Driver per CPU id in [0, Ncpus), each running
// its own shard of the same search concurrently, and collects every
// worker's Result in CPU-id order. It mirrors vsearch_batch's
// process-per-CPU model with goroutines instead of forked processes:
// cancelling ctx, or one worker returning a hard error, stops every
// sibling worker at its next per-skeleton poll via errgroup's shared
// context.
func RunWorkers(ctx context.Context, plan Plan) ([]*Result, error) {
	results := make([]*Result, plan.Ncpus)
	g, gctx := errgroup.WithContext(ctx)
	for w := 0; w < plan.Ncpus; w++ {
		w := w
		g.Go(func() error {
			d := &Driver{
				Mode:      plan.Mode,
				Data:      plan.Data,
				MinK:      plan.MinK,
				MaxK:      plan.MaxK,
				CPUID:     w,
				Ncpus:     plan.Ncpus,
				Calc:      plan.Calc,
				Metric:    plan.Metric,
				Compare:   plan.Compare,
				NumToFind: plan.NumToFind,
			}
			res, err := d.Run(gctx)
			if err != nil {
				return err
			}
			results[w] = res
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

// MergeBest folds per-worker results for constant/batch mode into the
// single lowest-error Summary across all workers, preferring any SUCCESS
// summary over a non-successful one, the reduction a batch
// caller performs after every worker has reported in (vsearch_batch.c
// picks the minimum-error RPN across its forked children's stdout the
// same way).
func MergeBest(results []*Result) Summary {
	var best Summary
	haveBest := false
	for _, r := range results {
		if r == nil {
			continue
		}
		if !haveBest {
			best = r.Summary
			haveBest = true
			continue
		}
		if r.Summary.Result == Success && best.Result != Success {
			best = r.Summary
			continue
		}
		if (r.Summary.Result == Success) == (best.Result == Success) && r.Summary.Err < best.Err {
			best = r.Summary
		}
	}
	return best
}
