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
	"encoding/json"
	"io"

	"github.com/pkg/errors"
)

// wireHeader, wireRecord and wireSummary are the JSON-on-the-wire shapes
// of Header, Record and Summary. They exist separately from the plain Go
// structs so the stream's field names and omitted-when-absent target
// fields are independent of the in-memory representation.
type wireHeader struct {
	Mode      string  `json:"mode"`
	Metric    string  `json:"metric"`
	Compare   string  `json:"compare"`
	NData     int     `json:"n_data"`
	Target    float64 `json:"target,omitempty"`
	Delta     float64 `json:"delta,omitempty"`
	NumToFind int     `json:"num_to_find"`
	CPUID     int     `json:"cpu_id"`
	Ncpus     int     `json:"ncpus"`
	MinK      int     `json:"k_min"`
	MaxK      int     `json:"k_max"`
	NConst    int     `json:"n_const"`
	NUnary    int     `json:"n_unary"`
	NBinary   int     `json:"n_binary"`
	NTotal    int     `json:"n_total"`
}

type wireRecord struct {
	Kind            string   `json:"kind"`
	RPN             string   `json:"rpn"`
	Err             float64  `json:"err"`
	K               int      `json:"k"`
	CPUID           int      `json:"cpu_id"`
	HammingDistance int      `json:"hamming_distance"`
	TargetID        *float64 `json:"target_id,omitempty"`
	Target          *float64 `json:"target,omitempty"`
}

type wireCounters struct {
	SkeletonsVisited     uint64 `json:"skeletons_visited"`
	SkeletonsValid       uint64 `json:"skeletons_valid"`
	AssignmentsEvaluated uint64 `json:"assignments_evaluated"`
}

type wireSummary struct {
	Result           string       `json:"result"`
	RPN              string       `json:"rpn,omitempty"`
	Err              float64      `json:"err"`
	InputAbsErr      float64      `json:"input_abs_err,omitempty"`
	CompressionRatio float64      `json:"compression_ratio,omitempty"`
	K                int          `json:"k,omitempty"`
	HammingDistance  int          `json:"hamming_distance,omitempty"`
	NumFound         int          `json:"num_found"`
	NumNotFound      int          `json:"num_not_found,omitempty"`
	Counters         wireCounters `json:"counters"`
}

func toWireHeader(h Header) wireHeader {
	return wireHeader{
		Mode:      h.Mode.String(),
		Metric:    h.Metric.String(),
		Compare:   h.Compare.String(),
		NData:     h.NData,
		Target:    h.Target,
		Delta:     h.Delta,
		NumToFind: h.NumToFind,
		CPUID:     h.CPUID,
		Ncpus:     h.Ncpus,
		MinK:      h.MinK,
		MaxK:      h.MaxK,
		NConst:    h.NConst,
		NUnary:    h.NUnary,
		NBinary:   h.NBinary,
		NTotal:    h.NTotal,
	}
}

func toWireRecord(r Record) wireRecord {
	wr := wireRecord{
		Kind:            r.Kind.String(),
		RPN:             r.RPN,
		Err:             r.Err,
		K:               r.K,
		CPUID:           r.CPUID,
		HammingDistance: r.HammingDistance,
	}
	if r.HasTargetID {
		id := r.TargetID
		wr.TargetID = &id
	}
	if r.HasTarget {
		t := r.Target
		wr.Target = &t
	}
	return wr
}

func toWireSummary(s Summary) wireSummary {
	return wireSummary{
		Result:           s.Result.String(),
		RPN:              s.RPN,
		Err:              s.Err,
		InputAbsErr:      s.InputAbsErr,
		CompressionRatio: s.CompressionRatio,
		K:                s.K,
		HammingDistance:  s.HammingDistance,
		NumFound:         s.NumFound,
		NumNotFound:      s.NumNotFound,
		Counters: wireCounters{
			SkeletonsVisited:     s.Counters.SkeletonsVisited,
			SkeletonsValid:       s.Counters.SkeletonsValid,
			AssignmentsEvaluated: s.Counters.AssignmentsEvaluated,
		},
	}
}

// Stream writes a Result to w as the line-delimited JSON document spec.md
// §6 describes: one header object, one object per result record in
// enumeration order, and a terminal summary object. Each object is
// written (and flushed, via Encoder's own write) as soon as it is
// available, so a caller tailing the output sees progress rather than
// buffering the whole run.
type Stream struct {
	enc *json.Encoder
}

// NewStream wraps w for streaming result output.
func NewStream(w io.Writer) *Stream {
	return &Stream{enc: json.NewEncoder(w)}
}

// WriteHeader emits the run's configuration as the first line.
func (s *Stream) WriteHeader(h Header) error {
	if err := s.enc.Encode(struct {
		Type   string `json:"type"`
		Header wireHeader `json:"header"`
	}{"header", toWireHeader(h)}); err != nil {
		return errors.Wrap(err, "search: encode header")
	}
	return nil
}

// WriteRecord emits one result-stream record.
func (s *Stream) WriteRecord(r Record) error {
	if err := s.enc.Encode(struct {
		Type   string     `json:"type"`
		Record wireRecord `json:"record"`
	}{"record", toWireRecord(r)}); err != nil {
		return errors.Wrap(err, "search: encode record")
	}
	return nil
}

// WriteSummary emits the terminal summary, the last line of the stream.
func (s *Stream) WriteSummary(summary Summary) error {
	if err := s.enc.Encode(struct {
		Type    string      `json:"type"`
		Summary wireSummary `json:"summary"`
	}{"summary", toWireSummary(summary)}); err != nil {
		return errors.Wrap(err, "search: encode summary")
	}
	return nil
}

// WriteResult emits a complete Result as header, then every record in
// order, then the summary. If writing a record fails, the remaining
// records are dropped but the summary is still attempted, and the record
// error is returned.
func (s *Stream) WriteResult(r *Result) error {
	if err := s.WriteHeader(r.Header); err != nil {
		return err
	}
	for _, rec := range r.Records {
		if err := s.WriteRecord(rec); err != nil {
			s.WriteSummary(r.Summary)
			return err
		}
	}
	return s.WriteSummary(r.Summary)
}
