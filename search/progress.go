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
	"encoding/csv"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"
)

// CountersSnapshot reports a point-in-time Counters reading; the method
// value of (*Driver).Snapshot is one.
type CountersSnapshot func() Counters

// ProgressLogger periodically appends a CSV row of search counters to
// path, one file per day (path is run through time.Now().Format, so
// "progress-20060102.csv" rotates daily). It stops when ctx is
// cancelled. Pass path="" or interval<=0 to disable.
func ProgressLogger(ctx context.Context, path string, interval time.Duration, snapshot CountersSnapshot) {
	if path == "" || interval <= 0 {
		return
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			logCountersRow(path, snapshot())
		}
	}
}

func logCountersRow(path string, c Counters) {
	dir, file := filepath.Split(path)
	f, err := os.OpenFile(dir+time.Now().Format(file), os.O_RDWR|os.O_CREATE|os.O_APPEND, 0666)
	if err != nil {
		log.Println(err)
		return
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if stat, err := f.Stat(); err == nil && stat.Size() == 0 {
		if err := w.Write([]string{"unix", "skeletons_visited", "skeletons_valid", "assignments_evaluated"}); err != nil {
			log.Println(err)
		}
	}
	row := []string{
		fmt.Sprint(time.Now().Unix()),
		fmt.Sprint(c.SkeletonsVisited),
		fmt.Sprint(c.SkeletonsValid),
		fmt.Sprint(c.AssignmentsEvaluated),
	}
	if err := w.Write(row); err != nil {
		log.Println(err)
	}
	w.Flush()
}
