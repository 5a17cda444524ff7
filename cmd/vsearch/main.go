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

// Command vsearch is the CLI entry point for symbolic constant, function
// and batch recognition, a Go port of vsearch_batch.c's shell-driven
// one-process-per-CPU parallel search.
//
// Usage:
//
//	vsearch <target> <cpu_id> <ncpus> <k_max> [k_min] [delta]
//
// Exit codes:
//
//	0 = SUCCESS (exact match found)
//	1 = otherwise (PARTIAL, FAILURE or ABORTED)
package main

import (
	"bufio"
	"encoding/csv"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/fatih/color"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/VA00/ConstantRecognition/calctables"
	"github.com/VA00/ConstantRecognition/numeric"
	"github.com/VA00/ConstantRecognition/search"
)

// VERSION is injected by buildflags.
var VERSION = "SELFBUILD"

func main() {
	if VERSION == "SELFBUILD" {
		log.SetFlags(log.LstdFlags | log.Lshortfile)
	}

	myApp := cli.NewApp()
	myApp.Name = "vsearch"
	myApp.Usage = "symbolic constant, function and batch recognition"
	myApp.Version = VERSION
	myApp.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "mode",
			Value: "CONSTANT",
			Usage: "CONSTANT, FUNCTION or BATCH",
		},
		cli.IntFlag{
			Name:  "k_min",
			Value: 1,
			Usage: "minimum RPN code length to try",
		},
		cli.StringFlag{
			Name:  "metric",
			Value: "REL",
			Usage: "ABS, REL, MSE, MAE, MAX, ULP or HAMMING",
		},
		cli.StringFlag{
			Name:  "compare",
			Value: "STRICT",
			Usage: "STRICT or EQUAL",
		},
		cli.StringFlag{
			Name:  "calculator",
			Value: "CALC4",
			Usage: "CALC4, EXAMPLE or CASIO_HL_815L",
		},
		cli.StringFlag{
			Name:  "data",
			Value: "",
			Usage: "CSV file of x,y[,dy] samples, required for FUNCTION and BATCH modes",
		},
		cli.IntFlag{
			Name:  "num_to_find",
			Value: 0,
			Usage: "stop after this many BATCH targets are matched, 0 means find all",
		},
		cli.StringFlag{
			Name:  "progress",
			Value: "",
			Usage: "CSV file (name run through Go's time.Format layout, e.g. progress-20060102.csv) to periodically log search counters to, empty disables",
		},
		cli.StringFlag{
			Name:  "c",
			Value: "",
			Usage: "config from JSON file, overrides flags and positional arguments",
		},
	}
	myApp.ArgsUsage = "<target> <cpu_id> <ncpus> <k_max> [k_min] [delta]"
	myApp.Action = run

	myApp.Run(os.Args)
}

func run(c *cli.Context) error {
	cfg, err := buildConfig(c)
	if err != nil {
		color.Red("%+v", err)
		return cli.NewExitError("", 1)
	}

	cal, ok := calctables.ByName(cfg.Calculator)
	if !ok {
		color.Red("unknown calculator %q", cfg.Calculator)
		return cli.NewExitError("", 1)
	}
	metric, ok := numeric.ParseMetric(cfg.Metric)
	if !ok {
		color.Red("unknown metric %q", cfg.Metric)
		return cli.NewExitError("", 1)
	}
	compare, ok := numeric.ParseCompareMode(cfg.Compare)
	if !ok {
		color.Red("unknown compare mode %q", cfg.Compare)
		return cli.NewExitError("", 1)
	}

	var mode search.Mode
	switch cfg.Mode {
	case "FUNCTION":
		mode = search.ModeFunction
	case "BATCH":
		mode = search.ModeBatch
	default:
		mode = search.ModeConstant
	}

	data, err := loadData(mode, cfg, c.String("data"))
	if err != nil {
		color.Red("%+v", err)
		return cli.NewExitError("", 1)
	}

	d := &search.Driver{
		Mode:      mode,
		Data:      data,
		MinK:      cfg.MinK,
		MaxK:      cfg.MaxK,
		CPUID:     cfg.CPUID,
		Ncpus:     cfg.Ncpus,
		Calc:      cal,
		Metric:    metric,
		Compare:   compare,
		NumToFind: cfg.NumToFind,
	}
	if p := c.String("progress"); p != "" {
		d.ProgressPath = p
		d.ProgressInterval = 5 * time.Second
	}

	result, err := d.Run(interruptible())
	if err != nil {
		return errors.Wrap(err, "search")
	}

	w := bufio.NewWriter(os.Stdout)
	if err := search.NewStream(w).WriteResult(result); err != nil {
		return errors.Wrap(err, "write result")
	}
	if err := w.Flush(); err != nil {
		return errors.Wrap(err, "flush result")
	}

	if result.Summary.Result != search.Success {
		return cli.NewExitError("", 1)
	}
	return nil
}

// buildConfig merges positional arguments, flags and an optional -c JSON
// override into one Config, JSON file winning last exactly as the
// client/server commands' "-c" flag does.
func buildConfig(c *cli.Context) (*Config, error) {
	args := c.Args()
	cfg := &Config{
		Mode:       c.String("mode"),
		MinK:       c.Int("k_min"),
		MaxK:       6,
		Ncpus:      1,
		Metric:     c.String("metric"),
		Compare:    c.String("compare"),
		Calculator: c.String("calculator"),
		NumToFind:  c.Int("num_to_find"),
	}

	if len(args) >= 4 {
		target, err := strconv.ParseFloat(args.Get(0), 64)
		if err != nil {
			return nil, errors.Wrap(err, "parsing <target>")
		}
		cpuID, err := strconv.Atoi(args.Get(1))
		if err != nil {
			return nil, errors.Wrap(err, "parsing <cpu_id>")
		}
		ncpus, err := strconv.Atoi(args.Get(2))
		if err != nil {
			return nil, errors.Wrap(err, "parsing <ncpus>")
		}
		maxK, err := strconv.Atoi(args.Get(3))
		if err != nil {
			return nil, errors.Wrap(err, "parsing <k_max>")
		}
		cfg.Target, cfg.CPUID, cfg.Ncpus, cfg.MaxK = target, cpuID, ncpus, maxK
		if len(args) >= 5 {
			minK, err := strconv.Atoi(args.Get(4))
			if err != nil {
				return nil, errors.Wrap(err, "parsing [k_min]")
			}
			cfg.MinK = minK
		}
		if len(args) >= 6 {
			delta, err := strconv.ParseFloat(args.Get(5), 64)
			if err != nil {
				return nil, errors.Wrap(err, "parsing [delta]")
			}
			cfg.Delta = delta
		}
	} else if c.String("c") == "" {
		return nil, errors.New("usage: vsearch <target> <cpu_id> <ncpus> <k_max> [k_min] [delta]")
	}

	if path := c.String("c"); path != "" {
		if err := parseJSONConfig(cfg, path); err != nil {
			return nil, errors.Wrap(err, "parsing -c config file")
		}
	}
	return cfg, nil
}

// loadData builds the []search.DataPoint a Driver needs. CONSTANT mode
// uses the single (target, delta) pair from positional arguments or
// config; FUNCTION and BATCH modes read a CSV table of x,y[,dy] rows
// from dataPath.
func loadData(mode search.Mode, cfg *Config, dataPath string) ([]search.DataPoint, error) {
	if mode == search.ModeConstant {
		return []search.DataPoint{{Y: cfg.Target, DY: cfg.Delta}}, nil
	}
	if dataPath == "" {
		return nil, errors.Errorf("--data is required in %s mode", cfg.Mode)
	}

	f, err := os.Open(dataPath)
	if err != nil {
		return nil, errors.Wrap(err, "opening --data file")
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.FieldsPerRecord = -1
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.Wrap(err, "reading --data file")
	}

	points := make([]search.DataPoint, 0, len(rows))
	for _, row := range rows {
		if len(row) < 2 {
			return nil, errors.Errorf("malformed data row %v: want at least x,y", row)
		}
		x, err := strconv.ParseFloat(row[0], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing x in row %v", row)
		}
		y, err := strconv.ParseFloat(row[1], 64)
		if err != nil {
			return nil, errors.Wrapf(err, "parsing y in row %v", row)
		}
		var dy float64
		if len(row) >= 3 {
			dy, err = strconv.ParseFloat(row[2], 64)
			if err != nil {
				return nil, errors.Wrapf(err, "parsing dy in row %v", row)
			}
		}
		points = append(points, search.DataPoint{X: x, Y: y, DY: dy})
	}
	if len(points) == 0 {
		return nil, errors.New("--data file contained no rows")
	}
	return points, nil
}
