// 13 Oct 2026

// Package chimera turns a tRNAscan-SE table into numbers for a plot
// of tRNA type against isotype, and lists the tRNAs where the two
// disagree.
package chimera

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/andrew-torda/matrix"
	"go.uber.org/zap"

	"github.com/andrew-torda/chitrna/pkg/codetab"
	"github.com/andrew-torda/chitrna/pkg/common"
	"github.com/andrew-torda/chitrna/pkg/trnascan"
)

// Result is everything computed from one input file.
type Result struct {
	NRecord    int   // records read
	X, Y       []int // filtered coordinates, same length
	Mismatches []Mismatch
	Report     string // empty unless the report was asked for
	Density    *matrix.FMatrix2d
	Axes       Axes
}

// Run reads the input and does all the calculations, but writes
// nothing. Either everything works or there is an error and no result.
func Run(opts *Options, logger *zap.Logger) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	recs, err := trnascan.Readfile(opts.InFile, opts.Layout())
	if err != nil {
		return nil, fmt.Errorf("reading tRNAs: %w", err)
	}
	logger.Debug("read records",
		zap.String("file", opts.InFile), zap.Int("records", len(recs)))

	xs, ys, err := Encode(recs, opts.Axis)
	if err != nil {
		return nil, err
	}
	scores, err := Scores(recs, opts.Score)
	if err != nil {
		return nil, err
	}
	res := &Result{NRecord: len(recs), Axes: AxesFor(opts.Axis)}
	res.X, res.Y = Filter(xs, ys, scores, opts.Threshold)
	res.Density = Density(res.X, res.Y, xTable(opts.Axis).Max(), codetab.AminoAcid.Max())
	logger.Debug("filtered",
		zap.Float64("threshold", opts.Threshold),
		zap.String("score", string(opts.Score)),
		zap.Int("kept", len(res.X)))

	if opts.Supplemental {
		res.Mismatches = Mismatches(recs)
		res.Report = Report(recs)
		logger.Debug("mismatches", zap.Int("n", len(res.Mismatches)))
	}
	return res, nil
}

// warnExists says if we are about to trash a file. It does not
// return an error.
func warnExists(fname string, logger *zap.Logger) {
	if _, err := os.Stat(fname); err == nil {
		logger.Warn("overwriting old version", zap.String("file", fname))
	}
}

// oneLine keeps a title inside its comment line.
var oneLine = strings.NewReplacer("\r\n", " ", "\n", " ", "\r", " ")

// WritePoints writes the filtered points as csv, with the labels
// alongside the numbers so a person can read it too.
func WritePoints(w io.Writer, title string, res *Result) error {
	if title != "" {
		if _, err := fmt.Fprintln(w, "#", oneLine.Replace(title)); err != nil {
			return err
		}
	}
	cw := csv.NewWriter(w)
	cw.Write([]string{"x", "y", "x label", "y label"})
	for i := range res.X {
		xl, yl := "", ""
		if x := res.X[i]; x <= len(res.Axes.XTicks) {
			xl = res.Axes.XTicks[x-1]
		}
		if y := res.Y[i]; y <= len(res.Axes.YTicks) {
			yl = res.Axes.YTicks[y-1]
		} else if l, ok := codetab.AminoAcid.Label(y); ok {
			yl = l // Undet and Sup have no tick
		}
		cw.Write([]string{strconv.Itoa(res.X[i]), strconv.Itoa(res.Y[i]), xl, yl})
	}
	cw.Flush()
	return cw.Error()
}

// output is one file to be written, or stdout if name is empty.
type output struct {
	name  string
	write func(io.Writer) error
}

// Mymain is the whole program after the options have been gathered.
// All calculations are finished before any output is opened, and the
// files only get their real names once all of them were written. If
// the points cannot go to stdout, the files are taken back.
func Mymain(opts *Options, logger *zap.Logger) error {
	startTime := time.Now()
	res, err := Run(opts, logger)
	if err != nil {
		return err
	}

	var outs []output
	var stdout *bytes.Buffer
	points := func(w io.Writer) error { return WritePoints(w, opts.Title, res) }
	if opts.PointsFile == "" || opts.PointsFile == "-" {
		stdout = new(bytes.Buffer)
		if err := points(stdout); err != nil {
			return err
		}
	} else {
		outs = append(outs, output{opts.PointsFile, points})
	}
	if opts.Supplemental {
		outs = append(outs, output{opts.ReportFile, func(w io.Writer) error {
			return WriteReport(w, res.Report)
		}})
	}
	if opts.DensityFile != "" {
		outs = append(outs, output{opts.DensityFile, func(w io.Writer) error {
			return WriteDensity(w, res.Density)
		}})
	}
	if opts.AxesFile != "" {
		outs = append(outs, output{opts.AxesFile, func(w io.Writer) error {
			return WriteAxes(w, res.Axes)
		}})
	}

	var set common.StageSet
	defer func() { set.Abort() }() // set grows below
	for _, o := range outs {
		warnExists(o.name, logger)
		s, err := set.Add(o.name)
		if err != nil {
			return err
		}
		if err := o.write(s); err != nil {
			return fmt.Errorf("writing %s: %w", o.name, err)
		}
	}
	if err := set.Commit(); err != nil {
		return err
	}
	if stdout != nil {
		if _, err := stdout.WriteTo(os.Stdout); err != nil {
			set.Rollback()
			return &common.ResourceError{Path: "-", Op: "write", Err: err}
		}
	}
	set.Release()
	for _, o := range outs {
		logger.Info("wrote", zap.String("file", o.name))
	}
	logger.Info("finished",
		zap.Int("records", res.NRecord),
		zap.Int("points", len(res.X)),
		zap.Int("mismatches", len(res.Mismatches)),
		zap.Duration("took", time.Since(startTime)))
	return nil
}
