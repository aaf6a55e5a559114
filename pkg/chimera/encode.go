// 13 Oct 2026
// Turn labels into numbers and pick out scores.

package chimera

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/andrew-torda/chitrna/pkg/codetab"
	"github.com/andrew-torda/chitrna/pkg/trnascan"
)

// xTable is the table for the X axis in a given mode.
func xTable(mode AxisMode) *codetab.Table {
	if mode == Anticodon {
		return codetab.Anticodon
	}
	return codetab.AminoAcid
}

// xLabel picks the field that goes on the X axis.
func xLabel(r trnascan.Record, mode AxisMode) string {
	if mode == Anticodon {
		return r.Anticodon()
	}
	return r.TypeLabel()
}

// Encode turns each record into an X and Y ordinal. X comes from the
// type or anticodon, depending on mode. Y is always the isotype. A
// label missing from its table stops everything.
func Encode(recs []trnascan.Record, mode AxisMode) (xs, ys []int, err error) {
	xtab := xTable(mode)
	xs = make([]int, len(recs))
	ys = make([]int, len(recs))
	for i, r := range recs {
		if xs[i], err = xtab.Code(xLabel(r, mode)); err != nil {
			return nil, nil, fmt.Errorf("%s line %d: %w", r.Name(), r.Line(), err)
		}
		if ys[i], err = codetab.AminoAcid.Code(r.Isotype()); err != nil {
			return nil, nil, fmt.Errorf("%s line %d isotype: %w", r.Name(), r.Line(), err)
		}
	}
	return xs, ys, nil
}

// ScoreFormatError is a score column that is not a number.
type ScoreFormatError struct {
	Name   string // sequence name
	Line   int
	Source ScoreSource
	Text   string
	Err    error
}

func (e *ScoreFormatError) Error() string {
	return fmt.Sprintf("%s line %d: %s score %q is not a number", e.Name, e.Line, e.Source, e.Text)
}

func (e *ScoreFormatError) Unwrap() error { return e.Err }

// Scores parses the chosen score column of every record, in order.
func Scores(recs []trnascan.Record, src ScoreSource) ([]float64, error) {
	scores := make([]float64, len(recs))
	for i, r := range recs {
		s := r.PrimaryScore()
		if src == Secondary {
			s = r.SecondaryScore()
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
		if err != nil {
			return nil, &ScoreFormatError{Name: r.Name(), Line: r.Line(), Source: src, Text: s, Err: err}
		}
		scores[i] = f
	}
	return scores, nil
}

// Point is one record on its way through the filter.
type Point struct {
	X, Y  int
	Score float64
}

// Join lines up the three slices, which must come from the same records.
func Join(xs, ys []int, scores []float64) []Point {
	if len(xs) != len(ys) || len(xs) != len(scores) {
		panic(fmt.Sprintf("Join lengths %d %d %d", len(xs), len(ys), len(scores)))
	}
	pts := make([]Point, len(xs))
	for i := range xs {
		pts[i] = Point{X: xs[i], Y: ys[i], Score: scores[i]}
	}
	return pts
}

// Keep returns the points scoring at least cutoff, in their original order.
func Keep(pts []Point, cutoff float64) []Point {
	kept := []Point{}
	for _, p := range pts {
		if p.Score >= cutoff {
			kept = append(kept, p)
		}
	}
	return kept
}

// Filter keeps point i if scores[i] >= cutoff and hands back the
// coordinates. The order does not change. No survivors is not an
// error, just empty slices.
func Filter(xs, ys []int, scores []float64, cutoff float64) (fx, fy []int) {
	kept := Keep(Join(xs, ys, scores), cutoff)
	fx, fy = make([]int, len(kept)), make([]int, len(kept))
	for i, p := range kept {
		fx[i], fy[i] = p.X, p.Y
	}
	return fx, fy
}
