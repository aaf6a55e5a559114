// 12 Oct 2026

// Package trnascan reads the tab separated tables written by
// tRNAscan-SE. Each data line becomes a Record. Only the columns we
// use get names, so the column layout is written down in one place.
package trnascan

import (
	"strings"
)

// Zero based columns of a tRNAscan-SE line.
const (
	colName       = 0
	colType       = 4
	colAnticodon  = 5
	colInfScore   = 8
	DfltIsoCol    = 9 // isotype label, can be moved by the user
	minFieldsBase = colInfScore + 1
)

// NHeader is the number of lines thrown away at the top of a file.
const NHeader = 2

// Layout says where the movable column lives.
type Layout struct {
	IsotypeCol int // zero based
}

// DefaultLayout is what tRNAscan-SE 2.0 writes.
var DefaultLayout = Layout{IsotypeCol: DfltIsoCol}

// MinFields is the shortest line we can accept. The secondary score
// is the last field and must come after the isotype and the infernal
// score, never share a column with them.
func (l Layout) MinFields() int {
	n := l.IsotypeCol + 1
	if n < minFieldsBase {
		n = minFieldsBase
	}
	return n + 1
}

// Record is one tRNA. It cannot be changed after reading.
type Record struct {
	fields []string
	isoCol int
	line   int
}

// Name is the sequence name, column 0.
func (r Record) Name() string { return r.fields[colName] }

// TypeLabel is the predicted amino acid, column 4.
func (r Record) TypeLabel() string { return r.fields[colType] }

// Anticodon is column 5.
func (r Record) Anticodon() string { return r.fields[colAnticodon] }

// PrimaryScore is the infernal score text, column 8.
func (r Record) PrimaryScore() string { return r.fields[colInfScore] }

// Isotype is the isotype label from wherever the layout put it.
func (r Record) Isotype() string { return r.fields[r.isoCol] }

// SecondaryScore is the isotype score text, always the last column.
func (r Record) SecondaryScore() string { return r.fields[len(r.fields)-1] }

// IsotypeCol is the zero based column the isotype was taken from.
func (r Record) IsotypeCol() int { return r.isoCol }

// NField is the number of columns on the line.
func (r Record) NField() int { return len(r.fields) }

// Line is the line number in the input, counting from 1 and
// including the header lines.
func (r Record) Line() int { return r.line }

// NewRecord builds a record from fields, as if read from line n.
// It applies the same check as the reader.
func NewRecord(fields []string, layout Layout, n int) (Record, error) {
	if len(fields) < layout.MinFields() {
		return Record{}, &ParseError{
			Line:    n,
			Text:    strings.Join(fields, "\t"),
			NField:  len(fields),
			MinWant: layout.MinFields(),
		}
	}
	f := append([]string(nil), fields...)
	return Record{fields: f, isoCol: layout.IsotypeCol, line: n}, nil
}
