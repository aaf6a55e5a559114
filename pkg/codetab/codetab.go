// 12 Oct 2026

// Package codetab holds the two fixed lookup tables that turn tRNA
// labels into plot coordinates. One is for amino acids (tRNA type and
// isotype), the other for anticodons. The numbers are constants, so a
// label lands on the same axis position for every input file and the
// expected-relationship curves stay meaningful.
package codetab

import (
	"fmt"
)

// entry is one label and its ordinal, in the order the table declares them.
type entry struct {
	label string
	ord   int
}

// Table maps labels to ordinals. Several labels may share an ordinal.
// Tables are built once at start up and never change.
type Table struct {
	name    string
	entries []entry
	ord     map[string]int
	rev     map[int][]string
	max     int
}

// UnknownCategoryError is returned for a label a table does not have.
// It is never mapped to a default.
type UnknownCategoryError struct {
	Table string
	Label string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("label %q not in %s table", e.Label, e.Table)
}

// newTable builds a table. It panics on bad static data, since that
// is a programming error and not something a user can cause.
func newTable(name string, entries []entry) *Table {
	t := &Table{
		name:    name,
		entries: entries,
		ord:     make(map[string]int, len(entries)),
		rev:     make(map[int][]string),
	}
	for _, e := range entries {
		if e.ord < 1 {
			panic(fmt.Sprintf("%s table: ordinal %d for %s", name, e.ord, e.label))
		}
		if _, dup := t.ord[e.label]; dup {
			panic(fmt.Sprintf("%s table: label %s twice", name, e.label))
		}
		t.ord[e.label] = e.ord
		t.rev[e.ord] = append(t.rev[e.ord], e.label)
		if e.ord > t.max {
			t.max = e.ord
		}
	}
	return t
}

// Name is the table's name, used in error messages.
func (t *Table) Name() string { return t.name }

// Code returns the ordinal for label.
func (t *Table) Code(label string) (int, error) {
	if n, ok := t.ord[label]; ok {
		return n, nil
	}
	return 0, &UnknownCategoryError{Table: t.name, Label: label}
}

// Has says if label is in the table.
func (t *Table) Has(label string) bool {
	_, ok := t.ord[label]
	return ok
}

// Labels is the inverse of Code. It returns every label with ordinal
// ord, in declaration order, or nil.
func (t *Table) Labels(ord int) []string {
	l := t.rev[ord]
	if l == nil {
		return nil
	}
	return append([]string(nil), l...)
}

// Label returns the first declared label for ord. For the amino acid
// table, 13 gives Met rather than iMet or fMet.
func (t *Table) Label(ord int) (string, bool) {
	if l := t.rev[ord]; len(l) > 0 {
		return l[0], true
	}
	return "", false
}

// Max is the largest ordinal.
func (t *Table) Max() int { return t.max }

// Len is the number of labels, not the number of distinct ordinals.
func (t *Table) Len() int { return len(t.entries) }

// Entries calls f on each label and ordinal in declaration order.
func (t *Table) Entries(f func(label string, ord int)) {
	for _, e := range t.entries {
		f(e.label, e.ord)
	}
}
