// 13 Oct 2026

package codetab_test

import (
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	. "github.com/andrew-torda/chitrna/pkg/codetab"
)

func TestCodeKnown(t *testing.T) {
	tests := []struct {
		tbl   *Table
		label string
		want  int
	}{
		{AminoAcid, "Ala", 1},
		{AminoAcid, "Val", 20},
		{AminoAcid, "Met", 13},
		{AminoAcid, "iMet", 13},
		{AminoAcid, "fMet", 13},
		{AminoAcid, "Sup", 25},
		{Anticodon, "AGC", 1},
		{Anticodon, "CAT", 38},
		{Anticodon, "TTA", 64},
		{Anticodon, "NNN", 65},
	}
	for _, tt := range tests {
		for rep := 0; rep < 2; rep++ { // same answer every time
			got, err := tt.tbl.Code(tt.label)
			if err != nil {
				t.Fatalf("%s %s: %v", tt.tbl.Name(), tt.label, err)
			}
			if got != tt.want {
				t.Errorf("%s %s got %d want %d", tt.tbl.Name(), tt.label, got, tt.want)
			}
		}
	}
}

func TestCodeUnknown(t *testing.T) {
	for _, label := range []string{"", "ala", "Xaa", "AGCT", "agc"} {
		_, err := AminoAcid.Code(label)
		var uerr *UnknownCategoryError
		if !errors.As(err, &uerr) {
			t.Fatalf("label %q: want UnknownCategoryError, got %v", label, err)
		}
		if uerr.Label != label || uerr.Table != AminoAcid.Name() {
			t.Errorf("error fields wrong: %+v", uerr)
		}
	}
	if _, err := Anticodon.Code("AGU"); err == nil {
		t.Error("RNA alphabet anticodon should not be in the table")
	}
}

// TestRoundTrip checks every label comes back from its ordinal and
// that ordinals sit in 1..Max.
func TestRoundTrip(t *testing.T) {
	for _, tbl := range []*Table{AminoAcid, Anticodon} {
		n := 0
		tbl.Entries(func(label string, ord int) {
			n++
			got, err := tbl.Code(label)
			if err != nil || got != ord {
				t.Fatalf("%s: %s gave %d %v, want %d", tbl.Name(), label, got, err, ord)
			}
			if ord < 1 || ord > tbl.Max() {
				t.Errorf("%s: %s ordinal %d out of range", tbl.Name(), label, ord)
			}
			if !slices.Contains(tbl.Labels(ord), label) {
				t.Errorf("%s: %s not among labels for %d: %v", tbl.Name(), label, ord, tbl.Labels(ord))
			}
		})
		if n != tbl.Len() {
			t.Errorf("%s: Entries visited %d of %d", tbl.Name(), n, tbl.Len())
		}
	}
}

func TestMetVariants(t *testing.T) {
	if diff := cmp.Diff([]string{"Met", "iMet", "fMet"}, AminoAcid.Labels(13)); diff != "" {
		t.Errorf("labels for 13 (-want +got):\n%s", diff)
	}
	if l, ok := AminoAcid.Label(13); !ok || l != "Met" {
		t.Errorf("canonical label for 13 got %s", l)
	}
	if _, ok := AminoAcid.Label(99); ok {
		t.Error("ordinal 99 should not have a label")
	}
	if AminoAcid.Labels(0) != nil {
		t.Error("ordinal 0 should have no labels")
	}
}

func TestLabelsIsCopy(t *testing.T) {
	l := AminoAcid.Labels(13)
	l[0] = "junk"
	if got, _ := AminoAcid.Label(13); got != "Met" {
		t.Fatal("Labels let caller modify the table")
	}
}

func TestTableSizes(t *testing.T) {
	if AminoAcid.Len() != 27 || AminoAcid.Max() != 25 {
		t.Errorf("amino acid table len %d max %d", AminoAcid.Len(), AminoAcid.Max())
	}
	if Anticodon.Len() != 65 || Anticodon.Max() != 65 {
		t.Errorf("anticodon table len %d max %d", Anticodon.Len(), Anticodon.Max())
	}
}

// Tick i must name the label with ordinal i+1.
func TestTicksMatchTables(t *testing.T) {
	for i, tick := range TypeTicks {
		if l, _ := AminoAcid.Label(i + 1); l != tick {
			t.Errorf("type tick %d is %s, table says %s", i+1, tick, l)
		}
	}
	if len(IsotypeTicks) != 23 {
		t.Errorf("want 23 isotype ticks, got %d", len(IsotypeTicks))
	}
	for i, tick := range AnticodonTicks {
		dna := strings.ReplaceAll(tick, "U", "T")
		if n, err := Anticodon.Code(dna); err != nil || n != i+1 {
			t.Errorf("anticodon tick %d is %s, table gives %d %v", i+1, tick, n, err)
		}
	}
}

func TestCurves(t *testing.T) {
	id := Identity()
	if len(id.X) != 22 || len(id.Y) != 22 {
		t.Fatalf("identity length %d %d", len(id.X), len(id.Y))
	}
	if diff := cmp.Diff(id.X, id.Y); diff != "" {
		t.Errorf("identity not identity:\n%s", diff)
	}

	step := AnticodonStep()
	if len(step.X) != 63 || len(step.Y) != 63 {
		t.Fatalf("step length %d %d", len(step.X), len(step.Y))
	}
	for i := 1; i < len(step.Y); i++ {
		if step.Y[i] < step.Y[i-1] {
			t.Errorf("step goes down at %d", i+1)
		}
	}
	// The step should agree with the tables: the anticodon at position x
	// decodes amino acid y.
	if step.Y[37] != 13 { // CAT, Met
		t.Errorf("position 38 should be Met, got %d", step.Y[37])
	}
	step.Y[0] = 99
	if AnticodonStep().Y[0] != 1 {
		t.Error("AnticodonStep returned shared data")
	}
}
