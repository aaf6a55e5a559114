// 13 Oct 2026

package chimera

import (
	"fmt"
	"io"
	"strings"

	"github.com/andrew-torda/chitrna/pkg/codetab"
	"github.com/andrew-torda/chitrna/pkg/trnascan"
)

// Mismatch is a tRNA whose type and isotype disagree, a chimera
// candidate.
type Mismatch struct {
	Name    string
	Type    string
	Isotype string
}

// String gives the line for the supplemental report. The double tab
// is what the report header expects.
func (m Mismatch) String() string {
	return m.Name + "\t" + m.Type + "\t\t" + m.Isotype
}

// metVariant says if an isotype is one of the start codon versions
// of methionine. These are not counted as disagreeing with the type.
func metVariant(iso string) bool {
	return iso == codetab.InitiatorMet || iso == codetab.FormylMet
}

// Mismatches looks at every record, whatever its score.
func Mismatches(recs []trnascan.Record) []Mismatch {
	var mm []Mismatch
	for _, r := range recs {
		typ, iso := r.TypeLabel(), r.Isotype()
		if typ == iso || metVariant(iso) {
			continue
		}
		mm = append(mm, Mismatch{Name: r.Name(), Type: typ, Isotype: iso})
	}
	return mm
}

// Report is the text of all the mismatches, one per line. It is
// empty if there are none.
func Report(recs []trnascan.Record) string {
	var sb strings.Builder
	for _, m := range Mismatches(recs) {
		sb.WriteString(m.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

const (
	reportHead1 = "Sequence Name\t\t\t\t\ttRNA Type\tIsotype"
	reportHead2 = "-------------\t\t\t\t\t---------\t-------"
)

// WriteReport writes the supplemental file: two header lines and
// then the report text.
func WriteReport(w io.Writer, report string) error {
	if _, err := fmt.Fprintln(w, reportHead1); err != nil {
		return err
	}
	if _, err := fmt.Fprintln(w, reportHead2); err != nil {
		return err
	}
	_, err := io.WriteString(w, report)
	return err
}
