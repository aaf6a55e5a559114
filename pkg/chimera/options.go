// 13 Oct 2026

package chimera

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/andrew-torda/chitrna/pkg/common"
	"github.com/andrew-torda/chitrna/pkg/trnascan"
)

// AxisMode says what goes on the X axis.
type AxisMode string

const (
	AminoAcid AxisMode = "amino-acid"
	Anticodon AxisMode = "anticodon"
)

// ScoreSource says which score column the threshold applies to.
type ScoreSource string

const (
	Primary   ScoreSource = "primary"   // infernal score, column 9
	Secondary ScoreSource = "secondary" // isotype score, last column
)

// OptionError is a setting that makes no sense.
type OptionError struct {
	Option string
	Value  string
	Why    string
}

func (e *OptionError) Error() string {
	return fmt.Sprintf("option %s %q: %s", e.Option, e.Value, e.Why)
}

// ParseAxisMode takes what a user might type.
func ParseAxisMode(s string) (AxisMode, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "amino-acid", "amino acid", "aminoacid", "aa":
		return AminoAcid, nil
	case "anticodon", "anti-codon":
		return Anticodon, nil
	}
	return "", &OptionError{Option: "axis", Value: s, Why: "want amino-acid or anticodon"}
}

// ParseScoreSource takes the new names and the old inf / iso.
func ParseScoreSource(s string) (ScoreSource, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "primary", "inf", "infernal":
		return Primary, nil
	case "secondary", "iso", "isotype":
		return Secondary, nil
	}
	return "", &OptionError{Option: "score", Value: s, Why: "want primary or secondary"}
}

// Affirmative is true only for an explicit yes. Anything else,
// including an empty answer, is no.
func Affirmative(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "y", "yes":
		return true
	}
	return false
}

func (m *AxisMode) UnmarshalYAML(value *yaml.Node) error {
	a, err := ParseAxisMode(value.Value)
	if err != nil {
		return err
	}
	*m = a
	return nil
}

func (s *ScoreSource) UnmarshalYAML(value *yaml.Node) error {
	src, err := ParseScoreSource(value.Value)
	if err != nil {
		return err
	}
	*s = src
	return nil
}

// DfltIsoColumn is the one based column for the isotype label.
const DfltIsoColumn = trnascan.DfltIsoCol + 1

// Options is everything a run needs. It is filled in by flags, by a
// prompt or from a yaml file, and then treated the same way.
type Options struct {
	InFile       string      `yaml:"infile"`
	Threshold    float64     `yaml:"threshold"`
	Axis         AxisMode    `yaml:"axis"`
	IsotypeCol   int         `yaml:"isotype_column"` // one based
	Score        ScoreSource `yaml:"score"`
	Supplemental bool        `yaml:"supplemental"`
	Title        string      `yaml:"title"`
	PointsFile   string      `yaml:"points"`  // "" or "-" for stdout
	ReportFile   string      `yaml:"report"`  // "" for a name from InFile
	DensityFile  string      `yaml:"density"` // "" for none
	AxesFile     string      `yaml:"axes"`    // "" for none
}

// DefaultOptions gives the settings used when nobody says otherwise.
func DefaultOptions() Options {
	return Options{
		Axis:       AminoAcid,
		IsotypeCol: DfltIsoColumn,
		Score:      Primary,
	}
}

// LoadOptions reads a yaml file over the top of opts. Keys not in the
// file leave opts alone.
func LoadOptions(fname string, opts *Options) error {
	b, err := os.ReadFile(fname)
	if err != nil {
		return &common.ResourceError{Path: fname, Op: "read", Err: err}
	}
	if err := yaml.Unmarshal(b, opts); err != nil {
		return fmt.Errorf("options file %s: %w", fname, err)
	}
	return nil
}

// Stem is the input name without directory and the usual
// tRNAscan-SE suffixes.
func Stem(fname string) string {
	s := filepath.Base(fname)
	s = strings.TrimSuffix(s, ".gz")
	s = strings.TrimSuffix(s, ".txt")
	s = strings.TrimSuffix(s, ".out")
	return s
}

// Validate checks the settings and fills in the ones that depend on
// others: the title and the report name.
func (o *Options) Validate() error {
	if o.Axis != AminoAcid && o.Axis != Anticodon {
		return &OptionError{Option: "axis", Value: string(o.Axis), Why: "want amino-acid or anticodon"}
	}
	if o.Score != Primary && o.Score != Secondary {
		return &OptionError{Option: "score", Value: string(o.Score), Why: "want primary or secondary"}
	}
	if o.IsotypeCol < 1 {
		return &OptionError{Option: "isotype column", Value: fmt.Sprint(o.IsotypeCol), Why: "columns count from 1"}
	}
	stdin := o.InFile == "" || o.InFile == "-"
	if o.Title == "" && !stdin {
		o.Title = Stem(o.InFile)
	}
	if o.Supplemental && o.ReportFile == "" {
		if stdin {
			o.ReportFile = "chitrna-supplemental.txt"
		} else {
			base := strings.TrimSuffix(o.InFile, filepath.Base(o.InFile)) + Stem(o.InFile)
			o.ReportFile = base + "-supplemental.txt"
		}
	}
	return nil
}

// Layout is the column layout for the reader. The user counts
// columns from 1, the reader from 0.
func (o *Options) Layout() trnascan.Layout {
	return trnascan.Layout{IsotypeCol: o.IsotypeCol - 1}
}
