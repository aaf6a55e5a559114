// 14 Oct 2026

package chimera_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	. "github.com/andrew-torda/chitrna/pkg/chimera"
	"github.com/andrew-torda/chitrna/pkg/common"
)

func TestParseAxisMode(t *testing.T) {
	good := map[string]AxisMode{
		"amino-acid": AminoAcid, "aa": AminoAcid, "Amino Acid": AminoAcid, " AA ": AminoAcid,
		"anticodon": Anticodon, "Anticodon": Anticodon,
	}
	for in, want := range good {
		got, err := ParseAxisMode(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	for _, in := range []string{"", "codon", "x"} {
		_, err := ParseAxisMode(in)
		var oerr *OptionError
		require.ErrorAs(t, err, &oerr, in)
	}
}

func TestParseScoreSource(t *testing.T) {
	for in, want := range map[string]ScoreSource{
		"primary": Primary, "inf": Primary, "INF": Primary,
		"secondary": Secondary, "iso": Secondary,
	} {
		got, err := ParseScoreSource(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}
	_, err := ParseScoreSource("both")
	require.Error(t, err)
}

func TestAffirmative(t *testing.T) {
	for _, s := range []string{"y", "Y", "yes", " YES "} {
		require.True(t, Affirmative(s), s)
	}
	for _, s := range []string{"", "n", "no", "N", "yep", "true", "1"} {
		require.False(t, Affirmative(s), s)
	}
}

func TestValidate(t *testing.T) {
	opts := DefaultOptions()
	opts.InFile = filepath.Join("data", "worm.txt")
	opts.Supplemental = true
	require.NoError(t, opts.Validate())
	require.Equal(t, "worm", opts.Title)
	require.Equal(t, filepath.Join("data", "worm-supplemental.txt"), opts.ReportFile)
	require.Equal(t, 9, opts.Layout().IsotypeCol)

	opts = DefaultOptions()
	opts.IsotypeCol = 0
	var oerr *OptionError
	require.ErrorAs(t, opts.Validate(), &oerr)

	opts = DefaultOptions()
	opts.Axis = "sideways"
	require.ErrorAs(t, opts.Validate(), &oerr)

	opts = DefaultOptions()
	opts.Score = ""
	require.ErrorAs(t, opts.Validate(), &oerr)
}

func TestStem(t *testing.T) {
	require.Equal(t, "yeast", Stem("/a/b/yeast.out"))
	require.Equal(t, "yeast", Stem("yeast.txt.gz"))
	require.Equal(t, "yeast.tab", Stem("yeast.tab"))
}

func TestLoadOptions(t *testing.T) {
	yml := `infile: human.out
threshold: 55.5
axis: aa
isotype_column: 11
score: iso
supplemental: true
density: dens.dat
`
	fname, err := common.WrtTemp(yml)
	require.NoError(t, err)
	defer os.Remove(fname)

	opts := DefaultOptions()
	opts.Title = "kept"
	require.NoError(t, LoadOptions(fname, &opts))
	require.Equal(t, "human.out", opts.InFile)
	require.Equal(t, 55.5, opts.Threshold)
	require.Equal(t, AminoAcid, opts.Axis)
	require.Equal(t, 11, opts.IsotypeCol)
	require.Equal(t, Secondary, opts.Score)
	require.True(t, opts.Supplemental)
	require.Equal(t, "dens.dat", opts.DensityFile)
	require.Equal(t, "kept", opts.Title, "key missing from file changed the option")
}

func TestLoadOptionsBad(t *testing.T) {
	fname, err := common.WrtTemp("axis: diagonal\n")
	require.NoError(t, err)
	defer os.Remove(fname)
	opts := DefaultOptions()
	err = LoadOptions(fname, &opts)
	var oerr *OptionError
	require.ErrorAs(t, err, &oerr)

	err = LoadOptions(filepath.Join(t.TempDir(), "none.yaml"), &opts)
	var rerr *common.ResourceError
	require.ErrorAs(t, err, &rerr)
}
