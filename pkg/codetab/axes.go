// 13 Oct 2026
// Tick labels and the expected-relationship curves. These are fixed
// reference data for whatever draws the plot, not derived from input.

package codetab

// TypeTicks labels the X axis in amino acid mode, positions 1..25.
var TypeTicks = []string{
	"Ala", "Arg", "Asn", "Asp", "Cys",
	"Gln", "Glu", "Gly", "His", "Ile",
	"Leu", "Lys", "Met", "Phe", "Pro",
	"Ser", "Thr", "Trp", "Tyr", "Val",
	"SeC", "Pyl", "Ile2", "Undet", "Sup",
}

// IsotypeTicks labels the Y axis, positions 1..23.
var IsotypeTicks = TypeTicks[:23:23]

// AnticodonTicks labels the X axis in anticodon mode, positions 1..65.
// They are written in the RNA alphabet.
var AnticodonTicks = []string{
	"AGC", "GGC", "UGC", "CGC", "ACG", "GCG", "UCG",
	"CCG", "UCU", "CCU", "AUU", "GUU", "AUC", "GUC",
	"ACA", "GCA", "UUG", "CUG", "UUC", "CUC", "ACC", "GCC",
	"UCC", "CCC", "AUG", "GUG", "AAU", "GAU", "UAU", "UAA",
	"CAA", "AAG", "GAG", "UAG", "CAG", "UUU", "CUU", "CAU",
	"AAA", "GAA", "AGG", "GGG", "UGG", "CGG", "AGA", "GGA",
	"UGA", "CGA", "ACU", "GCU", "AGU", "GGU", "UGU", "CGU",
	"CCA", "AUA", "GUA", "AAC", "GAC", "UAC", "CAC", "UCA",
	"CUA", "UUA", "NNN",
}

// anticodonStepY is the isotype expected for anticodon positions 1..63.
var anticodonStepY = []int{
	1, 1, 1, 1, 2, 2, 2, 2, 2, 2, 3, 3, 4, 4, 5, 5, 6, 6, 7, 7, 8, 8, 8, 8, 9, 9,
	10, 10, 10, 11, 11, 11, 11, 11, 11, 12, 12, 13, 14, 14, 15, 15, 15, 15,
	16, 16, 16, 16, 16, 16, 17, 17, 17, 17, 18, 19, 19, 20, 20, 20, 20, 21, 22,
}

// nIdentity is how far the identity line runs: the 22 real amino acids.
const nIdentity = 22

// Curve is a set of points, X[i] with Y[i].
type Curve struct {
	X []int
	Y []int
}

func seq1(n int) []int {
	s := make([]int, n)
	for i := range s {
		s[i] = i + 1
	}
	return s
}

// Identity is the expected curve in amino acid mode, type == isotype.
func Identity() Curve {
	return Curve{X: seq1(nIdentity), Y: seq1(nIdentity)}
}

// AnticodonStep is the expected curve in anticodon mode. It is a step
// function from anticodon position to the isotype it should decode.
func AnticodonStep() Curve {
	return Curve{
		X: seq1(len(anticodonStepY)),
		Y: append([]int(nil), anticodonStepY...),
	}
}
