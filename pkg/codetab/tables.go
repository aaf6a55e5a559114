// 12 Oct 2026

package codetab

// Amino acids in alphabetical order of three letter code, then the
// tRNAscan-SE extras. iMet and fMet are start codon variants and
// deliberately share Met's position.
var AminoAcid = newTable("amino acid", []entry{
	{"Ala", 1}, {"Arg", 2}, {"Asn", 3}, {"Asp", 4}, {"Cys", 5},
	{"Gln", 6}, {"Glu", 7}, {"Gly", 8}, {"His", 9}, {"Ile", 10},
	{"Leu", 11}, {"Lys", 12}, {"Met", 13}, {"Phe", 14}, {"Pro", 15},
	{"Ser", 16}, {"Thr", 17}, {"Trp", 18}, {"Tyr", 19}, {"Val", 20},
	{"SeC", 21}, {"Pyl", 22}, {"iMet", 13}, {"fMet", 13}, {"Ile2", 23},
	{"Undet", 24}, {"Sup", 25},
})

// Anticodons as tRNAscan-SE writes them (DNA alphabet), numbered so
// that anticodons for the same amino acid sit next to each other:
//
//	Ala 1-4   Arg 5-10  Asn 11-12 Asp 13-14 Cys 15-16 Gln 17-18
//	Glu 19-20 Gly 21-24 His 25-26 Ile 27-29 Leu 30-35 Lys 36-37
//	Met 38    Phe 39-40 Pro 41-44 Ser 45-50 Thr 51-54 Trp 55
//	Tyr 56-57 Val 58-61 SeC 62    Pyl 63    stop 64   NNN 65
var Anticodon = newTable("anticodon", []entry{
	{"AAA", 39}, {"AGA", 45}, {"ATA", 56}, {"ACA", 15},
	{"GAA", 40}, {"GGA", 46}, {"GTA", 57}, {"GCA", 16},
	{"TAA", 30}, {"TGA", 47}, {"TTA", 64}, {"TCA", 62},
	{"CAA", 31}, {"CGA", 48}, {"CTA", 63}, {"CCA", 55},

	{"AAG", 32}, {"AGG", 41}, {"ATG", 25}, {"ACG", 5},
	{"GAG", 33}, {"GGG", 42}, {"GTG", 26}, {"GCG", 6},
	{"TAG", 34}, {"TGG", 43}, {"TTG", 17}, {"TCG", 7},
	{"CAG", 35}, {"CGG", 44}, {"CTG", 18}, {"CCG", 8},

	{"AAT", 27}, {"AGT", 51}, {"ATT", 11}, {"ACT", 49},
	{"GAT", 28}, {"GGT", 52}, {"GTT", 12}, {"GCT", 50},
	{"TAT", 29}, {"TGT", 53}, {"TTT", 36}, {"TCT", 9},
	{"CAT", 38}, {"CGT", 54}, {"CTT", 37}, {"CCT", 10},

	{"AAC", 58}, {"AGC", 1}, {"ATC", 13}, {"ACC", 21},
	{"GAC", 59}, {"GGC", 2}, {"GTC", 14}, {"GCC", 22},
	{"TAC", 60}, {"TGC", 3}, {"TTC", 19}, {"TCC", 23},
	{"CAC", 61}, {"CGC", 4}, {"CTC", 20}, {"CCC", 24},
	{"NNN", 65},
})

// Start codon variants. A type/isotype disagreement where the isotype
// is one of these is not a chimera.
const (
	InitiatorMet = "iMet"
	FormylMet    = "fMet"
)
