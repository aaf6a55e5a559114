// 14 Oct 2026

/*
Chitrna looks for chimeric tRNAs in tRNAscan-SE output. For each tRNA it
takes the predicted type (or the anticodon) and the independently
predicted isotype, turns both into numbers and writes them out for
plotting. Under normal biology the points fall on a line (amino acid on
the X axis) or a step function (anticodon on the X axis). Points off the
line are tRNAs where the two predictions disagree.

The first two lines of the input are column headers and are skipped.
The input may be gzip compressed. Given no input name or "-", it reads
standard input.

The points go to standard output as csv, unless -p names a file. Other
files are only written if asked for. Nothing is written if anything
goes wrong.

Usage:
	chitrna [flags] infile

With no arguments at all, it asks for the file name, the X axis, the
minimum score and whether to write the supplemental file.

The flags are:
	-a axesfile
		Write tick labels and the expected curve, three gnuplot data blocks.
	-c options.yaml
		Read settings from a yaml file. Flags on the command line win.
	-d densityfile
		Write a grid with the number of tRNAs at each (type, isotype).
	-f primary|secondary
		Score for the threshold. primary (or inf) is the infernal score,
		column 9. secondary (or iso) is the isotype score, the last column.
	-i score
		Minimum score. Default 0.
	-m column
		Column holding the isotype label, counting from 1. Default 10.
	-o amino-acid|anticodon
		What goes on the X axis. Default amino-acid.
	-p pointsfile
		Write points here instead of standard output.
	-r reportfile
		Name for the supplemental file. Default is the input name
		without .out or .txt, followed by -supplemental.txt.
	-s y/N
		Write the supplemental file listing tRNAs whose type and isotype
		disagree. iMet and fMet isotypes do not count as disagreeing.
	-t title
		Title, written as a comment at the top of the points.
	-v
		Verbose. Print debugging information to standard error.

A typical gnuplot session after
	chitrna -i 50 -p yeast.csv -a axes.dat yeast.out
would use "plot 'yeast.csv' using 1:2" and the reference curve from
index 2 of axes.dat.
*/
package main
