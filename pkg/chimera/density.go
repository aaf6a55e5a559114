// 13 Oct 2026
// Count how often each (x, y) cell is hit. Plotted as a heat map it
// shows which points are piled on top of each other.

package chimera

import (
	"bufio"
	"fmt"
	"io"

	"github.com/andrew-torda/matrix"
)

// Density counts points per cell. Row y-1 and column x-1 hold the
// count for (x, y), so the matrix is ny rows by nx columns.
// Points off the grid are a programming error and will panic.
func Density(xs, ys []int, nx, ny int) *matrix.FMatrix2d {
	m := matrix.NewFMatrix2d(ny, nx)
	for i := range xs {
		m.Mat[ys[i]-1][xs[i]-1] += 1
	}
	return m
}

// WriteDensity writes one line per row, suitable for gnuplot's
// "matrix" data. The first line is a comment giving the size.
func WriteDensity(w io.Writer, m *matrix.FMatrix2d) error {
	bw := bufio.NewWriter(w)
	nrow, ncol := len(m.Mat), 0
	if nrow > 0 {
		ncol = len(m.Mat[0])
	}
	fmt.Fprintf(bw, "# %d isotype rows x %d type columns\n", nrow, ncol)
	for _, row := range m.Mat {
		for j, v := range row {
			if j > 0 {
				bw.WriteByte(' ')
			}
			fmt.Fprintf(bw, "%g", v)
		}
		bw.WriteByte('\n')
	}
	return bw.Flush()
}
