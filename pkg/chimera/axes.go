// 13 Oct 2026

package chimera

import (
	"bufio"
	"fmt"
	"io"

	"github.com/andrew-torda/chitrna/pkg/codetab"
)

// Axes is everything a plotting program needs that does not come
// from the input: tick labels and the expected curve.
type Axes struct {
	XName  string
	YName  string
	XTicks []string // XTicks[i] labels position i+1
	YTicks []string
	Ref    codetab.Curve
	Step   bool // draw Ref as steps rather than a line
}

// AxesFor gives the fixed axis data for a mode.
func AxesFor(mode AxisMode) Axes {
	if mode == Anticodon {
		return Axes{
			XName:  "Anticodon",
			YName:  "Isotype",
			XTicks: codetab.AnticodonTicks,
			YTicks: codetab.IsotypeTicks,
			Ref:    codetab.AnticodonStep(),
			Step:   true,
		}
	}
	return Axes{
		XName:  "tRNA Type",
		YName:  "Isotype",
		XTicks: codetab.TypeTicks,
		YTicks: codetab.IsotypeTicks,
		Ref:    codetab.Identity(),
	}
}

// WriteAxes writes three blocks, separated by two blank lines so
// gnuplot sees them as index 0, 1 and 2: x ticks, y ticks and the
// reference curve.
func WriteAxes(w io.Writer, a Axes) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# x ticks: %s\n", a.XName)
	for i, l := range a.XTicks {
		fmt.Fprintf(bw, "%d\t%s\n", i+1, l)
	}
	fmt.Fprintf(bw, "\n\n# y ticks: %s\n", a.YName)
	for i, l := range a.YTicks {
		fmt.Fprintf(bw, "%d\t%s\n", i+1, l)
	}
	style := "line"
	if a.Step {
		style = "steps"
	}
	fmt.Fprintf(bw, "\n\n# reference %s\n", style)
	for i := range a.Ref.X {
		fmt.Fprintf(bw, "%d\t%d\n", a.Ref.X[i], a.Ref.Y[i])
	}
	return bw.Flush()
}
