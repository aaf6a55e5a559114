// 14 Oct 2026

package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"

	"github.com/andrew-torda/chitrna/pkg/chimera"
)

// asker writes a question and reads one line of answer.
type asker struct {
	in  *bufio.Reader
	out io.Writer
	q   *color.Color
}

// colorFor says whether questions written to out should be coloured.
// The color package looks at stdout, but the questions go elsewhere.
func colorFor(out io.Writer) bool {
	if os.Getenv("NO_COLOR") != "" || os.Getenv("TERM") == "dumb" {
		return false
	}
	f, ok := out.(*os.File)
	return ok && (isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd()))
}

func (a *asker) ask(question string) (string, error) {
	a.q.Fprint(a.out, question)
	s, err := a.in.ReadString('\n')
	if err != nil && err != io.EOF {
		return "", fmt.Errorf("reading answer to %q: %w", question, err)
	}
	return strings.TrimSpace(s), nil
}

// promptOptions asks for the settings one at a time. An empty answer
// takes the default, except for the file name, which is needed.
// Only an explicit y or yes turns on the supplemental file.
func promptOptions(in io.Reader, out io.Writer) (chimera.Options, error) {
	opts := chimera.DefaultOptions()
	a := asker{in: bufio.NewReader(in), out: out, q: color.New(color.FgCyan, color.Bold)}
	if colorFor(out) {
		a.q.EnableColor()
	} else {
		a.q.DisableColor()
	}
	var err error

	if opts.InFile, err = a.ask("State tRNAs to Analyze: "); err != nil {
		return opts, err
	}
	if opts.InFile == "" {
		return opts, &chimera.OptionError{Option: "input file", Why: "no file given"}
	}

	s, err := a.ask("Select Amino Acid or Anticodon for X-Axis: ")
	if err != nil {
		return opts, err
	}
	if s != "" {
		if opts.Axis, err = chimera.ParseAxisMode(s); err != nil {
			return opts, err
		}
	}

	if s, err = a.ask(`State Minimum Inf Score or select "0": `); err != nil {
		return opts, err
	}
	if s != "" {
		if opts.Threshold, err = strconv.ParseFloat(s, 64); err != nil {
			return opts, &chimera.OptionError{Option: "minimum score", Value: s, Why: "not a number"}
		}
	}

	if s, err = a.ask("Output chimeric tRNAs?[y/N]: "); err != nil {
		return opts, err
	}
	opts.Supplemental = chimera.Affirmative(s)
	return opts, nil
}
