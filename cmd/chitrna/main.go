// 14 Oct 2026
// Command line for the chimeric tRNA scanner.

package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/andrew-torda/chitrna/pkg/chimera"
	. "github.com/andrew-torda/chitrna/pkg/common"
)

func usage() {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[flags] infile")
	fmt.Fprintln(os.Stderr, `Given no arguments at all, ask for the settings.`)
	flag.PrintDefaults()
}

// cmdFlag is literally the command line flags before they are
// turned into options.
type cmdFlag struct {
	axesFile, cfgFile, densFile string
	score, axis, pointsFile     string
	reportFile, supp, title     string
	threshold                   float64
	isoCol                      int
	verbose                     bool
}

// newLogger writes to stderr so stdout stays clean for points.
func newLogger(verbose bool) (*zap.Logger, error) {
	config := zap.NewProductionConfig()
	config.Encoding = "console"
	config.OutputPaths = []string{"stderr"}
	config.DisableStacktrace = true
	config.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	if verbose {
		config.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return config.Build()
}

// applyFlags starts from the defaults, puts a yaml file on top if
// there is one, and then the flags the user really typed.
func applyFlags(f *cmdFlag, args []string, set map[string]bool) (chimera.Options, error) {
	opts := chimera.DefaultOptions()
	if f.cfgFile != "" {
		if err := chimera.LoadOptions(f.cfgFile, &opts); err != nil {
			return opts, err
		}
	}
	var err error
	for name := range set {
		switch name {
		case "a":
			opts.AxesFile = f.axesFile
		case "d":
			opts.DensityFile = f.densFile
		case "f":
			if opts.Score, err = chimera.ParseScoreSource(f.score); err != nil {
				return opts, err
			}
		case "i":
			opts.Threshold = f.threshold
		case "m":
			opts.IsotypeCol = f.isoCol
		case "o":
			if opts.Axis, err = chimera.ParseAxisMode(f.axis); err != nil {
				return opts, err
			}
		case "p":
			opts.PointsFile = f.pointsFile
		case "r":
			opts.ReportFile = f.reportFile
		case "s":
			opts.Supplemental = chimera.Affirmative(f.supp)
		case "t":
			opts.Title = f.title
		}
	}
	if len(args) > 0 {
		opts.InFile = args[0]
	}
	return opts, nil
}

// exitCode picks a code for an error from the library.
func exitCode(err error) int {
	var oerr *chimera.OptionError
	if errors.As(err, &oerr) {
		return ExitUsageError
	}
	return ExitFailure
}

func main() {
	var f cmdFlag
	flag.StringVar(&f.axesFile, "a", "", "write axis ticks and reference curve to this file")
	flag.StringVar(&f.cfgFile, "c", "", "yaml options file")
	flag.StringVar(&f.densFile, "d", "", "write point density grid to this file")
	flag.StringVar(&f.score, "f", "primary", "score for threshold, primary (inf) or secondary (iso)")
	flag.Float64Var(&f.threshold, "i", 0, "minimum score")
	flag.IntVar(&f.isoCol, "m", chimera.DfltIsoColumn, "isotype column, counting from 1")
	flag.StringVar(&f.axis, "o", "amino-acid", "x axis, amino-acid or anticodon")
	flag.StringVar(&f.pointsFile, "p", "", "points output file, default stdout")
	flag.StringVar(&f.reportFile, "r", "", "supplemental file name")
	flag.StringVar(&f.supp, "s", "n", "y/N write supplemental file of chimeric tRNAs")
	flag.StringVar(&f.title, "t", "", "title, default from input file name")
	flag.BoolVar(&f.verbose, "v", false, "verbose")
	flag.Usage = usage
	interactive := len(os.Args) == 1
	flag.Parse()
	if flag.NArg() > 1 {
		usage()
		os.Exit(ExitUsageError)
	}

	logger, err := newLogger(f.verbose)
	if err != nil {
		fmt.Fprintln(os.Stderr, "cannot start logging:", err)
		os.Exit(ExitFailure)
	}
	defer logger.Sync()

	var opts chimera.Options
	if interactive {
		opts, err = promptOptions(os.Stdin, os.Stderr)
	} else {
		set := make(map[string]bool)
		flag.Visit(func(fl *flag.Flag) { set[fl.Name] = true })
		opts, err = applyFlags(&f, flag.Args(), set)
	}
	if err == nil {
		err = chimera.Mymain(&opts, logger)
	}
	if err != nil {
		logger.Error("chitrna failed", zap.Error(err))
		logger.Sync()
		os.Exit(exitCode(err))
	}
}
