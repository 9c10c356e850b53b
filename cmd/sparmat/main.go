// SPDX-License-Identifier: MIT
// sparmat is a command line calculator for sparse matrices stored in the
// triplet text format.
//
// Usage:
//
//	sparmat add -a left.mtx -b right.mtx [-o out.mtx]
//	sparmat sub -a left.mtx -b right.mtx [-o out.mtx]
//	sparmat mul -a left.mtx -b right.mtx [-o out.mtx]
//	sparmat scale -a in.mtx -alpha 2.5 [-o out.mtx]
//	sparmat transpose -a in.mtx [-o out.mtx]
//	sparmat info -a in.mtx
//	sparmat random -rows 16 -cols 16 -p 0.1 -seed 42 [-o out.mtx]
//
// Results go to stdout unless -o names a file. Diagnostics go to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"math/rand"
	"os"
	"time"

	"github.com/rs/zerolog"

	"github.com/katalvlaran/sparmat/sparse"
	"github.com/katalvlaran/sparmat/triplet"
)

// Supported commands.
const (
	addCommand       = "add"
	subCommand       = "sub"
	mulCommand       = "mul"
	scaleCommand     = "scale"
	transposeCommand = "transpose"
	infoCommand      = "info"
	randomCommand    = "random"
)

// errNoInput reports a command invoked without its operand path.
var errNoInput = errors.New("missing input path (use -a / -b)")

// cliArgs carries the parsed flag values of one invocation.
type cliArgs struct {
	aPath, bPath, outPath string
	alpha, prob           float64
	rows, cols            int
	seed                  int64
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	if command == "help" || command == "-h" || command == "--help" {
		printUsage()
		return
	}

	flags := flag.NewFlagSet(command, flag.ExitOnError)
	aPath := flags.String("a", "", "path of the left (or only) input matrix")
	bPath := flags.String("b", "", "path of the right input matrix (add, sub, mul)")
	outPath := flags.String("o", "", "output path; empty writes to stdout")
	alpha := flags.Float64("alpha", 1, "scalar factor (scale)")
	rows := flags.Int("rows", 0, "row count (random)")
	cols := flags.Int("cols", 0, "column count (random)")
	prob := flags.Float64("p", 0.1, "fill probability in [0,1] (random)")
	seed := flags.Int64("seed", 1, "pseudo random seed (random)")
	verbose := flags.Bool("v", false, "enable debug logging")
	flags.Usage = printUsage
	flags.Parse(os.Args[2:])

	log := newLogger(*verbose)
	args := cliArgs{
		aPath:   *aPath,
		bPath:   *bPath,
		outPath: *outPath,
		alpha:   *alpha,
		prob:    *prob,
		rows:    *rows,
		cols:    *cols,
		seed:    *seed,
	}

	start := time.Now()
	if err := run(command, args, log); err != nil {
		log.Error().Err(err).Str("command", command).Msg("sparmat failed")
		os.Exit(1)
	}
	log.Debug().Str("command", command).Dur("elapsed", time.Since(start)).Msg("command complete")
}

// run dispatches one command and serializes its result.
func run(command string, args cliArgs, log zerolog.Logger) error {
	var (
		res *sparse.Matrix // result to serialize
		m   *sparse.Matrix // single operand of the unary commands
		err error
	)
	switch command {
	case addCommand, subCommand, mulCommand:
		res, err = runBinary(command, args, log)
	case scaleCommand:
		if m, err = loadInput(args.aPath, log); err == nil {
			res, err = sparse.Scale(m, args.alpha)
		}
	case transposeCommand:
		if m, err = loadInput(args.aPath, log); err == nil {
			res, err = sparse.Transpose(m)
		}
	case infoCommand:
		if m, err = loadInput(args.aPath, log); err != nil {
			return err
		}
		fmt.Printf("%d x %d, %d stored entries\n", m.Rows(), m.Cols(), m.NNZ())
		return nil
	case randomCommand:
		res, err = sparse.Random(args.rows, args.cols, args.prob, rand.New(rand.NewSource(args.seed)))
	default:
		printUsage()
		return fmt.Errorf("unknown command %q", command)
	}
	if err != nil {
		return err
	}

	return emit(args.outPath, res, log)
}

// runBinary loads both operands and applies the requested kernel.
func runBinary(command string, args cliArgs, log zerolog.Logger) (*sparse.Matrix, error) {
	a, err := loadInput(args.aPath, log)
	if err != nil {
		return nil, err
	}
	b, err := loadInput(args.bPath, log)
	if err != nil {
		return nil, err
	}

	switch command {
	case addCommand:
		return sparse.Add(a, b)
	case subCommand:
		return sparse.Sub(a, b)
	default:
		return sparse.Mul(a, b)
	}
}

// loadInput reads one operand file, insisting on an explicit path.
func loadInput(path string, log zerolog.Logger) (*sparse.Matrix, error) {
	if path == "" {
		return nil, errNoInput
	}
	m, err := triplet.ReadFile(path, triplet.WithLogger(log))
	if err != nil {
		return nil, err
	}
	log.Debug().
		Str("path", path).
		Int("rows", m.Rows()).
		Int("cols", m.Cols()).
		Int("nnz", m.NNZ()).
		Msg("loaded matrix")

	return m, nil
}

// emit serializes the result to -o or, when the path is empty, to stdout.
func emit(outPath string, m *sparse.Matrix, log zerolog.Logger) error {
	if outPath == "" {
		return triplet.Encode(os.Stdout, m, triplet.WithLogger(log))
	}

	return triplet.WriteFile(outPath, m, triplet.WithLogger(log))
}

// newLogger builds the stderr console logger; -v lifts it to debug level.
func newLogger(verbose bool) zerolog.Logger {
	level := zerolog.InfoLevel
	if verbose {
		level = zerolog.DebugLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly}).
		Level(level).With().Timestamp().Logger()
}

func printUsage() {
	fmt.Fprint(os.Stderr, `sparmat - sparse matrix calculator (triplet text format)

Usage:
  sparmat add -a left.mtx -b right.mtx [-o out.mtx]   Entrywise sum
  sparmat sub -a left.mtx -b right.mtx [-o out.mtx]   Entrywise difference
  sparmat mul -a left.mtx -b right.mtx [-o out.mtx]   Matrix product
  sparmat scale -a in.mtx -alpha 2.5 [-o out.mtx]     Scalar multiple
  sparmat transpose -a in.mtx [-o out.mtx]            Transpose
  sparmat info -a in.mtx                              Print shape and entry count
  sparmat random -rows 16 -cols 16 -p 0.1 -seed 42    Draw a random matrix

Options:
  -a path     left (or only) input matrix
  -b path     right input matrix (add, sub, mul)
  -o path     output file; stdout when omitted
  -alpha x    scalar factor for scale (default 1)
  -rows n     row count for random
  -cols n     column count for random
  -p x        fill probability for random (default 0.1)
  -seed n     pseudo random seed for random (default 1)
  -v          debug logging

Examples:
  sparmat random -rows 4 -cols 4 -p 0.5 -seed 7 -o a.mtx
  sparmat mul -a a.mtx -b a.mtx
`)
}
