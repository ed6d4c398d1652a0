// Command matchembeds decides, for each file given on the command line,
// whether the first of the two structures it contains embeds into the
// second, printing "True" or "False" per file.
package main

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	gologging "github.com/op/go-logging"
	"github.com/urfave/cli/v2"

	applog "github.com/katalvlaran/matchembeds/logging"

	"github.com/katalvlaran/matchembeds/intern"
	"github.com/katalvlaran/matchembeds/parse"
	"github.com/katalvlaran/matchembeds/selection"
	"github.com/katalvlaran/matchembeds/solver"
)

var (
	heuristicFlag = &cli.StringFlag{
		Name:  "heuristic",
		Value: selection.MinRemainingValues.String(),
		Usage: "variable-selection heuristic (min-remaining-values, max-remaining-values, min-conflicts, max-conflicts, min-conflict-history, max-conflict-history, first-var, weighted-random, uniform-random)",
	}
	seedFlag = &cli.Int64Flag{
		Name:  "seed",
		Value: 0,
		Usage: "RNG seed for randomized heuristics",
	}
	witnessFlag = &cli.BoolFlag{
		Name:  "witness",
		Value: false,
		Usage: "also print the witness mapping when the answer is True",
	}
	timeoutFlag = &cli.DurationFlag{
		Name:  "timeout",
		Value: 0,
		Usage: "abort the search after this duration (0 = unlimited)",
	}
	logLevelFlag = &cli.StringFlag{
		Name:  "log-level",
		Value: "INFO",
		Usage: "op/go-logging level",
	}
)

func main() {
	app := &cli.App{
		Name:      "matchembeds",
		Usage:     "decide whether one finite relational structure embeds into another",
		ArgsUsage: "FILE [FILE...]",
		Flags:     []cli.Flag{heuristicFlag, seedFlag, witnessFlag, timeoutFlag, logLevelFlag},
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run is the cli.App Action: it validates the driver-level arguments
// and dispatches to processFile for each path. Per-file parse or solve
// failures never abort the run or change the process exit code; they
// are reported to stderr and the loop continues.
func run(c *cli.Context) error {
	if c.NArg() == 0 {
		return errors.New("matchembeds: at least one file argument is required")
	}

	heuristic, err := selection.Parse(c.String("heuristic"))
	if err != nil {
		return err
	}

	log := applog.NewLogger(c.String("log-level"), "matchembeds")

	for _, path := range c.Args().Slice() {
		processFile(log, path, heuristic, c.Int64("seed"), c.Bool("witness"), c.Duration("timeout"))
	}

	return nil
}

func processFile(log *gologging.Logger, path string, heuristic selection.Heuristic, seed int64, withWitness bool, timeout time.Duration) {
	f, err := os.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)

		return
	}
	defer f.Close()

	a, b, err := parse.ReadPair(f, intern.New())
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)

		return
	}

	opts := solver.Options{Heuristic: heuristic, Seed: seed}
	if timeout > 0 {
		deadline := time.Now().Add(timeout)
		opts.AbortCheck = func() bool { return time.Now().After(deadline) }
	}

	start := time.Now()
	res, err := solver.Solve(a, b, opts)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", path, err)

		return
	}

	if res.Satisfiable {
		fmt.Println("True")
		if withWitness {
			fmt.Println(formatWitness(res.Witness))
		}
	} else {
		fmt.Println("False")
	}

	h, m, s := applog.ParseTime(time.Since(start))
	log.Debugf("%s: solved in %dh%dm%ds", path, h, m, s)
}

func formatWitness(w solver.Witness) string {
	var sb strings.Builder
	for i, v := range w {
		if i > 0 {
			sb.WriteByte(' ')
		}
		fmt.Fprintf(&sb, "h(%d)=%d", i, v)
	}

	return sb.String()
}
