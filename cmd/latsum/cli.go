package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/katalvlaran/latsum/config"
)

// ExitError carries the process exit code for a failed run.
type ExitError struct {
	Code    int
	Message string
}

// Error implements the error interface for ExitError.
func (e *ExitError) Error() string {
	return e.Message
}

// cliArgs is the parsed command line layered over the loaded config.
type cliArgs struct {
	cfg        config.Config
	sharedGrid bool
	cursor     bool
	showAll    bool
	verify     bool
}

// parseArgs processes command-line arguments. Flags override the config
// file, which overrides the defaults. Positional WIDTH HEIGHT override both;
// non-numeric values become 0, which the grid then treats as unsupported.
// The boolean reports a clean exit (help requested).
func parseArgs(args []string, output io.Writer) (*cliArgs, bool, error) {
	flagSet := flag.NewFlagSet("latsum", flag.ContinueOnError)
	flagSet.SetOutput(output)
	flagSet.Usage = func() {
		fmt.Fprint(output, `
latsum - exhaustive search of monotonic lattice paths over a weighted grid.

Usage:
  latsum [options] [WIDTH HEIGHT]

Options:
`)
		flagSet.PrintDefaults()
	}

	configFlag := flagSet.String("config", "", "Path to a .yaml/.yml or .hcl config file.")
	widthFlag := flagSet.Int("width", 0, "Grid width (columns). Overrides the config file when > 0.")
	heightFlag := flagSet.Int("height", 0, "Grid height (rows). Overrides the config file when > 0.")
	seedFlag := flagSet.Int64("seed", 0, "Weight RNG seed. 0 derives one from the clock.")
	workersFlag := flagSet.Int("workers", -1, "Parallel workers. 0 uses every CPU; -1 keeps the config value.")
	sequentialFlag := flagSet.Bool("sequential", false, "Enumerate on a single goroutine.")
	fullRangeFlag := flagSet.Bool("full-range", false, "Enumerate all 2^L indices instead of the narrowed range.")
	cursorFlag := flagSet.Bool("cursor", false, "Score paths by moving the grid cursor instead of the pure walk.")
	sharedFlag := flagSet.Bool("shared-grid", false, "With -cursor, share one grid between workers behind a lock.")
	allFlag := flagSet.Bool("all", false, "Print every distinct sum with its path.")
	verifyFlag := flagSet.Bool("verify", false, "Cross-check the maximum against the dynamic-programming bound.")
	logLevelFlag := flagSet.String("log-level", "", "Logging level: 'debug', 'info', 'warn', 'error'.")
	logFormatFlag := flagSet.String("log-format", "", "Log output format: 'text' or 'json'.")

	if err := flagSet.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, true, nil
		}
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	cfg := config.Default()
	if *configFlag != "" {
		loaded, err := config.Load(*configFlag)
		if err != nil {
			return nil, false, &ExitError{Code: 2, Message: err.Error()}
		}
		cfg = loaded
	}

	if *widthFlag > 0 {
		cfg.Width = *widthFlag
	}
	if *heightFlag > 0 {
		cfg.Height = *heightFlag
	}
	switch flagSet.NArg() {
	case 0:
	case 2:
		cfg.Width = atoiOrZero(flagSet.Arg(0))
		cfg.Height = atoiOrZero(flagSet.Arg(1))
	default:
		return nil, false, &ExitError{Code: 2, Message: "expected WIDTH HEIGHT or no positional arguments"}
	}
	if *seedFlag != 0 {
		cfg.Seed = *seedFlag
	}
	if *workersFlag >= 0 {
		cfg.Workers = *workersFlag
	}
	if *sequentialFlag {
		cfg.Mode = config.ModeSequential
	}
	if *fullRangeFlag {
		cfg.Narrow = false
	}
	if *logLevelFlag != "" {
		cfg.LogLevel = strings.ToLower(*logLevelFlag)
	}
	if *logFormatFlag != "" {
		cfg.LogFormat = strings.ToLower(*logFormatFlag)
	}
	if err := cfg.Validate(); err != nil {
		return nil, false, &ExitError{Code: 2, Message: err.Error()}
	}

	return &cliArgs{cfg: cfg, sharedGrid: *sharedFlag, cursor: *cursorFlag, showAll: *allFlag, verify: *verifyFlag}, false, nil
}

// atoiOrZero maps malformed numbers to 0 so the size check rejects them.
func atoiOrZero(s string) int {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0
	}
	return n
}
