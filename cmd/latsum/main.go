package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/katalvlaran/latsum/internal/ctxlog"
	"github.com/katalvlaran/latsum/pathsearch"
)

// main is the entrypoint for the latsum command.
func main() {
	// Use a minimal logger until the configured one replaces it.
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(os.Stdout, os.Stderr, os.Args[1:]); err != nil {
		var exitErr *ExitError
		if errors.As(err, &exitErr) {
			fmt.Fprintln(os.Stderr, exitErr.Message)
			os.Exit(exitErr.Code)
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// run parses args, searches and prints the report to out. Logs go to logOut.
func run(out, logOut io.Writer, args []string) error {
	a, shouldExit, err := parseArgs(args, out)
	if err != nil {
		return err
	}
	if shouldExit {
		return nil
	}
	cfg := a.cfg

	logger := newLogger(logOut, cfg.LogLevel, cfg.LogFormat)
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	logger.Debug("Configuration resolved.", "config", cfg)

	opts, err := cfg.SearchOptions()
	if err != nil {
		return &ExitError{Code: 2, Message: err.Error()}
	}
	if a.cursor {
		opts.Scoring = pathsearch.CursorScoring
	}
	if a.sharedGrid {
		opts.GridSharing = pathsearch.SharedGrid
	}

	ctx := ctxlog.WithLogger(context.Background(), logger)
	res, err := pathsearch.Search(ctx, cfg.Width, cfg.Height, opts, cfg.GridOptions()...)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if err := report(out, res, cfg.Width, cfg.Height, cfg.Seed, a.showAll); err != nil {
		return err
	}
	if a.verify {
		return verify(out, res)
	}
	return nil
}

// verify compares the enumerated maximum with pathsearch.BestSum.
func verify(out io.Writer, res *pathsearch.Result) error {
	got, _, err := res.MaxSum()
	if err != nil {
		return err
	}
	want, path, err := pathsearch.BestSum(res.Grid)
	if err != nil {
		return err
	}
	if got != want {
		return fmt.Errorf("verify: enumerated max %d, dynamic-programming max %d @ %s", got, want, path)
	}
	fmt.Fprintf(out, "Verified against the dynamic-programming bound (%d @ [%s])\n", want, path)
	return nil
}

// report renders the grid, optionally every sum, the maximum and run stats.
func report(out io.Writer, res *pathsearch.Result, width, height int, seed int64, all bool) error {
	g := res.Grid
	if g.Width() != width || g.Height() != height {
		fmt.Fprintf(out, "Warning: a (%d,%d) field is not supported, using (%d,%d).\n\n",
			width, height, g.Width(), g.Height())
	}
	fmt.Fprintf(out, "The field (seed %d):\n", seed)
	if err := g.Render(out); err != nil {
		return err
	}
	fmt.Fprintln(out)

	if all {
		for _, sum := range res.Sums() {
			path, _ := res.Lookup(sum)
			fmt.Fprintf(out, "Route found [%s] with weight [%4d]\n", path, sum)
		}
		fmt.Fprintln(out)
	}

	best, path, err := res.MaxSum()
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "Max weight is [%d] @ [%s]\n", best, path)

	st := res.Stats
	fmt.Fprintf(out, "Evaluated %s candidates (%s valid paths, %s distinct sums) on %d worker(s) in %s\n",
		humanize.Comma(int64(st.Candidates)), humanize.Comma(int64(st.Valid)),
		humanize.Comma(int64(st.Distinct)), st.Workers, st.Elapsed.Round(time.Microsecond))
	return nil
}

// newLogger builds the slog handler selected by level and format. Values are
// validated by config.Validate beforehand.
func newLogger(w io.Writer, level, format string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	hopts := &slog.HandlerOptions{Level: lvl}
	if format == "json" {
		return slog.New(slog.NewJSONHandler(w, hopts))
	}
	return slog.New(slog.NewTextHandler(w, hopts))
}
