// Command raybox loads a mirror configuration, fires every ray from a ray
// file through it and prints one terminal observation per ray:
//
//	raybox [flags] <config> <rays>
//
// Output lines look like "C1+ -> {1,1}". Diagnostics go to stderr.
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/katalvlaran/raybox/grid"
	"github.com/katalvlaran/raybox/input"
)

// errUsage marks a command-line usage error.
var errUsage = errors.New("usage: raybox [flags] <config> <rays>")

type options struct {
	jsonConfig bool
	dump       bool
	timing     bool
	keepGoing  bool
	verbose    bool
	maxSteps   int
	configPath string
	raysPath   string
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var o options
	fs := flag.NewFlagSet("raybox", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.BoolVar(&o.jsonConfig, "json", false, "read the configuration as JSON (default: by .json extension)")
	fs.BoolVar(&o.dump, "dump", false, "print every occupied cell as row,col,strength,angle before firing rays")
	fs.BoolVar(&o.timing, "timing", false, "log the time spent on the whole ray batch")
	fs.BoolVar(&o.keepGoing, "keep-going", false, "report malformed ray lines and continue instead of aborting")
	fs.BoolVar(&o.verbose, "v", false, "enable debug logging")
	fs.IntVar(&o.maxSteps, "max-steps", 0, "deflections allowed per ray before a cycle is reported (0: 4 per mirror)")
	if err := fs.Parse(args); err != nil {
		return o, err
	}
	if fs.NArg() != 2 {
		return o, errUsage
	}
	o.configPath, o.raysPath = fs.Arg(0), fs.Arg(1)
	if strings.HasSuffix(o.configPath, ".json") {
		o.jsonConfig = true
	}

	return o, nil
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes one simulation and returns the process exit code.
func run(args []string, stdout, stderr io.Writer) int {
	o, err := parseFlags(args, stderr)
	if err != nil {
		if !errors.Is(err, flag.ErrHelp) {
			fmt.Fprintln(stderr, err)
		}
		return 1
	}

	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})).
		With(slog.String("run_id", uuid.New().String()))

	if err := simulate(o, stdout, logger); err != nil {
		logger.Error("simulation failed", slog.String("error", err.Error()))
		return 1
	}

	return 0
}

// simulate loads the board and fires every ray, one at a time.
func simulate(o options, stdout io.Writer, logger *slog.Logger) error {
	load := input.LoadConfig
	if o.jsonConfig {
		load = input.LoadJSONConfig
	}
	cfg, err := load(o.configPath)
	if err != nil {
		return err
	}

	g, err := cfg.Build(
		grid.WithLogger(logger.With(slog.String("component", "grid"))),
		grid.WithMaxSteps(o.maxSteps),
	)
	if err != nil {
		return fmt.Errorf("%s: %w", o.configPath, err)
	}
	logger.Debug("board ready",
		slog.Int("size", g.Size()),
		slog.Int("placements", len(cfg.Placements)),
		slog.Int("mirrors", g.Len()),
	)

	if o.dump {
		if err := g.Dump(stdout); err != nil {
			return err
		}
	}

	var rayOpts []input.RayOption
	if o.keepGoing {
		rayOpts = append(rayOpts, input.WithSkipInvalid(func(err error) {
			logger.Warn("ray skipped", slog.String("error", err.Error()))
		}))
	}

	start := time.Now()
	fired := 0
	err = input.ProcessRayFile(o.raysPath, g.Size(), func(c input.RayCommand) error {
		obs, err := g.Propagate(c.Ray)
		if err != nil {
			return fmt.Errorf("%s:%d: %s: %w", o.raysPath, c.Line, c.Token, err)
		}
		fired++
		_, err = fmt.Fprintf(stdout, "%s -> %s\n", c.Token, obs)
		return err
	}, rayOpts...)
	if err != nil {
		return err
	}

	if o.timing {
		logger.Info("ray batch done",
			slog.Int("rays", fired),
			slog.Int64("microseconds", time.Since(start).Microseconds()),
		)
	}

	return nil
}
