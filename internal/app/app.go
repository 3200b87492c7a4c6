// internal/app/app.go
package app

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"path/filepath"

	"go.uber.org/zap"

	"aprt-core/classlist"
	"aprt-core/confusion"
	"aprt/internal/cli"
	"aprt/internal/config"
	"aprt/internal/logging"
	"aprt/internal/runlist"
	"aprt/internal/version"
	"aprt/internal/writers"
)

// RunContext drives one comparison batch: for every run on the run list it
// parses the machine (.pcl) and expert (.acl) classification files, builds
// the confusion matrix for the selected subsample, and appends it to the
// sink. A failing run is logged and skipped; the batch carries on.
func RunContext(parent context.Context, argv []string, stdout, stderr io.Writer) int {
	outw := bufio.NewWriter(stdout)
	defer func() { _ = outw.Flush() }()

	fs := cli.NewFlagSet("aprt-confusion")
	fs.SetOutput(io.Discard)

	if len(argv) == 0 {
		argv = []string{"-h"}
	}

	opts, err := cli.ParseArgs(fs, argv)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			fs.SetOutput(outw)
			fs.Usage()
			return 0
		}
		_, _ = fmt.Fprintln(stderr, err)
		fs.SetOutput(stderr)
		fs.Usage()
		return 2
	}
	if opts.Version {
		_, _ = fmt.Fprintf(outw, "aprt-confusion version %s\n", version.Version)
		return 0
	}

	cfg := config.Default()
	if opts.ConfigFile != "" {
		cfg, err = config.Load(opts.ConfigFile)
		if err != nil {
			_, _ = fmt.Fprintln(stderr, err)
			return 2
		}
	}
	applyFlags(cfg, opts)

	log, err := logging.New(cfg.Logging.Level, opts.Quiet)
	if err != nil {
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}
	defer func() { _ = log.Sync() }()

	runs, err := runlist.Load(opts.RunList)
	if err != nil {
		log.Error("run list unreadable", zap.String("path", opts.RunList), zap.Error(err))
		_, _ = fmt.Fprintln(stderr, err)
		return 3
	}

	sink := filepath.Join(cfg.OutDir, cfg.OutFile)
	log.Info("starting batch",
		zap.String("runlist", opts.RunList),
		zap.String("dir", runs.Dir),
		zap.Int("runs", len(runs.Runs)),
		zap.Int("subsample", cfg.Subsample),
		zap.String("sink", sink))

	succeeded := 0
	for _, run := range runs.Runs {
		select {
		case <-parent.Done():
			log.Warn("batch canceled", zap.Int("completed", succeeded))
			return 130
		default:
		}

		log.Info("processing run", zap.String("run", run))
		if err := compareRun(runs, run, cfg, sink); err != nil {
			log.Error("run failed", zap.String("run", run), zap.Error(err))
			continue
		}
		succeeded++
	}

	log.Info("batch done", zap.Int("succeeded", succeeded), zap.Int("failed", len(runs.Runs)-succeeded))
	if succeeded == 0 && len(runs.Runs) > 0 {
		return 1
	}
	return 0
}

// applyFlags lets explicit CLI values win over config file values.
func applyFlags(cfg *config.Config, opts cli.Options) {
	if opts.Subsample > 0 {
		cfg.Subsample = opts.Subsample
	}
	if opts.OutDir != "" {
		cfg.OutDir = opts.OutDir
	}
	if opts.OutFile != "" {
		cfg.OutFile = opts.OutFile
	}
	if opts.LogLevel != "" {
		cfg.Logging.Level = opts.LogLevel
	}
}

// compareRun handles a single run end to end: parse both classification
// files, build the matrix, append it to the sink.
func compareRun(runs *runlist.List, run string, cfg *config.Config, sink string) error {
	machine, err := classlist.ParseFile(runs.RunPath(run, cfg.Extensions.Machine))
	if err != nil {
		return fmt.Errorf("machine classifications: %w", err)
	}
	expert, err := classlist.ParseFile(runs.RunPath(run, cfg.Extensions.Expert))
	if err != nil {
		return fmt.Errorf("expert classifications: %w", err)
	}

	m, err := confusion.Build(machine, expert, cfg.Subsample)
	if err != nil {
		return err
	}
	return writers.AppendMatrix(sink, m)
}

// Run is the background-context convenience wrapper.
func Run(argv []string, stdout, stderr io.Writer) int {
	return RunContext(context.Background(), argv, stdout, stderr)
}
