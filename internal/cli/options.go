// internal/cli/options.go
package cli

import (
	"errors"
	"flag"
	"fmt"

	"aprt/internal/version"
)

// Options holds all CLI flags. Zero values mean "not set on the command
// line"; config defaults fill them in afterwards.
type Options struct {
	// Input
	RunList   string
	Subsample int

	// Output
	OutDir  string
	OutFile string

	// Misc
	ConfigFile string
	LogLevel   string
	Quiet      bool
	Version    bool
}

// NewFlagSet returns a configured FlagSet with custom usage/help.
func NewFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.Usage = func() {
		fmt.Fprintf(fs.Output(),
			`%s: per-run confusion matrices from machine (.pcl) vs expert (.acl) patch classifications

Version: %s

Usage of %s:
`, name, version.Version, name)
		fs.PrintDefaults()
	}
	return fs
}

// ParseArgs registers and parses all flags, returns an Options struct.
func ParseArgs(fs *flag.FlagSet, argv []string) (Options, error) {
	var opt Options
	var help bool

	fs.StringVar(&opt.RunList, "runlist", "", "run list file: first line base directory, then one run name per line [*]")
	fs.IntVar(&opt.Subsample, "subsample", 0, "one-based subsample to compare (0 = config default, 1) [0]")

	fs.StringVar(&opt.OutDir, "outdir", "", "destination directory for the matrix file (default '.')")
	fs.StringVar(&opt.OutFile, "outfile", "", "matrix file name, appended per run (default 'ConfusionMatrix.txt')")

	fs.StringVar(&opt.ConfigFile, "config", "", "optional YAML config file")
	fs.StringVar(&opt.LogLevel, "log-level", "", "log level: debug | info | warn | error (default 'info')")
	fs.BoolVar(&opt.Quiet, "quiet", false, "suppress progress logging [false]")

	fs.BoolVar(&opt.Version, "v", false, "print version and exit (shorthand) [false]")
	fs.BoolVar(&opt.Version, "version", false, "print version and exit [false]")
	fs.BoolVar(&help, "h", false, "show this help message (shorthand) [false]")

	if err := fs.Parse(argv); err != nil {
		return opt, err
	}
	if help {
		fs.Usage()
		return opt, flag.ErrHelp
	}
	if opt.Version {
		return opt, nil
	}

	// Validation
	if opt.RunList == "" {
		return opt, errors.New("--runlist is required")
	}
	if opt.Subsample < 0 {
		return opt, errors.New("--subsample must be ≥ 1")
	}
	if len(fs.Args()) > 0 {
		return opt, fmt.Errorf("unexpected positional arguments: %v", fs.Args())
	}
	return opt, nil
}
