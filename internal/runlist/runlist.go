// internal/runlist/runlist.go

// Package runlist reads the run list file that drives a comparison batch:
// the first non-blank line names the base directory holding the runfiles,
// each following non-blank line one run to process.
package runlist

import (
	"bufio"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// List is a parsed run list.
type List struct {
	Dir  string
	Runs []string
}

// Load parses the run list at path. Blank lines and '#' comments are
// skipped; a list with a directory but no runs is valid (an empty batch).
func Load(path string) (*List, error) {
	fh, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() { _ = fh.Close() }()

	l := &List{}
	sc := bufio.NewScanner(fh)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || line[0] == '#' {
			continue
		}
		if l.Dir == "" {
			l.Dir = line
			continue
		}
		l.Runs = append(l.Runs, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("runlist: %s: %w", path, err)
	}
	if l.Dir == "" {
		return nil, fmt.Errorf("runlist: %s: missing base directory line", path)
	}
	return l, nil
}

// RunPath joins the base directory, run name, and a classification file
// extension into the path of one runfile collaborator.
func (l *List) RunPath(run, ext string) string {
	return filepath.Join(l.Dir, run+ext)
}
