// Package treetest is a minimal test harness: named suites form a tree,
// cases record ordered outcome logs, statistics roll up bottom-up, and a
// colored box-drawing report is written to the terminal.
//
// The harness runs nothing concurrently and detects nothing itself: each
// test function returns one Status, and what that status means (an
// expected build error, say) is entirely the caller's classification.
package treetest

import (
	"io"
	"os"

	"golang.org/x/term"

	"github.com/dkoosis/treetest/pkg/theme"
)

// Config controls where and how a Runner writes its report.
type Config struct {
	Out         io.Writer // report destination, defaults to os.Stdout
	Theme       string    // "default" or "mono"; empty picks by terminal
	StatsColumn int       // column where statistics start, defaults to DefaultStatsColumn
	Title       string    // optional heading printed above the legend
	HideLegend  bool      // suppress the glyph key
}

func (cfg Config) normalize() Config {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.StatsColumn <= 0 {
		cfg.StatsColumn = DefaultStatsColumn
	}
	return cfg
}

// resolveTheme picks the configured theme, falling back to monochrome
// when the destination is not a terminal.
func resolveTheme(name string, out io.Writer) theme.Theme {
	if name != "" {
		return theme.ByName(name)
	}
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return theme.Default()
	}
	return theme.Mono()
}

// Runner is the sole root of the suite tree. It owns the ordered list of
// top-level suites and drives execution and report generation.
type Runner struct {
	suites   []*Suite
	renderer *Renderer
}

// NewRunner creates a runner with the given configuration.
func NewRunner(cfg Config) *Runner {
	return &Runner{renderer: NewRenderer(cfg)}
}

// DefaultRunner creates a runner reporting to stdout with defaults.
func DefaultRunner() *Runner {
	return NewRunner(Config{})
}

// AddSuite appends a top-level suite, preserving insertion order. A nil
// receiver or suite is a silent no-op.
func (r *Runner) AddSuite(s *Suite) {
	if r == nil || s == nil {
		return
	}
	r.suites = append(r.suites, s)
}

// Suites returns a snapshot of the registered top-level suites.
func (r *Runner) Suites() []*Suite {
	if r == nil || len(r.suites) == 0 {
		return nil
	}
	out := make([]*Suite, len(r.suites))
	copy(out, r.suites)
	return out
}

// Run executes every case in the tree that has a function and an empty
// outcome log, invoking each such function exactly once, then recomputes
// statistics and writes the report. Execution descends into child suites
// so nested cases run in registration order too.
func (r *Runner) Run() {
	if r == nil {
		return
	}
	for _, s := range r.suites {
		runSuite(s)
	}
	r.Report()
}

func runSuite(s *Suite) {
	for _, c := range s.cases {
		c.invoke()
	}
	for _, child := range s.children {
		runSuite(child)
	}
}

// Report recomputes every suite's statistics bottom-up and renders the
// tree. It performs no execution and no mutation beyond the statistics
// snapshots; calling it twice produces identical output.
func (r *Runner) Report() {
	if r == nil {
		return
	}
	for _, s := range r.suites {
		s.Recompute()
	}
	r.renderer.Render(r.suites)
}
