package treetest

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/dkoosis/treetest/pkg/theme"
)

const (
	// DefaultStatsColumn is the terminal column where the statistics
	// block starts on every suite line, independent of nesting depth.
	DefaultStatsColumn = 50

	// legendColumn is where the second legend entry starts on each line.
	legendColumn = 27
)

// Renderer draws a suite tree as a Unicode box-drawing report with a
// fixed statistics column. Rendering never mutates the tree and is safe
// to call repeatedly; the same tree renders to identical bytes.
type Renderer struct {
	w           io.Writer
	theme       theme.Theme
	statsColumn int
	title       string
	hideLegend  bool
}

// NewRenderer creates a renderer from the given configuration. Zero-value
// fields fall back to the same defaults NewRunner applies.
func NewRenderer(cfg Config) *Renderer {
	cfg = cfg.normalize()
	return &Renderer{
		w:           cfg.Out,
		theme:       resolveTheme(cfg.Theme, cfg.Out),
		statsColumn: cfg.StatsColumn,
		title:       cfg.Title,
		hideLegend:  cfg.HideLegend,
	}
}

// Render writes the full report: optional title, legend, then one subtree
// per top-level suite in order. Statistics must already be fresh; callers
// normally go through Runner.Report, which recomputes first.
func (r *Renderer) Render(suites []*Suite) {
	if r == nil {
		return
	}
	if r.title != "" {
		fmt.Fprintln(r.w, r.theme.Bold.Render(cases.Title(language.English).String(r.title)))
		fmt.Fprintln(r.w)
	}
	if !r.hideLegend {
		r.legend()
	}
	for i, s := range suites {
		r.node(s, "", i == len(suites)-1)
	}
}

// legend prints the glyph key: three lines pairing the anticipated form
// of each glyph with its unanticipated one, then a blank line.
func (r *Renderer) legend() {
	entries := [][2]string{
		{r.theme.Success.Render("K") + " - success", r.theme.Warning.Render("K") + " - unexpected output"},
		{r.theme.Muted.Render("B") + " - expected build error", r.theme.Error.Render("B") + " - build error"},
		{r.theme.Muted.Render("R") + " - expected runtime error", r.theme.Error.Render("R") + " - runtime error"},
	}
	for _, e := range entries {
		fmt.Fprintln(r.w, theme.PadRight(e[0], legendColumn)+e[1])
	}
	fmt.Fprintln(r.w)
}

func (r *Renderer) node(s *Suite, prefix string, last bool) {
	if s == nil {
		return
	}
	connector := "├"
	if last {
		connector = "└"
	}
	line := prefix + connector + "─" + s.name

	// Pad to the statistics column by visual width, floored at one
	// space so long names never collide with the counts.
	pad := r.statsColumn - runewidth.StringWidth(line)
	if pad < 1 {
		pad = 1
	}
	fmt.Fprintf(r.w, "%s%s%s\n", line, strings.Repeat(" ", pad), r.statsBlock(s.stats))

	childPrefix := prefix + "  "
	if !last {
		childPrefix = prefix + "│ "
	}
	for i, child := range s.children {
		r.node(child, childPrefix, i == len(s.children)-1)
	}
	for i, c := range s.cases {
		// Cases print after child suites but keep the original
		// last-sibling rule: the closing corner only appears when the
		// suite has no child suites at all.
		lastCase := i == len(s.cases)-1 && len(s.children) == 0
		r.caseLine(c, childPrefix, lastCase)
	}
}

func (r *Renderer) caseLine(c *Case, prefix string, last bool) {
	connector := "├"
	if last {
		connector = "└"
	}
	var sb strings.Builder
	sb.WriteString(prefix + connector + "─" + c.name + ": ")
	for _, res := range c.results {
		sb.WriteString(r.styleFor(res).Render(res.Glyph()))
		sb.WriteString(" ")
	}
	fmt.Fprintln(r.w, sb.String())
}

// statsBlock formats the six counts in fixed column order, pairing the
// anticipated and unanticipated form of each glyph group.
func (r *Renderer) statsBlock(st Stats) string {
	return fmt.Sprintf("K: %s/%s  B: %s/%s  R: %s/%s",
		r.theme.Success.Render(fmt.Sprintf("%2d", st.Success)),
		r.theme.Warning.Render(strconv.Itoa(st.UnexpectedOutput)),
		r.theme.Muted.Render(fmt.Sprintf("%2d", st.ExpectedBuildError)),
		r.theme.Error.Render(strconv.Itoa(st.BuildError)),
		r.theme.Muted.Render(fmt.Sprintf("%2d", st.ExpectedRuntimeError)),
		r.theme.Error.Render(strconv.Itoa(st.RuntimeError)))
}

func (r *Renderer) styleFor(s Status) lipgloss.Style {
	switch {
	case s == Success:
		return r.theme.Success
	case s == UnexpectedOutput:
		return r.theme.Warning
	case s.Expected():
		return r.theme.Muted
	default:
		return r.theme.Error
	}
}
