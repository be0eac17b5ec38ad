package report

import (
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/chipflow/sdfkit/analysis"
	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/model"
	"github.com/chipflow/sdfkit/timegraph"
)

// ErrBadTopN indicates an endpoint limit below one.
var ErrBadTopN = errors.New("report: top-n limit must be at least 1")

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#00FFFF"))

	sectionStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	okStyle = lipgloss.NewStyle().
		Bold(true).
		Foreground(lipgloss.Color("#00FF00"))

	problemStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF0000"))
)

// Option configures Render.
type Option func(*Options)

// Options holds the report parameters.
type Options struct {
	// Corner and Metric select the scalar lens for stats and endpoints.
	Corner delay.Corner
	Metric delay.Metric

	// TopN caps the endpoint section.
	TopN int

	// Period, when set, adds a slack column to the endpoint section.
	Period    float64
	HasPeriod bool

	err error
}

// DefaultOptions reports the nominal corner's max field and the five
// slowest endpoints.
func DefaultOptions() Options {
	return Options{Corner: delay.Nominal, Metric: delay.Max, TopN: 5}
}

// WithCorner selects the analysis corner.
func WithCorner(c delay.Corner) Option {
	return func(o *Options) { o.Corner = c }
}

// WithMetric selects the min, typ or max field.
func WithMetric(m delay.Metric) Option {
	return func(o *Options) { o.Metric = m }
}

// WithTopN caps the endpoint section at n rows.
func WithTopN(n int) Option {
	return func(o *Options) {
		if n < 1 {
			o.err = fmt.Errorf("%w (got %d)", ErrBadTopN, n)
			return
		}
		o.TopN = n
	}
}

// WithPeriod adds a slack column against the given clock period.
func WithPeriod(period float64) Option {
	return func(o *Options) {
		o.Period = period
		o.HasPeriod = true
	}
}

// Render produces the full styled report for f.
func Render(f *model.File, opts ...Option) (string, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return "", o.err
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render("Timing Report"))
	b.WriteString("\n\n")

	writeHeader(&b, f.Header)
	writeStats(&b, f, o)
	writeLint(&b, f)
	if err := writeEndpoints(&b, f, o); err != nil {
		return "", err
	}
	return b.String(), nil
}

func writeHeader(b *strings.Builder, h model.Header) {
	b.WriteString(sectionStyle.Render("Header"))
	b.WriteString("\n")
	any := false
	for _, field := range h.Fields() {
		if field.Value == "" {
			continue
		}
		any = true
		fmt.Fprintf(b, "  %s %s\n", labelStyle.Render(field.Name+":"), field.Value)
	}
	if !any {
		fmt.Fprintf(b, "  %s\n", labelStyle.Render("(empty)"))
	}
	b.WriteString("\n")
}

func writeStats(b *strings.Builder, f *model.File, o Options) {
	s := analysis.Summarize(f, o.Corner, o.Metric)

	b.WriteString(sectionStyle.Render("Statistics"))
	b.WriteString("\n")
	fmt.Fprintf(b, "  %s %d cell types, %d instances, %d entries\n",
		labelStyle.Render("design:"), s.CellTypes, s.Instances, s.Entries)

	kinds := make([]model.EntryKind, 0, len(s.ByKind))
	for k := range s.ByKind {
		kinds = append(kinds, k)
	}
	sort.Slice(kinds, func(i, j int) bool { return kinds[i].String() < kinds[j].String() })
	for _, k := range kinds {
		fmt.Fprintf(b, "  %s %d\n", labelStyle.Render(k.String()+":"), s.ByKind[k])
	}

	if s.Scalars.Count > 0 {
		fmt.Fprintf(b, "  %s count=%d min=%g max=%g mean=%g median=%g\n",
			labelStyle.Render(fmt.Sprintf("%s/%s:", o.Corner, o.Metric)),
			s.Scalars.Count, s.Scalars.Min, s.Scalars.Max, s.Scalars.Mean, s.Scalars.Median)
	}
	b.WriteString("\n")
}

func writeLint(b *strings.Builder, f *model.File) {
	problems := analysis.Lint(f)

	b.WriteString(sectionStyle.Render("Lint"))
	b.WriteString("\n")
	if len(problems) == 0 {
		fmt.Fprintf(b, "  %s\n\n", okStyle.Render("clean"))
		return
	}
	for _, p := range problems {
		fmt.Fprintf(b, "  %s %s\n", problemStyle.Render("["+string(p.Code)+"]"), p.Message)
	}
	b.WriteString("\n")
}

func writeEndpoints(b *strings.Builder, f *model.File, o Options) error {
	b.WriteString(sectionStyle.Render("Slowest Endpoints"))
	b.WriteString("\n")

	g, err := timegraph.Build(f)
	if err != nil {
		return err
	}
	reports, err := analysis.BatchEndpoints(g, o.Corner, o.Metric)
	if err != nil {
		return err
	}
	if len(reports) == 0 {
		fmt.Fprintf(b, "  %s\n", labelStyle.Render("(no paths)"))
		return nil
	}
	if len(reports) > o.TopN {
		reports = reports[:o.TopN]
	}
	for _, r := range reports {
		route := fmt.Sprintf("%s -> %s", r.Source, r.Sink)
		if !r.Comparable {
			fmt.Fprintf(b, "  %s %s (%d paths)\n",
				route, labelStyle.Render("incomparable"), r.Paths)
			continue
		}
		line := fmt.Sprintf("  %s %g (%d paths)", route, r.Critical.Scalar, r.Paths)
		if o.HasPeriod {
			slack := o.Period - r.Critical.Scalar
			rendered := okStyle.Render(fmt.Sprintf("slack %g", slack))
			if slack < 0 {
				rendered = problemStyle.Render(fmt.Sprintf("slack %g", slack))
			}
			line += " " + rendered
		}
		b.WriteString(line + "\n")
	}
	return nil
}
