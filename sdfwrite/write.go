package sdfwrite

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"text/template"

	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/model"
	"github.com/chipflow/sdfkit/normalize"
)

// ErrUnsupportedCorners indicates a delay arc whose corner set has no
// SDF rvalue-list spelling.
var ErrUnsupportedCorners = errors.New("sdfwrite: corner set has no SDF representation")

var fileTemplate = template.Must(template.New("sdf").Parse(`(DELAYFILE
{{- range .Header}}
  ({{.}})
{{- end}}
{{- range .Cells}}
  (CELL
    (CELLTYPE "{{.CellType}}")
    (INSTANCE{{if .Instance}} {{.Instance}}{{end}})
{{- if or .Absolute .Increment}}
    (DELAY
{{- if .Absolute}}
      (ABSOLUTE
{{- range .Absolute}}
        {{.}}
{{- end}}
      )
{{- end}}
{{- if .Increment}}
      (INCREMENT
{{- range .Increment}}
        {{.}}
{{- end}}
      )
{{- end}}
    )
{{- end}}
{{- if .Checks}}
    (TIMINGCHECK
{{- range .Checks}}
      {{.}}
{{- end}}
    )
{{- end}}
{{- if .Envs}}
    (TIMINGENV
{{- range .Envs}}
      {{.}}
{{- end}}
    )
{{- end}}
  )
{{- end}}
)
`))

type cellView struct {
	CellType  string
	Instance  string
	Absolute  []string
	Increment []string
	Checks    []string
	Envs      []string
}

type fileView struct {
	Header []string
	Cells  []cellView
}

// Emit renders f as SDF text. A non-empty timescale rescales the file
// first and becomes the emitted TIMESCALE.
func Emit(f *model.File, timescale string) (string, error) {
	if timescale != "" && f.Header.Timescale != "" && timescale != f.Header.Timescale {
		n, err := normalize.Normalize(f, timescale)
		if err != nil {
			return "", err
		}
		f = n
	} else if timescale != "" {
		n := f.Clone()
		n.Header.Timescale = timescale
		f = n
	}

	view := fileView{Header: headerLines(f.Header)}
	for _, ct := range sortedKeys(f.Cells) {
		instances := f.Cells[ct]
		for _, inst := range sortedKeys(instances) {
			cv := cellView{CellType: ct, Instance: inst}
			entries := instances[inst]
			for _, name := range sortedKeys(entries) {
				e := entries[name]
				text, err := renderEntry(e)
				if err != nil {
					return "", fmt.Errorf("%w (entry %s/%s/%s)", err, ct, inst, e.Name)
				}
				switch {
				case e.TimingCheck:
					cv.Checks = append(cv.Checks, text)
				case e.TimingEnv:
					cv.Envs = append(cv.Envs, text)
				case e.Incremental:
					cv.Increment = append(cv.Increment, text)
				default:
					cv.Absolute = append(cv.Absolute, text)
				}
			}
			view.Cells = append(view.Cells, cv)
		}
	}

	var b strings.Builder
	if err := fileTemplate.Execute(&b, view); err != nil {
		return "", err
	}
	return b.String(), nil
}

// headerLines renders the set header fields in declaration order.
// String-valued fields are quoted; divider, voltage, temperature and
// timescale are bare.
func headerLines(h model.Header) []string {
	bare := map[string]bool{
		"divider": true, "voltage": true, "temperature": true, "timescale": true,
	}
	var out []string
	for _, f := range h.Fields() {
		if f.Value == "" {
			continue
		}
		name := strings.ToUpper(f.Name)
		if bare[f.Name] {
			out = append(out, fmt.Sprintf("%s %s", name, f.Value))
		} else {
			out = append(out, fmt.Sprintf("%s %q", name, f.Value))
		}
	}
	return out
}

func renderEntry(e *model.Entry) (string, error) {
	switch {
	case e.TimingCheck:
		return renderCheck(e)
	case e.TimingEnv:
		return renderPathConstraint(e)
	default:
		return renderDelayArc(e)
	}
}

func renderDelayArc(e *model.Entry) (string, error) {
	values, err := delayRvalues(e.Delays)
	if err != nil {
		return "", err
	}
	kw := strings.ToUpper(e.Kind.String())
	var body string
	if e.Kind.TwoPin() {
		body = fmt.Sprintf("(%s %s %s %s)",
			kw, port(e.From, e.FromEdge), port(e.To, e.ToEdge), values)
	} else {
		body = fmt.Sprintf("(%s %s %s)", kw, port(e.From, e.FromEdge), values)
	}
	if e.Cond != "" {
		return fmt.Sprintf("(COND %s %s)", e.Cond, body), nil
	}
	return body, nil
}

// renderCheck writes the constrained port first and the reference port
// second, the order the reader expects. The condition rides on the
// constrained port.
func renderCheck(e *model.Entry) (string, error) {
	kw := strings.ToUpper(e.Kind.String())
	toSpec := port(e.To, e.ToEdge)
	if e.Cond != "" {
		toSpec = fmt.Sprintf("(COND %s %s)", e.Cond, toSpec)
	}
	if e.Kind == model.Width {
		return fmt.Sprintf("(%s %s (%s))", kw, toSpec, e.Delays[delay.Nominal]), nil
	}
	fromSpec := port(e.From, e.FromEdge)
	if e.Kind == model.SetupHold {
		return fmt.Sprintf("(%s %s %s (%s) (%s))",
			kw, toSpec, fromSpec, e.Delays[delay.Setup], e.Delays[delay.Hold]), nil
	}
	return fmt.Sprintf("(%s %s %s (%s))",
		kw, toSpec, fromSpec, e.Delays[delay.Nominal]), nil
}

func renderPathConstraint(e *model.Entry) (string, error) {
	return fmt.Sprintf("(PATHCONSTRAINT %s %s (%s) (%s))",
		port(e.To, e.ToEdge), port(e.From, e.FromEdge),
		e.Delays[delay.Rise], e.Delays[delay.Fall]), nil
}

func port(pin string, edge model.Polarity) string {
	if edge == model.NoEdge {
		return pin
	}
	return fmt.Sprintf("(%s %s)", edge, pin)
}

// delayRvalues inverts the reader's corner-count rule.
func delayRvalues(d delay.DelayPaths) (string, error) {
	_, hasFast := d[delay.Fast]
	_, hasNominal := d[delay.Nominal]
	_, hasSlow := d[delay.Slow]
	switch {
	case hasFast && hasNominal && hasSlow && len(d) == 3:
		return fmt.Sprintf("(%s) (%s) (%s)",
			d[delay.Fast], d[delay.Nominal], d[delay.Slow]), nil
	case hasFast && hasSlow && len(d) == 2:
		return fmt.Sprintf("(%s) (%s)", d[delay.Fast], d[delay.Slow]), nil
	case hasNominal && len(d) == 1:
		return fmt.Sprintf("(%s)", d[delay.Nominal]), nil
	default:
		return "", ErrUnsupportedCorners
	}
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
