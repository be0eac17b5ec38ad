package sdfparse

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/chipflow/sdfkit/delay"
	"github.com/chipflow/sdfkit/model"
)

// ErrSyntax is the root of every parse error.
var ErrSyntax = errors.New("sdfparse: syntax error")

// Parse reads SDF text into a model.File.
func Parse(src string) (*model.File, error) {
	p := &parser{lex: newLexer(src)}
	if err := p.advance(); err != nil {
		return nil, err
	}
	f := model.NewFile()
	if err := p.parseDelayFile(f); err != nil {
		return nil, err
	}
	return f, nil
}

type parser struct {
	lex *lexer
	tok token
}

func (p *parser) advance() error {
	t, err := p.lex.next()
	if err != nil {
		return err
	}
	p.tok = t
	return nil
}

func (p *parser) errf(format string, args ...interface{}) error {
	pos := fmt.Sprintf("line %d:%d: ", p.tok.line, p.tok.col)
	return errors.Wrapf(ErrSyntax, pos+format, args...)
}

func (p *parser) expect(kind tokenKind) (token, error) {
	if p.tok.kind != kind {
		return token{}, p.errf("expected %s, got %s %q", kind, p.tok.kind, p.tok.text)
	}
	t := p.tok
	return t, p.advance()
}

// keyword consumes an atom and returns it uppercased.
func (p *parser) keyword() (string, error) {
	t, err := p.expect(tokAtom)
	if err != nil {
		return "", err
	}
	return strings.ToUpper(t.text), nil
}

func (p *parser) parseDelayFile(f *model.File) error {
	if _, err := p.expect(tokLParen); err != nil {
		return err
	}
	kw, err := p.keyword()
	if err != nil {
		return err
	}
	if kw != "DELAYFILE" {
		return p.errf("expected DELAYFILE, got %q", kw)
	}
	for p.tok.kind == tokLParen {
		if err := p.parseTopItem(f); err != nil {
			return err
		}
	}
	if _, err := p.expect(tokRParen); err != nil {
		return err
	}
	_, err = p.expect(tokEOF)
	return err
}

func (p *parser) parseTopItem(f *model.File) error {
	if err := p.advance(); err != nil { // consume '('
		return err
	}
	kw, err := p.keyword()
	if err != nil {
		return err
	}
	if kw == "CELL" {
		return p.parseCell(f)
	}

	join := " "
	if kw == "TIMESCALE" {
		join = ""
	}
	value, err := p.textUntilClose(join)
	if err != nil {
		return err
	}
	switch kw {
	case "SDFVERSION":
		f.Header.SDFVersion = value
	case "DESIGN":
		f.Header.Design = value
	case "DATE":
		f.Header.Date = value
	case "VENDOR":
		f.Header.Vendor = value
	case "PROGRAM":
		f.Header.Program = value
	case "VERSION":
		f.Header.Version = value
	case "DIVIDER":
		f.Header.Divider = value
	case "VOLTAGE":
		f.Header.Voltage = value
	case "PROCESS":
		f.Header.Process = value
	case "TEMPERATURE":
		f.Header.Temperature = value
	case "TIMESCALE":
		f.Header.Timescale = value
	default:
		return p.errf("unknown header section %q", kw)
	}
	return nil
}

// textUntilClose joins the atoms and strings up to the closing paren.
func (p *parser) textUntilClose(join string) (string, error) {
	var parts []string
	for p.tok.kind == tokAtom || p.tok.kind == tokString {
		parts = append(parts, p.tok.text)
		if err := p.advance(); err != nil {
			return "", err
		}
	}
	if _, err := p.expect(tokRParen); err != nil {
		return "", err
	}
	return strings.Join(parts, join), nil
}

func (p *parser) parseCell(f *model.File) error {
	cellType := ""
	instance := ""
	for p.tok.kind == tokLParen {
		if err := p.advance(); err != nil {
			return err
		}
		kw, err := p.keyword()
		if err != nil {
			return err
		}
		switch kw {
		case "CELLTYPE":
			if cellType, err = p.textUntilClose(" "); err != nil {
				return err
			}
		case "INSTANCE":
			if instance, err = p.textUntilClose(" "); err != nil {
				return err
			}
		case "DELAY":
			err = p.parseDelaySection(f, cellType, instance)
		case "TIMINGCHECK":
			err = p.parseTimingCheck(f, cellType, instance)
		case "TIMINGENV":
			err = p.parseTimingEnv(f, cellType, instance)
		default:
			err = p.errf("unknown cell section %q", kw)
		}
		if err != nil {
			return err
		}
	}
	if _, err := p.expect(tokRParen); err != nil {
		return err
	}
	ensureCell(f, cellType, instance)
	return nil
}

// ensureCell keeps cells with no timing entries visible in the file.
func ensureCell(f *model.File, cellType, instance string) {
	if f.Cells[cellType] == nil {
		f.Cells[cellType] = make(map[string]map[string]*model.Entry)
	}
	if f.Cells[cellType][instance] == nil {
		f.Cells[cellType][instance] = make(map[string]*model.Entry)
	}
}

func (p *parser) parseDelaySection(f *model.File, cellType, instance string) error {
	for p.tok.kind == tokLParen {
		if err := p.advance(); err != nil {
			return err
		}
		kw, err := p.keyword()
		if err != nil {
			return err
		}
		var incremental bool
		switch kw {
		case "ABSOLUTE":
			incremental = false
		case "INCREMENT":
			incremental = true
		default:
			return p.errf("expected ABSOLUTE or INCREMENT, got %q", kw)
		}
		for p.tok.kind == tokLParen {
			if err := p.parseDelayArc(f, cellType, instance, incremental, ""); err != nil {
				return err
			}
		}
		if _, err := p.expect(tokRParen); err != nil {
			return err
		}
	}
	_, err := p.expect(tokRParen)
	return err
}

func (p *parser) parseDelayArc(f *model.File, cellType, instance string, incremental bool, cond string) error {
	if err := p.advance(); err != nil { // consume '('
		return err
	}
	kw, err := p.keyword()
	if err != nil {
		return err
	}

	if kw == "COND" {
		eq, err := p.parseEquation()
		if err != nil {
			return err
		}
		for p.tok.kind == tokLParen {
			if err := p.parseDelayArc(f, cellType, instance, incremental, eq); err != nil {
				return err
			}
		}
		_, err = p.expect(tokRParen)
		return err
	}

	opts := []model.EntryOption{}
	if cond != "" {
		opts = append(opts, model.WithCond(cond))
	}
	if incremental {
		opts = append(opts, model.WithIncremental())
	}

	var e *model.Entry
	switch kw {
	case "IOPATH", "INTERCONNECT":
		from, err := p.parsePortSpec()
		if err != nil {
			return err
		}
		to, err := p.parsePortSpec()
		if err != nil {
			return err
		}
		d, err := p.parseDelayValues()
		if err != nil {
			return err
		}
		opts = append(opts, model.WithEdges(from.edge, to.edge))
		if kw == "IOPATH" {
			e, err = model.NewIOPath(from.pin, to.pin, d, opts...)
		} else {
			e, err = model.NewInterconnect(from.pin, to.pin, d, opts...)
		}
		if err != nil {
			return p.errf("%s: %v", kw, err)
		}
	case "PORT", "DEVICE":
		ps, err := p.parsePortSpec()
		if err != nil {
			return err
		}
		d, err := p.parseDelayValues()
		if err != nil {
			return err
		}
		opts = append(opts, model.WithEdges(ps.edge, ps.edge))
		if kw == "PORT" {
			e, err = model.NewPort(ps.pin, d, opts...)
		} else {
			e, err = model.NewDevice(ps.pin, d, opts...)
		}
		if err != nil {
			return p.errf("%s: %v", kw, err)
		}
	default:
		return p.errf("unknown delay arc %q", kw)
	}

	if _, err := p.expect(tokRParen); err != nil {
		return err
	}
	f.Store(cellType, instance, e)
	return nil
}

// portSpec is a parsed port reference: pin, optional edge qualifier,
// optional condition text.
type portSpec struct {
	pin  string
	edge model.Polarity
	cond string
}

// parsePortSpec reads a bare pin atom or an edge-qualified
// "(posedge pin)" form.
func (p *parser) parsePortSpec() (portSpec, error) {
	if p.tok.kind == tokAtom {
		t := p.tok
		return portSpec{pin: t.text}, p.advance()
	}
	if _, err := p.expect(tokLParen); err != nil {
		return portSpec{}, err
	}
	kw, err := p.keyword()
	if err != nil {
		return portSpec{}, err
	}
	edge, ok := parseEdge(kw)
	if !ok {
		return portSpec{}, p.errf("expected posedge or negedge, got %q", kw)
	}
	pin, err := p.expect(tokAtom)
	if err != nil {
		return portSpec{}, err
	}
	if _, err := p.expect(tokRParen); err != nil {
		return portSpec{}, err
	}
	return portSpec{pin: pin.text, edge: edge}, nil
}

// parseCheckPort additionally accepts "(COND equation portspec)".
func (p *parser) parseCheckPort() (portSpec, error) {
	if p.tok.kind == tokAtom {
		t := p.tok
		return portSpec{pin: t.text}, p.advance()
	}
	if _, err := p.expect(tokLParen); err != nil {
		return portSpec{}, err
	}
	kw, err := p.keyword()
	if err != nil {
		return portSpec{}, err
	}
	if edge, ok := parseEdge(kw); ok {
		pin, err := p.expect(tokAtom)
		if err != nil {
			return portSpec{}, err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return portSpec{}, err
		}
		return portSpec{pin: pin.text, edge: edge}, nil
	}
	if kw != "COND" {
		return portSpec{}, p.errf("expected posedge, negedge or COND, got %q", kw)
	}

	var atoms []string
	for p.tok.kind == tokAtom || p.tok.kind == tokString {
		atoms = append(atoms, p.tok.text)
		if err := p.advance(); err != nil {
			return portSpec{}, err
		}
	}
	ps := portSpec{}
	if p.tok.kind == tokLParen {
		// Equation atoms followed by an edge-qualified port.
		inner, err := p.parsePortSpec()
		if err != nil {
			return portSpec{}, err
		}
		ps = inner
		ps.cond = strings.Join(atoms, " ")
	} else {
		// The last atom is the bare port, the rest the equation.
		if len(atoms) < 2 {
			return portSpec{}, p.errf("COND needs an equation and a port")
		}
		ps.pin = atoms[len(atoms)-1]
		ps.cond = strings.Join(atoms[:len(atoms)-1], " ")
	}
	if _, err := p.expect(tokRParen); err != nil {
		return portSpec{}, err
	}
	return ps, nil
}

func parseEdge(kw string) (model.Polarity, bool) {
	switch kw {
	case "POSEDGE":
		return model.Posedge, true
	case "NEGEDGE":
		return model.Negedge, true
	default:
		return model.NoEdge, false
	}
}

// parseEquation joins the condition atoms of a COND delay wrapper.
func (p *parser) parseEquation() (string, error) {
	var atoms []string
	for p.tok.kind == tokAtom || p.tok.kind == tokString {
		atoms = append(atoms, p.tok.text)
		if err := p.advance(); err != nil {
			return "", err
		}
	}
	if len(atoms) == 0 {
		return "", p.errf("COND needs an equation")
	}
	return strings.Join(atoms, " "), nil
}

// parseDelayValues reads the rvalue lists of a delay arc and assigns
// corners by count: one is nominal, two are fast and slow, three are
// fast, nominal and slow. Any other count (none, or the longer
// transition lists some tools emit) degrades to an all-absent nominal.
func (p *parser) parseDelayValues() (delay.DelayPaths, error) {
	var values []delay.Value
	for p.tok.kind == tokLParen {
		v, err := p.parseRvalue()
		if err != nil {
			return nil, err
		}
		values = append(values, v)
	}
	switch len(values) {
	case 1:
		return delay.DelayPaths{delay.Nominal: values[0]}, nil
	case 2:
		return delay.DelayPaths{delay.Fast: values[0], delay.Slow: values[1]}, nil
	case 3:
		return delay.DelayPaths{
			delay.Fast:    values[0],
			delay.Nominal: values[1],
			delay.Slow:    values[2],
		}, nil
	default:
		return delay.DelayPaths{delay.Nominal: delay.Value{}}, nil
	}
}

// parseRvalue reads "(min:typ:max)", "(number)" or "()". A lone number
// is a typ-only value.
func (p *parser) parseRvalue() (delay.Value, error) {
	if _, err := p.expect(tokLParen); err != nil {
		return delay.Value{}, err
	}
	if p.tok.kind == tokRParen {
		return delay.Value{}, p.advance()
	}
	t, err := p.expect(tokAtom)
	if err != nil {
		return delay.Value{}, err
	}
	v, err := delay.ParseValue(t.text)
	if err != nil {
		return delay.Value{}, p.errf("bad rvalue %q: %v", t.text, err)
	}
	_, err = p.expect(tokRParen)
	return v, err
}

func (p *parser) parseTimingCheck(f *model.File, cellType, instance string) error {
	for p.tok.kind == tokLParen {
		if err := p.advance(); err != nil {
			return err
		}
		kw, err := p.keyword()
		if err != nil {
			return err
		}
		kind, ok := checkKinds[kw]
		if !ok {
			return p.errf("unknown timing check %q", kw)
		}

		if kind == model.Width {
			ps, err := p.parseCheckPort()
			if err != nil {
				return err
			}
			v, err := p.parseRvalue()
			if err != nil {
				return err
			}
			d := delay.DelayPaths{delay.Nominal: v}
			if err := p.storeCheck(f, cellType, instance, kind, ps, ps, d); err != nil {
				return err
			}
			if _, err := p.expect(tokRParen); err != nil {
				return err
			}
			continue
		}

		// Two-port checks list the constrained port first, the
		// reference port second.
		to, err := p.parseCheckPort()
		if err != nil {
			return err
		}
		from, err := p.parseCheckPort()
		if err != nil {
			return err
		}
		var d delay.DelayPaths
		if kind == model.SetupHold {
			setup, err := p.parseRvalue()
			if err != nil {
				return err
			}
			hold, err := p.parseRvalue()
			if err != nil {
				return err
			}
			d = delay.DelayPaths{delay.Setup: setup, delay.Hold: hold}
		} else {
			v, err := p.parseRvalue()
			if err != nil {
				return err
			}
			d = delay.DelayPaths{delay.Nominal: v}
		}
		if err := p.storeCheck(f, cellType, instance, kind, from, to, d); err != nil {
			return err
		}
		if _, err := p.expect(tokRParen); err != nil {
			return err
		}
	}
	_, err := p.expect(tokRParen)
	return err
}

var checkKinds = map[string]model.EntryKind{
	"SETUP":     model.Setup,
	"HOLD":      model.Hold,
	"RECOVERY":  model.Recovery,
	"REMOVAL":   model.Removal,
	"WIDTH":     model.Width,
	"SETUPHOLD": model.SetupHold,
}

func (p *parser) storeCheck(f *model.File, cellType, instance string, kind model.EntryKind, from, to portSpec, d delay.DelayPaths) error {
	opts := []model.EntryOption{model.WithEdges(from.edge, to.edge)}
	cond := from.cond
	if cond == "" {
		cond = to.cond
	}
	if cond != "" {
		opts = append(opts, model.WithCond(cond))
	}
	e, err := model.NewCheck(kind, from.pin, to.pin, d, opts...)
	if err != nil {
		return p.errf("%s: %v", kind, err)
	}
	f.Store(cellType, instance, e)
	return nil
}

func (p *parser) parseTimingEnv(f *model.File, cellType, instance string) error {
	for p.tok.kind == tokLParen {
		if err := p.advance(); err != nil {
			return err
		}
		kw, err := p.keyword()
		if err != nil {
			return err
		}
		if kw != "PATHCONSTRAINT" {
			return p.errf("unknown timing environment entry %q", kw)
		}
		to, err := p.parsePortSpec()
		if err != nil {
			return err
		}
		from, err := p.parsePortSpec()
		if err != nil {
			return err
		}
		rise, err := p.parseRvalue()
		if err != nil {
			return err
		}
		fall, err := p.parseRvalue()
		if err != nil {
			return err
		}
		d := delay.DelayPaths{delay.Rise: rise, delay.Fall: fall}
		e, err := model.NewPathConstraint(from.pin, to.pin, d,
			model.WithEdges(from.edge, to.edge))
		if err != nil {
			return p.errf("PATHCONSTRAINT: %v", err)
		}
		f.Store(cellType, instance, e)
		if _, err := p.expect(tokRParen); err != nil {
			return err
		}
	}
	_, err := p.expect(tokRParen)
	return err
}
