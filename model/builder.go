package model

import "github.com/chipflow/sdfkit/delay"

// Builder constructs a File fluently. The first constructor error is
// remembered and returned from Build; intermediate calls after an error
// are no-ops, so chains stay linear.
type Builder struct {
	file *File
	err  error
}

// NewBuilder returns an empty Builder.
func NewBuilder() *Builder {
	return &Builder{file: NewFile()}
}

// SetHeader replaces the file header.
func (b *Builder) SetHeader(h Header) *Builder {
	b.file.Header = h
	return b
}

// Cell opens a CellBuilder for the given cell type and instance.
func (b *Builder) Cell(cellType, instance string) *CellBuilder {
	return &CellBuilder{parent: b, cellType: cellType, instance: instance}
}

// Build returns the constructed File, or the first error any entry
// constructor produced.
func (b *Builder) Build() (*File, error) {
	if b.err != nil {
		return nil, b.err
	}
	return b.file, nil
}

// CellBuilder adds entries to one cell instance. Done returns to the
// parent Builder; opening another Cell implicitly closes this one.
type CellBuilder struct {
	parent   *Builder
	cellType string
	instance string
}

func (c *CellBuilder) add(e *Entry, err error) *CellBuilder {
	if c.parent.err != nil {
		return c
	}
	if err != nil {
		c.parent.err = err
		return c
	}
	c.parent.file.Store(c.cellType, c.instance, e)
	return c
}

// IOPath adds an IOPATH delay arc.
func (c *CellBuilder) IOPath(from, to string, d delay.DelayPaths, opts ...EntryOption) *CellBuilder {
	return c.add(NewIOPath(from, to, d, opts...))
}

// Interconnect adds an INTERCONNECT net delay.
func (c *CellBuilder) Interconnect(from, to string, d delay.DelayPaths, opts ...EntryOption) *CellBuilder {
	return c.add(NewInterconnect(from, to, d, opts...))
}

// Port adds a PORT delay.
func (c *CellBuilder) Port(pin string, d delay.DelayPaths, opts ...EntryOption) *CellBuilder {
	return c.add(NewPort(pin, d, opts...))
}

// Device adds a DEVICE delay.
func (c *CellBuilder) Device(pin string, d delay.DelayPaths, opts ...EntryOption) *CellBuilder {
	return c.add(NewDevice(pin, d, opts...))
}

// Check adds a timing check of the given kind.
func (c *CellBuilder) Check(kind EntryKind, from, to string, d delay.DelayPaths, opts ...EntryOption) *CellBuilder {
	return c.add(NewCheck(kind, from, to, d, opts...))
}

// PathConstraint adds a PATHCONSTRAINT timing-environment entry.
func (c *CellBuilder) PathConstraint(from, to string, d delay.DelayPaths, opts ...EntryOption) *CellBuilder {
	return c.add(NewPathConstraint(from, to, d, opts...))
}

// Cell closes this cell and opens another.
func (c *CellBuilder) Cell(cellType, instance string) *CellBuilder {
	return c.parent.Cell(cellType, instance)
}

// Done returns the parent Builder.
func (c *CellBuilder) Done() *Builder {
	return c.parent
}
