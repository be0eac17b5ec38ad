package model

import (
	"fmt"
	"sort"
)

// Header holds the SDF file metadata. Empty string means unset.
type Header struct {
	SDFVersion  string
	Design      string
	Date        string
	Vendor      string
	Program     string
	Version     string
	Divider     string
	Voltage     string
	Process     string
	Temperature string
	Timescale   string
}

// HeaderField is one named header value, used by diff and the writer.
type HeaderField struct {
	Name  string
	Value string
}

// Fields returns all header fields in declaration order, including
// unset ones (callers filter as needed).
func (h Header) Fields() []HeaderField {
	return []HeaderField{
		{"sdfversion", h.SDFVersion},
		{"design", h.Design},
		{"date", h.Date},
		{"vendor", h.Vendor},
		{"program", h.Program},
		{"version", h.Version},
		{"divider", h.Divider},
		{"voltage", h.Voltage},
		{"process", h.Process},
		{"temperature", h.Temperature},
		{"timescale", h.Timescale},
	}
}

// DividerOrDefault returns the hierarchy divider, defaulting to "/".
func (h Header) DividerOrDefault() string {
	if h.Divider == "" {
		return "/"
	}
	return h.Divider
}

// EntryKey identifies one entry across Files: the diff and merge engines
// key on it.
type EntryKey struct {
	CellType string
	Instance string
	Name     string
}

// String renders the key as cellType/instance/name for error messages.
func (k EntryKey) String() string {
	return fmt.Sprintf("%s/%s/%s", k.CellType, k.Instance, k.Name)
}

// File is a parsed SDF file: header plus cellType → instance →
// entryName → entry. All delays are expressed in the header's timescale.
type File struct {
	Header Header
	Cells  map[string]map[string]map[string]*Entry
}

// NewFile returns an empty File ready for Store.
func NewFile() *File {
	return &File{Cells: make(map[string]map[string]map[string]*Entry)}
}

// Store inserts e under (cellType, instance). On an entry-name collision
// the name gets a _1, _2, … suffix, and the entry's Name field is
// updated to match its final key. Returns the key used.
func (f *File) Store(cellType, instance string, e *Entry) string {
	if f.Cells == nil {
		f.Cells = make(map[string]map[string]map[string]*Entry)
	}
	instances, ok := f.Cells[cellType]
	if !ok {
		instances = make(map[string]map[string]*Entry)
		f.Cells[cellType] = instances
	}
	entries, ok := instances[instance]
	if !ok {
		entries = make(map[string]*Entry)
		instances[instance] = entries
	}

	key := e.Name
	if _, exists := entries[key]; exists {
		for n := 1; ; n++ {
			key = fmt.Sprintf("%s_%d", e.Name, n)
			if _, exists = entries[key]; !exists {
				break
			}
		}
		e.Name = key
	}
	entries[key] = e
	return key
}

// Lookup returns the entry for key, if present.
func (f *File) Lookup(key EntryKey) (*Entry, bool) {
	e, ok := f.Cells[key.CellType][key.Instance][key.Name]
	return e, ok
}

// Walk visits every entry in sorted (cellType, instance, entryName)
// order. Sorted iteration is what keeps graph construction and all
// downstream path ordering deterministic.
func (f *File) Walk(fn func(cellType, instance string, e *Entry)) {
	for _, ct := range sortedKeys(f.Cells) {
		instances := f.Cells[ct]
		for _, inst := range sortedKeys(instances) {
			entries := instances[inst]
			for _, name := range sortedKeys(entries) {
				fn(ct, inst, entries[name])
			}
		}
	}
}

// EntryKeys returns every (cellType, instance, entryName) key in sorted
// order.
func (f *File) EntryKeys() []EntryKey {
	var keys []EntryKey
	f.Walk(func(ct, inst string, e *Entry) {
		keys = append(keys, EntryKey{CellType: ct, Instance: inst, Name: e.Name})
	})
	return keys
}

// Checks returns all timing-check entries in sorted order. Checks are
// constraints, not delays: they never appear in a timing graph and this
// query is the only way to retrieve them.
func (f *File) Checks() []*Entry {
	var out []*Entry
	f.Walk(func(_, _ string, e *Entry) {
		if e.TimingCheck {
			out = append(out, e)
		}
	})
	return out
}

// EntryCount returns the total number of entries.
func (f *File) EntryCount() int {
	n := 0
	f.Walk(func(_, _ string, _ *Entry) { n++ })
	return n
}

// Clone returns a deep copy of the file: header, maps, entries, and
// their DelayPaths. Normalization and merge operate on clones so inputs
// are never mutated.
func (f *File) Clone() *File {
	out := &File{
		Header: f.Header,
		Cells:  make(map[string]map[string]map[string]*Entry, len(f.Cells)),
	}
	for ct, instances := range f.Cells {
		ci := make(map[string]map[string]*Entry, len(instances))
		out.Cells[ct] = ci
		for inst, entries := range instances {
			ce := make(map[string]*Entry, len(entries))
			ci[inst] = ce
			for name, e := range entries {
				ce[name] = e.Clone()
			}
		}
	}
	return out
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
