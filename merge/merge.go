package merge

import (
	"github.com/chipflow/sdfkit/model"
	"github.com/chipflow/sdfkit/normalize"
)

// Merge combines the inputs in order under the configured strategy and
// returns a new file. Inputs are never modified.
func Merge(files []*model.File, opts ...Option) (*model.File, error) {
	o := DefaultOptions()
	for _, fn := range opts {
		fn(&o)
	}
	if o.err != nil {
		return nil, o.err
	}
	if len(files) == 0 {
		return nil, ErrNoInput
	}

	prepared := files
	if o.Timescale != "" {
		prepared = make([]*model.File, len(files))
		for i, f := range files {
			n, err := normalize.Normalize(f, o.Timescale)
			if err != nil {
				return nil, err
			}
			prepared[i] = n
		}
	} else {
		for _, f := range prepared[1:] {
			if f.Header.Timescale != prepared[0].Header.Timescale {
				return nil, ErrTimescaleMismatch
			}
		}
	}

	out := prepared[0].Clone()
	for _, f := range prepared[1:] {
		if err := mergeHeader(&out.Header, f.Header, o.Strategy); err != nil {
			return nil, err
		}
		var mergeErr error
		f.Walk(func(ct, inst string, e *model.Entry) {
			if mergeErr != nil {
				return
			}
			key := model.EntryKey{CellType: ct, Instance: inst, Name: e.Name}
			existing, ok := out.Lookup(key)
			if !ok {
				out.Store(ct, inst, e.Clone())
				return
			}
			switch o.Strategy {
			case KeepLast:
				out.Cells[ct][inst][e.Name] = e.Clone()
			case ErrorOnConflict:
				if !existing.Delays.ApproxEq(e.Delays, 0) {
					mergeErr = &ConflictError{Key: key, A: existing.Delays, B: e.Delays.Clone()}
				}
			}
		})
		if mergeErr != nil {
			return nil, mergeErr
		}
	}
	return out, nil
}

// mergeHeader folds src into dst field by field. Empty fields never
// compete; the timescale is already reconciled and is skipped.
func mergeHeader(dst *model.Header, src model.Header, strategy Strategy) error {
	dstFields := dst.Fields()
	for i, f := range src.Fields() {
		if f.Name == "timescale" || f.Value == "" {
			continue
		}
		have := dstFields[i].Value
		switch {
		case have == "":
			setHeaderField(dst, f.Name, f.Value)
		case have == f.Value:
			// agreement
		case strategy == KeepLast:
			setHeaderField(dst, f.Name, f.Value)
		case strategy == ErrorOnConflict:
			return &HeaderConflictError{Field: f.Name, A: have, B: f.Value}
		}
	}
	return nil
}

func setHeaderField(h *model.Header, name, value string) {
	switch name {
	case "sdfversion":
		h.SDFVersion = value
	case "design":
		h.Design = value
	case "date":
		h.Date = value
	case "vendor":
		h.Vendor = value
	case "program":
		h.Program = value
	case "version":
		h.Version = value
	case "divider":
		h.Divider = value
	case "voltage":
		h.Voltage = value
	case "process":
		h.Process = value
	case "temperature":
		h.Temperature = value
	}
}
