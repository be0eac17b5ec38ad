package normalize

import (
	"errors"

	"github.com/chipflow/sdfkit/model"
)

// ErrNoTimescale indicates the source header carries no timescale, so
// no conversion ratio can be derived.
var ErrNoTimescale = errors.New("normalize: source header has no timescale")

// Normalize returns a copy of f with every delay rescaled to the target
// timescale and the header timescale updated. f itself is not modified.
func Normalize(f *model.File, target string) (*model.File, error) {
	if f.Header.Timescale == "" {
		return nil, ErrNoTimescale
	}
	sourceFs, err := model.TimescaleFemtos(f.Header.Timescale)
	if err != nil {
		return nil, err
	}
	targetFs, err := model.TimescaleFemtos(target)
	if err != nil {
		return nil, err
	}

	out := f.Clone()
	out.Header.Timescale = target
	ratio := float64(sourceFs) / float64(targetFs)
	if ratio == 1 {
		return out, nil
	}
	out.Walk(func(_, _ string, e *model.Entry) {
		e.Delays = e.Delays.Scale(ratio)
	})
	return out, nil
}
