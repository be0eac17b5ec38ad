package analysis

import (
	"fmt"
	"sort"
	"strings"

	"github.com/chipflow/sdfkit/model"
)

// ProblemCode identifies one lint finding class.
type ProblemCode string

// Lint finding classes.
const (
	// LintNoTimescale flags a header without a TIMESCALE; such a file
	// cannot be normalized or merged with others.
	LintNoTimescale ProblemCode = "no-timescale"

	// LintNoVersion flags a header without an SDFVERSION.
	LintNoVersion ProblemCode = "no-sdf-version"

	// LintEmptyFile flags a file with no entries at all.
	LintEmptyFile ProblemCode = "empty-file"

	// LintAllAbsent flags an entry whose delay carries no value in any
	// corner.
	LintAllAbsent ProblemCode = "all-absent-delay"

	// LintInstanceReuse flags an instance path stored under more than
	// one cell type.
	LintInstanceReuse ProblemCode = "instance-reuse"
)

// Problem is one lint finding. Key is zero for file-level findings.
type Problem struct {
	Code    ProblemCode
	Key     model.EntryKey
	Message string
}

// Lint checks f for consistency problems. Findings come in a fixed
// order: file-level first, then per-entry findings in walk order, then
// instance reuse sorted by instance path.
func Lint(f *model.File) []Problem {
	var out []Problem

	if f.Header.Timescale == "" {
		out = append(out, Problem{
			Code:    LintNoTimescale,
			Message: "header has no timescale",
		})
	}
	if f.Header.SDFVersion == "" {
		out = append(out, Problem{
			Code:    LintNoVersion,
			Message: "header has no sdf version",
		})
	}
	if f.EntryCount() == 0 {
		out = append(out, Problem{
			Code:    LintEmptyFile,
			Message: "file has no timing entries",
		})
		return out
	}

	instanceTypes := make(map[string][]string)
	f.Walk(func(ct, inst string, e *model.Entry) {
		types := instanceTypes[inst]
		if len(types) == 0 || types[len(types)-1] != ct {
			instanceTypes[inst] = append(types, ct)
		}
		if e.Delays.Empty() {
			out = append(out, Problem{
				Code:    LintAllAbsent,
				Key:     model.EntryKey{CellType: ct, Instance: inst, Name: e.Name},
				Message: fmt.Sprintf("entry %q has no delay value in any corner", e.Name),
			})
		}
	})

	var reused []string
	for inst, types := range instanceTypes {
		if len(types) > 1 {
			reused = append(reused, inst)
		}
	}
	sort.Strings(reused)
	for _, inst := range reused {
		out = append(out, Problem{
			Code: LintInstanceReuse,
			Message: fmt.Sprintf("instance %q appears under cell types %s",
				inst, strings.Join(instanceTypes[inst], ", ")),
		})
	}
	return out
}
