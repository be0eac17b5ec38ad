package model

import (
	"fmt"
	"regexp"
)

// timescaleRE accepts the SDF timescale forms: base 1, 10 or 100,
// optional ".0", optional space, unit fs/ps/ns/us/ms/s.
var timescaleRE = regexp.MustCompile(`^(10{0,2})(\.0)? *([munpf]?s)$`)

// unitFemtos maps a timescale unit to its femtosecond factor.
var unitFemtos = map[string]int64{
	"s":  1e15,
	"ms": 1e12,
	"us": 1e9,
	"ns": 1e6,
	"ps": 1e3,
	"fs": 1,
}

// TimescaleFemtos converts an SDF timescale string to its factor in
// femtoseconds:
//
//	TimescaleFemtos("1ps")    = 1_000
//	TimescaleFemtos("10 ns")  = 10_000_000
//	TimescaleFemtos("100.0s") = 100_000_000_000_000_000
//
// The ratio of two such factors is exact for the power-of-ten scales SDF
// allows, which is what normalization relies on.
func TimescaleFemtos(timescale string) (int64, error) {
	m := timescaleRE.FindStringSubmatch(timescale)
	if m == nil {
		return 0, fmt.Errorf("%w: %q", ErrBadTimescale, timescale)
	}
	base := int64(1)
	switch m[1] {
	case "10":
		base = 10
	case "100":
		base = 100
	}
	return base * unitFemtos[m[3]], nil
}
