// Package report renders a styled terminal summary of a timing file.
//
// Render stitches four sections: the file header, entry statistics,
// lint findings, and the slowest endpoints under a chosen (corner,
// metric) lens. Styling uses lipgloss and degrades to plain text on
// dumb terminals, so output stays grep-friendly in pipelines.
//
// Errors
//
//	ErrBadTopN - endpoint limit below one.
package report
