package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chipflow/sdfkit/model"
)

func TestBuilder_FluentConstruction(t *testing.T) {
	f, err := model.NewBuilder().
		SetHeader(model.Header{SDFVersion: "3.0", Design: "top", Timescale: "1ps"}).
		Cell("BUF", "b0").
		IOPath("A", "Y", nominal(1, 2, 3)).
		Cell("INV", "i0").
		IOPath("A", "Y", nominal(4, 5, 6)).
		Check(model.Hold, "D", "C", nominal(0.1, 0.2, 0.3)).
		Done().
		Build()

	require.NoError(t, err)
	assert.Equal(t, "3.0", f.Header.SDFVersion)
	assert.Contains(t, f.Cells, "BUF")
	assert.Contains(t, f.Cells, "INV")
	assert.Equal(t, 3, f.EntryCount())
}

func TestBuilder_PropagatesConstructorError(t *testing.T) {
	_, err := model.NewBuilder().
		Cell("BUF", "b0").
		IOPath("A", "", nominal(1, 2, 3)).
		IOPath("A", "Y", nominal(1, 2, 3)). // ignored after the error
		Done().
		Build()
	assert.ErrorIs(t, err, model.ErrMissingPin)
}
