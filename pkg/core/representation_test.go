package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRepresentationShape(t *testing.T) {
	r := NewRepresentation(4, 8)
	require.NotNil(t, r)

	assert.Equal(t, 4, r.Len())
	assert.Equal(t, 8, r.Dim())

	// A fresh representation is zero-valued throughout.
	for i := 0; i < r.Len(); i++ {
		for j := 0; j < r.Dim(); j++ {
			assert.Zero(t, r.At(i, j))
		}
	}
}

func TestRepresentationSetAt(t *testing.T) {
	r := NewRepresentation(3, 2)

	r.Set(0, 0, 1.5)
	r.Set(2, 1, -0.25)

	assert.Equal(t, 1.5, r.At(0, 0))
	assert.Equal(t, -0.25, r.At(2, 1))
	assert.Zero(t, r.At(1, 0))
}

func TestNewRepresentationInvalidShape(t *testing.T) {
	assert.Panics(t, func() { NewRepresentation(0, 8) })
	assert.Panics(t, func() { NewRepresentation(4, 0) })
	assert.Panics(t, func() { NewRepresentation(-1, 8) })
	assert.Panics(t, func() { NewRepresentation(4, -1) })
}

func TestRepresentationIndexOutOfRange(t *testing.T) {
	r := NewRepresentation(2, 3)

	assert.Panics(t, func() { r.At(2, 0) })
	assert.Panics(t, func() { r.At(0, 3) })
	assert.Panics(t, func() { r.At(-1, 0) })
	assert.Panics(t, func() { r.Set(0, -1, 1.0) })
	assert.Panics(t, func() { r.Set(2, 2, 1.0) })
}
