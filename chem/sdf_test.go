// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

const hydrogenSDF = `783
  -OEChem-02172615072D

  2  1  0     0  0  0  0  0  0999 V2000
    2.0000    0.0000    0.0000 H   0  0  0  0  0  0  0  0  0  0  0  0
    3.0000    0.0000    0.0000 H   0  0  0  0  0  0  0  0  0  0  0  0
  1  2  1  0  0  0  0
M  END
`

func TestParseSDF(t *testing.T) {
	co, err := ParseSDF(hydrogenSDF)
	assert.NoError(t, err)
	assert.Equal(t, &Compound{
		Atoms: []Atom{
			{Pos: math32.Vec3(2, 0, 0), Element: "H"},
			{Pos: math32.Vec3(3, 0, 0), Element: "H"},
		},
		Bonds: []Bond{
			{Src: 0, Dst: 1, Type: Single, Topology: RingOrChain},
		},
	}, co)
	assert.False(t, co.Chiral)
}

func TestParseSDFTags(t *testing.T) {
	content := hydrogenSDF + `
> <PUBCHEM_IUPAC_NAME>
molecular hydrogen

> <PUBCHEM_IUPAC_TRADITIONAL_NAME>
hydrogen

$$$$
`
	co, err := ParseSDF(content)
	assert.NoError(t, err)
	assert.Equal(t, "molecular hydrogen", co.IUPACName)
	assert.Equal(t, "hydrogen", co.Moniker)
}

func TestParseSDFTagAtEnd(t *testing.T) {
	// a marker with no following value line is ignored
	content := hydrogenSDF + "\n> <PUBCHEM_IUPAC_NAME>"
	co, err := ParseSDF(content)
	assert.NoError(t, err)
	assert.Equal(t, "", co.IUPACName)
}

func TestParseSDFChiral(t *testing.T) {
	content := `783
  -OEChem-02172615072D

  1  0  0     1  0  0  0  0  0999 V2000
    0.0000    0.0000    0.0000 C   0  0  0  0  0  0  0  0  0  0  0  0
M  END
`
	co, err := ParseSDF(content)
	assert.NoError(t, err)
	assert.True(t, co.Chiral)
	assert.Len(t, co.Atoms, 1)
	assert.Len(t, co.Bonds, 0)
}

func TestParseSDFBondCodes(t *testing.T) {
	content := `
mols

  2  3  0     0  0  0  0  0  0999 V2000
    0.0000    0.0000    0.0000 C   0  0
    1.0000    0.0000    0.0000 C   0  0
  1  2  2  0  0  1  0
  1  2  4  0  0  2  0
  1  2  9  0  0  7  0
M  END
`
	co, err := ParseSDF(content)
	assert.NoError(t, err)
	assert.Equal(t, Double, co.Bonds[0].Type)
	assert.Equal(t, Ring, co.Bonds[0].Topology)
	assert.Equal(t, Aromatic, co.Bonds[1].Type)
	assert.Equal(t, Chain, co.Bonds[1].Topology)
	assert.Equal(t, Any, co.Bonds[2].Type)
	assert.Equal(t, RingOrChain, co.Bonds[2].Topology)
}

func TestParseSDFErrors(t *testing.T) {
	tests := []struct {
		name     string
		contents string
		err      error
	}{
		{"empty", "", ErrMissingValue},
		{"no counts fields", "a\nb\nc\n\n", ErrMissingValue},
		{"bad atom count", "a\nb\nc\n  x  1  0     0\n", ErrInvalidValue},
		{"missing atom line", "a\nb\nc\n  1  0  0     0\n", ErrMissingValue},
		{"bad coordinate", "a\nb\nc\n  1  0  0     0\n  x 0 0 H\n", ErrInvalidValue},
		{"missing element", "a\nb\nc\n  1  0  0     0\n  0 0 0\n", ErrMissingValue},
		{"missing bond line", "a\nb\nc\n  1  1  0     0\n  0 0 0 H\n", ErrMissingValue},
		{"bond index out of range", "a\nb\nc\n  1  1  0     0\n  0 0 0 H\n  1  3  1  0  0  0  0\n", ErrInvalidValue},
		{"bond index zero", "a\nb\nc\n  1  1  0     0\n  0 0 0 H\n  0  1  1  0  0  0  0\n", ErrInvalidValue},
		// absurd counts must fail at the missing line, not allocate
		{"oversized atom count", "a\nb\nc\n  1125899906842624  0  0     0\n", ErrMissingValue},
		{"oversized bond count", "a\nb\nc\n  1  1125899906842624  0     0\n  0 0 0 H\n", ErrMissingValue},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			co, err := ParseSDF(tt.contents)
			assert.ErrorIs(t, err, tt.err)
			assert.Nil(t, co)
		})
	}
}
