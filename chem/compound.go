// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package chem provides the chemical data model for molview:
// parsed compounds (atoms and bonds) and the element property table
// used to size and color their rendered primitives.
package chem

import "cogentcore.org/core/math32"

// Compound is one parsed molecular structure. It is constructed by
// [ParseSDF] and immutable thereafter. The index of an [Atom] in Atoms
// is its canonical 0-based id, referenced by [Bond] endpoints.
type Compound struct {
	// Moniker is the traditional / display name, if present in the file.
	Moniker string

	// IUPACName is the systematic name, if present in the file.
	IUPACName string

	// Chiral is the chiral flag from the counts line.
	Chiral bool

	// Atoms are the atoms in file order.
	Atoms []Atom

	// Bonds are the bonds in file order, with endpoints indexing Atoms.
	Bonds []Bond
}

// Atom is one atom: a 3D position and a chemical element symbol.
type Atom struct {
	Pos     math32.Vector3
	Element string
}

// Bond connects two atoms by their 0-based indices in [Compound.Atoms].
// Src and Dst are validated to be in range at parse time; they are not
// required to be distinct but typically are.
type Bond struct {
	Src      int
	Dst      int
	Type     BondType
	Topology BondTopology
}

// BondType is the bond order / query type from the V2000 bond block.
type BondType int32

const (
	Single BondType = iota + 1
	Double
	Triple
	Aromatic
	SingleOrDouble
	SingleOrAromatic
	DoubleOrAromatic
	Any
)

var bondTypeNames = []string{"Single", "Double", "Triple", "Aromatic",
	"SingleOrDouble", "SingleOrAromatic", "DoubleOrAromatic", "Any"}

func (bt BondType) String() string {
	if bt < Single || bt > Any {
		return "Any"
	}
	return bondTypeNames[bt-Single]
}

// BondTypeFromCode returns the [BondType] for a V2000 bond type code,
// mapping 1..7 in order and anything else to [Any].
func BondTypeFromCode(code int) BondType {
	if code >= 1 && code <= 7 {
		return BondType(code)
	}
	return Any
}

// BondTopology is the ring / chain topology from the V2000 bond block.
type BondTopology int32

const (
	RingOrChain BondTopology = iota
	Ring
	Chain
)

var bondTopologyNames = []string{"RingOrChain", "Ring", "Chain"}

func (bt BondTopology) String() string {
	if bt < RingOrChain || bt > Chain {
		return "RingOrChain"
	}
	return bondTopologyNames[bt]
}

// BondTopologyFromCode returns the [BondTopology] for a V2000 topology
// code: 1 = Ring, 2 = Chain, anything else = RingOrChain.
func BondTopologyFromCode(code int) BondTopology {
	switch code {
	case 1:
		return Ring
	case 2:
		return Chain
	default:
		return RingOrChain
	}
}
