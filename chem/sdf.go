// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package chem

import (
	"errors"
	"strconv"
	"strings"
)

// Parse errors. Any structurally malformed input collapses to one of
// these two; a failed parse never returns a partial [Compound].
var (
	// ErrMissingValue indicates a line or field expected by the V2000
	// layout was absent.
	ErrMissingValue = errors.New("Missing value")

	// ErrInvalidValue indicates a field was present but failed to
	// convert to its expected type, or referenced an atom out of range.
	ErrInvalidValue = errors.New("Invalid value")
)

// Tag markers recognized in the trailing property block of a PubChem
// SDF record. The line immediately following a marker holds the value.
const (
	iupacNameTag       = "> <PUBCHEM_IUPAC_NAME>"
	traditionalNameTag = "> <PUBCHEM_IUPAC_TRADITIONAL_NAME>"
)

// line returns lines[i], or [ErrMissingValue] if out of range.
// Lines are not stripped: line position is significant through the
// counts line, so blank lines must be preserved.
func line(lines []string, i int) (string, error) {
	if i < 0 || i >= len(lines) {
		return "", ErrMissingValue
	}
	return lines[i], nil
}

// field returns fields[i], or [ErrMissingValue] if out of range.
func field(fields []string, i int) (string, error) {
	if i < 0 || i >= len(fields) {
		return "", ErrMissingValue
	}
	return fields[i], nil
}

// fieldInt parses fields[i] as an int.
func fieldInt(fields []string, i int) (int, error) {
	f, err := field(fields, i)
	if err != nil {
		return 0, err
	}
	n, err := strconv.Atoi(f)
	if err != nil {
		return 0, ErrInvalidValue
	}
	return n, nil
}

// fieldFloat parses fields[i] as a float32.
func fieldFloat(fields []string, i int) (float32, error) {
	f, err := field(fields, i)
	if err != nil {
		return 0, err
	}
	v, err := strconv.ParseFloat(f, 32)
	if err != nil {
		return 0, ErrInvalidValue
	}
	return float32(v), nil
}

// ParseSDF parses one V2000 SDF (structure-data file) record into a
// [Compound]. The layout is positional: a 3-line header, the counts
// line (atom count, bond count, and the chiral flag at field 3), then
// exactly that many atom and bond lines, then an optional tagged
// property block. Fields within a line are whitespace-delimited.
// Malformed input returns [ErrMissingValue] or [ErrInvalidValue] and
// no compound.
func ParseSDF(contents string) (*Compound, error) {
	lines := strings.Split(contents, "\n")

	countLine, err := line(lines, 3)
	if err != nil {
		return nil, err
	}
	counts := strings.Fields(countLine)
	numAtoms, err := fieldInt(counts, 0)
	if err != nil {
		return nil, err
	}
	numBonds, err := fieldInt(counts, 1)
	if err != nil {
		return nil, err
	}
	if numAtoms < 0 || numBonds < 0 {
		return nil, ErrInvalidValue
	}
	chiral, err := fieldInt(counts, 3)
	if err != nil {
		return nil, err
	}

	// the counts are untrusted: cap preallocation by what the input
	// could actually contain, so an absurd count fails at the missing
	// line instead of in make
	co := &Compound{
		Chiral: chiral == 1,
		Atoms:  make([]Atom, 0, min(numAtoms, len(lines))),
		Bonds:  make([]Bond, 0, min(numBonds, len(lines))),
	}

	for i := range numAtoms {
		ln, err := line(lines, 4+i)
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(ln)
		var at Atom
		if at.Pos.X, err = fieldFloat(fields, 0); err != nil {
			return nil, err
		}
		if at.Pos.Y, err = fieldFloat(fields, 1); err != nil {
			return nil, err
		}
		if at.Pos.Z, err = fieldFloat(fields, 2); err != nil {
			return nil, err
		}
		if at.Element, err = field(fields, 3); err != nil {
			return nil, err
		}
		co.Atoms = append(co.Atoms, at)
	}

	for i := range numBonds {
		ln, err := line(lines, 4+numAtoms+i)
		if err != nil {
			return nil, err
		}
		fields := strings.Fields(ln)
		src, err := fieldInt(fields, 0)
		if err != nil {
			return nil, err
		}
		dst, err := fieldInt(fields, 1)
		if err != nil {
			return nil, err
		}
		typ, err := fieldInt(fields, 2)
		if err != nil {
			return nil, err
		}
		topo, err := fieldInt(fields, 5)
		if err != nil {
			return nil, err
		}
		bo := Bond{
			Src:      src - 1, // file indices are 1-based
			Dst:      dst - 1,
			Type:     BondTypeFromCode(typ),
			Topology: BondTopologyFromCode(topo),
		}
		if bo.Src < 0 || bo.Src >= numAtoms || bo.Dst < 0 || bo.Dst >= numAtoms {
			return nil, ErrInvalidValue
		}
		co.Bonds = append(co.Bonds, bo)
	}

	// Optional trailing property block. A marker on the final line has
	// no value line and is ignored.
	for i := 5 + numAtoms + numBonds; i < len(lines)-1; i++ {
		switch lines[i] {
		case iupacNameTag:
			co.IUPACName = lines[i+1]
		case traditionalNameTag:
			co.Moniker = lines[i+1]
		}
	}

	return co, nil
}
