// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"errors"
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/molview/chem"
)

// Mapper maps compounds to shape sequences using an element property
// table. The zero value is not usable; use [NewMapper].
type Mapper struct {
	// Elements is the element property table for atom sizing and color.
	Elements chem.Elements

	// BondColor is the color of all bond cylinders.
	// Bond type and topology do not yet vary the geometry or color;
	// these fields are the extension point for that.
	BondColor math32.Vector3

	// BondRadius is the radius of all bond cylinders.
	BondRadius float32
}

// NewMapper returns a [Mapper] using the given element table and the
// default bond style (light gray, radius 0.01).
func NewMapper(els chem.Elements) *Mapper {
	return &Mapper{
		Elements:   els,
		BondColor:  math32.Vec3(0.67, 0.67, 0.67),
		BondRadius: 0.01,
	}
}

// Shapes maps the compound to its ordered shape sequence: one sphere
// per atom in atom order, then one cylinder per bond in bond order.
// Downstream instance-range slicing relies on this ordering.
// Sphere radii are the element single-bond covalent radius divided by
// the maximum covalent radius in the table, a global normalization
// into (0, 1]. An atom whose element is not in the table, or whose
// single-bond covalent radius is undefined, is an error; no partial
// sequence is returned.
func (mp *Mapper) Shapes(co *chem.Compound) ([]Shape, error) {
	maxRad := mp.Elements.MaxCovalentRadius()
	if maxRad <= 0 {
		return nil, errors.New("scene: element table has no defined covalent radii")
	}

	shapes := make([]Shape, 0, len(co.Atoms)+len(co.Bonds))
	for i, at := range co.Atoms {
		ei, err := mp.Elements.Info(at.Element)
		if err != nil {
			return nil, fmt.Errorf("scene: atom %d: %w", i, err)
		}
		rad := ei.CovalentRadius[0]
		if rad <= 0 { // -1 marks an undefined radius
			return nil, fmt.Errorf("scene: atom %d: element %q has no defined single bond covalent radius", i, at.Element)
		}
		shapes = append(shapes, Sphere{
			Origin: at.Pos,
			Color:  ei.BaseColor(),
			Radius: float32(rad) / float32(maxRad),
		})
	}
	for _, bo := range co.Bonds {
		shapes = append(shapes, Cylinder{
			Start:  co.Atoms[bo.Src].Pos,
			End:    co.Atoms[bo.Dst].Pos,
			Color:  mp.BondColor,
			Radius: mp.BondRadius,
		})
	}
	return shapes, nil
}
