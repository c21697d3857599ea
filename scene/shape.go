// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package scene maps a parsed chem.Compound into an ordered sequence
// of renderable shapes, and encodes those shapes as per-instance
// transforms for instanced rendering. The sequence is ordered atoms
// first, then bonds, matching the two index ranges of the shared mesh
// buffer built by the mesh package.
package scene

import "cogentcore.org/core/math32"

// Shape is one renderable primitive: a [Sphere] or a [Cylinder].
// Consumers switch exhaustively on the concrete type.
type Shape interface {
	isShape()
}

// Sphere is an atom primitive.
type Sphere struct {
	// Origin is the center position.
	Origin math32.Vector3

	// Color is the base RGB color.
	Color math32.Vector3

	// Radius is the normalized radius, in (0, 1].
	Radius float32
}

// Cylinder is a bond primitive from Start to End.
type Cylinder struct {
	Start math32.Vector3
	End   math32.Vector3

	// Color is the base RGB color.
	Color math32.Vector3

	// Radius is the cylinder radius.
	Radius float32
}

func (sp Sphere) isShape()   {}
func (cy Cylinder) isShape() {}

// NumSpheres returns the number of sphere shapes, which all come
// first in a sequence produced by [Mapper.Shapes]: sphere instances
// occupy [0, NumSpheres) and cylinder instances the remainder.
func NumSpheres(shapes []Shape) int {
	n := 0
	for _, sh := range shapes {
		if _, ok := sh.(Sphere); ok {
			n++
		}
	}
	return n
}
