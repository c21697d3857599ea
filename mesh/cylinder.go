// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/core/math32"

// Cylinder is an uncapped cylinder mesh along the Z axis, spanning
// z = -Height/2 to z = +Height/2. The ends are left open because they
// are always covered by atom spheres in the assembled scene.
type Cylinder struct {
	MeshBase

	// Sectors is the number of radial subdivisions (minimum 3).
	Sectors int

	// Radius is the cylinder radius.
	Radius float32

	// Height is the full height along Z.
	Height float32
}

// NewCylinder returns a cylinder mesh with the given number of radial
// sectors, radius, and height.
func NewCylinder(sectors int, radius, height float32) *Cylinder {
	return &Cylinder{Sectors: sectors, Radius: radius, Height: height}
}

func (cy *Cylinder) Size() (numVertex, numIndex int) {
	numVertex = 2 * (cy.Sectors + 1)
	numIndex = 6 * cy.Sectors
	return
}

func (cy *Cylinder) Set(vertex []Vertex, index []uint32) {
	sectorStep := 2 * math32.Pi / float32(cy.Sectors)

	vi := cy.VtxOff
	for i := 0; i < 2; i++ {
		z := -cy.Height/2 + float32(i)*cy.Height

		for j := 0; j <= cy.Sectors; j++ {
			sectorAngle := float32(j) * sectorStep
			ux := math32.Cos(sectorAngle)
			uy := math32.Sin(sectorAngle)
			setVertex(vertex, vi, math32.Vec3(ux*cy.Radius, uy*cy.Radius, z), math32.Vec3(ux, uy, 0))
			vi++
		}
	}

	// quad strip joining the bottom ring to the top ring
	ii := cy.IdxOff
	k1 := uint32(cy.VtxOff)
	k2 := k1 + uint32(cy.Sectors) + 1
	for j := 0; j < cy.Sectors; j++ {
		index[ii] = k1
		index[ii+1] = k1 + 1
		index[ii+2] = k2
		index[ii+3] = k2
		index[ii+4] = k1 + 1
		index[ii+5] = k2 + 1
		ii += 6
		k1++
		k2++
	}
}
