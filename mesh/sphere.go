// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import "cogentcore.org/core/math32"

// Sphere is a stack / sector (latitude / longitude) sphere mesh,
// with the poles on the Z axis. Stacks run from the +Z pole to the
// -Z pole; sectors run a full turn around Z.
type Sphere struct {
	MeshBase

	// Stacks is the number of latitude subdivisions (minimum 1).
	Stacks int

	// Sectors is the number of longitude subdivisions (minimum 3).
	Sectors int

	// Radius is the sphere radius.
	Radius float32
}

// NewSphere returns a sphere mesh with the given radius and number of
// stack and sector segments.
func NewSphere(stacks, sectors int, radius float32) *Sphere {
	return &Sphere{Stacks: stacks, Sectors: sectors, Radius: radius}
}

func (sp *Sphere) Size() (numVertex, numIndex int) {
	numVertex = (sp.Stacks + 1) * (sp.Sectors + 1)
	// the top stack omits its first triangle and the bottom stack its
	// second, as both are degenerate at the poles
	numIndex = 6 * (sp.Stacks - 1) * sp.Sectors
	return
}

func (sp *Sphere) Set(vertex []Vertex, index []uint32) {
	sectorStep := 2 * math32.Pi / float32(sp.Sectors)
	stackStep := math32.Pi / float32(sp.Stacks)
	lengthInv := 1 / sp.Radius

	vi := sp.VtxOff
	for i := 0; i <= sp.Stacks; i++ {
		stackAngle := math32.Pi/2 - float32(i)*stackStep // +90..-90
		xy := sp.Radius * math32.Cos(stackAngle)
		z := sp.Radius * math32.Sin(stackAngle)

		for j := 0; j <= sp.Sectors; j++ {
			sectorAngle := float32(j) * sectorStep
			pos := math32.Vec3(xy*math32.Cos(sectorAngle), xy*math32.Sin(sectorAngle), z)
			setVertex(vertex, vi, pos, pos.MulScalar(lengthInv))
			vi++
		}
	}

	ii := sp.IdxOff
	for i := 0; i < sp.Stacks; i++ {
		k1 := uint32(sp.VtxOff + i*(sp.Sectors+1))
		k2 := k1 + uint32(sp.Sectors) + 1

		for j := 0; j < sp.Sectors; j++ {
			if i != 0 {
				index[ii] = k1
				index[ii+1] = k2
				index[ii+2] = k1 + 1
				ii += 3
			}
			if i != sp.Stacks-1 {
				index[ii] = k1 + 1
				index[ii+1] = k2
				index[ii+2] = k2 + 1
				ii += 3
			}
			k1++
			k2++
		}
	}
}
