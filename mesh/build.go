// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

// Buffer is the shared vertex / index buffer for the molecular scene:
// a sphere mesh followed by a cylinder mesh, with the cylinder indices
// offset by the sphere vertex count so both shape families can be
// drawn from the same buffers by separate indexed draw calls selected
// by the two ranges. It is static geometry, built once at startup;
// the external renderer owns upload and lifetime.
type Buffer struct {
	// Vertices is the shared vertex data, sphere first.
	Vertices []Vertex

	// Indices is the shared index data; every index < len(Vertices).
	Indices []uint32

	// SphereRange is the index range of the sphere triangles.
	SphereRange Range

	// CylinderRange is the index range of the cylinder triangles.
	CylinderRange Range
}

// Build tessellates a sphere with the given stack and sector counts
// and radius, and an uncapped cylinder with the same sector count and
// the given height, merged into one shared [Buffer].
func Build(stacks, sectors int, sphereRadius, cylinderHeight float32) *Buffer {
	sp := NewSphere(stacks, sectors, sphereRadius)
	cy := NewCylinder(sectors, sphereRadius, cylinderHeight)

	spVtx, spIdx := sp.Size()
	cyVtx, cyIdx := cy.Size()
	cy.SetOffsets(spVtx, spIdx)

	bf := &Buffer{
		Vertices:      make([]Vertex, spVtx+cyVtx),
		Indices:       make([]uint32, spIdx+cyIdx),
		SphereRange:   Range{0, uint32(spIdx)},
		CylinderRange: Range{uint32(spIdx), uint32(spIdx + cyIdx)},
	}
	sp.Set(bf.Vertices, bf.Indices)
	cy.Set(bf.Vertices, bf.Indices)
	return bf
}
