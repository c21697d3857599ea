// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mesh

import (
	"testing"

	"cogentcore.org/core/base/tolassert"
	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
)

const standardTol = float32(1.0e-5)

func TestSphereSize(t *testing.T) {
	sp := NewSphere(1, 3, 1)
	nv, ni := sp.Size()
	assert.Equal(t, 8, nv) // (1+1)*(3+1)
	assert.Equal(t, 0, ni) // both pole triangles of the single stack are degenerate

	sp = NewSphere(4, 6, 1)
	nv, ni = sp.Size()
	assert.Equal(t, 35, nv)
	assert.Equal(t, 6*3*6, ni)
}

func TestSphereSet(t *testing.T) {
	const radius = float32(2.5)
	sp := NewSphere(8, 12, radius)
	nv, ni := sp.Size()
	vtx := make([]Vertex, nv)
	idx := make([]uint32, ni)
	sp.Set(vtx, idx)

	for _, ix := range idx {
		assert.Less(t, int(ix), nv)
	}
	for _, v := range vtx {
		pos := math32.Vec3(v.Position.X, v.Position.Y, v.Position.Z)
		norm := math32.Vec3(v.Normal.X, v.Normal.Y, v.Normal.Z)
		tolassert.EqualTol(t, radius, pos.Length(), standardTol)
		tolassert.EqualTol(t, 1, norm.Length(), standardTol)
		// normal is position / radius
		tolassert.EqualTol(t, 0, norm.Sub(pos.MulScalar(1/radius)).Length(), standardTol)
		assert.Equal(t, float32(0), v.Position.W)
		assert.Equal(t, float32(0), v.Normal.W)
	}

	// first vertex is the +Z pole
	tolassert.EqualTol(t, radius, vtx[0].Position.Z, standardTol)
}

func TestCylinderSet(t *testing.T) {
	cy := NewCylinder(8, 1, 2)
	nv, ni := cy.Size()
	assert.Equal(t, 18, nv)
	assert.Equal(t, 48, ni)

	vtx := make([]Vertex, nv)
	idx := make([]uint32, ni)
	cy.Set(vtx, idx)

	for _, ix := range idx {
		assert.Less(t, int(ix), nv)
	}
	for i, v := range vtx {
		// bottom ring first, then top
		if i <= 8 {
			assert.Equal(t, float32(-1), v.Position.Z)
		} else {
			assert.Equal(t, float32(1), v.Position.Z)
		}
		// radial normals only: the cylinder is uncapped
		assert.Equal(t, float32(0), v.Normal.Z)
		norm := math32.Vec3(v.Normal.X, v.Normal.Y, v.Normal.Z)
		tolassert.EqualTol(t, 1, norm.Length(), standardTol)
	}
}

func TestBuild(t *testing.T) {
	bf := Build(32, 32, 1, 2)

	sp := NewSphere(32, 32, 1)
	cy := NewCylinder(32, 1, 2)
	spVtx, spIdx := sp.Size()
	cyVtx, cyIdx := cy.Size()

	assert.Equal(t, spVtx+cyVtx, len(bf.Vertices))
	assert.Equal(t, spIdx+cyIdx, len(bf.Indices))

	assert.Equal(t, Range{0, uint32(spIdx)}, bf.SphereRange)
	assert.Equal(t, Range{uint32(spIdx), uint32(spIdx + cyIdx)}, bf.CylinderRange)
	assert.Equal(t, uint32(cyIdx), bf.CylinderRange.N())

	// every index in bounds, and the two families reference disjoint
	// vertex regions
	for i, ix := range bf.Indices {
		assert.Less(t, int(ix), len(bf.Vertices))
		if uint32(i) < bf.SphereRange.End {
			assert.Less(t, int(ix), spVtx)
		} else {
			assert.GreaterOrEqual(t, int(ix), spVtx)
		}
	}
}
