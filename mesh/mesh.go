// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mesh generates the procedural triangle meshes used for
// instanced molecular rendering: a unit sphere for atoms and an
// uncapped cylinder for bonds, merged into one shared vertex / index
// buffer partitioned by disjoint index ranges.
package mesh

import "cogentcore.org/core/math32"

// Vertex is one mesh vertex: position and outward unit normal.
// Both are padded to Vector4 with w = 0 so the buffer can be uploaded
// as-is with std430-compatible alignment.
type Vertex struct {
	Position math32.Vector4
	Normal   math32.Vector4
}

// Range is a half-open range of indices in a shared index buffer,
// selecting the triangles of one shape family for an indexed draw.
type Range struct {
	Start uint32
	End   uint32
}

// N returns the number of indices in the range.
func (r Range) N() uint32 {
	return r.End - r.Start
}

// Mesh is an indexed triangle mesh shape that knows its own size and
// writes itself into pre-allocated shared arrays at given offsets.
type Mesh interface {
	// Size returns the number of vertex and index points in this shape.
	Size() (numVertex, numIndex int)

	// Set sets the vertex and index points starting at the current
	// offsets. The index values it writes are vertex-offset already.
	Set(vertex []Vertex, index []uint32)

	// Offsets returns starting offsets for vertices and indices.
	Offsets() (vtxOffset, idxOffset int)

	// SetOffsets sets starting offsets for vertices and indices.
	SetOffsets(vtxOffset, idxOffset int)
}

// MeshBase is the base for all mesh shapes, holding the shared-buffer
// offsets.
type MeshBase struct {
	// VtxOff is the starting offset for this shape's vertices.
	VtxOff int

	// IdxOff is the starting offset for this shape's indices.
	IdxOff int
}

func (mb *MeshBase) Offsets() (vtxOffset, idxOffset int) {
	return mb.VtxOff, mb.IdxOff
}

func (mb *MeshBase) SetOffsets(vtxOffset, idxOffset int) {
	mb.VtxOff = vtxOffset
	mb.IdxOff = idxOffset
}

// setVertex writes one position and normal pair, padded to w = 0.
func setVertex(vertex []Vertex, i int, pos, norm math32.Vector3) {
	vertex[i] = Vertex{
		Position: math32.Vector4FromVector3(pos, 0),
		Normal:   math32.Vector4FromVector3(norm, 0),
	}
}
