// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// Instance is the per-shape data for one instanced draw: a column-major
// model matrix and an opaque color. The struct is 80 bytes of float32
// and uploads directly as storage-buffer data.
type Instance struct {
	// Matrix transforms the canonical mesh into world space.
	Matrix math32.Matrix4

	// Color is the base color; alpha is always 1.
	Color math32.Vector4
}

// zAxis is the canonical long axis of the cylinder mesh.
var zAxis = math32.Vec3(0, 0, 1)

// EncodeShape returns the [Instance] for one shape.
// A sphere is a uniform scale by its radius at its origin, with no
// rotation. A cylinder is translated to its start point, rotated by
// the shortest arc taking the mesh Z axis onto the bond direction,
// and scaled by (radius, radius, length). A zero-length cylinder has
// no defined direction; it keeps the identity rotation along +Z.
func EncodeShape(sh Shape) Instance {
	var in Instance
	switch sh := sh.(type) {
	case Sphere:
		in.Matrix.SetTransform(sh.Origin, math32.NewQuat(0, 0, 0, 1),
			math32.Vec3(sh.Radius, sh.Radius, sh.Radius))
		in.Color.SetFromVector3(sh.Color, 1)
	case Cylinder:
		delta := sh.End.Sub(sh.Start)
		length := delta.Length()
		quat := math32.NewQuat(0, 0, 0, 1)
		if length > 0 {
			quat.SetFromUnitVectors(zAxis, delta.DivScalar(length))
		}
		in.Matrix.SetTransform(sh.Start, quat,
			math32.Vec3(sh.Radius, sh.Radius, length))
		in.Color.SetFromVector3(sh.Color, 1)
	}
	return in
}

// Instances encodes the shapes into an instance sequence, one per
// shape in the same order, so that sphere instances occupy
// [0, NumSpheres) and cylinder instances the remainder, aligned with
// the mesh buffer's two index ranges. capacity >= 0 declares the
// maximum number of instances the consumer's buffer can hold; an
// overflow is reported as an error, never silently truncated.
// A negative capacity means unbounded.
func Instances(shapes []Shape, capacity int) ([]Instance, error) {
	if capacity >= 0 && len(shapes) > capacity {
		return nil, fmt.Errorf("scene: %d instances exceed declared capacity %d", len(shapes), capacity)
	}
	ins := make([]Instance, len(shapes))
	for i, sh := range shapes {
		ins[i] = EncodeShape(sh)
	}
	return ins, nil
}
