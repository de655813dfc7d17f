// Package geometry provides flat wireframe geometry buffers and the affine
// transformations applied to them.
package geometry

import "math"

// NormalizeThreshold is the coordinate ceiling above which a freshly parsed
// model is rescaled. Models whose largest absolute coordinate stays at or
// below the threshold are left untouched.
const NormalizeThreshold = 10.0

// Buffer holds a wireframe model as two flat slices.
//
// Coordinates stores vertex positions as consecutive (x, y, z) triplets, so
// its length is always a multiple of 3. Edges stores drawable line segments
// as consecutive (a, b) index pairs, each index referring to a vertex triplet
// (Coordinates[3*a:3*a+3]); its length is always a multiple of 2. Edge
// indices are produced only from already-validated vertex references, so
// consumers may index without bounds checks.
type Buffer struct {
	Coordinates []float64
	Edges       []int
}

// VertexCount returns the number of vertex triplets in the buffer.
func (b *Buffer) VertexCount() int {
	return len(b.Coordinates) / 3
}

// EdgeCount returns the number of edge pairs in the buffer.
func (b *Buffer) EdgeCount() int {
	return len(b.Edges) / 2
}

// Reset empties the buffer, retaining allocated capacity for reuse.
func (b *Buffer) Reset() {
	b.Coordinates = b.Coordinates[:0]
	b.Edges = b.Edges[:0]
}

// MaxAbs returns the largest absolute coordinate value, or 0 for an empty
// buffer.
func (b *Buffer) MaxAbs() float64 {
	maxAbs := 0.0
	for _, c := range b.Coordinates {
		if a := math.Abs(c); a > maxAbs {
			maxAbs = a
		}
	}
	return maxAbs
}

// Normalize rescales the model so that no coordinate exceeds
// NormalizeThreshold in magnitude. The rescale divides every coordinate by
// the pre-scale maximum absolute value, but only when that maximum actually
// exceeds the threshold; small models are left unchanged, which makes the
// operation idempotent. An empty buffer is a no-op.
func (b *Buffer) Normalize() {
	if len(b.Coordinates) == 0 {
		return
	}

	maxAbs := b.MaxAbs()
	if maxAbs <= NormalizeThreshold {
		return
	}

	scale := 1.0 / maxAbs
	for i := range b.Coordinates {
		b.Coordinates[i] *= scale
	}
}

// Bounds returns the per-axis minimum and maximum coordinates. Both results
// are zero vectors for an empty buffer.
func (b *Buffer) Bounds() (min, max [3]float64) {
	if len(b.Coordinates) < 3 {
		return min, max
	}

	for i := 0; i < 3; i++ {
		min[i] = b.Coordinates[i]
		max[i] = b.Coordinates[i]
	}
	for i := 3; i+2 < len(b.Coordinates); i += 3 {
		for j := 0; j < 3; j++ {
			c := b.Coordinates[i+j]
			if c < min[j] {
				min[j] = c
			}
			if c > max[j] {
				max[j] = c
			}
		}
	}
	return min, max
}
