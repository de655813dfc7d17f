package geometry

import (
	"fmt"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

// Kind selects which affine transformation a Transform applies.
type Kind int

// Transformation kinds.
const (
	Move   Kind = 0 // Translate along one axis
	Rotate Kind = 1 // Rotate about one axis
	Scale  Kind = 2 // Uniform scale on all axes
)

// String returns a human-readable kind name.
func (k Kind) String() string {
	switch k {
	case Move:
		return "Move"
	case Rotate:
		return "Rotate"
	case Scale:
		return "Scale"
	default:
		return fmt.Sprintf("Unknown(%d)", int(k))
	}
}

// Axis selects the coordinate component a transformation acts on.
type Axis int

// Coordinate axes.
const (
	AxisX Axis = 0
	AxisY Axis = 1
	AxisZ Axis = 2
)

// String returns a human-readable axis name.
func (a Axis) String() string {
	switch a {
	case AxisX:
		return "X"
	case AxisY:
		return "Y"
	case AxisZ:
		return "Z"
	default:
		return fmt.Sprintf("Unknown(%d)", int(a))
	}
}

// Transform is one affine operation over a Buffer. Value is the translation
// distance for Move, the angle in degrees for Rotate, and the scale factor
// for Scale. Axis selects the component for Move and the rotation axis for
// Rotate; Scale ignores it and multiplies all three components.
type Transform struct {
	Kind  Kind
	Value float64
	Axis  Axis
}

// Apply mutates the buffer's coordinates in place. A buffer with no vertices
// and an unrecognized kind are both no-ops.
func (t Transform) Apply(b *Buffer) {
	if len(b.Coordinates) == 0 {
		return
	}

	switch t.Kind {
	case Move:
		move(b.Coordinates, t.Value, t.Axis)
	case Rotate:
		rotate(b.Coordinates, t.Value, t.Axis)
	case Scale:
		scale(b.Coordinates, t.Value)
	}
}

func move(coords []float64, step float64, axis Axis) {
	if axis < AxisX || axis > AxisZ {
		return
	}
	for i := int(axis); i < len(coords); i += 3 {
		coords[i] += step
	}
}

// rotate turns every vertex about the chosen axis by angle degrees, using
// the right-handed convention:
//
//	about X: y' = y*cos - z*sin,  z' = y*sin + z*cos
//	about Y: x' = x*cos + z*sin,  z' = -x*sin + z*cos
//	about Z: x' = x*cos + y*sin,  y' = -x*sin + y*cos
func rotate(coords []float64, angle float64, axis Axis) {
	if len(coords) < 3 {
		return
	}

	rad := mgl64.DegToRad(angle)
	cos := math.Cos(rad)
	sin := math.Sin(rad)

	switch axis {
	case AxisX:
		for i := 0; i+2 < len(coords); i += 3 {
			y, z := coords[i+1], coords[i+2]
			coords[i+1] = y*cos - z*sin
			coords[i+2] = y*sin + z*cos
		}
	case AxisY:
		for i := 0; i+2 < len(coords); i += 3 {
			x, z := coords[i], coords[i+2]
			coords[i] = x*cos + z*sin
			coords[i+2] = -x*sin + z*cos
		}
	case AxisZ:
		for i := 0; i+2 < len(coords); i += 3 {
			x, y := coords[i], coords[i+1]
			coords[i] = x*cos + y*sin
			coords[i+1] = -x*sin + y*cos
		}
	}
}

// scale multiplies every coordinate by factor. Non-positive factors are a
// no-op, not an error.
func scale(coords []float64, factor float64) {
	if factor <= 0 {
		return
	}
	for i := range coords {
		coords[i] *= factor
	}
}
