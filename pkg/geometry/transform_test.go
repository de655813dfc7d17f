package geometry

import (
	"testing"

	"github.com/go-gl/mathgl/mgl64"
)

func coordsAlmostEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("got %d coords, want %d", len(got), len(want))
	}
	for i := range want {
		if !mgl64.FloatEqualThreshold(got[i], want[i], eps) {
			t.Errorf("coord[%d] = %v, want %v", i, got[i], want[i])
		}
	}
}

func TestMove(t *testing.T) {
	tests := []struct {
		name string
		axis Axis
		step float64
		want []float64
	}{
		{"along X", AxisX, 2.5, []float64{2.5, 0, 0, 3.5, 1, 1}},
		{"along Y", AxisY, -1, []float64{0, -1, 0, 1, 0, 1}},
		{"along Z", AxisZ, 0.5, []float64{0, 0, 0.5, 1, 1, 1.5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Buffer{Coordinates: []float64{0, 0, 0, 1, 1, 1}}
			Transform{Kind: Move, Value: tt.step, Axis: tt.axis}.Apply(b)
			coordsAlmostEqual(t, b.Coordinates, tt.want, tolerance)
		})
	}
}

func TestRotate90(t *testing.T) {
	tests := []struct {
		name string
		axis Axis
		in   []float64
		want []float64
	}{
		// (0,1,0) about X by 90: y' = -z*sin+y*cos = 0, z' = y*sin = 1
		{"unit Y about X", AxisX, []float64{0, 1, 0}, []float64{0, 0, 1}},
		// (1,0,0) about Y by 90: x' = x*cos = 0, z' = -x*sin = -1
		{"unit X about Y", AxisY, []float64{1, 0, 0}, []float64{0, 0, -1}},
		// (1,0,0) about Z by 90: x' = x*cos = 0, y' = -x*sin = -1
		{"unit X about Z", AxisZ, []float64{1, 0, 0}, []float64{0, -1, 0}},
		// (0,0,1) about Y by 90: x' = z*sin = 1, z' = z*cos = 0
		{"unit Z about Y", AxisY, []float64{0, 0, 1}, []float64{1, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Buffer{Coordinates: append([]float64(nil), tt.in...)}
			Transform{Kind: Rotate, Value: 90, Axis: tt.axis}.Apply(b)
			coordsAlmostEqual(t, b.Coordinates, tt.want, 1e-9)
		})
	}
}

func TestRotateFullCircle(t *testing.T) {
	original := []float64{1, 2, 3, -4, 5, -6, 0.5, -0.25, 0}

	for _, axis := range []Axis{AxisX, AxisY, AxisZ} {
		t.Run(axis.String(), func(t *testing.T) {
			b := &Buffer{Coordinates: append([]float64(nil), original...)}
			Transform{Kind: Rotate, Value: 360, Axis: axis}.Apply(b)
			coordsAlmostEqual(t, b.Coordinates, original, 1e-9)
		})
	}
}

func TestRotateComposes(t *testing.T) {
	original := []float64{1, 2, 3}
	b := &Buffer{Coordinates: append([]float64(nil), original...)}

	Transform{Kind: Rotate, Value: 30, Axis: AxisZ}.Apply(b)
	Transform{Kind: Rotate, Value: 60, Axis: AxisZ}.Apply(b)

	want := &Buffer{Coordinates: append([]float64(nil), original...)}
	Transform{Kind: Rotate, Value: 90, Axis: AxisZ}.Apply(want)

	coordsAlmostEqual(t, b.Coordinates, want.Coordinates, 1e-9)
}

func TestScale(t *testing.T) {
	tests := []struct {
		name   string
		factor float64
		want   []float64
	}{
		{"doubles all axes", 2, []float64{2, 4, 6, -8, 10, -12}},
		{"shrinks", 0.5, []float64{0.5, 1, 1.5, -2, 2.5, -3}},
		{"zero is a no-op", 0, []float64{1, 2, 3, -4, 5, -6}},
		{"negative is a no-op", -3, []float64{1, 2, 3, -4, 5, -6}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := &Buffer{Coordinates: []float64{1, 2, 3, -4, 5, -6}}
			// Axis is ignored for scale; pass Y to prove it.
			Transform{Kind: Scale, Value: tt.factor, Axis: AxisY}.Apply(b)
			coordsAlmostEqual(t, b.Coordinates, tt.want, tolerance)
		})
	}
}

func TestScaleRoundTrip(t *testing.T) {
	original := []float64{1, -2, 3, 4.5, 0, -7}

	for _, s := range []float64{2, 3.7, 0.125} {
		b := &Buffer{Coordinates: append([]float64(nil), original...)}
		Transform{Kind: Scale, Value: s}.Apply(b)
		Transform{Kind: Scale, Value: 1 / s}.Apply(b)
		coordsAlmostEqual(t, b.Coordinates, original, 1e-9)
	}
}

func TestApplyEmptyBuffer(t *testing.T) {
	b := &Buffer{}
	Transform{Kind: Move, Value: 5, Axis: AxisX}.Apply(b)
	Transform{Kind: Rotate, Value: 45, Axis: AxisY}.Apply(b)
	Transform{Kind: Scale, Value: 2}.Apply(b)

	if len(b.Coordinates) != 0 {
		t.Errorf("transforms on empty buffer appended %d coords", len(b.Coordinates))
	}
}

func TestApplyUnknownKind(t *testing.T) {
	b := &Buffer{Coordinates: []float64{1, 2, 3}}
	Transform{Kind: Kind(99), Value: 5, Axis: AxisX}.Apply(b)

	coordsAlmostEqual(t, b.Coordinates, []float64{1, 2, 3}, tolerance)
}

func TestKindString(t *testing.T) {
	tests := []struct {
		kind Kind
		want string
	}{
		{Move, "Move"},
		{Rotate, "Rotate"},
		{Scale, "Scale"},
		{Kind(7), "Unknown(7)"},
	}

	for _, tt := range tests {
		if got := tt.kind.String(); got != tt.want {
			t.Errorf("Kind(%d).String() = %q, want %q", int(tt.kind), got, tt.want)
		}
	}
}

func TestAxisString(t *testing.T) {
	tests := []struct {
		axis Axis
		want string
	}{
		{AxisX, "X"},
		{AxisY, "Y"},
		{AxisZ, "Z"},
		{Axis(-1), "Unknown(-1)"},
	}

	for _, tt := range tests {
		if got := tt.axis.String(); got != tt.want {
			t.Errorf("Axis(%d).String() = %q, want %q", int(tt.axis), got, tt.want)
		}
	}
}
