package math

import (
	"math"
	"testing"
)

func TestIdentity(t *testing.T) {
	m := Identity()
	if m[0] != 1 || m[5] != 1 || m[10] != 1 || m[15] != 1 {
		t.Error("Identity diagonal should be 1")
	}
	if m[1] != 0 || m[4] != 0 {
		t.Error("Identity off-diagonal should be 0")
	}
}

func TestMulIdentity(t *testing.T) {
	m := Translate(Vec3{1, 2, 3})
	result := m.Mul(Identity())

	for i := 0; i < 16; i++ {
		if result[i] != m[i] {
			t.Errorf("M * I should equal M, element %d: got %f, want %f", i, result[i], m[i])
		}
	}
}

func TestTranslate(t *testing.T) {
	m := Translate(Vec3{5, 10, 15})

	// Translation lives in column 4 (indices 12, 13, 14)
	if m[12] != 5 || m[13] != 10 || m[14] != 15 {
		t.Errorf("Translate: got (%f, %f, %f), want (5, 10, 15)", m[12], m[13], m[14])
	}
}

func TestTransformVec3(t *testing.T) {
	m := Translate(Vec3{10, 20, 30})
	got := m.TransformVec3(Vec3{1, 2, 3})
	want := Vec3{11, 22, 33}
	if got != want {
		t.Errorf("TransformVec3: got %v, want %v", got, want)
	}
}

func TestTransformVec3Scale(t *testing.T) {
	got := Scale(Vec3{2, 2, 2}).TransformVec3(Vec3{1, 2, 3})
	want := Vec3{2, 4, 6}
	if got != want {
		t.Errorf("TransformVec3 with scale: got %v, want %v", got, want)
	}
}

func TestRotateY90(t *testing.T) {
	got := RotateY(float32(math.Pi / 2)).TransformVec3(Vec3{1, 0, 0})

	// After 90 degree Y rotation, (1,0,0) becomes (0,0,-1)
	if !got.ApproxEqual(Vec3{0, 0, -1}, 0.001) {
		t.Errorf("RotateY 90: got %v, want (0, 0, -1)", got)
	}
}

func TestRotateEulerAppliesZFirst(t *testing.T) {
	// Z 90 maps X to Y, then X 90 maps Y to Z.
	rot := Vec3{X: float32(math.Pi / 2), Z: float32(math.Pi / 2)}
	got := RotateEuler(rot).TransformVec3(Vec3{1, 0, 0})
	if !got.ApproxEqual(Vec3{0, 0, 1}, 0.001) {
		t.Errorf("RotateEuler: got %v, want (0, 0, 1)", got)
	}
}

func TestCompose(t *testing.T) {
	m := Compose(Vec3{1, 0, 0}, Vec3{Y: float32(math.Pi)}, Vec3{2, 2, 2})
	got := m.TransformVec3(Vec3{1, 0, 0})

	// scale to (2,0,0), rotate 180 about Y to (-2,0,0), translate to (-1,0,0)
	if !got.ApproxEqual(Vec3{-1, 0, 0}, 0.001) {
		t.Errorf("Compose: got %v, want (-1, 0, 0)", got)
	}
}

func TestPerspective(t *testing.T) {
	m := Perspective(float32(math.Pi/4), 1.0, 0.1, 100.0)

	if m[0] == 0 || m[5] == 0 {
		t.Error("Perspective should have non-zero elements")
	}
	if m[15] != 0 {
		t.Errorf("Perspective [15] should be 0, got %f", m[15])
	}
	if m[11] != -1 {
		t.Errorf("Perspective [11] should be -1, got %f", m[11])
	}
}

func TestLookAtMovesEyeToOrigin(t *testing.T) {
	eye := Vec3{0, 0, 5}
	m := LookAt(eye, Vec3{}, Up)

	got := m.TransformVec3(eye)
	if !got.ApproxEqual(Vec3{}, 0.0001) {
		t.Errorf("LookAt(eye) should map eye to origin, got %v", got)
	}

	// The target sits straight ahead on -Z in view space.
	center := m.TransformVec3(Vec3{})
	if !center.ApproxEqual(Vec3{0, 0, -5}, 0.0001) {
		t.Errorf("LookAt(center): got %v, want (0, 0, -5)", center)
	}
}

func TestRadians(t *testing.T) {
	if got := Radians(180); math.Abs(float64(got)-math.Pi) > 1e-6 {
		t.Errorf("Radians(180) = %v, want pi", got)
	}
}
