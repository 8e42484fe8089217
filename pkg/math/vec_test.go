package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	x := Vec3{1, 0, 0}
	y := Vec3{0, 1, 0}
	got := x.Cross(y)
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Length(t *testing.T) {
	got := Vec3{3, 4, 0}.Length()
	if got != 5 {
		t.Errorf("Vec3.Length() = %v, want 5", got)
	}
}

func TestVec3NormalizeZero(t *testing.T) {
	if got := (Vec3{}).Normalize(); got != (Vec3{}) {
		t.Errorf("Vec3{}.Normalize() = %v, want zero", got)
	}
}

func TestVec3Lerp(t *testing.T) {
	a := Vec3{0, 0, 0}
	b := Vec3{10, -10, 4}

	if got := a.Lerp(b, 0); got != a {
		t.Errorf("Lerp(0) = %v, want %v", got, a)
	}
	if got := a.Lerp(b, 1); got != b {
		t.Errorf("Lerp(1) = %v, want %v", got, b)
	}
	if got := a.Lerp(b, 0.5); got != (Vec3{5, -5, 2}) {
		t.Errorf("Lerp(0.5) = %v, want (5, -5, 2)", got)
	}
}

func TestVec3ApproxEqual(t *testing.T) {
	if !(Vec3{1, 2, 3}).ApproxEqual(Vec3{1.0005, 2, 3}, 0.001) {
		t.Error("expected vectors within eps to be equal")
	}
	if (Vec3{1, 2, 3}).ApproxEqual(Vec3{1.01, 2, 3}, 0.001) {
		t.Error("expected vectors outside eps to differ")
	}
}
