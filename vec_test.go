package relief

import (
	"math"
	"testing"
)

func TestVec3_NormalizeOr(t *testing.T) {
	fallback := V3(0, 0, 1)
	tests := []struct {
		name string
		v    Vec3
		want Vec3
	}{
		{"axis", V3(0, 3, 0), V3(0, 1, 0)},
		{"pythagorean", V3(3, 0, 4), V3(0.6, 0, 0.8)},
		{"zero", V3(0, 0, 0), fallback},
		{"nan", V3(math.NaN(), 1, 1), fallback},
		{"inf", V3(math.Inf(1), 0, 0), fallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := tt.v.NormalizeOr(fallback)
			if !approxEqual(got.X, tt.want.X, 1e-12) ||
				!approxEqual(got.Y, tt.want.Y, 1e-12) ||
				!approxEqual(got.Z, tt.want.Z, 1e-12) {
				t.Errorf("NormalizeOr(%v) = %v, want %v", tt.v, got, tt.want)
			}
		})
	}
}

func TestVec3_Arithmetic(t *testing.T) {
	a, b := V3(1, 2, 3), V3(-4, 5, 0.5)

	if got := a.Add(b); got != V3(-3, 7, 3.5) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Mul(2); got != V3(2, 4, 6) {
		t.Errorf("Mul = %v", got)
	}
	if got := a.Dot(b); got != 7.5 {
		t.Errorf("Dot = %v, want 7.5", got)
	}
	if got := V3(2, 3, 6).Length(); got != 7 {
		t.Errorf("Length = %v, want 7", got)
	}
}

func TestVec3_IsFinite(t *testing.T) {
	if !V3(1, -2, 0).IsFinite() {
		t.Error("finite vector reported as non-finite")
	}
	if V3(0, math.NaN(), 0).IsFinite() {
		t.Error("NaN vector reported as finite")
	}
}

func TestVec3_String(t *testing.T) {
	if got := V3(-0.9, -0.55, 0.35).String(); got != "[-0.9, -0.55, 0.35]" {
		t.Errorf("String() = %q", got)
	}
}
