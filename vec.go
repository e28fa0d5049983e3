package relief

import (
	"fmt"
	"math"

	"gopkg.in/yaml.v3"
)

// Vec3 is a 3D direction used for surface normals and light vectors.
// X grows to the right, Y grows downwards (image rows), Z points out of the
// image towards the viewer.
type Vec3 struct {
	X, Y, Z float64
}

// V3 is a convenience function to create a Vec3.
func V3(x, y, z float64) Vec3 {
	return Vec3{X: x, Y: y, Z: z}
}

// Up is the flat-surface normal facing the viewer.
var Up = Vec3{Z: 1}

// Add returns the sum of two vectors.
func (v Vec3) Add(w Vec3) Vec3 {
	return Vec3{X: v.X + w.X, Y: v.Y + w.Y, Z: v.Z + w.Z}
}

// Mul returns the vector scaled by s.
func (v Vec3) Mul(s float64) Vec3 {
	return Vec3{X: v.X * s, Y: v.Y * s, Z: v.Z * s}
}

// Dot returns the dot product of two vectors.
func (v Vec3) Dot(w Vec3) float64 {
	return v.X*w.X + v.Y*w.Y + v.Z*w.Z
}

// Length returns the Euclidean length of the vector.
func (v Vec3) Length() float64 {
	return math.Sqrt(v.X*v.X + v.Y*v.Y + v.Z*v.Z)
}

// IsFinite reports whether all components are finite.
func (v Vec3) IsFinite() bool {
	return isFinite(v.X) && isFinite(v.Y) && isFinite(v.Z)
}

// NormalizeOr returns the unit vector in the direction of v, or fallback
// when v has zero length or is not finite.
func (v Vec3) NormalizeOr(fallback Vec3) Vec3 {
	l := v.Length()
	if l == 0 || !isFinite(l) {
		return fallback
	}
	return Vec3{X: v.X / l, Y: v.Y / l, Z: v.Z / l}
}

// String formats the vector as "[x, y, z]".
func (v Vec3) String() string {
	return fmt.Sprintf("[%g, %g, %g]", v.X, v.Y, v.Z)
}

// MarshalYAML encodes the vector as a three-element sequence.
func (v Vec3) MarshalYAML() (any, error) {
	return []float64{v.X, v.Y, v.Z}, nil
}

// UnmarshalYAML decodes a three-element sequence such as [-0.9, -0.55, 0.35].
func (v *Vec3) UnmarshalYAML(node *yaml.Node) error {
	var xyz []float64
	if err := node.Decode(&xyz); err != nil {
		return fmt.Errorf("relief: vector at line %d: %w", node.Line, err)
	}
	if len(xyz) != 3 {
		return fmt.Errorf("relief: vector at line %d: got %d components, want 3", node.Line, len(xyz))
	}
	*v = Vec3{X: xyz[0], Y: xyz[1], Z: xyz[2]}
	return nil
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
