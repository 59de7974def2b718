// Package layout provides the box protocol that text anchors plug into:
// boxes with an optional measure callback, dirty tracking that walks up
// to the owning pipeline, and a depth-ordered flush.
package layout

import "math"

// epsilon is the tolerance for floating-point comparisons.
const epsilon = 0.0001

// Size represents width and height dimensions in pixels.
type Size struct {
	Width  float64
	Height float64
}

// Equals compares two sizes within epsilon tolerance.
func (s Size) Equals(other Size) bool {
	return floatEqual(s.Width, other.Width) && floatEqual(s.Height, other.Height)
}

func floatEqual(a, b float64) bool {
	return math.Abs(a-b) < epsilon
}

// Undefined is the width value meaning "no constraint". NaN is used so
// that every comparison against an undefined width is false, which the
// measurement strategy selection relies on.
var Undefined = math.NaN()

// IsUndefined reports whether a dimension carries no constraint.
func IsUndefined(v float64) bool {
	return math.IsNaN(v)
}
