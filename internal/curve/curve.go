// Package curve evaluates parametric 3D curves: positions, tangents,
// curvature and orthonormal frames along the parameter range.
package curve

import (
	"math"

	"github.com/mricos/tubegen/pkg/vecmath"
)

// DefaultStep is the finite-difference step used by Tangent and Curvature.
const DefaultStep = 1e-3

// LengthSamples is the polyline sample count used by Length.
const LengthSamples = 50

// Range is a curve's parameter interval.
type Range struct {
	Min, Max float64
}

// UnitRange is the [0, 1] parameter interval used by all built-in curves.
var UnitRange = Range{Min: 0, Max: 1}

// Curve is a parametric 3D curve. Implementations only supply point
// evaluation; tangents, frames, curvature and length are derived.
type Curve interface {
	Point(t float64) vecmath.Vec3
	ParameterRange() Range
}

// Frame is an orthonormal basis at a point on a curve. All three vectors are
// unit length and pairwise orthogonal; Binormal = Tangent × Normal.
type Frame struct {
	Tangent  vecmath.Vec3
	Normal   vecmath.Vec3
	Binormal vecmath.Vec3
}

// defaultForward is returned for tangents of degenerate curves.
var defaultForward = vecmath.Vec3{X: 0, Y: 0, Z: 1}

// Tangent returns the unit tangent at t via central finite difference,
// clamped at the parameter boundaries. Degenerate curves (coincident sample
// points) yield a default forward vector instead of a zero division.
func Tangent(c Curve, t float64) vecmath.Vec3 {
	return TangentStep(c, t, DefaultStep)
}

// TangentStep is Tangent with an explicit finite-difference step.
func TangentStep(c Curve, t, step float64) vecmath.Vec3 {
	r := c.ParameterRange()
	t0 := math.Max(r.Min, t-step)
	t1 := math.Min(r.Max, t+step)
	d := c.Point(t1).Sub(c.Point(t0))
	if d.Length() < 1e-12 {
		return defaultForward
	}
	return d.Normalize()
}

// FrameAt builds an orthonormal frame from the tangent at t using a fixed up
// reference (0,1,0). When the tangent is nearly parallel to up, (1,0,0) is
// substituted to keep the cross product well conditioned.
func FrameAt(c Curve, t float64) Frame {
	tan := Tangent(c, t)
	up := vecmath.Vec3{X: 0, Y: 1, Z: 0}
	if math.Abs(tan.Dot(up)) > 0.99 {
		up = vecmath.Vec3{X: 1, Y: 0, Z: 0}
	}
	bin := tan.Cross(up).Normalize()
	norm := bin.Cross(tan)
	return Frame{Tangent: tan, Normal: norm, Binormal: bin}
}

// Curvature estimates |dT/ds| at t from the unit tangents over a small
// parameter window. Returns 0 when the sampled arc length is below tolerance.
func Curvature(c Curve, t float64) float64 {
	r := c.ParameterRange()
	t0 := math.Max(r.Min, t-DefaultStep)
	t1 := math.Min(r.Max, t+DefaultStep)
	arc := c.Point(t1).Sub(c.Point(t0)).Length()
	if arc < 1e-9 {
		return 0
	}
	dt := Tangent(c, t1).Sub(Tangent(c, t0))
	return dt.Length() / arc
}

// Length approximates arc length with a uniform polyline over the parameter
// range. It is an estimate, not an exact measure.
func Length(c Curve) float64 {
	return LengthN(c, LengthSamples)
}

// LengthN is Length with an explicit sample count.
func LengthN(c Curve, samples int) float64 {
	if samples < 1 {
		samples = 1
	}
	r := c.ParameterRange()
	span := r.Max - r.Min
	prev := c.Point(r.Min)
	var sum float64
	for i := 1; i <= samples; i++ {
		t := r.Min + span*float64(i)/float64(samples)
		p := c.Point(t)
		sum += p.Distance(prev)
		prev = p
	}
	return sum
}
