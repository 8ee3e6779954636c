// Package track defines the path contract consumed by distribute-mode
// generation, plus a few built-in track shapes.
package track

import (
	"math"

	"github.com/mricos/tubegen/internal/curve"
	"github.com/mricos/tubegen/pkg/vecmath"
)

// Track is the external-path contract: a point and an orientation frame per
// parameter value in [0, 1]. The generator does not care how a track is
// represented internally.
type Track interface {
	Point(t float64) vecmath.Vec3
	Frame(t float64) curve.Frame
}

// Circle is a circular track of the given radius in the XZ plane.
type Circle struct {
	Radius float64
}

func (c Circle) Point(t float64) vecmath.Vec3 {
	a := 2 * math.Pi * t
	return vecmath.Vec3{X: c.Radius * math.Cos(a), Y: 0, Z: c.Radius * math.Sin(a)}
}

func (c Circle) ParameterRange() curve.Range { return curve.UnitRange }

func (c Circle) Frame(t float64) curve.Frame { return curve.FrameAt(c, t) }

// Helix winds Turns revolutions of the given radius, rising Pitch units per
// revolution.
type Helix struct {
	Radius float64
	Pitch  float64
	Turns  float64
}

func (h Helix) Point(t float64) vecmath.Vec3 {
	a := 2 * math.Pi * h.Turns * t
	return vecmath.Vec3{
		X: h.Radius * math.Cos(a),
		Y: h.Pitch * h.Turns * t,
		Z: h.Radius * math.Sin(a),
	}
}

func (h Helix) ParameterRange() curve.Range { return curve.UnitRange }

func (h Helix) Frame(t float64) curve.Frame { return curve.FrameAt(h, t) }

// Figure8 is a flat lemniscate. Radius is the half-width of each lobe.
type Figure8 struct {
	Radius float64
}

func (f Figure8) Point(t float64) vecmath.Vec3 {
	a := 2 * math.Pi * t
	return vecmath.Vec3{
		X: f.Radius * math.Sin(a),
		Y: 0,
		Z: f.Radius * math.Sin(a) * math.Cos(a),
	}
}

func (f Figure8) ParameterRange() curve.Range { return curve.UnitRange }

func (f Figure8) Frame(t float64) curve.Frame { return curve.FrameAt(f, t) }

// FromCurve adapts any parametric curve to the track contract, so a Bézier
// can serve as a distribute-mode path.
func FromCurve(c curve.Curve) Track {
	return curveTrack{c}
}

type curveTrack struct {
	c curve.Curve
}

func (ct curveTrack) Point(t float64) vecmath.Vec3 { return ct.c.Point(t) }

func (ct curveTrack) Frame(t float64) curve.Frame { return curve.FrameAt(ct.c, t) }
