package curve

import (
	"fmt"

	"github.com/mricos/tubegen/pkg/vecmath"
)

// QuadBezier is a quadratic Bézier curve over three control points.
type QuadBezier struct {
	P0, P1, P2 vecmath.Vec3
}

// Point evaluates the standard quadratic blending formula at t.
func (q QuadBezier) Point(t float64) vecmath.Vec3 {
	mt := 1 - t
	a := q.P0.Scale(mt * mt)
	b := q.P1.Scale(2 * mt * t)
	c := q.P2.Scale(t * t)
	return a.Add(b).Add(c)
}

// ParameterRange returns [0, 1].
func (q QuadBezier) ParameterRange() Range {
	return UnitRange
}

// CubicBezier is a cubic Bézier curve over four control points.
type CubicBezier struct {
	P0, P1, P2, P3 vecmath.Vec3
}

// Point evaluates the standard cubic blending formula at t.
func (c CubicBezier) Point(t float64) vecmath.Vec3 {
	mt := 1 - t
	a := c.P0.Scale(mt * mt * mt)
	b := c.P1.Scale(3 * mt * mt * t)
	d := c.P2.Scale(3 * mt * t * t)
	e := c.P3.Scale(t * t * t)
	return a.Add(b).Add(d).Add(e)
}

// ParameterRange returns [0, 1].
func (c CubicBezier) ParameterRange() Range {
	return UnitRange
}

// NewBezier builds a Bézier curve from 3 (quadratic) or 4 (cubic) control
// points. Other point counts are rejected.
func NewBezier(points []vecmath.Vec3) (Curve, error) {
	switch len(points) {
	case 3:
		return QuadBezier{points[0], points[1], points[2]}, nil
	case 4:
		return CubicBezier{points[0], points[1], points[2], points[3]}, nil
	default:
		return nil, fmt.Errorf("bezier curve needs 3 or 4 control points, got %d", len(points))
	}
}
