package geometry

import (
	"math"

	"go.uber.org/zap"

	"github.com/mricos/tubegen/internal/curve"
	"github.com/mricos/tubegen/internal/logger"
	"github.com/mricos/tubegen/pkg/vecmath"
)

// CurvatureTwistGain converts raw curvature (1/world units) into a usable
// per-ring phase contribution in degrees. Raw curvature on hand-sized curves
// is tiny, so without the gain CurvatureScale would need absurd values.
const CurvatureTwistGain = 10

// buildTube emits (CurveSegments+1) rings of RadialSegments faces each,
// wrapped around the curve. Ring phase accumulates along the curve so the
// face seams braid instead of forming straight rails, with tighter curve
// sections twisting faster.
func (g *Generator) buildTube() []Element {
	cfg := g.cfg.Tube.sanitized()
	if cfg.CurveSegments == 0 || cfg.RadialSegments == 0 {
		logger.Warn("tube: no segments configured",
			zap.Int("curve_segments", cfg.CurveSegments),
			zap.Int("radial_segments", cfg.RadialSegments),
		)
		return nil
	}

	rings := cfg.CurveSegments + 1
	faces := cfg.RadialSegments

	// Chord width of one face on the ring circle; ring spacing gives height.
	width := 2 * cfg.Radius * math.Sin(math.Pi/float64(faces))
	height := curve.Length(g.curve) / float64(cfg.CurveSegments)

	els := make([]Element, 0, rings*faces)
	phase := cfg.Phase
	for i := 0; i < rings; i++ {
		t := float64(i) / float64(cfg.CurveSegments)
		center := g.curve.Point(t)
		frame := curve.FrameAt(g.curve, t)

		if i > 0 {
			k := curve.Curvature(g.curve, t)
			phase += cfg.PhaseAdvance + k*cfg.CurvatureScale*CurvatureTwistGain
		}
		ringPhase := phase + cfg.Twist*float64(i)/float64(cfg.CurveSegments)

		for j := 0; j < faces; j++ {
			angle := vecmath.Radians(ringPhase + 360*float64(j)/float64(faces))
			sin, cos := math.Sincos(angle)
			offset := frame.Normal.Scale(cfg.Radius * cos).Add(frame.Binormal.Scale(cfg.Radius * sin))

			els = append(els, Element{
				Position:   center.Add(offset),
				Rotation:   faceEuler(frame.Tangent, ringPhase+360*float64(j)/float64(faces)),
				Width:      width,
				Height:     height,
				Opacity:    1,
				WidthScale: 1,
				ColorIndex: (i + j) % 2,
				Kind:       KindRingFace,
			})
		}
	}
	return els
}

// faceEuler orients an element whose height axis follows the given tangent,
// rolled about that axis by rollDeg.
func faceEuler(tangent vecmath.Vec3, rollDeg float64) Euler {
	return Euler{
		X: vecmath.Degrees(-math.Asin(vecmath.Clamp(tangent.Y, -1, 1))),
		Y: vecmath.Degrees(math.Atan2(tangent.X, tangent.Z)),
		Z: rollDeg,
	}
}
