package geometry

import (
	"math"

	"go.uber.org/zap"

	"github.com/mricos/tubegen/internal/logger"
	"github.com/mricos/tubegen/pkg/vecmath"
)

// buildCrystal arranges Layers×PieceCount petals radiating from a shared
// center. Generation runs in two passes: petals are first laid out around the
// origin, then the whole arrangement is recentered on its own centroid so the
// final mean position equals CenterOffset exactly regardless of spread or
// phase.
func (g *Generator) buildCrystal() []Element {
	cfg := g.cfg.Crystal.sanitized()
	if cfg.Layers == 0 || cfg.PieceCount == 0 {
		logger.Warn("crystal: empty arrangement",
			zap.Int("layers", cfg.Layers),
			zap.Int("piece_count", cfg.PieceCount),
		)
		return nil
	}

	total := cfg.Layers * cfg.PieceCount
	els := make([]Element, 0, total)
	var com vecmath.Vec3

	idx := 0
	for layer := 0; layer < cfg.Layers; layer++ {
		tilt := vecmath.Radians(cfg.Spread * float64(layer) / float64(cfg.Layers))
		// Stagger successive layers so petals interleave instead of stacking.
		stagger := 360 / float64(cfg.PieceCount) * float64(layer) / float64(cfg.Layers)

		for p := 0; p < cfg.PieceCount; p++ {
			angle := cfg.Phase + stagger + 360*float64(p)/float64(cfg.PieceCount)
			a := vecmath.Radians(angle)
			sinA, cosA := math.Sincos(a)
			sinT, cosT := math.Sincos(tilt)

			dir := vecmath.Vec3{X: cosA * cosT, Y: sinT, Z: sinA * cosT}
			pos := dir.Scale(cfg.Radius)

			wave := math.Sin(cfg.Frequency * a)
			length := cfg.PetalLength * (1 + cfg.AmpLength*wave)
			width := cfg.PetalWidth * (1 + cfg.AmpWidth*wave)

			// Outward pitch blended toward vertical as convergence rises.
			outward := vecmath.Degrees(tilt) + cfg.Bloom
			pitch := vecmath.Lerp(outward, 90, cfg.Convergence)

			els = append(els, Element{
				Position: pos,
				Rotation: Euler{
					X: pitch,
					Y: vecmath.Degrees(math.Atan2(dir.X, dir.Z)),
					Z: cfg.Twist + float64(idx)*cfg.TwistStep,
				},
				Width:      width,
				Height:     length,
				Opacity:    1,
				WidthScale: 1,
				ColorIndex: idx,
				Kind:       KindPetal,
			})
			com = com.Add(pos)
			idx++
		}
	}

	// Second pass: recenter on the arrangement's own centroid, then scale
	// and shift. Scaling around the centroid keeps the mean at CenterOffset.
	com = com.Scale(1 / float64(total))
	for i := range els {
		els[i].Position = els[i].Position.Sub(com).Scale(cfg.Scale).Add(cfg.CenterOffset)
	}
	return els
}
