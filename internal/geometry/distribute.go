package geometry

import (
	"math"

	"go.uber.org/zap"

	"github.com/mricos/tubegen/internal/logger"
)

// buildDistribute spaces PieceCount discrete pieces evenly along the external
// track, displaced from it by sinusoids riding the track's moving frame and
// rolled by a cumulative per-piece spin.
func (g *Generator) buildDistribute() []Element {
	cfg := g.cfg.Distribute.sanitized()
	if cfg.PieceCount == 0 {
		return nil
	}
	if g.track == nil {
		logger.Warn("distribute: no track set, generating nothing")
		return nil
	}

	els := make([]Element, 0, cfg.PieceCount)
	for i := 0; i < cfg.PieceCount; i++ {
		// The track is sampled at the phase-shifted parameter, but the
		// sinusoid rides the base parameter so the wave pattern stays pinned
		// to the pieces while phase slides them along the track.
		baseT := float64(i) / float64(cfg.PieceCount)
		u := baseT + cfg.Phase/360
		u -= math.Floor(u)

		pos := g.track.Point(u)
		frame := g.track.Frame(u)

		wave := math.Sin(2 * math.Pi * baseT * cfg.Frequency)
		pos = pos.
			Add(frame.Normal.Scale(cfg.AmpNormal * wave)).
			Add(frame.Binormal.Scale(cfg.AmpBinormal * wave)).
			Add(frame.Tangent.Scale(cfg.AmpTangent * wave))

		els = append(els, Element{
			Position:   pos,
			Rotation:   faceEuler(frame.Tangent, cfg.Spin*float64(i)),
			Width:      cfg.PieceWidth,
			Height:     cfg.PieceLength,
			Opacity:    1,
			WidthScale: 1,
			ColorIndex: i,
			Kind:       KindPiece,
		})
	}

	logger.Debug("distribute generated", zap.Int("pieces", len(els)))
	return els
}
