package geometry

import (
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/mricos/tubegen/internal/curve"
	"github.com/mricos/tubegen/internal/logger"
	"github.com/mricos/tubegen/internal/track"
	"github.com/mricos/tubegen/internal/transition"
)

// Generator owns the element list for one curve/track pair and rebuilds it
// per mode. It is single-threaded: Generate, StartTransition and
// UpdateTransition run to completion within one call and must not be invoked
// concurrently.
type Generator struct {
	mode  Mode
	curve curve.Curve
	track track.Track
	cfg   Config

	elements []Element

	ctrl       *transition.Controller
	fromMeta   []Element
	toMeta     []Element
	interp     []Element
	targetMode Mode
}

// New builds a generator. The curve is required; the track may be nil, in
// which case distribute mode generates zero elements.
func New(mode Mode, cv curve.Curve, tr track.Track, cfg Config) (*Generator, error) {
	if cv == nil {
		return nil, fmt.Errorf("geometry: generator needs a curve")
	}
	switch mode {
	case ModeTube, ModeDistribute, ModeCrystal:
	default:
		return nil, fmt.Errorf("geometry: unknown mode %q", mode)
	}
	return &Generator{mode: mode, curve: cv, track: tr, cfg: cfg}, nil
}

// Mode returns the committed mode. During a transition this is still the
// source mode; it flips when the transition completes.
func (g *Generator) Mode() Mode { return g.mode }

// SetTrack replaces the external track used by distribute mode.
func (g *Generator) SetTrack(tr track.Track) { g.track = tr }

// Generate rebuilds the authoritative element list for the current mode,
// replacing the previous one wholesale.
func (g *Generator) Generate() []Element {
	g.elements = g.build(g.mode)
	return g.elements
}

// Elements returns the authoritative element list from the last Generate.
func (g *Generator) Elements() []Element { return g.elements }

// Visible returns whatever the renderer should draw this frame: the
// interpolated set while a transition is running, the live set otherwise.
func (g *Generator) Visible() []Element {
	if g.ctrl != nil && g.interp != nil {
		return g.interp
	}
	return g.elements
}

// Destroy discards all element state.
func (g *Generator) Destroy() {
	g.elements = nil
	g.ctrl = nil
	g.fromMeta = nil
	g.toMeta = nil
	g.interp = nil
}

// build dispatches to the mode generators. All three recover locally from
// malformed parameters by producing zero elements.
func (g *Generator) build(mode Mode) []Element {
	switch mode {
	case ModeTube:
		return g.buildTube()
	case ModeDistribute:
		return g.buildDistribute()
	case ModeCrystal:
		return g.buildCrystal()
	default:
		return nil
	}
}

// StartTransition snapshots the currently visible elements and the target
// mode's elements, then begins interpolating between them. Starting a new
// transition while one is in flight replaces it, re-snapshotting from the
// live interpolated state so there is no positional discontinuity. The mode
// is not committed until the transition completes.
func (g *Generator) StartTransition(target Mode, duration time.Duration, easing string, now time.Time) {
	fromEl := append([]Element(nil), g.Visible()...)
	toEl := g.build(target)

	g.ctrl = transition.NewController(toSnapshot(fromEl), toSnapshot(toEl), now, duration, easing)
	g.fromMeta = fromEl
	g.toMeta = toEl
	g.interp = nil
	g.targetMode = target

	logger.Debug("transition started",
		zap.String("from", string(g.mode)),
		zap.String("to", string(target)),
		zap.Duration("duration", duration),
	)
}

// UpdateTransition advances the active transition to the given time and
// refreshes the visible interpolated set. It reports whether a transition
// was active; calling it with none running is a no-op. On completion the
// target mode is committed and the target elements become authoritative
// (identical to what Generate would produce).
func (g *Generator) UpdateTransition(now time.Time) bool {
	if g.ctrl == nil {
		return false
	}
	snap, done := g.ctrl.Frame(now)
	out := make([]Element, len(snap))
	for i, s := range snap {
		el := g.metaAt(i)
		el.Position = s.Position
		el.Width = s.Width
		el.Height = s.Height
		el.Opacity = s.Opacity
		el.WidthScale = 1
		out[i] = el
	}
	g.interp = out

	if done {
		g.mode = g.targetMode
		g.elements = g.toMeta
		g.ctrl = nil
		g.fromMeta = nil
		g.toMeta = nil
		g.interp = nil
	}
	return true
}

// Transitioning reports whether a transition is in flight.
func (g *Generator) Transitioning() bool { return g.ctrl != nil }

// metaAt picks the non-interpolated descriptor fields (kind, color,
// orientation) for interpolated index i: target metadata where the target
// has an element, source metadata for elements fading out.
func (g *Generator) metaAt(i int) Element {
	if i < len(g.toMeta) {
		return g.toMeta[i]
	}
	if i < len(g.fromMeta) {
		return g.fromMeta[i]
	}
	return Element{Kind: KindPiece, Opacity: 0, WidthScale: 1}
}

func toSnapshot(els []Element) transition.Snapshot {
	snap := make(transition.Snapshot, len(els))
	for i, el := range els {
		snap[i] = transition.Sample{
			Position: el.Position,
			Width:    el.Width,
			Height:   el.Height,
			Opacity:  el.Opacity,
		}
	}
	return snap
}
