// Package transition interpolates element snapshots over time when the
// generator switches modes.
package transition

import (
	"time"

	"github.com/mricos/tubegen/pkg/vecmath"
)

// Sample is the per-element state a transition interpolates: position,
// dimensions and opacity. Orientation and color stay with the element
// descriptors; only these values animate.
type Sample struct {
	Position vecmath.Vec3
	Width    float64
	Height   float64
	Opacity  float64
}

// Snapshot is an ordered capture of samples for one mode.
type Snapshot []Sample

// Controller interpolates between a from and a to snapshot over a fixed
// duration. The clock is always supplied by the caller, keeping frames
// reproducible for a given time value.
type Controller struct {
	from, to Snapshot
	start    time.Time
	duration time.Duration
	ease     EasingFunc
}

// NewController captures both snapshots and the start time. A non-positive
// duration completes on the first Frame call.
func NewController(from, to Snapshot, start time.Time, duration time.Duration, easing string) *Controller {
	return &Controller{
		from:     append(Snapshot(nil), from...),
		to:       append(Snapshot(nil), to...),
		start:    start,
		duration: duration,
		ease:     Easing(easing),
	}
}

// Progress returns raw (un-eased) progress clamped to [0, 1].
func (c *Controller) Progress(now time.Time) float64 {
	if c.duration <= 0 {
		return 1
	}
	elapsed := now.Sub(c.start)
	return vecmath.Clamp(float64(elapsed)/float64(c.duration), 0, 1)
}

// Frame returns the interpolated snapshot at the given time and whether the
// transition has completed. The result always spans
// max(len(from), len(to)); an index missing from one snapshot is treated as
// an opacity-0 placeholder at that snapshot's last valid position, so count
// mismatches fade instead of popping.
func (c *Controller) Frame(now time.Time) (Snapshot, bool) {
	t := c.ease(c.Progress(now))
	n := max(len(c.from), len(c.to))
	out := make(Snapshot, n)
	for i := range out {
		a := sampleAt(c.from, i)
		b := sampleAt(c.to, i)
		out[i] = Sample{
			Position: a.Position.Lerp(b.Position, t),
			Width:    vecmath.Lerp(a.Width, b.Width, t),
			Height:   vecmath.Lerp(a.Height, b.Height, t),
			Opacity:  vecmath.Lerp(a.Opacity, b.Opacity, t),
		}
	}
	return out, c.Progress(now) >= 1
}

// sampleAt fetches index i, synthesizing a faded placeholder when the
// snapshot is shorter. The placeholder sits at the snapshot's last valid
// position (the origin when the snapshot is empty).
func sampleAt(s Snapshot, i int) Sample {
	if i < len(s) {
		return s[i]
	}
	if len(s) == 0 {
		return Sample{}
	}
	last := s[len(s)-1]
	last.Opacity = 0
	return last
}
