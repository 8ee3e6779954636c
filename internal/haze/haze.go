// Package haze applies depth-based opacity and width attenuation to
// generated elements, approximating atmospheric falloff without a real
// projection.
package haze

import (
	"math"

	"github.com/mricos/tubegen/internal/geometry"
	"github.com/mricos/tubegen/pkg/vecmath"
)

// OpacityFloor is the minimum opacity haze may assign. Full haze dims
// geometry but never makes it invisible.
const OpacityFloor = 0.15

// RollMode selects the axis order used to derive view-space depth.
type RollMode string

const (
	// RollView rotates Y then X; the Z angle is treated as pure camera roll
	// and ignored for depth.
	RollView RollMode = "view"
	// RollWorld rotates Z then Y then X, matching a world-space rotation.
	RollWorld RollMode = "world"
)

// Context is the per-frame camera description. It is not persisted; callers
// rebuild it every frame from live camera state.
type Context struct {
	// Rotation is the camera Euler rotation in degrees.
	Rotation geometry.Euler
	// Intensity in [0,100] scales how strongly haze attenuates; 0 disables
	// the opacity falloff entirely.
	Intensity float64
	RollMode  RollMode
	// Follow, when set, switches the depth proxy to Euclidean distance from
	// this position and inverts the falloff (closer to it = more opaque).
	Follow *vecmath.Vec3
}

// Computer holds the static haze tuning that survives across frames.
type Computer struct {
	// WidthZFactor scales elements by 1+(zNorm-0.5)·factor. Zero leaves
	// widths untouched.
	WidthZFactor float64
}

// Apply recomputes Opacity and WidthScale for every element in place. Depth
// proxies are normalized over this call's element set only; there is no
// persisted range, so a single distant outlier rescales the whole frame.
func (c Computer) Apply(ctx Context, els []geometry.Element) {
	if len(els) == 0 {
		return
	}

	depths := make([]float64, len(els))
	minD, maxD := math.Inf(1), math.Inf(-1)
	for i, el := range els {
		d := ctx.depth(el.Position)
		depths[i] = d
		minD = math.Min(minD, d)
		maxD = math.Max(maxD, d)
	}

	span := maxD - minD
	factor := vecmath.Clamp(ctx.Intensity, 0, 100) / 100

	for i := range els {
		// A flat depth field gives every element the neutral midpoint.
		zNorm := 0.5
		if span > 1e-12 {
			zNorm = (depths[i] - minD) / span
		}

		var opacity float64
		if ctx.Follow != nil {
			opacity = 1 - zNorm*factor
		} else {
			opacity = 1 - (1-zNorm)*factor
		}
		els[i].Opacity = math.Max(OpacityFloor, opacity)

		els[i].WidthScale = 1 + (zNorm-0.5)*c.WidthZFactor
	}
}

// depth returns the raw per-element depth proxy: distance to the follow
// position when following, otherwise the view-space Z after rotating by the
// camera angles in the configured axis order.
func (ctx Context) depth(p vecmath.Vec3) float64 {
	if ctx.Follow != nil {
		return p.Distance(*ctx.Follow)
	}
	if ctx.RollMode == RollWorld {
		p = vecmath.RotateZ(p, vecmath.Radians(ctx.Rotation.Z))
	}
	p = vecmath.RotateY(p, vecmath.Radians(ctx.Rotation.Y))
	p = vecmath.RotateX(p, vecmath.Radians(ctx.Rotation.X))
	return p.Z
}
