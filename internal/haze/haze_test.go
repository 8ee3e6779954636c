package haze

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mricos/tubegen/internal/geometry"
	"github.com/mricos/tubegen/pkg/vecmath"
)

func lineOfElements(n int) []geometry.Element {
	els := make([]geometry.Element, n)
	for i := range els {
		els[i] = geometry.Element{
			Position:   vecmath.Vec3{Z: float64(i) * 50},
			Opacity:    1,
			WidthScale: 1,
		}
	}
	return els
}

func TestOpacityNeverBelowFloor(t *testing.T) {
	for _, intensity := range []float64{0, 25, 50, 100, 250} {
		els := lineOfElements(10)
		Computer{}.Apply(Context{Intensity: intensity, RollMode: RollView}, els)
		for i, el := range els {
			assert.GreaterOrEqual(t, el.Opacity, OpacityFloor,
				"intensity %v element %d", intensity, i)
			assert.LessOrEqual(t, el.Opacity, 1.0)
		}
	}
}

func TestZeroIntensityIsFullyOpaque(t *testing.T) {
	els := lineOfElements(5)
	Computer{}.Apply(Context{Intensity: 0, RollMode: RollView}, els)
	for _, el := range els {
		assert.Equal(t, 1.0, el.Opacity)
	}
}

func TestNearerElementsMoreOpaque(t *testing.T) {
	els := lineOfElements(4)
	Computer{}.Apply(Context{Intensity: 100, RollMode: RollView}, els)
	// Depth proxy is raw view-space Z, so higher Z normalizes nearer.
	for i := 1; i < len(els); i++ {
		assert.Greater(t, els[i].Opacity, els[i-1].Opacity)
	}
}

func TestFollowModeInvertsFalloff(t *testing.T) {
	els := lineOfElements(4)
	target := els[0].Position
	Computer{}.Apply(Context{Intensity: 100, Follow: &target}, els)

	assert.Equal(t, 1.0, els[0].Opacity)
	for i := 1; i < len(els); i++ {
		assert.Less(t, els[i].Opacity, els[i-1].Opacity)
	}
	assert.Equal(t, OpacityFloor, els[len(els)-1].Opacity)
}

func TestViewModeIgnoresZRotation(t *testing.T) {
	base := lineOfElements(6)
	for i := range base {
		base[i].Position.X = float64(i) * 7
	}
	rolled := append([]geometry.Element(nil), base...)

	ctx := Context{Intensity: 80, RollMode: RollView, Rotation: geometry.Euler{Y: 30, X: 10}}
	Computer{}.Apply(ctx, base)
	ctx.Rotation.Z = 45
	Computer{}.Apply(ctx, rolled)

	for i := range base {
		assert.InDelta(t, base[i].Opacity, rolled[i].Opacity, 1e-12)
	}
}

func TestWorldModeUsesZRotation(t *testing.T) {
	mk := func() []geometry.Element {
		els := lineOfElements(6)
		for i := range els {
			els[i].Position.X = float64(i*i) * 3
		}
		return els
	}
	flat, rolled := mk(), mk()

	ctx := Context{Intensity: 80, RollMode: RollWorld, Rotation: geometry.Euler{Y: 30, X: 10}}
	Computer{}.Apply(ctx, flat)
	ctx.Rotation.Z = 45
	Computer{}.Apply(ctx, rolled)

	diff := false
	for i := range flat {
		if flat[i].Opacity != rolled[i].Opacity {
			diff = true
		}
	}
	assert.True(t, diff, "expected roll to change world-mode depth ordering")
}

func TestWidthScale(t *testing.T) {
	els := lineOfElements(3)
	Computer{WidthZFactor: 0.4}.Apply(Context{Intensity: 0, RollMode: RollView}, els)

	assert.InDelta(t, 1+(0-0.5)*0.4, els[0].WidthScale, 1e-12)
	assert.InDelta(t, 1.0, els[1].WidthScale, 1e-12)
	assert.InDelta(t, 1+(1-0.5)*0.4, els[2].WidthScale, 1e-12)
}

func TestFlatDepthFieldIsNeutral(t *testing.T) {
	els := make([]geometry.Element, 4)
	for i := range els {
		els[i] = geometry.Element{Position: vecmath.Vec3{X: float64(i)}, Opacity: 1}
	}
	// All elements share Z=0, so view depth is identical everywhere.
	Computer{WidthZFactor: 1}.Apply(Context{Intensity: 100, RollMode: RollView}, els)
	for _, el := range els {
		assert.InDelta(t, 0.5, el.Opacity, 1e-12)
		assert.InDelta(t, 1.0, el.WidthScale, 1e-12)
	}
}

func TestEmptySetNoPanic(t *testing.T) {
	Computer{}.Apply(Context{Intensity: 100}, nil)
}
