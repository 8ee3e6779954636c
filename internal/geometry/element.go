// Package geometry generates oriented cross-section elements along
// parametric curves and tracks, in one of three modes: a continuous tube,
// discrete pieces distributed along a track, or radiating crystal petals.
package geometry

import "github.com/mricos/tubegen/pkg/vecmath"

// Mode selects a generation strategy.
type Mode string

const (
	ModeTube       Mode = "tube"
	ModeDistribute Mode = "distribute"
	ModeCrystal    Mode = "crystal"
)

// Kind distinguishes how an element's local axes map to width and height.
type Kind string

const (
	KindRingFace Kind = "ring-face"
	KindPiece    Kind = "piece"
	KindPetal    Kind = "petal"
)

// Euler is a rotation in degrees, applied roll (Z), pitch (X), yaw (Y) —
// the same Y·X order the haze view mode uses, so a renderer can invert one
// with the other.
type Euler struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
	Z float64 `json:"z"`
}

// Element is the atomic output unit handed to an external renderer. All
// fields are fully resolved numbers with no remaining references to curve or
// mode state.
type Element struct {
	Position   vecmath.Vec3 `json:"position"`
	Rotation   Euler        `json:"rotation"`
	Width      float64      `json:"width"`
	Height     float64      `json:"height"`
	Opacity    float64      `json:"opacity"`
	WidthScale float64      `json:"widthScale"`
	ColorIndex int          `json:"colorIndex"`
	Kind       Kind         `json:"kind"`
}
