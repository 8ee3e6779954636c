// Package config handles tubegen configuration loading and management.
package config

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mricos/tubegen/internal/curve"
	"github.com/mricos/tubegen/internal/geometry"
	"github.com/mricos/tubegen/internal/track"
	"github.com/mricos/tubegen/pkg/vecmath"
)

// Config holds all tubegen settings.
type Config struct {
	Generator GeneratorConfig   `yaml:"generator"`
	Haze      HazeConfig        `yaml:"haze"`
	Logging   LoggingConfig     `yaml:"logging"`
	Presets   map[string]Preset `yaml:"presets"`
}

// GeneratorConfig selects the mode, the driving curve and track, and carries
// the per-mode geometry parameters.
type GeneratorConfig struct {
	Mode     string          `yaml:"mode"`
	Curve    CurveConfig     `yaml:"curve"`
	Track    TrackConfig     `yaml:"track"`
	Geometry geometry.Config `yaml:"geometry"`
}

// CurveConfig describes a Bezier driving curve by its control points: three
// for a quadratic, four for a cubic.
type CurveConfig struct {
	ControlPoints []vecmath.Vec3 `yaml:"control_points"`
}

// TrackConfig describes the external track distribute mode rides on.
type TrackConfig struct {
	// Shape is one of circle, helix, figure8, or curve (reuse the driving
	// curve as the track).
	Shape  string  `yaml:"shape"`
	Radius float64 `yaml:"radius"`
	Pitch  float64 `yaml:"pitch"`
	Turns  float64 `yaml:"turns"`
}

// HazeConfig holds the static haze tuning.
type HazeConfig struct {
	Intensity    float64 `yaml:"intensity"`
	RollMode     string  `yaml:"roll_mode"`
	WidthZFactor float64 `yaml:"width_z_factor"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// Preset is a named generator setup that can be applied over the base config.
type Preset struct {
	Mode     string          `yaml:"mode"`
	Track    TrackConfig     `yaml:"track"`
	Geometry geometry.Config `yaml:"geometry"`
}

// Default returns a Config with sensible default values, including the three
// built-in presets.
func Default() *Config {
	return &Config{
		Generator: GeneratorConfig{
			Mode: string(geometry.ModeTube),
			Curve: CurveConfig{
				ControlPoints: []vecmath.Vec3{
					{X: -100, Y: 0, Z: 0},
					{X: 0, Y: -100, Z: 50},
					{X: 0, Y: 100, Z: -50},
					{X: 100, Y: 0, Z: 0},
				},
			},
			Track: TrackConfig{
				Shape:  "circle",
				Radius: 300,
			},
			Geometry: geometry.DefaultConfig(),
		},
		Haze: HazeConfig{
			Intensity:    60,
			RollMode:     "view",
			WidthZFactor: 0,
		},
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Presets: builtinPresets(),
	}
}

func builtinPresets() map[string]Preset {
	helix := geometry.DefaultConfig()
	helix.Tube.CurveSegments = 48
	helix.Tube.RadialSegments = 10
	helix.Tube.Radius = 30
	helix.Tube.PhaseAdvance = 9
	helix.Tube.CurvatureScale = 2

	orbit := geometry.DefaultConfig()
	orbit.Distribute.PieceCount = 40
	orbit.Distribute.PieceLength = 22
	orbit.Distribute.Frequency = 5
	orbit.Distribute.AmpNormal = 60
	orbit.Distribute.AmpBinormal = 25
	orbit.Distribute.Spin = 21

	bloom := geometry.DefaultConfig()
	bloom.Crystal.Layers = 5
	bloom.Crystal.PieceCount = 12
	bloom.Crystal.Spread = 70
	bloom.Crystal.Bloom = 25
	bloom.Crystal.Convergence = 0.45
	bloom.Crystal.TwistStep = 8

	return map[string]Preset{
		"helix-braid": {
			Mode:     string(geometry.ModeTube),
			Track:    TrackConfig{Shape: "helix", Radius: 200, Pitch: 60, Turns: 3},
			Geometry: helix,
		},
		"orbit-scatter": {
			Mode:     string(geometry.ModeDistribute),
			Track:    TrackConfig{Shape: "figure8", Radius: 320},
			Geometry: orbit,
		},
		"bloom-crystal": {
			Mode:     string(geometry.ModeCrystal),
			Track:    TrackConfig{Shape: "circle", Radius: 300},
			Geometry: bloom,
		},
	}
}

// ApplyPreset overlays the named preset on the generator settings.
func (c *Config) ApplyPreset(name string) error {
	p, ok := c.Presets[name]
	if !ok {
		return fmt.Errorf("unknown preset %q", name)
	}
	c.Generator.Mode = p.Mode
	c.Generator.Track = p.Track
	c.Generator.Geometry = p.Geometry
	return nil
}

// PresetNames returns the preset names sorted for display.
func (c *Config) PresetNames() []string {
	names := make([]string, 0, len(c.Presets))
	for name := range c.Presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// BuildCurve constructs the driving Bezier curve from the configured control
// points.
func (g GeneratorConfig) BuildCurve() (curve.Curve, error) {
	return curve.NewBezier(g.Curve.ControlPoints)
}

// BuildTrack constructs the external track. The "curve" shape wraps the
// driving curve itself.
func (g GeneratorConfig) BuildTrack() (track.Track, error) {
	switch strings.ToLower(g.Track.Shape) {
	case "circle", "":
		return track.Circle{Radius: g.Track.Radius}, nil
	case "helix":
		return track.Helix{Radius: g.Track.Radius, Pitch: g.Track.Pitch, Turns: g.Track.Turns}, nil
	case "figure8":
		return track.Figure8{Radius: g.Track.Radius}, nil
	case "curve":
		cv, err := g.BuildCurve()
		if err != nil {
			return nil, err
		}
		return track.FromCurve(cv), nil
	default:
		return nil, fmt.Errorf("unknown track shape %q", g.Track.Shape)
	}
}

// ParseMode validates and returns the configured generation mode.
func (g GeneratorConfig) ParseMode() (geometry.Mode, error) {
	switch m := geometry.Mode(strings.ToLower(g.Mode)); m {
	case geometry.ModeTube, geometry.ModeDistribute, geometry.ModeCrystal:
		return m, nil
	default:
		return "", fmt.Errorf("unknown mode %q", g.Mode)
	}
}
