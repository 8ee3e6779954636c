package geometry

import "github.com/mricos/tubegen/pkg/vecmath"

// TubeConfig drives tube-mode generation: rings of faces along the curve.
type TubeConfig struct {
	// CurveSegments is the ring count minus one: rings are emitted at
	// t = 0/n .. n/n inclusive.
	CurveSegments  int     `yaml:"curve_segments"`
	RadialSegments int     `yaml:"radial_segments"`
	Radius         float64 `yaml:"radius"`
	// Phase is the first ring's angular offset in degrees.
	Phase float64 `yaml:"phase"`
	// PhaseAdvance is the base per-ring phase advance in degrees.
	PhaseAdvance float64 `yaml:"phase_advance"`
	// CurvatureScale weights the curvature contribution to the per-ring
	// phase advance; tighter curves twist faster.
	CurvatureScale float64 `yaml:"curvature_scale"`
	// Twist is a total rotation in degrees distributed evenly over all rings.
	Twist float64 `yaml:"twist"`
}

// DefaultTubeConfig returns tube settings that produce a visible braid on a
// hand-sized curve.
func DefaultTubeConfig() TubeConfig {
	return TubeConfig{
		CurveSegments:  24,
		RadialSegments: 12,
		Radius:         40,
		Phase:          0,
		PhaseAdvance:   4,
		CurvatureScale: 1,
		Twist:          0,
	}
}

func (c TubeConfig) sanitized() TubeConfig {
	if c.CurveSegments < 0 {
		c.CurveSegments = 0
	}
	if c.RadialSegments < 0 {
		c.RadialSegments = 0
	}
	if c.Radius < 0 {
		c.Radius = 0
	}
	return c
}

// DistributeConfig drives distribute-mode generation: discrete pieces placed
// along an external track with sinusoidal offsets and per-piece spin.
type DistributeConfig struct {
	PieceCount  int     `yaml:"piece_count"`
	PieceLength float64 `yaml:"piece_length"`
	PieceWidth  float64 `yaml:"piece_width"`
	// Phase shifts every piece along the track, in degrees of track
	// parameter (360 = one full lap).
	Phase float64 `yaml:"phase"`
	// Frequency is the sinusoid's cycle count over the track.
	Frequency float64 `yaml:"frequency"`
	// Amplitudes scale the sinusoid independently along the track frame's
	// normal, binormal and tangent axes.
	AmpNormal   float64 `yaml:"amp_normal"`
	AmpBinormal float64 `yaml:"amp_binormal"`
	AmpTangent  float64 `yaml:"amp_tangent"`
	// Spin is the cumulative per-piece roll about the piece's own tangent
	// axis, in degrees.
	Spin float64 `yaml:"spin"`
}

// DefaultDistributeConfig returns distribute settings for a loose orbit of
// short segments.
func DefaultDistributeConfig() DistributeConfig {
	return DistributeConfig{
		PieceCount:  16,
		PieceLength: 30,
		PieceWidth:  12,
		Phase:       0,
		Frequency:   3,
		AmpNormal:   20,
		AmpBinormal: 0,
		AmpTangent:  0,
		Spin:        12,
	}
}

func (c DistributeConfig) sanitized() DistributeConfig {
	if c.PieceCount < 0 {
		c.PieceCount = 0
	}
	if c.PieceLength < 0 {
		c.PieceLength = 0
	}
	if c.PieceWidth < 0 {
		c.PieceWidth = 0
	}
	return c
}

// CrystalConfig drives crystal-mode generation: layers × pieceCount petals
// radiating from the arrangement's own center of mass.
type CrystalConfig struct {
	Layers     int     `yaml:"layers"`
	PieceCount int     `yaml:"piece_count"`
	// Radius is each petal's base distance from the un-centered origin.
	Radius      float64 `yaml:"radius"`
	PetalLength float64 `yaml:"petal_length"`
	PetalWidth  float64 `yaml:"petal_width"`
	// Spread tilts layer L by Spread·L/Layers degrees out of the base plane.
	Spread float64 `yaml:"spread"`
	// Phase rotates the whole angular distribution, in degrees.
	Phase float64 `yaml:"phase"`
	// Frequency and the amplitudes modulate petal length/width sinusoidally,
	// as in distribute mode.
	Frequency float64 `yaml:"frequency"`
	AmpLength float64 `yaml:"amp_length"`
	AmpWidth  float64 `yaml:"amp_width"`
	// Bloom tilts each petal outward from the tangential plane toward the
	// viewer axis, in degrees.
	Bloom float64 `yaml:"bloom"`
	// Convergence in [0,1] leans petals from their outward pitch toward the
	// central axis.
	Convergence float64 `yaml:"convergence"`
	// Twist is the base petal roll; TwistStep adds per-index increments.
	Twist     float64 `yaml:"twist"`
	TwistStep float64 `yaml:"twist_step"`
	// Scale resizes the recentered arrangement around its centroid.
	Scale float64 `yaml:"scale"`
	// CenterOffset manually shifts the recentered arrangement.
	CenterOffset vecmath.Vec3 `yaml:"center_offset"`
}

// DefaultCrystalConfig returns a three-layer bloom.
func DefaultCrystalConfig() CrystalConfig {
	return CrystalConfig{
		Layers:      3,
		PieceCount:  10,
		Radius:      120,
		PetalLength: 60,
		PetalWidth:  18,
		Spread:      40,
		Phase:       0,
		Frequency:   2,
		AmpLength:   0.25,
		AmpWidth:    0,
		Bloom:       15,
		Convergence: 0.3,
		Twist:       0,
		TwistStep:   5,
		Scale:       1,
	}
}

func (c CrystalConfig) sanitized() CrystalConfig {
	if c.Layers < 0 {
		c.Layers = 0
	}
	if c.PieceCount < 0 {
		c.PieceCount = 0
	}
	if c.Radius < 0 {
		c.Radius = 0
	}
	if c.Scale == 0 {
		c.Scale = 1
	}
	c.Convergence = vecmath.Clamp(c.Convergence, 0, 1)
	return c
}

// Config aggregates the per-mode parameter sets. The active mode ignores the
// other two.
type Config struct {
	Tube       TubeConfig       `yaml:"tube"`
	Distribute DistributeConfig `yaml:"distribute"`
	Crystal    CrystalConfig    `yaml:"crystal"`
}

// DefaultConfig returns defaults for all three modes.
func DefaultConfig() Config {
	return Config{
		Tube:       DefaultTubeConfig(),
		Distribute: DefaultDistributeConfig(),
		Crystal:    DefaultCrystalConfig(),
	}
}
