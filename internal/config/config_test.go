package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/mricos/tubegen/internal/geometry"
	"github.com/mricos/tubegen/internal/track"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Generator.Mode != "tube" {
		t.Errorf("expected mode 'tube', got %s", cfg.Generator.Mode)
	}
	if len(cfg.Generator.Curve.ControlPoints) != 4 {
		t.Errorf("expected 4 control points, got %d", len(cfg.Generator.Curve.ControlPoints))
	}
	if cfg.Generator.Track.Shape != "circle" {
		t.Errorf("expected track shape 'circle', got %s", cfg.Generator.Track.Shape)
	}
	if cfg.Generator.Track.Radius != 300 {
		t.Errorf("expected track radius 300, got %f", cfg.Generator.Track.Radius)
	}

	if cfg.Haze.Intensity != 60 {
		t.Errorf("expected haze intensity 60, got %f", cfg.Haze.Intensity)
	}
	if cfg.Haze.RollMode != "view" {
		t.Errorf("expected roll mode 'view', got %s", cfg.Haze.RollMode)
	}

	if cfg.Logging.Level != "info" {
		t.Errorf("expected log level 'info', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "" {
		t.Errorf("expected empty log file, got %s", cfg.Logging.LogFile)
	}

	for _, name := range []string{"helix-braid", "orbit-scatter", "bloom-crystal"} {
		if _, ok := cfg.Presets[name]; !ok {
			t.Errorf("expected builtin preset %q", name)
		}
	}
}

func TestLoadFromFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
generator:
  mode: distribute
  track:
    shape: helix
    radius: 150
    pitch: 40
    turns: 2
  geometry:
    distribute:
      piece_count: 24
      spin: 30

haze:
  intensity: 85
  roll_mode: world
  width_z_factor: 0.5

logging:
  level: "debug"
  log_file: "tubegen.log"
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	if cfg.Generator.Mode != "distribute" {
		t.Errorf("expected mode 'distribute', got %s", cfg.Generator.Mode)
	}
	if cfg.Generator.Track.Shape != "helix" {
		t.Errorf("expected track shape 'helix', got %s", cfg.Generator.Track.Shape)
	}
	if cfg.Generator.Track.Pitch != 40 {
		t.Errorf("expected pitch 40, got %f", cfg.Generator.Track.Pitch)
	}
	if cfg.Generator.Geometry.Distribute.PieceCount != 24 {
		t.Errorf("expected piece count 24, got %d", cfg.Generator.Geometry.Distribute.PieceCount)
	}
	if cfg.Generator.Geometry.Distribute.Spin != 30 {
		t.Errorf("expected spin 30, got %f", cfg.Generator.Geometry.Distribute.Spin)
	}
	// Untouched sections keep their defaults.
	if cfg.Generator.Geometry.Tube.RadialSegments != 12 {
		t.Errorf("expected default radial segments 12, got %d", cfg.Generator.Geometry.Tube.RadialSegments)
	}

	if cfg.Haze.Intensity != 85 {
		t.Errorf("expected haze intensity 85, got %f", cfg.Haze.Intensity)
	}
	if cfg.Haze.WidthZFactor != 0.5 {
		t.Errorf("expected width z factor 0.5, got %f", cfg.Haze.WidthZFactor)
	}

	if cfg.Logging.Level != "debug" {
		t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
	}
	if cfg.Logging.LogFile != "tubegen.log" {
		t.Errorf("expected log file 'tubegen.log', got %s", cfg.Logging.LogFile)
	}
}

func TestLoadFromFileInvalid(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "invalid.yaml")

	invalidYAML := `
generator:
  mode: [not, a, string
  invalid syntax here
`

	if err := os.WriteFile(configPath, []byte(invalidYAML), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	cfg := Default()
	if err := loadFromFile(cfg, configPath); err == nil {
		t.Error("expected error loading invalid YAML, got nil")
	}
}

func TestLoadFromFileMissing(t *testing.T) {
	cfg := Default()
	if err := loadFromFile(cfg, "/nonexistent/path/config.yaml"); err == nil {
		t.Error("expected error loading missing file, got nil")
	}
}

func TestConfigDir(t *testing.T) {
	dir := ConfigDir()

	if dir == "" {
		t.Error("ConfigDir returned empty string")
	}
	if !filepath.IsAbs(dir) {
		t.Errorf("ConfigDir should return absolute path, got %s", dir)
	}
}

func TestApplyPreset(t *testing.T) {
	cfg := Default()
	if err := cfg.ApplyPreset("bloom-crystal"); err != nil {
		t.Fatalf("failed to apply preset: %v", err)
	}
	if cfg.Generator.Mode != "crystal" {
		t.Errorf("expected mode 'crystal', got %s", cfg.Generator.Mode)
	}
	if cfg.Generator.Geometry.Crystal.Layers != 5 {
		t.Errorf("expected 5 layers, got %d", cfg.Generator.Geometry.Crystal.Layers)
	}

	if err := cfg.ApplyPreset("no-such-preset"); err == nil {
		t.Error("expected error for unknown preset, got nil")
	}
}

func TestPresetNamesSorted(t *testing.T) {
	names := Default().PresetNames()
	want := []string{"bloom-crystal", "helix-braid", "orbit-scatter"}
	if len(names) != len(want) {
		t.Fatalf("expected %d presets, got %d", len(want), len(names))
	}
	for i := range want {
		if names[i] != want[i] {
			t.Errorf("preset %d: expected %s, got %s", i, want[i], names[i])
		}
	}
}

func TestBuildCurve(t *testing.T) {
	cfg := Default()
	cv, err := cfg.Generator.BuildCurve()
	if err != nil {
		t.Fatalf("failed to build curve: %v", err)
	}
	if cv == nil {
		t.Fatal("expected a curve")
	}

	cfg.Generator.Curve.ControlPoints = cfg.Generator.Curve.ControlPoints[:2]
	if _, err := cfg.Generator.BuildCurve(); err == nil {
		t.Error("expected error for 2 control points, got nil")
	}
}

func TestBuildTrack(t *testing.T) {
	tests := []struct {
		shape   string
		want    interface{}
		wantErr bool
	}{
		{shape: "circle", want: track.Circle{}},
		{shape: "helix", want: track.Helix{}},
		{shape: "figure8", want: track.Figure8{}},
		{shape: "curve"},
		{shape: "", want: track.Circle{}},
		{shape: "mobius", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.shape, func(t *testing.T) {
			cfg := Default()
			cfg.Generator.Track.Shape = tt.shape
			tr, err := cfg.Generator.BuildTrack()
			if tt.wantErr {
				if err == nil {
					t.Error("expected error, got nil")
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tr == nil {
				t.Fatal("expected a track")
			}
		})
	}
}

func TestParseMode(t *testing.T) {
	cfg := Default()

	cfg.Generator.Mode = "Crystal"
	mode, err := cfg.Generator.ParseMode()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mode != geometry.ModeCrystal {
		t.Errorf("expected crystal mode, got %s", mode)
	}

	cfg.Generator.Mode = "wireframe"
	if _, err := cfg.Generator.ParseMode(); err == nil {
		t.Error("expected error for unknown mode, got nil")
	}
}

func TestApplyFlags(t *testing.T) {
	tests := []struct {
		name     string
		setup    func()
		verify   func(*Config)
		teardown func()
	}{
		{
			name: "debug flag",
			setup: func() {
				flagDebug = true
			},
			verify: func(cfg *Config) {
				if cfg.Logging.Level != "debug" {
					t.Errorf("expected log level 'debug', got %s", cfg.Logging.Level)
				}
			},
			teardown: func() {
				flagDebug = false
			},
		},
		{
			name: "preset flag",
			setup: func() {
				flagPreset = "orbit-scatter"
			},
			verify: func(cfg *Config) {
				if cfg.Generator.Mode != "distribute" {
					t.Errorf("expected mode 'distribute', got %s", cfg.Generator.Mode)
				}
			},
			teardown: func() {
				flagPreset = ""
			},
		},
		{
			name: "mode flag",
			setup: func() {
				flagMode = "crystal"
			},
			verify: func(cfg *Config) {
				if cfg.Generator.Mode != "crystal" {
					t.Errorf("expected mode 'crystal', got %s", cfg.Generator.Mode)
				}
			},
			teardown: func() {
				flagMode = ""
			},
		},
		{
			name: "track flag",
			setup: func() {
				flagTrack = "figure8"
			},
			verify: func(cfg *Config) {
				if cfg.Generator.Track.Shape != "figure8" {
					t.Errorf("expected track 'figure8', got %s", cfg.Generator.Track.Shape)
				}
			},
			teardown: func() {
				flagTrack = ""
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setup()
			defer tt.teardown()

			cfg := Default()
			if err := applyFlags(cfg); err != nil {
				t.Fatalf("applyFlags: %v", err)
			}
			tt.verify(cfg)
		})
	}
}

func TestApplyFlagsUnknownPreset(t *testing.T) {
	flagPreset = "no-such"
	defer func() { flagPreset = "" }()

	if err := applyFlags(Default()); err == nil {
		t.Error("expected error for unknown preset, got nil")
	}
}

func TestLoadPriority(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	yamlContent := `
generator:
  mode: distribute
  track:
    shape: helix
`

	if err := os.WriteFile(configPath, []byte(yamlContent), 0644); err != nil {
		t.Fatalf("failed to write test config: %v", err)
	}

	// Set flag to override config file
	flagConfig = configPath
	flagMode = "crystal"
	defer func() {
		flagConfig = ""
		flagMode = ""
	}()

	cfg, err := Load()
	if err != nil {
		t.Fatalf("failed to load config: %v", err)
	}

	// Mode should be from flag (crystal), not file (distribute)
	if cfg.Generator.Mode != "crystal" {
		t.Errorf("expected mode 'crystal' from flag, got %s", cfg.Generator.Mode)
	}

	// Track shape should be from file since no flag override
	if cfg.Generator.Track.Shape != "helix" {
		t.Errorf("expected track 'helix' from file, got %s", cfg.Generator.Track.Shape)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	tmpDir := t.TempDir()
	path := filepath.Join(tmpDir, "sub", "config.yaml")

	cfg := Default()
	cfg.Generator.Mode = "crystal"
	cfg.Haze.Intensity = 42
	if err := cfg.SaveTo(path); err != nil {
		t.Fatalf("failed to save config: %v", err)
	}

	loaded := Default()
	if err := loadFromFile(loaded, path); err != nil {
		t.Fatalf("failed to reload config: %v", err)
	}
	if loaded.Generator.Mode != "crystal" {
		t.Errorf("expected mode 'crystal' after round trip, got %s", loaded.Generator.Mode)
	}
	if loaded.Haze.Intensity != 42 {
		t.Errorf("expected intensity 42 after round trip, got %f", loaded.Haze.Intensity)
	}
}
