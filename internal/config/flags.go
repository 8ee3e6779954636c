package config

import "flag"

var (
	flagConfig string
	flagDebug  bool
	flagPreset string
	flagMode   string
	flagTrack  string
)

// RegisterFlags defines the shared config flags on the given flag set.
// Subcommand CLIs call this on each per-command set so the overrides work
// anywhere on the command line.
func RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&flagConfig, "config", "", "Path to config file")
	fs.BoolVar(&flagDebug, "debug", false, "Enable debug logging")
	fs.StringVar(&flagPreset, "preset", "", "Apply a named preset")
	fs.StringVar(&flagMode, "mode", "", "Generation mode: tube, distribute, crystal")
	fs.StringVar(&flagTrack, "track", "", "Track shape: circle, helix, figure8, curve")
}

// ParseFlags registers the shared flags on the default set and parses it.
// Call this early in main() when not using subcommands.
func ParseFlags() {
	RegisterFlags(flag.CommandLine)
	flag.Parse()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) error {
	if flagDebug {
		cfg.Logging.Level = "debug"
	}
	if flagPreset != "" {
		if err := cfg.ApplyPreset(flagPreset); err != nil {
			return err
		}
	}
	if flagMode != "" {
		cfg.Generator.Mode = flagMode
	}
	if flagTrack != "" {
		cfg.Generator.Track.Shape = flagTrack
	}
	return nil
}
