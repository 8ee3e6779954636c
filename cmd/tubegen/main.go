// tubegen is a CLI for generating tube, distribute and crystal element sets
// from parametric curves, with optional haze and transition sampling.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/mricos/tubegen/internal/config"
	"github.com/mricos/tubegen/internal/geometry"
	"github.com/mricos/tubegen/internal/haze"
	"github.com/mricos/tubegen/internal/logger"
	"github.com/mricos/tubegen/pkg/vecmath"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	switch command {
	case "generate", "gen":
		cmdGenerate(args)
	case "transition":
		cmdTransition(args)
	case "presets":
		cmdPresets(args)
	case "config":
		cmdConfig(args)
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println(`tubegen - parametric tube/distribute/crystal geometry generator

Usage:
  tubegen <command> [options]

Commands:
  generate [-out file] [-haze]          Generate elements for the configured mode
  transition -to <mode> [options]       Sample a mode transition frame by frame
  presets                               List built-in presets
  config [-init]                        Print (or write) the effective config

Common options (all commands):
  -config <file>   Explicit config file
  -preset <name>   Apply a named preset
  -mode <mode>     Override mode: tube, distribute, crystal
  -track <shape>   Override track: circle, helix, figure8, curve
  -debug           Debug logging

Examples:
  tubegen generate -preset helix-braid -out elements.json
  tubegen generate -mode crystal -haze
  tubegen transition -to distribute -duration 2s -frames 10
  tubegen presets`)
}

// output is the JSON envelope every element-emitting command writes.
type output struct {
	Mode     geometry.Mode      `json:"mode"`
	Count    int                `json:"count"`
	Elements []geometry.Element `json:"elements"`
}

func loadConfig() *config.Config {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

func buildGenerator(cfg *config.Config) *geometry.Generator {
	mode, err := cfg.Generator.ParseMode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	cv, err := cfg.Generator.BuildCurve()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	tr, err := cfg.Generator.BuildTrack()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	g, err := geometry.New(mode, cv, tr, cfg.Generator.Geometry)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return g
}

func hazeComputer(cfg *config.Config) (haze.Computer, haze.Context) {
	mode := haze.RollView
	if cfg.Haze.RollMode == string(haze.RollWorld) {
		mode = haze.RollWorld
	}
	return haze.Computer{WidthZFactor: cfg.Haze.WidthZFactor},
		haze.Context{Intensity: cfg.Haze.Intensity, RollMode: mode}
}

func writeJSON(path string, v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error encoding output: %v\n", err)
		os.Exit(1)
	}
	data = append(data, '\n')

	if path == "" || path == "-" {
		os.Stdout.Write(data)
		return
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		fmt.Fprintf(os.Stderr, "Error writing %s: %v\n", path, err)
		os.Exit(1)
	}
	fmt.Fprintf(os.Stderr, "Wrote %s\n", path)
}

func cmdGenerate(args []string) {
	fs := flag.NewFlagSet("generate", flag.ExitOnError)
	out := fs.String("out", "", "Output file (default stdout)")
	applyHaze := fs.Bool("haze", false, "Apply haze opacity/width to the output")
	followX := fs.Float64("follow-x", 0, "Follow position X (with -follow)")
	followY := fs.Float64("follow-y", 0, "Follow position Y (with -follow)")
	followZ := fs.Float64("follow-z", 0, "Follow position Z (with -follow)")
	follow := fs.Bool("follow", false, "Use follow-distance haze instead of view depth")
	config.RegisterFlags(fs)
	fs.Parse(args)

	cfg := loadConfig()
	defer logger.Sync()

	g := buildGenerator(cfg)
	els := g.Generate()

	if *applyHaze {
		comp, ctx := hazeComputer(cfg)
		if *follow {
			ctx.Follow = &vecmath.Vec3{X: *followX, Y: *followY, Z: *followZ}
		}
		comp.Apply(ctx, els)
	}

	writeJSON(*out, output{Mode: g.Mode(), Count: len(els), Elements: els})
}

func cmdTransition(args []string) {
	fs := flag.NewFlagSet("transition", flag.ExitOnError)
	to := fs.String("to", "", "Target mode: tube, distribute, crystal")
	duration := fs.Duration("duration", time.Second, "Transition duration")
	frames := fs.Int("frames", 5, "Number of frames to sample (including endpoints)")
	easing := fs.String("easing", "easeInOut", "Easing: linear, easeIn, easeOut, easeInOut")
	out := fs.String("out", "", "Output file (default stdout)")
	config.RegisterFlags(fs)
	fs.Parse(args)

	if *to == "" {
		fmt.Fprintln(os.Stderr, "Usage: tubegen transition -to <mode> [options]")
		os.Exit(1)
	}
	if *frames < 2 {
		fmt.Fprintln(os.Stderr, "Error: -frames must be at least 2")
		os.Exit(1)
	}

	cfg := loadConfig()
	defer logger.Sync()

	g := buildGenerator(cfg)
	g.Generate()

	targetCfg := *cfg
	targetCfg.Generator.Mode = *to
	target, err := targetCfg.Generator.ParseMode()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	start := time.Unix(0, 0)
	g.StartTransition(target, *duration, *easing, start)

	sampled := make([]output, 0, *frames)
	for i := 0; i < *frames; i++ {
		frac := float64(i) / float64(*frames-1)
		now := start.Add(time.Duration(frac * float64(*duration)))
		g.UpdateTransition(now)
		els := append([]geometry.Element(nil), g.Visible()...)
		sampled = append(sampled, output{Mode: g.Mode(), Count: len(els), Elements: els})
	}

	writeJSON(*out, sampled)
}

func cmdPresets(args []string) {
	fs := flag.NewFlagSet("presets", flag.ExitOnError)
	config.RegisterFlags(fs)
	fs.Parse(args)

	cfg := loadConfig()
	for _, name := range cfg.PresetNames() {
		p := cfg.Presets[name]

		preview := *cfg
		if err := preview.ApplyPreset(name); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		count := len(buildGenerator(&preview).Generate())

		fmt.Printf("%-15s mode=%-10s track=%-8s elements=%d\n", name, p.Mode, p.Track.Shape, count)
	}
}

func cmdConfig(args []string) {
	fs := flag.NewFlagSet("config", flag.ExitOnError)
	initCfg := fs.Bool("init", false, "Write the effective config to the user config directory")
	config.RegisterFlags(fs)
	fs.Parse(args)

	cfg := loadConfig()

	if *initCfg {
		if err := cfg.Save(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Fprintf(os.Stderr, "Wrote %s\n", config.ConfigDir())
		return
	}

	data, err := cfg.Marshal()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	os.Stdout.Write(data)
}
