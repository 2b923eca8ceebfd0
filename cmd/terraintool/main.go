// terraintool is a headless CLI for inspecting generated terrain.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/Faultbox/terragen/internal/app"
	"github.com/Faultbox/terragen/internal/config"
	"github.com/Faultbox/terragen/internal/engine/terrain"
)

func main() {
	if len(os.Args) < 2 {
		printUsage(os.Stderr)
		os.Exit(1)
	}

	command := os.Args[1]
	args := os.Args[2:]

	var err error
	switch command {
	case "info":
		err = cmdInfo(os.Stdout, args)
	case "sample":
		err = cmdSample(os.Stdout, args)
	case "palette":
		err = cmdPalette(os.Stdout, args)
	case "help", "-h", "--help":
		printUsage(os.Stdout)
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", command)
		printUsage(os.Stderr)
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func printUsage(w io.Writer) {
	fmt.Fprintln(w, `terraintool - procedural terrain inspector

Usage:
  terraintool <command> [options]

Commands:
  info    [options]             Generate a mesh and print statistics
  sample  [options] <col> <row> Print height, normal and colour of one vertex
  palette [options]             Print the biome colour ramp

Common options:
  -config <file.yaml>  Config file (defaults and standard locations otherwise)
  -seed <n>            Terrain seed (0 = random)
  -vertices <n>        Vertices per side
  -noise <type>        perlin, simplex or gradient

Examples:
  terraintool info -seed 42 -vertices 256
  terraintool sample -seed 42 10 20
  terraintool palette -steps 16`)
}

// options are the flags shared by every subcommand.
type options struct {
	config   string
	seed     int64
	vertices int
	noise    string
}

func newFlagSet(name string, opts *options) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.StringVar(&opts.config, "config", "", "Path to config file")
	fs.Int64Var(&opts.seed, "seed", 0, "Terrain seed (0 = random)")
	fs.IntVar(&opts.vertices, "vertices", 0, "Vertices per side")
	fs.StringVar(&opts.noise, "noise", "", "Noise source type")
	return fs
}

func (o options) load() (*config.Config, error) {
	cfg, err := config.LoadFrom(o.config)
	if err != nil {
		return nil, err
	}
	if o.seed != 0 {
		cfg.Terrain.Seed = o.seed
	}
	if o.vertices > 0 {
		cfg.Terrain.VertexCount = o.vertices
	}
	if o.noise != "" {
		cfg.Noise.Type = o.noise
	}
	return cfg, nil
}

func (o options) generate() (*config.Config, *terrain.Mesh, time.Duration, error) {
	cfg, err := o.load()
	if err != nil {
		return nil, nil, 0, err
	}
	gen, err := app.NewGenerator(cfg)
	if err != nil {
		return nil, nil, 0, err
	}
	start := time.Now()
	mesh := gen.Generate(app.ResolveSeed(cfg.Terrain.Seed))
	return cfg, mesh, time.Since(start), nil
}

func cmdInfo(w io.Writer, args []string) error {
	var opts options
	fs := newFlagSet("info", &opts)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, mesh, took, err := opts.generate()
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "Seed:      %d\n", mesh.Seed)
	fmt.Fprintf(w, "Noise:     %s (%s, %s, %d octaves, freq %g)\n",
		cfg.Noise.Type, cfg.Noise.Fractal, cfg.Noise.Interpolation, cfg.Noise.Octaves, cfg.Noise.Frequency)
	fmt.Fprintf(w, "Grid:      %d x %d (%d vertices)\n", mesh.VertexCount, mesh.VertexCount, mesh.Vertices())
	fmt.Fprintf(w, "Triangles: %d (%d indices)\n", mesh.Triangles(), len(mesh.Indices))
	fmt.Fprintf(w, "Heights:   lowest %.4f, highest %.4f\n", mesh.MinHeight, mesh.MaxHeight)
	fmt.Fprintf(w, "Bounds:    %v - %v\n", mesh.Bounds.Min, mesh.Bounds.Max)
	fmt.Fprintf(w, "Generated: %s\n", took.Round(time.Microsecond))
	return nil
}

func cmdSample(w io.Writer, args []string) error {
	var opts options
	fs := newFlagSet("sample", &opts)
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() < 2 {
		return fmt.Errorf("usage: terraintool sample [options] <col> <row>")
	}

	col, err := strconv.Atoi(fs.Arg(0))
	if err != nil {
		return fmt.Errorf("col: %w", err)
	}
	row, err := strconv.Atoi(fs.Arg(1))
	if err != nil {
		return fmt.Errorf("row: %w", err)
	}

	_, mesh, _, err := opts.generate()
	if err != nil {
		return err
	}
	if col < 0 || row < 0 || col >= mesh.VertexCount || row >= mesh.VertexCount {
		return fmt.Errorf("vertex (%d, %d) outside %dx%d grid", col, row, mesh.VertexCount, mesh.VertexCount)
	}

	pos, normal, colour := mesh.Vertex(col, row)
	fmt.Fprintf(w, "Seed:     %d\n", mesh.Seed)
	fmt.Fprintf(w, "Vertex:   (%d, %d)\n", col, row)
	fmt.Fprintf(w, "Position: (%.4f, %.4f, %.4f)\n", pos[0], pos[1], pos[2])
	fmt.Fprintf(w, "Normal:   (%.4f, %.4f, %.4f)\n", normal[0], normal[1], normal[2])
	fmt.Fprintf(w, "Colour:   %s\n", formatColour(colour))
	return nil
}

func cmdPalette(w io.Writer, args []string) error {
	var opts options
	fs := newFlagSet("palette", &opts)
	steps := fs.Int("steps", 10, "Number of ramp samples")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if *steps < 2 {
		return fmt.Errorf("steps must be at least 2, got %d", *steps)
	}

	cfg, err := opts.load()
	if err != nil {
		return err
	}
	colourizer, err := terrain.NewColourizer(cfg.TerrainParams().Palette, cfg.Terrain.ColourSpread)
	if err != nil {
		return err
	}

	// ramp positions are fractions of the spread window, lowest first
	for i, c := range colourizer.Ramp(*steps) {
		fmt.Fprintf(w, "%6.3f  %s\n", float32(i)/float32(*steps), formatColour(c))
	}
	return nil
}

func formatColour(c terrain.Colour) string {
	r, g, b := to8(c.R), to8(c.G), to8(c.B)
	return fmt.Sprintf("#%02x%02x%02x (%.3f, %.3f, %.3f)", r, g, b, c.R, c.G, c.B)
}

func to8(v float32) uint8 {
	switch {
	case v <= 0:
		return 0
	case v >= 1:
		return 255
	}
	return uint8(v*255 + 0.5)
}
