package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	"github.com/df07/go-sphere-raytracer/pkg/core"
	"github.com/df07/go-sphere-raytracer/pkg/output"
	"github.com/df07/go-sphere-raytracer/pkg/renderer"
	"github.com/df07/go-sphere-raytracer/pkg/scene"
)

// scenesDir holds the JSON scene files listed by -list
const scenesDir = "scenes"

// options holds everything parsed from the command line
type options struct {
	config     renderer.RenderConfig
	sceneName  string
	outputPath string
	list       bool
	help       bool
}

// parseArgs parses command line arguments into options
func parseArgs(args []string, stderr io.Writer) (options, *flag.FlagSet, error) {
	defaults := renderer.DefaultRenderConfig()
	opts := options{config: defaults}

	fs := flag.NewFlagSet("raytracer", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.IntVar(&opts.config.Width, "width", defaults.Width, "Image width in pixels")
	fs.IntVar(&opts.config.Height, "height", defaults.Height, "Image height in pixels")
	fs.IntVar(&opts.config.SamplesPerPixel, "samples", defaults.SamplesPerPixel, "Samples per pixel")
	fs.IntVar(&opts.config.MaxDepth, "bounces", defaults.MaxDepth, "Maximum ray bounces")
	fs.Uint64Var(&opts.config.Seed, "seed", defaults.Seed, "Random seed")
	fs.StringVar(&opts.sceneName, "scene", "metal", "Built-in scene name or path to a .json scene file")
	fs.StringVar(&opts.outputPath, "output", "out.ppm", "Output image path (.ppm or .png)")
	fs.BoolVar(&opts.list, "list", false, "List available scenes")
	fs.BoolVar(&opts.help, "help", false, "Show help information")

	if err := fs.Parse(args); err != nil {
		return opts, fs, err
	}
	if fs.NArg() > 0 {
		return opts, fs, fmt.Errorf("unexpected arguments: %v", fs.Args())
	}
	return opts, fs, nil
}

// showHelp prints usage information
func showHelp(w io.Writer, fs *flag.FlagSet) {
	fmt.Fprintln(w, "Sphere Raytracer")
	fmt.Fprintln(w, "Usage: raytracer [options]")
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Options:")
	fs.SetOutput(w)
	fs.PrintDefaults()
	fmt.Fprintln(w)
	fmt.Fprintln(w, "Use -list to see the available scenes")
}

// listScenes prints built-in scenes and any scene files found in dir.
// Unreadable scene files are reported to logger and left out.
func listScenes(w io.Writer, dir string, logger core.Logger) error {
	scenes, err := scene.ListAllScenes(dir, logger)
	if err != nil {
		return err
	}

	fmt.Fprintln(w, "Available scenes:")
	for _, info := range scenes {
		fmt.Fprintf(w, "  %-24s %s\n", info.ID, info.Description)
	}
	return nil
}

// createOutputDir makes sure the directory holding path exists
func createOutputDir(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create output directory %s: %w", dir, err)
	}
	return nil
}

// run renders the configured scene and writes it to the output path
func run(opts options, logger core.Logger) error {
	// Reject bad settings before any scene is built
	if err := opts.config.Validate(); err != nil {
		return err
	}
	if _, err := output.FormatFromPath(opts.outputPath); err != nil {
		return err
	}
	if err := createOutputDir(opts.outputPath); err != nil {
		return err
	}

	sc, err := scene.Create(opts.sceneName, opts.config.AspectRatio())
	if err != nil {
		return err
	}

	raytracer, err := renderer.NewRaytracer(sc, opts.config, logger)
	if err != nil {
		return err
	}

	img, stats := raytracer.RenderPass()

	if err := output.Write(opts.outputPath, img); err != nil {
		return err
	}

	logger.Printf("Average luminance %.4f, mean pixel variance %.6f\n",
		renderer.CalculateAverageLuminance(img), stats.MeanVariance)
	logger.Printf("Render saved as %s\n", opts.outputPath)
	return nil
}

func main() {
	opts, fs, err := parseArgs(os.Args[1:], os.Stderr)
	if errors.Is(err, flag.ErrHelp) {
		return
	}
	if err != nil {
		log.Fatalf("Error parsing arguments: %v", err)
	}

	if opts.help {
		showHelp(os.Stdout, fs)
		return
	}

	if opts.list {
		if err := listScenes(os.Stdout, scenesDir, renderer.NewDefaultLogger()); err != nil {
			log.Fatalf("Error listing scenes: %v", err)
		}
		return
	}

	if err := run(opts, renderer.NewDefaultLogger()); err != nil {
		log.Fatalf("Render failed: %v", err)
	}
}
