package main

import (
	"context"
	"flag"
	"fmt"
	"image/png"
	"os"
	"path/filepath"
	"time"

	"github.com/mverbeek/go-whitted-raytracer/pkg/integrator"
	"github.com/mverbeek/go-whitted-raytracer/pkg/renderer"
	"github.com/mverbeek/go-whitted-raytracer/pkg/scene"
)

// createScene builds one of the built-in scenes by name
func createScene(sceneType string, width int) (*scene.Scene, error) {
	switch sceneType {
	case "default":
		return scene.NewDefaultScene(width)
	case "showcase":
		return scene.NewShowcaseScene(width)
	default:
		return nil, fmt.Errorf("unknown scene type: %q", sceneType)
	}
}

func run() error {
	sceneType := flag.String("scene", "default", "Scene type: 'default' or 'showcase'")
	width := flag.Int("width", 640, "Image width in pixels")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	maxDepth := flag.Int("max-depth", 8, "Maximum reflection recursion depth")
	output := flag.String("out", "", "Output PNG path (default output/<scene>/render_<timestamp>.png)")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Whitted Raytracer")
		fmt.Println("Usage: raytracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  default  - Three overlapping spheres on a white background")
		fmt.Println("  showcase - Checkerboard ground, mirror sphere, box and triangle")
		return nil
	}

	logger := renderer.NewDefaultLogger()

	selectedScene, err := createScene(*sceneType, *width)
	if err != nil {
		return err
	}

	shadingConfig := integrator.DefaultConfig()
	shadingConfig.MaxDepth = *maxDepth

	raytracer := renderer.NewRaytracer(
		selectedScene,
		integrator.NewPhong(shadingConfig),
		renderer.Config{NumWorkers: *workers},
		logger,
	)

	fb, stats, err := raytracer.Render(context.Background())
	if err != nil {
		return err
	}
	logger.Printf("Render completed in %v (%d pixels, %d tiles, %d workers)\n",
		stats.Elapsed, stats.TotalPixels, stats.NumTiles, stats.NumWorkers)

	filename := *output
	if filename == "" {
		outputDir := filepath.Join("output", *sceneType)
		if err := os.MkdirAll(outputDir, 0755); err != nil {
			return fmt.Errorf("creating output directory: %w", err)
		}
		timestamp := time.Now().Format("20060102_150405")
		filename = filepath.Join(outputDir, fmt.Sprintf("render_%s.png", timestamp))
	}

	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if err := png.Encode(file, fb.ToRGBA(2.0)); err != nil {
		return fmt.Errorf("encoding PNG: %w", err)
	}

	logger.Printf("Render saved as %s\n", filename)
	return nil
}

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
