package main

import (
	"flag"
	"fmt"
	"image"
	"image/png"
	"os"
	"strings"
	"time"

	"github.com/user/pathtracer/pkg/renderer"
	"github.com/user/pathtracer/pkg/scene"
)

func main() {
	sceneType := flag.String("scene", "random", "Scene type: 'random', 'simple' or 'two-spheres'")
	width := flag.Int("width", 0, "Image width in pixels (0 = scene default)")
	height := flag.Int("height", 0, "Image height in pixels (0 = scene default)")
	samples := flag.Int("samples", 0, "Samples per pixel (0 = scene default)")
	depth := flag.Int("depth", 0, "Maximum ray bounce depth (0 = scene default)")
	workers := flag.Int("workers", 0, "Number of render workers (0 = CPU count)")
	seed := flag.Int64("seed", 42, "Random seed for scene generation and sampling")
	output := flag.String("output", "output.ppm", "Output file; .png selects PNG, anything else PPM")
	help := flag.Bool("help", false, "Show help information")
	flag.Parse()

	if *help {
		fmt.Println("Sphere Path Tracer")
		fmt.Println("Usage: pathtracer [options]")
		fmt.Println()
		fmt.Println("Options:")
		flag.PrintDefaults()
		fmt.Println()
		fmt.Println("Available scenes:")
		fmt.Println("  random      - Randomized field of small spheres around three large ones")
		fmt.Println("  simple      - One diffuse, one metal and one glass sphere over a ground sphere")
		fmt.Println("  two-spheres - Minimal two-sphere sanity scene")
		return
	}

	logger := renderer.NewDefaultLogger()

	selectedScene, err := createScene(*sceneType, *seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	renderWidth, renderHeight := selectedScene.Width, selectedScene.Height
	if *width > 0 {
		renderWidth = *width
	}
	if *height > 0 {
		renderHeight = *height
	}

	config := selectedScene.SamplingConfig
	if *samples > 0 {
		config.SamplesPerPixel = *samples
	}
	if *depth > 0 {
		config.MaxDepth = *depth
	}

	logger.Printf("Rendering %s scene at %dx%d, %d samples per pixel, max depth %d...\n",
		*sceneType, renderWidth, renderHeight, config.SamplesPerPixel, config.MaxDepth)

	startTime := time.Now()
	img, stats := renderer.RenderParallel(selectedScene, renderWidth, renderHeight, config, *workers, *seed, logger)
	renderTime := time.Since(startTime)

	logger.Printf("Render completed in %v (%d samples across %d pixels)\n",
		renderTime, stats.TotalSamples, stats.TotalPixels)

	if err := writeImage(*output, img); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	logger.Printf("Render saved as %s\n", *output)
}

// createScene builds the named scene, seeding any randomized construction
func createScene(sceneType string, seed int64) (*scene.Scene, error) {
	switch sceneType {
	case "random":
		return scene.NewRandomScene(seed), nil
	case "simple":
		return scene.NewMaterialTestScene(), nil
	case "two-spheres":
		return scene.NewTwoSphereScene(), nil
	default:
		return nil, fmt.Errorf("unknown scene type %q", sceneType)
	}
}

// writeImage saves the image in the format implied by the file extension
func writeImage(path string, img *image.RGBA) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating output file: %w", err)
	}
	defer file.Close()

	if strings.HasSuffix(strings.ToLower(path), ".png") {
		if err := png.Encode(file, img); err != nil {
			return fmt.Errorf("encoding PNG: %w", err)
		}
		return nil
	}

	if err := renderer.WritePPM(file, img); err != nil {
		return fmt.Errorf("encoding PPM: %w", err)
	}
	return nil
}
