package renderer

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"github.com/user/pathtracer/pkg/core"
	"github.com/user/pathtracer/pkg/geometry"
)

// tMinEpsilon keeps secondary rays from re-hitting the surface they just
// left (shadow acne)
const tMinEpsilon = 0.001

// SamplingConfig contains rendering configuration
type SamplingConfig struct {
	SamplesPerPixel int // Number of rays per pixel
	MaxDepth        int // Maximum ray bounce depth
}

// DefaultSamplingConfig returns sensible default values
func DefaultSamplingConfig() SamplingConfig {
	return SamplingConfig{
		SamplesPerPixel: 100,
		MaxDepth:        50,
	}
}

// Scene interface to avoid circular imports
type Scene interface {
	GetCamera() *Camera
	GetBackgroundColors() (topColor, bottomColor core.Vec3)
	GetShapes() *geometry.ShapeList
}

// DefaultLogger implements core.Logger by writing to stdout
type DefaultLogger struct{}

func (dl *DefaultLogger) Printf(format string, args ...interface{}) {
	fmt.Printf(format, args...)
}

// NewDefaultLogger creates a new default logger
func NewDefaultLogger() core.Logger {
	return &DefaultLogger{}
}

// Raytracer renders a scene by tracing rays through it. Each instance
// owns its sampler, so one instance must not be shared across goroutines;
// the worker pool creates one per worker.
type Raytracer struct {
	scene   Scene
	width   int
	height  int
	config  SamplingConfig
	sampler core.Sampler
}

// NewRaytracer creates a new raytracer with a deterministic sampler
func NewRaytracer(scene Scene, width, height int) *Raytracer {
	return NewRaytracerWithSampler(scene, width, height, core.NewSeededSampler(42))
}

// NewRaytracerWithSampler creates a raytracer using the given sampler
func NewRaytracerWithSampler(scene Scene, width, height int, sampler core.Sampler) *Raytracer {
	return &Raytracer{
		scene:   scene,
		width:   width,
		height:  height,
		config:  DefaultSamplingConfig(),
		sampler: sampler,
	}
}

// SetSamplingConfig updates the sampling configuration
func (rt *Raytracer) SetSamplingConfig(config SamplingConfig) {
	rt.config = config
}

// backgroundGradient returns the sky color for a ray that missed
// everything: a vertical blend between the scene's bottom and top colors
func (rt *Raytracer) backgroundGradient(r core.Ray) core.Vec3 {
	topColor, bottomColor := rt.scene.GetBackgroundColors()

	unitDirection := r.Direction.Normalize()

	// Map the direction's y component from [-1,1] to [0,1]
	t := 0.5 * (unitDirection.Y + 1.0)

	// Linear interpolation: (1-t)*bottom + t*top
	return bottomColor.Multiply(1.0 - t).Add(topColor.Multiply(t))
}

// RayColor returns the color for a ray at the given recursion depth.
// Depth counts up from zero; past MaxDepth the ray contributes black,
// which trades a little energy loss for guaranteed termination.
func (rt *Raytracer) RayColor(r core.Ray, depth int) core.Vec3 {
	if depth > rt.config.MaxDepth {
		return core.Vec3{}
	}

	hit, isHit := rt.scene.GetShapes().Hit(r, tMinEpsilon, math.MaxFloat64)
	if !isHit {
		return rt.backgroundGradient(r)
	}

	scatter, didScatter := hit.Material.Scatter(r, *hit, rt.sampler)
	if !didScatter {
		return core.Vec3{} // Material absorbed the ray
	}

	// Each bounce filters the light it gathers through the material's
	// attenuation
	return scatter.Attenuation.MultiplyVec(rt.RayColor(scatter.Scattered, depth+1))
}

// samplePixel traces the configured number of jittered samples through
// pixel (i, j) and accumulates them. j is measured from the bottom row.
func (rt *Raytracer) samplePixel(i, j int, ps *PixelStats) {
	camera := rt.scene.GetCamera()

	for sample := 0; sample < rt.config.SamplesPerPixel; sample++ {
		s := (float64(i) + rt.sampler.Get1D()) / float64(rt.width)
		t := (float64(j) + rt.sampler.Get1D()) / float64(rt.height)

		ray := camera.GetRay(s, t, rt.sampler)
		ps.AddSample(rt.RayColor(ray, 0))
	}
}

// RenderRows renders image rows [yMin, yMax) into the shared pixel grid.
// Rows are disjoint between workers, so no locking is needed.
func (rt *Raytracer) RenderRows(yMin, yMax int, pixelStats [][]PixelStats) RenderStats {
	stats := RenderStats{}

	for y := yMin; y < yMax; y++ {
		// Image row 0 is the top scanline; pixel coordinate j counts from
		// the bottom
		j := rt.height - 1 - y
		for i := 0; i < rt.width; i++ {
			rt.samplePixel(i, j, &pixelStats[y][i])
			stats.TotalPixels++
			stats.TotalSamples += rt.config.SamplesPerPixel
		}
	}

	stats.Finalize()
	return stats
}

// RenderPass renders the full image single-threaded and returns it
func (rt *Raytracer) RenderPass() (*image.RGBA, RenderStats) {
	pixelStats := NewPixelGrid(rt.width, rt.height)
	stats := rt.RenderRows(0, rt.height, pixelStats)
	return PixelGridToImage(pixelStats, rt.width, rt.height), stats
}

// vec3ToColor converts an averaged color to RGBA with gamma correction
// and clamping
func vec3ToColor(colorVec core.Vec3) color.RGBA {
	// Gamma 2.0: square root per channel
	colorVec = colorVec.GammaCorrect(2.0)
	colorVec = colorVec.Clamp(0.0, 0.999)

	return color.RGBA{
		R: uint8(256 * colorVec.X),
		G: uint8(256 * colorVec.Y),
		B: uint8(256 * colorVec.Z),
		A: 255,
	}
}

// NewPixelGrid allocates a height x width grid of pixel accumulators
func NewPixelGrid(width, height int) [][]PixelStats {
	pixelStats := make([][]PixelStats, height)
	for y := range pixelStats {
		pixelStats[y] = make([]PixelStats, width)
	}
	return pixelStats
}

// PixelGridToImage averages each pixel's samples into a final image
func PixelGridToImage(pixelStats [][]PixelStats, width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.SetRGBA(x, y, vec3ToColor(pixelStats[y][x].GetColor()))
		}
	}
	return img
}
