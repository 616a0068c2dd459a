package scene

import (
	"github.com/user/pathtracer/pkg/core"
	"github.com/user/pathtracer/pkg/geometry"
	"github.com/user/pathtracer/pkg/material"
	"github.com/user/pathtracer/pkg/renderer"
)

// NewRandomScene creates the classic cover scene: a gray ground sphere, a
// 22x22 grid of small randomized spheres, and three large focal spheres.
// The same seed reproduces the same scene.
func NewRandomScene(seed int64) *Scene {
	cameraConfig := renderer.CameraConfig{
		LookFrom:      core.NewVec3(13, 2, 3),
		LookAt:        core.NewVec3(0, 0, 0),
		Up:            core.NewVec3(0, 1, 0),
		VFov:          20.0,
		AspectRatio:   600.0 / 400.0,
		Aperture:      0.1,
		FocusDistance: 10.0,
	}

	s := newScene(cameraConfig, 600, 400)
	sampler := core.NewSeededSampler(seed)

	// Large ground sphere acting as the floor
	ground := material.NewLambertian(core.NewVec3(0.5, 0.5, 0.5))
	s.Shapes.Add(geometry.NewSphere(core.NewVec3(0, -1000, 0), 1000, ground))

	for a := -11; a < 11; a++ {
		for b := -11; b < 11; b++ {
			chooseMat := sampler.Get1D()
			center := core.NewVec3(
				float64(a)+core.RandomRange(sampler, 0, 0.9),
				0.2,
				float64(b)+core.RandomRange(sampler, 0, 0.9),
			)

			// Keep the grid clear of the large metal sphere
			if center.Subtract(core.NewVec3(4, 0.2, 0)).Length() < 0.9 {
				continue
			}

			var mat core.Material
			switch {
			case chooseMat < 0.8:
				mat = material.NewLambertian(core.RandomVec3(sampler, 0, 1))
			case chooseMat < 0.95:
				mat = material.NewMetal(core.RandomVec3(sampler, 0, 0.5), 0)
			default:
				mat = material.NewDielectric(1.5)
			}

			s.Shapes.Add(geometry.NewSphere(center, 0.2, mat))
		}
	}

	// Three large focal spheres: glass, diffuse, metal
	s.Shapes.Add(
		geometry.NewSphere(core.NewVec3(0, 1, 0), 1.0, material.NewDielectric(1.5)),
		geometry.NewSphere(core.NewVec3(-4, 1, 0), 1.0, material.NewLambertian(core.NewVec3(0.4, 0.2, 0.1))),
		geometry.NewSphere(core.NewVec3(4, 1, 0), 1.0, material.NewMetal(core.NewVec3(0.7, 0.6, 0.5), 0)),
	)

	return s
}
