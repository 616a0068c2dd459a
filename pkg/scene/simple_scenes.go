package scene

import (
	"github.com/user/pathtracer/pkg/core"
	"github.com/user/pathtracer/pkg/geometry"
	"github.com/user/pathtracer/pkg/material"
	"github.com/user/pathtracer/pkg/renderer"
)

// wideCameraConfig is the shared setup for the small test scenes: camera
// at the origin looking down -z with a 90-degree field of view
func wideCameraConfig() renderer.CameraConfig {
	return renderer.CameraConfig{
		LookFrom:    core.NewVec3(0, 0, 0),
		LookAt:      core.NewVec3(0, 0, -1),
		Up:          core.NewVec3(0, 1, 0),
		VFov:        90.0,
		AspectRatio: 600.0 / 400.0,
	}
}

// NewTwoSphereScene creates a minimal scene with a small gray sphere
// resting on a large dark ground sphere
func NewTwoSphereScene() *Scene {
	s := newScene(wideCameraConfig(), 600, 400)

	s.Shapes.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.8))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.3, 0.3, 0.3))),
	)

	return s
}

// NewMaterialTestScene creates a scene exercising all three material
// kinds: a red diffuse sphere flanked by gold metal and glass, over a
// yellow diffuse ground
func NewMaterialTestScene() *Scene {
	s := newScene(wideCameraConfig(), 600, 400)

	s.Shapes.Add(
		geometry.NewSphere(core.NewVec3(0, 0, -1), 0.5, material.NewLambertian(core.NewVec3(0.8, 0.3, 0.3))),
		geometry.NewSphere(core.NewVec3(0, -100.5, -1), 100, material.NewLambertian(core.NewVec3(0.8, 0.8, 0.0))),
		geometry.NewSphere(core.NewVec3(1, 0, -1), 0.5, material.NewMetal(core.NewVec3(0.8, 0.6, 0.2), 0)),
		geometry.NewSphere(core.NewVec3(-1, 0, -1), 0.5, material.NewDielectric(1.5)),
	)

	return s
}
