package scene

import (
	"github.com/user/pathtracer/pkg/core"
	"github.com/user/pathtracer/pkg/geometry"
	"github.com/user/pathtracer/pkg/renderer"
)

// Scene contains all the elements needed for rendering. It is assembled
// up front and read-only while the render runs, so workers share it
// without synchronization.
type Scene struct {
	Camera         *renderer.Camera
	CameraConfig   renderer.CameraConfig
	Shapes         *geometry.ShapeList
	TopColor       core.Vec3 // Sky color straight up
	BottomColor    core.Vec3 // Sky color straight down
	SamplingConfig renderer.SamplingConfig

	// Recommended output resolution for this scene
	Width, Height int
}

// newScene builds the shared scaffolding: camera from config, empty shape
// list, and the standard white-to-blue sky
func newScene(cameraConfig renderer.CameraConfig, width, height int) *Scene {
	return &Scene{
		Camera:       renderer.NewCamera(cameraConfig),
		CameraConfig: cameraConfig,
		Shapes:       geometry.NewShapeList(),
		TopColor:     core.NewVec3(0.5, 0.7, 1.0),
		BottomColor:  core.NewVec3(1.0, 1.0, 1.0),
		SamplingConfig: renderer.SamplingConfig{
			SamplesPerPixel: 100,
			MaxDepth:        50,
		},
		Width:  width,
		Height: height,
	}
}

// GetCamera implements the renderer.Scene interface
func (s *Scene) GetCamera() *renderer.Camera {
	return s.Camera
}

// GetBackgroundColors implements the renderer.Scene interface
func (s *Scene) GetBackgroundColors() (core.Vec3, core.Vec3) {
	return s.TopColor, s.BottomColor
}

// GetShapes implements the renderer.Scene interface
func (s *Scene) GetShapes() *geometry.ShapeList {
	return s.Shapes
}
