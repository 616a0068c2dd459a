package geometry

import (
	"math"
	"testing"

	"github.com/user/pathtracer/pkg/core"
)

func TestSphere_Hit_Miss(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)
	ray := core.NewRay(core.NewVec3(2, 0, 0), core.NewVec3(0, 1, 0))

	hit, isHit := sphere.Hit(ray, 0.001, math.MaxFloat64)
	if isHit {
		t.Errorf("Expected miss, but got hit at t=%f", hit.T)
	}
}

func TestSphere_Hit_FrontAndBackFace(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, 0), 1.0, nil)

	tests := []struct {
		name           string
		rayOrigin      core.Vec3
		rayDirection   core.Vec3
		expectedT      float64
		expectedFront  bool
		expectedNormal core.Vec3
	}{
		{
			name:           "Ray from outside hits front face",
			rayOrigin:      core.NewVec3(0, 0, 3),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      2.0,
			expectedFront:  true,
			expectedNormal: core.NewVec3(0, 0, 1),
		},
		{
			name:           "Ray from inside hits back face",
			rayOrigin:      core.NewVec3(0, 0, 0),
			rayDirection:   core.NewVec3(0, 0, -1),
			expectedT:      1.0,
			expectedFront:  false,
			expectedNormal: core.NewVec3(0, 0, 1), // flipped to face the ray
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ray := core.NewRay(tt.rayOrigin, tt.rayDirection)
			hit, isHit := sphere.Hit(ray, 0.001, math.MaxFloat64)

			if !isHit {
				t.Fatal("Expected hit, got miss")
			}
			if math.Abs(hit.T-tt.expectedT) > 1e-9 {
				t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
			}
			if hit.FrontFace != tt.expectedFront {
				t.Errorf("Expected FrontFace=%v, got %v", tt.expectedFront, hit.FrontFace)
			}
			if hit.Normal.Subtract(tt.expectedNormal).Length() > 1e-9 {
				t.Errorf("Expected normal %v, got %v", tt.expectedNormal, hit.Normal)
			}
		})
	}
}

func TestSphere_Hit_PointOnSurfaceAndUnitNormal(t *testing.T) {
	sphere := NewSphere(core.NewVec3(1, -2, 3), 2.5, nil)

	// A handful of rays from different directions, all aimed at the center
	origins := []core.Vec3{
		core.NewVec3(10, 0, 0),
		core.NewVec3(-5, 7, 3),
		core.NewVec3(1, -2, 30),
		core.NewVec3(4, 4, -4),
	}

	for _, origin := range origins {
		ray := core.NewRay(origin, sphere.Center.Subtract(origin))
		hit, isHit := sphere.Hit(ray, 0.001, math.MaxFloat64)
		if !isHit {
			t.Fatalf("Ray from %v should hit the sphere", origin)
		}

		dist := hit.Point.Subtract(sphere.Center).Length()
		if math.Abs(dist-sphere.Radius) > 1e-9 {
			t.Errorf("Hit point %v is at distance %f from center, want %f", hit.Point, dist, sphere.Radius)
		}
		if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
			t.Errorf("Normal %v is not unit length", hit.Normal)
		}
	}
}

func TestSphere_Hit_RangeBounds(t *testing.T) {
	sphere := NewSphere(core.NewVec3(0, 0, -3), 1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))
	// Roots are at t=2 (near) and t=4 (far)

	tests := []struct {
		name      string
		tMin      float64
		tMax      float64
		expectHit bool
		expectedT float64
	}{
		{"Both roots in range picks near", 0.001, 10.0, true, 2.0},
		{"Near root excluded picks far", 3.0, 10.0, true, 4.0},
		{"Both roots excluded", 5.0, 10.0, false, 0},
		{"Range before the sphere", 0.001, 1.0, false, 0},
		{"Bounds are strict at near root", 2.0, 10.0, true, 4.0},
		{"Bounds are strict at far root", 4.0, 10.0, false, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			hit, isHit := sphere.Hit(ray, tt.tMin, tt.tMax)
			if isHit != tt.expectHit {
				t.Fatalf("Expected hit=%v, got %v", tt.expectHit, isHit)
			}
			if isHit {
				if math.Abs(hit.T-tt.expectedT) > 1e-9 {
					t.Errorf("Expected t=%f, got t=%f", tt.expectedT, hit.T)
				}
				if hit.T <= tt.tMin || hit.T >= tt.tMax {
					t.Errorf("t=%f is outside the open range (%f, %f)", hit.T, tt.tMin, tt.tMax)
				}
			}
		})
	}
}

func TestSphere_Hit_NegativeRadiusFlipsNormal(t *testing.T) {
	// Inside-out sphere used for hollow glass shells
	sphere := NewSphere(core.NewVec3(0, 0, -2), -1.0, nil)
	ray := core.NewRay(core.NewVec3(0, 0, 0), core.NewVec3(0, 0, -1))

	hit, isHit := sphere.Hit(ray, 0.001, math.MaxFloat64)
	if !isHit {
		t.Fatal("Expected hit on inside-out sphere")
	}

	if math.Abs(hit.T-1.0) > 1e-9 {
		t.Errorf("Expected t=1, got t=%f", hit.T)
	}
	if math.Abs(hit.Normal.Length()-1.0) > 1e-9 {
		t.Errorf("Normal %v is not unit length", hit.Normal)
	}
	// The signed radius makes the raw normal point inward (along the
	// ray), so this registers as a back face and the reported normal is
	// flipped to oppose the ray
	if hit.FrontFace {
		t.Error("Expected back face hit on inside-out sphere")
	}
	if hit.Normal.Dot(ray.Direction) >= 0 {
		t.Errorf("Reported normal %v does not face the incoming ray", hit.Normal)
	}
}
