package material

import (
	"math"
	"math/rand"
	"testing"

	"github.com/user/pathtracer/pkg/core"
)

func TestDielectric_AlwaysScatters(t *testing.T) {
	glass := NewDielectric(1.5)

	rayDirection := core.NewVec3(1, -1, 0).Normalize() // 45-degree angle
	ray := core.NewRay(core.NewVec3(0, 1, 0), rayDirection)

	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		T:         1.0,
		FrontFace: true,
		Material:  glass,
	}

	for seed := int64(0); seed < 100; seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, scattered := glass.Scatter(ray, hit, sampler)

		if !scattered {
			t.Fatal("Dielectric should always scatter")
		}

		expectedAttenuation := core.NewVec3(1.0, 1.0, 1.0)
		if result.Attenuation != expectedAttenuation {
			t.Errorf("Expected attenuation %v, got %v", expectedAttenuation, result.Attenuation)
		}
	}
}

func TestDielectric_RefractionAtNormalIncidence(t *testing.T) {
	glass := NewDielectric(1.5)

	// Straight-on ray: refraction does not bend it, and reflection
	// probability is only r0 ≈ 4%, so most samples pass straight through
	ray := core.NewRay(core.NewVec3(0, 1, 0), core.NewVec3(0, -1, 0))
	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0),
		FrontFace: true,
	}

	straightThrough := 0
	const trials = 1000
	for seed := int64(0); seed < trials; seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, _ := glass.Scatter(ray, hit, sampler)

		dir := result.Scattered.Direction.Normalize()
		if dir.Subtract(core.NewVec3(0, -1, 0)).Length() < 1e-9 {
			straightThrough++
		}
	}

	// Expect roughly 96% transmission; allow a wide margin
	if straightThrough < trials*90/100 {
		t.Errorf("Only %d/%d normal-incidence rays passed straight through", straightThrough, trials)
	}
	if straightThrough == trials {
		t.Error("Expected at least a few reflections at normal incidence")
	}
}

func TestDielectric_TotalInternalReflection(t *testing.T) {
	glass := NewDielectric(1.5)

	// Ray inside the glass (back face) hitting the surface at a shallow
	// angle, past the critical angle of ~41.8 degrees
	rayDirection := core.NewVec3(1, -0.2, 0).Normalize()
	ray := core.NewRay(core.NewVec3(0, 1, 0), rayDirection)

	hit := core.HitRecord{
		Point:     core.NewVec3(0, 0, 0),
		Normal:    core.NewVec3(0, 1, 0), // already flipped to face the ray
		FrontFace: false,                 // exiting the material
	}

	// Past the critical angle every sample must reflect, regardless of
	// the random draw
	expected := reflect(rayDirection, hit.Normal)
	for seed := int64(0); seed < 100; seed++ {
		sampler := core.NewRandomSampler(rand.New(rand.NewSource(seed)))
		result, scattered := glass.Scatter(ray, hit, sampler)

		if !scattered {
			t.Fatal("Dielectric should scatter under total internal reflection")
		}
		actual := result.Scattered.Direction
		if actual.Subtract(expected).Length() > 1e-9 {
			t.Fatalf("Expected reflection %v, got %v", expected, actual)
		}
	}
}

func TestReflectance_SchlickApproximation(t *testing.T) {
	// For glass (ratio 1/1.5 entering), r0 = ((1-1.5)/(1+1.5))² = 0.04
	ratio := 1.0 / 1.5
	r0 := math.Pow((1-ratio)/(1+ratio), 2)

	tests := []struct {
		name     string
		cosine   float64
		expected float64
		tol      float64
	}{
		{"Normal incidence", 1.0, r0, 1e-12},
		{"Grazing incidence", 0.0, 1.0, 1e-12},
		{"Near grazing", 0.01, 0.95, 0.05},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Reflectance(tt.cosine, ratio)
			if math.Abs(got-tt.expected) > tt.tol {
				t.Errorf("Reflectance(%f) = %f, want %f", tt.cosine, got, tt.expected)
			}
		})
	}

	if math.Abs(r0-0.04) > 1e-9 {
		t.Errorf("r0 for glass should be 0.04, got %f", r0)
	}

	// Reflectance must increase monotonically as incidence grazes
	prev := Reflectance(1.0, ratio)
	for cos := 0.95; cos >= 0; cos -= 0.05 {
		cur := Reflectance(cos, ratio)
		if cur < prev {
			t.Fatalf("Reflectance decreased from %f to %f at cosine %f", prev, cur, cos)
		}
		prev = cur
	}
}

func TestRefract_SnellsLaw(t *testing.T) {
	// 45-degree incidence entering glass: sin θt = sin(45°)/1.5
	uv := core.NewVec3(1, -1, 0).Normalize()
	n := core.NewVec3(0, 1, 0)
	ratio := 1.0 / 1.5

	refracted := refract(uv, n, ratio).Normalize()

	sinIncident := math.Sqrt(0.5)
	expectedSin := sinIncident * ratio
	actualSin := math.Abs(refracted.X)

	if math.Abs(actualSin-expectedSin) > 1e-9 {
		t.Errorf("Expected sin θt = %f, got %f", expectedSin, actualSin)
	}
	// Refracted ray continues into the surface
	if refracted.Y >= 0 {
		t.Errorf("Refracted ray %v does not continue through the surface", refracted)
	}
}
