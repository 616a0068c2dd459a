package geometry

import (
	"github.com/user/pathtracer/pkg/core"
)

// ShapeList is an ordered collection of shapes that reports the closest
// hit across all of them. Insertion order does not affect results.
type ShapeList struct {
	Shapes []core.Shape
}

// NewShapeList creates a shape list from the given shapes
func NewShapeList(shapes ...core.Shape) *ShapeList {
	return &ShapeList{Shapes: shapes}
}

// Add appends shapes to the list
func (l *ShapeList) Add(shapes ...core.Shape) {
	l.Shapes = append(l.Shapes, shapes...)
}

// Hit tests the ray against every shape, keeping the closest hit.
// The upper bound shrinks as hits are found so no shape can report a hit
// farther than the best one seen so far.
func (l *ShapeList) Hit(ray core.Ray, tMin, tMax float64) (*core.HitRecord, bool) {
	var closestHit *core.HitRecord
	closestSoFar := tMax
	hitAnything := false

	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, tMin, closestSoFar); isHit {
			hitAnything = true
			closestSoFar = hit.T
			closestHit = hit
		}
	}

	return closestHit, hitAnything
}
