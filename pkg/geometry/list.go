package geometry

import "github.com/df07/go-raycore/pkg/core"

// List is a flat collection of shapes tested one after another.
// Prefer a BVH beyond a handful of shapes.
type List struct {
	Shapes []Shape
	bbox   core.AABB
}

// NewList creates a list over shapes
func NewList(shapes ...Shape) *List {
	list := &List{bbox: core.EmptyAABB()}
	for _, shape := range shapes {
		list.Add(shape)
	}
	return list
}

// Add appends a shape. Not safe to call while the list is being queried.
func (l *List) Add(shape Shape) {
	if len(l.Shapes) == 0 {
		l.bbox = core.EmptyAABB()
	}
	l.Shapes = append(l.Shapes, shape)
	l.bbox = l.bbox.Union(shape.BoundingBox())
}

// Hit returns the closest hit among all shapes
func (l *List) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	var closest *core.HitRecord
	for _, shape := range l.Shapes {
		if hit, isHit := shape.Hit(ray, interval); isHit {
			closest = hit
			interval = interval.WithMax(hit.T)
		}
	}
	return closest, closest != nil
}

// BoundingBox returns the union of all shape bounds
func (l *List) BoundingBox() core.AABB {
	if len(l.Shapes) == 0 {
		return core.EmptyAABB()
	}
	return l.bbox
}
