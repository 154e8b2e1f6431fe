package geometry

import "github.com/df07/go-raycore/pkg/core"

// Instance places a shape in the world through a rigid transform.
// The wrapped shape is defined in its local frame and can be shared by many instances.
type Instance struct {
	Object    Shape
	Transform *core.Transform
	bbox      core.AABB
}

// NewInstance wraps object with the given transform. A nil transform is the
// identity, as in core.Ray.Hit.
func NewInstance(object Shape, transform *core.Transform) *Instance {
	bbox := object.BoundingBox()
	if transform != nil {
		bbox = transform.BoxToWorld(bbox)
	}
	return &Instance{
		Object:    object,
		Transform: transform,
		bbox:      bbox,
	}
}

// Hit intersects the ray with the transformed object
func (i *Instance) Hit(ray core.Ray, interval core.Interval) (*core.HitRecord, bool) {
	return ray.Hit(i.Object, interval, i.Transform)
}

// BoundingBox returns the world-space box around the object's transformed local box
func (i *Instance) BoundingBox() core.AABB {
	return i.bbox
}
