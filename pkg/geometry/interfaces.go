package geometry

import "github.com/df07/go-raycore/pkg/core"

// Shape is any primitive or aggregate that rays can be tested against
type Shape = core.Hitable

// Compile-time checks that every shape satisfies the Hitable contract
var (
	_ Shape = (*Sphere)(nil)
	_ Shape = (*AxisAlignedBox)(nil)
	_ Shape = (*Plane)(nil)
	_ Shape = (*Circle)(nil)
	_ Shape = (*Quad)(nil)
	_ Shape = (*Triangle)(nil)
	_ Shape = (*Cylinder)(nil)
	_ Shape = (*Cone)(nil)
	_ Shape = (*TriMesh)(nil)
	_ Shape = (*BVH)(nil)
	_ Shape = (*Instance)(nil)
	_ Shape = (*List)(nil)
)
