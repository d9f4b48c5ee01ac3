package scene

import "github.com/go-gl/mathgl/mgl64"

// Object is a marker placed in the scene. Its local matrix is relative to
// its parent object, or to the world when it has none.
type Object struct {
	Name     string
	Shape    Shape
	ShowName bool
	ShowAxis bool

	local  mgl64.Mat4
	parent *Object
	group  *Group
}

// Local returns the object's transform relative to its parent.
func (o *Object) Local() mgl64.Mat4 { return o.local }

// SetLocal replaces the object's transform relative to its parent.
func (o *Object) SetLocal(m mgl64.Mat4) { o.local = m }

// World returns the object's transform in world space.
func (o *Object) World() mgl64.Mat4 {
	if o.parent == nil {
		return o.local
	}
	return o.parent.World().Mul4(o.local)
}

// Position returns the world-space origin of the object.
func (o *Object) Position() mgl64.Vec3 {
	return o.World().Col(3).Vec3()
}

// Parent returns the parent object, or nil.
func (o *Object) Parent() *Object { return o.parent }

// Group returns the group the object is linked into, or nil when it sits
// directly in the scene.
func (o *Object) Group() *Group { return o.group }

// Pose builds a local matrix from a location, XYZ euler rotation (radians)
// and uniform scale.
func Pose(location, rotation mgl64.Vec3, scale float64) mgl64.Mat4 {
	rot := mgl64.HomogRotate3DZ(rotation.Z()).
		Mul4(mgl64.HomogRotate3DY(rotation.Y())).
		Mul4(mgl64.HomogRotate3DX(rotation.X()))
	return mgl64.Translate3D(location.X(), location.Y(), location.Z()).
		Mul4(rot).
		Mul4(mgl64.Scale3D(scale, scale, scale))
}
