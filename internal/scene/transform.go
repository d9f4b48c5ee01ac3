package scene

import (
	"errors"
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

var (
	ErrParentCycle    = errors.New("scene: parent would create a cycle")
	ErrSingularParent = errors.New("scene: parent transform is not invertible")
)

// Reparent sets child's parent. With keepWorld the child's world transform
// is unchanged: its local matrix becomes inverse(parent.World) * child.World,
// so the parent's rotation and scale do not move it. Without keepWorld the
// local matrix is kept and the child follows the parent. A nil parent
// detaches the child.
func Reparent(child, parent *Object, keepWorld bool) error {
	for p := parent; p != nil; p = p.parent {
		if p == child {
			return ErrParentCycle
		}
	}

	world := child.World()
	if !keepWorld {
		child.parent = parent
		return nil
	}
	if parent == nil {
		child.parent = nil
		child.local = world
		return nil
	}

	pw := parent.World()
	if singular(pw) {
		return ErrSingularParent
	}
	child.parent = parent
	child.local = RelativeTo(world, pw)
	return nil
}

// singular reports whether m's linear part collapses a dimension. The
// determinant is compared against the product of the column lengths, so a
// uniformly tiny scale still counts as invertible.
func singular(m mgl64.Mat4) bool {
	l := m.Mat3()
	norms := l.Col(0).Len() * l.Col(1).Len() * l.Col(2).Len()
	if norms == 0 || math.IsNaN(norms) || math.IsInf(norms, 0) {
		return true
	}
	return math.Abs(l.Det())/norms < 1e-9
}

// RelativeTo expresses the world matrix m in the frame of the affine
// parentWorld.
func RelativeTo(m, parentWorld mgl64.Mat4) mgl64.Mat4 {
	return affineInverse(parentWorld).Mul4(m)
}

// affineInverse inverts an affine matrix. The linear part is normalised
// before inversion since mgl64 treats determinants below 1e-20 as zero.
func affineInverse(m mgl64.Mat4) mgl64.Mat4 {
	l := m.Mat3()
	k := math.Cbrt(l.Col(0).Len() * l.Col(1).Len() * l.Col(2).Len())
	inv := l.Mul(1 / k).Inv().Mul(1 / k)
	t := inv.Mul3x1(m.Col(3).Vec3()).Mul(-1)

	out := inv.Mat4()
	out.SetCol(3, t.Vec4(1))
	return out
}
