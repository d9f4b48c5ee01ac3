package scene

import (
	"math"
	"testing"

	"github.com/go-gl/mathgl/mgl64"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/eytandecker/fdmscene/internal/units"
)

func newTestScene() *Scene {
	return New(units.DefaultSystem())
}

func assertVecNear(t *testing.T, want, got mgl64.Vec3) {
	t.Helper()
	assert.InDelta(t, want.X(), got.X(), 1e-9)
	assert.InDelta(t, want.Y(), got.Y(), 1e-9)
	assert.InDelta(t, want.Z(), got.Z(), 1e-9)
}

func TestNewGroupAndFind(t *testing.T) {
	s := newTestScene()
	root := s.NewGroup(nil, "root")
	child := s.NewGroup(root, "child")

	assert.Same(t, root, s.FindGroup(nil, "root"))
	assert.Same(t, child, s.FindGroup(root, "child"))
	assert.Same(t, child, root.Child("child"))
	assert.Same(t, root, child.Parent())
	assert.Nil(t, s.FindGroup(nil, "child"))
	assert.Len(t, s.Groups(nil), 1)
	assert.Len(t, s.Groups(root), 1)
}

func TestGroupAccessorsReturnCopies(t *testing.T) {
	s := newTestScene()
	root := s.NewGroup(nil, "root")
	s.NewGroup(root, "child")
	m := s.AddMarker(Marker{Name: "m"})
	s.Link(m, root)

	top := s.Groups(nil)
	top[0] = nil
	_ = append(s.Groups(nil), &Group{Name: "stray"})
	kids := root.Groups()
	kids[0] = nil
	objs := root.Objects()
	objs[0] = nil

	assert.Same(t, root, s.FindGroup(nil, "root"))
	assert.Len(t, s.Groups(nil), 1)
	assert.NotNil(t, root.Child("child"))
	assert.Same(t, m, root.Objects()[0])
}

func TestAddMarkerPlacesInWorld(t *testing.T) {
	s := newTestScene()
	o := s.AddMarker(Marker{Name: "CG", Shape: Sphere, Location: mgl64.Vec3{1, 2, 3}, Scale: 0.25})

	assertVecNear(t, mgl64.Vec3{1, 2, 3}, o.Position())
	assert.Nil(t, o.Group())
	assert.Same(t, o, s.Object("CG"))
	assert.InDelta(t, 0.25, o.World().At(0, 0), 1e-12)
}

func TestAddMarkerUniqueNames(t *testing.T) {
	s := newTestScene()
	a := s.AddMarker(Marker{Name: "NOSE"})
	b := s.AddMarker(Marker{Name: "NOSE"})
	c := s.AddMarker(Marker{Name: "NOSE"})

	assert.Equal(t, "NOSE", a.Name)
	assert.Equal(t, "NOSE.001", b.Name)
	assert.Equal(t, "NOSE.002", c.Name)
}

func TestLinkMovesObject(t *testing.T) {
	s := newTestScene()
	g1 := s.NewGroup(nil, "g1")
	g2 := s.NewGroup(nil, "g2")
	o := s.AddMarker(Marker{Name: "m"})

	s.Link(o, g1)
	assert.Same(t, g1, o.Group())
	assert.Len(t, g1.Objects(), 1)

	s.Link(o, g2)
	assert.Empty(t, g1.Objects())
	assert.Len(t, g2.Objects(), 1)

	groups, objects := s.Stats()
	assert.Equal(t, 2, groups)
	assert.Equal(t, 1, objects)
}

func TestReparentKeepsWorldTransform(t *testing.T) {
	s := newTestScene()
	engine := s.AddMarker(Marker{
		Name:     "engine",
		Shape:    Cone,
		Location: mgl64.Vec3{-0.5, 0, 0.67},
		Rotation: mgl64.Vec3{0, 0, math.Pi / 2},
		Scale:    0.25,
	})
	prop := s.AddMarker(Marker{Name: "prop", Location: mgl64.Vec3{-0.95, 0, 0.67}, Scale: 0.25})
	before := prop.World()

	require.NoError(t, Reparent(prop, engine, true))

	assert.Same(t, engine, prop.Parent())
	assert.True(t, before.ApproxEqualThreshold(prop.World(), 1e-9))
	assertVecNear(t, mgl64.Vec3{-0.95, 0, 0.67}, prop.Position())
	assert.False(t, before.ApproxEqualThreshold(prop.Local(), 1e-9))

	// Moving the parent now carries the child along.
	engine.SetLocal(mgl64.Translate3D(1, 0, 0).Mul4(engine.Local()))
	assertVecNear(t, mgl64.Vec3{0.05, 0, 0.67}, prop.Position())
}

func TestReparentWithoutKeepUsesLocal(t *testing.T) {
	s := newTestScene()
	parent := s.AddMarker(Marker{Name: "p", Location: mgl64.Vec3{1, 0, 0}})
	child := s.AddMarker(Marker{Name: "c", Location: mgl64.Vec3{0, 1, 0}})

	require.NoError(t, Reparent(child, parent, false))
	assertVecNear(t, mgl64.Vec3{1, 1, 0}, child.Position())
}

func TestReparentDetachKeepsWorld(t *testing.T) {
	s := newTestScene()
	parent := s.AddMarker(Marker{Name: "p", Location: mgl64.Vec3{1, 0, 0}})
	child := s.AddMarker(Marker{Name: "c", Location: mgl64.Vec3{0, 1, 0}})
	require.NoError(t, Reparent(child, parent, false))

	require.NoError(t, Reparent(child, nil, true))
	assert.Nil(t, child.Parent())
	assertVecNear(t, mgl64.Vec3{1, 1, 0}, child.Position())
}

func TestReparentRejectsCycle(t *testing.T) {
	s := newTestScene()
	a := s.AddMarker(Marker{Name: "a"})
	b := s.AddMarker(Marker{Name: "b"})
	require.NoError(t, Reparent(b, a, true))

	assert.ErrorIs(t, Reparent(a, b, true), ErrParentCycle)
	assert.ErrorIs(t, Reparent(a, a, true), ErrParentCycle)
}

func TestReparentRejectsSingularParent(t *testing.T) {
	s := newTestScene()
	flat := s.AddMarker(Marker{Name: "flat"})
	flat.SetLocal(mgl64.Scale3D(1, 0, 1))
	c := s.AddMarker(Marker{Name: "c"})

	assert.ErrorIs(t, Reparent(c, flat, true), ErrSingularParent)
	assert.Nil(t, c.Parent())
}

func TestReparentAcceptsTinyUniformScale(t *testing.T) {
	s := newTestScene()
	tiny := s.AddMarker(Marker{Name: "tiny", Location: mgl64.Vec3{1, 0, 0}, Rotation: mgl64.Vec3{0, 0, math.Pi / 2}, Scale: 1e-8})
	c := s.AddMarker(Marker{Name: "c", Location: mgl64.Vec3{2, 3, 4}, Scale: 1e-8})
	before := c.Position()

	require.NoError(t, Reparent(c, tiny, true))
	assert.Same(t, tiny, c.Parent())
	assert.InDelta(t, 0, c.Position().Sub(before).Len(), 1e-9)
}

func TestSnapshot(t *testing.T) {
	s := newTestScene()
	root := s.NewGroup(nil, "JSBSim - [a (0)]")
	sub := s.NewGroup(root, "Propulsion - [a (0)]")
	engine := s.AddMarker(Marker{Name: "ENGINE", Shape: Cone, Location: mgl64.Vec3{1, 2, 3}})
	prop := s.AddMarker(Marker{Name: "THRUSTER", Location: mgl64.Vec3{4, 5, 6}})
	s.Link(engine, sub)
	s.Link(prop, sub)
	require.NoError(t, Reparent(prop, engine, true))

	snap := s.Snapshot()
	require.Len(t, snap.Groups, 1)
	require.Len(t, snap.Groups[0].Groups, 1)
	objs := snap.Groups[0].Groups[0].Objects
	require.Len(t, objs, 2)
	assert.Equal(t, "CONE", objs[0].Shape)
	assert.Equal(t, "ENGINE", objs[1].Parent)
	assert.InDelta(t, 5, objs[1].Position[1], 1e-9)

	y, err := snap.YAML()
	require.NoError(t, err)
	assert.Contains(t, string(y), "Propulsion - [a (0)]")
	assert.Contains(t, string(y), "shape: CONE")

	j, err := snap.JSON()
	require.NoError(t, err)
	assert.Contains(t, string(j), `"parent": "ENGINE"`)
}
