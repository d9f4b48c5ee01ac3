// Package scene is an in-memory 3D scene graph of groups and marker
// objects. It stands in for a host editor's scene: it reports the unit
// system, creates and links groups, and places marker primitives.
//
// A Scene is not safe for concurrent use.
package scene

import (
	"fmt"
	"slices"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/eytandecker/fdmscene/internal/units"
)

// Marker describes a marker primitive to place.
type Marker struct {
	Name     string
	Shape    Shape
	Location mgl64.Vec3
	Rotation mgl64.Vec3
	Scale    float64
	ShowName bool
	ShowAxis bool
}

// Scene is the root of the graph.
type Scene struct {
	units   units.System
	groups  []*Group
	objects []*Object
	names   map[string]*Object
}

// New creates an empty scene using the given unit system.
func New(sys units.System) *Scene {
	return &Scene{units: sys, names: make(map[string]*Object)}
}

// Units returns the scene's unit system.
func (s *Scene) Units() units.System { return s.units }

// Groups returns a copy of the children of parent, or of the top-level
// groups when parent is nil.
func (s *Scene) Groups(parent *Group) []*Group {
	return slices.Clone(s.children(parent))
}

func (s *Scene) children(parent *Group) []*Group {
	if parent == nil {
		return s.groups
	}
	return parent.groups
}

// FindGroup returns the direct child of parent named name, or nil.
func (s *Scene) FindGroup(parent *Group, name string) *Group {
	return findGroup(s.children(parent), name)
}

// NewGroup creates a group named name under parent (top level when nil).
func (s *Scene) NewGroup(parent *Group, name string) *Group {
	g := &Group{Name: name, parent: parent}
	if parent == nil {
		s.groups = append(s.groups, g)
	} else {
		parent.groups = append(parent.groups, g)
	}
	return g
}

// AddMarker creates a marker object directly in the scene. Names are unique
// across the scene: a taken name gets a ".001" style suffix.
func (s *Scene) AddMarker(m Marker) *Object {
	scale := m.Scale
	if scale == 0 {
		scale = 1
	}
	o := &Object{
		Name:     s.uniqueName(m.Name),
		Shape:    m.Shape,
		ShowName: m.ShowName,
		ShowAxis: m.ShowAxis,
		local:    Pose(m.Location, m.Rotation, scale),
	}
	s.names[o.Name] = o
	s.objects = append(s.objects, o)
	return o
}

// Link moves o into g, unlinking it from wherever it was.
func (s *Scene) Link(o *Object, g *Group) {
	if o.group != nil {
		o.group.objects = removeObject(o.group.objects, o)
	} else {
		s.objects = removeObject(s.objects, o)
	}
	o.group = g
	if g == nil {
		s.objects = append(s.objects, o)
		return
	}
	g.objects = append(g.objects, o)
}

// Object returns the object named name, or nil.
func (s *Scene) Object(name string) *Object { return s.names[name] }

// Stats counts every group and object in the scene.
func (s *Scene) Stats() (groups, objects int) {
	var walk func(gs []*Group)
	walk = func(gs []*Group) {
		for _, g := range gs {
			groups++
			objects += len(g.objects)
			walk(g.groups)
		}
	}
	walk(s.groups)
	return groups, objects + len(s.objects)
}

func (s *Scene) uniqueName(name string) string {
	if _, taken := s.names[name]; !taken {
		return name
	}
	for i := 1; ; i++ {
		candidate := fmt.Sprintf("%s.%03d", name, i)
		if _, taken := s.names[candidate]; !taken {
			return candidate
		}
	}
}
