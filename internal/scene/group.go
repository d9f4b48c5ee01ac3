package scene

import "slices"

// Group collects objects and child groups. It has no transform.
type Group struct {
	Name string

	parent  *Group
	groups  []*Group
	objects []*Object
}

// Parent returns the enclosing group, or nil for a top-level group.
func (g *Group) Parent() *Group { return g.parent }

// Groups returns the direct child groups in creation order.
func (g *Group) Groups() []*Group { return slices.Clone(g.groups) }

// Objects returns the objects linked into g.
func (g *Group) Objects() []*Object { return slices.Clone(g.objects) }

// Child returns the direct child group named name, or nil.
func (g *Group) Child(name string) *Group {
	return findGroup(g.groups, name)
}

func findGroup(groups []*Group, name string) *Group {
	for _, c := range groups {
		if c.Name == name {
			return c
		}
	}
	return nil
}

func removeObject(objs []*Object, o *Object) []*Object {
	for i, c := range objs {
		if c == o {
			return append(objs[:i], objs[i+1:]...)
		}
	}
	return objs
}
