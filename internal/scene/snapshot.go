package scene

import (
	"encoding/json"

	"gopkg.in/yaml.v3"

	"github.com/eytandecker/fdmscene/internal/units"
)

// Snapshot is a serialisable copy of a scene.
type Snapshot struct {
	Units   units.System     `json:"units" yaml:"units"`
	Groups  []GroupSnapshot  `json:"groups" yaml:"groups"`
	Objects []ObjectSnapshot `json:"objects,omitempty" yaml:"objects,omitempty"`
}

// GroupSnapshot is a group and everything under it.
type GroupSnapshot struct {
	Name    string           `json:"name" yaml:"name"`
	Groups  []GroupSnapshot  `json:"groups,omitempty" yaml:"groups,omitempty"`
	Objects []ObjectSnapshot `json:"objects,omitempty" yaml:"objects,omitempty"`
}

// ObjectSnapshot is one marker with its world position.
type ObjectSnapshot struct {
	Name     string     `json:"name" yaml:"name"`
	Shape    string     `json:"shape" yaml:"shape"`
	Position [3]float64 `json:"position" yaml:"position,flow"`
	Parent   string     `json:"parent,omitempty" yaml:"parent,omitempty"`
}

// Snapshot copies the current state of s.
func (s *Scene) Snapshot() Snapshot {
	return Snapshot{
		Units:   s.units,
		Groups:  snapshotGroups(s.groups),
		Objects: snapshotObjects(s.objects),
	}
}

// JSON encodes the snapshot as indented JSON.
func (s Snapshot) JSON() ([]byte, error) {
	return json.MarshalIndent(s, "", "  ")
}

// YAML encodes the snapshot as YAML.
func (s Snapshot) YAML() ([]byte, error) {
	return yaml.Marshal(s)
}

func snapshotGroups(gs []*Group) []GroupSnapshot {
	out := make([]GroupSnapshot, 0, len(gs))
	for _, g := range gs {
		out = append(out, GroupSnapshot{
			Name:    g.Name,
			Groups:  snapshotGroups(g.groups),
			Objects: snapshotObjects(g.objects),
		})
	}
	return out
}

func snapshotObjects(objs []*Object) []ObjectSnapshot {
	if len(objs) == 0 {
		return nil
	}
	out := make([]ObjectSnapshot, 0, len(objs))
	for _, o := range objs {
		p := o.Position()
		snap := ObjectSnapshot{
			Name:     o.Name,
			Shape:    o.Shape.String(),
			Position: [3]float64{p.X(), p.Y(), p.Z()},
		}
		if o.parent != nil {
			snap.Parent = o.parent.Name
		}
		out = append(out, snap)
	}
	return out
}
