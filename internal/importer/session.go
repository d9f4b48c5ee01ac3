package importer

import (
	"fmt"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/eytandecker/fdmscene/internal/naming"
	"github.com/eytandecker/fdmscene/internal/scene"
	"github.com/eytandecker/fdmscene/internal/units"
)

// Host is the destination scene an import writes into. *scene.Scene
// implements it.
type Host interface {
	Units() units.System
	Groups(parent *scene.Group) []*scene.Group
	FindGroup(parent *scene.Group, name string) *scene.Group
	NewGroup(parent *scene.Group, name string) *scene.Group
	AddMarker(m scene.Marker) *scene.Object
	Link(o *scene.Object, g *scene.Group)
}

// Session is one import into a host. Its ID keeps the names it creates
// apart from every earlier import into the same scene.
type Session struct {
	ID       string
	Root     *scene.Group
	Units    units.System
	Settings Settings

	host    Host
	groups  int
	markers int
}

const rootGroupPrefix = "JSBSim - "

// RootGroupName is the name of the top-level group for session id.
func RootGroupName(id string) string {
	return rootGroupPrefix + id
}

// sessionIDs returns the bare "{base} ({i})" ids of the sessions already
// rooted at the top level of host.
func sessionIDs(host Host) map[string]struct{} {
	ids := make(map[string]struct{})
	for _, g := range host.Groups(nil) {
		id, ok := strings.CutPrefix(g.Name, rootGroupPrefix+"[")
		if !ok || !strings.HasSuffix(id, "]") {
			continue
		}
		ids[strings.TrimSuffix(id, "]")] = struct{}{}
	}
	return ids
}

// NewSession allocates the first free "[{base} ({i})]" id and creates
// the session's root group.
func NewSession(host Host, base string, sys units.System, s Settings, maxProbe int) (*Session, error) {
	id, err := naming.AllocateUniqueID(base, sessionIDs(host), maxProbe)
	if err != nil {
		return nil, err
	}

	sess := &Session{ID: "[" + id + "]", Units: sys, Settings: s, host: host}
	sess.Root = host.NewGroup(nil, RootGroupName(sess.ID))
	sess.groups++
	return sess, nil
}

// Group returns the "{category} - {id}" group under the session root,
// creating it on first use.
func (s *Session) Group(c Category) *scene.Group {
	name := fmt.Sprintf("%s - %s", c, s.ID)
	if g := s.host.FindGroup(s.Root, name); g != nil {
		return g
	}
	s.groups++
	return s.host.NewGroup(s.Root, name)
}

// Place creates a marker for every request and links it into g. Parent
// links are resolved keeping the child's world transform.
func (s *Session) Place(g *scene.Group, reqs []PlacementRequest) error {
	placed := make([]*scene.Object, len(reqs))
	for i, req := range reqs {
		obj := s.host.AddMarker(scene.Marker{
			Name:     fmt.Sprintf("%s - %s", req.Name, s.ID),
			Shape:    req.Shape,
			Location: req.Position,
			Rotation: markerRotation(req.Shape),
			Scale:    s.Settings.PlotScale,
			ShowName: s.Settings.PlotNames,
			ShowAxis: s.Settings.PlotAxes,
		})
		s.host.Link(obj, g)
		placed[i] = obj
		s.markers++

		if req.ParentID == NoParent {
			continue
		}
		if req.ParentID < 0 || req.ParentID >= i {
			return fmt.Errorf("importer: request %d has invalid parent %d", i, req.ParentID)
		}
		if err := scene.Reparent(obj, placed[req.ParentID], true); err != nil {
			return err
		}
	}
	return nil
}

// markerRotation turns cones to point forward along the body x axis.
func markerRotation(shape scene.Shape) mgl64.Vec3 {
	if shape == scene.Cone {
		return mgl64.Vec3{0, 0, math.Pi / 2}
	}
	return mgl64.Vec3{}
}
