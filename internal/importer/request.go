package importer

import (
	"github.com/go-gl/mathgl/mgl64"

	"github.com/eytandecker/fdmscene/internal/fdm"
	"github.com/eytandecker/fdmscene/internal/scene"
	"github.com/eytandecker/fdmscene/internal/units"
)

// Category names the sub-group a marker is placed in.
type Category string

const (
	Metrics           Category = "Metrics"
	MassBalance       Category = "Mass Balance"
	GroundReactions   Category = "Ground Reactions"
	ExternalReactions Category = "External Reactions"
	Propulsion        Category = "Propulsion"
)

// NoParent marks a request without a parent link.
const NoParent = -1

// PlacementRequest is one marker a section parser wants placed. ID is the
// request's index within its section; ParentID, when not NoParent, is the
// ID of an earlier request the marker is attached to.
type PlacementRequest struct {
	ID       int
	Name     string
	Position mgl64.Vec3
	Category Category
	Shape    scene.Shape
	ParentID int
}

// requests accumulates the placement requests of one section.
type requests struct {
	category Category
	units    units.System
	out      []PlacementRequest
}

func newRequests(c Category, sys units.System) *requests {
	return &requests{category: c, units: sys}
}

func (r *requests) add(name string, pos mgl64.Vec3, shape scene.Shape, parent int) int {
	id := len(r.out)
	r.out = append(r.out, PlacementRequest{
		ID:       id,
		Name:     name,
		Position: pos,
		Category: r.category,
		Shape:    shape,
		ParentID: parent,
	})
	return id
}

// addLocation converts loc into scene units and adds a request at it.
func (r *requests) addLocation(name string, loc fdm.NamedLocation, shape scene.Shape, parent int) (int, error) {
	xyz, err := r.units.ConvertVec(loc.XYZ, loc.Unit)
	if err != nil {
		return NoParent, &fdm.ElementError{Element: "location", Line: loc.Line, Err: err}
	}
	return r.add(name, mgl64.Vec3{xyz[0], xyz[1], xyz[2]}, shape, parent), nil
}
