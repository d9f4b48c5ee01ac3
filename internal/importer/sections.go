package importer

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl64"

	"github.com/eytandecker/fdmscene/internal/fdm"
	"github.com/eytandecker/fdmscene/internal/scene"
	"github.com/eytandecker/fdmscene/internal/units"
)

// SectionParser turns one top-level FDM section into placement requests.
// It places nothing itself.
type SectionParser func(el *fdm.Element, s Settings, sys units.System) ([]PlacementRequest, error)

type section struct {
	tag      string
	category Category
	enabled  func(Settings) bool
	parse    SectionParser
}

// sections lists the importable sections in import order.
var sections = []section{
	{"metrics", Metrics, func(s Settings) bool { return s.IncludeMetrics }, ParseMetrics},
	{"mass_balance", MassBalance, func(s Settings) bool { return s.IncludeMassBalance }, ParseMassBalance},
	{"ground_reactions", GroundReactions, func(s Settings) bool { return s.IncludeGroundReactions }, ParseGroundReactions},
	{"external_reactions", ExternalReactions, func(s Settings) bool { return s.IncludeExternalReactions }, ParseExternalReactions},
	{"propulsion", Propulsion, func(s Settings) bool { return s.IncludePropulsion }, ParsePropulsion},
}

// ParseMetrics emits one marker per metrics location, named after it.
func ParseMetrics(el *fdm.Element, _ Settings, sys units.System) ([]PlacementRequest, error) {
	r := newRequests(Metrics, sys)
	locs, err := fdm.ExtractLocations(el)
	if err != nil {
		return nil, err
	}
	for _, loc := range locs {
		if _, err := r.addLocation(loc.Name, loc, scene.Sphere, NoParent); err != nil {
			return nil, err
		}
	}
	return r.out, nil
}

// ParseMassBalance emits the centre of gravity and every point mass.
// Weights are copied verbatim, never converted.
func ParseMassBalance(el *fdm.Element, _ Settings, sys units.System) ([]PlacementRequest, error) {
	r := newRequests(MassBalance, sys)
	locs, err := fdm.ExtractLocations(el)
	if err != nil {
		return nil, err
	}
	for _, loc := range locs {
		if _, err := r.addLocation(loc.Name, loc, scene.Sphere, NoParent); err != nil {
			return nil, err
		}
	}

	for _, pm := range el.All("pointmass") {
		weight, err := pm.Require("weight")
		if err != nil {
			return nil, err
		}
		locs, err := fdm.ExtractLocations(pm)
		if err != nil {
			return nil, err
		}
		for _, loc := range locs {
			name := fmt.Sprintf("%s (%s - %s %s)",
				pm.AttrOr("name", ""), loc.Name, weight.Text, weight.AttrOr("unit", ""))
			if _, err := r.addLocation(name, loc, scene.Sphere, NoParent); err != nil {
				return nil, err
			}
		}
	}
	return r.out, nil
}

// ParseGroundReactions emits one marker per contact location.
func ParseGroundReactions(el *fdm.Element, _ Settings, sys units.System) ([]PlacementRequest, error) {
	return parseNamedRecords(el, sys, GroundReactions, "contact", "type")
}

// ParseExternalReactions emits one marker per force location.
func ParseExternalReactions(el *fdm.Element, _ Settings, sys units.System) ([]PlacementRequest, error) {
	return parseNamedRecords(el, sys, ExternalReactions, "force", "frame")
}

// parseNamedRecords handles sections whose records are named
// "{name} ({qualifier})".
func parseNamedRecords(el *fdm.Element, sys units.System, c Category, tag, qualifier string) ([]PlacementRequest, error) {
	r := newRequests(c, sys)
	for _, rec := range el.All(tag) {
		locs, err := fdm.ExtractLocations(rec)
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("%s (%s)", rec.AttrOr("name", ""), rec.AttrOr(qualifier, ""))
		for _, loc := range locs {
			if _, err := r.addLocation(name, loc, scene.Sphere, NoParent); err != nil {
				return nil, err
			}
		}
	}
	return r.out, nil
}

// ParsePropulsion emits engines (cones), their thrusters and fuel tanks
// (cubes). An engine without a location is still placed, at the origin.
// With ThrustersAutoParent each thruster links to its engine's last
// marker.
func ParsePropulsion(el *fdm.Element, s Settings, sys units.System) ([]PlacementRequest, error) {
	r := newRequests(Propulsion, sys)
	for _, engine := range el.All("engine") {
		engineFile := engine.AttrOr("file", "")
		locs, err := fdm.ExtractLocations(engine)
		if err != nil {
			return nil, err
		}

		engineID := NoParent
		if len(locs) == 0 {
			engineID = r.add(fmt.Sprintf("ENGINE - %s (missing location)", engineFile), mgl64.Vec3{}, scene.Cone, NoParent)
		}
		for _, loc := range locs {
			if engineID, err = r.addLocation("ENGINE - "+engineFile, loc, scene.Cone, NoParent); err != nil {
				return nil, err
			}
		}

		thruster, err := engine.Require("thruster")
		if err != nil {
			return nil, err
		}
		locs, err = fdm.ExtractLocations(thruster)
		if err != nil {
			return nil, err
		}
		parent := NoParent
		if s.ThrustersAutoParent {
			parent = engineID
		}
		for _, loc := range locs {
			if _, err := r.addLocation("THRUSTER - "+thruster.AttrOr("file", ""), loc, scene.Sphere, parent); err != nil {
				return nil, err
			}
		}
	}

	for _, tank := range el.All("tank") {
		locs, err := fdm.ExtractLocations(tank)
		if err != nil {
			return nil, err
		}
		capacity, err := tank.Require("capacity")
		if err != nil {
			return nil, err
		}
		name := fmt.Sprintf("TANK (%s - %s - %s %s)",
			tank.AttrOr("number", ""), tank.AttrOr("type", ""), capacity.Text, capacity.AttrOr("unit", ""))
		for _, loc := range locs {
			if _, err := r.addLocation(name, loc, scene.Cube, NoParent); err != nil {
				return nil, err
			}
		}
	}
	return r.out, nil
}
