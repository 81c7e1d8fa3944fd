package sdf

import (
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/roboscene/sdf/errors"
	"github.com/roboscene/sdf/internal/element"
)

// GeometryKind identifies the shape carried by a Geometry.
type GeometryKind string

const (
	// GeometryEmpty is a geometry element with no recognized shape.
	GeometryEmpty GeometryKind = "empty"
	// GeometryBox is an axis-aligned box.
	GeometryBox GeometryKind = "box"
	// GeometryCylinder is a cylinder along the Z axis.
	GeometryCylinder GeometryKind = "cylinder"
	// GeometryPlane is an infinite plane with a visual extent.
	GeometryPlane GeometryKind = "plane"
	// GeometrySphere is a sphere.
	GeometrySphere GeometryKind = "sphere"
)

// Box is a box shape described by its full extents.
type Box struct {
	Size r3.Vec
}

// Cylinder is a cylinder shape.
type Cylinder struct {
	Radius float64
	Length float64
}

// Plane is a plane shape.
type Plane struct {
	Normal r3.Vec
	// Size is the visual extent of the plane in X and Y; Z is unused.
	Size r3.Vec
}

// Sphere is a sphere shape.
type Sphere struct {
	Radius float64
}

// Geometry is the shape payload of a visual or collision. It carries no
// frame-graph responsibility.
type Geometry struct {
	kind     GeometryKind
	box      *Box
	cylinder *Cylinder
	plane    *Plane
	sphere   *Sphere
}

func loadGeometry(node element.Node) (*Geometry, errors.List) {
	if node.TagName() != "geometry" {
		return nil, errors.List{errors.New(errors.CodeElementIncorrectType,
			"attempting to load a geometry, but the provided element is not a <geometry>")}
	}

	geom := &Geometry{kind: GeometryEmpty}
	switch {
	case node.HasChild("box"):
		geom.kind = GeometryBox
		geom.box = &Box{Size: childVec3(node.FirstChild("box"), "size", r3.Vec{X: 1, Y: 1, Z: 1})}
	case node.HasChild("cylinder"):
		elem := node.FirstChild("cylinder")
		geom.kind = GeometryCylinder
		geom.cylinder = &Cylinder{
			Radius: childFloat(elem, "radius", 1),
			Length: childFloat(elem, "length", 1),
		}
	case node.HasChild("plane"):
		elem := node.FirstChild("plane")
		geom.kind = GeometryPlane
		geom.plane = &Plane{
			Normal: childVec3(elem, "normal", r3.Vec{Z: 1}),
			Size:   childVec3(elem, "size", r3.Vec{X: 1, Y: 1}),
		}
	case node.HasChild("sphere"):
		geom.kind = GeometrySphere
		geom.sphere = &Sphere{Radius: childFloat(node.FirstChild("sphere"), "radius", 1)}
	}
	return geom, nil
}

// Kind returns the shape kind.
func (g *Geometry) Kind() GeometryKind { return g.kind }

// Box returns the box shape, or nil if the geometry is not a box.
func (g *Geometry) Box() *Box { return g.box }

// Cylinder returns the cylinder shape, or nil.
func (g *Geometry) Cylinder() *Cylinder { return g.cylinder }

// Plane returns the plane shape, or nil.
func (g *Geometry) Plane() *Plane { return g.plane }

// Sphere returns the sphere shape, or nil.
func (g *Geometry) Sphere() *Sphere { return g.sphere }
