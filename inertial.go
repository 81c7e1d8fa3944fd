package sdf

import (
	"gonum.org/v1/gonum/mat"
	"gonum.org/v1/gonum/spatial/r3"

	"github.com/roboscene/sdf/internal/element"
	"github.com/roboscene/sdf/pose"
)

// Inertial carries the mass matrix of a link and the pose of its center
// of mass relative to the link frame.
type Inertial struct {
	mass float64
	// diagonal holds ixx, iyy, izz; offDiagonal holds ixy, ixz, iyz.
	diagonal    r3.Vec
	offDiagonal r3.Vec
	rawPose     pose.Pose
}

func defaultInertial() Inertial {
	return Inertial{
		mass:     1,
		diagonal: r3.Vec{X: 1, Y: 1, Z: 1},
		rawPose:  pose.Identity(),
	}
}

func loadInertial(node element.Node) Inertial {
	inertial := defaultInertial()
	inertial.mass = childFloat(node, "mass", 1)
	inertial.rawPose, _, _ = loadPose(node)
	if inertiaElem := node.FirstChild("inertia"); inertiaElem != nil {
		inertial.diagonal = r3.Vec{
			X: childFloat(inertiaElem, "ixx", 1),
			Y: childFloat(inertiaElem, "iyy", 1),
			Z: childFloat(inertiaElem, "izz", 1),
		}
		inertial.offDiagonal = r3.Vec{
			X: childFloat(inertiaElem, "ixy", 0),
			Y: childFloat(inertiaElem, "ixz", 0),
			Z: childFloat(inertiaElem, "iyz", 0),
		}
	}
	return inertial
}

// Mass returns the link mass.
func (i Inertial) Mass() float64 { return i.mass }

// RawPose returns the declared center of mass pose.
func (i Inertial) RawPose() pose.Pose { return i.rawPose }

// Moments returns the diagonal (ixx, iyy, izz) and off-diagonal
// (ixy, ixz, iyz) moments of inertia.
func (i Inertial) Moments() (diagonal, offDiagonal r3.Vec) {
	return i.diagonal, i.offDiagonal
}

// MassMatrix returns the symmetric 3x3 moment of inertia matrix.
func (i Inertial) MassMatrix() *mat.SymDense {
	m := mat.NewSymDense(3, nil)
	m.SetSym(0, 0, i.diagonal.X)
	m.SetSym(1, 1, i.diagonal.Y)
	m.SetSym(2, 2, i.diagonal.Z)
	m.SetSym(0, 1, i.offDiagonal.X)
	m.SetSym(0, 2, i.offDiagonal.Y)
	m.SetSym(1, 2, i.offDiagonal.Z)
	return m
}

// Valid reports whether the mass matrix passes the basic sanity check:
// positive mass, positive principal moments, and the triangle inequality
// between the principal moments.
func (i Inertial) Valid() bool {
	if i.mass <= 0 {
		return false
	}
	var eigen mat.EigenSym
	if !eigen.Factorize(i.MassMatrix(), false) {
		return false
	}
	moments := eigen.Values(nil)
	for _, m := range moments {
		if m <= 0 {
			return false
		}
	}
	return moments[0]+moments[1] >= moments[2] &&
		moments[0]+moments[2] >= moments[1] &&
		moments[1]+moments[2] >= moments[0]
}
