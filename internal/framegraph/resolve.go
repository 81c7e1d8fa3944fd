package framegraph

import (
	"math"

	"gonum.org/v1/gonum/graph/path"
	"gonum.org/v1/gonum/mat"

	"github.com/roboscene/sdf/errors"
	"github.com/roboscene/sdf/pose"
)

// PoseBetween returns the pose of the source frame expressed in the
// destination frame, composing the signed edge transforms along the
// unique path between the two vertices of a relative-to graph.
//
// The search is a uniform-cost shortest path. On a validated graph the
// doubled edge pairs form a tree, so it degenerates to walking up to the
// nearest common ancestor and back down; the general search is kept so a
// relaxed topology (for example closed kinematic loops) degrades to the
// closest path instead of breaking.
func PoseBetween(s *Scoped, source, dest string) (pose.Pose, error) {
	srcID, ok := s.Resolve(source)
	if !ok {
		return pose.Identity(), &errors.Error{
			Code:    errors.CodeFrameNotFound,
			Message: "frame with name [" + source + "] not found",
		}
	}
	dstID, ok := s.Resolve(dest)
	if !ok {
		return pose.Identity(), &errors.Error{
			Code:    errors.CodeFrameNotFound,
			Message: "frame with name [" + dest + "] not found",
		}
	}
	if srcID == dstID {
		return pose.Identity(), nil
	}

	g := s.Graph()
	shortest := path.DijkstraFrom(node(srcID), g)
	nodes, weight := shortest.To(dstID)
	if len(nodes) == 0 || math.IsInf(weight, 1) {
		return pose.Identity(), &errors.Error{
			Code:    errors.CodeNoPathBetweenFrames,
			Message: "no path between frame [" + source + "] and frame [" + dest + "]",
		}
	}

	// Walk the path from source toward destination, left-multiplying one
	// factor per edge: the child endpoint's transform when ascending
	// (sign +1), its inverse when descending (sign -1).
	acc := pose.Identity().Matrix()
	for i := 0; i+1 < len(nodes); i++ {
		e, ok := g.EdgeFromTo(nodes[i].ID(), nodes[i+1].ID())
		if !ok {
			return pose.Identity(), &errors.Error{
				Code:    errors.CodeNoPathBetweenFrames,
				Message: "no path between frame [" + source + "] and frame [" + dest + "]",
			}
		}
		child, ok := g.Vertex(e.child)
		if !ok {
			return pose.Identity(), &errors.Error{
				Code:    errors.CodeElementInvalid,
				Message: "edge payload vertex does not exist",
			}
		}
		factor := child.pose.Matrix()
		if e.sign < 0 {
			factor = pose.RigidInverse(factor)
		}
		var next mat.Dense
		next.Mul(factor, acc)
		acc = &next
	}
	return pose.FromMatrix(acc), nil
}
