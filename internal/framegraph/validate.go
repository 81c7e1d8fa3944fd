package framegraph

import (
	"github.com/roboscene/sdf/errors"
)

// ValidateFrameAttachedTo checks the structural invariants of an
// attached-to graph: frame name uniqueness within the scope, edge
// endpoint existence, and that following attached-to edges from any
// vertex reaches a sink within a bounded number of hops. Validation never
// mutates the graph; a scope with errors is kept, and queries against the
// unaffected parts may still succeed.
func ValidateFrameAttachedTo(s *Scoped) errors.List {
	var errs errors.List
	errs = append(errs, validateNames(s.Graph())...)
	errs = append(errs, validateEndpoints(s.Graph())...)
	errs = append(errs, validateAttachChains(s.Graph())...)
	return errs
}

// ValidatePoseRelativeTo checks the structural invariants of a
// relative-to graph: edge endpoint existence, and that following the
// declared-parent edges from any vertex reaches a sink. Name uniqueness
// is reported once per scope by the attached-to validation, which always
// runs first, so it is not re-checked here.
func ValidatePoseRelativeTo(s *Scoped) errors.List {
	var errs errors.List
	errs = append(errs, validateEndpoints(s.Graph())...)
	errs = append(errs, validateParentChains(s.Graph())...)
	return errs
}

// validateNames reports every vertex whose name lost the index race to an
// earlier vertex. The earlier declaration wins subsequent lookups.
func validateNames(g *Graph) errors.List {
	var errs errors.List
	for _, v := range g.vertices {
		first, ok := g.byName[v.name]
		if !ok || first == v.id {
			continue
		}
		errs = append(errs, errors.Newf(errors.CodeDuplicateName,
			"frame with name [%s] already exists, frame names must be unique within their scope", v.name))
	}
	return errs
}

// validateEndpoints reports edges referencing vertices outside the arena.
func validateEndpoints(g *Graph) errors.List {
	var errs errors.List
	n := int64(len(g.vertices))
	for _, e := range g.edges {
		if e.from < 0 || e.from >= n || e.to < 0 || e.to >= n {
			errs = append(errs, errors.Newf(errors.CodeElementInvalid,
				"edge [%d] -> [%d] references a vertex that does not exist", e.from, e.to))
		}
	}
	return errs
}

// validateParentChains walks the declared-parent chain of every vertex
// in a relative-to graph, following only the child to parent (+1) edge
// of each doubled pair. A chain that has not reached a sink after
// vertex-count hops can only be a cycle, and its component is cut off
// from the scope root.
func validateParentChains(g *Graph) errors.List {
	var errs errors.List
	bound := len(g.vertices)
	for _, v := range g.vertices {
		id := v.id
		hops := 0
		for {
			next, ok := parentOf(g, id)
			if !ok {
				break
			}
			if hops >= bound {
				errs = append(errs, errors.Newf(errors.CodeFrameGraphCycle,
					"relative_to graph cycle detected starting from frame [%s]", v.name))
				break
			}
			id = next
			hops++
		}
	}
	return errs
}

// parentOf returns the head of the first outgoing +1 edge.
func parentOf(g *Graph, id int64) (int64, bool) {
	for _, idx := range g.out[id] {
		if g.edges[idx].sign > 0 {
			return g.edges[idx].to, true
		}
	}
	return 0, false
}

// validateAttachChains walks the attached-to chain of every vertex. A
// chain that has not reached a sink after vertex-count hops can only be
// a cycle.
func validateAttachChains(g *Graph) errors.List {
	var errs errors.List
	bound := len(g.vertices)
	for _, v := range g.vertices {
		id := v.id
		hops := 0
		for {
			out := g.out[id]
			if len(out) == 0 {
				break
			}
			if hops >= bound {
				errs = append(errs, errors.Newf(errors.CodeFrameGraphCycle,
					"attached_to graph cycle detected starting from frame [%s]", v.name))
				break
			}
			id = g.edges[out[0]].to
			hops++
		}
	}
	return errs
}
