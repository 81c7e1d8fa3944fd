package sdf

import (
	"github.com/roboscene/sdf/errors"
	"github.com/roboscene/sdf/internal/framegraph"
	"github.com/roboscene/sdf/pose"
)

// worldFrameName is the name of the implicit scope root frame of a world.
const worldFrameName = "world"

// rootScopeName is the synthetic scope root used when a model is loaded
// standalone, outside any world.
const rootScopeName = "__root__"

// frameDecl is the graph builders' view of one entity: a frame name, the
// name of the frame it is rigidly attached to, the name of the frame its
// pose is declared relative to, and that declared pose. Empty parent
// names mean the scope root.
type frameDecl struct {
	name       string
	attachedTo string
	relativeTo string
	pose       pose.Pose
	// relativeToExplicit distinguishes a relative_to the entity declared
	// itself from one derived as a fallback (a frame's attached_to, a
	// joint's child link). Only explicit names report FrameNotFound from
	// the relative-to builder; the attached-to builder already reports
	// the derived ones.
	relativeToExplicit bool
}

// placed pairs a declaration with the vertex inserted for it.
type placed struct {
	id   int64
	decl frameDecl
}

// scopeFrames accumulates the placed declarations of one scope. Vertices
// for every scope are inserted before any edge is wired so that parent
// references to frames declared later in document order still resolve.
type scopeFrames struct {
	scope *framegraph.Scoped
	decls []placed
}

func (m *Model) frameDecls() []frameDecl {
	decls := make([]frameDecl, 0, len(m.links)+len(m.joints)+len(m.frames))
	for _, l := range m.links {
		decls = append(decls, frameDecl{
			name:               l.Name(),
			relativeTo:         l.PoseRelativeTo(),
			pose:               l.RawPose(),
			relativeToExplicit: l.PoseRelativeTo() != "",
		})
	}
	for _, j := range m.joints {
		relativeTo := j.PoseRelativeTo()
		if relativeTo == "" {
			relativeTo = j.ChildLinkName()
		}
		decls = append(decls, frameDecl{
			name:               j.Name(),
			attachedTo:         j.ChildLinkName(),
			relativeTo:         relativeTo,
			pose:               j.RawPose(),
			relativeToExplicit: j.PoseRelativeTo() != "",
		})
	}
	for _, f := range m.frames {
		decls = append(decls, frameDecl{
			name:               f.Name(),
			attachedTo:         f.AttachedTo(),
			relativeTo:         f.poseParent(),
			pose:               f.RawPose(),
			relativeToExplicit: f.PoseRelativeTo() != "",
		})
	}
	return decls
}

func (w *World) frameDecls() []frameDecl {
	decls := make([]frameDecl, 0, len(w.frames)+len(w.lights))
	for _, f := range w.frames {
		decls = append(decls, frameDecl{
			name:               f.Name(),
			attachedTo:         f.AttachedTo(),
			relativeTo:         f.poseParent(),
			pose:               f.RawPose(),
			relativeToExplicit: f.PoseRelativeTo() != "",
		})
	}
	for _, l := range w.lights {
		decls = append(decls, frameDecl{
			name:               l.Name(),
			relativeTo:         l.PoseRelativeTo(),
			pose:               l.RawPose(),
			relativeToExplicit: l.PoseRelativeTo() != "",
		})
	}
	return decls
}

// buildWorldFrameAttachedToGraph builds and wires the attached-to graph
// for a world scope and every model scope nested inside it.
func buildWorldFrameAttachedToGraph(w *World) (*framegraph.Scoped, errors.List) {
	scope := framegraph.NewScoped(worldFrameName)
	scopes := collectWorldFrames(scope, w, false)
	var errs errors.List
	for _, sf := range scopes {
		errs = append(errs, wireAttachedTo(sf)...)
	}
	return scope, errs
}

// buildWorldPoseRelativeToGraph builds and wires the relative-to graph
// for a world scope and every model scope nested inside it.
func buildWorldPoseRelativeToGraph(w *World) (*framegraph.Scoped, errors.List) {
	scope := framegraph.NewScoped(worldFrameName)
	scopes := collectWorldFrames(scope, w, true)
	var errs errors.List
	for _, sf := range scopes {
		errs = append(errs, wireRelativeTo(sf)...)
	}
	return scope, errs
}

// buildModelFrameAttachedToGraph builds the attached-to graph for a model
// loaded standalone.
func buildModelFrameAttachedToGraph(m *Model) (*framegraph.Scoped, errors.List) {
	scope := framegraph.NewScoped(rootScopeName)
	var scopes []scopeFrames
	outer := scopeFrames{scope: scope}
	collectModelFrames(scope, m, false, &outer, &scopes)
	scopes = append([]scopeFrames{outer}, scopes...)
	var errs errors.List
	for _, sf := range scopes {
		errs = append(errs, wireAttachedTo(sf)...)
	}
	return scope, errs
}

// buildModelPoseRelativeToGraph builds the relative-to graph for a model
// loaded standalone.
func buildModelPoseRelativeToGraph(m *Model) (*framegraph.Scoped, errors.List) {
	scope := framegraph.NewScoped(rootScopeName)
	var scopes []scopeFrames
	outer := scopeFrames{scope: scope}
	collectModelFrames(scope, m, true, &outer, &scopes)
	scopes = append([]scopeFrames{outer}, scopes...)
	var errs errors.List
	for _, sf := range scopes {
		errs = append(errs, wireRelativeTo(sf)...)
	}
	return scope, errs
}

func collectWorldFrames(scope *framegraph.Scoped, w *World, withPose bool) []scopeFrames {
	outer := scopeFrames{scope: scope}
	for _, d := range w.frameDecls() {
		outer.decls = append(outer.decls, place(scope, d, withPose))
	}
	var nested []scopeFrames
	for _, m := range w.models {
		collectModelFrames(scope, m, withPose, &outer, &nested)
	}
	if withPose {
		w.setPoseGraph(scope)
	} else {
		w.setAttachedToGraph(scope)
	}
	return append([]scopeFrames{outer}, nested...)
}

// collectModelFrames inserts the model's own vertex into the owner scope,
// derives the model's nested scope rooted at that vertex, and inserts one
// vertex per frame declaration, recursing into nested models.
func collectModelFrames(owner *framegraph.Scoped, m *Model, withPose bool, ownerFrames *scopeFrames, out *[]scopeFrames) {
	payload := pose.Identity()
	if withPose {
		payload = m.RawPose()
	}
	id := owner.Graph().AddVertex(owner.Qualify(m.Name()), payload)
	ownerFrames.decls = append(ownerFrames.decls, placed{
		id: id,
		decl: frameDecl{
			name:               m.Name(),
			relativeTo:         m.PoseRelativeTo(),
			pose:               m.RawPose(),
			relativeToExplicit: m.PoseRelativeTo() != "",
		},
	})

	scope := owner.ChildScope(m.Name(), id)
	if withPose {
		m.setPoseGraph(scope)
	} else {
		m.setAttachedToGraph(scope)
	}

	sf := scopeFrames{scope: scope}
	for _, d := range m.frameDecls() {
		sf.decls = append(sf.decls, place(scope, d, withPose))
	}

	// Recurse before publishing: each nested model appends its own
	// declaration to sf.decls, and those must be present in the copy the
	// edge-wiring pass sees.
	for _, nested := range m.models {
		collectModelFrames(scope, nested, withPose, &sf, out)
	}
	*out = append(*out, sf)
}

func place(scope *framegraph.Scoped, d frameDecl, withPose bool) placed {
	payload := pose.Identity()
	if withPose {
		payload = d.pose
	}
	return placed{id: scope.Graph().AddVertex(scope.Qualify(d.name), payload), decl: d}
}

// wireAttachedTo inserts one attached-to edge per declaration. A declared
// parent that does not resolve in this or any enclosing scope yields
// FrameNotFound, and the frame falls back to the scope root so the rest
// of the graph remains usable.
func wireAttachedTo(sf scopeFrames) errors.List {
	var errs errors.List
	g := sf.scope.Graph()
	for _, pd := range sf.decls {
		parent := sf.scope.Root()
		if pd.decl.attachedTo != "" {
			id, ok := sf.scope.Resolve(pd.decl.attachedTo)
			if ok {
				parent = id
			} else {
				errs = append(errs, errors.Newf(errors.CodeFrameNotFound,
					"attached_to frame [%s] of frame [%s] does not exist",
					pd.decl.attachedTo, pd.decl.name))
			}
		}
		g.AddAttachEdge(pd.id, parent)
	}
	return errs
}

// wireRelativeTo inserts the doubled signed edge pair per declaration,
// with the same root fallback policy as wireAttachedTo so both graphs
// stay mutually consistent.
func wireRelativeTo(sf scopeFrames) errors.List {
	var errs errors.List
	g := sf.scope.Graph()
	for _, pd := range sf.decls {
		parent := sf.scope.Root()
		if pd.decl.relativeTo != "" {
			id, ok := sf.scope.Resolve(pd.decl.relativeTo)
			switch {
			case ok:
				parent = id
			case pd.decl.relativeToExplicit:
				errs = append(errs, errors.Newf(errors.CodeFrameNotFound,
					"relative_to frame [%s] of frame [%s] does not exist",
					pd.decl.relativeTo, pd.decl.name))
			}
		}
		g.AddEdgePair(parent, pd.id)
	}
	return errs
}
