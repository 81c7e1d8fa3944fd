package framegraph

import (
	"strings"

	"github.com/roboscene/sdf/pose"
)

// ScopeSeparator joins nested scope names into qualified frame names,
// e.g. "robot::arm::wrist".
const ScopeSeparator = "::"

// Scoped pairs a shared graph with one naming scope. Every entity in a
// scope, and every scope nested inside it, shares the same graph
// instance; the prefix disambiguates frame names across nesting levels.
// Name resolution falls back through enclosing scopes rather than being
// inherited.
type Scoped struct {
	graph  *Graph
	prefix string
	root   int64
	parent *Scoped
}

// NewScoped creates the outermost scope over a fresh graph, inserting the
// scope root vertex under the given name with an identity payload.
func NewScoped(rootName string) *Scoped {
	g := New()
	root := g.AddVertex(rootName, pose.Identity())
	return &Scoped{graph: g, root: root}
}

// ChildScope derives the scope for an entity nested inside this one. The
// entity's own vertex becomes the nested scope's root, so frames declared
// inside it with no parent anchor to the entity rather than to this
// scope's root.
func (s *Scoped) ChildScope(name string, rootID int64) *Scoped {
	return &Scoped{
		graph:  s.graph,
		prefix: s.Qualify(name),
		root:   rootID,
		parent: s,
	}
}

// Graph returns the shared graph instance.
func (s *Scoped) Graph() *Graph { return s.graph }

// Root returns the scope root vertex id.
func (s *Scoped) Root() int64 { return s.root }

// Prefix returns the scope name prefix; empty for the outermost scope.
func (s *Scoped) Prefix() string { return s.prefix }

// Qualify prepends the scope prefix to a frame name.
func (s *Scoped) Qualify(name string) string {
	if s.prefix == "" {
		return name
	}
	return s.prefix + ScopeSeparator + name
}

// Resolve maps a frame name to a vertex id, looking in this scope first
// and then in each enclosing scope. The empty name resolves to the scope
// root. An already qualified name is also tried verbatim so queries can
// reach into nested scopes from an outer one.
func (s *Scoped) Resolve(name string) (int64, bool) {
	if name == "" {
		return s.root, true
	}
	for scope := s; scope != nil; scope = scope.parent {
		if id, ok := scope.graph.VertexByName(scope.Qualify(name)); ok {
			return id, true
		}
	}
	if strings.Contains(name, ScopeSeparator) {
		if id, ok := s.graph.VertexByName(name); ok {
			return id, true
		}
	}
	return 0, false
}
