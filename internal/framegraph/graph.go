// Package framegraph builds and queries the named-coordinate-frame graphs
// resolved from a loaded world or model: the attached-to graph proving
// every frame is anchored to the scope root, and the relative-to graph
// whose signed edges compose into poses between arbitrary frames.
package framegraph

import (
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/iterator"

	"github.com/roboscene/sdf/pose"
)

// Vertex is one frame inside a graph. The pose payload is the declared
// pose of the frame relative to its parent; attached-to graphs leave it
// at identity since they only record topology.
type Vertex struct {
	id   int64
	name string
	pose pose.Pose
}

// ID returns the graph-local vertex id.
func (v Vertex) ID() int64 { return v.id }

// Name returns the scope-qualified frame name.
func (v Vertex) Name() string { return v.name }

// Pose returns the vertex payload.
func (v Vertex) Pose() pose.Pose { return v.pose }

// Edge is a directed relation between two vertices. Every parent
// declaration in a relative-to graph inserts two edges: child to parent
// with sign +1 ("apply the child's transform directly") and parent to
// child with sign -1 ("apply the inverse of the child's transform").
// Attached-to graphs insert only the child to parent edge.
type Edge struct {
	from, to int64
	// sign selects direct (+1) or inverted (-1) application of the child
	// vertex's transform when this edge is traversed from "from" to "to".
	sign int
	// child is the deeper endpoint, the vertex whose declared pose is the
	// edge payload.
	child int64
}

// From returns the edge tail.
func (e Edge) From() graph.Node { return node(e.from) }

// To returns the edge head.
func (e Edge) To() graph.Node { return node(e.to) }

// ReversedEdge returns the edge with endpoints swapped.
func (e Edge) ReversedEdge() graph.Edge {
	return Edge{from: e.to, to: e.from, sign: -e.sign, child: e.child}
}

// Sign returns the traversal sign.
func (e Edge) Sign() int { return e.sign }

// Child returns the id of the vertex whose transform the edge applies.
func (e Edge) Child() int64 { return e.child }

type node int64

func (n node) ID() int64 { return int64(n) }

// Graph stores vertices and edges in flat arenas indexed by small integer
// ids. It implements gonum's graph.Directed so pose resolution can run a
// stock uniform-cost search. Graphs are immutable once built and
// validated; queries never mutate them.
type Graph struct {
	vertices []Vertex
	edges    []Edge
	// byName maps a qualified frame name to the first vertex declared
	// with it; later duplicates are never indexed.
	byName map[string]int64
	out    map[int64][]int
	in     map[int64][]int
}

// New returns an empty graph.
func New() *Graph {
	return &Graph{
		byName: make(map[string]int64),
		out:    make(map[int64][]int),
		in:     make(map[int64][]int),
	}
}

// AddVertex inserts a vertex and returns its id. The name is indexed only
// if no earlier vertex claimed it; the duplicate itself is kept so the
// validator can report it.
func (g *Graph) AddVertex(name string, p pose.Pose) int64 {
	id := int64(len(g.vertices))
	g.vertices = append(g.vertices, Vertex{id: id, name: name, pose: p})
	if _, exists := g.byName[name]; !exists {
		g.byName[name] = id
	}
	return id
}

// AddEdgePair inserts the doubled signed edges for a declared parent
// relationship in a relative-to graph.
func (g *Graph) AddEdgePair(parent, child int64) {
	g.addEdge(Edge{from: child, to: parent, sign: 1, child: child})
	g.addEdge(Edge{from: parent, to: child, sign: -1, child: child})
}

// AddAttachEdge inserts the single child to parent edge of an attached-to
// graph.
func (g *Graph) AddAttachEdge(child, parent int64) {
	g.addEdge(Edge{from: child, to: parent, sign: 1, child: child})
}

func (g *Graph) addEdge(e Edge) {
	idx := len(g.edges)
	g.edges = append(g.edges, e)
	g.out[e.from] = append(g.out[e.from], idx)
	g.in[e.to] = append(g.in[e.to], idx)
}

// VertexByName returns the id indexed for a qualified name.
func (g *Graph) VertexByName(name string) (int64, bool) {
	id, ok := g.byName[name]
	return id, ok
}

// VertexCount returns the number of vertices, duplicates included.
func (g *Graph) VertexCount() int { return len(g.vertices) }

// Vertices returns the vertex arena in insertion order.
func (g *Graph) Vertices() []Vertex { return g.vertices }

// Edges returns the edge arena in insertion order.
func (g *Graph) Edges() []Edge { return g.edges }

// Vertex returns the vertex with the given id.
func (g *Graph) Vertex(id int64) (Vertex, bool) {
	if id < 0 || id >= int64(len(g.vertices)) {
		return Vertex{}, false
	}
	return g.vertices[id], true
}

// OutEdges returns the edges leaving a vertex.
func (g *Graph) OutEdges(id int64) []Edge {
	idxs := g.out[id]
	edges := make([]Edge, len(idxs))
	for i, idx := range idxs {
		edges[i] = g.edges[idx]
	}
	return edges
}

// Node implements graph.Graph.
func (g *Graph) Node(id int64) graph.Node {
	if id < 0 || id >= int64(len(g.vertices)) {
		return nil
	}
	return g.vertices[id]
}

// Nodes implements graph.Graph.
func (g *Graph) Nodes() graph.Nodes {
	if len(g.vertices) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, len(g.vertices))
	for i, v := range g.vertices {
		nodes[i] = v
	}
	return iterator.NewOrderedNodes(nodes)
}

// From implements graph.Graph.
func (g *Graph) From(id int64) graph.Nodes {
	idxs := g.out[id]
	if len(idxs) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, 0, len(idxs))
	for _, idx := range idxs {
		nodes = append(nodes, g.vertices[g.edges[idx].to])
	}
	return iterator.NewOrderedNodes(nodes)
}

// To implements graph.Directed.
func (g *Graph) To(id int64) graph.Nodes {
	idxs := g.in[id]
	if len(idxs) == 0 {
		return graph.Empty
	}
	nodes := make([]graph.Node, 0, len(idxs))
	for _, idx := range idxs {
		nodes = append(nodes, g.vertices[g.edges[idx].from])
	}
	return iterator.NewOrderedNodes(nodes)
}

// HasEdgeBetween implements graph.Graph.
func (g *Graph) HasEdgeBetween(xid, yid int64) bool {
	return g.HasEdgeFromTo(xid, yid) || g.HasEdgeFromTo(yid, xid)
}

// HasEdgeFromTo implements graph.Directed.
func (g *Graph) HasEdgeFromTo(uid, vid int64) bool {
	_, ok := g.EdgeFromTo(uid, vid)
	return ok
}

// Edge implements graph.Graph.
func (g *Graph) Edge(uid, vid int64) graph.Edge {
	e, ok := g.EdgeFromTo(uid, vid)
	if !ok {
		return nil
	}
	return e
}

// EdgeFromTo returns the directed edge between two vertices, if any.
func (g *Graph) EdgeFromTo(uid, vid int64) (Edge, bool) {
	for _, idx := range g.out[uid] {
		if g.edges[idx].to == vid {
			return g.edges[idx], true
		}
	}
	return Edge{}, false
}
