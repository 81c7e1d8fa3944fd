package framegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roboscene/sdf/pose"
)

func TestAddVertexFirstNameWins(t *testing.T) {
	g := New()
	first := g.AddVertex("base", pose.Translate(1, 0, 0))
	second := g.AddVertex("base", pose.Translate(2, 0, 0))

	require.NotEqual(t, first, second)
	assert.Equal(t, 2, g.VertexCount())

	id, ok := g.VertexByName("base")
	require.True(t, ok)
	assert.Equal(t, first, id)
}

func TestEdgePairDoubling(t *testing.T) {
	g := New()
	parent := g.AddVertex("parent", pose.Identity())
	child := g.AddVertex("child", pose.Translate(0, 1, 0))
	g.AddEdgePair(parent, child)

	require.Len(t, g.Edges(), 2)

	up, ok := g.EdgeFromTo(child, parent)
	require.True(t, ok)
	assert.Equal(t, 1, up.Sign())
	assert.Equal(t, child, up.Child())

	down, ok := g.EdgeFromTo(parent, child)
	require.True(t, ok)
	assert.Equal(t, -1, down.Sign())
	assert.Equal(t, child, down.Child())
}

func TestAttachEdgeSingleDirection(t *testing.T) {
	g := New()
	parent := g.AddVertex("parent", pose.Identity())
	child := g.AddVertex("child", pose.Identity())
	g.AddAttachEdge(child, parent)

	require.Len(t, g.Edges(), 1)
	assert.True(t, g.HasEdgeFromTo(child, parent))
	assert.False(t, g.HasEdgeFromTo(parent, child))
	assert.True(t, g.HasEdgeBetween(parent, child))
}

func TestScopedResolveFallbackChain(t *testing.T) {
	world := NewScoped("world")
	g := world.Graph()

	worldFrame := g.AddVertex("anchor", pose.Identity())
	_ = worldFrame

	modelID := g.AddVertex("robot", pose.Identity())
	model := world.ChildScope("robot", modelID)
	armID := g.AddVertex(model.Qualify("arm"), pose.Identity())

	nestedID := g.AddVertex(model.Qualify("gripper"), pose.Identity())
	nested := model.ChildScope("gripper", nestedID)

	t.Run("own scope first", func(t *testing.T) {
		id, ok := model.Resolve("arm")
		require.True(t, ok)
		assert.Equal(t, armID, id)
	})

	t.Run("falls back to enclosing scope", func(t *testing.T) {
		id, ok := nested.Resolve("arm")
		require.True(t, ok)
		assert.Equal(t, armID, id)

		id, ok = nested.Resolve("anchor")
		require.True(t, ok)
		assert.Equal(t, worldFrame, id)
	})

	t.Run("empty name is the scope root", func(t *testing.T) {
		id, ok := model.Resolve("")
		require.True(t, ok)
		assert.Equal(t, modelID, id)

		id, ok = world.Resolve("")
		require.True(t, ok)
		assert.Equal(t, world.Root(), id)
	})

	t.Run("qualified name from outer scope", func(t *testing.T) {
		id, ok := world.Resolve("robot::arm")
		require.True(t, ok)
		assert.Equal(t, armID, id)
	})

	t.Run("unknown name", func(t *testing.T) {
		_, ok := nested.Resolve("nonexistent")
		assert.False(t, ok)
	})
}

func TestGraphDirectedInterface(t *testing.T) {
	g := New()
	a := g.AddVertex("a", pose.Identity())
	b := g.AddVertex("b", pose.Identity())
	c := g.AddVertex("c", pose.Identity())
	g.AddEdgePair(a, b)
	g.AddEdgePair(b, c)

	assert.Nil(t, g.Node(99))
	require.NotNil(t, g.Node(a))

	from := g.From(b)
	var neighbors []int64
	for from.Next() {
		neighbors = append(neighbors, from.Node().ID())
	}
	assert.ElementsMatch(t, []int64{a, c}, neighbors)
}
