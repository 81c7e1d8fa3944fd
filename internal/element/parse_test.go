package element

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sample = `
<sdf version="1.7">
  <world name="default">
    <model name="robot">
      <pose relative_to="anchor">1 2 3 0 0 0</pose>
      <link name="base"/>
      <link name="arm"/>
    </model>
    <frame name="anchor"/>
  </world>
</sdf>`

func parseSample(t *testing.T) Node {
	t.Helper()
	root, err := Parse(strings.NewReader(sample))
	require.NoError(t, err)
	return root
}

func TestParseNavigation(t *testing.T) {
	root := parseSample(t)
	assert.Equal(t, "sdf", root.TagName())
	assert.Nil(t, root.Parent())

	world := root.FirstChild("world")
	require.NotNil(t, world)
	assert.True(t, root.HasChild("world"))
	assert.False(t, root.HasChild("model"))

	model := world.FirstChild("model")
	require.NotNil(t, model)
	assert.Equal(t, "model", model.TagName())
	assert.Equal(t, "world", model.Parent().TagName())
}

func TestParseSiblingIteration(t *testing.T) {
	root := parseSample(t)
	model := root.FirstChild("world").FirstChild("model")

	var names []string
	for link := model.FirstChild("link"); link != nil; link = link.NextSibling("link") {
		name, _ := link.Attribute("name", "")
		names = append(names, name)
	}
	assert.Equal(t, []string{"base", "arm"}, names)

	// Sibling iteration skips elements with other tags.
	pose := model.FirstChild("pose")
	require.NotNil(t, pose)
	assert.Nil(t, pose.NextSibling("pose"))
}

func TestParseAttributes(t *testing.T) {
	root := parseSample(t)

	version, ok := root.Attribute("version", "")
	assert.True(t, ok)
	assert.Equal(t, "1.7", version)

	missing, ok := root.Attribute("nonexistent", "fallback")
	assert.False(t, ok)
	assert.Equal(t, "fallback", missing)
}

func TestParseText(t *testing.T) {
	root := parseSample(t)
	pose := root.FirstChild("world").FirstChild("model").FirstChild("pose")
	require.NotNil(t, pose)
	assert.Equal(t, "1 2 3 0 0 0", pose.Text())

	relativeTo, ok := pose.Attribute("relative_to", "")
	assert.True(t, ok)
	assert.Equal(t, "anchor", relativeTo)
}

func TestParseErrors(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{name: "empty input", input: ""},
		{name: "unclosed element", input: "<sdf><world>"},
		{name: "trailing element", input: "<sdf/><extra/>"},
		{name: "text outside root", input: "<sdf/>stray"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Parse(strings.NewReader(tc.input))
			assert.Error(t, err)
		})
	}
}
