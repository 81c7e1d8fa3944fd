package framegraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roboscene/sdf/errors"
	"github.com/roboscene/sdf/pose"
)

// buildBaseArm wires the reference scene: base at translation (1,0,0)
// from the scope root, arm at translation (0,1,0) from base.
func buildBaseArm(t *testing.T) *Scoped {
	t.Helper()
	scope := NewScoped("world")
	g := scope.Graph()
	base := g.AddVertex("base", pose.Translate(1, 0, 0))
	arm := g.AddVertex("arm", pose.Translate(0, 1, 0))
	g.AddEdgePair(scope.Root(), base)
	g.AddEdgePair(base, arm)
	require.Empty(t, ValidatePoseRelativeTo(scope))
	return scope
}

func TestPoseBetweenSameFrame(t *testing.T) {
	scope := buildBaseArm(t)
	for _, name := range []string{"world", "base", "arm", ""} {
		got, err := PoseBetween(scope, name, name)
		require.NoError(t, err)
		assert.True(t, pose.ApproxEqual(got, pose.Identity(), 1e-12))
	}
}

func TestPoseBetweenComposesChains(t *testing.T) {
	scope := buildBaseArm(t)

	cases := []struct {
		name         string
		source, dest string
		want         pose.Pose
	}{
		{name: "arm in root", source: "arm", dest: "world", want: pose.Translate(1, 1, 0)},
		{name: "arm in base", source: "arm", dest: "base", want: pose.Translate(0, 1, 0)},
		{name: "base in arm", source: "base", dest: "arm", want: pose.Translate(0, -1, 0)},
		{name: "base in root", source: "base", dest: "world", want: pose.Translate(1, 0, 0)},
		{name: "root in arm", source: "world", dest: "arm", want: pose.Translate(-1, -1, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := PoseBetween(scope, tc.source, tc.dest)
			require.NoError(t, err)
			assert.True(t, pose.ApproxEqual(got, tc.want, 1e-12),
				"PoseBetween(%s,%s) = %+v, want %+v", tc.source, tc.dest, got, tc.want)
		})
	}
}

func TestPoseBetweenRoundTrip(t *testing.T) {
	scope := NewScoped("world")
	g := scope.Graph()
	base := g.AddVertex("base", pose.New(1, 2, 3, 0.3, -0.2, 0.9))
	arm := g.AddVertex("arm", pose.New(0, 1, 0, -0.5, 0.1, 0))
	g.AddEdgePair(scope.Root(), base)
	g.AddEdgePair(base, arm)

	forward, err := PoseBetween(scope, "arm", "world")
	require.NoError(t, err)
	backward, err := PoseBetween(scope, "world", "arm")
	require.NoError(t, err)

	assert.True(t, pose.ApproxEqual(pose.Mul(forward, backward), pose.Identity(), 1e-9))
	assert.True(t, pose.ApproxEqual(pose.Mul(backward, forward), pose.Identity(), 1e-9))
}

func TestPoseBetweenFrameNotFound(t *testing.T) {
	scope := buildBaseArm(t)

	_, err := PoseBetween(scope, "nonexistent", "world")
	require.Error(t, err)
	list, ok := errors.AsList(err)
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, errors.CodeFrameNotFound, list[0].Code)

	_, err = PoseBetween(scope, "world", "nonexistent")
	require.Error(t, err)
}

func TestPoseBetweenNoPath(t *testing.T) {
	scope := buildBaseArm(t)
	// An island vertex with no edges is unreachable from the rest.
	scope.Graph().AddVertex("island", pose.Identity())

	_, err := PoseBetween(scope, "island", "world")
	require.Error(t, err)
	list, ok := errors.AsList(err)
	require.True(t, ok)
	require.Len(t, list, 1)
	assert.Equal(t, errors.CodeNoPathBetweenFrames, list[0].Code)
}

func TestPoseBetweenDeterministic(t *testing.T) {
	scope := buildBaseArm(t)
	first, err := PoseBetween(scope, "arm", "world")
	require.NoError(t, err)
	second, err := PoseBetween(scope, "arm", "world")
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
