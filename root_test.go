package sdf

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/roboscene/sdf/errors"
	"github.com/roboscene/sdf/pose"
)

const baseArmWorld = `
<sdf version="1.7">
  <world name="default">
    <frame name="base">
      <pose>1 0 0 0 0 0</pose>
    </frame>
    <frame name="arm" attached_to="base">
      <pose>0 1 0 0 0 0</pose>
    </frame>
  </world>
</sdf>`

func loadText(t *testing.T, text string) (*Root, errors.List) {
	t.Helper()
	var root Root
	return &root, root.LoadFromText(text)
}

func TestLoadVersionGate(t *testing.T) {
	t.Run("missing version", func(t *testing.T) {
		_, errs := loadText(t, `<sdf><world name="w"/></sdf>`)
		require.Len(t, errs, 1)
		assert.Equal(t, errors.CodeAttributeMissing, errs[0].Code)
	})

	t.Run("unsupported version", func(t *testing.T) {
		root, errs := loadText(t, `<sdf version="1.4"><world name="w"/></sdf>`)
		require.Len(t, errs, 1)
		assert.Equal(t, errors.CodeAttributeInvalid, errs[0].Code)
		// The version gate aborts before any graph work.
		assert.Equal(t, 0, root.WorldCount())
	})

	t.Run("wrong root element", func(t *testing.T) {
		_, errs := loadText(t, `<robot version="1.7"/>`)
		require.Len(t, errs, 1)
		assert.Equal(t, errors.CodeElementIncorrectType, errs[0].Code)
	})

	t.Run("supported version", func(t *testing.T) {
		root, errs := loadText(t, `<sdf version="1.7"><world name="w"/></sdf>`)
		assert.Empty(t, errs)
		assert.Equal(t, ProtocolVersion, root.Version())
		require.Equal(t, 1, root.WorldCount())
		assert.Equal(t, "w", root.WorldByIndex(0).Name())
	})
}

func TestLoadFromTextParseFailure(t *testing.T) {
	_, errs := loadText(t, `<sdf version="1.7">`)
	require.Len(t, errs, 1)
	assert.Equal(t, errors.CodeStringRead, errs[0].Code)
}

func TestLoadFromPath(t *testing.T) {
	t.Run("valid file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "world.sdf")
		require.NoError(t, os.WriteFile(path, []byte(baseArmWorld), 0o644))

		var root Root
		errs := root.LoadFromPath(path)
		assert.Empty(t, errs)
		assert.Equal(t, 1, root.WorldCount())
	})

	t.Run("missing file", func(t *testing.T) {
		var root Root
		errs := root.LoadFromPath(filepath.Join(t.TempDir(), "nonexistent.sdf"))
		require.Len(t, errs, 1)
		assert.Equal(t, errors.CodeFileRead, errs[0].Code)
	})

	t.Run("unparsable file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "broken.sdf")
		require.NoError(t, os.WriteFile(path, []byte("<sdf version='1.7'>"), 0o644))

		var root Root
		errs := root.LoadFromPath(path)
		require.Len(t, errs, 1)
		assert.Equal(t, errors.CodeFileRead, errs[0].Code)
	})
}

func TestPoseOfReferenceScene(t *testing.T) {
	root, errs := loadText(t, baseArmWorld)
	require.Empty(t, errs)
	world := root.WorldByIndex(0)
	require.NotNil(t, world)

	cases := []struct {
		name              string
		frame, relativeTo string
		want              pose.Pose
	}{
		{name: "arm in root", frame: "arm", relativeTo: "world", want: pose.Translate(1, 1, 0)},
		{name: "arm in base", frame: "arm", relativeTo: "base", want: pose.Translate(0, 1, 0)},
		{name: "base in arm", frame: "base", relativeTo: "arm", want: pose.Translate(0, -1, 0)},
		{name: "empty name is scope root", frame: "arm", relativeTo: "", want: pose.Translate(1, 1, 0)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := world.PoseOf(tc.frame, tc.relativeTo)
			require.NoError(t, err)
			assert.True(t, pose.ApproxEqual(got, tc.want, 1e-12),
				"PoseOf(%s,%s) = %+v, want %+v", tc.frame, tc.relativeTo, got, tc.want)
		})
	}

	t.Run("self pose is identity", func(t *testing.T) {
		for _, frame := range []string{"world", "base", "arm"} {
			got, err := world.PoseOf(frame, frame)
			require.NoError(t, err)
			assert.True(t, pose.ApproxEqual(got, pose.Identity(), 1e-12))
		}
	})

	t.Run("round trip composes to identity", func(t *testing.T) {
		forward, err := world.PoseOf("arm", "base")
		require.NoError(t, err)
		backward, err := world.PoseOf("base", "arm")
		require.NoError(t, err)
		assert.True(t, pose.ApproxEqual(pose.Mul(forward, backward), pose.Identity(), 1e-9))
	})

	t.Run("unknown frame", func(t *testing.T) {
		_, err := world.PoseOf("nonexistent", "world")
		require.Error(t, err)
		list, ok := errors.AsList(err)
		require.True(t, ok)
		assert.Equal(t, errors.CodeFrameNotFound, list[0].Code)
	})
}

func TestLoadDeterministic(t *testing.T) {
	first, errs := loadText(t, baseArmWorld)
	require.Empty(t, errs)
	second, errs := loadText(t, baseArmWorld)
	require.Empty(t, errs)

	a, err := first.WorldByIndex(0).PoseOf("arm", "world")
	require.NoError(t, err)
	b, err := second.WorldByIndex(0).PoseOf("arm", "world")
	require.NoError(t, err)
	assert.Equal(t, a, b, "identical input must resolve to bit-identical poses")
}

func TestLoadDuplicateFrameName(t *testing.T) {
	root, errs := loadText(t, `
<sdf version="1.7">
  <world name="default">
    <frame name="dup"><pose>1 0 0 0 0 0</pose></frame>
    <frame name="dup"><pose>2 0 0 0 0 0</pose></frame>
  </world>
</sdf>`)

	want := []errors.Code{errors.CodeDuplicateName, errors.CodeElementInvalid}
	if diff := cmp.Diff(want, errs.Codes()); diff != "" {
		t.Fatalf("error codes mismatch (-want +got):\n%s", diff)
	}

	// The first declaration wins name lookups.
	got, err := root.WorldByIndex(0).PoseOf("dup", "world")
	require.NoError(t, err)
	assert.True(t, pose.ApproxEqual(got, pose.Translate(1, 0, 0), 1e-12))
}

func TestLoadFrameNotFoundFallsBackToRoot(t *testing.T) {
	root, errs := loadText(t, `
<sdf version="1.7">
  <world name="default">
    <frame name="orphan" attached_to="ghost">
      <pose>5 0 0 0 0 0</pose>
    </frame>
  </world>
</sdf>`)

	want := []errors.Code{errors.CodeFrameNotFound, errors.CodeElementInvalid}
	if diff := cmp.Diff(want, errs.Codes()); diff != "" {
		t.Fatalf("error codes mismatch (-want +got):\n%s", diff)
	}

	// Best-effort fallback: the orphan hangs off the scope root.
	got, err := root.WorldByIndex(0).PoseOf("orphan", "world")
	require.NoError(t, err)
	assert.True(t, pose.ApproxEqual(got, pose.Translate(5, 0, 0), 1e-12))
}

func TestLoadAttachedToCycle(t *testing.T) {
	root, errs := loadText(t, `
<sdf version="1.7">
  <world name="default">
    <frame name="a" attached_to="b"/>
    <frame name="b" attached_to="a"/>
  </world>
</sdf>`)

	var cycles int
	for _, e := range errs {
		if e.Code == errors.CodeFrameGraphCycle {
			cycles++
		}
	}
	assert.NotZero(t, cycles)

	// The cyclic frames are disconnected from the scope root in the
	// relative-to graph: pose queries fail cleanly, never crash.
	_, err := root.WorldByIndex(0).PoseOf("a", "world")
	require.Error(t, err)
	list, ok := errors.AsList(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeNoPathBetweenFrames, list[0].Code)

	// Queries inside the cyclic component still resolve.
	_, err = root.WorldByIndex(0).PoseOf("a", "b")
	assert.NoError(t, err)
}

func TestLoadMutualRelativeTo(t *testing.T) {
	root, errs := loadText(t, `
<sdf version="1.7">
  <world name="default">
    <frame name="a"><pose relative_to="b">1 0 0 0 0 0</pose></frame>
    <frame name="b"><pose relative_to="a">0 1 0 0 0 0</pose></frame>
  </world>
</sdf>`)

	// Frames whose poses are declared relative to each other never reach
	// the scope root; the problem is reported at load time, not first
	// discovered by a failing query.
	var cycles int
	for _, e := range errs {
		if e.Code == errors.CodeFrameGraphCycle {
			cycles++
		}
	}
	assert.NotZero(t, cycles)

	_, err := root.WorldByIndex(0).PoseOf("a", "world")
	require.Error(t, err)
	list, ok := errors.AsList(err)
	require.True(t, ok)
	assert.Equal(t, errors.CodeNoPathBetweenFrames, list[0].Code)
}

func TestLoadDuplicateWorldName(t *testing.T) {
	root, errs := loadText(t, `
<sdf version="1.7">
  <world name="same"/>
  <world name="same"/>
</sdf>`)

	require.Len(t, errs, 1)
	assert.Equal(t, errors.CodeDuplicateName, errs[0].Code)
	// Both worlds are kept; sibling scopes load independently.
	assert.Equal(t, 2, root.WorldCount())
	assert.True(t, root.WorldNameExists("same"))
}

func TestLoadStandaloneLight(t *testing.T) {
	root, errs := loadText(t, `
<sdf version="1.7">
  <light name="sun" type="directional">
    <pose>0 0 10 0 0 0</pose>
  </light>
</sdf>`)
	require.Empty(t, errs)
	require.NotNil(t, root.Light())
	assert.Equal(t, "sun", root.Light().Name())
	assert.Equal(t, "directional", root.Light().Type())
}
