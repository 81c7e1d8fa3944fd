package sdf

import (
	"github.com/roboscene/sdf/errors"
	"github.com/roboscene/sdf/internal/element"
	"github.com/roboscene/sdf/internal/framegraph"
	"github.com/roboscene/sdf/pose"
)

// World is the outermost naming scope: models, explicit frames and lights
// declared under one world element share one pair of frame graphs rooted
// at the implicit "world" frame.
type World struct {
	name   string
	models []*Model
	frames []*Frame
	lights []*Light

	attachedToGraph *framegraph.Scoped
	poseGraph       *framegraph.Scoped
}

func loadWorld(node element.Node) (*World, errors.List) {
	if node.TagName() != "world" {
		return nil, errors.List{errors.New(errors.CodeElementIncorrectType,
			"attempting to load a world, but the provided element is not a <world>")}
	}

	var errs errors.List
	world := &World{}

	var ok bool
	if world.name, ok = loadName(node); !ok {
		errs = append(errs, errors.New(errors.CodeAttributeMissing,
			"a world name is required, but the name is not set"))
	}

	for elem := node.FirstChild("model"); elem != nil; elem = elem.NextSibling("model") {
		model, modelErrs := loadModel(elem)
		errs = append(errs, modelErrs...)
		if model != nil {
			world.models = append(world.models, model)
		}
	}

	for elem := node.FirstChild("frame"); elem != nil; elem = elem.NextSibling("frame") {
		frame, frameErrs := loadFrame(elem)
		errs = append(errs, frameErrs...)
		if frame != nil {
			world.frames = append(world.frames, frame)
		}
	}

	for elem := node.FirstChild("light"); elem != nil; elem = elem.NextSibling("light") {
		light, lightErrs := loadLight(elem)
		errs = append(errs, lightErrs...)
		if light != nil {
			world.lights = append(world.lights, light)
		}
	}

	return world, errs
}

// Name returns the world name.
func (w *World) Name() string { return w.name }

// ModelCount returns the number of models.
func (w *World) ModelCount() int { return len(w.models) }

// ModelByIndex returns a model by index, or nil if out of range.
func (w *World) ModelByIndex(index int) *Model {
	if index < 0 || index >= len(w.models) {
		return nil
	}
	return w.models[index]
}

// ModelByName returns the named model, or nil.
func (w *World) ModelByName(name string) *Model {
	if name == "" {
		return nil
	}
	for _, m := range w.models {
		if m.Name() == name {
			return m
		}
	}
	return nil
}

// ModelNameExists reports whether a model with the name exists.
func (w *World) ModelNameExists(name string) bool {
	return w.ModelByName(name) != nil
}

// FrameCount returns the number of explicit frames.
func (w *World) FrameCount() int { return len(w.frames) }

// FrameByIndex returns an explicit frame by index, or nil if out of range.
func (w *World) FrameByIndex(index int) *Frame {
	if index < 0 || index >= len(w.frames) {
		return nil
	}
	return w.frames[index]
}

// FrameByName returns the named explicit frame, or nil.
func (w *World) FrameByName(name string) *Frame {
	if name == "" {
		return nil
	}
	for _, f := range w.frames {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// LightCount returns the number of lights.
func (w *World) LightCount() int { return len(w.lights) }

// LightByIndex returns a light by index, or nil if out of range.
func (w *World) LightByIndex(index int) *Light {
	if index < 0 || index >= len(w.lights) {
		return nil
	}
	return w.lights[index]
}

// LightByName returns the named light, or nil.
func (w *World) LightByName(name string) *Light {
	if name == "" {
		return nil
	}
	for _, l := range w.lights {
		if l.Name() == name {
			return l
		}
	}
	return nil
}

// PoseOf returns the pose of one frame expressed in another, resolved in
// the world scope. Frames in nested scopes are addressed with qualified
// names such as "robot::arm". An empty name resolves to the world frame.
func (w *World) PoseOf(frame, relativeTo string) (pose.Pose, error) {
	if w.poseGraph == nil {
		return pose.Identity(), &errors.Error{
			Code:    errors.CodeElementInvalid,
			Message: "pose graph has not been built for this world",
		}
	}
	return framegraph.PoseBetween(w.poseGraph, frame, relativeTo)
}

func (w *World) setAttachedToGraph(scope *framegraph.Scoped) {
	w.attachedToGraph = scope
}

func (w *World) setPoseGraph(scope *framegraph.Scoped) {
	w.poseGraph = scope
}
