package sdf

import (
	"github.com/roboscene/sdf/errors"
	"github.com/roboscene/sdf/internal/element"
	"github.com/roboscene/sdf/internal/framegraph"
	"github.com/roboscene/sdf/pose"
)

// Model is a named scope of links, joints, explicit frames and nested
// models. Frame names must be unique within the model; nested model
// frames are reachable from the owning scope under a "name::" prefix.
type Model struct {
	name             string
	static           bool
	selfCollide      bool
	allowAutoDisable bool
	enableWind       bool
	rawPose          pose.Pose
	poseRelativeTo   string
	links            []*Link
	joints           []*Joint
	frames           []*Frame
	models           []*Model

	// attachedToGraph and poseGraph are the scoped graphs built for this
	// model's scope, set once after build and validation and immutable
	// afterwards.
	attachedToGraph *framegraph.Scoped
	poseGraph       *framegraph.Scoped
}

func loadModel(node element.Node) (*Model, errors.List) {
	if node.TagName() != "model" {
		return nil, errors.List{errors.New(errors.CodeElementIncorrectType,
			"attempting to load a model, but the provided element is not a <model>")}
	}

	var errs errors.List
	model := &Model{allowAutoDisable: true}

	var ok bool
	if model.name, ok = loadName(node); !ok {
		errs = append(errs, errors.New(errors.CodeAttributeMissing,
			"a model name is required, but the name is not set"))
	}

	model.static = childBool(node, "static", false)
	model.selfCollide = childBool(node, "self_collide", false)
	model.allowAutoDisable = childBool(node, "allow_auto_disable", true)
	model.enableWind = childBool(node, "enable_wind", false)

	var poseErrs errors.List
	model.rawPose, model.poseRelativeTo, poseErrs = loadPose(node)
	errs = append(errs, poseErrs...)

	for elem := node.FirstChild("link"); elem != nil; elem = elem.NextSibling("link") {
		link, linkErrs := loadLink(elem)
		errs = append(errs, linkErrs...)
		if link != nil {
			model.links = append(model.links, link)
		}
	}

	for elem := node.FirstChild("joint"); elem != nil; elem = elem.NextSibling("joint") {
		joint, jointErrs := loadJoint(elem)
		errs = append(errs, jointErrs...)
		if joint != nil {
			model.joints = append(model.joints, joint)
		}
	}

	for elem := node.FirstChild("frame"); elem != nil; elem = elem.NextSibling("frame") {
		frame, frameErrs := loadFrame(elem)
		errs = append(errs, frameErrs...)
		if frame != nil {
			model.frames = append(model.frames, frame)
		}
	}

	for elem := node.FirstChild("model"); elem != nil; elem = elem.NextSibling("model") {
		nested, nestedErrs := loadModel(elem)
		errs = append(errs, nestedErrs...)
		if nested != nil {
			model.models = append(model.models, nested)
		}
	}

	return model, errs
}

// Name returns the model name.
func (m *Model) Name() string { return m.name }

// Static reports whether the model is specified as static.
func (m *Model) Static() bool { return m.static }

// SelfCollide reports whether the model should self-collide.
func (m *Model) SelfCollide() bool { return m.selfCollide }

// AllowAutoDisable reports whether the model may stop updating at rest.
func (m *Model) AllowAutoDisable() bool { return m.allowAutoDisable }

// EnableWind reports whether the model is subject to wind.
func (m *Model) EnableWind() bool { return m.enableWind }

// RawPose returns the declared pose of the model.
func (m *Model) RawPose() pose.Pose { return m.rawPose }

// PoseRelativeTo returns the declared parent frame name; empty means the
// owning scope root.
func (m *Model) PoseRelativeTo() string { return m.poseRelativeTo }

// LinkCount returns the number of links.
func (m *Model) LinkCount() int { return len(m.links) }

// LinkByIndex returns a link by index, or nil if out of range.
func (m *Model) LinkByIndex(index int) *Link {
	if index < 0 || index >= len(m.links) {
		return nil
	}
	return m.links[index]
}

// LinkByName returns the named link, or nil.
func (m *Model) LinkByName(name string) *Link {
	if name == "" {
		return nil
	}
	for _, l := range m.links {
		if l.Name() == name {
			return l
		}
	}
	return nil
}

// LinkNameExists reports whether a link with the name exists.
func (m *Model) LinkNameExists(name string) bool {
	return m.LinkByName(name) != nil
}

// JointCount returns the number of joints.
func (m *Model) JointCount() int { return len(m.joints) }

// JointByIndex returns a joint by index, or nil if out of range.
func (m *Model) JointByIndex(index int) *Joint {
	if index < 0 || index >= len(m.joints) {
		return nil
	}
	return m.joints[index]
}

// JointByName returns the named joint, or nil.
func (m *Model) JointByName(name string) *Joint {
	if name == "" {
		return nil
	}
	for _, j := range m.joints {
		if j.Name() == name {
			return j
		}
	}
	return nil
}

// JointNameExists reports whether a joint with the name exists.
func (m *Model) JointNameExists(name string) bool {
	return m.JointByName(name) != nil
}

// FrameCount returns the number of explicit frames.
func (m *Model) FrameCount() int { return len(m.frames) }

// FrameByIndex returns an explicit frame by index, or nil if out of range.
func (m *Model) FrameByIndex(index int) *Frame {
	if index < 0 || index >= len(m.frames) {
		return nil
	}
	return m.frames[index]
}

// FrameByName returns the named explicit frame, or nil.
func (m *Model) FrameByName(name string) *Frame {
	if name == "" {
		return nil
	}
	for _, f := range m.frames {
		if f.Name() == name {
			return f
		}
	}
	return nil
}

// ModelCount returns the number of nested models.
func (m *Model) ModelCount() int { return len(m.models) }

// ModelByIndex returns a nested model by index, or nil if out of range.
func (m *Model) ModelByIndex(index int) *Model {
	if index < 0 || index >= len(m.models) {
		return nil
	}
	return m.models[index]
}

// ModelByName returns the named nested model, or nil.
func (m *Model) ModelByName(name string) *Model {
	if name == "" {
		return nil
	}
	for _, nested := range m.models {
		if nested.Name() == name {
			return nested
		}
	}
	return nil
}

// PoseOf returns the pose of one frame expressed in another, both
// resolved in this model's scope first and then in enclosing scopes. An
// empty name resolves to the model frame itself.
func (m *Model) PoseOf(frame, relativeTo string) (pose.Pose, error) {
	if m.poseGraph == nil {
		return pose.Identity(), &errors.Error{
			Code:    errors.CodeElementInvalid,
			Message: "pose graph has not been built for this model",
		}
	}
	return framegraph.PoseBetween(m.poseGraph, frame, relativeTo)
}

func (m *Model) setAttachedToGraph(scope *framegraph.Scoped) {
	m.attachedToGraph = scope
}

func (m *Model) setPoseGraph(scope *framegraph.Scoped) {
	m.poseGraph = scope
	for _, l := range m.links {
		l.setPoseGraph(scope)
	}
}
