package sdf

import (
	"github.com/roboscene/sdf/errors"
	"github.com/roboscene/sdf/internal/element"
	"github.com/roboscene/sdf/pose"
)

// Frame is an explicitly declared coordinate frame. It is rigidly
// attached to the frame named by attached_to, and its declared pose is
// relative to the relative_to frame, falling back to the attached_to
// frame when relative_to is not set.
type Frame struct {
	name           string
	attachedTo     string
	rawPose        pose.Pose
	poseRelativeTo string
}

func loadFrame(node element.Node) (*Frame, errors.List) {
	if node.TagName() != "frame" {
		return nil, errors.List{errors.New(errors.CodeElementIncorrectType,
			"attempting to load a frame, but the provided element is not a <frame>")}
	}

	var errs errors.List
	frame := &Frame{}

	var ok bool
	if frame.name, ok = loadName(node); !ok {
		errs = append(errs, errors.New(errors.CodeAttributeMissing,
			"a frame name is required, but the name is not set"))
	}

	frame.attachedTo, _ = node.Attribute("attached_to", "")

	var poseErrs errors.List
	frame.rawPose, frame.poseRelativeTo, poseErrs = loadPose(node)
	errs = append(errs, poseErrs...)

	return frame, errs
}

// Name returns the frame name.
func (f *Frame) Name() string { return f.name }

// AttachedTo returns the name of the frame this frame is rigidly attached
// to; empty means the scope root.
func (f *Frame) AttachedTo() string { return f.attachedTo }

// RawPose returns the declared pose of the frame.
func (f *Frame) RawPose() pose.Pose { return f.rawPose }

// PoseRelativeTo returns the declared parent frame name for the pose.
func (f *Frame) PoseRelativeTo() string { return f.poseRelativeTo }

// poseParent returns the effective relative-to frame name.
func (f *Frame) poseParent() string {
	if f.poseRelativeTo != "" {
		return f.poseRelativeTo
	}
	return f.attachedTo
}
