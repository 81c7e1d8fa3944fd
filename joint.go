package sdf

import (
	"github.com/roboscene/sdf/errors"
	"github.com/roboscene/sdf/internal/element"
	"github.com/roboscene/sdf/pose"
)

// Joint connects a parent and a child link. Its implicit frame is rigidly
// attached to the child link, and its declared pose defaults to being
// relative to the child link as well.
type Joint struct {
	name           string
	jointType      string
	parentLinkName string
	childLinkName  string
	rawPose        pose.Pose
	poseRelativeTo string
}

func loadJoint(node element.Node) (*Joint, errors.List) {
	if node.TagName() != "joint" {
		return nil, errors.List{errors.New(errors.CodeElementIncorrectType,
			"attempting to load a joint, but the provided element is not a <joint>")}
	}

	var errs errors.List
	joint := &Joint{}

	var ok bool
	if joint.name, ok = loadName(node); !ok {
		errs = append(errs, errors.New(errors.CodeAttributeMissing,
			"a joint name is required, but the name is not set"))
	}

	joint.jointType, ok = node.Attribute("type", "")
	if !ok {
		errs = append(errs, errors.New(errors.CodeAttributeMissing,
			"a joint type is required, but the type is not set"))
	}

	joint.parentLinkName = childText(node, "parent", "")
	joint.childLinkName = childText(node, "child", "")

	var poseErrs errors.List
	joint.rawPose, joint.poseRelativeTo, poseErrs = loadPose(node)
	errs = append(errs, poseErrs...)

	return joint, errs
}

// Name returns the joint name.
func (j *Joint) Name() string { return j.name }

// Type returns the joint type string, for example "revolute" or "fixed".
func (j *Joint) Type() string { return j.jointType }

// ParentLinkName returns the name of the parent link.
func (j *Joint) ParentLinkName() string { return j.parentLinkName }

// ChildLinkName returns the name of the child link.
func (j *Joint) ChildLinkName() string { return j.childLinkName }

// RawPose returns the declared pose of the joint.
func (j *Joint) RawPose() pose.Pose { return j.rawPose }

// PoseRelativeTo returns the declared parent frame name; empty means the
// child link.
func (j *Joint) PoseRelativeTo() string { return j.poseRelativeTo }
