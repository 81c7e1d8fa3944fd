package sdf

import (
	"github.com/roboscene/sdf/errors"
	"github.com/roboscene/sdf/internal/element"
	"github.com/roboscene/sdf/pose"
)

// Light is a light source declared under a root or world element.
type Light struct {
	name           string
	lightType      string
	rawPose        pose.Pose
	poseRelativeTo string
}

func loadLight(node element.Node) (*Light, errors.List) {
	if node.TagName() != "light" {
		return nil, errors.List{errors.New(errors.CodeElementIncorrectType,
			"attempting to load a light, but the provided element is not a <light>")}
	}

	var errs errors.List
	light := &Light{}

	var ok bool
	if light.name, ok = loadName(node); !ok {
		errs = append(errs, errors.New(errors.CodeAttributeMissing,
			"a light name is required, but the name is not set"))
	}

	light.lightType, _ = node.Attribute("type", "point")

	var poseErrs errors.List
	light.rawPose, light.poseRelativeTo, poseErrs = loadPose(node)
	errs = append(errs, poseErrs...)

	return light, errs
}

// Name returns the light name.
func (l *Light) Name() string { return l.name }

// Type returns the light type, defaulting to "point".
func (l *Light) Type() string { return l.lightType }

// RawPose returns the declared pose of the light.
func (l *Light) RawPose() pose.Pose { return l.rawPose }

// PoseRelativeTo returns the declared parent frame name.
func (l *Light) PoseRelativeTo() string { return l.poseRelativeTo }
