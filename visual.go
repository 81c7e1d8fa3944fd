package sdf

import (
	"github.com/roboscene/sdf/errors"
	"github.com/roboscene/sdf/internal/element"
	"github.com/roboscene/sdf/pose"
)

// Visual is a rendering payload on a link. Visuals are passive leaves:
// they expose a name and a pose declaration but own no frame graph state.
type Visual struct {
	name           string
	rawPose        pose.Pose
	poseRelativeTo string
	geometry       *Geometry
}

func loadVisual(node element.Node) (*Visual, errors.List) {
	if node.TagName() != "visual" {
		return nil, errors.List{errors.New(errors.CodeElementIncorrectType,
			"attempting to load a visual, but the provided element is not a <visual>")}
	}

	var errs errors.List
	visual := &Visual{}

	var ok bool
	if visual.name, ok = loadName(node); !ok {
		errs = append(errs, errors.New(errors.CodeAttributeMissing,
			"a visual name is required, but the name is not set"))
	}

	var poseErrs errors.List
	visual.rawPose, visual.poseRelativeTo, poseErrs = loadPose(node)
	errs = append(errs, poseErrs...)

	if geomElem := node.FirstChild("geometry"); geomElem != nil {
		geom, geomErrs := loadGeometry(geomElem)
		errs = append(errs, geomErrs...)
		visual.geometry = geom
	}

	return visual, errs
}

// Name returns the visual name.
func (v *Visual) Name() string { return v.name }

// RawPose returns the declared pose of the visual.
func (v *Visual) RawPose() pose.Pose { return v.rawPose }

// PoseRelativeTo returns the declared parent frame name; empty means the
// owning link.
func (v *Visual) PoseRelativeTo() string { return v.poseRelativeTo }

// Geometry returns the shape, or nil when the visual declared none.
func (v *Visual) Geometry() *Geometry { return v.geometry }
