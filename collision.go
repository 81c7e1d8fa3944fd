package sdf

import (
	"github.com/roboscene/sdf/errors"
	"github.com/roboscene/sdf/internal/element"
	"github.com/roboscene/sdf/pose"
)

// Collision is a collision payload on a link. Like Visual it is a passive
// leaf with no frame graph state of its own.
type Collision struct {
	name           string
	rawPose        pose.Pose
	poseRelativeTo string
	geometry       *Geometry
}

func loadCollision(node element.Node) (*Collision, errors.List) {
	if node.TagName() != "collision" {
		return nil, errors.List{errors.New(errors.CodeElementIncorrectType,
			"attempting to load a collision, but the provided element is not a <collision>")}
	}

	var errs errors.List
	collision := &Collision{}

	var ok bool
	if collision.name, ok = loadName(node); !ok {
		errs = append(errs, errors.New(errors.CodeAttributeMissing,
			"a collision name is required, but the name is not set"))
	}

	var poseErrs errors.List
	collision.rawPose, collision.poseRelativeTo, poseErrs = loadPose(node)
	errs = append(errs, poseErrs...)

	if geomElem := node.FirstChild("geometry"); geomElem != nil {
		geom, geomErrs := loadGeometry(geomElem)
		errs = append(errs, geomErrs...)
		collision.geometry = geom
	}

	return collision, errs
}

// Name returns the collision name.
func (c *Collision) Name() string { return c.name }

// RawPose returns the declared pose of the collision.
func (c *Collision) RawPose() pose.Pose { return c.rawPose }

// PoseRelativeTo returns the declared parent frame name; empty means the
// owning link.
func (c *Collision) PoseRelativeTo() string { return c.poseRelativeTo }

// Geometry returns the shape, or nil when the collision declared none.
func (c *Collision) Geometry() *Geometry { return c.geometry }
