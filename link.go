package sdf

import (
	"github.com/roboscene/sdf/errors"
	"github.com/roboscene/sdf/internal/element"
	"github.com/roboscene/sdf/internal/framegraph"
	"github.com/roboscene/sdf/pose"
)

// Link is a rigid body in a model. Its implicit frame participates in the
// model's frame graphs.
type Link struct {
	name           string
	rawPose        pose.Pose
	poseRelativeTo string
	visuals        []*Visual
	collisions     []*Collision
	inertial       Inertial

	// poseGraph is the scoped relative-to graph of the owning model, set
	// once after the graphs for the scope are built and validated.
	poseGraph *framegraph.Scoped
}

func loadLink(node element.Node) (*Link, errors.List) {
	if node.TagName() != "link" {
		return nil, errors.List{errors.New(errors.CodeElementIncorrectType,
			"attempting to load a link, but the provided element is not a <link>")}
	}

	var errs errors.List
	link := &Link{inertial: defaultInertial()}

	var ok bool
	if link.name, ok = loadName(node); !ok {
		errs = append(errs, errors.New(errors.CodeAttributeMissing,
			"a link name is required, but the name is not set"))
	}

	var poseErrs errors.List
	link.rawPose, link.poseRelativeTo, poseErrs = loadPose(node)
	errs = append(errs, poseErrs...)

	for elem := node.FirstChild("visual"); elem != nil; elem = elem.NextSibling("visual") {
		visual, visualErrs := loadVisual(elem)
		errs = append(errs, visualErrs...)
		if visual != nil {
			link.visuals = append(link.visuals, visual)
		}
	}

	for elem := node.FirstChild("collision"); elem != nil; elem = elem.NextSibling("collision") {
		collision, collisionErrs := loadCollision(elem)
		errs = append(errs, collisionErrs...)
		if collision != nil {
			link.collisions = append(link.collisions, collision)
		}
	}

	if inertialElem := node.FirstChild("inertial"); inertialElem != nil {
		link.inertial = loadInertial(inertialElem)
	}
	if !link.inertial.Valid() {
		errs = append(errs, errors.Newf(errors.CodeLinkInertiaInvalid,
			"a link named [%s] has invalid inertia", link.name))
	}

	return link, errs
}

// Name returns the link name.
func (l *Link) Name() string { return l.name }

// RawPose returns the declared pose of the link.
func (l *Link) RawPose() pose.Pose { return l.rawPose }

// PoseRelativeTo returns the declared parent frame name; empty means the
// scope root.
func (l *Link) PoseRelativeTo() string { return l.poseRelativeTo }

// VisualCount returns the number of visuals.
func (l *Link) VisualCount() int { return len(l.visuals) }

// VisualByIndex returns a visual by index, or nil if out of range.
func (l *Link) VisualByIndex(index int) *Visual {
	if index < 0 || index >= len(l.visuals) {
		return nil
	}
	return l.visuals[index]
}

// VisualByName returns the named visual, or nil.
func (l *Link) VisualByName(name string) *Visual {
	if name == "" {
		return nil
	}
	for _, v := range l.visuals {
		if v.Name() == name {
			return v
		}
	}
	return nil
}

// VisualNameExists reports whether a visual with the name exists.
func (l *Link) VisualNameExists(name string) bool {
	return l.VisualByName(name) != nil
}

// CollisionCount returns the number of collisions.
func (l *Link) CollisionCount() int { return len(l.collisions) }

// CollisionByIndex returns a collision by index, or nil if out of range.
func (l *Link) CollisionByIndex(index int) *Collision {
	if index < 0 || index >= len(l.collisions) {
		return nil
	}
	return l.collisions[index]
}

// CollisionByName returns the named collision, or nil.
func (l *Link) CollisionByName(name string) *Collision {
	if name == "" {
		return nil
	}
	for _, c := range l.collisions {
		if c.Name() == name {
			return c
		}
	}
	return nil
}

// CollisionNameExists reports whether a collision with the name exists.
func (l *Link) CollisionNameExists(name string) bool {
	return l.CollisionByName(name) != nil
}

// Inertial returns the inertial information of the link.
func (l *Link) Inertial() Inertial { return l.inertial }

// PoseOf returns the pose of the link frame expressed in another frame of
// the owning scope. An empty relativeTo resolves to the scope root.
func (l *Link) PoseOf(relativeTo string) (pose.Pose, error) {
	if l.poseGraph == nil {
		return pose.Identity(), &errors.Error{
			Code:    errors.CodeElementInvalid,
			Message: "pose graph has not been built for this link",
		}
	}
	return framegraph.PoseBetween(l.poseGraph, l.name, relativeTo)
}

func (l *Link) setPoseGraph(scope *framegraph.Scoped) {
	l.poseGraph = scope
}
