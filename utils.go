package sdf

import (
	"strconv"
	"strings"

	"gonum.org/v1/gonum/spatial/r3"

	"github.com/roboscene/sdf/errors"
	"github.com/roboscene/sdf/internal/element"
	"github.com/roboscene/sdf/pose"
)

// loadName reads the required name attribute. The empty placeholder never
// matches a lookup by name.
func loadName(node element.Node) (string, bool) {
	return node.Attribute("name", "")
}

// loadPose reads the optional pose child element: six space-separated
// doubles "x y z roll pitch yaw" with an optional relative_to attribute.
// Absence defaults to the identity transform and an empty parent frame,
// which the graph builders interpret as "attach to scope root".
func loadPose(node element.Node) (pose.Pose, string, errors.List) {
	elem := node.FirstChild("pose")
	if elem == nil {
		return pose.Identity(), "", nil
	}
	relativeTo, _ := elem.Attribute("relative_to", "")

	fields := strings.Fields(elem.Text())
	if len(fields) == 0 {
		return pose.Identity(), relativeTo, nil
	}
	if len(fields) != 6 {
		return pose.Identity(), relativeTo, errors.List{errors.Newf(errors.CodeAttributeInvalid,
			"a pose requires 6 values, but %d were supplied", len(fields))}
	}
	values := make([]float64, 6)
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return pose.Identity(), relativeTo, errors.List{errors.Newf(errors.CodeAttributeInvalid,
				"a pose value [%s] is not a number", f)}
		}
		values[i] = v
	}
	p := pose.New(values[0], values[1], values[2], values[3], values[4], values[5])
	return p, relativeTo, nil
}

// childBool reads a boolean child element value, returning def when the
// child is absent or malformed.
func childBool(node element.Node, tag string, def bool) bool {
	elem := node.FirstChild(tag)
	if elem == nil {
		return def
	}
	v, err := strconv.ParseBool(elem.Text())
	if err != nil {
		return def
	}
	return v
}

// childFloat reads a floating point child element value, returning def
// when the child is absent or malformed.
func childFloat(node element.Node, tag string, def float64) float64 {
	elem := node.FirstChild(tag)
	if elem == nil {
		return def
	}
	v, err := strconv.ParseFloat(elem.Text(), 64)
	if err != nil {
		return def
	}
	return v
}

// childVec3 reads a three-component vector child element value.
func childVec3(node element.Node, tag string, def r3.Vec) r3.Vec {
	elem := node.FirstChild(tag)
	if elem == nil {
		return def
	}
	fields := strings.Fields(elem.Text())
	if len(fields) != 3 {
		return def
	}
	var out [3]float64
	for i, f := range fields {
		v, err := strconv.ParseFloat(f, 64)
		if err != nil {
			return def
		}
		out[i] = v
	}
	return r3.Vec{X: out[0], Y: out[1], Z: out[2]}
}

// childText reads a string child element value.
func childText(node element.Node, tag, def string) string {
	elem := node.FirstChild(tag)
	if elem == nil {
		return def
	}
	return elem.Text()
}
