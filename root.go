// Package sdf resolves declarative robot and world descriptions into a
// validated object model and a set of named-coordinate-frame graphs that
// answer pose queries between arbitrary frames, including frames nested
// inside sub-models.
//
// Loading is best effort: malformed branches accumulate typed errors
// without aborting sibling branches, and a non-empty error list does not
// always mean the object model is unusable.
package sdf

import (
	"github.com/roboscene/sdf/errors"
	"github.com/roboscene/sdf/internal/framegraph"
)

// ProtocolVersion is the description format version this engine resolves.
// LoadFromTree requires the document to declare exactly this version.
const ProtocolVersion = "1.7"

// Root is the top of a loaded document: zero or more worlds, at most one
// standalone model, and at most one standalone light. Root owns the frame
// graphs built for every scope beneath it; nothing loaded under a Root
// outlives it or is queried against graphs from another Root.
type Root struct {
	version string
	worlds  []*World
	model   *Model
	light   *Light

	worldAttachedToGraphs []*framegraph.Scoped
	worldPoseGraphs       []*framegraph.Scoped
	modelAttachedToGraph  *framegraph.Scoped
	modelPoseGraph        *framegraph.Scoped
}

// Version returns the version declared by the loaded document.
func (r *Root) Version() string { return r.version }

// WorldCount returns the number of worlds.
func (r *Root) WorldCount() int { return len(r.worlds) }

// WorldByIndex returns a world by index, or nil if out of range.
func (r *Root) WorldByIndex(index int) *World {
	if index < 0 || index >= len(r.worlds) {
		return nil
	}
	return r.worlds[index]
}

// WorldByName returns the named world, or nil.
func (r *Root) WorldByName(name string) *World {
	if name == "" {
		return nil
	}
	for _, w := range r.worlds {
		if w.Name() == name {
			return w
		}
	}
	return nil
}

// WorldNameExists reports whether a world with the name exists.
func (r *Root) WorldNameExists(name string) bool {
	return r.WorldByName(name) != nil
}

// Model returns the standalone model, or nil if the document declared none.
func (r *Root) Model() *Model { return r.model }

// Light returns the standalone light, or nil if the document declared none.
func (r *Root) Light() *Light { return r.light }

// addWorldGraphs builds, validates and attaches both frame graphs for one
// world. Validation problems are appended to the returned list; the world
// and its graphs are kept regardless, so queries against the unaffected
// parts of a partially invalid scope still work.
func addWorldGraphs(r *Root, w *World) errors.List {
	var errs errors.List

	attachedTo, buildErrs := buildWorldFrameAttachedToGraph(w)
	errs = append(errs, buildErrs...)
	errs = append(errs, framegraph.ValidateFrameAttachedTo(attachedTo)...)
	r.worldAttachedToGraphs = append(r.worldAttachedToGraphs, attachedTo)

	poseGraph, buildErrs := buildWorldPoseRelativeToGraph(w)
	errs = append(errs, buildErrs...)
	errs = append(errs, framegraph.ValidatePoseRelativeTo(poseGraph)...)
	r.worldPoseGraphs = append(r.worldPoseGraphs, poseGraph)

	return errs
}

// addModelGraphs builds, validates and attaches both frame graphs for a
// standalone model.
func addModelGraphs(r *Root, m *Model) errors.List {
	var errs errors.List

	attachedTo, buildErrs := buildModelFrameAttachedToGraph(m)
	errs = append(errs, buildErrs...)
	errs = append(errs, framegraph.ValidateFrameAttachedTo(attachedTo)...)
	r.modelAttachedToGraph = attachedTo

	poseGraph, buildErrs := buildModelPoseRelativeToGraph(m)
	errs = append(errs, buildErrs...)
	errs = append(errs, framegraph.ValidatePoseRelativeTo(poseGraph)...)
	r.modelPoseGraph = poseGraph

	return errs
}
