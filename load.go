package sdf

import (
	"os"
	"strings"

	"github.com/roboscene/sdf/errors"
	"github.com/roboscene/sdf/internal/element"
)

// LoadFromPath reads a description file and loads it. A path that cannot
// be opened or parsed yields a single FileRead error and no object model.
func (r *Root) LoadFromPath(path string) errors.List {
	f, err := os.Open(path)
	if err != nil {
		return errors.List{errors.Newf(errors.CodeFileRead,
			"unable to read file [%s]: %v", path, err)}
	}
	defer f.Close()

	node, err := element.Parse(f)
	if err != nil {
		return errors.List{errors.Newf(errors.CodeFileRead,
			"unable to parse file [%s]: %v", path, err)}
	}
	return r.LoadFromTree(node)
}

// LoadFromText loads a description from raw text. Text that cannot be
// parsed yields a single StringRead error and no object model.
func (r *Root) LoadFromText(text string) errors.List {
	node, err := element.Parse(strings.NewReader(text))
	if err != nil {
		return errors.List{errors.Newf(errors.CodeStringRead,
			"unable to parse string: %v", err)}
	}
	return r.LoadFromTree(node)
}

// LoadFromTree loads a description from an already parsed element tree.
// The root element must be an <sdf> declaring exactly ProtocolVersion;
// version problems are fatal and abort before any graph work begins.
// All other problems accumulate: loading of sibling scopes continues
// regardless of one scope's failure, and each world or model scope has
// both frame graphs built and validated before it becomes queryable.
func (r *Root) LoadFromTree(node element.Node) errors.List {
	var errs errors.List

	if node == nil || node.TagName() != "sdf" {
		return errors.List{errors.New(errors.CodeElementIncorrectType,
			"attempting to load a root, but the provided element is not an <sdf>")}
	}

	version, ok := node.Attribute("version", "")
	if !ok {
		return errors.List{errors.New(errors.CodeAttributeMissing,
			"the description does not declare a version")}
	}
	if version != ProtocolVersion {
		return errors.List{errors.Newf(errors.CodeAttributeInvalid,
			"version attribute [%s] should match the supported version [%s]",
			version, ProtocolVersion)}
	}
	r.version = version

	for elem := node.FirstChild("world"); elem != nil; elem = elem.NextSibling("world") {
		world, worldErrs := loadWorld(elem)
		if world == nil {
			errs = append(errs, worldErrs...)
			continue
		}

		worldErrs = append(worldErrs, addWorldGraphs(r, world)...)

		if len(worldErrs) == 0 {
			if r.WorldNameExists(world.Name()) {
				errs = append(errs, errors.Newf(errors.CodeDuplicateName,
					"world with name [%s] already exists, each world must have a unique name",
					world.Name()))
			}
		} else {
			errs = append(errs, worldErrs...)
			errs = append(errs, errors.New(errors.CodeElementInvalid,
				"failed to load a world"))
		}
		r.worlds = append(r.worlds, world)
	}

	if elem := node.FirstChild("model"); elem != nil {
		model, modelErrs := loadModel(elem)
		errs = append(errs, modelErrs...)
		if model != nil {
			errs = append(errs, addModelGraphs(r, model)...)
			r.model = model
		}
	}

	if elem := node.FirstChild("light"); elem != nil {
		light, lightErrs := loadLight(elem)
		errs = append(errs, lightErrs...)
		r.light = light
	}

	return errs
}
