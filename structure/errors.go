// Copyright the yamss-go authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package structure

import "github.com/dynasolve/yamss/yerr"

func arityError(key int, shape Shape, got int) error {
	return yerr.New(yerr.DimensionError, "element.new",
		"element %d of shape %s requires %d vertices, got %d", key, shape, shape.Arity(), got)
}

func duplicateNode(key int) error {
	return yerr.New(yerr.DuplicateKey, "structure.add_node", "node %d already exists", key)
}

func duplicateElement(key int) error {
	return yerr.New(yerr.DuplicateKey, "structure.add_element", "element %d already exists", key)
}

func duplicateLoad(key int) error {
	return yerr.New(yerr.DuplicateKey, "structure.add_load", "load %d already exists", key)
}

func unknownNode(key int) error {
	return yerr.New(yerr.UnknownKey, "structure.get_node", "node %d does not exist", key)
}

func unknownElement(key int) error {
	return yerr.New(yerr.UnknownKey, "structure.get_element", "element %d does not exist", key)
}

func unknownLoad(key int) error {
	return yerr.New(yerr.UnknownKey, "structure.get_load", "load %d does not exist", key)
}
