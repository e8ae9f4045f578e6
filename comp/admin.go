// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comp

import (
	"errors"

	"github.com/corvid-ui/corvid/dom"
	"github.com/corvid-ui/corvid/events"
	"github.com/corvid-ui/corvid/types"
)

// admin.go has initialization and registration infrastructure outside
// of the component interfaces.

// ErrStructural is the root of all structural errors: programmer
// errors (self-move, foreign reference, ambiguous instruction)
// detected and returned synchronously before any mutation is
// performed. They are never retried and never tolerated silently.
var ErrStructural = errors.New("structural error")

// Type descriptors for the base component types. Concrete types in
// higher-level packages register their own descriptor with the
// matching base as Parent.
var (
	BaseType = types.AddType(&types.Type{
		Name: "github.com/corvid-ui/corvid/comp.Base", IDName: "component"})

	NodeBaseType = types.AddType(&types.Type{
		Name: "github.com/corvid-ui/corvid/comp.NodeBase", IDName: "node",
		Parent: BaseType})

	ElementBaseType = types.AddType(&types.Type{
		Name: "github.com/corvid-ui/corvid/comp.ElementBase", IDName: "element",
		Parent: NodeBaseType})

	ContainerBaseType = types.AddType(&types.Type{
		Name: "github.com/corvid-ui/corvid/comp.ContainerBase", IDName: "container",
		Parent: ElementBaseType})
)

// InitNode initializes a node component around the given native node,
// whose ownership transfers to the component until disposal. Every
// concrete component must be initialized through InitNode or one of
// the higher-level Init functions before any tree operation; this sets
// [NodeBase.This], binds the listener registry, and applies
// [SetupComponent].
func InitNode(n Node, native dom.Node, t *types.Type) {
	nb := n.AsNode()
	nb.This = n
	nb.typ = t
	nb.dom = native
	nb.events = events.NewRegistry(native)
	if SetupComponent != nil {
		SetupComponent(n, nil)
	}
}

// InitElement initializes an element component around the given native
// element. See [InitNode].
func InitElement(e Element, native dom.Element, t *types.Type) {
	e.AsElement().visible = true
	InitNode(e, native, t)
}

// InitContainer initializes a container component around the given
// native element, binding its [Children] collection. See [InitNode].
func InitContainer(c Container, native dom.Element, t *types.Type) {
	c.AsContainer().Children.init(c)
	InitElement(c, native, t)
}

// NewNode returns a new leaf component wrapping the given native node.
func NewNode(native dom.Node) *NodeBase {
	n := &NodeBase{}
	InitNode(n, native, NodeBaseType)
	return n
}

// NewElement returns a new element component wrapping the given native
// element.
func NewElement(native dom.Element) *ElementBase {
	e := &ElementBase{}
	InitElement(e, native, ElementBaseType)
	return e
}

// NewContainer returns a new container component wrapping the given
// native element.
func NewContainer(native dom.Element) *ContainerBase {
	c := &ContainerBase{}
	InitContainer(c, native, ContainerBaseType)
	return c
}
