// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comp

import (
	"log/slog"
	"reflect"

	"github.com/jinzhu/copier"

	"github.com/corvid-ui/corvid/dom"
)

// NewInstance returns a new uninitialized instance of this component's
// concrete type.
func (n *NodeBase) NewInstance() Node {
	return reflect.New(reflect.TypeOf(n.This).Elem()).Interface().(Node)
}

// CopyFieldsFrom deep-copies the exported fields of the given
// component into this one. Fields tagged `copier:"-"` (tree
// bookkeeping, native handles) are not copied.
func (n *NodeBase) CopyFieldsFrom(from Node) {
	err := copier.CopyWithOption(n.This, from.AsNode().This,
		copier.Option{CaseSensitive: true, DeepCopy: true})
	if err != nil {
		slog.Error("comp.NodeBase.CopyFieldsFrom", "err", err)
	}
}

// Clone returns a copy of this component: a new instance of the same
// concrete type wrapping a clone of the native node (without listener
// registrations), with exported fields copied and, for containers,
// children cloned recursively. The clone is detached and starts with
// default enable/visibility state.
func (n *NodeBase) Clone() Node {
	nc := n.NewInstance()
	native := n.dom.CloneNode(false)
	switch c := nc.(type) {
	case Container:
		InitContainer(c, native.(dom.Element), n.typ)
	case Element:
		InitElement(c, native.(dom.Element), n.typ)
	default:
		InitNode(nc, native, n.typ)
	}
	nc.AsNode().CopyFieldsFrom(n.This)
	if c, ok := n.This.(Container); ok {
		tc := nc.(Container).AsContainer()
		for _, k := range c.AsContainer().Children.All() {
			tc.Children.Append(k.AsNode().Clone())
		}
	}
	return nc
}
