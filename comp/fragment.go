// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comp

import (
	"slices"

	"github.com/corvid-ui/corvid/dom"
)

// Fragment stages components off-tree so a subtree can be built in
// full and then spliced into a [Children] collection with a single
// native operation. Fragment membership is not tree membership: held
// components keep a nil parent and no mount hooks fire until the
// fragment's contents are spliced into a real tree.
type Fragment struct {
	doc  dom.Document
	frag dom.Fragment
	list []Node
}

// NewFragment returns a new fragment holding the given components.
func NewFragment(doc dom.Document, cs ...Node) *Fragment {
	f := &Fragment{doc: doc, frag: doc.CreateFragment()}
	f.Append(cs...)
	return f
}

// Len returns the number of held components.
func (f *Fragment) Len() int {
	return len(f.list)
}

// Components returns a snapshot copy of the held components in order.
func (f *Fragment) Components() []Node {
	return slices.Clone(f.list)
}

// Append adds the components to the fragment, first removing them from
// any current parent (batched per distinct parent, the same policy as
// [Children.Append]). No mount hooks fire.
func (f *Fragment) Append(cs ...Node) {
	cs = dedupe(cs)
	if len(cs) == 0 {
		return
	}
	removeFromParents(cs)
	for _, c := range cs {
		if i := slices.Index(f.list, c); i >= 0 {
			f.list = slices.Delete(f.list, i, i+1)
		}
		f.list = append(f.list, c)
		f.frag.AppendChild(c.AsNode().dom)
	}
}

// Clear atomically hands off the native batch container and the
// component list, leaving the fragment empty. It is the sole consuming
// operation: the caller becomes responsible for firing mount hooks
// once the hand-off is spliced into a real tree.
func (f *Fragment) Clear() (dom.Fragment, []Node) {
	frag, list := f.frag, f.list
	f.frag = f.doc.CreateFragment()
	f.list = nil
	return frag, list
}
