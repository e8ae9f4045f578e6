// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comp

import (
	"github.com/corvid-ui/corvid/dom"
	"github.com/corvid-ui/corvid/events"
)

// Node is a component that wraps exactly one native node. The mount
// hooks are invoked by the [Children] collection that owns the
// transition, never by the component itself. Overriding types must
// invoke the base implementation first in the "before" hooks and last
// in the "did" hooks; all hooks must be safe to call on off-tree
// subtrees.
type Node interface {
	Component

	// AsNode returns the [NodeBase] of this node.
	AsNode() *NodeBase

	// OnBeforeMount is called before the native node is attached and
	// before the logical parent is set.
	OnBeforeMount(parent Container)

	// OnDidMount is called after the native node is attached and the
	// component has been added to the parent's collection. The base
	// implementation sets the parent back-reference.
	OnDidMount(parent Container)

	// OnBeforeUnmount is called while the component is still fully
	// attached, so it may inspect its ancestors.
	OnBeforeUnmount()

	// OnDidUnmount is called after native detachment and logical
	// removal. The base implementation clears the parent
	// back-reference.
	OnDidUnmount()
}

// NodeBase implements [Node]. It exclusively owns its native node:
// ownership transfers in at initialization and the handle is released
// at disposal.
type NodeBase struct {
	Base

	// This is the value of this node as its true underlying type,
	// which allows methods defined on base types to call methods
	// defined on higher-level types. It is set at initialization.
	This Node `copier:"-"`

	dom    dom.Node
	parent Container
	events *events.Registry

	// index is the last known position in the parent's collection,
	// used as a search hint; not guaranteed accurate.
	index int
}

// AsNode returns the [NodeBase] of this node.
func (n *NodeBase) AsNode() *NodeBase {
	return n
}

// DOM returns the native node this component wraps, or nil after
// disposal.
func (n *NodeBase) DOM() dom.Node {
	return n.dom
}

// Parent returns the container this component is currently a child of,
// or nil if it is not in any collection.
func (n *NodeBase) Parent() Container {
	return n.parent
}

// Events returns the listener registry bound to this component's
// native node.
func (n *NodeBase) Events() *events.Registry {
	return n.events
}

// IndexInParent returns this component's position in its parent's
// collection, or -1 if it has no parent.
func (n *NodeBase) IndexInParent() int {
	if n.parent == nil {
		return -1
	}
	return n.parent.AsContainer().Children.IndexOf(n.This)
}

// NextSibling returns the component after this one in the parent's
// collection, or nil.
func (n *NodeBase) NextSibling() Node {
	if n.parent == nil {
		return nil
	}
	kids := &n.parent.AsContainer().Children
	return kids.At(kids.IndexOf(n.This) + 1)
}

// PrevSibling returns the component before this one in the parent's
// collection, or nil.
func (n *NodeBase) PrevSibling() Node {
	if n.parent == nil {
		return nil
	}
	kids := &n.parent.AsContainer().Children
	i := kids.IndexOf(n.This)
	if i < 0 {
		return nil
	}
	return kids.At(i - 1)
}

// Path returns the path of class names (with pointer tags where set)
// from the tree root down to this component, for diagnostics.
func (n *NodeBase) Path() string {
	label := n.ClassName()
	if n.Pointer != "" {
		label += "(" + n.Pointer + ")"
	}
	if n.parent != nil {
		return n.parent.AsNode().Path() + "/" + label
	}
	return "/" + label
}

func (n *NodeBase) String() string {
	if n == nil {
		return "nil"
	}
	return n.Path()
}

// Mount hooks:

// OnBeforeMount does nothing by default.
func (n *NodeBase) OnBeforeMount(parent Container) {}

// OnDidMount sets the parent back-reference.
func (n *NodeBase) OnDidMount(parent Container) {
	n.parent = parent
}

// OnBeforeUnmount does nothing by default.
func (n *NodeBase) OnBeforeUnmount() {}

// OnDidUnmount clears the parent back-reference.
func (n *NodeBase) OnDidUnmount() {
	n.parent = nil
}

// Event methods:

// On registers a listener on the native node and records it for
// lifecycle management. See [events.Registry.On].
func (n *NodeBase) On(typ string, fn dom.Listener, opts ...dom.EventOptions) {
	n.events.On(typ, fn, opts...)
}

// Once registers a one-shot listener. See [events.Registry.Once].
func (n *NodeBase) Once(typ string, fn dom.Listener, opts ...dom.EventOptions) {
	n.events.Once(typ, fn, opts...)
}

// Off removes a listener registration. See [events.Registry.Off].
func (n *NodeBase) Off(typ string, fn dom.Listener, opts ...dom.EventOptions) {
	n.events.Off(typ, fn, opts...)
}

// SuspendListener suspends a listener without removing its record.
func (n *NodeBase) SuspendListener(typ string, fn dom.Listener, opts ...dom.EventOptions) {
	n.events.SuspendListener(typ, fn, opts...)
}

// ResumeListener resumes a suspended listener, preserving original
// registration order.
func (n *NodeBase) ResumeListener(typ string, fn dom.Listener, opts ...dom.EventOptions) {
	n.events.ResumeListener(typ, fn, opts...)
}

// AllEvents applies a bulk mode (Off, Suspend, Resume) to every
// listener record except one-shots. See [events.Registry.All].
func (n *NodeBase) AllEvents(m events.Mode) {
	n.events.All(m)
}

// Dispatch dispatches the event on this component's native node.
// It returns false if the event was canceled.
func (n *NodeBase) Dispatch(ev dom.Event) bool {
	if n.dom == nil {
		return true
	}
	return n.dom.DispatchEvent(ev)
}

// Dispose removes the component from its parent's collection if it is
// still mounted (with the usual unmount hooks, so a listener may
// dispose its own component mid-dispatch), detaches all listeners,
// detaches the native node from its native parent if it has one
// (covering top-level components placed directly), releases the native
// handle, and marks the component disposed.
func (n *NodeBase) Dispose() {
	n.disposeNode()
}

func (n *NodeBase) disposeNode() {
	if n.disposed {
		return
	}
	if n.parent != nil {
		n.parent.AsContainer().Children.Remove(n.This)
	}
	n.events.Dispose()
	if n.dom != nil {
		if p := n.dom.ParentNode(); p != nil {
			p.RemoveChild(n.dom)
		}
		n.dom = nil
	}
	n.parent = nil
	n.disposed = true
}
