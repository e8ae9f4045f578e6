// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package dom defines the native element capability surface that the
// component tree consumes. It is an abstract boundary: the component
// packages only ever talk to these interfaces, never to a concrete
// platform. The [github.com/corvid-ui/corvid/memdom] package provides an
// in-memory implementation used by the test suite and by event buses.
package dom

// EventOptions is the standard listener option bag. The zero value is the
// default registration (bubble phase, persistent, active). Because it is a
// comparable value type, it is its own normalized identity for listener
// record matching.
type EventOptions struct {

	// Capture registers the listener for the capture phase
	// instead of the bubble phase.
	Capture bool

	// Once auto-removes the listener after its first invocation.
	Once bool

	// Passive promises that the listener will not cancel the event;
	// PreventDefault calls from a passive listener are ignored.
	Passive bool
}

// Listener is a native event callback.
type Listener func(ev Event)

// Event is a dispatched native event.
type Event interface {

	// Type returns the event type (e.g. "click").
	Type() string

	// Target returns the target the event was dispatched on.
	Target() EventTarget

	// CurrentTarget returns the target whose listener is currently
	// being invoked.
	CurrentTarget() EventTarget

	// Data returns the free-form payload carried by the event,
	// or nil if there is none.
	Data() any

	// PreventDefault cancels the default action if the event is
	// cancelable and the current listener is not passive.
	PreventDefault()

	// DefaultPrevented reports whether PreventDefault has been called.
	DefaultPrevented() bool

	// StopPropagation prevents the event from reaching further targets
	// after the current one.
	StopPropagation()

	// StopImmediatePropagation additionally prevents any remaining
	// listeners on the current target from running.
	StopImmediatePropagation()
}

// EventTarget can register listeners and dispatch events.
// Listener identity for removal is (type, callback identity, Capture),
// matching the standard addEventListener contract.
type EventTarget interface {

	// AddEventListener registers the listener for the given event type.
	// Registering the same (type, callback, Capture) twice is a no-op.
	AddEventListener(typ string, fn Listener, opts EventOptions)

	// RemoveEventListener removes a previously registered listener.
	// It is a no-op if no matching registration exists.
	RemoveEventListener(typ string, fn Listener, opts EventOptions)

	// DispatchEvent dispatches the event synchronously through the
	// capture, target, and bubble phases. It returns false if the
	// event was canceled via PreventDefault.
	DispatchEvent(ev Event) bool
}

// Node is one node in the native tree.
type Node interface {
	EventTarget

	// ParentNode returns the native parent, or nil.
	ParentNode() Node

	// ChildNodes returns the current children in order.
	// The returned slice must not be mutated.
	ChildNodes() []Node

	// AppendChild adds the child at the end of this node's children,
	// first removing it from any current parent. Appending a
	// [Fragment] moves the fragment's children in one operation.
	AppendChild(child Node)

	// InsertBefore inserts the child before ref, which must be a
	// current child of this node; a nil ref appends. Inserting a
	// [Fragment] moves the fragment's children in one operation.
	InsertBefore(child, ref Node)

	// RemoveChild removes the child from this node's children.
	// It is a no-op if the child is not a current child.
	RemoveChild(child Node)

	// IsConnected reports whether this node is reachable from
	// its document root.
	IsConnected() bool

	// CloneNode returns a copy of this node, excluding listener
	// registrations. If deep is true, children are cloned too.
	CloneNode(deep bool) Node

	// TextContent returns the textual content of this node.
	TextContent() string

	// SetTextContent replaces the content of this node with
	// the given text.
	SetTextContent(text string)
}

// Element is a native element node with attributes, classes, and styles.
type Element interface {
	Node

	// TagName returns the element's tag.
	TagName() string

	// Attribute returns the value of the named attribute and
	// whether it is present.
	Attribute(name string) (string, bool)

	// SetAttribute sets the named attribute.
	SetAttribute(name, value string)

	// RemoveAttribute removes the named attribute if present.
	RemoveAttribute(name string)

	// HasClass reports whether the class-name set contains name.
	HasClass(name string) bool

	// AddClass adds the given names to the class-name set.
	AddClass(names ...string)

	// RemoveClass removes the given names from the class-name set.
	RemoveClass(names ...string)

	// Style returns the inline style value for the given property,
	// or "" if unset.
	Style(prop string) string

	// SetStyle sets the inline style value for the given property.
	SetStyle(prop, value string)

	// RemoveStyle removes the inline style value for the given property.
	RemoveStyle(prop string)
}

// Fragment is an inert batch container: an off-tree node whose children
// are moved, not copied, when the fragment is inserted into another node.
type Fragment interface {
	Node
}

// Document creates nodes and anchors connectedness.
type Document interface {

	// CreateElement returns a new detached element with the given tag.
	CreateElement(tag string) Element

	// CreateFragment returns a new empty batch container.
	CreateFragment() Fragment

	// Root returns the document root element.
	Root() Element
}
