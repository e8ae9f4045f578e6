// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comp

import (
	"github.com/corvid-ui/corvid/dom"
)

// Element is a component wrapping a native element, with attribute,
// class, visibility, and enable/disable semantics.
type Element interface {
	Node

	// AsElement returns the [ElementBase] of this element.
	AsElement() *ElementBase
}

// ElementBase implements [Element]. The disabled state has two axes:
// the explicit local flag and the derived parentDisabled flag cascaded
// from ancestors; the effective state is their disjunction. Visibility
// likewise has two independent axes: visible controls layout presence
// (display), hidden controls paint-only concealment (visibility).
type ElementBase struct {
	NodeBase

	disabled       bool
	parentDisabled bool
	visible        bool
	hidden         bool

	// prior explicit style values, restored when an axis toggles back
	prevDisplay    string
	prevVisibility string
}

// AsElement returns the [ElementBase] of this element.
func (e *ElementBase) AsElement() *ElementBase {
	return e
}

// Element returns the native element this component wraps, or nil
// after disposal.
func (e *ElementBase) Element() dom.Element {
	el, _ := e.dom.(dom.Element)
	return el
}

// Attribute sugar:

// Attr returns the value of the named native attribute, or "".
func (e *ElementBase) Attr(name string) string {
	el := e.Element()
	if el == nil {
		return ""
	}
	v, _ := el.Attribute(name)
	return v
}

// SetAttr sets the named native attribute.
func (e *ElementBase) SetAttr(name, value string) {
	if el := e.Element(); el != nil {
		el.SetAttribute(name, value)
	}
}

// RemoveAttr removes the named native attribute.
func (e *ElementBase) RemoveAttr(name string) {
	if el := e.Element(); el != nil {
		el.RemoveAttribute(name)
	}
}

// HasClass reports whether the native class-name set contains name.
func (e *ElementBase) HasClass(name string) bool {
	el := e.Element()
	return el != nil && el.HasClass(name)
}

// AddClass adds the given names to the native class-name set.
func (e *ElementBase) AddClass(names ...string) {
	if el := e.Element(); el != nil {
		el.AddClass(names...)
	}
}

// RemoveClass removes the given names from the native class-name set.
func (e *ElementBase) RemoveClass(names ...string) {
	if el := e.Element(); el != nil {
		el.RemoveClass(names...)
	}
}

// Text returns the textual content of the native element.
func (e *ElementBase) Text() string {
	el := e.Element()
	if el == nil {
		return ""
	}
	return el.TextContent()
}

// SetText replaces the textual content of the native element.
func (e *ElementBase) SetText(text string) {
	if el := e.Element(); el != nil {
		el.SetTextContent(text)
	}
}

// Disabled state:

// Disabled returns the explicit local disabled flag.
func (e *ElementBase) Disabled() bool {
	return e.disabled
}

// ParentDisabled reports whether some strict ancestor is effectively
// disabled. It is maintained by the cascade; application code must
// not set it.
func (e *ElementBase) ParentDisabled() bool {
	return e.parentDisabled
}

// Enabled reports the effective state: enabled if and only if neither
// this element nor any ancestor is explicitly disabled.
func (e *ElementBase) Enabled() bool {
	return !e.disabled && !e.parentDisabled
}

// SetDisabled sets the explicit local disabled flag and cascades the
// resulting effective state to descendants. If this element is already
// parent-disabled, the cascade its children see is unchanged and no
// propagation happens.
func (e *ElementBase) SetDisabled(v bool) {
	if e.disabled == v {
		return
	}
	e.disabled = v
	e.applyDisabled()
	if e.parentDisabled {
		return
	}
	e.forwardDisabled(v)
}

// SetEnabled is sugar for SetDisabled(!v).
func (e *ElementBase) SetEnabled(v bool) {
	e.SetDisabled(!v)
}

// setParentDisabled is invoked only by an ancestor's cascade (and the
// mount/unmount hooks). If this element is itself explicitly disabled
// it absorbs the change: its own disablement already cascades to its
// subtree.
func (e *ElementBase) setParentDisabled(v bool) {
	if e.parentDisabled == v {
		return
	}
	e.parentDisabled = v
	e.applyDisabled()
	if e.disabled {
		return
	}
	e.forwardDisabled(v)
}

// forwardDisabled propagates the parent-disabled flag to every direct
// child that has the disabled capability.
func (e *ElementBase) forwardDisabled(v bool) {
	c, ok := e.This.(Container)
	if !ok {
		return
	}
	for _, k := range c.AsContainer().Children.All() {
		if el, ok := k.(Element); ok {
			el.AsElement().setParentDisabled(v)
		}
	}
}

// applyDisabled reflects the effective state into the native
// "disabled" attribute.
func (e *ElementBase) applyDisabled() {
	el := e.Element()
	if el == nil {
		return
	}
	if e.Enabled() {
		el.RemoveAttribute("disabled")
	} else {
		el.SetAttribute("disabled", "")
	}
}

// Visibility:

// Visible reports whether the element participates in layout.
func (e *ElementBase) Visible() bool {
	return e.visible
}

// SetVisible toggles layout presence by setting the display style to
// none, restoring the prior explicit display value when shown again.
func (e *ElementBase) SetVisible(v bool) {
	if e.visible == v {
		return
	}
	e.visible = v
	el := e.Element()
	if el == nil {
		return
	}
	if !v {
		e.prevDisplay = el.Style("display")
		el.SetStyle("display", "none")
		return
	}
	if e.prevDisplay == "" {
		el.RemoveStyle("display")
	} else {
		el.SetStyle("display", e.prevDisplay)
	}
	e.prevDisplay = ""
}

// Hidden reports whether the element is concealed while keeping its
// layout space.
func (e *ElementBase) Hidden() bool {
	return e.hidden
}

// SetHidden toggles paint-only concealment via the visibility style,
// restoring the prior explicit value when revealed.
func (e *ElementBase) SetHidden(v bool) {
	if e.hidden == v {
		return
	}
	e.hidden = v
	el := e.Element()
	if el == nil {
		return
	}
	if v {
		e.prevVisibility = el.Style("visibility")
		el.SetStyle("visibility", "hidden")
		return
	}
	if e.prevVisibility == "" {
		el.RemoveStyle("visibility")
	} else {
		el.SetStyle("visibility", e.prevVisibility)
	}
	e.prevVisibility = ""
}

// Mount hooks:

// OnDidMount inherits the new parent's effective disabled state, then
// runs the base bookkeeping.
func (e *ElementBase) OnDidMount(parent Container) {
	if !parent.AsElement().Enabled() {
		e.setParentDisabled(true)
	}
	e.NodeBase.OnDidMount(parent)
}

// OnDidUnmount drops any cascade state inherited from the tree this
// component no longer belongs to, then runs the base bookkeeping.
func (e *ElementBase) OnDidUnmount() {
	if e.parentDisabled {
		e.setParentDisabled(false)
	}
	e.NodeBase.OnDidUnmount()
}
