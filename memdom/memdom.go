// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package memdom is an in-memory implementation of the [dom] capability
// surface: a detached element tree with synchronous event dispatch.
// It backs the test suite and provides the inert dispatch targets used
// by event buses. It is not a browser: there is no layout, no painting,
// and no parsing, just the structural and event semantics the component
// tree depends on.
package memdom

import (
	"slices"
	"strings"

	"github.com/corvid-ui/corvid/dom"
)

// Document is an in-memory [dom.Document]. It counts child-list
// mutations so batch operations are observable in tests.
type Document struct {
	root      *Element
	mutations int
}

// NewDocument returns a new document with an empty root element.
func NewDocument() *Document {
	d := &Document{}
	d.root = d.newElement("root", false)
	return d
}

// CreateElement returns a new detached element with the given tag.
func (d *Document) CreateElement(tag string) dom.Element {
	return d.newElement(tag, false)
}

// CreateFragment returns a new empty batch container.
func (d *Document) CreateFragment() dom.Fragment {
	return d.newElement("#fragment", true)
}

// Root returns the document root element.
func (d *Document) Root() dom.Element {
	return d.root
}

// Mutations returns the number of child-list mutation operations
// (append, insert, remove, text replacement) performed on nodes of
// this document since it was created. Moving a fragment's children
// counts as a single mutation.
func (d *Document) Mutations() int {
	return d.mutations
}

func (d *Document) newElement(tag string, fragment bool) *Element {
	return &Element{doc: d, tag: tag, fragment: fragment}
}

// Element is an in-memory element node. It implements [dom.Element],
// and when created via [Document.CreateFragment] it serves as the
// [dom.Fragment] batch container.
type Element struct {
	doc       *Document
	tag       string
	fragment  bool
	parent    *Element
	children  []*Element
	attrs     map[string]string
	classes   []string
	styles    map[string]string
	text      string
	listeners map[string][]*listener
}

func asElement(n dom.Node) *Element {
	if n == nil {
		return nil
	}
	e, _ := n.(*Element)
	return e
}

// ParentNode returns the native parent, or nil.
func (e *Element) ParentNode() dom.Node {
	if e.parent == nil {
		return nil
	}
	return e.parent
}

// ChildNodes returns the current children in order.
func (e *Element) ChildNodes() []dom.Node {
	kids := make([]dom.Node, len(e.children))
	for i, c := range e.children {
		kids[i] = c
	}
	return kids
}

// AppendChild adds the child at the end of this element's children.
func (e *Element) AppendChild(child dom.Node) {
	e.InsertBefore(child, nil)
}

// InsertBefore inserts the child before ref; a nil ref appends.
// A ref that is not a current child falls back to appending.
// Inserting a fragment moves all of its children in one mutation.
// The child is detached from its current parent first, so the ref
// position is resolved against the post-detach child list.
func (e *Element) InsertBefore(child, ref dom.Node) {
	c := asElement(child)
	if c == nil || c == e {
		return
	}
	e.doc.mutations++
	if c.fragment {
		kids := c.children
		c.children = nil
		for _, k := range kids {
			k.parent = e
		}
		e.children = slices.Insert(e.children, e.refIndex(ref), kids...)
		return
	}
	if c.parent != nil {
		c.parent.detach(c)
	}
	c.parent = e
	e.children = slices.Insert(e.children, e.refIndex(ref), c)
}

// refIndex resolves a reference node to an insertion index in this
// element's current child list; nil or foreign refs append.
func (e *Element) refIndex(ref dom.Node) int {
	if r := asElement(ref); r != nil {
		if ri := slices.Index(e.children, r); ri >= 0 {
			return ri
		}
	}
	return len(e.children)
}

// RemoveChild removes the child; a no-op if it is not a current child.
func (e *Element) RemoveChild(child dom.Node) {
	c := asElement(child)
	if c == nil || c.parent != e {
		return
	}
	e.doc.mutations++
	e.detach(c)
}

func (e *Element) detach(c *Element) {
	if i := slices.Index(e.children, c); i >= 0 {
		e.children = slices.Delete(e.children, i, i+1)
	}
	c.parent = nil
}

// IsConnected reports whether this element is reachable from the
// document root.
func (e *Element) IsConnected() bool {
	for cur := e; cur != nil; cur = cur.parent {
		if cur == e.doc.root {
			return true
		}
	}
	return false
}

// CloneNode returns a copy of this element without listener
// registrations or a parent. If deep is true, children are cloned too.
func (e *Element) CloneNode(deep bool) dom.Node {
	c := e.doc.newElement(e.tag, e.fragment)
	c.text = e.text
	if e.attrs != nil {
		c.attrs = make(map[string]string, len(e.attrs))
		for k, v := range e.attrs {
			c.attrs[k] = v
		}
	}
	if e.styles != nil {
		c.styles = make(map[string]string, len(e.styles))
		for k, v := range e.styles {
			c.styles[k] = v
		}
	}
	c.classes = slices.Clone(e.classes)
	if deep {
		for _, k := range e.children {
			kc := k.CloneNode(true).(*Element)
			kc.parent = c
			c.children = append(c.children, kc)
		}
	}
	return c
}

// TextContent returns the text of this element and all descendants.
func (e *Element) TextContent() string {
	if len(e.children) == 0 {
		return e.text
	}
	var sb strings.Builder
	sb.WriteString(e.text)
	for _, c := range e.children {
		sb.WriteString(c.TextContent())
	}
	return sb.String()
}

// SetTextContent replaces the content of this element with the text.
func (e *Element) SetTextContent(text string) {
	e.doc.mutations++
	for _, c := range e.children {
		c.parent = nil
	}
	e.children = nil
	e.text = text
}

// TagName returns the element's tag.
func (e *Element) TagName() string {
	return e.tag
}

// Attribute returns the value of the named attribute and whether it
// is present.
func (e *Element) Attribute(name string) (string, bool) {
	v, ok := e.attrs[name]
	return v, ok
}

// SetAttribute sets the named attribute.
func (e *Element) SetAttribute(name, value string) {
	if e.attrs == nil {
		e.attrs = make(map[string]string)
	}
	e.attrs[name] = value
}

// RemoveAttribute removes the named attribute if present.
func (e *Element) RemoveAttribute(name string) {
	delete(e.attrs, name)
}

// HasClass reports whether the class-name set contains name.
func (e *Element) HasClass(name string) bool {
	return slices.Contains(e.classes, name)
}

// AddClass adds the given names to the class-name set.
func (e *Element) AddClass(names ...string) {
	for _, nm := range names {
		if nm != "" && !slices.Contains(e.classes, nm) {
			e.classes = append(e.classes, nm)
		}
	}
}

// RemoveClass removes the given names from the class-name set.
func (e *Element) RemoveClass(names ...string) {
	e.classes = slices.DeleteFunc(e.classes, func(c string) bool {
		return slices.Contains(names, c)
	})
}

// Style returns the inline style value for the given property.
func (e *Element) Style(prop string) string {
	return e.styles[prop]
}

// SetStyle sets the inline style value for the given property.
func (e *Element) SetStyle(prop, value string) {
	if e.styles == nil {
		e.styles = make(map[string]string)
	}
	e.styles[prop] = value
}

// RemoveStyle removes the inline style value for the given property.
func (e *Element) RemoveStyle(prop string) {
	delete(e.styles, prop)
}
