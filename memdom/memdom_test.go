// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memdom

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-ui/corvid/dom"
)

func childTags(n dom.Node) []string {
	var tags []string
	for _, c := range n.ChildNodes() {
		tags = append(tags, c.(*Element).TagName())
	}
	return tags
}

func TestInsertAndRemove(t *testing.T) {
	d := NewDocument()
	root := d.Root()
	a := d.CreateElement("a")
	b := d.CreateElement("b")
	c := d.CreateElement("c")

	root.AppendChild(a)
	root.AppendChild(b)
	root.InsertBefore(c, b)
	assert.Equal(t, []string{"a", "c", "b"}, childTags(root))
	assert.Equal(t, root, c.ParentNode())

	root.RemoveChild(c)
	assert.Equal(t, []string{"a", "b"}, childTags(root))
	assert.Nil(t, c.ParentNode())

	// removing a non-child is a no-op
	root.RemoveChild(c)
	assert.Equal(t, []string{"a", "b"}, childTags(root))
}

func TestAppendOwnChildMovesToEnd(t *testing.T) {
	d := NewDocument()
	root := d.Root()
	a := d.CreateElement("a")
	b := d.CreateElement("b")
	root.AppendChild(a)
	root.AppendChild(b)

	root.AppendChild(a)
	assert.Equal(t, []string{"b", "a"}, childTags(root))
	assert.Equal(t, root, a.ParentNode())
	assert.Len(t, root.ChildNodes(), 2)
}

func TestInsertBeforeWithinParent(t *testing.T) {
	d := NewDocument()
	root := d.Root()
	a := d.CreateElement("a")
	b := d.CreateElement("b")
	c := d.CreateElement("c")
	root.AppendChild(a)
	root.AppendChild(b)
	root.AppendChild(c)

	// moving an earlier child before a later ref: the position is
	// resolved after the detach, so a lands directly before c
	root.InsertBefore(a, c)
	assert.Equal(t, []string{"b", "a", "c"}, childTags(root))

	// moving a later child before an earlier ref
	root.InsertBefore(c, b)
	assert.Equal(t, []string{"c", "b", "a"}, childTags(root))

	// a child moved before itself degenerates to an append
	root.InsertBefore(c, c)
	assert.Equal(t, []string{"b", "a", "c"}, childTags(root))
}

func TestInsertReparents(t *testing.T) {
	d := NewDocument()
	p1 := d.CreateElement("p1")
	p2 := d.CreateElement("p2")
	k := d.CreateElement("k")

	p1.AppendChild(k)
	p2.AppendChild(k)
	assert.Empty(t, p1.ChildNodes())
	assert.Equal(t, []string{"k"}, childTags(p2))
	assert.Equal(t, p2, k.ParentNode())
}

func TestInsertBeforeForeignRefAppends(t *testing.T) {
	d := NewDocument()
	root := d.Root()
	a := d.CreateElement("a")
	stranger := d.CreateElement("x")
	root.AppendChild(a)
	root.InsertBefore(d.CreateElement("b"), stranger)
	assert.Equal(t, []string{"a", "b"}, childTags(root))
}

func TestFragmentSingleMutation(t *testing.T) {
	d := NewDocument()
	root := d.Root()
	root.AppendChild(d.CreateElement("tail"))

	frag := d.CreateFragment()
	frag.AppendChild(d.CreateElement("a"))
	frag.AppendChild(d.CreateElement("b"))

	m0 := d.Mutations()
	root.InsertBefore(frag, root.ChildNodes()[0])
	assert.Equal(t, m0+1, d.Mutations())
	assert.Equal(t, []string{"a", "b", "tail"}, childTags(root))
	assert.Empty(t, frag.ChildNodes())
	assert.Equal(t, root, root.ChildNodes()[0].ParentNode())
}

func TestIsConnected(t *testing.T) {
	d := NewDocument()
	a := d.CreateElement("a")
	b := d.CreateElement("b")
	a.AppendChild(b)
	assert.False(t, b.IsConnected())

	d.Root().AppendChild(a)
	assert.True(t, a.IsConnected())
	assert.True(t, b.IsConnected())

	d.Root().RemoveChild(a)
	assert.False(t, b.IsConnected())
}

func TestCloneNode(t *testing.T) {
	d := NewDocument()
	e := d.CreateElement("box").(*Element)
	e.SetAttribute("id", "orig")
	e.AddClass("boxy")
	e.SetStyle("display", "flex")
	e.AppendChild(d.CreateElement("kid"))

	shallow := e.CloneNode(false).(*Element)
	require.NotSame(t, e, shallow)
	v, ok := shallow.Attribute("id")
	assert.True(t, ok)
	assert.Equal(t, "orig", v)
	assert.True(t, shallow.HasClass("boxy"))
	assert.Equal(t, "flex", shallow.Style("display"))
	assert.Empty(t, shallow.ChildNodes())
	assert.Nil(t, shallow.ParentNode())

	deep := e.CloneNode(true).(*Element)
	assert.Equal(t, []string{"kid"}, childTags(deep))
	assert.NotSame(t, e.children[0], deep.children[0])

	// clone state is independent
	shallow.SetAttribute("id", "copy")
	v, _ = e.Attribute("id")
	assert.Equal(t, "orig", v)
}

func TestTextContent(t *testing.T) {
	d := NewDocument()
	e := d.CreateElement("p")
	a := d.CreateElement("span")
	a.SetTextContent("hello ")
	b := d.CreateElement("span")
	b.SetTextContent("world")
	e.AppendChild(a)
	e.AppendChild(b)
	assert.Equal(t, "hello world", e.TextContent())

	e.SetTextContent("flat")
	assert.Equal(t, "flat", e.TextContent())
	assert.Empty(t, e.ChildNodes())
	assert.Nil(t, a.ParentNode())
}

func TestClasses(t *testing.T) {
	d := NewDocument()
	e := d.CreateElement("e")
	e.AddClass("a", "b", "a", "")
	assert.True(t, e.HasClass("a"))
	assert.True(t, e.HasClass("b"))
	assert.False(t, e.HasClass(""))

	e.RemoveClass("a")
	assert.False(t, e.HasClass("a"))
	assert.True(t, e.HasClass("b"))
}

func TestAttributes(t *testing.T) {
	d := NewDocument()
	e := d.CreateElement("e")
	_, ok := e.Attribute("x")
	assert.False(t, ok)

	e.SetAttribute("x", "")
	v, ok := e.Attribute("x")
	assert.True(t, ok)
	assert.Equal(t, "", v)

	e.RemoveAttribute("x")
	_, ok = e.Attribute("x")
	assert.False(t, ok)
}
