// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/corvid-ui/corvid/memdom"
	"github.com/corvid-ui/corvid/types"
)

type labelBox struct {
	ContainerBase

	Label string
	Tags  []string
}

var labelBoxType = types.AddType(&types.Type{
	Name: "github.com/corvid-ui/corvid/comp.labelBox", IDName: "label-box",
	Parent: ContainerBaseType})

func newLabelBox(doc *memdom.Document, label string) *labelBox {
	lb := &labelBox{Label: label}
	InitContainer(lb, doc.CreateElement("box"), labelBoxType)
	return lb
}

func TestNewInstance(t *testing.T) {
	doc := memdom.NewDocument()
	orig := newLabelBox(doc, "x")

	fresh := orig.NewInstance()
	require.IsType(t, &labelBox{}, fresh)
	assert.Equal(t, "", fresh.(*labelBox).Label)
	assert.Nil(t, fresh.AsNode().This)
}

func TestCopyFieldsFrom(t *testing.T) {
	doc := memdom.NewDocument()
	src := newLabelBox(doc, "src")
	src.Tags = []string{"one", "two"}
	dst := newLabelBox(doc, "dst")

	dst.CopyFieldsFrom(src)
	assert.Equal(t, "src", dst.Label)
	assert.Equal(t, []string{"one", "two"}, dst.Tags)

	// deep copy: the slice is not shared
	dst.Tags[0] = "changed"
	assert.Equal(t, "one", src.Tags[0])

	// tree bookkeeping is excluded
	assert.Equal(t, Node(dst), dst.This)
}

func TestClone(t *testing.T) {
	doc := memdom.NewDocument()
	root := newLabelBox(doc, "root")
	orig := newLabelBox(doc, "orig")
	kid := newLabelBox(doc, "kid")
	root.Children.Append(orig)
	orig.Children.Append(kid)
	orig.SetAttr("id", "orig")
	orig.Pointer = "here"

	c, ok := orig.Clone().(*labelBox)
	require.True(t, ok)

	assert.Equal(t, "orig", c.Label)
	assert.Equal(t, "here", c.Pointer)
	assert.Equal(t, "orig", c.Attr("id"))
	assert.Same(t, labelBoxType, c.Type())

	// the clone is detached, with its own native subtree
	assert.Nil(t, c.Parent())
	assert.NotSame(t, orig.DOM(), c.DOM())
	require.Equal(t, 1, c.Children.Len())
	ck := c.Children.At(0).(*labelBox)
	assert.Equal(t, "kid", ck.Label)
	assert.NotSame(t, kid.DOM(), ck.DOM())
	assert.Equal(t, Container(c), ck.Parent())
	assertSynced(t, c)

	// the original tree is untouched
	assert.Equal(t, Container(root), orig.Parent())
	assert.Equal(t, 1, orig.Children.Len())
	assert.Same(t, Node(kid), orig.Children.At(0))
}

func TestCloneLeaf(t *testing.T) {
	doc := memdom.NewDocument()
	e := NewElement(doc.CreateElement("leaf"))
	e.AddClass("tag")

	c := e.Clone()
	ce, ok := c.(*ElementBase)
	require.True(t, ok)
	assert.True(t, ce.HasClass("tag"))
	assert.True(t, ce.Visible())
	assert.NotSame(t, e.DOM(), ce.DOM())
}
