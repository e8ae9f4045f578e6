// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comp

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvid-ui/corvid/memdom"
)

func TestFragmentHoldsOffTree(t *testing.T) {
	doc := memdom.NewDocument()
	a := newTestComp(doc, "a", nil)
	b := newTestComp(doc, "b", nil)

	f := NewFragment(doc, a, b)
	assert.Equal(t, 2, f.Len())
	assert.Equal(t, []string{"a", "b"}, names(f.Components()))
	// fragment membership is not tree membership
	assert.Nil(t, a.Parent())
	assert.Nil(t, b.Parent())
}

func TestFragmentAppendUnmountsFromParent(t *testing.T) {
	doc := memdom.NewDocument()
	var log []string
	p := newTestComp(doc, "p", &log)
	a := newTestComp(doc, "a", &log)
	p.Children.Append(a)

	log = nil
	f := NewFragment(doc)
	f.Append(a)
	assert.Equal(t, 0, p.Children.Len())
	assert.Nil(t, a.Parent())
	// unmount hooks fire on leaving the old parent, no mount hooks fire
	assert.Equal(t, []string{"before-unmount a", "did-unmount a"}, log)
	assertSynced(t, p)
}

func TestFragmentAppendMovesToEnd(t *testing.T) {
	doc := memdom.NewDocument()
	a := newTestComp(doc, "a", nil)
	b := newTestComp(doc, "b", nil)

	f := NewFragment(doc, a, b)
	f.Append(a)
	assert.Equal(t, []string{"b", "a"}, names(f.Components()))
	assert.Equal(t, 2, f.Len())
}

func TestAppendFragmentBatchMount(t *testing.T) {
	doc := memdom.NewDocument()
	var log []string
	p := newTestComp(doc, "p", &log)
	a := newTestComp(doc, "a", &log)
	b := newTestComp(doc, "b", &log)
	f := NewFragment(doc, a, b)

	log = nil
	m0 := doc.Mutations()
	p.Children.AppendFragment(f)

	// one native splice for the whole batch
	assert.Equal(t, m0+1, doc.Mutations())
	assert.Equal(t, []string{"a", "b"}, childNames(p))
	assert.Equal(t, Container(p), a.Parent())
	assert.Equal(t, Container(p), b.Parent())
	assert.Equal(t, []string{
		"before-mount a", "before-mount b",
		"did-mount a", "did-mount b",
	}, log)
	assertSynced(t, p)

	// the fragment is drained and reusable
	assert.Equal(t, 0, f.Len())
	c := newTestComp(doc, "c", &log)
	f.Append(c)
	p.Children.AppendFragment(f)
	assert.Equal(t, []string{"a", "b", "c"}, childNames(p))
}

func TestInsertFragmentAt(t *testing.T) {
	doc := memdom.NewDocument()
	p := newTestComp(doc, "p", nil)
	x := newTestComp(doc, "x", nil)
	y := newTestComp(doc, "y", nil)
	p.Children.Append(x, y)

	a := newTestComp(doc, "a", nil)
	b := newTestComp(doc, "b", nil)
	f := NewFragment(doc, a, b)

	p.Children.InsertFragmentAt(1, f)
	assert.Equal(t, []string{"x", "a", "b", "y"}, childNames(p))
	assertSynced(t, p)
}

func TestInsertFragmentBefore(t *testing.T) {
	doc := memdom.NewDocument()
	p := newTestComp(doc, "p", nil)
	x := newTestComp(doc, "x", nil)
	y := newTestComp(doc, "y", nil)
	p.Children.Append(x, y)

	a := newTestComp(doc, "a", nil)
	f := NewFragment(doc, a)

	p.Children.InsertFragmentBefore(y, f)
	assert.Equal(t, []string{"x", "a", "y"}, childNames(p))

	// an absent reference leaves the fragment intact
	stranger := newTestComp(doc, "s", nil)
	b := newTestComp(doc, "b", nil)
	f2 := NewFragment(doc, b)
	p.Children.InsertFragmentBefore(stranger, f2)
	assert.Equal(t, []string{"x", "a", "y"}, childNames(p))
	assert.Equal(t, 1, f2.Len())
}

func TestEmptyFragmentIsNoop(t *testing.T) {
	doc := memdom.NewDocument()
	p := newTestComp(doc, "p", nil)
	f := NewFragment(doc)

	m0 := doc.Mutations()
	p.Children.AppendFragment(f)
	p.Children.AppendFragment(nil)
	assert.Equal(t, m0, doc.Mutations())
	assert.Equal(t, 0, p.Children.Len())
}

func TestFragmentClearHandsOff(t *testing.T) {
	doc := memdom.NewDocument()
	a := newTestComp(doc, "a", nil)
	f := NewFragment(doc, a)

	frag, cs := f.Clear()
	assert.Equal(t, []string{"a"}, names(cs))
	assert.Len(t, frag.ChildNodes(), 1)
	assert.Equal(t, 0, f.Len())

	// cleared fragment is fresh and usable
	b := newTestComp(doc, "b", nil)
	f.Append(b)
	assert.Equal(t, []string{"b"}, names(f.Components()))
}
