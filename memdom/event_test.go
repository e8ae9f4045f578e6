// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memdom

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/corvid-ui/corvid/dom"
)

func TestDispatchPhases(t *testing.T) {
	d := NewDocument()
	outer := d.CreateElement("outer")
	inner := d.CreateElement("inner")
	d.Root().AppendChild(outer)
	outer.AppendChild(inner)

	var got []string
	outer.AddEventListener("tap", func(ev dom.Event) {
		got = append(got, "outer-capture")
	}, dom.EventOptions{Capture: true})
	outer.AddEventListener("tap", func(ev dom.Event) {
		got = append(got, "outer-bubble")
		assert.Equal(t, inner, ev.Target())
		assert.Equal(t, outer, ev.CurrentTarget())
	}, dom.EventOptions{})
	inner.AddEventListener("tap", func(ev dom.Event) {
		got = append(got, "inner")
		assert.Equal(t, inner, ev.CurrentTarget())
	}, dom.EventOptions{})

	ok := inner.DispatchEvent(NewEvent("tap", nil))
	assert.True(t, ok)
	assert.Equal(t, []string{"outer-capture", "inner", "outer-bubble"}, got)
}

func TestDispatchOnceAutoRemoves(t *testing.T) {
	d := NewDocument()
	e := d.CreateElement("e").(*Element)
	n := 0
	e.AddEventListener("go", func(ev dom.Event) { n++ }, dom.EventOptions{Once: true})

	e.DispatchEvent(NewEvent("go", nil))
	e.DispatchEvent(NewEvent("go", nil))
	assert.Equal(t, 1, n)
	assert.Empty(t, e.listeners["go"])
}

func TestStopPropagation(t *testing.T) {
	d := NewDocument()
	outer := d.CreateElement("outer")
	inner := d.CreateElement("inner")
	outer.AppendChild(inner)

	var got []string
	outer.AddEventListener("tap", func(ev dom.Event) {
		got = append(got, "outer")
	}, dom.EventOptions{})
	inner.AddEventListener("tap", func(ev dom.Event) {
		got = append(got, "inner")
		ev.StopPropagation()
	}, dom.EventOptions{})
	inner.AddEventListener("tap", func(ev dom.Event) {
		got = append(got, "inner2")
	}, dom.EventOptions{})

	inner.DispatchEvent(NewEvent("tap", nil))
	// same-target listeners still run, further targets do not
	assert.Equal(t, []string{"inner", "inner2"}, got)
}

func TestStopImmediatePropagation(t *testing.T) {
	d := NewDocument()
	e := d.CreateElement("e")
	var got []string
	e.AddEventListener("tap", func(ev dom.Event) {
		got = append(got, "first")
		ev.StopImmediatePropagation()
	}, dom.EventOptions{})
	e.AddEventListener("tap", func(ev dom.Event) {
		got = append(got, "second")
	}, dom.EventOptions{})

	e.DispatchEvent(NewEvent("tap", nil))
	assert.Equal(t, []string{"first"}, got)
}

func TestPreventDefault(t *testing.T) {
	d := NewDocument()
	e := d.CreateElement("e")
	e.AddEventListener("submit", func(ev dom.Event) {
		ev.PreventDefault()
	}, dom.EventOptions{})
	assert.False(t, e.DispatchEvent(NewEvent("submit", nil)))
}

func TestPassiveIgnoresPreventDefault(t *testing.T) {
	d := NewDocument()
	e := d.CreateElement("e")
	e.AddEventListener("scroll", func(ev dom.Event) {
		ev.PreventDefault()
	}, dom.EventOptions{Passive: true})
	assert.True(t, e.DispatchEvent(NewEvent("scroll", nil)))
}

func TestDuplicateRegistration(t *testing.T) {
	d := NewDocument()
	e := d.CreateElement("e").(*Element)
	n := 0
	fn := func(ev dom.Event) { n++ }

	e.AddEventListener("tap", fn, dom.EventOptions{})
	e.AddEventListener("tap", fn, dom.EventOptions{})
	e.DispatchEvent(NewEvent("tap", nil))
	assert.Equal(t, 1, n)

	// capture is a distinct registration slot
	e.AddEventListener("tap", fn, dom.EventOptions{Capture: true})
	e.DispatchEvent(NewEvent("tap", nil))
	assert.Equal(t, 2, n)

	e.RemoveEventListener("tap", fn, dom.EventOptions{})
	e.RemoveEventListener("tap", fn, dom.EventOptions{Capture: true})
	e.DispatchEvent(NewEvent("tap", nil))
	assert.Equal(t, 2, n)
}

func TestEventData(t *testing.T) {
	d := NewDocument()
	e := d.CreateElement("e")
	var got any
	e.AddEventListener("msg", func(ev dom.Event) {
		got = ev.Data()
	}, dom.EventOptions{})
	e.DispatchEvent(NewEvent("msg", 42))
	assert.Equal(t, 42, got)
}
