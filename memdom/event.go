// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package memdom

import (
	"slices"

	"github.com/corvid-ui/corvid/base/funcid"
	"github.com/corvid-ui/corvid/dom"
)

// listener is one native registration. Identity for removal and
// deduplication is (callback identity, Capture), per the standard
// addEventListener contract.
type listener struct {
	fn   dom.Listener
	key  uintptr
	opts dom.EventOptions
}

// AddEventListener registers the listener for the given event type.
// A duplicate (type, callback, Capture) registration is a no-op.
func (e *Element) AddEventListener(typ string, fn dom.Listener, opts dom.EventOptions) {
	if fn == nil {
		return
	}
	key := funcid.Of(fn)
	for _, l := range e.listeners[typ] {
		if l.key == key && l.opts.Capture == opts.Capture {
			return
		}
	}
	if e.listeners == nil {
		e.listeners = make(map[string][]*listener)
	}
	e.listeners[typ] = append(e.listeners[typ], &listener{fn: fn, key: key, opts: opts})
}

// RemoveEventListener removes a matching registration; a no-op if none
// exists.
func (e *Element) RemoveEventListener(typ string, fn dom.Listener, opts dom.EventOptions) {
	if fn == nil {
		return
	}
	key := funcid.Of(fn)
	ls := e.listeners[typ]
	for i, l := range ls {
		if l.key == key && l.opts.Capture == opts.Capture {
			e.listeners[typ] = slices.Delete(ls, i, i+1)
			return
		}
	}
}

// Event dispatch phases.
const (
	phaseCapture = iota
	phaseTarget
	phaseBubble
)

// DispatchEvent dispatches the event synchronously through the capture,
// target, and bubble phases along this element's ancestor chain.
// It returns false if the event was canceled via PreventDefault.
func (e *Element) DispatchEvent(ev dom.Event) bool {
	me, ok := ev.(*Event)
	if !ok {
		me = NewEvent(ev.Type(), ev.Data())
	}
	me.target = e
	me.stopProp = false
	me.stopImmediate = false

	var path []*Element // target's ancestors, nearest first
	for cur := e.parent; cur != nil; cur = cur.parent {
		path = append(path, cur)
	}
	for i := len(path) - 1; i >= 0; i-- {
		if !path[i].invoke(me, phaseCapture) {
			return !me.defaultPrevented
		}
	}
	if !e.invoke(me, phaseTarget) {
		return !me.defaultPrevented
	}
	for _, a := range path {
		if !a.invoke(me, phaseBubble) {
			return !me.defaultPrevented
		}
	}
	return !me.defaultPrevented
}

// invoke runs this element's listeners for the event in the given phase.
// It returns false when propagation should stop before further targets.
func (e *Element) invoke(me *Event, phase int) bool {
	me.current = e
	// snapshot so listeners may register and remove freely mid-dispatch
	ls := slices.Clone(e.listeners[me.typ])
	for _, l := range ls {
		switch phase {
		case phaseCapture:
			if !l.opts.Capture {
				continue
			}
		case phaseBubble:
			if l.opts.Capture {
				continue
			}
		}
		if l.opts.Once {
			e.RemoveEventListener(me.typ, l.fn, l.opts)
		}
		me.passive = l.opts.Passive
		l.fn(me)
		me.passive = false
		if me.stopImmediate {
			return false
		}
	}
	return !me.stopProp
}

// Event is the concrete [dom.Event] dispatched by memdom targets.
type Event struct {
	typ              string
	data             any
	target           dom.EventTarget
	current          dom.EventTarget
	passive          bool
	defaultPrevented bool
	stopProp         bool
	stopImmediate    bool
}

// NewEvent returns a new cancelable event with the given type and
// payload.
func NewEvent(typ string, data any) *Event {
	return &Event{typ: typ, data: data}
}

// Type returns the event type.
func (ev *Event) Type() string { return ev.typ }

// Target returns the target the event was dispatched on.
func (ev *Event) Target() dom.EventTarget { return ev.target }

// CurrentTarget returns the target whose listener is currently running.
func (ev *Event) CurrentTarget() dom.EventTarget { return ev.current }

// Data returns the free-form payload carried by the event.
func (ev *Event) Data() any { return ev.data }

// PreventDefault cancels the default action. It is ignored while a
// passive listener is running.
func (ev *Event) PreventDefault() {
	if ev.passive {
		return
	}
	ev.defaultPrevented = true
}

// DefaultPrevented reports whether PreventDefault has been called.
func (ev *Event) DefaultPrevented() bool { return ev.defaultPrevented }

// StopPropagation prevents the event from reaching further targets.
func (ev *Event) StopPropagation() { ev.stopProp = true }

// StopImmediatePropagation additionally skips the remaining listeners
// on the current target.
func (ev *Event) StopImmediatePropagation() {
	ev.stopProp = true
	ev.stopImmediate = true
}
