// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package eventbus provides topic-based publish/subscribe decoupled
// from the component tree. Each [Bus] is registered under a unique
// name and dispatches through one internal inert native target,
// reusing the [events.Registry] listener-record machinery, so
// suspend/resume/off semantics and ordering match component
// listeners exactly.
package eventbus

import (
	"errors"
	"fmt"

	"github.com/corvid-ui/corvid/base/funcid"
	"github.com/corvid-ui/corvid/dom"
	"github.com/corvid-ui/corvid/events"
	"github.com/corvid-ui/corvid/memdom"
)

// ErrDuplicateName is returned when constructing a bus under a name
// that is already registered.
var ErrDuplicateName = errors.New("eventbus: duplicate bus name")

// Event is the control object passed to bus listeners.
type Event struct {

	// Topic is the topic the event was published on.
	Topic string

	// Data is the free-form payload, or nil.
	Data any

	native dom.Event
}

// Cancel marks the event canceled; [Bus.Dispatch] reports it.
func (e *Event) Cancel() {
	e.native.PreventDefault()
}

// Canceled reports whether some listener canceled the event.
func (e *Event) Canceled() bool {
	return e.native.DefaultPrevented()
}

// Stop prevents any remaining listeners from seeing the event.
func (e *Event) Stop() {
	e.native.StopImmediatePropagation()
}

// Listener is a bus event callback.
type Listener func(ev *Event)

// adapterKey locates a wrapped adapter by the original listener
// identity, the way callers refer to their registrations.
type adapterKey struct {
	topic string
	fn    uintptr
	opts  dom.EventOptions
}

type adapter struct {
	fn   dom.Listener
	once bool
}

// Bus is one named topic bus.
type Bus struct {
	name     string
	owner    *Registry
	target   dom.Element
	events   *events.Registry
	adapters map[adapterKey]*adapter
}

// Name returns the bus name.
func (b *Bus) Name() string {
	return b.name
}

func optsOf(opts []dom.EventOptions) dom.EventOptions {
	if len(opts) > 0 {
		return opts[0]
	}
	return dom.EventOptions{}
}

func listenerKey(fn Listener) uintptr {
	return funcid.Of(fn)
}

// On subscribes the listener to the topic.
func (b *Bus) On(topic string, fn Listener, opts ...dom.EventOptions) {
	b.add(topic, fn, optsOf(opts))
}

// Once subscribes a one-shot listener: it is removed after its first
// invocation and is not affected by bulk operations.
func (b *Bus) Once(topic string, fn Listener, opts ...dom.EventOptions) {
	o := optsOf(opts)
	o.Once = true
	b.add(topic, fn, o)
}

func (b *Bus) add(topic string, fn Listener, o dom.EventOptions) {
	if fn == nil {
		return
	}
	key := adapterKey{topic: topic, fn: listenerKey(fn), opts: o}
	if _, has := b.adapters[key]; has {
		return
	}
	a := &adapter{once: o.Once}
	a.fn = func(de dom.Event) {
		if a.once {
			delete(b.adapters, key)
		}
		fn(&Event{Topic: de.Type(), Data: de.Data(), native: de})
	}
	b.adapters[key] = a
	if o.Once {
		b.events.Once(topic, a.fn, o)
	} else {
		b.events.On(topic, a.fn, o)
	}
}

// Off unsubscribes the listener registered with the same topic and
// options; a no-op if there is no matching subscription.
func (b *Bus) Off(topic string, fn Listener, opts ...dom.EventOptions) {
	o := optsOf(opts)
	key := adapterKey{topic: topic, fn: listenerKey(fn), opts: o}
	a, has := b.adapters[key]
	if !has {
		return
	}
	delete(b.adapters, key)
	b.events.Off(topic, a.fn, o)
}

// SuspendListener suspends the matching subscription, keeping its
// record and its position in the invocation order.
func (b *Bus) SuspendListener(topic string, fn Listener, opts ...dom.EventOptions) {
	o := optsOf(opts)
	if a, has := b.adapters[adapterKey{topic: topic, fn: listenerKey(fn), opts: o}]; has {
		b.events.SuspendListener(topic, a.fn, o)
	}
}

// ResumeListener resumes the matching suspended subscription in its
// original registration order.
func (b *Bus) ResumeListener(topic string, fn Listener, opts ...dom.EventOptions) {
	o := optsOf(opts)
	if a, has := b.adapters[adapterKey{topic: topic, fn: listenerKey(fn), opts: o}]; has {
		b.events.ResumeListener(topic, a.fn, o)
	}
}

// AllEvents applies a bulk mode to every subscription except
// one-shots. See [events.Registry.All].
func (b *Bus) AllEvents(m events.Mode) {
	b.events.All(m)
	if m == events.Off {
		for key, a := range b.adapters {
			if !a.once {
				delete(b.adapters, key)
			}
		}
	}
}

// Emit publishes the payload on the topic, discarding cancellation.
func (b *Bus) Emit(topic string, data any) {
	b.target.DispatchEvent(memdom.NewEvent(topic, data))
}

// Dispatch publishes the payload on the topic and reports whether any
// listener canceled the event.
func (b *Bus) Dispatch(topic string, data any) bool {
	return !b.target.DispatchEvent(memdom.NewEvent(topic, data))
}

// Dispose tears the bus down: every subscription is removed and the
// name is released from the owning registry.
func (b *Bus) Dispose() {
	b.events.Dispose()
	b.adapters = map[adapterKey]*adapter{}
	if b.owner != nil {
		delete(b.owner.buses, b.name)
		b.owner = nil
	}
}

// Registry is a set of named buses. The package-level default serves
// the common process-wide singleton pattern; tests construct their own
// with [NewRegistry].
type Registry struct {
	buses map[string]*Bus
}

// NewRegistry returns a new empty bus registry.
func NewRegistry() *Registry {
	return &Registry{buses: map[string]*Bus{}}
}

// New constructs and registers a bus under the given name. A name that
// is already registered is a hard error.
func (r *Registry) New(name string) (*Bus, error) {
	if _, has := r.buses[name]; has {
		return nil, fmt.Errorf("%w: %q", ErrDuplicateName, name)
	}
	target := memdom.NewDocument().CreateElement("bus")
	b := &Bus{
		name:     name,
		owner:    r,
		target:   target,
		events:   events.NewRegistry(target),
		adapters: map[adapterKey]*adapter{},
	}
	r.buses[name] = b
	return b, nil
}

// Lookup returns the bus registered under the given name, or nil.
func (r *Registry) Lookup(name string) *Bus {
	return r.buses[name]
}

var std = NewRegistry()

// New constructs and registers a bus in the default process-wide
// registry.
func New(name string) (*Bus, error) {
	return std.New(name)
}

// Lookup returns a bus from the default process-wide registry, or nil.
func Lookup(name string) *Bus {
	return std.Lookup(name)
}
