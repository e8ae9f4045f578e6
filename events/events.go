// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package events provides listener-record bookkeeping on top of a
// [dom.EventTarget]. A [Registry] mirrors every native registration in
// an ordered record list so listeners can be suspended, resumed, and
// bulk-managed while preserving their original invocation order.
// It is the shared machinery behind component event methods and
// event buses.
package events

import (
	"slices"

	"github.com/corvid-ui/corvid/base/funcid"
	"github.com/corvid-ui/corvid/dom"
)

// Mode selects the bulk operation applied by [Registry.All].
type Mode int32

const (
	// Off permanently removes and clears every record.
	Off Mode = iota

	// Suspend marks every record suspended and detaches it from the
	// native target, keeping the record.
	Suspend

	// Resume marks every record non-suspended and reinstalls them in
	// original registration order.
	Resume
)

func (m Mode) String() string {
	switch m {
	case Off:
		return "Off"
	case Suspend:
		return "Suspend"
	case Resume:
		return "Resume"
	}
	return "Mode(" + string(rune('0'+int32(m))) + ")"
}

// Record is one registered listener. Uniqueness within a registry is
// (Type, callback identity, Options). A suspended record stays in the
// list but is not attached to the native target.
type Record struct {

	// Type is the event type the listener is registered for.
	Type string

	// Options is the normalized option bag the listener was
	// registered with.
	Options dom.EventOptions

	// Suspended indicates the record is currently detached from
	// the native target.
	Suspended bool

	// fn is the caller's listener; its [funcid.Of] identity is used
	// for lookups.
	fn  dom.Listener
	key uintptr

	// attached is the per-record wrapper actually registered with the
	// native target. A distinct closure per record keeps native
	// (callback, capture) deduplication from conflating records that
	// differ only in non-capture options.
	attached dom.Listener
}

// Registry tracks the listeners registered on one native target.
type Registry struct {
	target  dom.EventTarget
	records []*Record
}

// NewRegistry returns a registry bound to the given native target.
func NewRegistry(target dom.EventTarget) *Registry {
	return &Registry{target: target}
}

// Target returns the native target this registry is bound to.
func (r *Registry) Target() dom.EventTarget {
	return r.target
}

// Len returns the number of live records.
func (r *Registry) Len() int {
	return len(r.records)
}

// Records returns a snapshot of the live records in registration order.
func (r *Registry) Records() []*Record {
	return slices.Clone(r.records)
}

func key(fn dom.Listener) uintptr {
	return funcid.Of(fn)
}

func optsOf(opts []dom.EventOptions) dom.EventOptions {
	if len(opts) > 0 {
		return opts[0]
	}
	return dom.EventOptions{}
}

// find returns the index of the record matching (typ, fn key, opts)
// and the extra condition, or -1.
func (r *Registry) find(typ string, k uintptr, o dom.EventOptions, cond func(*Record) bool) int {
	for i, rec := range r.records {
		if rec.Type == typ && rec.key == k && rec.Options == o && cond(rec) {
			return i
		}
	}
	return -1
}

func all(*Record) bool { return true }

// On registers the listener with the native target and appends a
// non-suspended record. A duplicate (type, listener, options)
// registration is a no-op.
func (r *Registry) On(typ string, fn dom.Listener, opts ...dom.EventOptions) {
	r.add(typ, fn, optsOf(opts))
}

// Once registers a one-shot listener: the native layer auto-removes it
// after its first invocation and the record is purged at that point.
// One-shot records are not touched by [Registry.Suspend],
// [Registry.Resume], or [Registry.All].
func (r *Registry) Once(typ string, fn dom.Listener, opts ...dom.EventOptions) {
	o := optsOf(opts)
	o.Once = true
	r.add(typ, fn, o)
}

func (r *Registry) add(typ string, fn dom.Listener, o dom.EventOptions) {
	if fn == nil || r.target == nil {
		return
	}
	k := key(fn)
	if r.find(typ, k, o, all) >= 0 {
		return
	}
	rec := &Record{Type: typ, Options: o, fn: fn, key: k}
	rec.attached = func(ev dom.Event) {
		if rec.Options.Once {
			r.drop(rec)
		}
		fn(ev)
	}
	r.records = append(r.records, rec)
	r.target.AddEventListener(typ, rec.attached, o)
}

// drop removes the record from the list without touching the native
// target (used after the native layer has auto-removed a one-shot).
func (r *Registry) drop(rec *Record) {
	if i := slices.Index(r.records, rec); i >= 0 {
		r.records = slices.Delete(r.records, i, i+1)
	}
}

// Off removes the unique record matching (type, listener, options)
// along with its native registration. A no-op if no record matches.
func (r *Registry) Off(typ string, fn dom.Listener, opts ...dom.EventOptions) {
	o := optsOf(opts)
	i := r.find(typ, key(fn), o, all)
	if i < 0 {
		return
	}
	rec := r.records[i]
	r.records = slices.Delete(r.records, i, i+1)
	r.target.RemoveEventListener(typ, rec.attached, o)
}

// SuspendListener suspends the matching non-suspended record: it stays
// in the list but is detached from the native target. Reinstallation
// preserves original registration order.
func (r *Registry) SuspendListener(typ string, fn dom.Listener, opts ...dom.EventOptions) {
	o := optsOf(opts)
	i := r.find(typ, key(fn), o, func(rec *Record) bool {
		return !rec.Suspended && !rec.Options.Once
	})
	if i < 0 {
		return
	}
	r.records[i].Suspended = true
	r.reinstall()
}

// ResumeListener resumes the matching suspended record, reattaching all
// non-suspended records in original registration order.
func (r *Registry) ResumeListener(typ string, fn dom.Listener, opts ...dom.EventOptions) {
	o := optsOf(opts)
	i := r.find(typ, key(fn), o, func(rec *Record) bool {
		return rec.Suspended && !rec.Options.Once
	})
	if i < 0 {
		return
	}
	r.records[i].Suspended = false
	r.reinstall()
}

// reinstall detaches every record and reattaches the non-suspended ones
// in original registration order. Order matters: native targets invoke
// listeners in attachment order.
func (r *Registry) reinstall() {
	for _, rec := range r.records {
		r.target.RemoveEventListener(rec.Type, rec.attached, rec.Options)
	}
	for _, rec := range r.records {
		if !rec.Suspended {
			r.target.AddEventListener(rec.Type, rec.attached, rec.Options)
		}
	}
}

// All applies the given bulk mode to every record. One-shot records
// are never affected.
func (r *Registry) All(m Mode) {
	switch m {
	case Off:
		keep := make([]*Record, 0, len(r.records))
		for _, rec := range r.records {
			if rec.Options.Once {
				keep = append(keep, rec)
				continue
			}
			r.target.RemoveEventListener(rec.Type, rec.attached, rec.Options)
		}
		r.records = keep
	case Suspend:
		for _, rec := range r.records {
			if !rec.Options.Once {
				rec.Suspended = true
			}
		}
		r.reinstall()
	case Resume:
		for _, rec := range r.records {
			if !rec.Options.Once {
				rec.Suspended = false
			}
		}
		r.reinstall()
	}
}

// Dispose detaches and clears every record, including one-shots.
// The registry remains usable but empty.
func (r *Registry) Dispose() {
	for _, rec := range r.records {
		r.target.RemoveEventListener(rec.Type, rec.attached, rec.Options)
	}
	r.records = nil
}
