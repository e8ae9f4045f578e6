// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package comp implements the component tree engine: stateful
// components wrapping native [dom] nodes, composed into hierarchies
// through an ordered children collection that keeps the native tree
// and the logical tree in sync at all times.
//
// The core types build on each other: [Base] provides identity and
// disposal, [NodeBase] wraps one native node and carries the
// mount/unmount protocol and listener bookkeeping, [ElementBase] adds
// attribute, visibility, and enable/disable semantics, and
// [ContainerBase] composes an element with a [Children] collection and
// cascades disabled state to its descendants. [Fragment] stages
// components off-tree for a single batch splice.
//
// Everything is single-threaded and synchronous: every operation runs
// to completion before returning, and listener callbacks may themselves
// mutate the tree.
package comp

import (
	"github.com/corvid-ui/corvid/types"
)

// Component is the base interface satisfied by every component.
type Component interface {

	// AsComponent returns the [Base] of this component.
	AsComponent() *Base

	// Dispose releases the component's native node and listener
	// registrations. Components are disposed exactly once; calling
	// any tree operation on a disposed component is a contract
	// violation with undefined behavior.
	Dispose()
}

// Base provides component identity: the type descriptor, the disposed
// flag, and a free-form diagnostic tag.
type Base struct {

	// Pointer is an optional free-form diagnostic tag for
	// identifying this component in logs and paths.
	Pointer string

	typ      *types.Type
	disposed bool
}

// AsComponent returns the [Base] of this component.
func (b *Base) AsComponent() *Base {
	return b
}

// Type returns the registered type descriptor of this component.
func (b *Base) Type() *types.Type {
	return b.typ
}

// ClassName returns the short ID-name of this component's type.
func (b *Base) ClassName() string {
	if b.typ == nil {
		return ""
	}
	return b.typ.IDName
}

// ClassPath returns the ancestry chain of type ID-names for this
// component's type, leaf first. It is for diagnostics.
func (b *Base) ClassPath() []string {
	if b.typ == nil {
		return nil
	}
	return b.typ.ClassPath()
}

// Disposed reports whether the component has been disposed.
func (b *Base) Disposed() bool {
	return b.disposed
}

// SetupComponent, if non-nil, is called at the end of component
// initialization as a pluggable post-construction customization point
// (e.g. assigning generated class names). It is injected by the
// application layer and is opaque to this package.
var SetupComponent func(c Component, data any)
