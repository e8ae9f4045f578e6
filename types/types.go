// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package types is an explicit type-descriptor registry for component
// types. Each concrete component type registers one [Type] naming
// itself and its base type; the resulting parent chain replaces any
// runtime reflection over the type hierarchy for diagnostics and
// class naming.
package types

import (
	"log/slog"
	"sync/atomic"
)

// Type describes one registered component type.
type Type struct {

	// Name is the fully package-path-qualified name of the type
	// (e.g. github.com/corvid-ui/corvid/comp.ContainerBase).
	Name string

	// IDName is the short, package-unqualified, kebab-case name of
	// the type, suitable for use in IDs and class names
	// (e.g. container-base).
	IDName string

	// Parent is the descriptor of the base type this type builds on,
	// or nil for a hierarchy root.
	Parent *Type

	// ID is the unique type ID number, assigned by [AddType].
	ID uint64
}

func (t *Type) String() string {
	return t.Name
}

// ClassPath returns the ancestry chain of type ID-names, leaf first.
func (t *Type) ClassPath() []string {
	var path []string
	for cur := t; cur != nil; cur = cur.Parent {
		path = append(path, cur.IDName)
	}
	return path
}

// HasBase reports whether this type is, or descends from, the given
// type.
func (t *Type) HasBase(base *Type) bool {
	for cur := t; cur != nil; cur = cur.Parent {
		if cur == base {
			return true
		}
	}
	return false
}

var (
	// registry of all types, keyed by long type name.
	registry = map[string]*Type{}

	// idCounter is atomically incremented for assigning [Type.ID].
	idCounter uint64
)

// AddType adds a constructed [Type] to the registry and returns it,
// assigning its ID. Registering a name twice returns the existing
// descriptor and logs.
func AddType(t *Type) *Type {
	if old, has := registry[t.Name]; has {
		slog.Debug("types.AddType: type already exists", "Type.Name", t.Name)
		return old
	}
	t.ID = atomic.AddUint64(&idCounter, 1)
	registry[t.Name] = t
	return t
}

// TypeByName returns the registered type with the given long name,
// or nil if there is none.
func TypeByName(name string) *Type {
	return registry[name]
}
