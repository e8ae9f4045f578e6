// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comp

// Container is an element component that owns a [Children] collection.
type Container interface {
	Element

	// AsContainer returns the [ContainerBase] of this container.
	AsContainer() *ContainerBase
}

// ContainerBase implements [Container]: an element composed with an
// ordered child collection. Explicitly disabling it cascades the
// parent-disabled flag through its descendants via [ElementBase].
type ContainerBase struct {
	ElementBase

	// Children is the ordered child collection. Tree membership is
	// mutated only through its operations, never directly.
	Children Children `copier:"-"`
}

// AsContainer returns the [ContainerBase] of this container.
func (c *ContainerBase) AsContainer() *ContainerBase {
	return c
}

// Dispose disposes every child and then the container itself.
func (c *ContainerBase) Dispose() {
	if c.disposed {
		return
	}
	c.Children.Clear()
	c.disposeNode()
}
