// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comp

import (
	"fmt"
	"log/slog"
	"slices"

	"github.com/corvid-ui/corvid/base/findfast"
	"github.com/corvid-ui/corvid/dom"
)

// Children owns the ordered child collection of a container. The
// logical sequence order equals the native child order at every
// observable point; a component appears at most once, and its parent
// back-reference points to exactly the container whose collection
// holds it, maintained through the mount/unmount hooks.
//
// Structural errors are returned synchronously before any mutation;
// operations referencing components not in the collection are silent
// no-ops, and numeric positions out of range are clamped.
type Children struct {

	// OnClear, if set, is invoked at the end of [Children.Clear] so
	// owners composing additional off-sequence internal subtrees can
	// dispose those as well.
	OnClear func() `copier:"-"`

	owner Container
	list  []Node
}

// init binds the collection to its owning container. It is called by
// [InitContainer].
func (ch *Children) init(owner Container) {
	ch.owner = owner
}

func (ch *Children) check() bool {
	if ch.owner == nil {
		slog.Error("comp.Children: collection used before InitContainer")
		return false
	}
	return true
}

func (ch *Children) ownerDOM() dom.Node {
	return ch.owner.AsNode().dom
}

// Len returns the number of children.
func (ch *Children) Len() int {
	return len(ch.list)
}

// At returns the child at the given index, or nil if out of range.
func (ch *Children) At(i int) Node {
	if i < 0 || i >= len(ch.list) {
		return nil
	}
	return ch.list[i]
}

// IndexOf returns the index of the given component, or -1 if it is
// not in the collection. It uses the component's last known position
// as a bidirectional search hint.
func (ch *Children) IndexOf(c Node) int {
	if c == nil {
		return -1
	}
	nb := c.AsNode()
	i := findfast.FindFunc(ch.list, func(e Node) bool { return e == c }, nb.index)
	if i >= 0 {
		nb.index = i
	}
	return i
}

// Contains reports whether the component is in the collection.
func (ch *Children) Contains(c Node) bool {
	return ch.IndexOf(c) >= 0
}

// All returns a snapshot copy of the children in order.
func (ch *Children) All() []Node {
	return slices.Clone(ch.list)
}

// dedupe returns the components with nils and repeats removed,
// preserving first-occurrence order.
func dedupe(cs []Node) []Node {
	out := make([]Node, 0, len(cs))
	for _, c := range cs {
		if c == nil {
			continue
		}
		if !slices.Contains(out, c) {
			out = append(out, c)
		}
	}
	return out
}

// removeFromParents removes the components from their current parents,
// batched per distinct parent to avoid redundant hook churn. A
// component already owned by the destination is removed the same way,
// turning a re-append into a move.
func removeFromParents(cs []Node) {
	var order []*ContainerBase
	groups := map[*ContainerBase][]Node{}
	for _, c := range cs {
		p := c.AsNode().parent
		if p == nil {
			continue
		}
		pc := p.AsContainer()
		if _, ok := groups[pc]; !ok {
			order = append(order, pc)
		}
		groups[pc] = append(groups[pc], c)
	}
	for _, pc := range order {
		pc.Children.Remove(groups[pc]...)
	}
}

// mountAt splices the components into the sequence starting at the
// given position, firing the mount hook pair around each native
// attachment. The position advances per component so the input order
// is preserved.
func (ch *Children) mountAt(at int, cs []Node) {
	own := ch.ownerDOM()
	for _, c := range cs {
		c.OnBeforeMount(ch.owner)
		var ref dom.Node
		if at < len(ch.list) {
			ref = ch.list[at].AsNode().dom
		}
		ch.list = slices.Insert(ch.list, at, c)
		own.InsertBefore(c.AsNode().dom, ref)
		c.OnDidMount(ch.owner)
		at++
	}
}

// Append adds the components at the end of the collection. Repeats in
// the input are treated once; components currently owned elsewhere are
// first removed from those parents, and a component already owned here
// moves to the last position.
func (ch *Children) Append(cs ...Node) {
	if !ch.check() {
		return
	}
	cs = dedupe(cs)
	if len(cs) == 0 {
		return
	}
	removeFromParents(cs)
	ch.mountAt(len(ch.list), cs)
}

// InsertAt inserts the components at the given position. A negative
// position clamps to the front; a position at or past the end appends.
func (ch *Children) InsertAt(at int, cs ...Node) {
	if !ch.check() {
		return
	}
	cs = dedupe(cs)
	if len(cs) == 0 {
		return
	}
	removeFromParents(cs)
	at = min(max(at, 0), len(ch.list))
	ch.mountAt(at, cs)
}

// InsertBefore inserts the components before the given reference
// component. If the collection is empty this degenerates to an append;
// if the reference is not in the collection it is a no-op. Passing a
// reference that is also one of the inserted components is a
// structural error.
func (ch *Children) InsertBefore(ref Node, cs ...Node) error {
	if !ch.check() {
		return nil
	}
	cs = dedupe(cs)
	if len(cs) == 0 {
		return nil
	}
	if slices.Contains(cs, ref) {
		return fmt.Errorf("%w: insert reference is among the inserted components", ErrStructural)
	}
	if len(ch.list) == 0 {
		ch.Append(cs...)
		return nil
	}
	if ch.IndexOf(ref) < 0 {
		return nil
	}
	removeFromParents(cs)
	ch.mountAt(ch.IndexOf(ref), cs)
	return nil
}

// AppendFragment drains the fragment and splices its contents at the
// end of the collection in one native operation, then fires the mount
// hooks for each drained component in order. A nil or empty fragment
// is a no-op.
func (ch *Children) AppendFragment(f *Fragment) {
	ch.insertFragment(-1, f)
}

// InsertFragmentAt drains the fragment and splices its contents at the
// given position in one native operation. Positions clamp like
// [Children.InsertAt].
func (ch *Children) InsertFragmentAt(at int, f *Fragment) {
	ch.insertFragment(min(max(at, 0), len(ch.list)), f)
}

// InsertFragmentBefore drains the fragment and splices its contents
// before the reference component in one native operation. A reference
// not in the collection is a no-op.
func (ch *Children) InsertFragmentBefore(ref Node, f *Fragment) {
	i := ch.IndexOf(ref)
	if i < 0 {
		return
	}
	ch.insertFragment(i, f)
}

// insertFragment is the single native splice shared by the fragment
// entry points; at == -1 appends. Fragment members are guaranteed
// parent-less, so there is no removal step.
func (ch *Children) insertFragment(at int, f *Fragment) {
	if !ch.check() || f == nil || f.Len() == 0 {
		return
	}
	if at < 0 {
		at = len(ch.list)
	}
	frag, cs := f.Clear()
	own := ch.ownerDOM()
	for _, c := range cs {
		c.OnBeforeMount(ch.owner)
	}
	var ref dom.Node
	if at < len(ch.list) {
		ref = ch.list[at].AsNode().dom
	}
	ch.list = slices.Insert(ch.list, at, cs...)
	own.InsertBefore(frag, ref)
	for _, c := range cs {
		c.OnDidMount(ch.owner)
	}
}

// Remove unmounts the given components without disposing them;
// ownership passes back to the caller. Arguments not currently in the
// collection are silently ignored. With no arguments it removes every
// child, in reverse order.
func (ch *Children) Remove(cs ...Node) {
	ch.extract(nil, cs)
}

// Extract is [Children.Remove] plus pushing each removed component
// into out, preserving removal order. With no arguments it extracts
// every child.
func (ch *Children) Extract(out *[]Node, cs ...Node) {
	ch.extract(out, cs)
}

func (ch *Children) extract(out *[]Node, cs []Node) {
	if !ch.check() {
		return
	}
	var targets []Node
	if len(cs) == 0 {
		targets = make([]Node, 0, len(ch.list))
		for i := len(ch.list) - 1; i >= 0; i-- {
			targets = append(targets, ch.list[i])
		}
	} else {
		for _, c := range dedupe(cs) {
			if ch.IndexOf(c) >= 0 {
				targets = append(targets, c)
			}
		}
	}
	if len(targets) == 0 {
		return
	}
	// inspection before detachment: all before-unmount hooks fire
	// while the components are still fully attached
	for _, c := range targets {
		c.OnBeforeUnmount()
	}
	own := ch.ownerDOM()
	for _, c := range targets {
		if i := ch.IndexOf(c); i >= 0 {
			ch.list = slices.Delete(ch.list, i, i+1)
		}
		own.RemoveChild(c.AsNode().dom)
		c.OnDidUnmount()
		if out != nil {
			*out = append(*out, c)
		}
	}
}

// MoveTo extracts the components from this collection and appends them
// to the target container. With no components it moves everything.
// Moving to the own container is a structural error.
func (ch *Children) MoveTo(target Container, cs ...Node) error {
	if err := ch.checkMoveTarget(target); err != nil {
		return err
	}
	var moved []Node
	ch.extract(&moved, cs)
	target.AsContainer().Children.Append(moved...)
	return nil
}

// MoveToAt extracts the components from this collection and inserts
// them into the target container at the given position.
func (ch *Children) MoveToAt(target Container, at int, cs ...Node) error {
	if err := ch.checkMoveTarget(target); err != nil {
		return err
	}
	var moved []Node
	ch.extract(&moved, cs)
	target.AsContainer().Children.InsertAt(at, moved...)
	return nil
}

// MoveToBefore extracts the components from this collection and
// inserts them into the target container before the given reference,
// which must already be a child of the target.
func (ch *Children) MoveToBefore(target Container, ref Node, cs ...Node) error {
	if err := ch.checkMoveTarget(target); err != nil {
		return err
	}
	tc := target.AsContainer()
	if tc.Children.IndexOf(ref) < 0 {
		return fmt.Errorf("%w: move reference is not a child of the target container", ErrStructural)
	}
	if slices.Contains(cs, ref) {
		return fmt.Errorf("%w: move reference is among the moved components", ErrStructural)
	}
	var moved []Node
	ch.extract(&moved, cs)
	return tc.Children.InsertBefore(ref, moved...)
}

func (ch *Children) checkMoveTarget(target Container) error {
	if target == nil {
		return fmt.Errorf("%w: nil move target", ErrStructural)
	}
	if ch.owner != nil && target.AsContainer() == ch.owner.AsContainer() {
		return fmt.Errorf("%w: cannot move components to their own container", ErrStructural)
	}
	return nil
}

// Clear unmounts and disposes every child, in reverse order. Unlike
// [Children.Remove], the children must not be reused afterwards. If
// [Children.OnClear] is set it is invoked at the end.
func (ch *Children) Clear() {
	if !ch.check() {
		return
	}
	targets := make([]Node, 0, len(ch.list))
	for i := len(ch.list) - 1; i >= 0; i-- {
		targets = append(targets, ch.list[i])
	}
	for _, c := range targets {
		c.OnBeforeUnmount()
	}
	own := ch.ownerDOM()
	for _, c := range targets {
		if i := ch.IndexOf(c); i >= 0 {
			ch.list = slices.Delete(ch.list, i, i+1)
		}
		own.RemoveChild(c.AsNode().dom)
		c.OnDidUnmount()
		c.Dispose()
	}
	if ch.OnClear != nil {
		ch.OnClear()
	}
}
