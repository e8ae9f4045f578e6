// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package comp

const (
	// Continue can be returned from tree iteration functions to
	// continue processing down the tree, as compared to [Break]
	// which stops this branch.
	Continue = true

	// Break can be returned from tree iteration functions to stop
	// processing this branch of the tree.
	Break = false
)

// WalkDown calls the given function on the component and all of its
// descendants in a depth-first manner. It stops walking the current
// branch if the function returns [Break].
func WalkDown(n Node, fun func(n Node) bool) {
	if n == nil {
		return
	}
	if !fun(n) {
		return
	}
	c, ok := n.(Container)
	if !ok {
		return
	}
	for _, k := range c.AsContainer().Children.All() {
		WalkDown(k, fun)
	}
}

// WalkDownPost iterates depth-first over the descendants, calling
// shouldContinue on each component to test whether the branch should
// be processed, and calls fun only after all of a component's children
// have been iterated over, so deeper components are processed first.
func WalkDownPost(n Node, shouldContinue func(n Node) bool, fun func(n Node) bool) {
	if n == nil || !shouldContinue(n) {
		return
	}
	if c, ok := n.(Container); ok {
		for _, k := range c.AsContainer().Children.All() {
			WalkDownPost(k, shouldContinue, fun)
		}
	}
	fun(n)
}

// WalkUp calls the given function on the component and all of its
// parents, stopping if the function returns [Break]. It returns
// whether walking finished without being aborted.
func WalkUp(n Node, fun func(n Node) bool) bool {
	for cur := Node(n); cur != nil; {
		if !fun(cur) {
			return false
		}
		p := cur.AsNode().parent
		if p == nil {
			return true
		}
		cur = p
	}
	return true
}
