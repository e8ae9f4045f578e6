// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package findfast searches ordered slices outward from a positional
// hint. Child lookups in a component tree almost always ask about a
// position at or near the one last observed, so probing both
// directions from the hint finds the answer in a few steps instead of
// scanning from the front.
package findfast

// FindFunc returns the index of the first element for which match
// reports true, probing bidirectionally outward from hint. A hint
// outside the slice bounds falls back to the middle. Returns -1 if no
// element matches.
func FindFunc[T any](s []T, match func(e T) bool, hint int) int {
	n := len(s)
	if n == 0 {
		return -1
	}
	if hint < 0 || hint >= n {
		hint = n / 2
	}
	for lo, hi := hint, hint+1; lo >= 0 || hi < n; {
		if lo >= 0 {
			if match(s[lo]) {
				return lo
			}
			lo--
		}
		if hi < n {
			if match(s[hi]) {
				return hi
			}
			hi++
		}
	}
	return -1
}
