// Copyright (c) 2026, Corvid UI Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package funcid provides identity for function values. Listener
// registries locate registrations by the caller's callback, so two
// references to the same function value must compare equal while
// separately created closures of the same literal must not; the code
// pointer reported by reflect cannot make that distinction, the
// address of the underlying funcval can.
package funcid

import "unsafe"

// Of returns the identity of the given function value: the address of
// its underlying funcval. The caller must hold a reference to fn for
// as long as the identity is used as a key. F must be a function type.
func Of[F any](fn F) uintptr {
	return uintptr(*(*unsafe.Pointer)(unsafe.Pointer(&fn)))
}
