// ©2026 The zetta-parser Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zetta

import "sync/atomic"

// Step is one unit of trampolined evaluation: either a Thunk to be
// stepped again or a terminal outcome. Parsers never call onward into
// long chains synchronously; they return a Step and let the driver loop
// advance it. This keeps native stack depth O(1) in input length no
// matter how deeply combinators nest or how many chunks arrive.
type Step[T any] interface {
	step() // unexported marker method
}

// Thunk defers a single evaluation step. The driver owns the current
// Thunk and discards it after stepping; the closure owns whatever state
// is needed to resume.
type Thunk[T any] func() Step[T]

func (Thunk[T]) step() {}

// doneStep is the terminal step for a successful top-level parse.
// The value is type-erased here and recovered by the driver, which
// knows the parser's result type.
type doneStep[T any] struct {
	in    Input[T]
	value any
}

func (*doneStep[T]) step() {}

// failStep is the terminal step for a failed top-level parse.
type failStep[T any] struct {
	in  Input[T]
	ctx []string
	msg string
}

func (*failStep[T]) step() {}

// suspendStep is the terminal step for a parse waiting on more input.
// It records the state at the suspension point and a resumption that
// accepts exactly one response: a non-empty chunk to append, or an
// empty chunk meaning no more input will ever arrive.
//
// Resumption is affine; used guards against resuming twice.
type suspendStep[T any] struct {
	used   atomic.Uintptr
	in     Input[T]
	resume func(chunk []T) Step[T]
}

func (*suspendStep[T]) step() {}
