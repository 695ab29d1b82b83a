// ©2026 The zetta-parser Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zetta

// Primitive state operations: the minimal vocabulary for inspecting and
// replacing the stream state and for requesting more input from the
// caller. Everything else in the package is built from these.
//
// Get, DemandInput, WantInput and AtEnd are named generic functions
// whose signatures match [Parser]; instantiating one (for example
// Get[byte]) yields a parser value directly, without a constructor
// closure.

// Get succeeds with the current remaining sequence without consuming
// anything. It never fails.
func Get[T any](in Input[T], _ Failure[T], sk Success[T, []T]) Step[T] {
	return sk(in, in.Remaining())
}

// Put replaces the remaining sequence, discarding whatever was there
// before; callers must already have extracted what they needed. It
// never fails.
//
// Putting anything other than a suffix of the current remaining
// sequence starts a fresh arena, which severs the lineage that
// [Input.Merge] relies on for precise rewinds.
func Put[T any](tokens []T) Parser[T, struct{}] {
	return func(in Input[T], _ Failure[T], sk Success[T, struct{}]) Step[T] {
		return sk(in.replace(tokens), struct{}{})
	}
}

// DemandInput requests one more chunk from the caller. If the stream is
// already Complete it fails immediately with "not enough input". If the
// caller answers that no more input exists, it fails the same way with
// the stream now recorded as Complete. If a chunk arrives, it succeeds
// with the chunk appended to the remaining sequence.
func DemandInput[T any](in Input[T], fk Failure[T], sk Success[T, struct{}]) Step[T] {
	if in.more == Complete {
		return fk(in, []string{"demand-input"}, "not enough input")
	}
	return &suspendStep[T]{in: in, resume: func(chunk []T) Step[T] {
		if len(chunk) == 0 {
			return fk(in.finish(), []string{"demand-input"}, "not enough input")
		}
		return sk(in.grow(chunk), struct{}{})
	}}
}

// WantInput reports whether any input is or can become available. It
// never fails: if the buffer is empty and the stream Incomplete, it
// asks the caller for more, mapping "no more input" to false instead of
// a failure. This is the peek that lets the scanning combinators stop
// at end of stream without committing to an error.
//
// It does not consume input, so calling it repeatedly without an
// intervening Put yields the same answer.
func WantInput[T any](in Input[T], _ Failure[T], sk Success[T, bool]) Step[T] {
	if in.Len() > 0 {
		return sk(in, true)
	}
	if in.more == Complete {
		return sk(in, false)
	}
	return &suspendStep[T]{in: in, resume: func(chunk []T) Step[T] {
		if len(chunk) == 0 {
			return sk(in.finish(), false)
		}
		return sk(in.grow(chunk), true)
	}}
}

// AtEnd succeeds with true iff no more input is currently known to
// exist: the negation of [WantInput]. It never fails and never
// consumes.
func AtEnd[T any](in Input[T], fk Failure[T], sk Success[T, bool]) Step[T] {
	return WantInput[T](in, fk, func(in1 Input[T], want bool) Step[T] {
		return sk(in1, !want)
	})
}

// Ensure succeeds with the remaining sequence once at least n tokens
// are buffered, demanding more input as often as needed. It fails when
// [DemandInput] fails, propagating "not enough input".
func Ensure[T any](n int) Parser[T, []T] {
	return func(in Input[T], fk Failure[T], sk Success[T, []T]) Step[T] {
		if in.Len() >= n {
			return sk(in, in.Remaining())
		}
		return DemandInput[T](in, fk, func(in1 Input[T], _ struct{}) Step[T] {
			return Thunk[T](func() Step[T] {
				return Ensure[T](n)(in1, fk, sk)
			})
		})
	}
}
