// ©2026 The zetta-parser Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zetta

import "slices"

// Failure is the continuation through which a parse step reports an
// unmet condition: the input state at the failure point, the context
// stack (innermost label first) and a message. The paired input state
// is what lets an alternative backtrack, via [Input.Merge], to before
// the failed branch ran.
type Failure[T any] func(in Input[T], ctx []string, msg string) Step[T]

// Success is the continuation through which a parse step reports a
// produced value together with the input state after consumption.
type Success[T, A any] func(in Input[T], value A) Step[T]

// Parser is a continuation-passing parse step over tokens of type T
// producing a value of type A. Instead of returning a result, a parser
// invokes exactly one of its two continuations, or returns a deferred
// [Step] that will. Failures flow exclusively through the failure
// continuation, never through panics, so a suspended computation can be
// resumed from an arbitrary point.
type Parser[T, A any] func(in Input[T], onFail Failure[T], onSucc Success[T, A]) Step[T]

// Return lifts a pure value into a parser. The resulting parser
// consumes nothing and cannot fail.
func Return[T, A any](a A) Parser[T, A] {
	return func(in Input[T], _ Failure[T], sk Success[T, A]) Step[T] {
		return sk(in, a)
	}
}

// FailWith creates a parser that always fails with the given message,
// consuming nothing.
func FailWith[T, A any](msg string) Parser[T, A] {
	return func(in Input[T], fk Failure[T], _ Success[T, A]) Step[T] {
		return fk(in, []string{"fail-parser"}, msg)
	}
}

// Named labels a failure point. When p fails, label is appended to the
// failure's context stack, so the stack reads innermost label first.
// Success is passed through untouched.
func Named[T, A any](p Parser[T, A], label string) Parser[T, A] {
	return func(in Input[T], fk Failure[T], sk Success[T, A]) Step[T] {
		lose := func(in1 Input[T], ctx []string, msg string) Step[T] {
			return fk(in1, append(slices.Clip(ctx), label), msg)
		}
		return p(in, lose, sk)
	}
}
