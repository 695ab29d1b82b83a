// ©2026 The zetta-parser Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zetta

import "slices"

// Token-level combinators. All of them guarantee no consumption on
// failure: the failing continuation receives the input with nothing
// dropped (chunks pulled while ensuring availability remain, as they
// must; see Input.Merge).

// Satisfy consumes and returns the next token if pred holds for it,
// demanding more input when the buffer is empty. On a token that does
// not satisfy pred it fails with label "satisfy?" and consumes nothing.
func Satisfy[T any](pred func(T) bool) Parser[T, T] {
	return func(in Input[T], fk Failure[T], sk Success[T, T]) Step[T] {
		return Ensure[T](1)(in, fk, func(in1 Input[T], rem []T) Step[T] {
			if t := rem[0]; pred(t) {
				return sk(in1.drop(1), t)
			}
			return fk(in1, []string{"satisfy?"}, "satisfy?")
		})
	}
}

// Skip consumes the next token if pred holds for it, succeeding with no
// value. Fails like [Satisfy], with label "skip", consuming nothing.
func Skip[T any](pred func(T) bool) Parser[T, struct{}] {
	return func(in Input[T], fk Failure[T], sk Success[T, struct{}]) Step[T] {
		return Ensure[T](1)(in, fk, func(in1 Input[T], rem []T) Step[T] {
			if pred(rem[0]) {
				return sk(in1.drop(1), struct{}{})
			}
			return fk(in1, []string{"skip"}, "skip")
		})
	}
}

// AnyToken consumes and returns the next token, whatever it is. It
// fails only when the stream runs out of input.
func AnyToken[T any]() Parser[T, T] {
	return Satisfy(func(T) bool { return true })
}

// TakeWith consumes the next n tokens if pred holds for them as a
// group, demanding input until n tokens are buffered. If pred rejects
// the group it fails with label "take-with" and no consumption: the
// split is discarded on the failing path.
func TakeWith[T any](n int, pred func([]T) bool) Parser[T, []T] {
	return func(in Input[T], fk Failure[T], sk Success[T, []T]) Step[T] {
		return Ensure[T](n)(in, fk, func(in1 Input[T], rem []T) Step[T] {
			head := rem[:n:n]
			if pred(head) {
				return sk(in1.drop(n), head)
			}
			return fk(in1, []string{"take-with"}, "take-with")
		})
	}
}

// Take consumes exactly n tokens, demanding input as needed. It fails
// only when fewer than n tokens will ever exist.
func Take[T any](n int) Parser[T, []T] {
	return TakeWith(n, func([]T) bool { return true })
}

// Tokens consumes tokens equal to want, element for element. On any
// mismatch, including a partial match where the stream ran out midway,
// nothing is consumed; there is no partial credit.
func Tokens[T comparable](want []T) Parser[T, []T] {
	return TakeWith(len(want), func(head []T) bool {
		return slices.Equal(head, want)
	})
}
