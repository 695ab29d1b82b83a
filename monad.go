// ©2026 The zetta-parser Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zetta

// Monad operations for parsers.
//
// Minimal definition: Return (unit) and Bind are necessary and
// sufficient. Map and Then are derived operations kept as optimizations
// to avoid intermediate closure allocations.

// Bind sequences two parsers (monadic bind). It runs m, then passes the
// result to f to get the next parser.
//
// The success continuation bounces through a [Thunk] so that the native
// stack does not grow with the length of a bind chain; the driver loop
// performs the actual call.
func Bind[T, A, B any](m Parser[T, A], f func(A) Parser[T, B]) Parser[T, B] {
	return func(in Input[T], fk Failure[T], sk Success[T, B]) Step[T] {
		return m(in, fk, func(in1 Input[T], a A) Step[T] {
			return Thunk[T](func() Step[T] {
				return f(a)(in1, fk, sk)
			})
		})
	}
}

// Map applies a pure function to the result of a parser.
//
// Allocation note: Map is equivalent to Bind(m, compose(Return, f)) but
// avoids the intermediate Return closure and the trampoline bounce,
// since a pure transformation cannot recurse.
func Map[T, A, B any](m Parser[T, A], f func(A) B) Parser[T, B] {
	return func(in Input[T], fk Failure[T], sk Success[T, B]) Step[T] {
		return m(in, fk, func(in1 Input[T], a A) Step[T] {
			return sk(in1, f(a))
		})
	}
}

// Then sequences two parsers, discarding the first result. This is more
// efficient than Bind when the second parser does not depend on the
// first value.
func Then[T, A, B any](m Parser[T, A], n Parser[T, B]) Parser[T, B] {
	return func(in Input[T], fk Failure[T], sk Success[T, B]) Step[T] {
		return m(in, fk, func(in1 Input[T], _ A) Step[T] {
			return Thunk[T](func() Step[T] {
				return n(in1, fk, sk)
			})
		})
	}
}

// ThenSkip sequences two parsers, keeping the first result and
// discarding the second (the "<*" shape: parse a value, then require a
// trailing delimiter).
func ThenSkip[T, A, B any](m Parser[T, A], n Parser[T, B]) Parser[T, A] {
	return func(in Input[T], fk Failure[T], sk Success[T, A]) Step[T] {
		return m(in, fk, func(in1 Input[T], a A) Step[T] {
			return Thunk[T](func() Step[T] {
				return n(in1, fk, func(in2 Input[T], _ B) Step[T] {
					return sk(in2, a)
				})
			})
		})
	}
}
