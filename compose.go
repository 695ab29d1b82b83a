// ©2026 The zetta-parser Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zetta

// Alternative and repetition combinators, composed from the core
// primitives. Backtracking follows the snapshot-and-merge discipline:
// an alternative snapshots the input before its first attempt and, on
// failure, resumes the fallback on [Input.Merge] of the snapshot with
// the failure state, undoing consumption while keeping any chunks the
// failed attempt pulled from the source.

// Or tries p and, if it fails, tries q from the same starting point.
// The failure that reaches the caller is q's; p's is discarded.
func Or[T, A any](p, q Parser[T, A]) Parser[T, A] {
	return func(in Input[T], fk Failure[T], sk Success[T, A]) Step[T] {
		lose := func(post Input[T], _ []string, _ string) Step[T] {
			return Thunk[T](func() Step[T] {
				return q(in.Merge(post), fk, sk)
			})
		}
		return p(in, lose, sk)
	}
}

// Choice tries each parser in order, returning the first success.
func Choice[T, A any](ps ...Parser[T, A]) Parser[T, A] {
	if len(ps) == 0 {
		return FailWith[T, A]("choice: no alternatives")
	}
	p := ps[0]
	for _, q := range ps[1:] {
		p = Or(p, q)
	}
	return p
}

// Option tries p and succeeds with def if p fails.
func Option[T, A any](def A, p Parser[T, A]) Parser[T, A] {
	return Or(p, Return[T](def))
}

// Many applies p zero or more times, collecting the results. p must be
// able to fail: applying Many to a parser that never fails (such as
// [TakeWhile]) does not terminate.
func Many[T, A any](p Parser[T, A]) Parser[T, []A] {
	return func(in Input[T], fk Failure[T], sk Success[T, []A]) Step[T] {
		var out []A
		var loop func(Input[T]) Step[T]
		loop = func(cur Input[T]) Step[T] {
			lose := func(post Input[T], _ []string, _ string) Step[T] {
				return sk(cur.Merge(post), out)
			}
			win := func(next Input[T], a A) Step[T] {
				out = append(out, a)
				return Thunk[T](func() Step[T] { return loop(next) })
			}
			return p(cur, lose, win)
		}
		return loop(in)
	}
}

// Many1 applies p one or more times.
func Many1[T, A any](p Parser[T, A]) Parser[T, []A] {
	return Bind(p, func(first A) Parser[T, []A] {
		return Map(Many(p), func(rest []A) []A {
			return append([]A{first}, rest...)
		})
	})
}

// SkipMany applies p zero or more times, discarding the results. The
// same termination obligation as [Many] applies.
func SkipMany[T, A any](p Parser[T, A]) Parser[T, struct{}] {
	return func(in Input[T], fk Failure[T], sk Success[T, struct{}]) Step[T] {
		var loop func(Input[T]) Step[T]
		loop = func(cur Input[T]) Step[T] {
			lose := func(post Input[T], _ []string, _ string) Step[T] {
				return sk(cur.Merge(post), struct{}{})
			}
			win := func(next Input[T], _ A) Step[T] {
				return Thunk[T](func() Step[T] { return loop(next) })
			}
			return p(cur, lose, win)
		}
		return loop(in)
	}
}

// SkipMany1 applies p one or more times, discarding the results.
func SkipMany1[T, A any](p Parser[T, A]) Parser[T, struct{}] {
	return Then(p, SkipMany(p))
}

// SepBy1 parses one or more occurrences of p separated by sep.
func SepBy1[T, A, S any](p Parser[T, A], sep Parser[T, S]) Parser[T, []A] {
	return Bind(p, func(first A) Parser[T, []A] {
		return Map(Many(Then(sep, p)), func(rest []A) []A {
			return append([]A{first}, rest...)
		})
	})
}

// SepBy parses zero or more occurrences of p separated by sep.
func SepBy[T, A, S any](p Parser[T, A], sep Parser[T, S]) Parser[T, []A] {
	return Or(SepBy1(p, sep), Return[T]([]A(nil)))
}

// ManyTill applies p repeatedly until end succeeds, collecting p's
// results. end is tried before each application of p; its consumption
// is kept, its failure rewound.
func ManyTill[T, A, B any](p Parser[T, A], end Parser[T, B]) Parser[T, []A] {
	return func(in Input[T], fk Failure[T], sk Success[T, []A]) Step[T] {
		var out []A
		var loop func(Input[T]) Step[T]
		loop = func(cur Input[T]) Step[T] {
			stop := func(next Input[T], _ B) Step[T] {
				return sk(next, out)
			}
			tryP := func(post Input[T], _ []string, _ string) Step[T] {
				return Thunk[T](func() Step[T] {
					return p(cur.Merge(post), fk, func(next Input[T], a A) Step[T] {
						out = append(out, a)
						return Thunk[T](func() Step[T] { return loop(next) })
					})
				})
			}
			return end(cur, tryP, stop)
		}
		return loop(in)
	}
}

// Count applies p exactly n times, collecting the results.
func Count[T, A any](n int, p Parser[T, A]) Parser[T, []A] {
	return func(in Input[T], fk Failure[T], sk Success[T, []A]) Step[T] {
		out := make([]A, 0, max(n, 0))
		var loop func(Input[T]) Step[T]
		loop = func(cur Input[T]) Step[T] {
			if len(out) >= n {
				return sk(cur, out)
			}
			return p(cur, fk, func(next Input[T], a A) Step[T] {
				out = append(out, a)
				return Thunk[T](func() Step[T] { return loop(next) })
			})
		}
		return loop(in)
	}
}
