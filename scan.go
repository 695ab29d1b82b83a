// ©2026 The zetta-parser Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zetta

import "slices"

// Scanning combinators. Each behaves identically whether the matching
// run of tokens lies inside one delivered chunk or spans many chunks
// delivered over time: the loop consumes the chunk-local prefix, peeks
// with WantInput, and bounces through a Thunk per iteration so that a
// megabyte of matching input costs O(1) native stack.
//
// TakeWhile, SkipWhile, TakeTill and TakeRest never fail. Wrapping one
// of them in a repeat-until-failure combinator such as [Many] does not
// terminate; that obligation is the caller's.

// spanLen returns the length of the longest prefix of toks satisfying
// pred.
func spanLen[T any](toks []T, pred func(T) bool) int {
	for i, t := range toks {
		if !pred(t) {
			return i
		}
	}
	return len(toks)
}

// SkipWhile consumes the longest run of tokens satisfying pred,
// spanning chunk boundaries, and discards it. It never fails.
func SkipWhile[T any](pred func(T) bool) Parser[T, struct{}] {
	return func(in Input[T], fk Failure[T], sk Success[T, struct{}]) Step[T] {
		var loop func(Input[T]) Step[T]
		loop = func(cur Input[T]) Step[T] {
			cur = cur.drop(spanLen(cur.Remaining(), pred))
			if cur.Len() > 0 {
				return sk(cur, struct{}{})
			}
			return WantInput[T](cur, fk, func(next Input[T], more bool) Step[T] {
				if !more {
					return sk(next, struct{}{})
				}
				return Thunk[T](func() Step[T] { return loop(next) })
			})
		}
		return loop(in)
	}
}

// TakeWhile consumes and returns the longest run of tokens satisfying
// pred, spanning chunk boundaries. It never fails: a first token that
// does not match yields an empty result, not an error.
//
// Each iteration appends the chunk-local prefix to a fragment list;
// the fragments are concatenated once when the run ends.
func TakeWhile[T any](pred func(T) bool) Parser[T, []T] {
	return func(in Input[T], fk Failure[T], sk Success[T, []T]) Step[T] {
		var frags [][]T
		var loop func(Input[T]) Step[T]
		loop = func(cur Input[T]) Step[T] {
			rem := cur.Remaining()
			if n := spanLen(rem, pred); n > 0 {
				frags = append(frags, rem[:n:n])
				cur = cur.drop(n)
			}
			if cur.Len() > 0 {
				return sk(cur, slices.Concat(frags...))
			}
			return WantInput[T](cur, fk, func(next Input[T], more bool) Step[T] {
				if !more {
					return sk(next, slices.Concat(frags...))
				}
				return Thunk[T](func() Step[T] { return loop(next) })
			})
		}
		return loop(in)
	}
}

// TakeWhile1 is like [TakeWhile] but must match at least one token,
// demanding input once if none is buffered. If the first available
// token does not satisfy pred it fails with label "take-while1" and the
// input fully restored; if no token will ever exist it fails with
// "not enough input".
func TakeWhile1[T any](pred func(T) bool) Parser[T, []T] {
	return func(in Input[T], fk Failure[T], sk Success[T, []T]) Step[T] {
		start := func(cur Input[T]) Step[T] {
			rem := cur.Remaining()
			n := spanLen(rem, pred)
			if n == 0 {
				return fk(cur, []string{"take-while1"}, "take-while1")
			}
			prefix := rem[:n:n]
			next := cur.drop(n)
			if next.Len() > 0 {
				return sk(next, prefix)
			}
			// The prefix consumed the whole buffer; the run may continue
			// in the next chunk.
			return TakeWhile(pred)(next, fk, func(in1 Input[T], rest []T) Step[T] {
				if len(rest) == 0 {
					return sk(in1, prefix)
				}
				return sk(in1, slices.Concat(prefix, rest))
			})
		}
		if in.Len() == 0 {
			return DemandInput[T](in, fk, func(in1 Input[T], _ struct{}) Step[T] {
				return Thunk[T](func() Step[T] { return start(in1) })
			})
		}
		return start(in)
	}
}

// TakeTill consumes and returns tokens until pred first holds:
// TakeWhile of pred's complement. It never fails.
func TakeTill[T any](pred func(T) bool) Parser[T, []T] {
	return TakeWhile(func(t T) bool { return !pred(t) })
}

// TakeRest drains all remaining input across every future chunk and
// returns it as a sequence of chunks, one element per continuation hop,
// in delivery order. It never fails.
func TakeRest[T any](in Input[T], fk Failure[T], sk Success[T, [][]T]) Step[T] {
	var chunks [][]T
	var loop func(Input[T]) Step[T]
	loop = func(cur Input[T]) Step[T] {
		return WantInput[T](cur, fk, func(next Input[T], more bool) Step[T] {
			if !more {
				return sk(next, chunks)
			}
			chunks = append(chunks, next.Remaining())
			return Thunk[T](func() Step[T] { return loop(next.dropAll()) })
		})
	}
	return loop(in)
}
