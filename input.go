// ©2026 The zetta-parser Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zetta

import "slices"

// More indicates whether further input chunks may still arrive.
type More uint8

const (
	// Incomplete means more chunks may arrive on demand.
	Incomplete More = iota
	// Complete means the end of the stream is final. Once a stream is
	// Complete it never becomes Incomplete again.
	Complete
)

// Input is an immutable snapshot of the unconsumed portion of a token
// stream plus a flag indicating whether more input may still arrive.
//
// The snapshot is an offset into an immutable arena holding every token
// delivered so far. Consuming tokens advances the offset in a new value;
// a newly delivered chunk extends the arena of a new value. The arena
// itself is never mutated, so holding an earlier Input is equivalent to
// rewinding: backtracking combinators snapshot an Input before an
// attempt and reuse it after a failure.
type Input[T any] struct {
	arena []T
	off   int
	more  More
}

// NewInput creates an input snapshot over the given tokens.
// The caller must not mutate tokens after handing them over.
func NewInput[T any](tokens []T, more More) Input[T] {
	return Input[T]{arena: tokens, more: more}
}

// Remaining returns the unconsumed tokens. The returned slice aliases
// the arena and must be treated as read-only.
func (in Input[T]) Remaining() []T { return in.arena[in.off:] }

// Len returns the number of unconsumed tokens.
func (in Input[T]) Len() int { return len(in.arena) - in.off }

// More reports whether further chunks may still arrive.
func (in Input[T]) More() More { return in.more }

// Merge replays two histories of the same stream into one consistent
// state: the receiver's position (undoing any consumption that happened
// after it was snapshotted) combined with post's arena and finality
// (keeping every chunk that arrived in the meantime). This is how an
// alternative resumes its fallback branch, and how the end-of-input
// probe presents its outcome, without losing tokens a prompt pulled
// from the source.
//
// Both states must descend from the same arena lineage; a Put of a
// foreign slice breaks lineage, in which case the rewind position is
// unspecified but no tokens are lost.
func (in Input[T]) Merge(post Input[T]) Input[T] {
	off := in.off
	if off > len(post.arena) {
		off = len(post.arena)
	}
	return Input[T]{arena: post.arena, off: off, more: post.more}
}

// drop consumes n tokens. The arena is shared, so earlier snapshots
// stay valid.
func (in Input[T]) drop(n int) Input[T] {
	in.off += n
	return in
}

// dropAll consumes every buffered token.
func (in Input[T]) dropAll() Input[T] {
	in.off = len(in.arena)
	return in
}

// grow appends a newly delivered chunk. A fresh arena is allocated so
// that no earlier snapshot can observe the append.
func (in Input[T]) grow(chunk []T) Input[T] {
	in.arena = slices.Concat(in.arena, chunk)
	return in
}

// finish marks the stream as complete.
func (in Input[T]) finish() Input[T] {
	in.more = Complete
	return in
}

// replace installs tokens as the new remaining sequence. When tokens is
// a suffix of the current arena the arena is kept, preserving snapshot
// lineage for Merge; otherwise tokens becomes a fresh arena.
func (in Input[T]) replace(tokens []T) Input[T] {
	n := len(tokens)
	if n == 0 {
		return in.dropAll()
	}
	if n <= in.Len() && &tokens[0] == &in.arena[len(in.arena)-n] {
		in.off = len(in.arena) - n
		return in
	}
	return Input[T]{arena: tokens, more: in.more}
}
