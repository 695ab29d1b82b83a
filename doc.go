// ©2026 The zetta-parser Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package zetta provides monadic parser combinators with incremental
// input in Go.
//
// Callers may feed a parser chunks of a token stream as they arrive
// (from a socket, a chunked file reader, an event loop) without
// re-parsing from scratch and without buffering the whole input up
// front. A parser that needs tokens beyond what has been fed suspends;
// the caller resumes it with the next chunk and evaluation continues
// from the exact suspension point, backtracking across chunk boundaries
// when alternatives fail.
//
// # Execution model
//
// A [Parser] is a continuation-passing computation: it receives an
// [Input] snapshot and two continuations ([Failure], [Success]) and
// reports its outcome by invoking exactly one of them. Every step
// returns a [Step]: either a terminal outcome or a [Thunk], a deferred
// zero-argument computation. The driver loop repeatedly invokes thunks
// until a terminal step appears, so native stack depth stays O(1) in
// input length regardless of how deeply combinators nest.
//
// [Input] is a persistent value: consuming tokens or receiving a chunk
// produces a new snapshot and never mutates an old one. Holding an
// earlier snapshot is equivalent to rewinding, which is what makes
// backtracking safe. The one observable exception is a chunk pulled
// from the source during a speculative probe ([EndOfInput]); the
// [Input.Merge] operation replays both histories so the pulled tokens
// remain available to whichever branch continues.
//
// # Layers
//
//   - Primitive state operations: [Get], [Put], [DemandInput],
//     [WantInput], [Ensure].
//   - Token-level combinators: [Satisfy], [Skip], [Take], [TakeWith],
//     [Tokens], [AnyToken].
//   - Chunk-spanning scanners: [TakeWhile], [TakeWhile1], [SkipWhile],
//     [TakeTill], [TakeRest].
//   - Stream-end probes: [EndOfInput], [AtEnd].
//   - Sequencing and alternatives: [Bind], [Map], [Then], [Or],
//     [Choice], [Many], [SepBy], [ManyTill], [Named].
//
// Derived lexical parsers over rune input (characters, words, numbers)
// live in the text subpackage; they consume only the exported API.
//
// # Running a parser
//
// [Parse] starts an incremental parse and returns a [Result]: [Done],
// [Fail], or [Partial] when more input is needed. [Partial.Feed]
// supplies the next chunk (an empty chunk means the stream has ended).
// [ParseWith] drives the same protocol with a supply callback, and
// [ParseOnly] runs over fully buffered input with a plain Go error
// boundary.
//
//	r := zetta.Parse(p, chunk1)
//	for {
//	    part, ok := r.(zetta.Partial[byte, V])
//	    if !ok {
//	        break
//	    }
//	    r = part.Feed(nextChunk()) // empty chunk: no more input
//	}
//
// # Caller obligations
//
// [TakeWhile], [SkipWhile], [TakeTill] and [TakeRest] never fail;
// wrapping one in a repeat-until-failure combinator such as [Many] does
// not terminate. A [Partial] must be consumed exactly once: Feed after
// Feed panics, mirroring the one-continuation-once contract of the
// incremental protocol.
package zetta
