// ©2026 The zetta-parser Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zetta

// EndOfInput succeeds with no value iff the stream is truly and finally
// exhausted; otherwise it fails with label "end-of-input". Either way
// it consumes nothing.
//
// When the buffer is empty but the stream is still Incomplete the
// answer is not yet known, so EndOfInput probes speculatively with
// [DemandInput] and inverts the outcome: a failed demand (no more
// input) is an EndOfInput success, a chunk arriving is an EndOfInput
// failure. The probe is observable even when EndOfInput "fails": a real
// chunk may have been pulled from the source. Both continuations
// therefore present a state built with [Input.Merge], replaying the
// pre-probe position over the post-probe arena so the arrived tokens
// stay visible to whichever parser runs next.
func EndOfInput[T any](in Input[T], fk Failure[T], sk Success[T, struct{}]) Step[T] {
	if in.Len() > 0 {
		return fk(in, []string{"end-of-input"}, "expected end of input")
	}
	if in.more == Complete {
		return sk(in, struct{}{})
	}
	lose := func(post Input[T], _ []string, _ string) Step[T] {
		return sk(in.Merge(post), struct{}{})
	}
	win := func(post Input[T], _ struct{}) Step[T] {
		return fk(in.Merge(post), []string{"end-of-input"}, "expected end of input")
	}
	return DemandInput[T](in, lose, win)
}
