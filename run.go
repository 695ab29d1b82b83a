// ©2026 The zetta-parser Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zetta

import "strings"

// Result is the outcome of running a parser: [Done], [Fail] or
// [Partial].
type Result[T, A any] interface {
	result()
}

// Done is a completed parse: the produced value and the unconsumed
// remainder.
type Done[T, A any] struct {
	Remainder Input[T]
	Value     A
}

func (Done[T, A]) result() {}

// Fail is a failed parse: the input state at the failure point, the
// context stack (innermost label first) and a message.
type Fail[T, A any] struct {
	Remainder Input[T]
	Context   []string
	Message   string
}

func (Fail[T, A]) result() {}

// Err converts the failure to a Go error.
func (f Fail[T, A]) Err() error {
	return &ParseError{Context: f.Context, Message: f.Message}
}

// Partial is a parse suspended waiting for more input. Exactly one of
// Feed, TryFeed or Discard must be called, exactly once.
type Partial[T, A any] struct {
	s *suspendStep[T]
}

func (Partial[T, A]) result() {}

// Feed supplies one more chunk to the suspended parse and drives it to
// its next terminal result. An empty chunk signals that no more input
// will ever arrive. Panics if the suspension was already consumed.
func (p Partial[T, A]) Feed(chunk []T) Result[T, A] {
	if p.s.used.Add(1) != 1 {
		panic("zetta: partial result fed twice")
	}
	return drive[T, A](p.s.resume(chunk))
}

// TryFeed attempts to supply a chunk. Returns (result, true) on
// success, or (nil, false) if the suspension was already consumed.
func (p Partial[T, A]) TryFeed(chunk []T) (Result[T, A], bool) {
	if p.s.used.Add(1) != 1 {
		return nil, false
	}
	return drive[T, A](p.s.resume(chunk)), true
}

// Discard marks the suspension as consumed without resuming it.
func (p Partial[T, A]) Discard() {
	p.s.used.Store(1)
}

// ParseError is the Go-error form of a [Fail] result, produced at the
// [ParseOnly] boundary.
type ParseError struct {
	Context []string
	Message string
}

func (e *ParseError) Error() string {
	if len(e.Context) == 0 {
		return "zetta: " + e.Message
	}
	return "zetta: " + e.Message + " in " + strings.Join(e.Context, " < ")
}

// drive is the trampoline loop: it steps thunks until a terminal step
// appears, then classifies it into the typed Result. The type-erased
// success value is recovered here; the top-level success continuation
// for a Parser[T, A] only ever stores an A.
func drive[T, A any](s Step[T]) Result[T, A] {
	for {
		switch v := s.(type) {
		case Thunk[T]:
			s = v()
		case *doneStep[T]:
			return Done[T, A]{Remainder: v.in, Value: v.value.(A)}
		case *failStep[T]:
			return Fail[T, A]{Remainder: v.in, Context: v.ctx, Message: v.msg}
		case *suspendStep[T]:
			return Partial[T, A]{s: v}
		default:
			panic("zetta: unknown step type")
		}
	}
}

// terminalFail is the top-level failure continuation.
func terminalFail[T any](in Input[T], ctx []string, msg string) Step[T] {
	return &failStep[T]{in: in, ctx: ctx, msg: msg}
}

// terminalSucc is the top-level success continuation. A named generic
// function produces a static function value per type instantiation,
// avoiding the heap allocation that anonymous closures incur.
func terminalSucc[T, A any](in Input[T], a A) Step[T] {
	return &doneStep[T]{in: in, value: a}
}

// Parse begins an incremental parse of p over the first chunk. The
// stream starts Incomplete: the result is [Partial] whenever p needs
// input beyond what has been fed so far.
func Parse[T, A any](p Parser[T, A], chunk []T) Result[T, A] {
	return drive[T, A](p(NewInput(chunk, Incomplete), terminalFail[T], terminalSucc[T, A]))
}

// ParseOnly runs p over a fully delivered input. The stream is Complete
// from the start, so the parse can never suspend; failures surface as a
// [ParseError]. The second return is the unconsumed remainder.
func ParseOnly[T, A any](p Parser[T, A], input []T) (A, Input[T], error) {
	r := drive[T, A](p(NewInput(input, Complete), terminalFail[T], terminalSucc[T, A]))
	switch v := r.(type) {
	case Done[T, A]:
		return v.Value, v.Remainder, nil
	case Fail[T, A]:
		var zero A
		return zero, v.Remainder, v.Err()
	}
	panic("zetta: parser suspended on complete input")
}

// ParseWith runs p, invoking supply whenever the parse suspends. The
// supply function is the prompt callback of the incremental protocol:
// it receives the input state at the suspension point and returns
// either a chunk and true, or false meaning no more input will ever
// arrive. An empty chunk is treated as finality.
func ParseWith[T, A any](p Parser[T, A], initial []T, supply func(Input[T]) ([]T, bool)) Result[T, A] {
	r := Parse(p, initial)
	for {
		part, ok := r.(Partial[T, A])
		if !ok {
			return r
		}
		chunk, more := supply(part.s.in)
		if !more {
			chunk = nil
		}
		r = part.Feed(chunk)
	}
}
