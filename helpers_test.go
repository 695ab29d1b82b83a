// ©2026 The zetta-parser Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zetta_test

import (
	"testing"
	"unicode"

	zetta "github.com/clojens/zetta-parser"
)

func isLetter(r rune) bool { return unicode.IsLetter(r) }
func isDigit(r rune) bool  { return '0' <= r && r <= '9' }

// runChunked parses chunks delivered one at a time, then signals end of
// input if the parser is still suspended.
func runChunked[A any](t *testing.T, p zetta.Parser[rune, A], chunks ...string) zetta.Result[rune, A] {
	t.Helper()
	var first []rune
	if len(chunks) > 0 {
		first = []rune(chunks[0])
	}
	r := zetta.Parse(p, first)
	for _, c := range chunks[1:] {
		part, ok := r.(zetta.Partial[rune, A])
		if !ok {
			t.Fatalf("parse finished early with %#v before feeding %q", r, c)
		}
		r = part.Feed([]rune(c))
	}
	if part, ok := r.(zetta.Partial[rune, A]); ok {
		r = part.Feed(nil)
	}
	return r
}

func wantDone[A any](t *testing.T, r zetta.Result[rune, A]) zetta.Done[rune, A] {
	t.Helper()
	d, ok := r.(zetta.Done[rune, A])
	if !ok {
		t.Fatalf("result = %#v, want Done", r)
	}
	return d
}

func wantFail[A any](t *testing.T, r zetta.Result[rune, A]) zetta.Fail[rune, A] {
	t.Helper()
	f, ok := r.(zetta.Fail[rune, A])
	if !ok {
		t.Fatalf("result = %#v, want Fail", r)
	}
	return f
}
