// ©2026 The zetta-parser Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

package zetta_test

import (
	"slices"
	"testing"

	zetta "github.com/clojens/zetta-parser"
)

func str(s string) zetta.Parser[rune, []rune] {
	return zetta.Tokens([]rune(s))
}

func TestOrFirstWins(t *testing.T) {
	p := zetta.Or(str("ab"), str("ac"))
	v, _, err := zetta.ParseOnly(p, []rune("abx"))
	if err != nil {
		t.Fatalf("ParseOnly error: %v", err)
	}
	if string(v) != "ab" {
		t.Errorf("or = %q, want %q", string(v), "ab")
	}
}

func TestOrBacktracks(t *testing.T) {
	p := zetta.Or(str("ab"), str("ac"))
	v, rem, err := zetta.ParseOnly(p, []rune("acx"))
	if err != nil {
		t.Fatalf("ParseOnly error: %v", err)
	}
	if string(v) != "ac" {
		t.Errorf("or = %q, want %q", string(v), "ac")
	}
	if string(rem.Remaining()) != "x" {
		t.Errorf("remaining = %q, want %q", string(rem.Remaining()), "x")
	}
}

func TestOrPreservesPulledChunks(t *testing.T) {
	// the first branch pulls a second chunk before failing; the pull is
	// irreversible, so the fallback must see both chunks
	p := zetta.Or(str("abcd"), str("abce"))
	d := wantDone[[]rune](t, runChunked(t, p, "ab", "ce"))
	if string(d.Value) != "abce" {
		t.Errorf("or across chunk pull = %q, want %q", string(d.Value), "abce")
	}
}

func TestOrReportsSecondFailure(t *testing.T) {
	p := zetta.Or(str("ab"), zetta.Named(str("cd"), "cd-branch"))
	f := wantFail[[]rune](t, zetta.Parse(p, []rune("xy")))
	if !slices.Contains(f.Context, "cd-branch") {
		t.Errorf("context = %v, want the second branch's labels", f.Context)
	}
}

func TestChoice(t *testing.T) {
	p := zetta.Choice(str("aa"), str("bb"), str("cc"))
	v, _, err := zetta.ParseOnly(p, []rune("cc"))
	if err != nil {
		t.Fatalf("ParseOnly error: %v", err)
	}
	if string(v) != "cc" {
		t.Errorf("choice = %q, want %q", string(v), "cc")
	}
}

func TestOption(t *testing.T) {
	p := zetta.Option([]rune("?"), str("ab"))

	v, _, err := zetta.ParseOnly(p, []rune("ab"))
	if err != nil {
		t.Fatalf("ParseOnly error: %v", err)
	}
	if string(v) != "ab" {
		t.Errorf("option = %q, want %q", string(v), "ab")
	}

	v, rem, err := zetta.ParseOnly(p, []rune("zz"))
	if err != nil {
		t.Fatalf("ParseOnly error: %v", err)
	}
	if string(v) != "?" {
		t.Errorf("option default = %q, want %q", string(v), "?")
	}
	if string(rem.Remaining()) != "zz" {
		t.Errorf("remaining = %q, want %q", string(rem.Remaining()), "zz")
	}
}

func TestMany(t *testing.T) {
	v, rem, err := zetta.ParseOnly(zetta.Many(zetta.Satisfy(isDigit)), []rune("123ab"))
	if err != nil {
		t.Fatalf("ParseOnly error: %v", err)
	}
	if string(v) != "123" {
		t.Errorf("many = %q, want %q", string(v), "123")
	}
	if string(rem.Remaining()) != "ab" {
		t.Errorf("remaining = %q, want %q", string(rem.Remaining()), "ab")
	}
}

func TestManyZero(t *testing.T) {
	v, _, err := zetta.ParseOnly(zetta.Many(zetta.Satisfy(isDigit)), []rune("ab"))
	if err != nil {
		t.Fatalf("ParseOnly error: %v", err)
	}
	if len(v) != 0 {
		t.Errorf("many on non-match = %q, want empty", string(v))
	}
}

func TestManyAcrossChunks(t *testing.T) {
	d := wantDone[[]rune](t, runChunked(t, zetta.Many(zetta.Satisfy(isDigit)), "12", "34x"))
	if string(d.Value) != "1234" {
		t.Errorf("many across chunks = %q, want %q", string(d.Value), "1234")
	}
	if string(d.Remainder.Remaining()) != "x" {
		t.Errorf("remaining = %q, want %q", string(d.Remainder.Remaining()), "x")
	}
}

func TestMany1(t *testing.T) {
	if _, _, err := zetta.ParseOnly(zetta.Many1(zetta.Satisfy(isDigit)), []rune("ab")); err == nil {
		t.Error("many1 on non-match succeeded, want failure")
	}

	v, _, err := zetta.ParseOnly(zetta.Many1(zetta.Satisfy(isDigit)), []rune("12a"))
	if err != nil {
		t.Fatalf("ParseOnly error: %v", err)
	}
	if string(v) != "12" {
		t.Errorf("many1 = %q, want %q", string(v), "12")
	}
}

func TestSkipMany(t *testing.T) {
	p := zetta.Then(zetta.SkipMany(zetta.Satisfy(isDigit)), get)
	v, _, err := zetta.ParseOnly(p, []rune("123ab"))
	if err != nil {
		t.Fatalf("ParseOnly error: %v", err)
	}
	if string(v) != "ab" {
		t.Errorf("remaining after skip-many = %q, want %q", string(v), "ab")
	}
}

func TestSkipMany1(t *testing.T) {
	if _, _, err := zetta.ParseOnly(zetta.SkipMany1(zetta.Satisfy(isDigit)), []rune("ab")); err == nil {
		t.Error("skip-many1 on non-match succeeded, want failure")
	}
}

func TestSepBy(t *testing.T) {
	comma := zetta.Satisfy(func(r rune) bool { return r == ',' })
	p := zetta.SepBy(zetta.Satisfy(isDigit), comma)

	v, _, err := zetta.ParseOnly(p, []rune("1,2,3"))
	if err != nil {
		t.Fatalf("ParseOnly error: %v", err)
	}
	if string(v) != "123" {
		t.Errorf("sep-by = %q, want %q", string(v), "123")
	}

	v, _, err = zetta.ParseOnly(p, []rune("ab"))
	if err != nil {
		t.Fatalf("ParseOnly error: %v", err)
	}
	if len(v) != 0 {
		t.Errorf("sep-by on non-match = %q, want empty", string(v))
	}
}

func TestSepByTrailingSeparator(t *testing.T) {
	comma := zetta.Satisfy(func(r rune) bool { return r == ',' })
	p := zetta.SepBy1(zetta.Satisfy(isDigit), comma)
	v, rem, err := zetta.ParseOnly(p, []rune("1,2,"))
	if err != nil {
		t.Fatalf("ParseOnly error: %v", err)
	}
	if string(v) != "12" {
		t.Errorf("sep-by1 = %q, want %q", string(v), "12")
	}
	if string(rem.Remaining()) != "," {
		t.Errorf("remaining = %q, want %q", string(rem.Remaining()), ",")
	}
}

func TestManyTill(t *testing.T) {
	dot := zetta.Satisfy(func(r rune) bool { return r == '.' })
	p := zetta.ManyTill(zetta.AnyToken[rune](), dot)
	v, rem, err := zetta.ParseOnly(p, []rune("ab.c"))
	if err != nil {
		t.Fatalf("ParseOnly error: %v", err)
	}
	if string(v) != "ab" {
		t.Errorf("many-till = %q, want %q", string(v), "ab")
	}
	if string(rem.Remaining()) != "c" {
		t.Errorf("remaining = %q, want %q", string(rem.Remaining()), "c")
	}
}

func TestCount(t *testing.T) {
	v, rem, err := zetta.ParseOnly(zetta.Count(3, zetta.AnyToken[rune]()), []rune("abcd"))
	if err != nil {
		t.Fatalf("ParseOnly error: %v", err)
	}
	if string(v) != "abc" {
		t.Errorf("count = %q, want %q", string(v), "abc")
	}
	if string(rem.Remaining()) != "d" {
		t.Errorf("remaining = %q, want %q", string(rem.Remaining()), "d")
	}

	if _, _, err := zetta.ParseOnly(zetta.Count(3, zetta.AnyToken[rune]()), []rune("ab")); err == nil {
		t.Error("count(3) on two complete tokens succeeded, want failure")
	}
}

func TestNamedContextInnermostFirst(t *testing.T) {
	p := zetta.Named(zetta.Named(zetta.Satisfy(isDigit), "inner"), "outer")
	f := wantFail[rune](t, zetta.Parse(p, []rune("x")))
	want := []string{"satisfy?", "inner", "outer"}
	if !slices.Equal(f.Context, want) {
		t.Errorf("context = %v, want %v", f.Context, want)
	}
}

func TestThenSkip(t *testing.T) {
	p := zetta.ThenSkip(zetta.Satisfy(isDigit), zetta.Satisfy(func(r rune) bool { return r == ';' }))
	v, rem, err := zetta.ParseOnly(p, []rune("7;x"))
	if err != nil {
		t.Fatalf("ParseOnly error: %v", err)
	}
	if v != '7' {
		t.Errorf("then-skip = %q, want '7'", v)
	}
	if string(rem.Remaining()) != "x" {
		t.Errorf("remaining = %q, want %q", string(rem.Remaining()), "x")
	}
}
