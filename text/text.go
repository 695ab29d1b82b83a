// ©2026 The zetta-parser Authors. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package text provides derived lexical parsers over rune input:
// character classes, literal strings, words and numbers. They are thin
// compositions over the core package and use only its exported API.
package text

import (
	"strconv"
	"strings"
	"unicode"

	zetta "github.com/clojens/zetta-parser"
)

// Parser is a rune parser producing A.
type Parser[A any] = zetta.Parser[rune, A]

var (
	// AnyChar matches any single rune.
	AnyChar = zetta.AnyToken[rune]()

	// Digit matches a single decimal digit rune.
	Digit = zetta.Named(zetta.Satisfy(isDigit), "digit")

	// Letter matches a single letter rune.
	Letter = zetta.Named(zetta.Satisfy(unicode.IsLetter), "letter")

	// Space matches a single whitespace rune.
	Space = zetta.Named(zetta.Satisfy(unicode.IsSpace), "space")

	// SkipSpaces consumes a possibly empty run of whitespace. Never fails.
	SkipSpaces = zetta.SkipWhile(unicode.IsSpace)

	// Spaces consumes a non-empty run of whitespace.
	Spaces = zetta.Named(zetta.TakeWhile1(unicode.IsSpace), "spaces")

	// Word matches one or more letters.
	Word = zetta.Named(TakeWhile1String(unicode.IsLetter), "word")

	// Number matches an unsigned decimal integer.
	Number = zetta.Named(decimal, "number")

	// SignedNumber matches a decimal integer with an optional leading
	// minus sign.
	SignedNumber = zetta.Named(
		zetta.Or(
			zetta.Then(Char('-'), zetta.Map(decimal, func(n int64) int64 { return -n })),
			decimal,
		), "signed-number")
)

// strconv owns range checking; a digit run that overflows int64 fails
// the parse rather than wrapping silently.
var decimal = zetta.Bind(
	TakeWhile1String(isDigit),
	func(s string) Parser[int64] {
		n, err := strconv.ParseInt(s, 10, 64)
		if err != nil {
			return zetta.FailWith[rune, int64](err.Error())
		}
		return zetta.Return[rune](n)
	})

// isDigit matches ASCII decimal digits only; unicode.IsDigit accepts
// digits strconv cannot parse.
func isDigit(r rune) bool { return '0' <= r && r <= '9' }

// Char matches the rune c.
func Char(c rune) Parser[rune] {
	return zetta.Named(zetta.Satisfy(func(r rune) bool { return r == c }), "char "+strconv.QuoteRune(c))
}

// NotChar matches any rune except c.
func NotChar(c rune) Parser[rune] {
	return zetta.Named(zetta.Satisfy(func(r rune) bool { return r != c }), "not-char "+strconv.QuoteRune(c))
}

// OneOf matches any rune contained in s.
func OneOf(s string) Parser[rune] {
	return zetta.Named(zetta.Satisfy(func(r rune) bool {
		return strings.ContainsRune(s, r)
	}), "one-of "+strconv.Quote(s))
}

// String matches the literal string s. On any mismatch, including a
// stream that ends mid-comparison, nothing is consumed.
func String(s string) Parser[string] {
	return zetta.Named(
		zetta.Map(zetta.Tokens([]rune(s)), runesToString),
		"string "+strconv.Quote(s))
}

// TakeWhileString is [zetta.TakeWhile] with a string result.
func TakeWhileString(pred func(rune) bool) Parser[string] {
	return zetta.Map(zetta.TakeWhile(pred), runesToString)
}

// TakeWhile1String is [zetta.TakeWhile1] with a string result.
func TakeWhile1String(pred func(rune) bool) Parser[string] {
	return zetta.Map(zetta.TakeWhile1(pred), runesToString)
}

func runesToString(rs []rune) string { return string(rs) }
