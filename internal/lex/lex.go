// Package lex implements the lexical layer of the DOT grammar: rune
// classification, the two whitespace/comment skip modes ("ws" and "wsr"),
// the identifier/quoted-string reader, and the bounded look-ahead scanner
// the grammar layer uses to disambiguate statement productions.
//
// lex hand-rolls its scanning rather than using a lexer-generator or
// parser-combinator library: the grammar requires toggling between two
// whitespace-skip modes mid-parse and bounding look-ahead to "before the
// next ';' or newline" (spec.md §4.1-§4.2), neither of which composes with
// a single global tokenizer. See DESIGN.md.
package lex

import (
	"strings"
	"unicode/utf8"

	"github.com/ritamzico/dotgraph/internal/ast"
)

// Keywords recognized as identifier-like tokens.
const (
	KwStrict   = "strict"
	KwGraph    = "graph"
	KwDigraph  = "digraph"
	KwNode     = "node"
	KwEdge     = "edge"
	KwSubgraph = "subgraph"
)

// unquotedChar reports whether r may appear in an unquoted identifier, per
// spec §4.1's intentionally broad character class.
func unquotedChar(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9':
		return true
	}
	switch r {
	case '_', '+', '*', '.', ':', '!', '?', '$', '%', '&', '@', '(', ')',
		'<', '>', '\'', '`', '|', '^', '~':
		return true
	}
	return false
}

// Scanner reads runes from a DOT source string, tracking line/column/byte
// position for diagnostics.
type Scanner struct {
	src  string
	pos  int // byte offset
	line int // 1-based
	col  int // 1-based, in runes
}

// New creates a Scanner positioned at the start of src.
func New(src string) *Scanner {
	return &Scanner{src: src, pos: 0, line: 1, col: 1}
}

// Position returns the scanner's current location.
func (s *Scanner) Position() ast.Position {
	return ast.Position{Line: s.line, Column: s.col, Offset: s.pos}
}

// AtEOF reports whether the scanner has consumed the entire input.
func (s *Scanner) AtEOF() bool {
	return s.pos >= len(s.src)
}

// Peek returns the rune at the current position without consuming it, or
// utf8.RuneError with size 0 at EOF.
func (s *Scanner) Peek() rune {
	r, _ := s.peekAt(s.pos)
	return r
}

// PeekAhead returns the rune n runes past the current position (0 ==
// current), without consuming anything.
func (s *Scanner) PeekAhead(n int) rune {
	off := s.pos
	var r rune
	var size int
	for i := 0; i <= n; i++ {
		r, size = s.peekAt(off)
		if size == 0 {
			return utf8.RuneError
		}
		off += size
	}
	return r
}

func (s *Scanner) peekAt(off int) (rune, int) {
	if off >= len(s.src) {
		return utf8.RuneError, 0
	}
	r, size := utf8.DecodeRuneInString(s.src[off:])
	return r, size
}

// Advance consumes and returns the current rune.
func (s *Scanner) Advance() rune {
	r, size := s.peekAt(s.pos)
	if size == 0 {
		return utf8.RuneError
	}
	s.pos += size
	if r == '\n' {
		s.line++
		s.col = 1
	} else {
		s.col++
	}
	return r
}

// HasPrefix reports whether the unconsumed input starts with lit.
func (s *Scanner) HasPrefix(lit string) bool {
	return len(s.src)-s.pos >= len(lit) && s.src[s.pos:s.pos+len(lit)] == lit
}

// Consume advances past lit, which must be a verified prefix (see
// HasPrefix); it is the caller's responsibility to check first.
func (s *Scanner) Consume(lit string) {
	for range lit {
		s.Advance()
	}
}

// SkipWS skips spaces, tabs, and block comments, stopping at (never
// consuming) a newline. This is the "ws" mode of spec §4.1. Its block
// comment variant forbids a newline in the comment's interior (mirroring
// `original_source`'s `enclosed_comment` content class, which excludes
// `dsl::ascii::newline`): a `/*...*/` that spans a newline is not consumed
// here, so a same-line look-ahead can't be silently extended across a
// statement boundary by what looks like whitespace.
func (s *Scanner) SkipWS() {
	for {
		switch {
		case s.Peek() == ' ' || s.Peek() == '\t' || s.Peek() == '\r':
			s.Advance()
		case s.HasPrefix("/*"):
			if !s.trySkipBlockCommentNoNewline() {
				return
			}
		default:
			return
		}
	}
}

// SkipWSR additionally consumes newlines and line comments. This is the
// "wsr" mode of spec §4.1.
func (s *Scanner) SkipWSR() {
	for {
		switch {
		case s.Peek() == ' ' || s.Peek() == '\t' || s.Peek() == '\r' || s.Peek() == '\n':
			s.Advance()
		case s.HasPrefix("/*"):
			s.skipBlockComment()
		case s.HasPrefix("//"):
			s.skipLineComment()
		default:
			return
		}
	}
}

// skipBlockComment skips a block comment whose interior may contain
// newlines. Used only by SkipWSR, which is newline-transparent throughout.
func (s *Scanner) skipBlockComment() {
	s.Consume("/*")
	for !s.AtEOF() && !s.HasPrefix("*/") {
		s.Advance()
	}
	if s.HasPrefix("*/") {
		s.Consume("*/")
	}
}

// trySkipBlockCommentNoNewline attempts to skip a block comment under the
// "ws" discipline, which forbids a newline in its interior. On success it
// consumes the comment and returns true. If a newline is found before the
// closing "*/", or the comment is unterminated, the scanner is left exactly
// where it started and this returns false, so the caller can treat the
// comment as ordinary (unconsumed) content instead.
func (s *Scanner) trySkipBlockCommentNoNewline() bool {
	start, startLine, startCol := s.pos, s.line, s.col
	s.Consume("/*")
	for !s.AtEOF() && !s.HasPrefix("*/") {
		if s.Peek() == '\n' {
			s.pos, s.line, s.col = start, startLine, startCol
			return false
		}
		s.Advance()
	}
	if !s.HasPrefix("*/") {
		s.pos, s.line, s.col = start, startLine, startCol
		return false
	}
	s.Consume("*/")
	return true
}

func (s *Scanner) skipLineComment() {
	s.Consume("//")
	for !s.AtEOF() && s.Peek() != '\n' {
		s.Advance()
	}
}

// ReadName reads a quoted or unquoted identifier at the current position.
// ok is false if no identifier starts here.
func (s *Scanner) ReadName() (name string, ok bool) {
	if s.Peek() == '"' {
		return s.readQuoted()
	}
	return s.readUnquoted()
}

func (s *Scanner) readUnquoted() (string, bool) {
	start := s.pos
	for unquotedChar(s.Peek()) {
		s.Advance()
	}
	if s.pos == start {
		return "", false
	}
	return s.src[start:s.pos], true
}

var escapeMap = map[rune]rune{
	'"':  '"',
	'\\': '\\',
	'/':  '/',
	'b':  '\b',
	'f':  '\f',
	'n':  '\n',
	'r':  '\r',
	't':  '\t',
}

func (s *Scanner) readQuoted() (string, bool) {
	if s.Peek() != '"' {
		return "", false
	}
	s.Advance() // opening quote
	var b []byte
	for {
		if s.AtEOF() {
			return "", false
		}
		r := s.Peek()
		if r == '"' {
			s.Advance()
			return string(b), true
		}
		if r == '\\' {
			s.Advance()
			esc := s.Advance()
			if mapped, known := escapeMap[esc]; known {
				b = utf8.AppendRune(b, mapped)
				continue
			}
			b = utf8.AppendRune(b, esc)
			continue
		}
		s.Advance()
		b = utf8.AppendRune(b, r)
	}
}

// LookaheadLine scans forward from the current position, without consuming
// anything, for the first occurrence of any literal in targets, bounded by
// the next ';' or newline (whichever comes first and is not itself masked
// by a block comment); brackets and quotes are not tracked. It returns the index into targets of
// the first literal found, or -1 if the boundary is reached first.
func (s *Scanner) LookaheadLine(targets ...string) int {
	off := s.pos
	for off < len(s.src) {
		if s.src[off] == ';' || s.src[off] == '\n' {
			return -1
		}
		if off+1 < len(s.src) && s.src[off] == '/' && s.src[off+1] == '*' {
			end := strings.Index(s.src[off+2:], "*/")
			if end < 0 {
				return -1
			}
			off = off + 2 + end + 2
			continue
		}
		for i, t := range targets {
			if len(s.src)-off >= len(t) && s.src[off:off+len(t)] == t {
				return i
			}
		}
		off++
	}
	return -1
}

// Clone returns an independent copy of the scanner, positioned identically.
// Used for speculative look-ahead that must not disturb the real cursor.
func (s *Scanner) Clone() *Scanner {
	c := *s
	return &c
}

// Seek repositions a scanner at byte offset off, leaving line/column
// tracking approximate; callers that Seek only ever discard the scanner
// afterward (see MatchBrace's use in the grammar layer).
func (s *Scanner) Seek(off int) {
	s.pos = off
}

// MatchBrace reports the byte offset just past the '}' matching the '{' at
// the current position, skipping over quoted strings so that braces inside
// a quoted name don't affect nesting depth. ok is false if the current rune
// isn't '{' or no match is found before EOF.
func (s *Scanner) MatchBrace() (off int, ok bool) {
	if s.Peek() != '{' {
		return 0, false
	}
	depth := 0
	i := s.pos
	inQuote := false
	for i < len(s.src) {
		c := s.src[i]
		if inQuote {
			if c == '\\' && i+1 < len(s.src) {
				i += 2
				continue
			}
			if c == '"' {
				inQuote = false
			}
			i++
			continue
		}
		switch c {
		case '"':
			inQuote = true
		case '{':
			depth++
		case '}':
			depth--
			if depth == 0 {
				return i + 1, true
			}
		}
		i++
	}
	return 0, false
}

// LookaheadTopLevel is LookaheadLine's bracket- and quote-aware sibling: it
// ignores matches found inside a quoted string or inside a bracketed
// attribute list ('[' … ']'), and treats only a depth-zero ';' or newline as
// the boundary. The grammar layer uses this to tell apart an EdgeStatement,
// an AttrItem, and a NodeStatement whose own attribute list happens to
// contain '=' (spec §4.2).
func (s *Scanner) LookaheadTopLevel(targets ...string) int {
	off := s.pos
	depth := 0
	inQuote := false
	for off < len(s.src) {
		c := s.src[off]
		if inQuote {
			if c == '\\' && off+1 < len(s.src) {
				off += 2
				continue
			}
			if c == '"' {
				inQuote = false
			}
			off++
			continue
		}
		if c == '"' {
			inQuote = true
			off++
			continue
		}
		if depth == 0 && off+1 < len(s.src) && c == '/' && s.src[off+1] == '*' {
			end := strings.Index(s.src[off+2:], "*/")
			if end < 0 {
				return -1
			}
			off = off + 2 + end + 2
			continue
		}
		if depth == 0 && (c == ';' || c == '\n') {
			return -1
		}
		switch c {
		case '[':
			depth++
		case ']':
			if depth > 0 {
				depth--
			}
		}
		if depth == 0 {
			for i, t := range targets {
				if len(s.src)-off >= len(t) && s.src[off:off+len(t)] == t {
					return i
				}
			}
		}
		off++
	}
	return -1
}

// IsKeyword reports whether name is one of the reserved words, using
// longest-match: the caller must have already read a maximal identifier
// run, so no further continuation check is needed here.
func IsKeyword(name string) bool {
	switch name {
	case KwStrict, KwGraph, KwDigraph, KwNode, KwEdge, KwSubgraph:
		return true
	default:
		return false
	}
}
