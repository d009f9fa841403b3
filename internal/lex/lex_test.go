package lex

import "testing"

func TestReadNameUnquoted(t *testing.T) {
	s := New("vertex_1 rest")
	name, ok := s.ReadName()
	if !ok {
		t.Fatal("expected a name")
	}
	if name != "vertex_1" {
		t.Errorf("got %q, want %q", name, "vertex_1")
	}
}

func TestReadNameQuotedWithEscapes(t *testing.T) {
	s := New(`"line1\nline2\ttabbed\"quoted\""`)
	name, ok := s.ReadName()
	if !ok {
		t.Fatal("expected a quoted name")
	}
	want := "line1\nline2\ttabbed\"quoted\""
	if name != want {
		t.Errorf("got %q, want %q", name, want)
	}
}

func TestSkipWSStopsAtNewline(t *testing.T) {
	s := New("  \t/* comment */  \nrest")
	s.SkipWS()
	if s.Peek() != '\n' {
		t.Errorf("SkipWS should stop before the newline, got %q", s.Peek())
	}
}

func TestSkipWSRCrossesNewlinesAndLineComments(t *testing.T) {
	s := New("  \n// a comment\n  rest")
	s.SkipWSR()
	name, ok := s.ReadName()
	if !ok || name != "rest" {
		t.Errorf("got %q, %v; want \"rest\", true", name, ok)
	}
}

// TestSkipWSStopsBeforeMultiLineBlockComment covers the "ws" discipline's
// newline-forbidding block comment variant: a /*...*/ whose interior spans
// a newline must not be consumed as whitespace, so a same-line look-ahead
// built on SkipWS can't be silently carried across a statement boundary.
func TestSkipWSStopsBeforeMultiLineBlockComment(t *testing.T) {
	s := New("/*\nsplit*/ rest")
	s.SkipWS()
	if !s.HasPrefix("/*") {
		t.Errorf("SkipWS should leave a multi-line block comment unconsumed, got remainder %q", s.src[s.pos:])
	}
}

func TestSkipWSConsumesSingleLineBlockComment(t *testing.T) {
	s := New("/* fits on one line */rest")
	s.SkipWS()
	name, ok := s.ReadName()
	if !ok || name != "rest" {
		t.Errorf("got %q, %v; want \"rest\", true", name, ok)
	}
}

func TestSkipWSRConsumesMultiLineBlockComment(t *testing.T) {
	s := New("/*\nsplit*/rest")
	s.SkipWSR()
	name, ok := s.ReadName()
	if !ok || name != "rest" {
		t.Errorf("got %q, %v; want \"rest\", true", name, ok)
	}
}

func TestLookaheadTopLevelSkipsBracketedEquals(t *testing.T) {
	s := New(`Jack[age=19]`)
	s.ReadName() // consume "Jack"
	if idx := s.LookaheadTopLevel("="); idx >= 0 {
		t.Errorf("expected no top-level '=', got index %d", idx)
	}
}

func TestLookaheadTopLevelFindsBareEquals(t *testing.T) {
	s := New(`A=B`)
	s.ReadName()
	if idx := s.LookaheadTopLevel("="); idx != 0 {
		t.Errorf("expected top-level '=' at index 0, got %d", idx)
	}
}

func TestLookaheadTopLevelStopsAtBoundary(t *testing.T) {
	s := New("A;\nB=C")
	if idx := s.LookaheadTopLevel("="); idx != -1 {
		t.Errorf("expected boundary to stop the scan before any '=', got %d", idx)
	}
}

func TestMatchBraceSkipsQuotedBraces(t *testing.T) {
	s := New(`{A; B="}"}` + " rest")
	end, ok := s.MatchBrace()
	if !ok {
		t.Fatal("expected a match")
	}
	if s.src[end:end+5] != " rest" {
		t.Errorf("matched brace at wrong offset, remainder is %q", s.src[end:])
	}
}

func TestIsKeyword(t *testing.T) {
	for _, kw := range []string{KwStrict, KwGraph, KwDigraph, KwNode, KwEdge, KwSubgraph} {
		if !IsKeyword(kw) {
			t.Errorf("%q should be a keyword", kw)
		}
	}
	if IsKeyword("nodeX") {
		t.Error(`"nodeX" should not be a keyword`)
	}
}
