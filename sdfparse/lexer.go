package sdfparse

import (
	"github.com/pkg/errors"
)

type tokenKind uint8

const (
	tokEOF tokenKind = iota
	tokLParen
	tokRParen
	tokAtom
	tokString
)

func (k tokenKind) String() string {
	switch k {
	case tokLParen:
		return "'('"
	case tokRParen:
		return "')'"
	case tokAtom:
		return "atom"
	case tokString:
		return "string"
	default:
		return "end of input"
	}
}

// token is one lexeme with its source position. String tokens carry
// the text without the surrounding quotes.
type token struct {
	kind tokenKind
	text string
	line int
	col  int
}

type lexer struct {
	src  string
	pos  int
	line int
	col  int
}

func newLexer(src string) *lexer {
	return &lexer{src: src, line: 1, col: 1}
}

func (l *lexer) step() byte {
	c := l.src[l.pos]
	l.pos++
	if c == '\n' {
		l.line++
		l.col = 1
	} else {
		l.col++
	}
	return c
}

func (l *lexer) skipSpace() {
	for l.pos < len(l.src) {
		switch c := l.src[l.pos]; {
		case c == ' ' || c == '\t' || c == '\r' || c == '\n':
			l.step()
		case c == '/' && l.pos+1 < len(l.src) && l.src[l.pos+1] == '/':
			for l.pos < len(l.src) && l.src[l.pos] != '\n' {
				l.step()
			}
		default:
			return
		}
	}
}

// isAtomChar reports whether c may appear inside a bare atom. Pin
// paths, numbers, triples and operators all lex as atoms.
func isAtomChar(c byte) bool {
	switch c {
	case '(', ')', '"', ' ', '\t', '\r', '\n':
		return false
	default:
		return true
	}
}

func (l *lexer) next() (token, error) {
	l.skipSpace()
	t := token{line: l.line, col: l.col}
	if l.pos >= len(l.src) {
		t.kind = tokEOF
		return t, nil
	}

	switch c := l.src[l.pos]; c {
	case '(':
		l.step()
		t.kind = tokLParen
		return t, nil
	case ')':
		l.step()
		t.kind = tokRParen
		return t, nil
	case '"':
		l.step()
		start := l.pos
		for l.pos < len(l.src) && l.src[l.pos] != '"' {
			l.step()
		}
		if l.pos >= len(l.src) {
			return t, errors.Wrapf(ErrSyntax, "line %d:%d: unterminated string", t.line, t.col)
		}
		t.kind = tokString
		t.text = l.src[start:l.pos]
		l.step()
		return t, nil
	default:
		start := l.pos
		for l.pos < len(l.src) && isAtomChar(l.src[l.pos]) {
			l.step()
		}
		t.kind = tokAtom
		t.text = l.src[start:l.pos]
		return t, nil
	}
}
