package goini

import "strings"

func isspace(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	}
	return false
}

func (p *Parser) isCommentStart(c byte) bool {
	return strings.IndexByte(p.cfg.commentChars, c) >= 0
}

func (p *Parser) isValueChar(c byte) bool {
	return !p.isCommentStart(c) && c != p.cfg.sep
}

func (p *Parser) isKeyChar(c byte) bool {
	return p.isValueChar(c) && c != '='
}

// skipSpace consumes whitespace, line separators included, and returns
// the number of bytes consumed.
func (p *Parser) skipSpace() int {
	n := 0
	for !p.s.EOF() && (isspace(p.s.Peek()) || p.s.Peek() == p.cfg.sep) {
		p.s.Consume()
		n++
	}
	return n
}

// skipBlank is skipSpace confined to the current line.
func (p *Parser) skipBlank() int {
	n := 0
	for !p.s.EOF() && p.s.Peek() != p.cfg.sep && isspace(p.s.Peek()) {
		p.s.Consume()
		n++
	}
	return n
}

// skipLine consumes everything up to and including the next line
// separator.
func (p *Parser) skipLine() {
	for !p.s.EOF() {
		if p.s.Consume() == p.cfg.sep {
			return
		}
	}
}

// scan consumes bytes while accept holds and returns them.
func (p *Parser) scan(accept func(byte) bool) string {
	var b strings.Builder
	for !p.s.EOF() && accept(p.s.Peek()) {
		b.WriteByte(p.s.Consume())
	}
	return b.String()
}
