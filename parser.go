// Package goini parses INI files into an editable document and writes
// them back out.
package goini

import (
	"bytes"
	"fmt"
	"io"
	"strings"
)

// Parser reads one INI document from a Stream. A Parser is used once.
type Parser struct {
	name    string
	cfg     config
	s       *Stream
	file    *File
	current *Section
}

// New returns a parser reading r. name identifies the input in errors.
func New(name string, r io.Reader, opts ...Option) (*Parser, error) {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	s, err := NewStream(r, cfg.bufferSize, cfg.sep)
	if err != nil {
		return nil, err
	}
	return &Parser{
		name: name,
		cfg:  cfg,
		s:    s,
		file: NewFile(name),
	}, nil
}

// Parse takes given bytes as an INI document called name.
func Parse(name string, data []byte, opts ...Option) (*File, error) {
	return ParseReader(name, bytes.NewReader(data), opts...)
}

// ParseReader parses the document read from r.
func ParseReader(name string, r io.Reader, opts ...Option) (*File, error) {
	p, err := New(name, r, opts...)
	if err != nil {
		return nil, err
	}
	return p.Parse()
}

// Parse consumes the whole input. The first malformed line aborts the
// parse.
func (p *Parser) Parse() (*File, error) {
	for !p.s.EOF() {
		p.skipSpace()
		if p.s.EOF() {
			break
		}
		if p.s.Peek() == '[' {
			if err := p.consumeSection(); err != nil {
				return nil, err
			}
			continue
		}
		if p.current == nil {
			p.cfg.logger.Debug("content before first header", "file", p.name, "section", DefaultSection)
			p.openSection(DefaultSection)
		}
		if p.tryConsumeComment() {
			continue
		}
		key, ok := p.tryConsumeEntry()
		if ok {
			continue
		}
		if p.tryConsumeComment() {
			p.cfg.logger.Debug("text before comment dropped", "file", p.name, "text", key, "pos", p.s.Position())
			continue
		}
		return nil, p.errorf(ErrMalformedLine)
	}
	if err := p.s.Err(); err != nil {
		return nil, fmt.Errorf("read %s: %w", p.name, err)
	}
	return p.file, nil
}

// errorf reports err at the current position. A read error takes
// precedence, since it cut the line short.
func (p *Parser) errorf(err error) error {
	if rerr := p.s.Err(); rerr != nil {
		return fmt.Errorf("read %s: %w", p.name, rerr)
	}
	return &ParseError{File: p.name, Pos: p.s.Position(), Err: err}
}

func (p *Parser) openSection(name string) {
	if p.file.InsertSection(NewSection(name)) {
		p.cfg.logger.Debug("section replaced", "file", p.name, "section", name)
	}
	p.current, _ = p.file.GetSection(name)
}

// consumeSection reads a [name] header and the rest of its line.
func (p *Parser) consumeSection() error {
	p.s.Consume()
	var name strings.Builder
	for {
		if p.s.EOF() || p.s.Peek() == p.cfg.sep {
			return p.errorf(ErrUnterminatedSection)
		}
		c := p.s.Consume()
		if c == ']' {
			break
		}
		name.WriteByte(c)
	}
	if name.Len() == 0 {
		return p.errorf(ErrEmptySectionName)
	}
	p.cfg.logger.Debug("section", "file", p.name, "name", name.String(), "line", p.s.Position().Line)
	p.openSection(name.String())
	p.skipLine()
	return nil
}

// tryConsumeComment consumes a comment up to, not including, the line
// separator.
func (p *Parser) tryConsumeComment() bool {
	p.skipBlank()
	if p.s.EOF() || !p.isCommentStart(p.s.Peek()) {
		return false
	}
	for !p.s.EOF() && p.s.Peek() != p.cfg.sep {
		p.s.Consume()
	}
	return true
}

// tryConsumeEntry reads key=value into the current section. If no '='
// follows the key it returns the key with false; the key bytes are
// consumed either way.
func (p *Parser) tryConsumeEntry() (string, bool) {
	key := p.scan(p.isKeyChar)
	if p.s.EOF() || p.s.Peek() != '=' {
		return key, false
	}
	p.s.Consume()
	value := p.scan(p.isValueChar)
	p.current.AddEntry(key, value)
	p.skipLine()
	return key, true
}
