package goini

import (
	"errors"
	"io"
	"strconv"
)

// Position locates the byte most recently consumed from a Stream.
// Line is 1-based; Offset and Column start at 0.
type Position struct {
	Offset int
	Line   int
	Column int
}

func (p Position) String() string {
	return strconv.Itoa(p.Line) + ":" + strconv.Itoa(p.Column)
}

func (p *Position) advance(c, sep byte) {
	p.Offset++
	if c == sep {
		p.Line++
		p.Column = 0
		return
	}
	p.Column++
}

// Stream reads bytes from an io.Reader through a fixed size lookahead
// buffer. Once the source is exhausted Peek and Consume return 0.
type Stream struct {
	r    io.Reader
	buf  []byte
	idx  int // read cursor
	n    int // bytes produced by the last fill
	done bool
	err  error
	sep  byte
	pos  Position
}

// NewStream returns a Stream reading r with a buffer of size bytes.
// size must be a power of two.
func NewStream(r io.Reader, size int, sep byte) (*Stream, error) {
	if size <= 0 || size&(size-1) != 0 {
		return nil, ErrBufferSize
	}
	return &Stream{
		r:   r,
		buf: make([]byte, size),
		sep: sep,
		pos: Position{Line: 1},
	}, nil
}

// fill refills the buffer once the cursor has caught up with the last
// read. Reads returning no data and no error are retried.
func (s *Stream) fill() {
	for s.idx >= s.n && !s.done {
		n, err := s.r.Read(s.buf)
		s.idx, s.n = 0, n
		if err != nil {
			s.done = true
			if !errors.Is(err, io.EOF) {
				s.err = err
			}
		}
	}
}

// Peek returns the next byte without consuming it.
func (s *Stream) Peek() byte {
	s.fill()
	if s.idx >= s.n {
		return 0
	}
	return s.buf[s.idx]
}

// Consume returns the next byte and advances past it.
func (s *Stream) Consume() byte {
	s.fill()
	if s.idx >= s.n {
		return 0
	}
	c := s.buf[s.idx]
	s.idx++
	s.pos.advance(c, s.sep)
	return c
}

// EOF reports whether the source is exhausted and every buffered byte
// has been consumed.
func (s *Stream) EOF() bool {
	s.fill()
	return s.idx >= s.n
}

// Position returns the location of the byte most recently consumed.
func (s *Stream) Position() Position {
	return s.pos
}

// Err returns the first read error other than io.EOF.
func (s *Stream) Err() error {
	return s.err
}
