package goini

import (
	"errors"
	"fmt"
)

var (
	ErrEmptySectionName    = errors.New("empty section name")
	ErrUnterminatedSection = errors.New("unterminated section header")
	ErrMalformedLine       = errors.New("malformed line")
	ErrBufferSize          = errors.New("buffer size must be a power of two")
	ErrCommentChars        = errors.New("invalid comment characters")
	ErrUnwritable          = errors.New("cannot be written as INI")
)

// ParseError reports where in which input a parse failed.
type ParseError struct {
	File string
	Pos  Position
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%s: %v (offset %d)", e.File, e.Pos, e.Err, e.Pos.Offset)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
