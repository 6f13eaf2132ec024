package goini

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

// Parser defaults.
const (
	DefaultCommentChars  = "#;"
	DefaultLineSeparator = '\n'
	DefaultBufferSize    = 512
)

type config struct {
	commentChars string
	sep          byte
	bufferSize   int
	logger       *log.Logger
}

func defaultConfig() config {
	return config{
		commentChars: DefaultCommentChars,
		sep:          DefaultLineSeparator,
		bufferSize:   DefaultBufferSize,
	}
}

func (c *config) validate() error {
	if c.commentChars == "" || strings.ContainsAny(c.commentChars, "=[") ||
		strings.IndexByte(c.commentChars, c.sep) >= 0 {
		return ErrCommentChars
	}
	if c.bufferSize <= 0 || c.bufferSize&(c.bufferSize-1) != 0 {
		return ErrBufferSize
	}
	if c.logger == nil {
		c.logger = log.New(io.Discard)
	}
	return nil
}

// Option configures a Parser.
type Option func(*config)

// WithCommentChars sets the bytes that start a comment.
func WithCommentChars(chars string) Option {
	return func(c *config) { c.commentChars = chars }
}

// WithLineSeparator sets the byte that ends a line.
func WithLineSeparator(sep byte) Option {
	return func(c *config) { c.sep = sep }
}

// WithBufferSize sets the read buffer size. It must be a power of two.
func WithBufferSize(n int) Option {
	return func(c *config) { c.bufferSize = n }
}

// WithLogger makes the parser emit debug records to l.
func WithLogger(l *log.Logger) Option {
	return func(c *config) { c.logger = l }
}
