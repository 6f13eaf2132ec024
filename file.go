package goini

import (
	"fmt"
	"io"
	"strings"
)

// File is the root of a parsed document. It owns its sections, which
// own their entries.
type File struct {
	name     string
	sections orderedMap[*Section]
}

func NewFile(name string) *File {
	return &File{name: name}
}

func (f *File) Name() string {
	return f.name
}

// AddSection creates an empty section called name and reports whether a
// section of that name existed and was replaced. A non-empty parent is
// resolved now; an unknown parent leaves the section without one.
func (f *File) AddSection(name, parent string) bool {
	s := NewSection(name)
	if parent != "" {
		s.parent, _ = f.GetSection(parent)
	}
	return f.InsertSection(s)
}

// InsertSection adds s, detaching it from any other file first, and
// reports whether a different section of the same name was replaced.
func (f *File) InsertSection(s *Section) bool {
	old := s.File()
	if old == f {
		return false
	}
	if old != nil {
		old.sections.delete(s.name)
	}
	s.file = f
	return f.sections.set(s.name, s)
}

// RemoveSection deletes the named section. Removing an absent name is a
// no-op.
func (f *File) RemoveSection(name string) {
	f.sections.delete(name)
}

func (f *File) GetSection(name string) (*Section, bool) {
	return f.sections.get(name)
}

// GetEntry returns the first entry called key, searching sections in
// order.
func (f *File) GetEntry(key string) (*Entry, bool) {
	for _, s := range f.sections.vals {
		if e, ok := s.GetEntry(key); ok {
			return e, true
		}
	}
	return nil, false
}

// Section returns the named section, creating an empty one if needed.
func (f *File) Section(name string) *Section {
	if s, ok := f.sections.get(name); ok {
		return s
	}
	s := NewSection(name)
	f.InsertSection(s)
	return s
}

// Sections returns the sections in insertion order.
func (f *File) Sections() []*Section {
	return f.sections.values()
}

func (f *File) Len() int {
	return f.sections.len()
}

type errWriter struct {
	n   int64
	err error
	w   io.Writer
}

func (e *errWriter) write(s string) {
	if e.err != nil {
		return
	}
	n, err := io.WriteString(e.w, s)
	e.n += int64(n)
	e.err = err
}

// checkWritable rejects names and keys the parser would read back
// differently. Comment characters are not checked since the set is a
// parser option.
func (f *File) checkWritable() error {
	for _, s := range f.sections.vals {
		if s.name == "" || strings.ContainsAny(s.name, "]\n") {
			return fmt.Errorf("%w: section name %q", ErrUnwritable, s.name)
		}
		for _, e := range s.entries.vals {
			if strings.ContainsAny(e.key, "=\n") ||
				(e.key != "" && (isspace(e.key[0]) || e.key[0] == '[')) {
				return fmt.Errorf("%w: key %q in section %q", ErrUnwritable, e.key, s.name)
			}
			if strings.ContainsRune(e.value, '\n') {
				return fmt.Errorf("%w: value of %q in section %q", ErrUnwritable, e.key, s.name)
			}
		}
	}
	return nil
}

// WriteTo writes f in canonical form: a header per section followed by
// one key=value line per entry, with a blank line between sections.
// Nothing is written if a section name is empty or holds ']' or a
// newline, a key holds '=' or a newline or starts with whitespace or
// '[', or a value holds a newline; the error wraps ErrUnwritable.
func (f *File) WriteTo(w io.Writer) (int64, error) {
	if err := f.checkWritable(); err != nil {
		return 0, err
	}
	ew := &errWriter{w: w}
	for i, s := range f.sections.vals {
		if i > 0 {
			ew.write("\n")
		}
		ew.write("[" + s.name + "]\n")
		for _, e := range s.entries.vals {
			ew.write(e.key + "=" + e.value + "\n")
		}
	}
	return ew.n, ew.err
}

// String returns the canonical form of f, or "" if WriteTo would fail.
func (f *File) String() string {
	var b strings.Builder
	f.WriteTo(&b)
	return b.String()
}
