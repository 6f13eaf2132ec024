package goini

// DefaultSection names the section holding entries that appear before
// the first header.
const DefaultSection = "<Default Section>"

// Section is a named, insertion ordered collection of entries with
// unique keys.
type Section struct {
	name    string
	parent  *Section
	file    *File
	entries orderedMap[*Entry]
}

// NewSection returns a detached section. Attach it with File.InsertSection.
func NewSection(name string) *Section {
	return &Section{name: name}
}

func (s *Section) Name() string {
	return s.name
}

// File returns the file owning s, or nil if s is not held by one.
func (s *Section) File() *File {
	if s.file == nil {
		return nil
	}
	if cur, ok := s.file.sections.get(s.name); !ok || cur != s {
		return nil
	}
	return s.file
}

// Parent returns the parent section while both s and the parent are
// still held by the same file.
func (s *Section) Parent() *Section {
	if s.parent == nil {
		return nil
	}
	f := s.File()
	if f == nil || s.parent.File() != f {
		return nil
	}
	return s.parent
}

// AddEntry sets key to value. It reports whether key was already present,
// in which case the old entry is replaced in place.
func (s *Section) AddEntry(key, value string) bool {
	return s.InsertEntry(NewEntry(key, value))
}

// InsertEntry adds e, detaching it from any other section first, and
// reports whether a different entry with the same key was replaced.
func (s *Section) InsertEntry(e *Entry) bool {
	old := e.holder()
	if old == s {
		return false
	}
	if old != nil {
		old.entries.delete(e.key)
	}
	e.section = s
	return s.entries.set(e.key, e)
}

// RemoveEntry deletes key and reports whether it was present.
func (s *Section) RemoveEntry(key string) bool {
	return s.entries.delete(key)
}

func (s *Section) GetEntry(key string) (*Entry, bool) {
	return s.entries.get(key)
}

// GetValue returns the value of key. An absent key yields "" and false.
func (s *Section) GetValue(key string) (string, bool) {
	e, ok := s.entries.get(key)
	if !ok {
		return "", false
	}
	return e.value, true
}

// Entry returns the entry for key, creating it with an empty value if
// it does not exist.
func (s *Section) Entry(key string) *Entry {
	if e, ok := s.entries.get(key); ok {
		return e
	}
	e := NewEntry(key, "")
	s.InsertEntry(e)
	return e
}

// Entries returns the entries in insertion order.
func (s *Section) Entries() []*Entry {
	return s.entries.values()
}

func (s *Section) Len() int {
	return s.entries.len()
}
