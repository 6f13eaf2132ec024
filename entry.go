package goini

// Entry is a key/value pair held by a Section.
type Entry struct {
	key     string
	value   string
	section *Section
}

// NewEntry returns a detached entry. Attach it with Section.InsertEntry.
func NewEntry(key, value string) *Entry {
	return &Entry{key: key, value: value}
}

func (e *Entry) Key() string {
	return e.key
}

func (e *Entry) Value() string {
	return e.value
}

func (e *Entry) SetValue(v string) {
	e.value = v
}

// Section returns the section holding e. It is nil once e has been
// removed or replaced, or once its section has left the file it was
// attached to.
func (e *Entry) Section() *Section {
	s := e.holder()
	if s == nil || (s.file != nil && s.File() == nil) {
		return nil
	}
	return s
}

// holder returns the section whose store still holds e, attached to a
// file or not.
func (e *Entry) holder() *Section {
	if e.section == nil {
		return nil
	}
	if cur, ok := e.section.entries.get(e.key); !ok || cur != e {
		return nil
	}
	return e.section
}

func (e *Entry) String() string {
	return e.key + "=" + e.value
}
