// Package export renders a parsed INI document in other formats.
package export

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/pelletier/go-toml/v2"

	"github.com/muja/goini"
)

// Format names an output encoding.
type Format string

const (
	JSON Format = "json"
	YAML Format = "yaml"
	TOML Format = "toml"
)

var ErrUnknownFormat = errors.New("unknown export format")

// ParseFormat validates a user supplied format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case JSON, YAML, TOML:
		return f, nil
	}
	return "", fmt.Errorf("%w %q", ErrUnknownFormat, s)
}

// Encode renders f as a mapping of section names to key/value mappings.
// JSON and YAML keep document order; TOML tables are sorted by name.
func Encode(f *goini.File, format Format) ([]byte, error) {
	switch format {
	case JSON:
		return encodeJSON(f)
	case YAML:
		return yaml.Marshal(toMapSlice(f))
	case TOML:
		return toml.Marshal(toMap(f))
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownFormat, format)
}

func toMapSlice(f *goini.File) yaml.MapSlice {
	out := make(yaml.MapSlice, 0, f.Len())
	for _, s := range f.Sections() {
		entries := make(yaml.MapSlice, 0, s.Len())
		for _, e := range s.Entries() {
			entries = append(entries, yaml.MapItem{Key: e.Key(), Value: e.Value()})
		}
		out = append(out, yaml.MapItem{Key: s.Name(), Value: entries})
	}
	return out
}

func toMap(f *goini.File) map[string]map[string]string {
	out := make(map[string]map[string]string, f.Len())
	for _, s := range f.Sections() {
		entries := make(map[string]string, s.Len())
		for _, e := range s.Entries() {
			entries[e.Key()] = e.Value()
		}
		out[s.Name()] = entries
	}
	return out
}

// encodeJSON writes objects by hand so member order follows the document;
// encoding/json sorts map keys.
func encodeJSON(f *goini.File) ([]byte, error) {
	var buf, tmp bytes.Buffer
	enc := json.NewEncoder(&tmp)
	enc.SetEscapeHTML(false)
	writeString := func(s string) error {
		tmp.Reset()
		if err := enc.Encode(s); err != nil {
			return err
		}
		buf.Write(bytes.TrimSuffix(tmp.Bytes(), []byte("\n")))
		return nil
	}
	buf.WriteByte('{')
	for i, s := range f.Sections() {
		if i > 0 {
			buf.WriteByte(',')
		}
		if err := writeString(s.Name()); err != nil {
			return nil, err
		}
		buf.WriteString(":{")
		for j, e := range s.Entries() {
			if j > 0 {
				buf.WriteByte(',')
			}
			if err := writeString(e.Key()); err != nil {
				return nil, err
			}
			buf.WriteByte(':')
			if err := writeString(e.Value()); err != nil {
				return nil, err
			}
		}
		buf.WriteByte('}')
	}
	buf.WriteByte('}')

	var out bytes.Buffer
	if err := json.Indent(&out, buf.Bytes(), "", "  "); err != nil {
		return nil, err
	}
	out.WriteByte('\n')
	return out.Bytes(), nil
}
