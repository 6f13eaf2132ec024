package goini

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdapt(t *testing.T) {
	f, err := Parse("t", []byte("[srv]\nport=21\nratio=1.5\ndebug=true\ntimeout=5s\nname=ftp\n"))
	require.NoError(t, err)
	s, _ := f.GetSection("srv")

	port, ok, err := Lookup(s, "port", Int)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 21, port)

	ratio, _, err := Lookup(s, "ratio", Float64)
	require.NoError(t, err)
	assert.Equal(t, 1.5, ratio)

	debug, _, err := Lookup(s, "debug", Bool)
	require.NoError(t, err)
	assert.True(t, debug)

	timeout, _, err := Lookup(s, "timeout", Duration)
	require.NoError(t, err)
	assert.Equal(t, 5*time.Second, timeout)

	e, _ := s.GetEntry("name")
	name, err := Adapt(e, String)
	require.NoError(t, err)
	assert.Equal(t, "ftp", name)

	_, err = Adapt(e, Int)
	assert.Error(t, err)

	missing, ok, err := Lookup(s, "missing", Int)
	assert.NoError(t, err)
	assert.False(t, ok)
	assert.Zero(t, missing)
}

func TestAdaptCustomConverter(t *testing.T) {
	raw := Converter[[]byte](func(s string) ([]byte, error) { return []byte(s), nil })
	b, err := Adapt(NewEntry("k", "raw"), raw)
	require.NoError(t, err)
	assert.Equal(t, []byte("raw"), b)
}
