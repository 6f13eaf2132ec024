package goini

import (
	"time"

	"github.com/spf13/cast"
)

// Converter turns an entry value into a T.
type Converter[T any] func(string) (T, error)

func castTo[T any](fn func(any) (T, error)) Converter[T] {
	return func(s string) (T, error) { return fn(s) }
}

var (
	String   Converter[string]        = castTo(cast.ToStringE)
	Int      Converter[int]           = castTo(cast.ToIntE)
	Int64    Converter[int64]         = castTo(cast.ToInt64E)
	Uint     Converter[uint]          = castTo(cast.ToUintE)
	Float64  Converter[float64]       = castTo(cast.ToFloat64E)
	Bool     Converter[bool]          = castTo(cast.ToBoolE)
	Duration Converter[time.Duration] = castTo(cast.ToDurationE)
)

// Adapt converts the value of e with conv.
func Adapt[T any](e *Entry, conv Converter[T]) (T, error) {
	return conv(e.value)
}

// Lookup converts the value of key in s. ok is false when the key is
// absent, in which case the zero T is returned.
func Lookup[T any](s *Section, key string, conv Converter[T]) (v T, ok bool, err error) {
	e, ok := s.GetEntry(key)
	if !ok {
		return v, false, nil
	}
	v, err = conv(e.value)
	return v, true, err
}
