// Package typetag provides comparable, totally-ordered identifiers for Go
// types. A Tag is derived from a type parameter alone, so marker types that
// are never instantiated can still be used to label error families.
package typetag

import (
	"cmp"
	"reflect"
	"sync"
	"sync/atomic"
)

// Tag identifies a type. Two tags are equal iff they were derived from the
// same type. The zero Tag identifies no type.
type Tag struct {
	t reflect.Type
}

func Of[T any]() Tag {
	return Tag{reflect.TypeOf((*T)(nil)).Elem()}
}

// Type returns the tag's underlying reflect.Type, or nil for the zero Tag.
func (t Tag) Type() reflect.Type {
	return t.t
}

func (t Tag) IsZero() bool {
	return t.t == nil
}

func (t Tag) String() string {
	if t.t == nil {
		return "<none>"
	}
	return t.t.String()
}

// Compare orders tags by package path, then type name. Distinct types that
// share both (e.g. identically named types declared in different functions)
// fall back to the order in which this process first compared them.
func (t Tag) Compare(o Tag) int {
	switch {
	case t.t == o.t:
		return 0
	case t.t == nil:
		return -1
	case o.t == nil:
		return 1
	}

	if c := cmp.Compare(t.t.PkgPath(), o.t.PkgPath()); c != 0 {
		return c
	}
	if c := cmp.Compare(t.t.String(), o.t.String()); c != 0 {
		return c
	}

	return cmp.Compare(ordinal(t.t), ordinal(o.t))
}

func (t Tag) Less(o Tag) bool {
	return t.Compare(o) < 0
}

var (
	ordinals    sync.Map // reflect.Type -> uint64
	lastOrdinal atomic.Uint64
)

func ordinal(t reflect.Type) uint64 {
	if v, ok := ordinals.Load(t); ok {
		return v.(uint64)
	}
	v, _ := ordinals.LoadOrStore(t, lastOrdinal.Add(1))
	return v.(uint64)
}

// Equal reports tag identity; it lets go-cmp compare tags directly.
func (t Tag) Equal(o Tag) bool {
	return t == o
}
