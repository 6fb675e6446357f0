package envelope

import (
	"reflect"

	"github.com/jt0/errkit/typetag"
)

// Opaque is a fully type-erased error: some Envelope[M] for an M the holder
// doesn't need to know. Any package can introduce new markers without
// changing this interface.
type Opaque interface {
	error
	Unwrap() error

	Tag() typetag.Tag
	HasTag(tag typetag.Tag) bool
	Description() (string, bool)
	Details() (string, bool)
	Extensions() any
	Cause() Opaque

	ToMap() map[string]any
	String() string
}

// Chain returns o followed by each of its causes, holder first.
func Chain(o Opaque) []Opaque {
	var links []Opaque
	Walk(o, func(_ int, link Opaque) bool {
		links = append(links, link)
		return true
	})

	return links
}

// Walk calls fn for o and each cause in turn, stopping early if fn returns
// false. depth is 0 for o itself. Chains are acyclic since a cause is fixed
// before its holder is built.
func Walk(o Opaque, fn func(depth int, link Opaque) bool) {
	for depth := 0; !isNil(o); depth++ {
		if !fn(depth, o) {
			return
		}
		o = o.Cause()
	}
}

// Depth is the number of links in o's chain (0 for nil).
func Depth(o Opaque) int {
	n := 0
	Walk(o, func(int, Opaque) bool {
		n++
		return true
	})

	return n
}

// Root returns the deepest cause in o's chain, or o itself when it has none.
func Root(o Opaque) Opaque {
	var root Opaque
	Walk(o, func(_ int, link Opaque) bool {
		root = link
		return true
	})

	return root
}

func isNil(o Opaque) bool {
	if o == nil {
		return true
	}
	v := reflect.ValueOf(o)
	return v.Kind() == reflect.Pointer && v.IsNil()
}
