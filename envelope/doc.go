// Package envelope provides a generic, extensible error representation. Library
// authors define their own strongly-typed errors while callers handle them
// generically: store them, log them, and chain them as causes without knowing
// every concrete type in advance.
//
// An Envelope is parameterized by a marker type that names an error family.
// Marker types are never instantiated; they exist only to derive a
// typetag.Tag:
//
//	type ParseMarker struct{}
//
//	type ParseError struct {
//		Location int
//	}
//
//	func (pe ParseError) Envelope() *envelope.Envelope[ParseMarker] {
//		return envelope.New[ParseMarker]("Parse Error", envelope.WithExtensions(pe))
//	}
//
//	func (ParseError) Family() typetag.Tag { return typetag.Of[ParseMarker]() }
//
//	func (pe *ParseError) Restore(o envelope.Opaque) bool {
//		payload, ok := o.Extensions().(ParseError)
//		*pe = payload
//		return ok
//	}
//
// Erasing is total: any concrete value becomes an Opaque via From (or
// Erase(value.Envelope())). Recovering is partial: Recover[ParseError](o)
// checks the envelope's tag against ParseError's family before rebuilding the
// payload, and a mismatched family is reported as an ordinary false, never a
// panic.
//
// Consumers that don't recognize a family can still use the generic view
// (Description, Details, Cause) and walk the cause chain with Chain or Walk.
package envelope
