// Package families provides ready-made concrete error families built on
// package envelope. Each family has a marker type (e.g. NotFoundFamily), a
// concrete value type (e.g. NotFoundError), and a constructor (e.g. NotFound).
//
// Concrete values erase themselves via Envelope() and can be recovered from
// any Opaque handle with envelope.Recover:
//
//	o := envelope.From[families.NotFoundFamily](families.NotFound("Customer", "42"))
//	...
//	if nf, ok := envelope.Recover[families.NotFoundError](o); ok {
//		fmt.Println(nf.Type, nf.Id)
//	}
//
// Every family carries its whole value in the envelope's extensions, and an
// optional cause (set with Because) in the envelope's cause.
package families
