// Package facade provides typed, named views over graph objects.
//
// # Overview
//
// A facade is a consumer-side contract: a named set of typed fields
// imposed on a graph.Object after the fact. The producer of an object
// (wrap or create) never needs to know which facades will view it. Two
// facade views over the same object are interchangeable and mutate the
// same storage.
//
// A facade is declared as a struct embedding Base, with typed fields
// expressed as accessor methods:
//
//	type User struct{ facade.Base }
//
//	func (u User) ID() string   { return u.String("id") }
//	func (u User) Name() string { return u.String("name") }
//
// Facades compose by returning nested facades:
//
//	type Place struct{ facade.Base }
//
//	func (p Place) Name() string { return p.String("name") }
//	func (p Place) Location() Location {
//		return facade.Of[Location](p.Object("location"))
//	}
//
// # Casting
//
// Of performs the structural cast. It always succeeds: there is no
// runtime validation that the object carries the facade's fields, and
// the object may even be nil. Reading a field the object lacks yields
// the zero value for the field's type, never an error. This trades
// static safety for robustness to schema drift, deliberately.
//
// # Binding
//
// Decode and Encode convert between objects and plain Go structs via
// reflection and `graph:"..."` tags. Unlike facade views, which read the
// shared storage live, a decoded struct is a snapshot.
package facade
