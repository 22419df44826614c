// Package value provides the type-erased values of the property engine.
//
// A Value holds exactly one payload of one kind from the closed set in
// package kind. The only concrete Value is Typed[T]; its kind is fixed at
// construction. Property is a nullable cell around one Value, and PropMap is
// an ordered, hierarchical name → Property map that is itself a kind, so
// maps nest without special cases.
//
// Reading a payload of the wrong kind is a programming error: CastTo and Get
// panic with a *CastError and never reinterpret the stored data.
package value
