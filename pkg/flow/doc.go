// Package flow contains the Result[T] value, the closed failure taxonomy it
// carries and the wire codecs that let both cross process boundaries.
//
// A Result holds exactly one of a success value or a *Failure and never
// changes after construction. Combinators live in the sub packages:
// - solo: synchronous Then/OnSuccess/OnFailure/ReturnAs/Finally
// - async: the same surface over Future[T]
// - tiny: a fluent Chain[T]
// - potential: the optional value Potential[T]
//
// Failures are domain values, never panics. Programming mistakes such as a
// nil success value or a nil failure panic at the call site with one of the
// Err* sentinel errors.
package flow
