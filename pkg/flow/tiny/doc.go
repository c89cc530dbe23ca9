// Package tiny provides a minimal fluent Chain[T] for synchronous
// composition of flow.Result[T] values that keep the same type.
//
// - Start/FromValue: create a Chain
// - Then/ThenTry/Map: compose result-returning, error-returning or plain steps
// - Recover/MapFailure: act on the failure side
// - Or/And/RepeatUntil/While: combine and loop
// - Ensure: trigger side effects
// - Finally: reduce to a concrete value via handlers
//
// A chain stops running success steps once its context is done.
package tiny
