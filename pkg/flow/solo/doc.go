// Package solo contains the synchronous combinators over flow.Result[T].
// Each one acts only when the Result is in the matching state and passes
// the other state through untouched.
//
// Highlights:
// - Then: lift a plain value into a pipeline
// - OnSuccess/OnSuccessDo/OnSuccessBind: map, tee and bind the success side
// - OnSuccessTry/OnSuccessTryBind: same under an error boundary
// - OnFailure/OnFailureMap/OnFailureDo: recover, replace or observe a failure
// - OnFailureTry: recover under an error boundary
// - ReturnAs/ReturnAsBoth: one- or two-sided value mapping
// - Finally: reduce to a concrete value
package solo
