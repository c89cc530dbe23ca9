// Package async contains the asynchronous combinators over flow.Result[T].
//
// A Future[T] is a Result computed on its own goroutine. Every combinator
// returns a new Future whose producer awaits the antecedent first, so the
// stages of a pipeline run strictly one after another:
//
//	fut := async.Bind(ctx, flow.Success(id), repo.Load)
//	fut = async.OnSuccessDo(ctx, fut, audit)
//	name := async.Finally(ctx, fut, onFailure, onSuccess)
//
// A panic inside a stage travels down the pipeline and is raised again by
// Await, unless a Try combinator hands it to its handler. Cancelling the
// awaiting context yields a TaskCancellationFailure.
package async
