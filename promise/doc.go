// Package promise provides goroutine-safe coordination helpers modelled on
// common promise patterns:
//
//   - [Singleton] runs a function lazily, once, sharing the result with every
//     caller until it is reset.
//   - [Controlled] is a result that is settled from outside, by the first call
//     to Resolve or Reject.
//   - [Deferred] tracks in-flight tasks so another goroutine can wait for all
//     of them to finish.
//   - [Sleep] waits for a duration and then runs a callback.
//
// Every blocking method takes a context.Context and returns ctx.Err() when
// the context is done first.
package promise
