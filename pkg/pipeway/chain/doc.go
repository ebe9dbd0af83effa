// Package chain provides a fluent wrapper around Result[T] for building
// synchronous railway-style pipelines from solo primitives, an alternative
// to the explicit step list of package eval.
//
// Key operations:
// - Start/FromValue: begin a chain from a Result[T] or value
// - Then/ThenTry: compose result-returning or error-returning functions
// - Map: transform the successful value
// - Ensure: run side effects without changing the result
// - And/Or: combine chains, failure-first or success-first
// - Finally: collapse the chain into a final value via handlers
//
// The package-level Then, ThenTry, Map and Finally variants switch the
// value type (T -> U); methods keep it.
package chain
