// Package eval runs an ordered, statically-known sequence of fallible
// steps over a payload, short-circuiting at the first failure. The first
// non-success Result reaches the caller unchanged; no step after it is
// invoked.
//
// Key constructs:
// - Step[T]: a fallible transformation from payload to Result[T]
// - Evaluate: fold steps over an initial Result, left to right
// - Lift/Try/Tee: adapt plain functions, (T, error) functions and side
//   effects into steps
package eval
