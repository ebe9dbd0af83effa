// Package solo contains single-value, synchronous primitives that operate
// on Result[T]. These functions are the building blocks for error-aware
// pipelines; package eval and package chain are built from them.
//
// Highlights:
// - Succeed/Fail/Cancel: construct Result[T]
// - Validate/AndValidate/ValidateAll: apply validation producing failure
//   on invalid input, optionally accumulating errors
// - Switch: move from Result[In] to Result[Out]
// - Map/DoubleMap: transform successful values (with optional error/cancel maps)
// - Try: call a function (Out, error) and convert error to failure
// - Tee/TeeIf/DoubleTee: side-effect helpers
// - Finally: reduce to a concrete value via success/error/cancel handlers
// - Join: fold several result functions over one input
package solo
