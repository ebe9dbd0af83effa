// Package pipeway defines Result[T], the tagged success-or-error union that
// flows through fallible pipelines, together with its constructors and
// error utilities.
//
// Key constructs:
// - Success/Fail/Cancel: construct a Result[T]
// - FailFrom/CancelFrom: carry a non-success Result to a new value type
//   while preserving error, identity and creation time
// - WithError/WithCancel: observer interfaces satisfied by Result
// - GetErrors/IsNil/IsCancellationError: error helpers
//
// Higher-level composition lives in the subpackages: eval for sequential
// step evaluation, solo for single-result primitives, chain for a fluent
// builder.
package pipeway
