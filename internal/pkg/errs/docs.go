// Package errs provides the structured error types shared by the dispatch
// service layers.
//
// The package includes:
//   - ObjectNotFoundError: a backend record (order, user, access key) does not exist
//   - ValueIsInvalidError: a value failed validation
//   - ValueIsRequiredError: a required value is missing
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g., ErrObjectNotFound) returned by Unwrap
//   - A struct type carrying the parameter name and an optional cause
//   - Constructor functions with and without cause
//
// Callers classify failures with errors.Is against the sentinels; HTTP adapters
// never expose these messages verbatim to clients.
package errs
