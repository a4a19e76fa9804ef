// Package errs provides standardized error types for the pancake delivery core.
// It implements a consistent pattern for error creation, formatting, and unwrapping
// that is used by every domain object and service.
//
// Errors fall into three kinds that callers can test with errors.Is:
//   - ErrValidation: input breaks a structural or semantic rule
//     (ValueIsRequiredError, ValueIsInvalidError, ValueIsOutOfRangeError)
//   - ErrObjectNotFound: a referenced id or number is absent (ObjectNotFoundError)
//   - ErrConflict: the operation is not allowed in the current state (ConflictError)
//
// Each error type follows a consistent pattern:
//   - A sentinel error variable (e.g., ErrValueIsRequired)
//   - A struct type with fields for error details
//   - Constructor functions with and without cause
//   - Error() method for formatting the error message
//   - Unwrap() method for error wrapping/unwrapping support
package errs
