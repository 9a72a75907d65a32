// Package errs provides the typed errors shared by the fulfillment service.
//
// Each error type follows the same pattern:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ...) that callers match
//     with errors.Is;
//   - a struct carrying the offending parameter and an optional cause;
//   - New...Error and New...ErrorWithCause constructors;
//   - Error() for the message and Unwrap() returning the sentinel.
//
// The HTTP adapter maps the sentinels to status codes: required / invalid /
// out-of-range values to 400, ErrObjectNotFound to 404 and ErrAccessDenied to 403.
package errs
