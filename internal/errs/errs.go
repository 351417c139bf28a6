// Package errs defines the error type the API speaks in.
//
// Every failure the service layer wants a client to see is an *HTTPError:
// it carries the HTTP status that the global error handler writes, a
// machine-readable code and, for validation failures, per-field details.
// Anything that is not an *HTTPError is treated as unexpected and becomes
// a generic 500.
package errs
