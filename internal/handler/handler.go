// Package handler is the HTTP layer, the first stop after the router.
//
// It binds and validates requests using the validation package, calls
// the service layer and writes the responses. Errors are returned to the
// global error handler, which renders them.
package handler
