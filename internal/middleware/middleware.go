// Package middleware holds the Echo middleware shared by every route.
//
// It covers request ids, the request-scoped logger, New Relic tracing,
// access logging, CORS, rate limiting, panic recovery and the global
// error handler that renders every failure.
package middleware
