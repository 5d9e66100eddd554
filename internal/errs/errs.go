// Package errs defines the error shapes returned to API clients.
//
// Every error a handler answers with is an *HTTPError, so the client
// always receives the same JSON structure: a machine-readable code,
// a human-readable message, the HTTP status and, for field problems,
// the offending field names.
package errs
