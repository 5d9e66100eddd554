// Package handler is the HTTP layer behind the router.
//
// Handlers bind the request, apply request-level rules and call the
// collaborators they were built with. They return a Response describing
// status and body; the shared pipeline in base.go writes it.
package handler
