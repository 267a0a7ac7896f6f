// Package http implements the REST transport layer of flight-guardian.
//
// It exposes route wiring, request handlers and middleware. Every response,
// successful or not, is a JSON envelope {"Status", "Message", "Payload"}.
// Cross-cutting concerns such as request tracing, access logging, metrics,
// CORS and session token authentication are handled in this package before
// requests are delegated to the service layer.
package http
