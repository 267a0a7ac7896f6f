// Package server wires and runs the application's HTTP server.
//
// It owns the server lifecycle, including startup, signal handling and
// graceful shutdown. Background workers registered with the server are
// started alongside the listener and stopped before it exits.
package server
