// Package server runs the optional local debug HTTP API.
//
// It provides the server lifecycle (startup and graceful shutdown) used by
// the client's worker set.
package server
