// Package http implements the local debug API of the wallet client.
//
// The API mirrors the wallet contract used by the terminal UI so that the
// running wallet can be driven from scripts and tests. Request tracing,
// access logging and panic recovery are handled here before requests reach
// the service layer. The API is only served when a debug address is
// configured.
package http
