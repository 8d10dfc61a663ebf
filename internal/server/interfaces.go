package server

// Server is a listener run in the background by the client workers.
type Server interface {
	// RunServer blocks while serving.
	RunServer()

	// Shutdown stops accepting requests and waits, bounded, for in-flight
	// ones to finish.
	Shutdown()

	// Addr is the configured listen address.
	Addr() string
}
