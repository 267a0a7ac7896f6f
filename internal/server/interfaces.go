package server

// Server defines the common lifecycle contract for transport servers managed
// by this package.
//
// Implementations are expected to block in [RunServer] until shutdown is
// requested and to release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}

// Background is a job that runs next to the server, such as the scheduled
// token sweep. Run must not block; Stop blocks until in-flight work ends.
type Background interface {
	Run()
	Stop()
}
