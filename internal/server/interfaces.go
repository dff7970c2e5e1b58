package server

// Server is the lifecycle contract of the transport server that exposes the
// memory page API and serves the uploaded media files.
//
// Implementations block in [RunServer] until a stop signal arrives and
// release resources in [Shutdown].
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer()

	// Shutdown gracefully stops the server and frees associated resources.
	Shutdown()
}
