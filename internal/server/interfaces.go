package server

// Server is the lifecycle contract for the API server.
//
// RunServer blocks until the listener stops, either because Shutdown was
// called or because of a fatal accept error.
type Server interface {
	RunServer()

	// Shutdown stops accepting new requests and waits for in-flight ones.
	Shutdown()
}
