package server

// Server is the lifecycle contract of the blob server.
type Server interface {
	// RunServer serves requests until SIGINT, SIGTERM or SIGQUIT arrives or
	// the listener fails, then shuts down gracefully.
	RunServer() error

	// Shutdown stops accepting connections and waits for in-flight
	// requests.
	Shutdown() error
}
