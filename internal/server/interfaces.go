package server

// Server defines the lifecycle contract of the application server.
//
// [RunServer] blocks until a termination signal arrives or the listener
// fails, then drains in-flight requests before returning.
type Server interface {
	RunServer() error
}
