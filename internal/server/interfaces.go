package server

import "context"

// Server defines the lifecycle contract of the application server.
//
// [Server.RunServer] blocks until the process receives SIGTERM, SIGINT or
// SIGQUIT, or until a transport fails. [Server.Shutdown] stops every
// started transport.
type Server interface {
	// RunServer starts serving requests and blocks until the server stops.
	RunServer() error

	// Shutdown gracefully stops the server within the deadline of ctx.
	Shutdown(ctx context.Context) error
}

// transport is a single listening server (HTTP or gRPC).
type transport interface {
	name() string
	listen() error
	serve() error
	shutdown(ctx context.Context) error
}
