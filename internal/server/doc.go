// Package server runs the HTTP API and the optional gRPC health endpoint.
//
// Both transports are started together and stopped together: a signal
// (SIGTERM, SIGINT, SIGQUIT) or the failure of either one triggers a graceful
// shutdown of all of them, bounded by a fixed timeout.
package server
