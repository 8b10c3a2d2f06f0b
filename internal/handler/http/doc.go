// Package http implements the REST boundary of the ucn-accounts server.
//
// Routes are wired with chi in routes.go. Requests pass through trace-id,
// access logging, compression and timeout middleware; the profile routes
// additionally require a bearer token issued to the user named in the path.
// Every failure is written as {"errors":[{"kind": ..., "message": ...}]}
// with the status chosen by errorStatusMap.
package http
