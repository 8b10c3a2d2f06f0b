// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "net/http"

// methodNotAllowed is registered as the router's MethodNotAllowed handler
// via [chi.Mux.MethodNotAllowed].
//
// Chi responds with 405 Method Not Allowed when a path matches a registered
// route but the method is not handled. This handler answers 404 with the
// regular error body instead, hiding the existence of the route from
// callers that use an unsupported method.
func methodNotAllowed(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}

func routeNotFound(w http.ResponseWriter, r *http.Request) {
	writeError(w, r, ErrRouteNotFound)
}
