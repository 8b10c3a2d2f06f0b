package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/ucn-accounts/internal/logger"
	"github.com/MKhiriev/ucn-accounts/internal/service"
	"github.com/MKhiriev/ucn-accounts/internal/utils"
	"github.com/MKhiriev/ucn-accounts/models"
)

var errorStatusMap = map[error]int{
	service.ErrValidation: http.StatusBadRequest,
	service.ErrConflict:   http.StatusConflict,
	service.ErrAuth:       http.StatusUnauthorized,
	service.ErrNotFound:   http.StatusNotFound,
	service.ErrForbidden:  http.StatusForbidden,
	service.ErrUpstream:   http.StatusBadGateway,

	ErrInvalidJSON:                http.StatusBadRequest,
	ErrEmptyAuthorizationHeader:   http.StatusUnauthorized,
	ErrInvalidAuthorizationHeader: http.StatusUnauthorized,
	ErrRouteNotFound:              http.StatusNotFound,
}

// statusKinds names the kind of transport errors, which carry no service kind.
var statusKinds = map[int]string{
	http.StatusBadRequest:   "validation",
	http.StatusUnauthorized: "auth",
	http.StatusNotFound:     "not_found",
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError writes err as an error body. The message of an internal error
// is replaced by the status text and only logged.
func writeError(w http.ResponseWriter, r *http.Request, err error) {
	log := logger.FromRequest(r)

	status := statusFromError(err)
	detail := models.ErrorDetail{Kind: service.KindName(err), Message: err.Error()}

	switch {
	case status == http.StatusInternalServerError:
		log.Err(err).Msg("request failed")
		detail = models.ErrorDetail{Kind: "internal", Message: http.StatusText(status)}
	case detail.Kind == "internal":
		detail.Kind = statusKinds[status]
		fallthrough
	default:
		log.Debug().Err(err).Int("status", status).Msg("request rejected")
	}

	if _, writeErr := utils.WriteJSON(w, models.ErrorResponse{Errors: []models.ErrorDetail{detail}}, status); writeErr != nil {
		log.Err(writeErr).Msg("error writing error response")
	}
}
