package http

import (
	"net/http"

	"github.com/MKhiriev/ucn-accounts/internal/logger"
	"github.com/MKhiriev/ucn-accounts/internal/service"
	"github.com/MKhiriev/ucn-accounts/internal/utils"
	"github.com/MKhiriev/ucn-accounts/models"
	"github.com/go-chi/chi/v5"
)

const passwordUpdatedMessage = "password updated"

func (h *Handler) editProfile(w http.ResponseWriter, r *http.Request) {
	id, err := ownerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.EditProfileRequest
	if err = decodeJSON(w, r, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid edit profile body")
		writeError(w, r, err)
		return
	}

	profile, err := h.services.ProfileService.EditProfile(r.Context(), id, req)
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, profile, http.StatusOK)
}

func (h *Handler) resetPassword(w http.ResponseWriter, r *http.Request) {
	id, err := ownerID(r)
	if err != nil {
		writeError(w, r, err)
		return
	}

	var req models.ResetPasswordRequest
	if err = decodeJSON(w, r, &req); err != nil {
		logger.FromRequest(r).Err(err).Msg("invalid reset password body")
		writeError(w, r, err)
		return
	}

	if err = h.services.ProfileService.ResetPassword(r.Context(), id, req); err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: passwordUpdatedMessage}, http.StatusOK)
}

// ownerID returns the {id} path parameter if it names the user the bearer
// token was issued to.
func ownerID(r *http.Request) (string, error) {
	id := chi.URLParam(r, "id")

	userID, ok := utils.GetUserIDFromContext(r.Context())
	if !ok || userID != id {
		logger.FromRequest(r).Warn().
			Str("path_id", id).
			Str("token_id", userID).
			Msg("access to another user's account")
		return "", service.ErrAccessDenied
	}

	return id, nil
}
