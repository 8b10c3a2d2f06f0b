package http

import (
	"net/http"

	"github.com/MKhiriev/ucn-accounts/internal/utils"
	"github.com/MKhiriev/ucn-accounts/models"
	"github.com/go-chi/chi/v5"
)

func (h *Handler) listRepositories(w http.ResponseWriter, r *http.Request) {
	repos, err := h.services.RepositoryService.ListRepositories(r.Context())
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.RepositoriesResponse{Repositories: repos}, http.StatusOK)
}

func (h *Handler) listCommits(w http.ResponseWriter, r *http.Request) {
	commits, err := h.services.RepositoryService.ListCommits(r.Context(), chi.URLParam(r, "repoName"))
	if err != nil {
		writeError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.CommitsResponse{Commits: commits}, http.StatusOK)
}
