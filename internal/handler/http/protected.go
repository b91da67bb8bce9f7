package http

import (
	"net/http"

	"github.com/MKhiriev/go-auth-guard/internal/logger"
	"github.com/MKhiriev/go-auth-guard/internal/utils"
)

// profileResponse echoes back the identity facts carried by the verified
// token. No store lookup is performed here: the claims in the context are
// the single source of truth for an authenticated request.
type profileResponse struct {
	ID    string `json:"id"`
	Email string `json:"email"`
	Name  string `json:"name"`
}

type dashboardResponse struct {
	Message string `json:"message"`
}

func (h *Handler) profile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("no claims found in request context")
		writeError(w, msgInvalidOrExpiredToken, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, profileResponse{
		ID:    claims.Subject,
		Email: claims.Email,
		Name:  claims.Name,
	}, http.StatusOK)
}

func (h *Handler) dashboard(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	claims, ok := utils.GetClaimsFromContext(r.Context())
	if !ok {
		log.Error().Msg("no claims found in request context")
		writeError(w, msgInvalidOrExpiredToken, http.StatusUnauthorized)
		return
	}

	utils.WriteJSON(w, dashboardResponse{
		Message: "Welcome back, " + claims.Name,
	}, http.StatusOK)
}
