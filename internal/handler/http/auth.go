package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Only-Gg/gih/internal/app"
	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/service"
	"github.com/Only-Gg/gih/internal/utils"
	"github.com/Only-Gg/gih/models"
)

// adminLogin authenticates the administrator and issues a session token.
//
// Rejected credentials are a business outcome, not a transport failure: the
// response is 200 OK with {"success": false, "message": ...} so the client
// can show the message verbatim. Only malformed requests and internal
// failures produce non-2xx statuses.
func (h *Handler) adminLogin(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var credentials models.AdminLoginRequest
	if err := json.NewDecoder(r.Body).Decode(&credentials); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	admin, err := h.services.AuthService.Login(ctx, credentials)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided), errors.Is(err, service.ErrWrongCredentials):
			log.Warn().Str("username", credentials.Username).Msg("admin login rejected")
			utils.WriteJSON(w, models.AdminLoginResponse{
				Success: false,
				Message: app.MsgInvalidCredentials,
			}, http.StatusOK)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during admin login")
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
			return
		}
	}

	token, err := h.services.AuthService.CreateToken(ctx, admin)
	if err != nil {
		log.Err(err).Msg("creation of token failed")
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		return
	}

	utils.WriteJSON(w, models.AdminLoginResponse{
		Success: true,
		Message: app.MsgLoginSucceeded,
		Token:   token.SignedString,
	}, http.StatusOK)
}
