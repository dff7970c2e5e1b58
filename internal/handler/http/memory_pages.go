package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/Only-Gg/gih/internal/app"
	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/service"
	"github.com/Only-Gg/gih/internal/utils"
	"github.com/Only-Gg/gih/models"
)

func (h *Handler) listPages(w http.ResponseWriter, r *http.Request) {
	pages, err := h.services.MemoryPageService.ListPages(r.Context())
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	// An empty dashboard is a list, not null.
	if pages == nil {
		pages = []models.MemoryPage{}
	}

	utils.WriteJSON(w, pages, http.StatusOK)
}

func (h *Handler) createPage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	var request models.MemoryPageCreate
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	page, err := h.services.MemoryPageService.CreatePage(r.Context(), request)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) getPage(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	page, err := h.services.MemoryPageService.GetPage(r.Context(), pageID)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) updatePage(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	pageID := chi.URLParam(r, "pageID")

	var request models.MemoryPageUpdate
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	page, err := h.services.MemoryPageService.UpdatePage(r.Context(), pageID, request)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, page, http.StatusOK)
}

func (h *Handler) deletePage(w http.ResponseWriter, r *http.Request) {
	pageID := chi.URLParam(r, "pageID")

	if err := h.services.MemoryPageService.DeletePage(r.Context(), pageID); err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.DeleteResponse{
		Success: true,
		Message: app.MsgPageDeleted,
	}, http.StatusOK)
}

// verifyPagePassword unlocks a page for a recipient.
//
// A wrong password is a business outcome and keeps HTTP 200 with
// {"success": false}; an unknown page id is 404.
func (h *Handler) verifyPagePassword(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)
	pageID := chi.URLParam(r, "pageID")

	var request models.PasswordVerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&request); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		http.Error(w, "Invalid JSON was passed", http.StatusBadRequest)
		return
	}

	page, err := h.services.MemoryPageService.VerifyPassword(r.Context(), pageID, request.Password)
	if err != nil {
		if errors.Is(err, service.ErrWrongPagePassword) {
			utils.WriteJSON(w, models.PasswordVerifyResponse{
				Success: false,
				Message: app.MsgWrongPagePassword,
			}, http.StatusOK)
			return
		}
		h.respondServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, models.PasswordVerifyResponse{
		Success: true,
		Message: app.MsgPasswordVerified,
		Data:    &page,
	}, http.StatusOK)
}
