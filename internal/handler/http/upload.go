package http

import (
	"net/http"

	"github.com/Only-Gg/gih/internal/logger"
	"github.com/Only-Gg/gih/internal/utils"
)

// maxUploadSize bounds the multipart form kept in memory before the
// remainder spills to temporary files.
const maxUploadSize = 32 << 20

// uploadFile stores one media file sent as the multipart field "file" and
// returns the root-relative URL it will be served under.
func (h *Handler) uploadFile(w http.ResponseWriter, r *http.Request) {
	log := logger.FromRequest(r)

	if err := r.ParseMultipartForm(maxUploadSize); err != nil {
		log.Err(err).Msg("invalid multipart form")
		http.Error(w, "invalid multipart form", http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("missing multipart field `file`")
		http.Error(w, "missing multipart field `file`", http.StatusBadRequest)
		return
	}
	defer file.Close()

	response, err := h.services.UploadService.SaveUpload(r.Context(), header.Filename, file)
	if err != nil {
		h.respondServiceError(w, r, err)
		return
	}

	utils.WriteJSON(w, response, http.StatusOK)
}
