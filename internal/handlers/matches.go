package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"github.com/jonie-n/valodash-backend/internal/models"
	"github.com/jonie-n/valodash-backend/internal/store"
)

const missingUIDMessage = "Missing uid"

// Seed creates the match history for a uid, or returns the existing one
// @Summary Seed match history
// @Description Generates and stores 10 matches for the uid unless it already has them
// @Tags Matches
// @Accept json
// @Produce json
// @Param body body models.SeedRequest true "User"
// @Success 200 {object} models.UserMatchDocument
// @Failure 400 {object} models.ErrorResponse "Missing uid"
// @Failure 500 {object} models.ErrorResponse
// @Router /seed [post]
func (h *Handler) Seed(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, MaxBodySize)
	defer r.Body.Close()

	// uid must be a JSON string; numbers and other types are rejected as missing
	var req models.SeedRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Debugw("Rejecting seed request body", "error", err)
		h.errorResponse(w, http.StatusBadRequest, missingUIDMessage)
		return
	}
	if err := h.validator.Struct(&req); err != nil {
		h.errorResponse(w, http.StatusBadRequest, missingUIDMessage)
		return
	}

	doc, created, err := h.store.Create(r.Context(), req.UID)
	if err != nil {
		h.storeError(w, req.UID, err)
		return
	}

	if created {
		h.logger.Infow("Seeded match history", "uid", req.UID)
	} else {
		h.logger.Infow("Seed returning existing match history", "uid", req.UID)
	}
	h.jsonResponse(w, http.StatusOK, doc)
}

// GetMatches returns the match history for a uid, seeding it on first access
// @Summary Get match history
// @Tags Matches
// @Produce json
// @Param uid path string true "User ID"
// @Success 200 {object} models.UserMatchDocument
// @Failure 400 {object} models.ErrorResponse "Malformed uid"
// @Failure 500 {object} models.ErrorResponse
// @Router /matches/{uid} [get]
func (h *Handler) GetMatches(w http.ResponseWriter, r *http.Request) {
	uid, err := pathParam(r, "uid")
	if err != nil {
		h.errorResponse(w, http.StatusBadRequest, "Malformed uid")
		return
	}

	doc, created, err := h.store.GetOrCreate(r.Context(), uid)
	if err != nil {
		h.storeError(w, uid, err)
		return
	}

	if created {
		h.logger.Infow("Match history missing, auto-seeded", "uid", uid)
	}
	h.jsonResponse(w, http.StatusOK, doc)
}

// pathParam returns the decoded value of a route parameter. chi routes on
// r.URL.RawPath when it is set, leaving params percent-encoded in that case only.
func pathParam(r *http.Request, key string) (string, error) {
	v := chi.URLParam(r, key)
	if r.URL.RawPath == "" {
		return v, nil
	}
	return url.PathUnescape(v)
}

func (h *Handler) storeError(w http.ResponseWriter, uid string, err error) {
	if errors.Is(err, store.ErrEmptyUID) {
		h.errorResponse(w, http.StatusBadRequest, missingUIDMessage)
		return
	}
	h.logger.Errorw("Store operation failed", "uid", uid, "error", err)
	h.errorResponse(w, http.StatusInternalServerError, "Internal server error")
}
