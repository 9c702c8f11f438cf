package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"toyworks-orders/internal/apperr"
	"toyworks-orders/internal/logx"
)

// PartyHandler serves HTTP endpoints for party (dealer) resources.
type PartyHandler struct {
	uc     partyUsecase
	logger logx.Logger
}

// NewPartyHandler wires a partyUsecase into HTTP handlers.
func NewPartyHandler(uc partyUsecase, logger logx.Logger) *PartyHandler {
	return &PartyHandler{uc: uc, logger: logger}
}

// GetByID handles GET /party/{id}.
func (h *PartyHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	p, err := h.uc.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, partyToResponse(*p))
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /parties.
func (h *PartyHandler) List(w http.ResponseWriter, r *http.Request) {
	limit, ok := queryIntPtr(r, "limit")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid limit")
		return
	}
	offset, ok := queryIntPtr(r, "offset")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid offset")
		return
	}

	list, err := h.uc.List(r.Context(), limit, offset)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, partiesToResponse(list))
}

// Create handles POST /party.
func (h *PartyHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createPartyRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	id, err := h.uc.Create(r.Context(), req.toModel())
	switch {
	case err == nil:
		w.Header().Set("Location", "/party/"+strconv.FormatInt(id, 10))
		writeJSON(h.logger, w, r, http.StatusCreated, map[string]any{"id": id})
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.Conflict):
		writeError(h.logger, w, r, http.StatusConflict, "party already exists")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Update handles PUT /party with partial updates from the request body.
func (h *PartyHandler) Update(w http.ResponseWriter, r *http.Request) {
	var req updatePartyRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	_, err := h.uc.UpdatePartial(r.Context(), req.toModel())
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.Conflict):
		writeError(h.logger, w, r, http.StatusConflict, "party already exists")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
