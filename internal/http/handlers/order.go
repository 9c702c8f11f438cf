package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"toyworks-orders/internal/apperr"
	"toyworks-orders/internal/domain"
	"toyworks-orders/internal/logx"
	"toyworks-orders/internal/service/orders"
)

// OrderHandler serves HTTP endpoints for order resources.
type OrderHandler struct {
	uc     orderUsecase
	logger logx.Logger
}

// NewOrderHandler wires an orderUsecase into HTTP handlers.
func NewOrderHandler(uc orderUsecase, logger logx.Logger) *OrderHandler {
	return &OrderHandler{uc: uc, logger: logger}
}

// Punch handles POST /order.
func (h *OrderHandler) Punch(w http.ResponseWriter, r *http.Request) {
	var req punchOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	detail, err := h.uc.Punch(r.Context(), req.toModel())
	switch {
	case err == nil:
		w.Header().Set("Location", "/order/"+strconv.FormatInt(detail.Order.ID, 10))
		writeJSON(h.logger, w, r, http.StatusCreated, detailToResponse(detail))
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.Conflict):
		writeError(h.logger, w, r, http.StatusConflict, "order code already exists")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// GetByID handles GET /order/{id}.
func (h *OrderHandler) GetByID(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	detail, err := h.uc.Get(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, detailToResponse(detail))
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// List handles GET /orders.
func (h *OrderHandler) List(w http.ResponseWriter, r *http.Request) {
	var f domain.OrderFilter

	if s := r.URL.Query().Get("status"); s != "" {
		st := domain.OrderStatus(s)
		if !st.Valid() {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid status")
			return
		}
		f.Status = &st
	}
	if s := r.URL.Query().Get("party_id"); s != "" {
		v, err := strconv.ParseInt(s, 10, 64)
		if err != nil || v <= 0 {
			writeError(h.logger, w, r, http.StatusBadRequest, "invalid party_id")
			return
		}
		f.PartyID = &v
	}
	var ok bool
	if f.Limit, ok = queryIntPtr(r, "limit"); !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid limit")
		return
	}
	if f.Offset, ok = queryIntPtr(r, "offset"); !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid offset")
		return
	}

	list, err := h.uc.List(r.Context(), f)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, ordersToResponse(list))
}

// Update handles PATCH /order/{id} with partial updates from the request body.
func (h *OrderHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req updateOrderRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	_, err = h.uc.UpdatePartial(r.Context(), domain.PartialOrderUpdate{
		ID:               id,
		Status:           req.Status,
		Remarks:          req.Remarks,
		ExpectedDispatch: req.ExpectedDispatch,
	})
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, map[string]string{"status": "ok"})
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// AddLine handles POST /order/{id}/lines.
func (h *OrderHandler) AddLine(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req punchLineRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	detail, err := h.uc.AddLine(r.Context(), id, orders.PunchLine{
		ItemID: req.ItemID,
		Qty:    req.Qty,
		Rate:   req.Rate,
		Note:   req.Note,
	})
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, detailToResponse(detail))
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, err.Error())
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// RemoveLine handles DELETE /order/{id}/line/{lineID}.
func (h *OrderHandler) RemoveLine(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	lineID, err := idFromURL(r, "lineID")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid line id")
		return
	}

	detail, err := h.uc.RemoveLine(r.Context(), id, lineID)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, detailToResponse(detail))
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.Conflict):
		writeError(h.logger, w, r, http.StatusConflict, "line has dispatched pieces")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Logs handles GET /order/{id}/logs.
func (h *OrderHandler) Logs(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	limit, ok := queryIntPtr(r, "limit")
	if !ok {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid limit")
		return
	}
	n := 0
	if limit != nil {
		n = *limit
	}

	list, err := h.uc.Logs(r.Context(), id, n)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, logsToResponse(list))
}

// Events handles GET /order/{id}/events.
func (h *OrderHandler) Events(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	list, err := h.uc.Events(r.Context(), id)
	if err != nil {
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
		return
	}
	writeJSON(h.logger, w, r, http.StatusOK, eventsToResponse(list))
}
