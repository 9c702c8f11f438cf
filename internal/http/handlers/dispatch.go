package handlers

import (
	"errors"
	"net/http"
	"time"

	"toyworks-orders/internal/apperr"
	"toyworks-orders/internal/logx"
	"toyworks-orders/internal/service/dispatch"
)

// DispatchHandler serves HTTP endpoints for dispatch reconciliation.
type DispatchHandler struct {
	uc     dispatchUsecase
	logger logx.Logger
}

// NewDispatchHandler wires a dispatchUsecase into HTTP handlers.
func NewDispatchHandler(uc dispatchUsecase, logger logx.Logger) *DispatchHandler {
	return &DispatchHandler{uc: uc, logger: logger}
}

const dispatchDateLayout = "2006-01-02"

// Save handles POST /order/{id}/dispatch.
func (h *DispatchHandler) Save(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}
	var req dispatchRequest
	if ok := decodeJSON(h.logger, w, r, &req); !ok {
		return
	}

	date, err := time.ParseInLocation(dispatchDateLayout, req.DispatchDate, time.UTC)
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid dispatch_date")
		return
	}

	lines := make([]dispatch.LineInput, 0, len(req.Lines))
	for _, l := range req.Lines {
		lines = append(lines, dispatch.LineInput{LineID: l.LineID, Delta: l.Qty, Note: l.Note})
	}

	res, err := h.uc.Reconcile(r.Context(), dispatch.ReconcileRequest{
		OrderID:      id,
		SubmissionID: req.SubmissionID,
		DispatchDate: date,
		Lines:        lines,
	})

	var deltaErr *dispatch.DeltaError
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, reconcileResponse{
			Status:         res.Status,
			StatusChanged:  res.StatusChanged,
			EventsRecorded: res.EventsRecorded,
			LinesUpdated:   res.LinesUpdated,
			Order:          detailToResponse(res.Detail),
		})
	case errors.As(err, &deltaErr):
		writeError(h.logger, w, r, http.StatusBadRequest, deltaErr.Error())
	case errors.Is(err, apperr.Invalid):
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid input")
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	case errors.Is(err, apperr.Conflict):
		writeError(h.logger, w, r, http.StatusConflict, "submission already processed")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}

// Summary handles GET /order/{id}/summary.
func (h *DispatchHandler) Summary(w http.ResponseWriter, r *http.Request) {
	id, err := idFromURL(r, "id")
	if err != nil {
		writeError(h.logger, w, r, http.StatusBadRequest, "invalid id")
		return
	}

	s, err := h.uc.Summary(r.Context(), id)
	switch {
	case err == nil:
		writeJSON(h.logger, w, r, http.StatusOK, summaryToResponse(s))
	case errors.Is(err, apperr.NotFound):
		writeError(h.logger, w, r, http.StatusNotFound, "not found")
	default:
		writeError(h.logger, w, r, http.StatusInternalServerError, "internal error")
	}
}
