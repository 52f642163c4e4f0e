package handler

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/iliyamo/ndc-seat-availability/internal/model"
	"github.com/iliyamo/ndc-seat-availability/internal/repository"
)

// AuditReader is the read side of the audit store.
type AuditReader interface {
	GetByRequestID(ctx context.Context, requestID string) (*repository.AuditRecord, error)
	ListRecent(ctx context.Context, limit int) ([]repository.AuditRecord, error)
}

// AuditHandler lets operators look up served seat maps by request id.
type AuditHandler struct {
	Repo AuditReader
}

type auditItem struct {
	RequestID    string `json:"request_id"`
	OfferID      string `json:"offer_id"`
	ResponseID   string `json:"responses_id"`
	SegmentCount int    `json:"segment_count"`
	SeatCount    int    `json:"seat_count"`
	StatusCode   int    `json:"status_code"`
	ServedAt     string `json:"served_at"`
}

func toAuditItem(r repository.AuditRecord) auditItem {
	return auditItem{
		RequestID:    r.RequestID,
		OfferID:      r.OfferID,
		ResponseID:   r.ResponseID,
		SegmentCount: r.SegmentCount,
		SeatCount:    r.SeatCount,
		StatusCode:   r.StatusCode,
		ServedAt:     r.ServedAt.UTC().Format(time.RFC3339),
	}
}

// Get handles GET /ndc/v1/sc/seat_availability/audit/:request_id.
func (h *AuditHandler) Get(c echo.Context) error {
	rec, err := h.Repo.GetByRequestID(c.Request().Context(), c.Param("request_id"))
	if errors.Is(err, repository.ErrAuditNotFound) {
		return c.JSON(http.StatusNotFound, model.ErrorResponse{StatusCode: http.StatusNotFound, ErrMsg: "Audit record not found."})
	}
	if err != nil {
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{StatusCode: http.StatusInternalServerError, ErrMsg: "database error"})
	}
	return c.JSON(http.StatusOK, toAuditItem(*rec))
}

// List handles GET /ndc/v1/sc/seat_availability/audit?limit=N.
func (h *AuditHandler) List(c echo.Context) error {
	limit := 50
	if s := c.QueryParam("limit"); s != "" {
		n, err := strconv.Atoi(s)
		if err != nil || n < 1 {
			return c.JSON(http.StatusBadRequest, model.ErrorResponse{StatusCode: http.StatusBadRequest, ErrMsg: "limit must be a positive integer"})
		}
		limit = n
	}
	recs, err := h.Repo.ListRecent(c.Request().Context(), limit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, model.ErrorResponse{StatusCode: http.StatusInternalServerError, ErrMsg: "database error"})
	}
	items := make([]auditItem, 0, len(recs))
	for _, r := range recs {
		items = append(items, toAuditItem(r))
	}
	return c.JSON(http.StatusOK, echo.Map{"items": items})
}
