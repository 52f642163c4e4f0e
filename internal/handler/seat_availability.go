// Package handler exposes the HTTP handlers of the NDC seat availability
// service.
package handler

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"github.com/iliyamo/ndc-seat-availability/internal/logging"
	"github.com/iliyamo/ndc-seat-availability/internal/model"
	"github.com/iliyamo/ndc-seat-availability/internal/navitaire"
	"github.com/iliyamo/ndc-seat-availability/internal/queue"
	"github.com/iliyamo/ndc-seat-availability/internal/seatmap"
)

const (
	msgInvalidRequest = "The given data was invalid."
	msgUpstream       = "Seat availability supplier is unavailable."
	msgInternal       = "Something went wrong while processing seat availability."

	publishTimeout = 5 * time.Second
)

// EventPublisher receives one event per request that reached the supplier.
type EventPublisher interface {
	PublishSeatMapServed(ctx context.Context, event queue.SeatMapServedEvent) error
}

// SeatAvailabilityHandler serves /ndc/v1/sc/seat_availability.
type SeatAvailabilityHandler struct {
	Supplier navitaire.Supplier
	Engine   *seatmap.Engine
	Events   EventPublisher // optional

	now func() time.Time
}

func NewSeatAvailabilityHandler(supplier navitaire.Supplier, engine *seatmap.Engine, events EventPublisher) *SeatAvailabilityHandler {
	return &SeatAvailabilityHandler{Supplier: supplier, Engine: engine, Events: events, now: time.Now}
}

// Handle validates the request, fetches the supplier document and returns
// the normalized seat map.
func (h *SeatAvailabilityHandler) Handle(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return c.JSON(http.StatusBadRequest, model.ErrorResponse{StatusCode: http.StatusBadRequest, ErrMsg: "Unreadable request body."})
	}
	req, errs := ValidateSeatAvailabilityRequest(body)
	if len(errs) > 0 {
		return c.JSON(http.StatusUnprocessableEntity, model.ErrorResponse{
			StatusCode: http.StatusUnprocessableEntity,
			ErrMsg:     msgInvalidRequest,
			Errors:     errs,
		})
	}

	requestID := logging.RequestIDFrom(c)
	if requestID == "" {
		requestID = uuid.NewString()
	}
	params := req.NDCParams
	logging.LogKV("info", "seat availability request", map[string]any{
		"request_id":   requestID,
		"offer_id":     params.OfferID,
		"order_id":     params.OrderID,
		"responses_id": params.ResponsesID,
	})

	resp, status, err := h.normalize(c.Request().Context(), params)
	h.publish(requestID, params, resp, status)

	if err != nil {
		level := "warn"
		if status >= http.StatusInternalServerError {
			level = "error"
		}
		logging.LogKV(level, "seat availability failed", map[string]any{
			"request_id": requestID,
			"status":     status,
			"error":      err.Error(),
		})
		return c.JSON(status, model.ErrorResponse{StatusCode: status, ErrMsg: errorMessage(status, err)})
	}

	logging.LogKV("info", "seat availability served", map[string]any{
		"request_id": requestID,
		"segments":   len(resp.FlightList),
		"seats":      resp.SeatCount(),
	})
	return c.JSON(http.StatusOK, resp)
}

func (h *SeatAvailabilityHandler) normalize(ctx context.Context, params model.NDCParams) (model.SeatAvailabilityResponse, int, error) {
	doc, err := h.Supplier.SeatAvailability(ctx, params)
	if err != nil {
		return model.SeatAvailabilityResponse{}, http.StatusBadGateway, err
	}
	resp, err := h.Engine.Normalize(doc)
	switch {
	case errors.Is(err, seatmap.ErrNotFound):
		return resp, http.StatusNotFound, err
	case err != nil:
		return resp, http.StatusInternalServerError, err
	}
	return resp, http.StatusOK, nil
}

// errorMessage exposes the normalization messages as-is and hides the rest.
func errorMessage(status int, err error) string {
	switch status {
	case http.StatusNotFound:
		return err.Error()
	case http.StatusBadGateway:
		return msgUpstream
	}
	return msgInternal
}

// publish sends the event in the background; the response never waits on
// the broker.
func (h *SeatAvailabilityHandler) publish(requestID string, params model.NDCParams, resp model.SeatAvailabilityResponse, status int) {
	if h.Events == nil {
		return
	}
	now := time.Now
	if h.now != nil {
		now = h.now
	}
	ev := queue.NewSeatMapServedEvent(requestID, params, resp, status, now())
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), publishTimeout)
		defer cancel()
		_ = h.Events.PublishSeatMapServed(ctx, ev)
	}()
}
