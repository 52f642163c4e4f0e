// Package queue defines the seat map events exchanged over the message
// broker and the consumer that records them in the audit store.
package queue

import (
	"time"

	"github.com/google/uuid"

	"github.com/iliyamo/ndc-seat-availability/internal/model"
)

// SeatMapServedQueue is the durable queue SeatMapServedEvent travels on.
const SeatMapServedQueue = "seatmap.served"

// SeatMapServedEvent is published once per seat availability request that
// reached the supplier, whatever the outcome.
type SeatMapServedEvent struct {
	EventID    string   `json:"event_id"`
	RequestID  string   `json:"request_id"`
	OfferID    string   `json:"offer_id"`
	ResponseID string   `json:"response_id"`
	Flights    []string `json:"flights"`
	SeatCount  int      `json:"seat_count"`
	StatusCode int      `json:"status_code"`
	ServedAt   string   `json:"served_at"`
}

// NewSeatMapServedEvent describes resp. For failed requests resp is the
// zero value and only the ids from params are known.
func NewSeatMapServedEvent(requestID string, params model.NDCParams, resp model.SeatAvailabilityResponse, status int, at time.Time) SeatMapServedEvent {
	ev := SeatMapServedEvent{
		EventID:    uuid.NewString(),
		RequestID:  requestID,
		OfferID:    params.OfferID,
		ResponseID: params.ResponsesID,
		Flights:    []string{},
		SeatCount:  resp.SeatCount(),
		StatusCode: status,
		ServedAt:   at.UTC().Format(time.RFC3339Nano),
	}
	if resp.OfferID != "" {
		ev.OfferID = resp.OfferID
	}
	if resp.ResponsesID != "" {
		ev.ResponseID = resp.ResponsesID
	}
	for _, f := range resp.FlightList {
		ev.Flights = append(ev.Flights, f.FlightNumber)
	}
	return ev
}
