package handler

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"

	"github.com/iliyamo/ndc-seat-availability/internal/model"
)

//go:embed schema/seat_availability_request.json
var seatAvailabilitySchemaJSON []byte

var seatAvailabilitySchema = mustSchema(seatAvailabilitySchemaJSON)

func mustSchema(raw []byte) *gojsonschema.Schema {
	s, err := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if err != nil {
		panic(fmt.Sprintf("handler: invalid request schema: %v", err))
	}
	return s
}

// ValidateSeatAvailabilityRequest checks body against the request schema
// and the selector rules, and decodes it. A non-empty error list means
// the request must be rejected.
//
// Selector rules: order_id is required without responses_id; offer_id and
// responses_id are required without order_id; responses_id is dropped
// when order_id is given.
func ValidateSeatAvailabilityRequest(body []byte) (model.SeatAvailabilityRequest, []string) {
	var req model.SeatAvailabilityRequest
	if len(bytes.TrimSpace(body)) == 0 {
		body = []byte("{}")
	}

	result, err := seatAvailabilitySchema.Validate(gojsonschema.NewBytesLoader(body))
	if err != nil {
		return req, []string{"The request body must be a JSON object."}
	}
	if !result.Valid() {
		return req, schemaErrors(result.Errors())
	}

	if err := json.Unmarshal(body, &req); err != nil {
		return req, []string{err.Error()}
	}

	p := &req.NDCParams
	hasOrder := p.HasOrder()
	var errs []string
	if !hasOrder && strings.TrimSpace(p.ResponsesID) == "" {
		errs = append(errs, "The Order Id field is required when Response Id is not present.")
	}
	if !hasOrder && strings.TrimSpace(p.OfferID) == "" {
		errs = append(errs, "The Offer Id field is required when Order Id is not present.")
	}
	if !hasOrder && strings.TrimSpace(p.ResponsesID) == "" {
		errs = append(errs, "The Response Id field is required when Order Id is not present.")
	}
	if hasOrder {
		p.ResponsesID = ""
	}
	return req, errs
}

func schemaErrors(in []gojsonschema.ResultError) []string {
	out := make([]string, 0, len(in))
	for _, e := range in {
		out = append(out, fmt.Sprintf("%s: %s", e.Field(), e.Description()))
	}
	return out
}
