package model

import (
	"encoding/json"
	"strings"
)

// SeatAvailabilityRequest is the inbound client request.
//
// GDSCode is an optional numeric distribution system code; numeric strings
// are accepted as well as JSON numbers.
type SeatAvailabilityRequest struct {
	GDSCode   *json.Number `json:"gds_code"`
	NDCParams NDCParams    `json:"ndc_params"`
}

// NDCParams selects what the supplier is asked about. Exactly one of
// OrderID or the OfferID/ResponsesID pair is expected; a non-empty OrderID
// takes precedence.
type NDCParams struct {
	FFF             string         `json:"fff"`
	OrderID         string         `json:"order_id,omitempty"`
	OfferID         string         `json:"offer_id,omitempty"`
	ResponsesID     string         `json:"responses_id,omitempty"`
	OwnerCode       string         `json:"owner_code,omitempty"`
	PaxSegmentRefID string         `json:"pax_segment_ref_id,omitempty"`
	PaxReferences   *PaxReferences `json:"pax_references,omitempty"`
}

// HasOrder reports whether the request targets an existing order.
func (p NDCParams) HasOrder() bool {
	return strings.TrimSpace(p.OrderID) != ""
}

// PaxReferences groups passenger ids by type. Infant ids carry their
// paired adult as a prefix: "<adultId>.<n>".
type PaxReferences struct {
	Adult  []string `json:"adt_pax_ref,omitempty"`
	Child  []string `json:"chd_pax_ref,omitempty"`
	Infant []string `json:"inf_pax_ref,omitempty"`
}
