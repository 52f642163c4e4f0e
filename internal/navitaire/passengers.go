package navitaire

import (
	"strings"

	"github.com/iliyamo/ndc-seat-availability/internal/model"
)

// Passenger type codes sent to the supplier.
const (
	PaxTypeAdult  = "ADT"
	PaxTypeChild  = "CNN"
	PaxTypeInfant = "INF"
)

// Passenger is one passenger reference of a seat availability request.
type Passenger struct {
	PassengerID string `xml:"PassengerID,attr"`
	PTC         string `xml:"PTC"`
	InfantRef   string `xml:"InfantRef,omitempty"`
}

// PassengerRefs builds the passenger list of an offer based request.
//
// Requests for an existing order carry no passenger list, so the result
// is empty whenever an order id is set. Otherwise adults, children and
// infants are listed in that order, blank ids skipped. When infants are
// present, a passenger whose id is the prefix of an infant id (before the
// first ".") carries that infant as InfantRef; the last matching infant
// wins.
func PassengerRefs(params model.NDCParams) []Passenger {
	if params.HasOrder() || params.PaxReferences == nil {
		return nil
	}
	refs := params.PaxReferences
	groups := []struct {
		ptc string
		ids []string
	}{
		{PaxTypeAdult, refs.Adult},
		{PaxTypeChild, refs.Child},
		{PaxTypeInfant, refs.Infant},
	}

	var out []Passenger
	for _, g := range groups {
		for _, id := range g.ids {
			if id == "" {
				continue
			}
			pax := Passenger{PassengerID: id, PTC: g.ptc}
			for _, inf := range refs.Infant {
				if adult, _, _ := strings.Cut(inf, "."); adult == id {
					pax.InfantRef = inf
				}
			}
			out = append(out, pax)
		}
	}
	return out
}

// OrderRef points the supplier at an existing order.
type OrderRef struct {
	OrderID string `xml:"OrderID,attr"`
	Owner   string `xml:"Owner,attr"`
}

// OfferRef points the supplier at a shopping offer.
type OfferRef struct {
	Owner      string `xml:"Owner,attr"`
	ResponseID string `xml:"ResponseID,attr"`
	OfferID    string `xml:"OfferID,attr"`
}

// OfferOrOrder holds exactly one of Order or Offer.
type OfferOrOrder struct {
	Order *OrderRef `xml:"Order,omitempty"`
	Offer *OfferRef `xml:"Offer,omitempty"`
}

// OfferOrOrderRef selects the order reference when an order id is given
// and the offer reference otherwise.
func OfferOrOrderRef(params model.NDCParams, owner string) OfferOrOrder {
	if params.HasOrder() {
		return OfferOrOrder{Order: &OrderRef{OrderID: params.OrderID, Owner: owner}}
	}
	return OfferOrOrder{Offer: &OfferRef{
		Owner:      owner,
		ResponseID: params.ResponsesID,
		OfferID:    params.OfferID,
	}}
}
