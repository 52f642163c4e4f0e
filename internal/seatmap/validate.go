package seatmap

import "github.com/iliyamo/ndc-seat-availability/internal/ndc"

// Top level sections of a supplier seat availability document.
const (
	sectionResponse   = "Response"
	sectionErrors     = "Errors"
	sectionSeatAvail  = "SeatAvailabilityRS"
	sectionDataLists  = "DataLists"
	sectionALaCarte   = "ALaCarteOffer"
	listServiceDefs   = "ServiceDefinitionList"
	elemServiceDef    = "ServiceDefinition"
	attrServiceDefID  = "ServiceDefinitionID"
	elemSeatMap       = "SeatMap"
	elemSegmentRef    = "SegmentRef"
	elemOfferItemRefs = "OfferItemRefs"
)

// Validate rejects documents the rest of the pipeline must not see. It
// runs first and is independent of the HTTP status of the supplier call.
func Validate(doc *ndc.Node) error {
	if doc.IsEmpty() {
		return ErrEmptyDocument
	}
	if doc.Has(sectionErrors) {
		return ErrNoSeatAvailable
	}
	if doc.Child(sectionResponse).IsEmpty() {
		return ErrNoSeatAvailable
	}
	return nil
}
