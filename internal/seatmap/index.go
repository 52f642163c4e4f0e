package seatmap

// OfferItemIndex maps an offer item id to its resolved seat class name.
type OfferItemIndex map[string]string

// BuildOfferItemIndex flattens the catalog into one lookup for the seat map
// assembler. Offer item ids are expected to be unique per document; should
// one appear with two different names, the later segment wins.
func BuildOfferItemIndex(catalog ServiceCatalog) OfferItemIndex {
	ix := make(OfferItemIndex)
	for _, segmentID := range catalog.Segments() {
		for _, svc := range catalog.Services(segmentID) {
			ix[svc.OfferItemID] = svc.SeatName
		}
	}
	return ix
}

// SeatName returns the seat class name of an offer item.
func (ix OfferItemIndex) SeatName(offerItemID string) (string, bool) {
	name, ok := ix[offerItemID]
	return name, ok
}
