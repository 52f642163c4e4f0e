package model

// PhysicalSeat is a seat position read from a segment's cabin layout.
// A seat without offer item references cannot be sold and never reaches
// the client.
//
// Fields:
//  Row             – row number as sent by the supplier.
//  Column          – column letter.
//  OfferItemRefs   – offer items sold for this seat, first one names it.
//  Status          – raw availability code, "A" means available.
//  Characteristics – IATA seat characteristic codes, may be empty.
type PhysicalSeat struct {
	Row             string
	Column          string
	OfferItemRefs   []string
	Status          string
	Characteristics []string
}

// SeatStatusAvailable is the supplier's code for an open seat.
const SeatStatusAvailable = "A"

// Sellable reports whether at least one offer item is linked to the seat.
func (s PhysicalSeat) Sellable() bool {
	return len(s.OfferItemRefs) > 0
}

// Designator is the row immediately followed by the column, e.g. 12A.
func (s PhysicalSeat) Designator() string {
	return s.Row + s.Column
}

// SeatMapEntry is one sellable seat as returned to the client.
type SeatMapEntry struct {
	SeatName        string   `json:"seat_name"`
	OfferItemIDs    []string `json:"offer_item_ids"`
	Designator      string   `json:"designator"`
	Line            string   `json:"line"`
	Column          string   `json:"column"`
	Availability    bool     `json:"availability"`
	Characteristics []string `json:"characteristics"`
}

// SeatPrice is one priced offer item of a segment.
type SeatPrice struct {
	SeatName      string   `json:"seat_name"`
	OfferItemID   string   `json:"offer_item_id"`
	Amount        int64    `json:"amount"`
	CurrencyCode  string   `json:"currency_code"`
	PaxReferences []string `json:"pax_references"`
	SegmentID     string   `json:"segment_id"`
}
