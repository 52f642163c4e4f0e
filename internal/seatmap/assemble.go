package seatmap

import (
	"slices"
	"strings"

	"github.com/iliyamo/ndc-seat-availability/internal/model"
	"github.com/iliyamo/ndc-seat-availability/internal/ndc"
)

// PhysicalSeats reads the seats of a segment from every SeatMap record
// that references it, walking cabin, row and seat in document order.
// Unsellable seats are included; the assembler drops them.
func PhysicalSeats(doc *ndc.Node, segmentID string) []model.PhysicalSeat {
	var seats []model.PhysicalSeat
	for _, sm := range doc.Child(sectionSeatAvail).Children(elemSeatMap) {
		if sm.Child(elemSegmentRef).Value() != segmentID {
			continue
		}
		for _, cabin := range sm.Children("Cabin") {
			for _, row := range cabin.Children("Row") {
				line := row.Child("Number").Value()
				for _, seat := range row.Children("Seat") {
					seats = append(seats, model.PhysicalSeat{
						Row:             line,
						Column:          seat.Child("Column").Value(),
						OfferItemRefs:   strings.Fields(seat.Child(elemOfferItemRefs).Value()),
						Status:          seat.Child("SeatStatus").Value(),
						Characteristics: nonEmpty(seat.Child("SeatCharacteristics").Values("Code")),
					})
				}
			}
		}
	}
	return seats
}

// SeatSelectable reports whether a segment offers seat selection at all.
// Code-share legs never do.
func SeatSelectable(segment model.FlightSegment) bool {
	return !segment.IsCodeShare
}

// AssembleSeatMap builds the client seat map of one segment.
//
// Seats without an offer item are omitted. A seat is named after its
// first offer item; an item missing from the index leaves the name empty.
// Availability starts from the raw status and a restricted characteristic
// can only turn it off.
func AssembleSeatMap(segment model.FlightSegment, seats []model.PhysicalSeat, index OfferItemIndex, restrictions RestrictionSet) []model.SeatMapEntry {
	if !SeatSelectable(segment) {
		return nil
	}
	out := make([]model.SeatMapEntry, 0, len(seats))
	for _, seat := range seats {
		if !seat.Sellable() {
			continue
		}
		name, _ := index.SeatName(seat.OfferItemRefs[0])
		out = append(out, model.SeatMapEntry{
			SeatName:        name,
			OfferItemIDs:    slices.Clone(seat.OfferItemRefs),
			Designator:      seat.Designator(),
			Line:            seat.Row,
			Column:          seat.Column,
			Availability:    Available(seat, restrictions),
			Characteristics: append([]string{}, seat.Characteristics...),
		})
	}
	return out
}

// Available combines the raw seat status with the restriction set.
func Available(seat model.PhysicalSeat, restrictions RestrictionSet) bool {
	available := seat.Status == model.SeatStatusAvailable
	if restrictions.Restricts(seat.Characteristics) {
		available = false
	}
	return available
}

// SeatPrices lists the priced offer items of a segment.
func SeatPrices(segmentID string, services []model.OfferService) []model.SeatPrice {
	out := make([]model.SeatPrice, 0, len(services))
	for _, svc := range services {
		out = append(out, model.SeatPrice{
			SeatName:      svc.SeatName,
			OfferItemID:   svc.OfferItemID,
			Amount:        svc.TotalAmount,
			CurrencyCode:  svc.CurrencyCode,
			PaxReferences: append([]string{}, svc.PaxRefs...),
			SegmentID:     segmentID,
		})
	}
	return out
}
