package seatmap

import (
	"net/http"

	"github.com/iliyamo/ndc-seat-availability/internal/model"
	"github.com/iliyamo/ndc-seat-availability/internal/ndc"
)

// Identifiers are the supplier's shopping response and offer ids, echoed
// back so the client can reference them when ordering seats.
type Identifiers struct {
	ResponseID string
	OfferID    string
}

// ResolveIdentifiers copies the response and offer ids from the seat
// availability section, falling back to the Response section.
func ResolveIdentifiers(doc *ndc.Node) Identifiers {
	var ids Identifiers
	for _, section := range []string{sectionSeatAvail, sectionResponse} {
		sec := doc.Child(section)
		if ids.ResponseID == "" {
			ids.ResponseID = sec.Path("ShoppingResponseID", "ResponseID").Value()
		}
		if ids.OfferID == "" {
			ids.OfferID = identifier(sec.Child(sectionALaCarte), "OfferID")
		}
	}
	return ids
}

// SegmentSeats is the anonymized seat view of one segment.
type SegmentSeats struct {
	Names   []string
	Prices  []model.SeatPrice
	Columns []string
	SeatMap []model.SeatMapEntry
}

// Compose lays out the client response: one flight_list entry and one
// seat_info entry per known segment, at the same index. A segment without
// seat data gets empty lists.
func Compose(ids Identifiers, flights FlightSegments, seats map[string]SegmentSeats) model.SeatAvailabilityResponse {
	resp := model.SeatAvailabilityResponse{
		StatusCode:  http.StatusOK,
		ResponsesID: ids.ResponseID,
		OfferID:     ids.OfferID,
		FlightList:  make([]model.FlightInfo, 0, flights.Len()),
		SeatInfo:    make([]model.SeatInfo, 0, flights.Len()),
	}
	for _, id := range flights.IDs() {
		f, _ := flights.Get(id)
		resp.FlightList = append(resp.FlightList, model.FlightInfo{
			MarketingAirlineCode: f.MarketingCarrierCode,
			FlightNo:             f.FlightNumber,
			FlightNumber:         f.Designator(),
			DepDatetime:          f.DepartureDatetime,
			DepAirportCode:       f.DepartureAirport,
			ArrDatetime:          f.ArrivalDatetime,
			ArrAirportCode:       f.ArrivalAirport,
		})

		s := seats[id]
		resp.SeatInfo = append(resp.SeatInfo, model.SeatInfo{
			FlightNumber:  f.Designator(),
			SeatNameList:  orEmpty(s.Names),
			SeatPriceList: orEmptyPrices(s.Prices),
			ColumnList:    orEmpty(s.Columns),
			SeatMap:       orEmptySeats(s.SeatMap),
		})
	}
	return resp
}

func orEmpty(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}

func orEmptyPrices(p []model.SeatPrice) []model.SeatPrice {
	if p == nil {
		return []model.SeatPrice{}
	}
	return p
}

func orEmptySeats(s []model.SeatMapEntry) []model.SeatMapEntry {
	if s == nil {
		return []model.SeatMapEntry{}
	}
	return s
}
