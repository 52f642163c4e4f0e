package seatmap

import (
	"slices"

	"github.com/iliyamo/ndc-seat-availability/internal/model"
	"github.com/iliyamo/ndc-seat-availability/internal/ndc"
)

// FlightSegments is the flight metadata of a document keyed by segment id,
// in document order.
type FlightSegments struct {
	ids  []string
	byID map[string]model.FlightSegment
}

// IDs returns the segment ids in document order.
func (f FlightSegments) IDs() []string { return slices.Clone(f.ids) }

// Len returns the number of distinct segments.
func (f FlightSegments) Len() int { return len(f.ids) }

// Get returns the segment with the given id.
func (f FlightSegments) Get(id string) (model.FlightSegment, bool) {
	seg, ok := f.byID[id]
	return seg, ok
}

// ResolveFlightSegments reads every PaxSegment of the Response data lists.
// A repeated segment id overwrites the earlier record but keeps its
// original position.
func ResolveFlightSegments(doc *ndc.Node) FlightSegments {
	out := FlightSegments{byID: make(map[string]model.FlightSegment)}
	list := doc.Path(sectionResponse, sectionDataLists, "PaxSegmentList")
	for _, seg := range list.Children("PaxSegment") {
		ms := seg.Child("DatedMarketingSegment")
		fs := model.FlightSegment{
			SegmentID:            identifier(seg, "PaxSegmentID"),
			MarketingCarrierCode: ms.Child("CarrierDesigCode").Value(),
			FlightNumber:         ms.Child("MarketingCarrierFlightNumberText").Value(),
			DepartureAirport:     ms.Path("Dep", "IATA_LocationCode").Value(),
			DepartureDatetime:    ms.Path("Dep", "AircraftScheduledDateTime").Value(),
			ArrivalAirport:       ms.Path("Arrival", "IATA_LocationCode").Value(),
			ArrivalDatetime:      ms.Path("Arrival", "AircraftScheduledDateTime").Value(),
			IsCodeShare:          IsCodeShare(seg),
		}
		if _, seen := out.byID[fs.SegmentID]; !seen {
			out.ids = append(out.ids, fs.SegmentID)
		}
		out.byID[fs.SegmentID] = fs
	}
	return out
}

// IsCodeShare reports whether a PaxSegment is operated by another carrier.
// An empty OperatingCarrierInfo element counts as absent.
func IsCodeShare(seg *ndc.Node) bool {
	return !seg.Child("OperatingCarrierInfo").IsEmpty()
}
