package seatmap

import (
	"slices"

	"github.com/iliyamo/ndc-seat-availability/internal/model"
	"github.com/iliyamo/ndc-seat-availability/internal/ndc"
)

// Engine runs the normalization pipeline. It is safe for concurrent use;
// each call works on its own document and keeps no state.
type Engine struct {
	requiredCharacteristics []string
}

// NewEngine returns an Engine that treats seats carrying any of the given
// characteristic codes as unassignable.
func NewEngine(requiredCharacteristics []string) *Engine {
	return &Engine{requiredCharacteristics: slices.Clone(requiredCharacteristics)}
}

// Normalize validates doc and turns it into the client response. Stages
// run in a fixed order, each taking the outputs of the previous ones.
func (e *Engine) Normalize(doc *ndc.Node) (model.SeatAvailabilityResponse, error) {
	if err := Validate(doc); err != nil {
		return model.SeatAvailabilityResponse{}, err
	}

	catalog := BuildServiceCatalog(doc)
	flights := ResolveFlightSegments(doc)
	defs := ResolveSeatDefinitions(doc, catalog)
	index := BuildOfferItemIndex(catalog)
	restrictions := NewRestrictionSet(e.requiredCharacteristics, HasChildPassenger(doc))

	seats := make(map[string]SegmentSeats, flights.Len())
	for _, id := range flights.IDs() {
		segment, _ := flights.Get(id)
		entries := AssembleSeatMap(segment, PhysicalSeats(doc, id), index, restrictions)
		names, prices, entries := Anonymize(defs.Names(id), SeatPrices(id, catalog.Services(id)), entries)
		seats[id] = SegmentSeats{
			Names:   names,
			Prices:  prices,
			Columns: defs.Columns(id),
			SeatMap: entries,
		}
	}
	return Compose(ResolveIdentifiers(doc), flights, seats), nil
}
