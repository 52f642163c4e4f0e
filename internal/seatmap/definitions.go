package seatmap

import (
	"slices"

	"github.com/iliyamo/ndc-seat-availability/internal/ndc"
)

// SeatDefinitions holds, per segment, the seat class names on offer and
// the physical column layout of the cabin.
type SeatDefinitions struct {
	names   map[string][]string
	columns map[string][]string
}

// Names returns the distinct seat class names of a segment in first-seen
// order. The order is what seat type labels are numbered by.
func (d SeatDefinitions) Names(segmentID string) []string {
	return d.names[segmentID]
}

// Columns returns the cabin columns of a segment.
func (d SeatDefinitions) Columns(segmentID string) []string {
	return d.columns[segmentID]
}

// ResolveSeatDefinitions links the seat-availability service definitions to
// the segments whose services reference them, and collects each segment's
// column layout from its cabin records.
//
// The seat-availability definition list is a different list from the one
// used for pricing; the two are joined on the definition id only. A name
// is not assumed to belong to a single segment, so every segment is
// checked for every definition.
func ResolveSeatDefinitions(doc *ndc.Node, catalog ServiceCatalog) SeatDefinitions {
	out := SeatDefinitions{
		names:   make(map[string][]string),
		columns: make(map[string][]string),
	}
	seatAvail := doc.Child(sectionSeatAvail)

	defs := seatAvail.Path(sectionDataLists, listServiceDefs).Children(elemServiceDef)
	for _, def := range defs {
		id := identifier(def, attrServiceDefID)
		name := def.Child("Name").Value()
		for _, segmentID := range catalog.Segments() {
			if offersDefinition(catalog, segmentID, id) {
				out.names[segmentID] = appendUnique(out.names[segmentID], name)
			}
		}
	}

	for _, sm := range seatAvail.Children(elemSeatMap) {
		segmentID := sm.Child(elemSegmentRef).Value()
		for _, cabin := range sm.Children("Cabin") {
			for _, layout := range cabin.Children("CabinLayout") {
				out.columns[segmentID] = append(out.columns[segmentID], layout.Values("Columns")...)
			}
		}
	}
	return out
}

func offersDefinition(catalog ServiceCatalog, segmentID, definitionID string) bool {
	for _, svc := range catalog.Services(segmentID) {
		if svc.ServiceDefinitionID == definitionID {
			return true
		}
	}
	return false
}

func appendUnique(list []string, v string) []string {
	if slices.Contains(list, v) {
		return list
	}
	return append(list, v)
}
