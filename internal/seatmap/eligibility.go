package seatmap

import "github.com/iliyamo/ndc-seat-availability/internal/ndc"

const (
	// ChildPassengerType is the passenger type code of a child.
	ChildPassengerType = "CNN"
	// ChildRestrictionCode marks seats a child may not be assigned.
	ChildRestrictionCode = "IE"
)

// HasChildPassenger reports whether the document's passenger list holds a
// child.
func HasChildPassenger(doc *ndc.Node) bool {
	list := doc.Path(sectionSeatAvail, sectionDataLists, "PassengerList")
	for _, pax := range list.Children("Passenger") {
		if pax.Child("PTC").Value() == ChildPassengerType {
			return true
		}
	}
	return false
}

// RestrictionSet is the set of seat characteristic codes that make a seat
// unassignable, such as exit rows or bulkheads.
type RestrictionSet map[string]struct{}

// NewRestrictionSet builds the set from the configured codes, adding
// ChildRestrictionCode when a child travels.
func NewRestrictionSet(codes []string, hasChild bool) RestrictionSet {
	rs := make(RestrictionSet, len(codes)+1)
	for _, c := range codes {
		if c != "" {
			rs[c] = struct{}{}
		}
	}
	if hasChild {
		rs[ChildRestrictionCode] = struct{}{}
	}
	return rs
}

// Restricts reports whether any of the characteristics is in the set.
func (rs RestrictionSet) Restricts(characteristics []string) bool {
	for _, c := range characteristics {
		if _, ok := rs[c]; ok {
			return true
		}
	}
	return false
}
