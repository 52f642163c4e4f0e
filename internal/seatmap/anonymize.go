package seatmap

import (
	"strconv"

	"github.com/iliyamo/ndc-seat-availability/internal/model"
)

// UnmappedSeatName replaces a seat class name that has no generic label.
const UnmappedSeatName = "-"

// SeatTypeLabel returns the generic label of the n-th seat class, from 1.
func SeatTypeLabel(n int) string {
	return "Seat Type " + strconv.Itoa(n)
}

// SeatTypeLabels numbers the true seat class names in the given order.
func SeatTypeLabels(names []string) map[string]string {
	labels := make(map[string]string, len(names))
	for _, name := range names {
		if _, ok := labels[name]; !ok {
			labels[name] = SeatTypeLabel(len(labels) + 1)
		}
	}
	return labels
}

// Anonymize hides the true seat class names of one segment behind
// positional labels. The same true name gets the same label in the name
// list, the price list and the seat map. Nothing is rewritten when names
// is empty. The inputs are left untouched.
func Anonymize(names []string, prices []model.SeatPrice, seats []model.SeatMapEntry) ([]string, []model.SeatPrice, []model.SeatMapEntry) {
	if len(names) == 0 {
		return names, prices, seats
	}
	labels := SeatTypeLabels(names)
	relabel := func(name string) string {
		if label, ok := labels[name]; ok {
			return label
		}
		return UnmappedSeatName
	}

	outNames := make([]string, len(names))
	for i, name := range names {
		outNames[i] = labels[name]
	}
	outPrices := make([]model.SeatPrice, len(prices))
	for i, p := range prices {
		p.SeatName = relabel(p.SeatName)
		outPrices[i] = p
	}
	outSeats := make([]model.SeatMapEntry, len(seats))
	for i, s := range seats {
		s.SeatName = relabel(s.SeatName)
		outSeats[i] = s
	}
	return outNames, outPrices, outSeats
}
