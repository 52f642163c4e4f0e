package model

// FlightSegment holds the flight metadata of one flown leg.
//
// Fields:
//  SegmentID            – the supplier's PaxSegmentID.
//  MarketingCarrierCode – two letter marketing carrier.
//  FlightNumber         – marketing flight number text.
//  DepartureAirport     – IATA location code.
//  DepartureDatetime    – scheduled departure as sent by the supplier.
//  ArrivalAirport       – IATA location code.
//  ArrivalDatetime      – scheduled arrival, empty when the supplier omits it.
//  IsCodeShare          – true when an operating carrier record is present.
type FlightSegment struct {
	SegmentID            string
	MarketingCarrierCode string
	FlightNumber         string
	DepartureAirport     string
	DepartureDatetime    string
	ArrivalAirport       string
	ArrivalDatetime      string
	IsCodeShare          bool
}

// Designator returns carrier code and flight number joined, e.g. TR12.
func (f FlightSegment) Designator() string {
	return f.MarketingCarrierCode + f.FlightNumber
}
