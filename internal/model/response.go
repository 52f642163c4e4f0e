package model

// FlightInfo is one entry of flight_list. TechnicalStop is always null;
// the supplier does not report stop counts for seat availability.
type FlightInfo struct {
	MarketingAirlineCode string `json:"marketing_airline_cd"`
	FlightNo             string `json:"flight_no"`
	FlightNumber         string `json:"flight_number"`
	DepDatetime          string `json:"dep_datetime"`
	DepAirportCode       string `json:"dep_airport_cd"`
	ArrDatetime          string `json:"arr_datetime"`
	ArrAirportCode       string `json:"arr_airport_cd"`
	TechnicalStop        *int   `json:"technical_stop"`
}

// SeatInfo is one entry of seat_info, positionally aligned with flight_list.
type SeatInfo struct {
	FlightNumber  string         `json:"flight_number"`
	SeatNameList  []string       `json:"seat_name_list"`
	SeatPriceList []SeatPrice    `json:"seat_price_list"`
	ColumnList    []string       `json:"column_list"`
	SeatMap       []SeatMapEntry `json:"seat_map"`
}

// SeatAvailabilityResponse is the normalized client view of one supplier
// seat availability document.
type SeatAvailabilityResponse struct {
	StatusCode  int          `json:"status_code"`
	ResponsesID string       `json:"responses_id"`
	OfferID     string       `json:"offer_id"`
	FlightList  []FlightInfo `json:"flight_list"`
	SeatInfo    []SeatInfo   `json:"seat_info"`
}

// SeatCount returns the number of seat map entries across all flights.
func (r SeatAvailabilityResponse) SeatCount() int {
	n := 0
	for _, s := range r.SeatInfo {
		n += len(s.SeatMap)
	}
	return n
}

// ErrorResponse is the body of every failed request.
type ErrorResponse struct {
	StatusCode int      `json:"status_code"`
	ErrMsg     string   `json:"err_msg"`
	Errors     []string `json:"errors,omitempty"`
}
