package model

// OfferService is one purchasable seat item taken from the supplier's
// a-la-carte offer. An item that applies to several flight segments is
// copied into each segment's list so every segment owns its own slice.
//
// Fields:
//  OfferItemID         – unique within one supplier document.
//  ServiceDefinitionID – key into the service definition lists.
//  TotalAmount         – price including tax.
//  BaseAmount          – price before tax.
//  TotalTax            – tax, zero when the base amount is non-taxable.
//  CurrencyCode        – ISO currency of TotalAmount, may be empty.
//  PaxRefs             – passengers the item is eligible for.
//  SegmentRefs         – segments the item applies to, in document order.
//  SeatName            – seat class name, empty when unresolved.
type OfferService struct {
	OfferItemID         string
	ServiceDefinitionID string
	TotalAmount         int64
	BaseAmount          int64
	TotalTax            int64
	CurrencyCode        string
	PaxRefs             []string
	SegmentRefs         []string
	SeatName            string
}
