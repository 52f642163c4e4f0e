package seatmap

import (
	"slices"

	"github.com/iliyamo/ndc-seat-availability/internal/model"
	"github.com/iliyamo/ndc-seat-availability/internal/ndc"
)

// ServiceCatalog lists the purchasable seat items per flight segment.
// Segments keep the order in which the offer first referenced them.
type ServiceCatalog struct {
	segments []string
	services map[string][]model.OfferService
}

// Segments returns the segment ids that have at least one service.
func (c ServiceCatalog) Segments() []string {
	return slices.Clone(c.segments)
}

// Services returns the services offered on segmentID, nil when none.
func (c ServiceCatalog) Services(segmentID string) []model.OfferService {
	return c.services[segmentID]
}

func (c *ServiceCatalog) add(segmentID string, svc model.OfferService) {
	if c.services == nil {
		c.services = make(map[string][]model.OfferService)
	}
	if _, ok := c.services[segmentID]; !ok {
		c.segments = append(c.segments, segmentID)
	}
	c.services[segmentID] = append(c.services[segmentID], svc)
}

// BuildServiceCatalog extracts every offer item of the Response section.
//
// The seat class name is found by scanning the pricing service definition
// list once per item, O(items × definitions); suppliers send a handful of
// definitions so no lookup map is built. An item is copied into the list of
// every segment it references.
func BuildServiceCatalog(doc *ndc.Node) ServiceCatalog {
	resp := doc.Child(sectionResponse)
	defs := resp.Path(sectionDataLists, listServiceDefs).Children(elemServiceDef)

	var catalog ServiceCatalog
	for _, item := range resp.Child(sectionALaCarte).Children("OfferItem") {
		svc := offerService(item, defs)
		for _, segmentID := range svc.SegmentRefs {
			cp := svc
			cp.PaxRefs = slices.Clone(svc.PaxRefs)
			cp.SegmentRefs = slices.Clone(svc.SegmentRefs)
			catalog.add(segmentID, cp)
		}
	}
	return catalog
}

func offerService(item *ndc.Node, defs []*ndc.Node) model.OfferService {
	defID := item.Path("Service", "ServiceDefinitionRefID").Value()
	eligibility := item.Child("Eligibility")

	svc := model.OfferService{
		OfferItemID:         identifier(item, "OfferItemID"),
		ServiceDefinitionID: defID,
		SeatName:            definitionName(defID, defs),
		PaxRefs:             nonEmpty(eligibility.Values("PaxRefID")),
		SegmentRefs: nonEmpty(eligibility.
			Path("OfferFlightAssociations", "PaxSegmentReferences").
			Values("PaxSegmentRefID")),
	}
	svc.TotalAmount, svc.BaseAmount, svc.TotalTax, svc.CurrencyCode = resolvePrice(item.Child("UnitPrice"))
	return svc
}

func definitionName(defID string, defs []*ndc.Node) string {
	for _, def := range defs {
		if identifier(def, attrServiceDefID) == defID {
			return def.Child("Name").Value()
		}
	}
	return ""
}

// identifier reads an id from the attribute when present and from the
// child element of the same name otherwise; the supplier uses both forms.
func identifier(n *ndc.Node, name string) string {
	if n.HasAttr(name) {
		return n.Attr(name)
	}
	return n.Child(name).Value()
}

// resolvePrice applies the supplier price rules:
//   - no BaseAmount element at all: the total doubles as the base;
//   - BaseAmount present: its numeric content, zero otherwise;
//   - tax is zero for a BaseAmount marked Taxable="false", otherwise the
//     Taxes/Total content, zero when missing.
func resolvePrice(unit *ndc.Node) (total, base, tax int64, currency string) {
	totalNode := unit.Child("TotalAmount")
	total = ndc.Int(totalNode.Value())
	currency = totalNode.Attr("CurCode")

	baseNode := unit.Child("BaseAmount")
	switch {
	case baseNode == nil:
		base = total
	case ndc.IsNumeric(baseNode.Value()):
		base = ndc.Int(baseNode.Value())
	}

	if baseNode.Attr("Taxable") != "false" {
		tax = ndc.Int(unit.Path("Taxes", "Total").Value())
	}
	return total, base, tax, currency
}

func nonEmpty(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s != "" {
			out = append(out, s)
		}
	}
	return out
}
