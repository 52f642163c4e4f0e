package navitaire

import (
	"encoding/xml"
	"fmt"

	"github.com/iliyamo/ndc-seat-availability/internal/model"
)

const (
	soapEnvelopeNS = "http://schemas.xmlsoap.org/soap/envelope/"
	ndcMessageNS   = "http://www.iata.org/IATA/2015/EASD/00/IATA_OffersAndOrdersMessage"
	ndcCommonNS    = "http://www.iata.org/IATA/2015/EASD/00/IATA_OffersAndOrdersCommonTypes"
	ndcVersion     = "21.3"
	missingValue   = "No %s"
)

// Settings are the seller details every request carries.
type Settings struct {
	OwnerCode   string
	CountryCode string
	AgencyID    string
}

type envelope struct {
	XMLName xml.Name `xml:"soapenv:Envelope"`
	Soapenv string   `xml:"xmlns:soapenv,attr"`
	Header  struct{} `xml:"soapenv:Header"`
	Body    struct {
		RQ seatAvailabilityRQ `xml:"IATA_SeatAvailabilityRQ"`
	} `xml:"soapenv:Body"`
}

type seatAvailabilityRQ struct {
	Xmlns             string            `xml:"xmlns,attr"`
	DistributionChain distributionChain `xml:"DistributionChain"`
	PayloadAttributes payloadAttributes `xml:"PayloadAttributes"`
	POS               pos               `xml:"POS"`
	Request           request           `xml:"Request"`
}

type distributionChain struct {
	Link struct {
		Ordinal          int    `xml:"Ordinal"`
		OrgRole          string `xml:"OrgRole"`
		ParticipatingOrg struct {
			OrgID string `xml:"OrgID"`
		} `xml:"ParticipatingOrg"`
	} `xml:"DistributionChainLink"`
}

type payloadAttributes struct {
	VersionNumber string `xml:"VersionNumber"`
}

type pos struct {
	Country struct {
		Xmlns       string `xml:"xmlns,attr"`
		CountryCode string `xml:"CountryCode"`
	} `xml:"Country"`
}

type request struct {
	Core          seatAvailCoreRequest `xml:"SeatAvailCoreRequest"`
	PassengerList *passengerList       `xml:"PassengerList,omitempty"`
}

type seatAvailCoreRequest struct {
	Xmlns        string        `xml:"xmlns,attr"`
	OfferRequest *offerRequest `xml:"OfferRequest,omitempty"`
	OrderRequest *OrderRef     `xml:"OrderRequest>Order,omitempty"`
}

type offerRequest struct {
	Offer struct {
		OfferID   string `xml:"OfferID"`
		OwnerCode string `xml:"OwnerCode"`
		OfferItem struct {
			OwnerCode       string `xml:"OwnerCode"`
			PaxSegmentRefID string `xml:"PaxSegmentRefID"`
		} `xml:"OfferItem"`
	} `xml:"Offer"`
}

type passengerList struct {
	Passengers []Passenger `xml:"Passenger"`
}

// BuildRequest renders the SOAP body of a seat availability call. Order
// based requests reference the order only; offer based requests name the
// offer, its owner and the segment, plus any passenger references.
func BuildRequest(params model.NDCParams, s Settings) ([]byte, error) {
	var env envelope
	env.Soapenv = soapEnvelopeNS

	rq := &env.Body.RQ
	rq.Xmlns = ndcMessageNS
	rq.DistributionChain.Link.Ordinal = 1
	rq.DistributionChain.Link.OrgRole = "Seller"
	rq.DistributionChain.Link.ParticipatingOrg.OrgID = s.AgencyID
	rq.PayloadAttributes.VersionNumber = ndcVersion
	rq.POS.Country.Xmlns = ndcCommonNS
	rq.POS.Country.CountryCode = s.CountryCode
	rq.Request.Core.Xmlns = ndcCommonNS

	ref := OfferOrOrderRef(params, s.OwnerCode)
	if ref.Order != nil {
		rq.Request.Core.OrderRequest = ref.Order
	} else {
		owner := valueOr(params.OwnerCode, "Owner Code")
		offer := &offerRequest{}
		offer.Offer.OfferID = valueOr(ref.Offer.OfferID, "Offer Id")
		offer.Offer.OwnerCode = owner
		offer.Offer.OfferItem.OwnerCode = owner
		offer.Offer.OfferItem.PaxSegmentRefID = valueOr(params.PaxSegmentRefID, "Pax Segment Ref ID")
		rq.Request.Core.OfferRequest = offer
	}
	if pax := PassengerRefs(params); len(pax) > 0 {
		rq.Request.PassengerList = &passengerList{Passengers: pax}
	}

	body, err := xml.Marshal(env)
	if err != nil {
		return nil, fmt.Errorf("navitaire: marshal request: %w", err)
	}
	return append([]byte(xml.Header), body...), nil
}

func valueOr(v, label string) string {
	if v != "" {
		return v
	}
	return fmt.Sprintf(missingValue, label)
}
