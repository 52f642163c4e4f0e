package seatmap

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/iliyamo/ndc-seat-availability/internal/ndc"
)

func loadFixture(t *testing.T, name string) *ndc.Node {
	t.Helper()
	f, err := os.Open(filepath.Join("testdata", name))
	require.NoError(t, err)
	defer f.Close()
	doc, err := ndc.Decode(f)
	require.NoError(t, err)
	return doc
}

func decodeString(t *testing.T, s string) *ndc.Node {
	t.Helper()
	doc, err := ndc.Decode(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

// twoClassDocument is one non code-share segment with a Standard class at
// price 0 and a Preferred class at price 1000, three sellable seats and an
// optional fourth seat whose offer item reference can be left out.
func twoClassDocument(t *testing.T, fourthSeatRef string) *ndc.Node {
	t.Helper()
	ref := ""
	if fourthSeatRef != "" {
		ref = "<OfferItemRefs>" + fourthSeatRef + "</OfferItemRefs>"
	}
	return decodeString(t, `
<IATA_SeatAvailabilityRS>
  <Response>
    <ALaCarteOffer OfferID="O1">
      <OfferItem>
        <OfferItemID>STD</OfferItemID>
        <Service><ServiceDefinitionRefID>D-STD</ServiceDefinitionRefID></Service>
        <UnitPrice><TotalAmount CurCode="SGD">0</TotalAmount></UnitPrice>
        <Eligibility>
          <PaxRefID>P1</PaxRefID>
          <OfferFlightAssociations><PaxSegmentReferences><PaxSegmentRefID>S1</PaxSegmentRefID></PaxSegmentReferences></OfferFlightAssociations>
        </Eligibility>
      </OfferItem>
      <OfferItem>
        <OfferItemID>PRF</OfferItemID>
        <Service><ServiceDefinitionRefID>D-PRF</ServiceDefinitionRefID></Service>
        <UnitPrice><TotalAmount CurCode="SGD">1000</TotalAmount></UnitPrice>
        <Eligibility>
          <PaxRefID>P1</PaxRefID>
          <OfferFlightAssociations><PaxSegmentReferences><PaxSegmentRefID>S1</PaxSegmentRefID></PaxSegmentReferences></OfferFlightAssociations>
        </Eligibility>
      </OfferItem>
    </ALaCarteOffer>
    <DataLists>
      <PaxSegmentList>
        <PaxSegment>
          <PaxSegmentID>S1</PaxSegmentID>
          <DatedMarketingSegment>
            <CarrierDesigCode>TR</CarrierDesigCode>
            <MarketingCarrierFlightNumberText>100</MarketingCarrierFlightNumberText>
            <Dep><IATA_LocationCode>SIN</IATA_LocationCode><AircraftScheduledDateTime>2026-12-01T10:00:00</AircraftScheduledDateTime></Dep>
            <Arrival><IATA_LocationCode>PEN</IATA_LocationCode><AircraftScheduledDateTime>2026-12-01T11:30:00</AircraftScheduledDateTime></Arrival>
          </DatedMarketingSegment>
        </PaxSegment>
      </PaxSegmentList>
      <ServiceDefinitionList>
        <ServiceDefinition><ServiceDefinitionID>D-STD</ServiceDefinitionID><Name>Standard</Name></ServiceDefinition>
        <ServiceDefinition><ServiceDefinitionID>D-PRF</ServiceDefinitionID><Name>Preferred</Name></ServiceDefinition>
      </ServiceDefinitionList>
    </DataLists>
  </Response>
  <SeatAvailabilityRS>
    <ShoppingResponseID><ResponseID>R1</ResponseID></ShoppingResponseID>
    <ALaCarteOffer OfferID="O1"/>
    <DataLists>
      <ServiceDefinitionList>
        <ServiceDefinition ServiceDefinitionID="D-STD"><Name>Standard</Name></ServiceDefinition>
        <ServiceDefinition ServiceDefinitionID="D-PRF"><Name>Preferred</Name></ServiceDefinition>
      </ServiceDefinitionList>
    </DataLists>
    <SeatMap>
      <SegmentRef>S1</SegmentRef>
      <Cabin>
        <CabinLayout><Columns>A</Columns><Columns>B</Columns><Columns>C</Columns></CabinLayout>
        <Row>
          <Number>5</Number>
          <Seat><Column>A</Column><OfferItemRefs>STD</OfferItemRefs><SeatStatus>A</SeatStatus></Seat>
          <Seat><Column>B</Column><OfferItemRefs>PRF</OfferItemRefs><SeatStatus>A</SeatStatus></Seat>
          <Seat><Column>C</Column><OfferItemRefs>STD</OfferItemRefs><SeatStatus>A</SeatStatus></Seat>
        </Row>
        <Row>
          <Number>6</Number>
          <Seat><Column>A</Column>` + ref + `<SeatStatus>A</SeatStatus></Seat>
        </Row>
      </Cabin>
    </SeatMap>
  </SeatAvailabilityRS>
</IATA_SeatAvailabilityRS>`)
}
