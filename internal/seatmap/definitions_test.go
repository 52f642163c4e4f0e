package seatmap

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolveSeatDefinitions(t *testing.T) {
	doc := loadFixture(t, "seat_availability_rs.xml")
	defs := ResolveSeatDefinitions(doc, BuildServiceCatalog(doc))

	assert.Equal(t, []string{"Preferred", "Standard", "Extra Legroom"}, defs.Names("SEG1"),
		"names follow the seat availability definition order")
	assert.Equal(t, []string{"Standard", "Extra Legroom"}, defs.Names("SEG2"),
		"a name shared by two segments is recorded on both")
	assert.Empty(t, defs.Names("SEG9"))

	assert.Equal(t, []string{"A", "B", "C"}, defs.Columns("SEG1"))
	assert.Equal(t, []string{"A", "B"}, defs.Columns("SEG2"))
}

func TestResolveSeatDefinitionsDeduplicatesNames(t *testing.T) {
	doc := decodeString(t, `
<RS>
  <Response>
    <ALaCarteOffer>
      <OfferItem>
        <OfferItemID>I1</OfferItemID>
        <Service><ServiceDefinitionRefID>D1</ServiceDefinitionRefID></Service>
        <Eligibility><OfferFlightAssociations><PaxSegmentReferences><PaxSegmentRefID>S</PaxSegmentRefID></PaxSegmentReferences></OfferFlightAssociations></Eligibility>
      </OfferItem>
      <OfferItem>
        <OfferItemID>I2</OfferItemID>
        <Service><ServiceDefinitionRefID>D2</ServiceDefinitionRefID></Service>
        <Eligibility><OfferFlightAssociations><PaxSegmentReferences><PaxSegmentRefID>S</PaxSegmentRefID></PaxSegmentReferences></OfferFlightAssociations></Eligibility>
      </OfferItem>
    </ALaCarteOffer>
  </Response>
  <SeatAvailabilityRS>
    <DataLists><ServiceDefinitionList>
      <ServiceDefinition ServiceDefinitionID="D1"><Name>Standard</Name></ServiceDefinition>
      <ServiceDefinition ServiceDefinitionID="D2"><Name>Standard</Name></ServiceDefinition>
    </ServiceDefinitionList></DataLists>
    <SeatMap>
      <SegmentRef>S</SegmentRef>
      <Cabin><CabinLayout><Columns>A</Columns></CabinLayout></Cabin>
      <Cabin><CabinLayout><Columns>K</Columns></CabinLayout></Cabin>
    </SeatMap>
  </SeatAvailabilityRS>
</RS>`)

	defs := ResolveSeatDefinitions(doc, BuildServiceCatalog(doc))
	assert.Equal(t, []string{"Standard"}, defs.Names("S"))
	assert.Equal(t, []string{"A", "K"}, defs.Columns("S"), "columns accumulate across cabins")
}
