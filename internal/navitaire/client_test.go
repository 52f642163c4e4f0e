package navitaire

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/iliyamo/ndc-seat-availability/internal/model"
)

var testSettings = Settings{OwnerCode: "TR", CountryCode: "SG", AgencyID: "AGENCY-1"}

func TestBuildRequestOffer(t *testing.T) {
	body, err := BuildRequest(model.NDCParams{
		OfferID:         "OF-1",
		ResponsesID:     "R-1",
		OwnerCode:       "TR",
		PaxSegmentRefID: "SEG1",
		PaxReferences:   &model.PaxReferences{Adult: []string{"P1"}},
	}, testSettings)
	require.NoError(t, err)

	s := string(body)
	assert.Contains(t, s, "<IATA_SeatAvailabilityRQ")
	assert.Contains(t, s, "<VersionNumber>21.3</VersionNumber>")
	assert.Contains(t, s, "<CountryCode>SG</CountryCode>")
	assert.Contains(t, s, "<OrgID>AGENCY-1</OrgID>")
	assert.Contains(t, s, "<OfferID>OF-1</OfferID>")
	assert.Contains(t, s, "<PaxSegmentRefID>SEG1</PaxSegmentRefID>")
	assert.Contains(t, s, `<Passenger PassengerID="P1"><PTC>ADT</PTC></Passenger>`)
	assert.NotContains(t, s, "OrderRequest")
}

func TestBuildRequestOrder(t *testing.T) {
	body, err := BuildRequest(model.NDCParams{
		OrderID:       "ORD-1",
		PaxReferences: &model.PaxReferences{Adult: []string{"P1"}},
	}, testSettings)
	require.NoError(t, err)

	s := string(body)
	assert.Contains(t, s, `<Order OrderID="ORD-1" Owner="TR"></Order>`)
	assert.NotContains(t, s, "OfferRequest")
	assert.NotContains(t, s, "PassengerList")
}

func TestBuildRequestFillsMissingValues(t *testing.T) {
	body, err := BuildRequest(model.NDCParams{}, testSettings)
	require.NoError(t, err)
	assert.Contains(t, string(body), "<OfferID>No Offer Id</OfferID>")
	assert.Contains(t, string(body), "<OwnerCode>No Owner Code</OwnerCode>")
}

func TestClientSeatAvailability(t *testing.T) {
	fixture, err := os.ReadFile("../seatmap/testdata/seat_availability_rs.xml")
	require.NoError(t, err)

	var gotAction, gotBody string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotAction = r.Header.Get("SOAPAction")
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		w.Header().Set("Content-Type", "text/xml")
		w.Write(fixture)
	}))
	defer srv.Close()

	c := NewClient(srv.URL, "SeatAvailability", time.Second, testSettings)
	doc, err := c.SeatAvailability(context.Background(), model.NDCParams{OfferID: "OFFER-1"})
	require.NoError(t, err)

	assert.Equal(t, "SeatAvailability", gotAction)
	assert.True(t, strings.Contains(gotBody, "OFFER-1"))
	assert.Equal(t, "IATA_SeatAvailabilityRS", doc.Name)
	assert.True(t, doc.Has("Response"))
}

func TestClientUpstreamStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "boom", http.StatusBadGateway)
	}))
	defer srv.Close()

	_, err := NewClient(srv.URL, "", time.Second, testSettings).
		SeatAvailability(context.Background(), model.NDCParams{})
	require.ErrorIs(t, err, ErrUpstreamStatus)
}

func TestClientEmptyBodyIsEmptyDocument(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	defer srv.Close()

	doc, err := NewClient(srv.URL, "", time.Second, testSettings).
		SeatAvailability(context.Background(), model.NDCParams{})
	require.NoError(t, err)
	assert.True(t, doc.IsEmpty())
}
