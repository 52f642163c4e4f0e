package navitaire

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/iliyamo/ndc-seat-availability/internal/model"
)

func TestPassengerRefs(t *testing.T) {
	tests := []struct {
		name   string
		params model.NDCParams
		want   []Passenger
	}{
		{
			name: "order requests carry no passengers",
			params: model.NDCParams{
				OrderID:       "ORD-1",
				PaxReferences: &model.PaxReferences{Adult: []string{"P1"}},
			},
			want: nil,
		},
		{
			name:   "no references",
			params: model.NDCParams{OfferID: "OF-1"},
			want:   nil,
		},
		{
			name: "adults then children then infants",
			params: model.NDCParams{
				OfferID: "OF-1",
				PaxReferences: &model.PaxReferences{
					Adult:  []string{"P1", "", "P2"},
					Child:  []string{"P3"},
					Infant: []string{"P1.1"},
				},
			},
			want: []Passenger{
				{PassengerID: "P1", PTC: PaxTypeAdult, InfantRef: "P1.1"},
				{PassengerID: "P2", PTC: PaxTypeAdult},
				{PassengerID: "P3", PTC: PaxTypeChild},
				{PassengerID: "P1.1", PTC: PaxTypeInfant},
			},
		},
		{
			name: "last matching infant wins",
			params: model.NDCParams{
				PaxReferences: &model.PaxReferences{
					Adult:  []string{"P1"},
					Infant: []string{"P1.1", "P1.2"},
				},
			},
			want: []Passenger{
				{PassengerID: "P1", PTC: PaxTypeAdult, InfantRef: "P1.2"},
				{PassengerID: "P1.1", PTC: PaxTypeInfant},
				{PassengerID: "P1.2", PTC: PaxTypeInfant},
			},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PassengerRefs(tt.params)
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("PassengerRefs mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestOfferOrOrderRef(t *testing.T) {
	order := OfferOrOrderRef(model.NDCParams{OrderID: "ORD-1", OfferID: "OF-1"}, "TR")
	assert.Nil(t, order.Offer)
	assert.Equal(t, &OrderRef{OrderID: "ORD-1", Owner: "TR"}, order.Order)

	offer := OfferOrOrderRef(model.NDCParams{OrderID: "  ", OfferID: "OF-1", ResponsesID: "R-1"}, "TR")
	assert.Nil(t, offer.Order)
	assert.Equal(t, &OfferRef{Owner: "TR", ResponseID: "R-1", OfferID: "OF-1"}, offer.Offer)
}
