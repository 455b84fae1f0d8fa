package providers

import (
	"context"
	"testing"

	"github.com/siddharthverma1208/Compare/internal/compare"
)

func TestMockRideOffers(t *testing.T) {
	t.Parallel()

	offers, err := NewMock().RideOffers(context.Background(), RideQuery{
		PickupLocation: "Indiranagar",
		DropLocation:   "Koramangala",
		DistanceKM:     6.5,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 4 {
		t.Fatalf("got %d offers, want 4", len(offers))
	}
	for _, o := range offers {
		if o.ETA.IsZero() {
			t.Fatalf("%s: eta not parsed from %q", o.Provider, o.EstimatedTime)
		}
	}
	if offers[0].Provider != "Uber" || offers[0].ETA.LowerMins != 8 {
		t.Fatalf("unexpected first offer: %+v", offers[0])
	}
}

func TestMockGroceryOffers(t *testing.T) {
	t.Parallel()

	offers, err := NewMock().GroceryOffers(context.Background(), GroceryQuery{ProductName: "Basmati Rice"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(offers) != 4 {
		t.Fatalf("got %d offers, want 4", len(offers))
	}
	for _, o := range offers {
		if o.ProductName != "Basmati Rice" {
			t.Fatalf("%s: product name %q not propagated", o.Provider, o.ProductName)
		}
	}

	// Hour-denominated windows must come back in minutes.
	big := offers[3]
	if big.Provider != "BigBasket" || big.DeliveryETA.LowerMins != 120 || big.DeliveryETA.UpperMins != 240 {
		t.Fatalf("unexpected BigBasket eta: %+v", big.DeliveryETA)
	}
}

func TestMockCatalogIsRankable(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	src := NewMock()

	rideOffers, err := src.RideOffers(ctx, RideQuery{})
	if err != nil {
		t.Fatalf("ride offers: %v", err)
	}
	quotes := make([]compare.Quote, 0, len(rideOffers))
	for _, o := range rideOffers {
		quotes = append(quotes, compare.FromRideOffer(o))
	}
	result, err := compare.Rank(quotes)
	if err != nil {
		t.Fatalf("rank: %v", err)
	}
	if result.BestPriceProvider != "Rapido" || result.BestTimeProvider != "Uber" {
		t.Fatalf("unexpected ranking: %+v", result)
	}
}
