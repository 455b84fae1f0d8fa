package providers

import (
	"context"

	"github.com/siddharthverma1208/Compare/pkg/types"
)

// RideQuery describes the trip the caller wants quotes for.
type RideQuery struct {
	PickupLocation string
	DropLocation   string
	DistanceKM     float64
}

// GroceryQuery describes the product the caller wants quotes for.
type GroceryQuery struct {
	ProductName string
	Quantity    string
}

// Catalog lists the providers the platform currently aggregates, plus the
// verticals on the roadmap.
type Catalog struct {
	RideProviders    []string            `json:"ride_providers"`
	GroceryProviders []string            `json:"grocery_providers"`
	ComingSoon       map[string][]string `json:"coming_soon"`
}

// Source fetches per-provider quotes. The mock implementation serves fixed
// catalogs; a real aggregator would fan out to provider APIs behind the same
// interface.
type Source interface {
	RideOffers(ctx context.Context, query RideQuery) ([]types.RideOffer, error)
	GroceryOffers(ctx context.Context, query GroceryQuery) ([]types.GroceryOffer, error)
	Catalog(ctx context.Context) (Catalog, error)
}
