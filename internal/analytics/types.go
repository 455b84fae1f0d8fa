package analytics

import "github.com/shopspring/decimal"

// PopularRoute is one aggregated ride route, ordered by comparison volume.
type PopularRoute struct {
	PickupLocation     string  `json:"pickup_location"`
	DropLocation       string  `json:"drop_location"`
	ComparisonCount    int64   `json:"comparison_count"`
	AvgDistanceKM      float64 `json:"avg_distance_km"`
	MostChosenProvider string  `json:"most_chosen_provider"`
}

// PopularProduct is one aggregated grocery product. AvgSavings is the mean
// spread between the first listed quote and the cheapest quote across the
// product's comparisons.
type PopularProduct struct {
	ProductName        string          `json:"product_name"`
	ComparisonCount    int64           `json:"comparison_count"`
	AvgSavings         decimal.Decimal `json:"avg_savings"`
	MostChosenProvider string          `json:"most_chosen_provider"`
}
