package providers

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/siddharthverma1208/Compare/internal/compare"
	"github.com/siddharthverma1208/Compare/pkg/types"
)

// Mock serves a fixed quote catalog. Fares and delivery windows are static
// regardless of the queried route or product, which keeps the ranking and
// persistence paths fully exercisable without provider credentials.
type Mock struct{}

// NewMock returns the static quote source.
func NewMock() *Mock {
	return &Mock{}
}

// RideOffers returns the ride catalog with ETA strings normalized into
// minute ranges.
func (m *Mock) RideOffers(_ context.Context, _ RideQuery) ([]types.RideOffer, error) {
	offers := []types.RideOffer{
		{
			Provider:        "Uber",
			VehicleType:     "UberGo",
			EstimatedFare:   decimal.NewFromInt(120),
			EstimatedTime:   "8-12 mins",
			SurgeMultiplier: decimal.NewFromInt(1),
			CouponDiscount:  decimal.NewFromInt(20),
			WalletBalance:   decimal.Zero,
			Features:        []string{"AC Car", "GPS Tracking", "24/7 Support"},
		},
		{
			Provider:        "Ola",
			VehicleType:     "Mini",
			EstimatedFare:   decimal.NewFromInt(110),
			EstimatedTime:   "10-15 mins",
			SurgeMultiplier: decimal.NewFromFloat(1.2),
			CouponDiscount:  decimal.Zero,
			WalletBalance:   decimal.NewFromInt(50),
			Features:        []string{"AC Car", "Safety Features", "Easy Cancellation"},
		},
		{
			Provider:        "Rapido",
			VehicleType:     "Bike",
			EstimatedFare:   decimal.NewFromInt(35),
			EstimatedTime:   "12-18 mins",
			SurgeMultiplier: decimal.NewFromInt(1),
			CouponDiscount:  decimal.Zero,
			WalletBalance:   decimal.Zero,
			Features:        []string{"Fastest Route", "Helmet Provided", "Eco-Friendly"},
		},
		{
			Provider:        "Namma Yatri",
			VehicleType:     "Auto",
			EstimatedFare:   decimal.NewFromInt(65),
			EstimatedTime:   "15-20 mins",
			SurgeMultiplier: decimal.NewFromInt(1),
			CouponDiscount:  decimal.Zero,
			WalletBalance:   decimal.Zero,
			Features:        []string{"Fixed Fare", "No Commission", "Local Drivers"},
		},
	}

	for i := range offers {
		eta, err := compare.ParseETARange(offers[i].EstimatedTime)
		if err != nil {
			return nil, fmt.Errorf("ride catalog %s: %w", offers[i].Provider, err)
		}
		offers[i].ETA = eta
	}
	return offers, nil
}

// GroceryOffers returns the grocery catalog for the queried product name.
func (m *Mock) GroceryOffers(_ context.Context, query GroceryQuery) ([]types.GroceryOffer, error) {
	offers := []types.GroceryOffer{
		{
			Provider:     "Blinkit",
			ProductName:  query.ProductName,
			Brand:        "India Gate",
			Size:         "5 kg",
			Price:        decimal.NewFromInt(520),
			MRP:          decimal.NewFromInt(550),
			PricePerUnit: decimal.NewFromInt(104),
			Unit:         "kg",
			DeliveryFee:  decimal.Zero,
			DeliveryTime: "10-15 mins",
			Discount:     decimal.NewFromInt(30),
			Rating:       4.4,
			ReviewCount:  2100,
			InStock:      true,
			Offers:       []string{"First Order 10% Off", "Free Delivery"},
		},
		{
			Provider:     "Instamart",
			ProductName:  query.ProductName,
			Brand:        "India Gate",
			Size:         "5 kg",
			Price:        decimal.NewFromInt(540),
			MRP:          decimal.NewFromInt(580),
			PricePerUnit: decimal.NewFromInt(108),
			Unit:         "kg",
			DeliveryFee:  decimal.NewFromInt(25),
			DeliveryTime: "15-25 mins",
			Discount:     decimal.NewFromInt(40),
			Rating:       4.3,
			ReviewCount:  750,
			InStock:      true,
			Offers:       []string{"Weekend Special", "Bulk Order Discount"},
		},
		{
			Provider:     "Zepto",
			ProductName:  query.ProductName,
			Brand:        "India Gate",
			Size:         "5 kg",
			Price:        decimal.NewFromInt(535),
			MRP:          decimal.NewFromInt(550),
			PricePerUnit: decimal.NewFromInt(107),
			Unit:         "kg",
			DeliveryFee:  decimal.Zero,
			DeliveryTime: "8-12 mins",
			Discount:     decimal.NewFromInt(15),
			Rating:       4.5,
			ReviewCount:  890,
			InStock:      true,
			Offers:       []string{"Free Delivery", "Express Delivery"},
		},
		{
			Provider:     "BigBasket",
			ProductName:  query.ProductName,
			Brand:        "India Gate",
			Size:         "5 kg",
			Price:        decimal.NewFromInt(510),
			MRP:          decimal.NewFromInt(600),
			PricePerUnit: decimal.NewFromInt(102),
			Unit:         "kg",
			DeliveryFee:  decimal.NewFromInt(40),
			DeliveryTime: "2-4 hours",
			Discount:     decimal.NewFromInt(90),
			Rating:       4.2,
			ReviewCount:  1580,
			InStock:      true,
			Offers:       []string{"Buy 2 Get 5% Off", "Free Delivery above ₹200"},
		},
	}

	for i := range offers {
		eta, err := compare.ParseETARange(offers[i].DeliveryTime)
		if err != nil {
			return nil, fmt.Errorf("grocery catalog %s: %w", offers[i].Provider, err)
		}
		offers[i].DeliveryETA = eta
	}
	return offers, nil
}

// Catalog lists the supported providers and upcoming verticals.
func (m *Mock) Catalog(_ context.Context) (Catalog, error) {
	return Catalog{
		RideProviders:    []string{"Uber", "Ola", "Rapido", "Namma Yatri"},
		GroceryProviders: []string{"Blinkit", "Instamart", "Zepto", "BigBasket"},
		ComingSoon: map[string][]string{
			"pharmacy": {"1mg", "Netmeds", "Apollo"},
			"food":     {"Swiggy", "Zomato", "Uber Eats"},
		},
	}, nil
}
