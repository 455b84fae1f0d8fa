package compare

import (
	"github.com/shopspring/decimal"

	"github.com/siddharthverma1208/Compare/pkg/enums"
	"github.com/siddharthverma1208/Compare/pkg/types"
)

// Quote is one provider's normalized offer, tagged by vertical. Exactly one
// of Ride or Grocery is set, matching Domain; Rank rejects anything else.
type Quote struct {
	Provider string
	Domain   enums.ComparisonType
	Ride     *RideQuote
	Grocery  *GroceryQuote
}

// RideQuote carries the cost inputs for a ride offer. Discounts apply after
// the surge multiplication, never before.
type RideQuote struct {
	BaseFare        decimal.Decimal
	SurgeMultiplier decimal.Decimal
	CouponDiscount  decimal.Decimal
	WalletBalance   decimal.Decimal
	ETA             types.ETARange
}

// GroceryQuote carries the cost inputs for a grocery offer. Any discount is
// assumed to be already reflected in UnitPrice upstream.
type GroceryQuote struct {
	UnitPrice   decimal.Decimal
	DeliveryFee decimal.Decimal
	DeliveryETA types.ETARange
	InStock     bool
}

// FromRideOffer projects the display offer down to its ranking inputs.
func FromRideOffer(offer types.RideOffer) Quote {
	return Quote{
		Provider: offer.Provider,
		Domain:   enums.ComparisonTypeRide,
		Ride: &RideQuote{
			BaseFare:        offer.EstimatedFare,
			SurgeMultiplier: offer.SurgeMultiplier,
			CouponDiscount:  offer.CouponDiscount,
			WalletBalance:   offer.WalletBalance,
			ETA:             offer.ETA,
		},
	}
}

// FromGroceryOffer projects the display offer down to its ranking inputs.
func FromGroceryOffer(offer types.GroceryOffer) Quote {
	return Quote{
		Provider: offer.Provider,
		Domain:   enums.ComparisonTypeGrocery,
		Grocery: &GroceryQuote{
			UnitPrice:   offer.Price,
			DeliveryFee: offer.DeliveryFee,
			DeliveryETA: offer.DeliveryETA,
			InStock:     offer.InStock,
		},
	}
}
