package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// RideOffer is one provider's quote for a ride comparison, exactly as shown
// to the user and persisted with the comparison record. Costs stay signed
// decimals so effective cost can be recomputed from the stored document.
type RideOffer struct {
	Provider        string          `json:"provider"`
	VehicleType     string          `json:"vehicle_type"`
	EstimatedFare   decimal.Decimal `json:"estimated_fare"`
	SurgeMultiplier decimal.Decimal `json:"surge_multiplier"`
	CouponDiscount  decimal.Decimal `json:"coupon_discount"`
	WalletBalance   decimal.Decimal `json:"wallet_balance"`
	EstimatedTime   string          `json:"estimated_time"`
	ETA             ETARange        `json:"eta"`
	Features        []string        `json:"features,omitempty"`
}

// RideOffers stores the full quote list as a jsonb column.
type RideOffers []RideOffer

// Value implements driver.Valuer by marshaling to JSON.
func (r RideOffers) Value() (driver.Value, error) {
	if r == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(r)
	if err != nil {
		return nil, fmt.Errorf("ride offers: marshal: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner for the jsonb column.
func (r *RideOffers) Scan(value interface{}) error {
	if value == nil {
		*r = nil
		return nil
	}
	raw, ok := toBytes(value)
	if !ok {
		return fmt.Errorf("ride offers: unsupported scan type %T", value)
	}
	return json.Unmarshal(raw, r)
}

func toBytes(value interface{}) ([]byte, bool) {
	switch v := value.(type) {
	case []byte:
		return v, true
	case string:
		return []byte(v), true
	default:
		return nil, false
	}
}
