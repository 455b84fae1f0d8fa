package types

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"

	"github.com/shopspring/decimal"
)

// GroceryOffer is one provider's quote for a grocery comparison. Discounts
// are already reflected in Price upstream; the ranking layer never applies
// the Discount field a second time.
type GroceryOffer struct {
	Provider     string          `json:"provider"`
	ProductName  string          `json:"product_name"`
	Brand        string          `json:"brand,omitempty"`
	Size         string          `json:"size,omitempty"`
	Price        decimal.Decimal `json:"price"`
	MRP          decimal.Decimal `json:"mrp"`
	PricePerUnit decimal.Decimal `json:"price_per_unit"`
	Unit         string          `json:"unit,omitempty"`
	DeliveryFee  decimal.Decimal `json:"delivery_fee"`
	DeliveryTime string          `json:"delivery_time"`
	DeliveryETA  ETARange        `json:"delivery_eta"`
	Discount     decimal.Decimal `json:"discount"`
	Rating       float64         `json:"rating,omitempty"`
	ReviewCount  int             `json:"review_count,omitempty"`
	InStock      bool            `json:"in_stock"`
	Offers       []string        `json:"offers,omitempty"`
}

// GroceryOffers stores the full quote list as a jsonb column.
type GroceryOffers []GroceryOffer

// Value implements driver.Valuer by marshaling to JSON.
func (g GroceryOffers) Value() (driver.Value, error) {
	if g == nil {
		return "[]", nil
	}
	raw, err := json.Marshal(g)
	if err != nil {
		return nil, fmt.Errorf("grocery offers: marshal: %w", err)
	}
	return string(raw), nil
}

// Scan implements sql.Scanner for the jsonb column.
func (g *GroceryOffers) Scan(value interface{}) error {
	if value == nil {
		*g = nil
		return nil
	}
	raw, ok := toBytes(value)
	if !ok {
		return fmt.Errorf("grocery offers: unsupported scan type %T", value)
	}
	return json.Unmarshal(raw, g)
}
