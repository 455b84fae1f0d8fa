package alerts

import (
	"github.com/shopspring/decimal"

	"github.com/siddharthverma1208/Compare/pkg/enums"
)

// CreateRequest is the payload for a new price alert. ProductName applies to
// grocery alerts, Route to ride alerts.
type CreateRequest struct {
	UserID         string               `json:"user_id" validate:"required"`
	ComparisonType enums.ComparisonType `json:"comparison_type" validate:"required"`
	ProductName    *string              `json:"product_name,omitempty"`
	Route          *string              `json:"route,omitempty"`
	TargetPrice    decimal.Decimal      `json:"target_price"`
}
