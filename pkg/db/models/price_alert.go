package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/siddharthverma1208/Compare/pkg/enums"
)

// PriceAlert tracks a target price a user wants to be notified about.
// ProductName is set for grocery alerts, Route (pickup-drop) for ride alerts.
type PriceAlert struct {
	ID             uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         string               `gorm:"column:user_id;type:text;not null;index:price_alerts_user_id_idx" json:"user_id"`
	ComparisonType enums.ComparisonType `gorm:"column:comparison_type;type:text;not null" json:"comparison_type"`
	ProductName    *string              `gorm:"column:product_name;type:text" json:"product_name,omitempty"`
	Route          *string              `gorm:"column:route;type:text" json:"route,omitempty"`
	TargetPrice    decimal.Decimal      `gorm:"column:target_price;type:numeric;not null" json:"target_price"`
	CurrentPrice   decimal.Decimal      `gorm:"column:current_price;type:numeric;not null" json:"current_price"`
	// No gorm default tag here: gorm omits zero-valued fields that carry one,
	// which would store IsActive=false as the column default (true).
	IsActive       bool                 `gorm:"column:is_active;not null" json:"is_active"`
	CreatedAt      time.Time            `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	LastCheckedAt  time.Time            `gorm:"column:last_checked_at;autoCreateTime" json:"last_checked"`
}
