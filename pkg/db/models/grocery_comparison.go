package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/siddharthverma1208/Compare/pkg/types"
)

// GroceryComparison is one completed grocery comparison, quote list included.
type GroceryComparison struct {
	ID                uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID            *string             `gorm:"column:user_id;type:text;index:grocery_comparisons_user_id_idx" json:"user_id,omitempty"`
	ProductName       string              `gorm:"column:product_name;type:text;not null;index:grocery_comparisons_product_idx" json:"product_name"`
	Brand             *string             `gorm:"column:brand;type:text" json:"brand,omitempty"`
	Category          string              `gorm:"column:category;type:text;not null" json:"category"`
	SearchQuery       string              `gorm:"column:search_query;type:text;not null" json:"search_query"`
	Providers         types.GroceryOffers `gorm:"column:providers;type:jsonb;not null" json:"providers"`
	BestPriceProvider string              `gorm:"column:best_price_provider;type:text;not null" json:"best_price_provider"`
	BestTimeProvider  string              `gorm:"column:best_delivery_provider;type:text;not null" json:"best_delivery_provider"`
	CreatedAt         time.Time           `gorm:"column:created_at;autoCreateTime" json:"timestamp"`
}
