package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/siddharthverma1208/Compare/pkg/types"
)

// RideComparison is one completed ride comparison. The full provider quote
// list is stored verbatim so effective costs can be recomputed from the
// record alone; only the winner names are derived columns.
type RideComparison struct {
	ID                uuid.UUID        `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID            *string          `gorm:"column:user_id;type:text;index:ride_comparisons_user_id_idx" json:"user_id,omitempty"`
	PickupLocation    string           `gorm:"column:pickup_location;type:text;not null" json:"pickup_location"`
	DropLocation      string           `gorm:"column:drop_location;type:text;not null" json:"drop_location"`
	DistanceKM        float64          `gorm:"column:distance_km;not null" json:"distance_km"`
	EstimatedDuration int              `gorm:"column:estimated_duration_mins;not null" json:"estimated_duration_mins"`
	Providers         types.RideOffers `gorm:"column:providers;type:jsonb;not null" json:"providers"`
	BestPriceProvider string           `gorm:"column:best_price_provider;type:text;not null" json:"best_price_provider"`
	BestTimeProvider  string           `gorm:"column:best_time_provider;type:text;not null" json:"best_time_provider"`
	CreatedAt         time.Time        `gorm:"column:created_at;autoCreateTime" json:"timestamp"`
}
