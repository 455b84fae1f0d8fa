package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/siddharthverma1208/Compare/pkg/enums"
)

// SavingsRecord captures what a user paid versus the baseline they avoided.
// SavingsAmount is signed: choosing worse than the baseline is recorded as a
// genuine loss, never clamped.
type SavingsRecord struct {
	ID             uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID         string               `gorm:"column:user_id;type:text;not null;index:savings_records_user_id_idx" json:"user_id"`
	ComparisonType enums.ComparisonType `gorm:"column:comparison_type;type:text;not null" json:"comparison_type"`
	ComparisonID   uuid.UUID            `gorm:"column:comparison_id;type:uuid;not null" json:"comparison_id"`
	OriginalPrice  decimal.Decimal      `gorm:"column:original_price;type:numeric;not null" json:"original_price"`
	ChosenPrice    decimal.Decimal      `gorm:"column:chosen_price;type:numeric;not null" json:"chosen_price"`
	SavingsAmount  decimal.Decimal      `gorm:"column:savings_amount;type:numeric;not null" json:"savings_amount"`
	ProviderChosen string               `gorm:"column:provider_chosen;type:text;not null" json:"provider_chosen"`
	CreatedAt      time.Time            `gorm:"column:created_at;autoCreateTime" json:"timestamp"`
}
