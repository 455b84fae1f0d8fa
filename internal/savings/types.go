package savings

import (
	"github.com/shopspring/decimal"

	"github.com/siddharthverma1208/Compare/pkg/enums"
)

// RecordRequest is the payload for recording a savings transaction.
type RecordRequest struct {
	UserID         string               `json:"user_id" validate:"required"`
	ComparisonType enums.ComparisonType `json:"comparison_type" validate:"required"`
	ComparisonID   string               `json:"comparison_id" validate:"required,uuid"`
	OriginalPrice  decimal.Decimal      `json:"original_price"`
	ChosenPrice    decimal.Decimal      `json:"chosen_price"`
	ProviderChosen string               `json:"provider_chosen" validate:"required"`
}

// SummaryDTO is the aggregated savings view for one user.
type SummaryDTO struct {
	TotalSavings      decimal.Decimal `json:"total_savings"`
	TotalTransactions int             `json:"total_transactions"`
	AvgSavings        decimal.Decimal `json:"avg_savings"`
	RideSavings       decimal.Decimal `json:"ride_savings"`
	GrocerySavings    decimal.Decimal `json:"grocery_savings"`
}
