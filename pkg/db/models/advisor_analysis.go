package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/siddharthverma1208/Compare/pkg/enums"
)

// AdvisorAnalysis stores the raw narrative produced by the language model for
// a comparison. The text is opaque to the service; nothing downstream parses
// it beyond display.
type AdvisorAnalysis struct {
	ID             uuid.UUID            `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	ComparisonID   *uuid.UUID           `gorm:"column:comparison_id;type:uuid;index:advisor_analyses_comparison_idx" json:"comparison_id,omitempty"`
	UserID         *string              `gorm:"column:user_id;type:text" json:"user_id,omitempty"`
	ComparisonType enums.ComparisonType `gorm:"column:comparison_type;type:text;not null" json:"comparison_type"`
	Kind           string               `gorm:"column:kind;type:text;not null" json:"kind"`
	Analysis       string               `gorm:"column:analysis;type:text;not null" json:"analysis"`
	CreatedAt      time.Time            `gorm:"column:created_at;autoCreateTime" json:"timestamp"`
}
