package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/siddharthverma1208/Compare/pkg/types"
)

// UserPreference stores per-user comparison defaults, one row per user.
type UserPreference struct {
	ID                   uuid.UUID           `gorm:"column:id;type:uuid;default:gen_random_uuid();primaryKey" json:"id"`
	UserID               string              `gorm:"column:user_id;type:text;not null;uniqueIndex:user_preferences_user_id_key" json:"user_id"`
	PreferredProviders   types.StringListMap `gorm:"column:preferred_providers;type:jsonb" json:"preferred_providers"`
	BudgetLimits         types.FloatMap      `gorm:"column:budget_limits;type:jsonb" json:"budget_limits"`
	NotificationSettings types.BoolMap       `gorm:"column:notification_settings;type:jsonb" json:"notification_settings"`
	LocationPreferences  types.StringMap     `gorm:"column:location_preferences;type:jsonb" json:"location_preferences"`
	CreatedAt            time.Time           `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt            time.Time           `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}
