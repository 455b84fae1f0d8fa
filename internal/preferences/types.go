package preferences

import (
	"github.com/siddharthverma1208/Compare/pkg/types"
)

// UpsertRequest is the payload for creating or replacing a user's
// comparison defaults. Omitted maps reset to empty rather than keeping the
// previous values.
type UpsertRequest struct {
	PreferredProviders   types.StringListMap `json:"preferred_providers"`
	BudgetLimits         types.FloatMap      `json:"budget_limits"`
	NotificationSettings types.BoolMap       `json:"notification_settings"`
	LocationPreferences  types.StringMap     `json:"location_preferences"`
}
