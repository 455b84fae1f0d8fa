package preferences

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/siddharthverma1208/Compare/pkg/db/models"
)

// Repository encapsulates user preference persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a preferences repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Upsert inserts or replaces the single row for the user.
func (r *Repository) Upsert(ctx context.Context, pref *models.UserPreference) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{{Name: "user_id"}},
			DoUpdates: clause.AssignmentColumns([]string{
				"preferred_providers",
				"budget_limits",
				"notification_settings",
				"location_preferences",
				"updated_at",
			}),
		}).
		Create(pref).
		Error
}

// FindByUser loads the preference row for a user.
func (r *Repository) FindByUser(ctx context.Context, userID string) (models.UserPreference, error) {
	var pref models.UserPreference
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		First(&pref).
		Error
	return pref, err
}
