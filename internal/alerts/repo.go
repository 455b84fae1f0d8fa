package alerts

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/siddharthverma1208/Compare/pkg/db/models"
)

const listCap = 100

// Repository encapsulates price alert persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an alerts repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a price alert.
func (r *Repository) Create(ctx context.Context, alert *models.PriceAlert) error {
	return r.db.WithContext(ctx).Create(alert).Error
}

// ListByUser returns a user's alerts, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string, activeOnly bool) ([]models.PriceAlert, error) {
	query := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(listCap)
	if activeOnly {
		query = query.Where("is_active = ?", true)
	}

	var alerts []models.PriceAlert
	if err := query.Find(&alerts).Error; err != nil {
		return nil, err
	}
	return alerts, nil
}

// Delete removes an alert and reports whether a row existed.
func (r *Repository) Delete(ctx context.Context, id uuid.UUID) (bool, error) {
	result := r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&models.PriceAlert{})
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
