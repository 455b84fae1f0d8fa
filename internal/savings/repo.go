package savings

import (
	"context"

	"gorm.io/gorm"

	"github.com/siddharthverma1208/Compare/pkg/db/models"
	"github.com/siddharthverma1208/Compare/pkg/pagination"
)

// Repository encapsulates savings record persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a savings repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a savings record.
func (r *Repository) Create(ctx context.Context, record *models.SavingsRecord) error {
	return r.db.WithContext(ctx).Create(record).Error
}

// ListByUser returns a user's savings history, newest first.
func (r *Repository) ListByUser(ctx context.Context, userID string, limit int) ([]models.SavingsRecord, error) {
	var records []models.SavingsRecord
	err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Limit(pagination.NormalizeLimitWithDefault(limit, 50)).
		Find(&records).
		Error
	if err != nil {
		return nil, err
	}
	return records, nil
}

// AllByUser returns every record for a user, for summary aggregation.
func (r *Repository) AllByUser(ctx context.Context, userID string) ([]models.SavingsRecord, error) {
	var records []models.SavingsRecord
	err := r.db.WithContext(ctx).
		Select("comparison_type", "savings_amount").
		Where("user_id = ?", userID).
		Find(&records).
		Error
	if err != nil {
		return nil, err
	}
	return records, nil
}
