package rides

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/siddharthverma1208/Compare/pkg/db/models"
	"github.com/siddharthverma1208/Compare/pkg/pagination"
)

// Repository encapsulates ride comparison persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs a ride repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts a completed comparison.
func (r *Repository) Create(ctx context.Context, comparison *models.RideComparison) error {
	return r.db.WithContext(ctx).Create(comparison).Error
}

// FindByID loads one comparison by its ID.
func (r *Repository) FindByID(ctx context.Context, id uuid.UUID) (models.RideComparison, error) {
	var comparison models.RideComparison
	err := r.db.WithContext(ctx).
		Where("id = ?", id).
		First(&comparison).
		Error
	return comparison, err
}

// List returns recent comparisons, newest first, optionally scoped to a user.
func (r *Repository) List(ctx context.Context, userID *string, limit int) ([]models.RideComparison, error) {
	query := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(pagination.NormalizeLimit(limit))
	if userID != nil {
		query = query.Where("user_id = ?", *userID)
	}

	var comparisons []models.RideComparison
	if err := query.Find(&comparisons).Error; err != nil {
		return nil, err
	}
	return comparisons, nil
}
