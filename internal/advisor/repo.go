package advisor

import (
	"context"

	"gorm.io/gorm"

	"github.com/siddharthverma1208/Compare/pkg/db/models"
)

// Repository encapsulates advisor analysis persistence.
type Repository struct {
	db *gorm.DB
}

// NewRepository constructs an advisor repository bound to the provided gorm DB.
func NewRepository(db *gorm.DB) *Repository {
	return &Repository{db: db}
}

// Create inserts an analysis record.
func (r *Repository) Create(ctx context.Context, analysis *models.AdvisorAnalysis) error {
	return r.db.WithContext(ctx).Create(analysis).Error
}
