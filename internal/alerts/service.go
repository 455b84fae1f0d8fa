package alerts

import (
	"context"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/siddharthverma1208/Compare/pkg/db/models"
	pkgerrors "github.com/siddharthverma1208/Compare/pkg/errors"
)

// ServiceParams groups dependencies for the alerts service.
type ServiceParams struct {
	Repo *Repository
}

// Service exposes price alert operations.
type Service interface {
	Create(ctx context.Context, req CreateRequest) (models.PriceAlert, error)
	ListByUser(ctx context.Context, userID string, activeOnly bool) ([]models.PriceAlert, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type service struct {
	repo *Repository
}

// NewService builds an alerts service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "alerts repo is required")
	}
	return &service{repo: params.Repo}, nil
}

// Create stores a new alert. The current price starts at zero until a
// tracking pass against live quotes fills it in.
func (s *service) Create(ctx context.Context, req CreateRequest) (models.PriceAlert, error) {
	if !req.ComparisonType.IsValid() {
		return models.PriceAlert{}, pkgerrors.New(pkgerrors.CodeValidation, "unknown comparison type").
			WithDetails(map[string]any{"comparison_type": req.ComparisonType})
	}
	if req.TargetPrice.IsNegative() || req.TargetPrice.IsZero() {
		return models.PriceAlert{}, pkgerrors.New(pkgerrors.CodeValidation, "target price must be positive")
	}

	alert := models.PriceAlert{
		ID:             uuid.New(),
		UserID:         req.UserID,
		ComparisonType: req.ComparisonType,
		ProductName:    req.ProductName,
		Route:          req.Route,
		TargetPrice:    req.TargetPrice,
		CurrentPrice:   decimal.Zero,
		IsActive:       true,
	}
	if err := s.repo.Create(ctx, &alert); err != nil {
		return models.PriceAlert{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store price alert")
	}
	return alert, nil
}

// ListByUser returns the user's alerts, active ones only by default.
func (s *service) ListByUser(ctx context.Context, userID string, activeOnly bool) ([]models.PriceAlert, error) {
	if userID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	alerts, err := s.repo.ListByUser(ctx, userID, activeOnly)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list price alerts")
	}
	return alerts, nil
}

// Delete removes an alert by ID.
func (s *service) Delete(ctx context.Context, id uuid.UUID) error {
	if id == uuid.Nil {
		return pkgerrors.New(pkgerrors.CodeValidation, "alert id is required")
	}
	deleted, err := s.repo.Delete(ctx, id)
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "delete price alert")
	}
	if !deleted {
		return pkgerrors.New(pkgerrors.CodeNotFound, "alert not found")
	}
	return nil
}
