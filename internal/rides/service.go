package rides

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/siddharthverma1208/Compare/internal/compare"
	"github.com/siddharthverma1208/Compare/internal/providers"
	"github.com/siddharthverma1208/Compare/pkg/db/models"
	pkgerrors "github.com/siddharthverma1208/Compare/pkg/errors"
	"github.com/siddharthverma1208/Compare/pkg/metrics"
)

// ServiceParams groups dependencies for the ride comparison service.
type ServiceParams struct {
	Repo    *Repository
	Source  providers.Source
	Metrics *metrics.APIMetrics
}

// Service exposes ride comparison operations.
type Service interface {
	Compare(ctx context.Context, req CompareRequest) (models.RideComparison, error)
	History(ctx context.Context, userID *string, limit int) ([]models.RideComparison, error)
	Get(ctx context.Context, id uuid.UUID) (models.RideComparison, error)
}

type service struct {
	repo    *Repository
	source  providers.Source
	metrics *metrics.APIMetrics
}

// NewService builds a ride service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ride repo is required")
	}
	if params.Source == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "quote source is required")
	}
	return &service{
		repo:    params.Repo,
		source:  params.Source,
		metrics: params.Metrics,
	}, nil
}

// Compare fetches quotes for the route, ranks them and persists the result.
func (s *service) Compare(ctx context.Context, req CompareRequest) (models.RideComparison, error) {
	offers, err := s.source.RideOffers(ctx, providers.RideQuery{
		PickupLocation: req.PickupLocation,
		DropLocation:   req.DropLocation,
		DistanceKM:     req.DistanceKM,
	})
	if err != nil {
		return models.RideComparison{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch ride quotes")
	}

	quotes := make([]compare.Quote, 0, len(offers))
	for _, offer := range offers {
		quotes = append(quotes, compare.FromRideOffer(offer))
	}
	result, err := compare.Rank(quotes)
	if err != nil {
		return models.RideComparison{}, wrapRankError(err)
	}

	comparison := models.RideComparison{
		ID:                uuid.New(),
		UserID:            req.UserID,
		PickupLocation:    req.PickupLocation,
		DropLocation:      req.DropLocation,
		DistanceKM:        req.DistanceKM,
		EstimatedDuration: req.EstimatedDuration,
		Providers:         offers,
		BestPriceProvider: result.BestPriceProvider,
		BestTimeProvider:  result.BestTimeProvider,
	}
	if err := s.repo.Create(ctx, &comparison); err != nil {
		return models.RideComparison{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store ride comparison")
	}

	s.metrics.IncComparison("ride")
	return comparison, nil
}

// History returns recent comparisons, newest first.
func (s *service) History(ctx context.Context, userID *string, limit int) ([]models.RideComparison, error) {
	comparisons, err := s.repo.List(ctx, userID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list ride comparisons")
	}
	return comparisons, nil
}

// Get loads one comparison by ID.
func (s *service) Get(ctx context.Context, id uuid.UUID) (models.RideComparison, error) {
	if id == uuid.Nil {
		return models.RideComparison{}, pkgerrors.New(pkgerrors.CodeValidation, "comparison id is required")
	}
	comparison, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.RideComparison{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "comparison not found")
		}
		return models.RideComparison{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load ride comparison")
	}
	return comparison, nil
}

// wrapRankError translates ranking failures. Quotes come from the upstream
// source, not the caller, so a malformed quote is a dependency fault with the
// offending provider surfaced in the details.
func wrapRankError(err error) error {
	var malformed *compare.MalformedQuoteError
	if errors.As(err, &malformed) {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "rank quotes").
			WithDetails(map[string]any{"provider": malformed.Provider})
	}
	if errors.Is(err, compare.ErrInvalidInput) {
		return pkgerrors.Wrap(pkgerrors.CodeDependency, err, "quote set not comparable")
	}
	return pkgerrors.Wrap(pkgerrors.CodeInternal, err, "rank quotes")
}
