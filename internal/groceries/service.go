package groceries

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

// ServiceParams groups dependencies for the grocery comparison service.
type ServiceParams struct {
	Repo    *Repository
	Source  providers.Source
	Metrics *metrics.APIMetrics
}

// Service exposes grocery comparison operations.
type Service interface {
	Compare(ctx context.Context, req CompareRequest) (models.GroceryComparison, error)
	History(ctx context.Context, userID *string, limit int) ([]models.GroceryComparison, error)
	Get(ctx context.Context, id uuid.UUID) (models.GroceryComparison, error)
}

type service struct {
	repo    *Repository
	source  providers.Source
	metrics *metrics.APIMetrics
}

// NewService builds a grocery service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "grocery repo is required")
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

// Compare fetches quotes for the product, ranks them and persists the result.
func (s *service) Compare(ctx context.Context, req CompareRequest) (models.GroceryComparison, error) {
	offers, err := s.source.GroceryOffers(ctx, providers.GroceryQuery{ProductName: req.ProductName})
	if err != nil {
		return models.GroceryComparison{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "fetch grocery quotes")
	}

	quotes := make([]compare.Quote, 0, len(offers))
	for _, offer := range offers {
		quotes = append(quotes, compare.FromGroceryOffer(offer))
	}
	result, err := compare.Rank(quotes)
	if err != nil {
		return models.GroceryComparison{}, wrapRankError(err)
	}

	comparison := models.GroceryComparison{
		ID:                uuid.New(),
		UserID:            req.UserID,
		ProductName:       req.ProductName,
		Brand:             req.Brand,
		Category:          req.Category,
		SearchQuery:       req.SearchQuery,
		Providers:         offers,
		BestPriceProvider: result.BestPriceProvider,
		BestTimeProvider:  result.BestTimeProvider,
	}
	if err := s.repo.Create(ctx, &comparison); err != nil {
		return models.GroceryComparison{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store grocery comparison")
	}

	s.metrics.IncComparison("grocery")
	return comparison, nil
}

// History returns recent comparisons, newest first.
func (s *service) History(ctx context.Context, userID *string, limit int) ([]models.GroceryComparison, error) {
	comparisons, err := s.repo.List(ctx, userID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list grocery comparisons")
	}
	return comparisons, nil
}

// Get loads one comparison by ID.
func (s *service) Get(ctx context.Context, id uuid.UUID) (models.GroceryComparison, error) {
	if id == uuid.Nil {
		return models.GroceryComparison{}, pkgerrors.New(pkgerrors.CodeValidation, "comparison id is required")
	}
	comparison, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.GroceryComparison{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "comparison not found")
		}
		return models.GroceryComparison{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load grocery comparison")
	}
	return comparison, nil
}

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
