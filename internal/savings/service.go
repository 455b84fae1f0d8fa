package savings

import (
	"context"

	"github.com/google/uuid"

	"github.com/siddharthverma1208/Compare/internal/compare"
	"github.com/siddharthverma1208/Compare/pkg/db/models"
	"github.com/siddharthverma1208/Compare/pkg/enums"
	pkgerrors "github.com/siddharthverma1208/Compare/pkg/errors"
	"github.com/siddharthverma1208/Compare/pkg/metrics"
)

// ServiceParams groups dependencies for the savings service.
type ServiceParams struct {
	Repo    *Repository
	Metrics *metrics.APIMetrics
}

// Service exposes savings tracking operations.
type Service interface {
	Record(ctx context.Context, req RecordRequest) (models.SavingsRecord, error)
	History(ctx context.Context, userID string, limit int) ([]models.SavingsRecord, error)
	Summary(ctx context.Context, userID string) (SummaryDTO, error)
}

type service struct {
	repo    *Repository
	metrics *metrics.APIMetrics
}

// NewService builds a savings service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "savings repo is required")
	}
	return &service{repo: params.Repo, metrics: params.Metrics}, nil
}

// Record computes the signed savings amount and persists the transaction.
func (s *service) Record(ctx context.Context, req RecordRequest) (models.SavingsRecord, error) {
	if !req.ComparisonType.Rankable() {
		return models.SavingsRecord{}, pkgerrors.New(pkgerrors.CodeValidation, "comparison type not supported").
			WithDetails(map[string]any{"comparison_type": req.ComparisonType})
	}
	comparisonID, err := uuid.Parse(req.ComparisonID)
	if err != nil {
		return models.SavingsRecord{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "comparison id is not a uuid")
	}

	record := models.SavingsRecord{
		ID:             uuid.New(),
		UserID:         req.UserID,
		ComparisonType: req.ComparisonType,
		ComparisonID:   comparisonID,
		OriginalPrice:  req.OriginalPrice,
		ChosenPrice:    req.ChosenPrice,
		SavingsAmount:  compare.SavingsAmount(req.OriginalPrice, req.ChosenPrice),
		ProviderChosen: req.ProviderChosen,
	}
	if err := s.repo.Create(ctx, &record); err != nil {
		return models.SavingsRecord{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store savings record")
	}

	s.metrics.IncSavings()
	return record, nil
}

// History returns the user's savings records, newest first.
func (s *service) History(ctx context.Context, userID string, limit int) ([]models.SavingsRecord, error) {
	records, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "list savings records")
	}
	return records, nil
}

// Summary aggregates the user's full history. A user with no records gets an
// all-zero summary rather than an error.
func (s *service) Summary(ctx context.Context, userID string) (SummaryDTO, error) {
	records, err := s.repo.AllByUser(ctx, userID)
	if err != nil {
		return SummaryDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load savings records")
	}

	entries := make([]compare.SavingsEntry, 0, len(records))
	for _, record := range records {
		entries = append(entries, compare.SavingsEntry{
			Domain: record.ComparisonType,
			Amount: record.SavingsAmount,
		})
	}
	summary := compare.Summarize(entries)

	return SummaryDTO{
		TotalSavings:      summary.TotalSavings,
		TotalTransactions: summary.TotalTransactions,
		AvgSavings:        summary.AvgSavings,
		RideSavings:       summary.ByDomain[enums.ComparisonTypeRide],
		GrocerySavings:    summary.ByDomain[enums.ComparisonTypeGrocery],
	}, nil
}
