package advisor

import (
	"context"

	"github.com/google/uuid"

	"github.com/siddharthverma1208/Compare/internal/groceries"
	"github.com/siddharthverma1208/Compare/internal/preferences"
	"github.com/siddharthverma1208/Compare/internal/rides"
	"github.com/siddharthverma1208/Compare/pkg/db/models"
	"github.com/siddharthverma1208/Compare/pkg/enums"
	pkgerrors "github.com/siddharthverma1208/Compare/pkg/errors"
	"github.com/siddharthverma1208/Compare/pkg/metrics"
)

const defaultHistorySample = 10

// ServiceParams groups dependencies for the advisor service.
type ServiceParams struct {
	Repo        *Repository
	Chat        ChatClient
	Rides       rides.Service
	Groceries   groceries.Service
	Preferences preferences.Service
	Metrics     *metrics.APIMetrics

	// HistorySample caps how many past comparisons feed the
	// recommendations prompt.
	HistorySample int
}

// Service generates and stores model-written narratives over comparisons.
type Service interface {
	AnalyzeRide(ctx context.Context, comparisonID uuid.UUID, req RideAnalysisRequest) (AnalysisDTO, error)
	AnalyzeGrocery(ctx context.Context, comparisonID uuid.UUID, req GroceryAnalysisRequest) (AnalysisDTO, error)
	Recommendations(ctx context.Context, req RecommendationsRequest) (AnalysisDTO, error)
}

type service struct {
	repo          *Repository
	chat          ChatClient
	rides         rides.Service
	groceries     groceries.Service
	preferences   preferences.Service
	metrics       *metrics.APIMetrics
	historySample int
}

// NewService builds an advisor service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "advisor repo is required")
	}
	if params.Chat == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "chat client is required")
	}
	if params.Rides == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "ride service is required")
	}
	if params.Groceries == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "grocery service is required")
	}
	if params.Preferences == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "preferences service is required")
	}
	sample := params.HistorySample
	if sample <= 0 {
		sample = defaultHistorySample
	}
	return &service{
		repo:          params.Repo,
		chat:          params.Chat,
		rides:         params.Rides,
		groceries:     params.Groceries,
		preferences:   params.Preferences,
		metrics:       params.Metrics,
		historySample: sample,
	}, nil
}

// AnalyzeRide narrates a stored ride comparison.
func (s *service) AnalyzeRide(ctx context.Context, comparisonID uuid.UUID, req RideAnalysisRequest) (AnalysisDTO, error) {
	comparison, err := s.rides.Get(ctx, comparisonID)
	if err != nil {
		return AnalysisDTO{}, err
	}

	prompt, err := buildRidePrompt(comparison, req.UserPreferences)
	if err != nil {
		return AnalysisDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build ride prompt")
	}

	return s.complete(ctx, completion{
		kind:           KindRideAnalysis,
		comparisonType: enums.ComparisonTypeRide,
		comparisonID:   &comparison.ID,
		userID:         comparison.UserID,
		systemMessage:  rideSystemMessage,
		prompt:         prompt,
	})
}

// AnalyzeGrocery narrates a stored grocery comparison.
func (s *service) AnalyzeGrocery(ctx context.Context, comparisonID uuid.UUID, req GroceryAnalysisRequest) (AnalysisDTO, error) {
	comparison, err := s.groceries.Get(ctx, comparisonID)
	if err != nil {
		return AnalysisDTO{}, err
	}

	prompt, err := buildGroceryPrompt(comparison, req.ShoppingContext)
	if err != nil {
		return AnalysisDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build grocery prompt")
	}

	return s.complete(ctx, completion{
		kind:           KindGroceryAnalysis,
		comparisonType: enums.ComparisonTypeGrocery,
		comparisonID:   &comparison.ID,
		userID:         comparison.UserID,
		systemMessage:  grocerySystemMessage,
		prompt:         prompt,
	})
}

// Recommendations narrates patterns across the user's recent comparisons.
func (s *service) Recommendations(ctx context.Context, req RecommendationsRequest) (AnalysisDTO, error) {
	if !req.ComparisonType.Rankable() {
		return AnalysisDTO{}, pkgerrors.New(pkgerrors.CodeValidation, "comparison type not supported").
			WithDetails(map[string]any{"comparison_type": req.ComparisonType})
	}

	var history any
	var count int
	switch req.ComparisonType {
	case enums.ComparisonTypeRide:
		comparisons, err := s.rides.History(ctx, &req.UserID, s.historySample)
		if err != nil {
			return AnalysisDTO{}, err
		}
		history, count = comparisons, len(comparisons)
	case enums.ComparisonTypeGrocery:
		comparisons, err := s.groceries.History(ctx, &req.UserID, s.historySample)
		if err != nil {
			return AnalysisDTO{}, err
		}
		history, count = comparisons, len(comparisons)
	}
	if count == 0 {
		return AnalysisDTO{}, pkgerrors.New(pkgerrors.CodeNotFound, "no comparison history for user")
	}

	var prefs any
	if stored, err := s.preferences.Get(ctx, req.UserID); err == nil {
		prefs = stored
	} else if pkgerrors.As(err).Code() != pkgerrors.CodeNotFound {
		return AnalysisDTO{}, err
	}

	prompt, err := buildRecommendationsPrompt(req.ComparisonType, history, prefs)
	if err != nil {
		return AnalysisDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "build recommendations prompt")
	}

	dto, err := s.complete(ctx, completion{
		kind:           KindRecommendations,
		comparisonType: req.ComparisonType,
		userID:         &req.UserID,
		systemMessage:  recommendationsSystemMessage,
		prompt:         prompt,
	})
	if err != nil {
		return AnalysisDTO{}, err
	}
	dto.BasedOnCount = count
	return dto, nil
}

type completion struct {
	kind           string
	comparisonType enums.ComparisonType
	comparisonID   *uuid.UUID
	userID         *string
	systemMessage  string
	prompt         string
}

func (s *service) complete(ctx context.Context, c completion) (AnalysisDTO, error) {
	text, err := s.chat.Complete(ctx, c.systemMessage, c.prompt)
	if err != nil {
		s.metrics.IncAdvisor(c.kind, "error")
		return AnalysisDTO{}, err
	}

	record := models.AdvisorAnalysis{
		ID:             uuid.New(),
		ComparisonID:   c.comparisonID,
		UserID:         c.userID,
		ComparisonType: c.comparisonType,
		Kind:           c.kind,
		Analysis:       text,
	}
	if err := s.repo.Create(ctx, &record); err != nil {
		s.metrics.IncAdvisor(c.kind, "error")
		return AnalysisDTO{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store analysis")
	}

	s.metrics.IncAdvisor(c.kind, "ok")
	return AnalysisDTO{
		AnalysisID:   record.ID,
		ComparisonID: record.ComparisonID,
		UserID:       record.UserID,
		Kind:         record.Kind,
		Analysis:     record.Analysis,
		Timestamp:    record.CreatedAt,
	}, nil
}
