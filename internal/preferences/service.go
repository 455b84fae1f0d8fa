package preferences

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/siddharthverma1208/Compare/pkg/db/models"
	pkgerrors "github.com/siddharthverma1208/Compare/pkg/errors"
	"github.com/siddharthverma1208/Compare/pkg/types"
)

// ServiceParams groups dependencies for the preferences service.
type ServiceParams struct {
	Repo *Repository
}

// Service exposes user preference operations.
type Service interface {
	Upsert(ctx context.Context, userID string, req UpsertRequest) (models.UserPreference, error)
	Get(ctx context.Context, userID string) (models.UserPreference, error)
}

type service struct {
	repo *Repository
}

// NewService builds a preferences service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "preferences repo is required")
	}
	return &service{repo: params.Repo}, nil
}

// Upsert creates or replaces the user's preferences as a whole document.
func (s *service) Upsert(ctx context.Context, userID string, req UpsertRequest) (models.UserPreference, error) {
	if userID == "" {
		return models.UserPreference{}, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}

	pref := models.UserPreference{
		ID:                   uuid.New(),
		UserID:               userID,
		PreferredProviders:   emptyIfNil(req.PreferredProviders),
		BudgetLimits:         emptyFloatIfNil(req.BudgetLimits),
		NotificationSettings: emptyBoolIfNil(req.NotificationSettings),
		LocationPreferences:  emptyStringIfNil(req.LocationPreferences),
	}
	if err := s.repo.Upsert(ctx, &pref); err != nil {
		return models.UserPreference{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "store preferences")
	}

	// Re-read so the caller sees the surviving row, not the candidate insert.
	stored, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		return models.UserPreference{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load preferences")
	}
	return stored, nil
}

// Get loads the user's preferences.
func (s *service) Get(ctx context.Context, userID string) (models.UserPreference, error) {
	if userID == "" {
		return models.UserPreference{}, pkgerrors.New(pkgerrors.CodeValidation, "user id is required")
	}
	pref, err := s.repo.FindByUser(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.UserPreference{}, pkgerrors.Wrap(pkgerrors.CodeNotFound, err, "preferences not found")
		}
		return models.UserPreference{}, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "load preferences")
	}
	return pref, nil
}

func emptyIfNil(m types.StringListMap) types.StringListMap {
	if m == nil {
		return types.StringListMap{}
	}
	return m
}

func emptyFloatIfNil(m types.FloatMap) types.FloatMap {
	if m == nil {
		return types.FloatMap{}
	}
	return m
}

func emptyBoolIfNil(m types.BoolMap) types.BoolMap {
	if m == nil {
		return types.BoolMap{}
	}
	return m
}

func emptyStringIfNil(m types.StringMap) types.StringMap {
	if m == nil {
		return types.StringMap{}
	}
	return m
}
