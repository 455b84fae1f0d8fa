package analytics

import (
	"context"

	pkgerrors "github.com/siddharthverma1208/Compare/pkg/errors"
	"github.com/siddharthverma1208/Compare/pkg/pagination"
)

const defaultLimit = 10

// ServiceParams groups dependencies for the analytics service.
type ServiceParams struct {
	Repo *Repository
}

// Service exposes aggregate views over comparison history.
type Service interface {
	PopularRoutes(ctx context.Context, limit int) ([]PopularRoute, error)
	PopularProducts(ctx context.Context, limit int) ([]PopularProduct, error)
}

type service struct {
	repo *Repository
}

// NewService builds an analytics service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "analytics repo is required")
	}
	return &service{repo: params.Repo}, nil
}

// PopularRoutes returns the most compared ride routes.
func (s *service) PopularRoutes(ctx context.Context, limit int) ([]PopularRoute, error) {
	routes, err := s.repo.PopularRoutes(ctx, pagination.NormalizeLimitWithDefault(limit, defaultLimit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "aggregate routes")
	}
	return routes, nil
}

// PopularProducts returns the most compared grocery products.
func (s *service) PopularProducts(ctx context.Context, limit int) ([]PopularProduct, error) {
	products, err := s.repo.PopularProducts(ctx, pagination.NormalizeLimitWithDefault(limit, defaultLimit))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "aggregate products")
	}
	return products, nil
}
