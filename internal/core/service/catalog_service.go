package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/atmavision/booking-system/internal/core/domain"
	"github.com/atmavision/booking-system/internal/core/ports"
)

type CatalogService struct {
	store ports.CatalogStore
	log   zerolog.Logger
}

func NewCatalogService(store ports.CatalogStore, log zerolog.Logger) *CatalogService {
	return &CatalogService{store: store, log: log}
}

var _ ports.CatalogService = (*CatalogService)(nil)

func (s *CatalogService) List(ctx context.Context) ([]domain.Service, error) {
	return s.store.Services(ctx)
}

func (s *CatalogService) Categories(ctx context.Context) ([]string, error) {
	return s.store.Categories(ctx)
}

func (s *CatalogService) Add(ctx context.Context, input ports.AddServiceInput) (*domain.Service, error) {
	svc := domain.Service{
		ID:          domain.NewID("srv"),
		Title:       input.Title,
		Description: input.Description,
		Price:       input.Price,
		Category:    input.Category,
		Details:     input.Details,
	}
	if err := s.store.AddService(ctx, svc); err != nil {
		return nil, err
	}
	s.log.Info().Str("service_id", svc.ID).Str("category", svc.Category).Msg("catalog service added")
	return &svc, nil
}
