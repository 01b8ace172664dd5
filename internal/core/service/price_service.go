package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/coursehub/pricing-api/internal/core/domain"
	"github.com/coursehub/pricing-api/internal/core/ports"
)

// PriceCache abstracts the read-through cache for the price list (Redis).
// A (nil, nil) return from GetList means a cache miss.
type PriceCache interface {
	GetList(ctx context.Context) ([]*domain.Price, error)
	SetList(ctx context.Context, prices []*domain.Price) error
	Invalidate(ctx context.Context) error
}

type PriceService struct {
	repo   ports.PriceRepository
	cache  PriceCache
	logger zerolog.Logger
}

func NewPriceService(repo ports.PriceRepository, cache PriceCache, logger zerolog.Logger) *PriceService {
	return &PriceService{repo: repo, cache: cache, logger: logger}
}

func (s *PriceService) CreatePrice(ctx context.Context, input ports.CreatePriceInput) (*domain.Price, error) {
	now := time.Now().UTC()
	price := &domain.Price{
		CourseName:  input.CourseName,
		CoursePrice: input.CoursePrice,
		CourseType:  input.CourseType,
		Image:       input.Image,
		CourseTime:  input.CourseTime,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	created, err := s.repo.Create(ctx, price)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to create price")
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("price_id", created.ID).Str("course", created.CourseName).Msg("price created")
	return created, nil
}

// ListPrices returns all price records, serving from the cache when warm.
// Cache failures degrade to a store read, never to an error.
func (s *PriceService) ListPrices(ctx context.Context) ([]*domain.Price, error) {
	cached, err := s.cache.GetList(ctx)
	if err != nil {
		s.logger.Warn().Err(err).Msg("price cache read failed, falling back to store")
	} else if cached != nil {
		return cached, nil
	}

	prices, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}

	if err := s.cache.SetList(ctx, prices); err != nil {
		s.logger.Warn().Err(err).Msg("failed to warm price cache")
	}
	return prices, nil
}

func (s *PriceService) GetPrice(ctx context.Context, id string) (*domain.Price, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *PriceService) UpdatePrice(ctx context.Context, id string, update ports.PriceUpdate) (*domain.Price, error) {
	updated, err := s.repo.UpdateByID(ctx, id, update)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("price_id", id).Msg("price updated")
	return updated, nil
}

func (s *PriceService) DeletePrice(ctx context.Context, id string) (*domain.Price, error) {
	deleted, err := s.repo.DeleteByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.invalidate(ctx)
	s.logger.Info().Str("price_id", id).Msg("price deleted")
	return deleted, nil
}

// invalidate drops the cached list before the mutation result is returned,
// keeping read-after-write consistency.
func (s *PriceService) invalidate(ctx context.Context) {
	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("failed to invalidate price cache")
	}
}
