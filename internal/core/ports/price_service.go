package ports

import (
	"context"

	"github.com/coursehub/pricing-api/internal/core/domain"
)

// CreatePriceInput carries all data needed to create a new price record.
type CreatePriceInput struct {
	CourseName  string
	CoursePrice float64
	CourseType  string
	Image       string
	CourseTime  string
	Description string
}

// PriceService defines use-case operations for price records.
type PriceService interface {
	CreatePrice(ctx context.Context, input CreatePriceInput) (*domain.Price, error)
	ListPrices(ctx context.Context) ([]*domain.Price, error)
	GetPrice(ctx context.Context, id string) (*domain.Price, error)
	UpdatePrice(ctx context.Context, id string, update PriceUpdate) (*domain.Price, error)
	DeletePrice(ctx context.Context, id string) (*domain.Price, error)
}
