package ports

import (
	"context"

	"github.com/coursehub/pricing-api/internal/core/domain"
)

// PriceUpdate carries the fields of a partial update. Nil fields are left
// untouched by the store.
type PriceUpdate struct {
	CourseName  *string
	CoursePrice *float64
	CourseType  *string
	Image       *string
	CourseTime  *string
	Description *string
}

// PriceRepository defines persistence operations for price records.
// Update and Delete return the affected document; a missing or unparseable
// id always yields domain.ErrPriceNotFound.
type PriceRepository interface {
	Create(ctx context.Context, p *domain.Price) (*domain.Price, error)
	List(ctx context.Context) ([]*domain.Price, error)
	FindByID(ctx context.Context, id string) (*domain.Price, error)
	UpdateByID(ctx context.Context, id string, update PriceUpdate) (*domain.Price, error)
	DeleteByID(ctx context.Context, id string) (*domain.Price, error)
}
