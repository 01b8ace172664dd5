package handler

import (
	"github.com/coursehub/pricing-api/internal/core/domain"
	"github.com/coursehub/pricing-api/internal/core/ports"
)

func toCreateInput(req createPriceRequest) ports.CreatePriceInput {
	return ports.CreatePriceInput{
		CourseName:  req.CourseName,
		CoursePrice: req.CoursePrice,
		CourseType:  req.CourseType,
		Image:       req.Image,
		CourseTime:  req.CourseTime,
		Description: req.Description,
	}
}

func toUpdate(req updatePriceRequest) ports.PriceUpdate {
	return ports.PriceUpdate{
		CourseName:  req.CourseName,
		CoursePrice: req.CoursePrice,
		CourseType:  req.CourseType,
		Image:       req.Image,
		CourseTime:  req.CourseTime,
		Description: req.Description,
	}
}

func toPriceResponse(p *domain.Price) priceResponse {
	return priceResponse{
		ID:          p.ID,
		CourseName:  p.CourseName,
		CoursePrice: p.CoursePrice,
		CourseType:  p.CourseType,
		Image:       p.Image,
		CourseTime:  p.CourseTime,
		Description: p.Description,
		CreatedAt:   p.CreatedAt.UTC(),
		UpdatedAt:   p.UpdatedAt.UTC(),
	}
}

func toPriceListResponse(prices []*domain.Price) []priceResponse {
	out := make([]priceResponse, len(prices))
	for i, p := range prices {
		out[i] = toPriceResponse(p)
	}
	return out
}
