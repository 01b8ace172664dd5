package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createPriceRequest struct {
	CourseName  string  `json:"courseName"  validate:"required"`
	CoursePrice float64 `json:"coursePrice" validate:"required,gt=0"`
	CourseType  string  `json:"courseType"`
	Image       string  `json:"image"       validate:"required"`
	CourseTime  string  `json:"courseTime"`
	Description string  `json:"description"`
}

// updatePriceRequest carries a partial update. Only fields present in the
// payload are applied; absent fields are left untouched.
type updatePriceRequest struct {
	CourseName  *string  `json:"courseName"`
	CoursePrice *float64 `json:"coursePrice" validate:"omitempty,gt=0"`
	CourseType  *string  `json:"courseType"`
	Image       *string  `json:"image"`
	CourseTime  *string  `json:"courseTime"`
	Description *string  `json:"description"`
}

// priceResponse is the transport view of a price record, intentionally
// separate from the domain type so the JSON contract is not coupled to
// internal changes.
type priceResponse struct {
	ID          string    `json:"id"`
	CourseName  string    `json:"courseName"`
	CoursePrice float64   `json:"coursePrice"`
	CourseType  string    `json:"courseType,omitempty"`
	Image       string    `json:"image"`
	CourseTime  string    `json:"courseTime,omitempty"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
