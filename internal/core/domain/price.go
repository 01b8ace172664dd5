package domain

import (
	"errors"
	"time"
)

var ErrPriceNotFound = errors.New("price not found")

// Price is the core aggregate: one priced course offering.
// CourseName, CoursePrice and Image are mandatory; the rest are optional
// descriptive fields.
type Price struct {
	ID          string    `json:"id" bson:"_id,omitempty"`
	CourseName  string    `json:"courseName" bson:"course_name"`
	CoursePrice float64   `json:"coursePrice" bson:"course_price"`
	CourseType  string    `json:"courseType,omitempty" bson:"course_type,omitempty"`
	Image       string    `json:"image" bson:"image"`
	CourseTime  string    `json:"courseTime,omitempty" bson:"course_time,omitempty"`
	Description string    `json:"description,omitempty" bson:"description,omitempty"`
	CreatedAt   time.Time `json:"created_at" bson:"created_at"`
	UpdatedAt   time.Time `json:"updated_at" bson:"updated_at"`
}
