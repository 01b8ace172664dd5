package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/coursehub/pricing-api/internal/core/domain"
	"github.com/coursehub/pricing-api/internal/core/ports"
)

const pricesCollection = "prices"

// PriceRepository implements ports.PriceRepository using MongoDB.
type PriceRepository struct {
	coll *mongo.Collection
}

func NewPriceRepository(db *mongo.Database) *PriceRepository {
	return &PriceRepository{coll: db.Collection(pricesCollection)}
}

type mongoPrice struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	CourseName  string             `bson:"course_name"`
	CoursePrice float64            `bson:"course_price"`
	CourseType  string             `bson:"course_type,omitempty"`
	Image       string             `bson:"image"`
	CourseTime  string             `bson:"course_time,omitempty"`
	Description string             `bson:"description,omitempty"`
	CreatedAt   time.Time          `bson:"created_at"`
	UpdatedAt   time.Time          `bson:"updated_at"`
}

func (r *PriceRepository) Create(ctx context.Context, p *domain.Price) (*domain.Price, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	doc := mongoPrice{
		CourseName:  p.CourseName,
		CoursePrice: p.CoursePrice,
		CourseType:  p.CourseType,
		Image:       p.Image,
		CourseTime:  p.CourseTime,
		Description: p.Description,
		CreatedAt:   p.CreatedAt,
		UpdatedAt:   p.UpdatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert price: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *PriceRepository) List(ctx context.Context) ([]*domain.Price, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	defer cur.Close(ctx)

	prices := make([]*domain.Price, 0)
	for cur.Next(ctx) {
		var mp mongoPrice
		if err := cur.Decode(&mp); err != nil {
			return nil, fmt.Errorf("decode price: %w", err)
		}
		prices = append(prices, mp.toDomain())
	}
	if err := cur.Err(); err != nil {
		return nil, fmt.Errorf("list prices: %w", err)
	}
	return prices, nil
}

func (r *PriceRepository) FindByID(ctx context.Context, id string) (*domain.Price, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPriceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPrice
	if err := r.coll.FindOne(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPriceNotFound
		}
		return nil, fmt.Errorf("find price: %w", err)
	}
	return mp.toDomain(), nil
}

// UpdateByID applies a partial update and returns the updated document.
func (r *PriceRepository) UpdateByID(ctx context.Context, id string, update ports.PriceUpdate) (*domain.Price, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPriceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	set := bson.M{"updated_at": time.Now().UTC()}
	if update.CourseName != nil {
		set["course_name"] = *update.CourseName
	}
	if update.CoursePrice != nil {
		set["course_price"] = *update.CoursePrice
	}
	if update.CourseType != nil {
		set["course_type"] = *update.CourseType
	}
	if update.Image != nil {
		set["image"] = *update.Image
	}
	if update.CourseTime != nil {
		set["course_time"] = *update.CourseTime
	}
	if update.Description != nil {
		set["description"] = *update.Description
	}

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)
	var mp mongoPrice
	err = r.coll.FindOneAndUpdate(ctx, bson.M{"_id": oid}, bson.M{"$set": set}, opts).Decode(&mp)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPriceNotFound
		}
		return nil, fmt.Errorf("update price: %w", err)
	}
	return mp.toDomain(), nil
}

// DeleteByID removes the document and returns it.
func (r *PriceRepository) DeleteByID(ctx context.Context, id string) (*domain.Price, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrPriceNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var mp mongoPrice
	if err := r.coll.FindOneAndDelete(ctx, bson.M{"_id": oid}).Decode(&mp); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrPriceNotFound
		}
		return nil, fmt.Errorf("delete price: %w", err)
	}
	return mp.toDomain(), nil
}

func (mp *mongoPrice) toDomain() *domain.Price {
	return &domain.Price{
		ID:          mp.ID.Hex(),
		CourseName:  mp.CourseName,
		CoursePrice: mp.CoursePrice,
		CourseType:  mp.CourseType,
		Image:       mp.Image,
		CourseTime:  mp.CourseTime,
		Description: mp.Description,
		CreatedAt:   mp.CreatedAt,
		UpdatedAt:   mp.UpdatedAt,
	}
}
