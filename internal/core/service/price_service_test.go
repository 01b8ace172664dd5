package service

import (
	"context"
	"errors"
	"testing"

	"github.com/rs/zerolog"

	"github.com/coursehub/pricing-api/internal/core/domain"
	"github.com/coursehub/pricing-api/internal/core/ports"
)

type stubPriceRepo struct {
	prices    map[string]*domain.Price
	nextID    int
	listCalls int
}

func newStubPriceRepo() *stubPriceRepo {
	return &stubPriceRepo{prices: make(map[string]*domain.Price), nextID: 1}
}

func (r *stubPriceRepo) Create(_ context.Context, p *domain.Price) (*domain.Price, error) {
	clone := *p
	clone.ID = itoa(r.nextID)
	r.nextID++
	r.prices[clone.ID] = &clone
	out := clone
	return &out, nil
}

func (r *stubPriceRepo) List(_ context.Context) ([]*domain.Price, error) {
	r.listCalls++
	out := make([]*domain.Price, 0, len(r.prices))
	for _, p := range r.prices {
		clone := *p
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubPriceRepo) FindByID(_ context.Context, id string) (*domain.Price, error) {
	p, ok := r.prices[id]
	if !ok {
		return nil, domain.ErrPriceNotFound
	}
	clone := *p
	return &clone, nil
}

func (r *stubPriceRepo) UpdateByID(_ context.Context, id string, update ports.PriceUpdate) (*domain.Price, error) {
	p, ok := r.prices[id]
	if !ok {
		return nil, domain.ErrPriceNotFound
	}
	if update.CourseName != nil {
		p.CourseName = *update.CourseName
	}
	if update.CoursePrice != nil {
		p.CoursePrice = *update.CoursePrice
	}
	if update.Image != nil {
		p.Image = *update.Image
	}
	clone := *p
	return &clone, nil
}

func (r *stubPriceRepo) DeleteByID(_ context.Context, id string) (*domain.Price, error) {
	p, ok := r.prices[id]
	if !ok {
		return nil, domain.ErrPriceNotFound
	}
	delete(r.prices, id)
	return p, nil
}

type stubCache struct {
	list        []*domain.Price
	invalidates int
	getErr      error
}

func (c *stubCache) GetList(_ context.Context) ([]*domain.Price, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.list, nil
}

func (c *stubCache) SetList(_ context.Context, prices []*domain.Price) error {
	c.list = prices
	return nil
}

func (c *stubCache) Invalidate(_ context.Context) error {
	c.list = nil
	c.invalidates++
	return nil
}

func itoa(n int) string {
	return string(rune('0' + n))
}

func newPriceService(repo ports.PriceRepository, cache PriceCache) *PriceService {
	return NewPriceService(repo, cache, zerolog.Nop())
}

func TestPriceService_CreateAndGet(t *testing.T) {
	repo := newStubPriceRepo()
	svc := newPriceService(repo, &stubCache{})

	created, err := svc.CreatePrice(context.Background(), ports.CreatePriceInput{
		CourseName:  "Go Basics",
		CoursePrice: 49.99,
		Image:       "x.png",
	})
	if err != nil {
		t.Fatalf("create: %v", err)
	}
	if created.ID == "" {
		t.Fatalf("expected generated id")
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected created_at to be set")
	}

	got, err := svc.GetPrice(context.Background(), created.ID)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.CourseName != "Go Basics" || got.CoursePrice != 49.99 {
		t.Fatalf("unexpected record: %+v", got)
	}
}

func TestPriceService_ListServesFromCache(t *testing.T) {
	repo := newStubPriceRepo()
	cache := &stubCache{}
	svc := newPriceService(repo, cache)

	_, _ = svc.CreatePrice(context.Background(), ports.CreatePriceInput{CourseName: "A", CoursePrice: 1, Image: "a.png"})

	if _, err := svc.ListPrices(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if _, err := svc.ListPrices(context.Background()); err != nil {
		t.Fatalf("list: %v", err)
	}
	if repo.listCalls != 1 {
		t.Fatalf("expected second list to hit cache, repo hit %d times", repo.listCalls)
	}
}

func TestPriceService_CacheFailureFallsBack(t *testing.T) {
	repo := newStubPriceRepo()
	cache := &stubCache{getErr: errors.New("redis down")}
	svc := newPriceService(repo, cache)

	_, _ = svc.CreatePrice(context.Background(), ports.CreatePriceInput{CourseName: "A", CoursePrice: 1, Image: "a.png"})

	prices, err := svc.ListPrices(context.Background())
	if err != nil {
		t.Fatalf("cache failure must not fail the read: %v", err)
	}
	if len(prices) != 1 {
		t.Fatalf("expected 1 price, got %d", len(prices))
	}
}

func TestPriceService_MutationsInvalidateCache(t *testing.T) {
	repo := newStubPriceRepo()
	cache := &stubCache{}
	svc := newPriceService(repo, cache)

	created, _ := svc.CreatePrice(context.Background(), ports.CreatePriceInput{CourseName: "A", CoursePrice: 1, Image: "a.png"})
	if cache.invalidates != 1 {
		t.Fatalf("expected create to invalidate cache")
	}

	name := "B"
	if _, err := svc.UpdatePrice(context.Background(), created.ID, ports.PriceUpdate{CourseName: &name}); err != nil {
		t.Fatalf("update: %v", err)
	}
	if cache.invalidates != 2 {
		t.Fatalf("expected update to invalidate cache")
	}

	if _, err := svc.DeletePrice(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if cache.invalidates != 3 {
		t.Fatalf("expected delete to invalidate cache")
	}
}

func TestPriceService_UpdateAppliesOnlyProvidedFields(t *testing.T) {
	repo := newStubPriceRepo()
	svc := newPriceService(repo, &stubCache{})

	created, _ := svc.CreatePrice(context.Background(), ports.CreatePriceInput{CourseName: "Go Basics", CoursePrice: 49.99, Image: "x.png"})

	price := 59.99
	updated, err := svc.UpdatePrice(context.Background(), created.ID, ports.PriceUpdate{CoursePrice: &price})
	if err != nil {
		t.Fatalf("update: %v", err)
	}
	if updated.CoursePrice != 59.99 {
		t.Fatalf("expected updated price, got %v", updated.CoursePrice)
	}
	if updated.CourseName != "Go Basics" || updated.Image != "x.png" {
		t.Fatalf("untouched fields must survive a partial update: %+v", updated)
	}
}

// Repeating a delete or update on a missing id always yields not-found.
func TestPriceService_NotFoundIsIdempotent(t *testing.T) {
	repo := newStubPriceRepo()
	svc := newPriceService(repo, &stubCache{})

	created, _ := svc.CreatePrice(context.Background(), ports.CreatePriceInput{CourseName: "A", CoursePrice: 1, Image: "a.png"})

	if _, err := svc.DeletePrice(context.Background(), created.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	if _, err := svc.GetPrice(context.Background(), created.ID); err != domain.ErrPriceNotFound {
		t.Fatalf("read-after-delete must yield not found, got %v", err)
	}
	if _, err := svc.DeletePrice(context.Background(), created.ID); err != domain.ErrPriceNotFound {
		t.Fatalf("repeated delete must yield not found, got %v", err)
	}
	name := "B"
	if _, err := svc.UpdatePrice(context.Background(), created.ID, ports.PriceUpdate{CourseName: &name}); err != domain.ErrPriceNotFound {
		t.Fatalf("update of deleted id must yield not found, got %v", err)
	}
}
