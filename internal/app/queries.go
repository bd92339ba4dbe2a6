package app

import (
	"context"
	"encoding/json"
	"time"

	"ceylon_stays/internal/domain"
)

// QueryService serves catalog reads through a cache. Cache errors degrade to
// repository reads; a failed Set never fails the request.
type QueryService struct {
	repo     domain.CatalogRepository
	cache    domain.Cache
	cacheTTL time.Duration
}

func NewQueryService(r domain.CatalogRepository, c domain.Cache, ttl time.Duration) *QueryService {
	return &QueryService{repo: r, cache: c, cacheTTL: ttl}
}

func (s *QueryService) GetHotel(ctx context.Context, id string) (domain.Hotel, error) {
	key := "hotel:" + id
	var h domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &h); ok {
		return h, nil
	}
	h, err := s.repo.GetHotel(ctx, id)
	if err != nil {
		return domain.Hotel{}, err
	}
	_ = s.cache.Set(ctx, key, h, int(s.cacheTTL.Seconds()))
	return h, nil
}

func (s *QueryService) ListHotels(ctx context.Context) ([]domain.Hotel, error) {
	key := "hotels:all"
	var hs []domain.Hotel
	if ok, _ := s.cache.Get(ctx, key, &hs); ok {
		return hs, nil
	}
	hs, err := s.repo.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, copyHotels(hs), int(s.cacheTTL.Seconds()))
	return hs, nil
}

// SearchHotels runs the location search over the (cached) catalog. The
// full catalog is cached, not each query: filtering is cheap and caching
// per-needle would fragment the cache.
func (s *QueryService) SearchHotels(ctx context.Context, p domain.SearchParams) ([]domain.Hotel, error) {
	if err := ValidateSearchParams(p); err != nil {
		return nil, err
	}
	all, err := s.ListHotels(ctx)
	if err != nil {
		return nil, err
	}
	return SearchHotels(all, p), nil
}

func (s *QueryService) GetRoom(ctx context.Context, id string) (domain.Room, error) {
	key := "room:" + id
	var r domain.Room
	if ok, _ := s.cache.Get(ctx, key, &r); ok {
		return r, nil
	}
	r, err := s.repo.GetRoom(ctx, id)
	if err != nil {
		return domain.Room{}, err
	}
	_ = s.cache.Set(ctx, key, r, int(s.cacheTTL.Seconds()))
	return r, nil
}

func (s *QueryService) ListRooms(ctx context.Context, hotelID string) ([]domain.Room, error) {
	key := "rooms:" + hotelID
	var rs []domain.Room
	if ok, _ := s.cache.Get(ctx, key, &rs); ok {
		return rs, nil
	}
	rs, err := s.repo.ListRooms(ctx, hotelID)
	if err != nil {
		return nil, err
	}
	_ = s.cache.Set(ctx, key, rs, int(s.cacheTTL.Seconds()))
	return rs, nil
}

func (s *QueryService) ListReviews(ctx context.Context, hotelID string) ([]domain.Review, error) {
	key := "reviews:" + hotelID
	var out []domain.Review
	if ok, _ := s.cache.Get(ctx, key, &out); ok {
		return out, nil
	}
	rs, err := s.repo.ListReviews(ctx, hotelID)
	if err != nil {
		return nil, err
	}

	// copy before caching so callers mutating the result can't poison the
	// cached value
	cp := make([]domain.Review, len(rs))
	copy(cp, rs)

	// size guard: skip caching pathological payloads
	if b, _ := json.Marshal(cp); len(b) < 1_000_000 {
		_ = s.cache.Set(ctx, key, cp, int(s.cacheTTL.Seconds()))
	}
	return rs, nil
}

func (s *QueryService) ListRecentReviews(ctx context.Context, limit int) ([]domain.Review, error) {
	return s.repo.ListRecentReviews(ctx, limit)
}

func copyHotels(in []domain.Hotel) []domain.Hotel {
	out := make([]domain.Hotel, len(in))
	copy(out, in)
	return out
}
