package client

import (
	"context"
	"errors"
	"sync"

	"ceylon_stays/internal/app"
	"ceylon_stays/internal/domain"
)

// ErrSuperseded reports that a newer search replaced this one while it was
// in flight. Callers drop the result instead of rendering it.
var ErrSuperseded = errors.New("search superseded")

// SearchSlot serializes search intent: starting a new search cancels the
// previous in-flight one, and a stale result that loses the race is never
// surfaced. One slot per view.
type SearchSlot struct {
	mu     sync.Mutex
	gen    uint64
	cancel context.CancelFunc
}

// Search runs c.SearchHotels under the slot's supersede discipline.
func (s *SearchSlot) Search(ctx context.Context, c *Client, p domain.SearchParams) ([]domain.Hotel, error) {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	ctx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	s.gen++
	gen := s.gen
	s.mu.Unlock()

	hotels, err := c.SearchHotels(ctx, p)

	s.mu.Lock()
	current := gen == s.gen
	if current {
		s.cancel = nil
		cancel()
	}
	s.mu.Unlock()

	if !current {
		return nil, ErrSuperseded
	}
	return hotels, err
}

// SearchFiltered runs Search and then applies the listing view's refine
// stage locally: price/rating filter first, then the optional sort key.
// Refining is free of network calls, so repeated refinement of one search
// never issues another request.
func (s *SearchSlot) SearchFiltered(ctx context.Context, c *Client, p domain.SearchParams, f domain.FilterParams) ([]domain.Hotel, error) {
	hotels, err := s.Search(ctx, c, p)
	if err != nil {
		return nil, err
	}
	return app.SortHotels(app.FilterHotels(hotels, f), f.Sort), nil
}
