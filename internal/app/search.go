package app

import (
	"sort"
	"strings"
	"time"

	"ceylon_stays/internal/domain"
)

const dateLayout = "2006-01-02"

// SearchHotels returns the hotels whose location contains params.Location,
// case-insensitively. An empty location matches everything. Catalog order is
// preserved; zero matches is a valid empty result, not an error.
func SearchHotels(catalog []domain.Hotel, params domain.SearchParams) []domain.Hotel {
	needle := strings.ToLower(strings.TrimSpace(params.Location))
	out := make([]domain.Hotel, 0, len(catalog))
	for _, h := range catalog {
		if needle == "" || strings.Contains(strings.ToLower(h.Location), needle) {
			out = append(out, h)
		}
	}
	return out
}

// FilterHotels keeps hotels with PriceMin <= price <= PriceMax and
// rating >= MinRating. PriceMax of 0 means no upper bound. The filter is
// pure and idempotent: re-applying it to its own output changes nothing.
func FilterHotels(hotels []domain.Hotel, f domain.FilterParams) []domain.Hotel {
	out := make([]domain.Hotel, 0, len(hotels))
	for _, h := range hotels {
		if h.Price < f.PriceMin {
			continue
		}
		if f.PriceMax > 0 && h.Price > f.PriceMax {
			continue
		}
		if h.Rating < f.MinRating {
			continue
		}
		out = append(out, h)
	}
	return out
}

// SortHotels orders hotels by the given key. An empty or unknown key leaves
// the slice in catalog order. Sorting is stable so ties keep their relative
// order.
func SortHotels(hotels []domain.Hotel, key string) []domain.Hotel {
	out := make([]domain.Hotel, len(hotels))
	copy(out, hotels)
	switch key {
	case "price-low":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case "price-high":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	case "rating":
		sort.SliceStable(out, func(i, j int) bool { return out[i].Rating > out[j].Rating })
	}
	return out
}

// ValidateSearchParams checks the parts of a search submission that have a
// well-formedness requirement: dates must parse when present, check-out must
// not precede check-in, and guests must be at least one when given.
func ValidateSearchParams(p domain.SearchParams) error {
	var in, out time.Time
	var err error
	if p.CheckIn != "" {
		if in, err = time.Parse(dateLayout, p.CheckIn); err != nil {
			return domain.ErrValidation
		}
	}
	if p.CheckOut != "" {
		if out, err = time.Parse(dateLayout, p.CheckOut); err != nil {
			return domain.ErrValidation
		}
	}
	if p.CheckIn != "" && p.CheckOut != "" && out.Before(in) {
		return domain.ErrValidation
	}
	if p.Guests < 0 {
		return domain.ErrValidation
	}
	return nil
}
