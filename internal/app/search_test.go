package app_test

import (
	"testing"

	"ceylon_stays/internal/app"
	"ceylon_stays/internal/domain"
)

func sampleCatalog() []domain.Hotel {
	return []domain.Hotel{
		{ID: "1", Name: "Cinnamon Grand Colombo", Location: "Colombo", Rating: 4.8, Price: 150},
		{ID: "2", Name: "Amaya Hills", Location: "Kandy", Rating: 4.6, Price: 120},
		{ID: "3", Name: "Jetwing Lighthouse", Location: "Galle", Rating: 4.7, Price: 180},
		{ID: "4", Name: "Heritance Tea Factory", Location: "Nuwara Eliya", Rating: 4.5, Price: 140},
	}
}

func TestSearchHotels_LocationSubstring(t *testing.T) {
	got := app.SearchHotels(sampleCatalog(), domain.SearchParams{Location: "Kandy"})
	if len(got) != 1 || got[0].Name != "Amaya Hills" {
		t.Fatalf("expected exactly Amaya Hills, got %+v", got)
	}
}

func TestSearchHotels_CaseInsensitive(t *testing.T) {
	got := app.SearchHotels(sampleCatalog(), domain.SearchParams{Location: "kAnDy"})
	if len(got) != 1 || got[0].ID != "2" {
		t.Fatalf("case-insensitive match failed: %+v", got)
	}
}

func TestSearchHotels_EmptyMatchesAll(t *testing.T) {
	got := app.SearchHotels(sampleCatalog(), domain.SearchParams{Location: ""})
	if len(got) != 4 {
		t.Fatalf("empty location should match all 4, got %d", len(got))
	}
	// catalog order preserved
	for i, id := range []string{"1", "2", "3", "4"} {
		if got[i].ID != id {
			t.Fatalf("order not preserved at %d: %s", i, got[i].ID)
		}
	}
}

func TestSearchHotels_NoMatchIsEmptyNotNilPanic(t *testing.T) {
	got := app.SearchHotels(sampleCatalog(), domain.SearchParams{Location: "Tokyo"})
	if len(got) != 0 {
		t.Fatalf("expected empty result, got %+v", got)
	}
}

func TestFilterHotels_PriceAndRating(t *testing.T) {
	f := domain.FilterParams{PriceMin: 130, PriceMax: 180, MinRating: 4.6}
	got := app.FilterHotels(sampleCatalog(), f)
	// 150/4.8 and 180/4.7 qualify; 120 below min; 140/4.5 below rating
	if len(got) != 2 || got[0].ID != "1" || got[1].ID != "3" {
		t.Fatalf("unexpected filter result: %+v", got)
	}
}

func TestFilterHotels_Idempotent(t *testing.T) {
	f := domain.FilterParams{PriceMin: 100, PriceMax: 160, MinRating: 4.5}
	once := app.FilterHotels(sampleCatalog(), f)
	twice := app.FilterHotels(once, f)
	if len(once) != len(twice) {
		t.Fatalf("filter not idempotent: %d vs %d", len(once), len(twice))
	}
	for i := range once {
		if once[i].ID != twice[i].ID {
			t.Fatalf("filter not idempotent at %d", i)
		}
	}
}

func TestFilterHotels_ZeroMaxMeansUnbounded(t *testing.T) {
	got := app.FilterHotels(sampleCatalog(), domain.FilterParams{})
	if len(got) != 4 {
		t.Fatalf("zero filter should pass everything, got %d", len(got))
	}
}

func TestSortHotels(t *testing.T) {
	cases := []struct {
		key   string
		first string
	}{
		{"price-low", "2"},
		{"price-high", "3"},
		{"rating", "1"},
		{"", "1"}, // catalog order untouched
	}
	for _, tc := range cases {
		got := app.SortHotels(sampleCatalog(), tc.key)
		if got[0].ID != tc.first {
			t.Fatalf("sort %q: expected first %s, got %s", tc.key, tc.first, got[0].ID)
		}
	}
}

func TestValidateSearchParams(t *testing.T) {
	ok := domain.SearchParams{Location: "Galle", CheckIn: "2026-09-01", CheckOut: "2026-09-03", Guests: 2}
	if err := app.ValidateSearchParams(ok); err != nil {
		t.Fatalf("valid params rejected: %v", err)
	}
	bad := []domain.SearchParams{
		{CheckIn: "tomorrow"},
		{CheckIn: "2026-09-03", CheckOut: "2026-09-01"},
		{Guests: -1},
	}
	for i, p := range bad {
		if err := app.ValidateSearchParams(p); err == nil {
			t.Fatalf("case %d: invalid params accepted", i)
		}
	}
}
