package domain

// Hotel is a read-only catalog entry. Ratings are clamped to [0,5] at the
// adapter boundary so the rest of the system can rely on the range.
type Hotel struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Location    string  `json:"location"`
	Rating      float64 `json:"rating"`
	Price       int     `json:"price"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

type Capacity struct {
	Adults   int `json:"adults"`
	Children int `json:"children"`
}

type Room struct {
	ID        string   `json:"id"`
	HotelID   string   `json:"hotelId"`
	Name      string   `json:"name"`
	Price     int      `json:"price"`
	Capacity  Capacity `json:"capacity"`
	Size      int      `json:"size"` // floor area, m²
	BedType   string   `json:"bedType"`
	Amenities []string `json:"amenities"`
	Image     string   `json:"image"`
}

// ClampRating forces r into the valid [0,5] range.
func ClampRating(r float64) float64 {
	if r < 0 {
		return 0
	}
	if r > 5 {
		return 5
	}
	return r
}

// SearchParams is a search submission from the landing view. CheckIn and
// CheckOut use the 2006-01-02 layout; empty means unset. Only Location
// restricts results in the current scope, the rest travel with the query
// for availability filtering later.
type SearchParams struct {
	Location string
	CheckIn  string
	CheckOut string
	Guests   int
}

// FilterParams narrows an already-searched result set. A zero PriceMax means
// "no upper bound"; MinRating of 0 passes everything.
type FilterParams struct {
	PriceMin  int
	PriceMax  int
	MinRating float64
	Sort      string // "", "price-low", "price-high", "rating"
}
