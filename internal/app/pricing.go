package app

import (
	"math"

	"ceylon_stays/internal/domain"
)

// PriceQuote is the three figures shown next to a room selection. All zero
// when no room is selected.
type PriceQuote struct {
	Price int `json:"price"`
	Tax   int `json:"tax"`
	Total int `json:"total"`
}

// Quote derives the tax and total for a room's nightly price.
//
// Rounding rule: tax = round(price × 0.10) to the nearest currency unit,
// total = price + tax. Deriving the total from the rounded tax keeps
// price + tax == total for every price; rounding price × 1.1 independently
// can drift by one unit on prices that are not multiples of ten.
func Quote(room *domain.Room) PriceQuote {
	if room == nil {
		return PriceQuote{}
	}
	tax := int(math.Round(float64(room.Price) * 0.10))
	return PriceQuote{Price: room.Price, Tax: tax, Total: room.Price + tax}
}
