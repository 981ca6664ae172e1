// internal/services/pricing.go
package services

import (
	"math"

	"github.com/ratnasetu/marketplace-backend/internal/models"
)

// PriceQuote is the result of one pricing run. Prices are whole currency
// units; 0 means "no price" and catalog callers render it as price-on-request.
type PriceQuote struct {
	BasePrice   int64
	PublicPrice int64
	Source      models.PriceSource
}

// ComputePrice derives the public price from the supplier cost inputs and the
// admin margin. It is pure and re-run on every approval; a prior run is never
// trusted because margin or supplier inputs may have changed since.
func ComputePrice(listing *models.Listing, marginPct float64) PriceQuote {
	quote := PriceQuote{Source: models.PriceSourceNone}

	if listing.PriceMode == models.PriceModeRateTimesWeight {
		if listing.RatePerUnit > 0 && listing.Weight > 0 {
			quote.BasePrice = roundHalfUp(listing.RatePerUnit * listing.Weight)
			quote.Source = models.PriceSourceRateTimesWeight
		}
	} else {
		switch {
		case listing.OfferPrice > 0:
			quote.BasePrice = roundHalfUp(listing.OfferPrice)
			quote.Source = models.PriceSourceOffer
		case listing.MRP > 0:
			quote.BasePrice = roundHalfUp(listing.MRP)
			quote.Source = models.PriceSourceMRP
		}
	}

	if quote.BasePrice > 0 {
		quote.PublicPrice = roundHalfUp(float64(quote.BasePrice) * (1 + marginPct/100))
	}

	return quote
}

// roundHalfUp rounds to the nearest integer currency unit, halves up.
// Fractional sub-units are never displayed.
func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
