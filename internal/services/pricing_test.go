// internal/services/pricing_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/ratnasetu/marketplace-backend/internal/models"
)

func TestComputePriceOfferBeatsMRP(t *testing.T) {
	listing := &models.Listing{
		PriceMode:  models.PriceModeFlat,
		OfferPrice: 450,
		MRP:        500,
	}

	quote := ComputePrice(listing, 20)

	assert.Equal(t, int64(450), quote.BasePrice)
	assert.Equal(t, int64(540), quote.PublicPrice)
	assert.Equal(t, models.PriceSourceOffer, quote.Source)
}

func TestComputePriceFallsBackToMRP(t *testing.T) {
	listing := &models.Listing{
		PriceMode:  models.PriceModeFlat,
		OfferPrice: 0,
		MRP:        500,
	}

	quote := ComputePrice(listing, 20)

	assert.Equal(t, int64(500), quote.BasePrice)
	assert.Equal(t, int64(600), quote.PublicPrice)
	assert.Equal(t, models.PriceSourceMRP, quote.Source)
}

func TestComputePriceRateTimesWeight(t *testing.T) {
	listing := &models.Listing{
		PriceMode:   models.PriceModeRateTimesWeight,
		RatePerUnit: 100,
		Weight:      5.5,
	}

	quote := ComputePrice(listing, 10)

	assert.Equal(t, int64(550), quote.BasePrice)
	assert.Equal(t, int64(605), quote.PublicPrice)
	assert.Equal(t, models.PriceSourceRateTimesWeight, quote.Source)
}

func TestComputePriceRateModeIgnoresFlatInputs(t *testing.T) {
	// Offer and MRP must not leak into rate mode.
	listing := &models.Listing{
		PriceMode:   models.PriceModeRateTimesWeight,
		OfferPrice:  999,
		MRP:         888,
		RatePerUnit: 200,
		Weight:      2,
	}

	quote := ComputePrice(listing, 0)

	assert.Equal(t, int64(400), quote.BasePrice)
	assert.Equal(t, int64(400), quote.PublicPrice)
	assert.Equal(t, models.PriceSourceRateTimesWeight, quote.Source)
}

func TestComputePriceNoInputsMeansPriceOnRequest(t *testing.T) {
	cases := []*models.Listing{
		{PriceMode: models.PriceModeFlat},
		{PriceMode: models.PriceModeRateTimesWeight, RatePerUnit: 100},
		{PriceMode: models.PriceModeRateTimesWeight, Weight: 5},
	}

	for _, listing := range cases {
		quote := ComputePrice(listing, 15)

		assert.Equal(t, int64(0), quote.BasePrice)
		assert.Equal(t, int64(0), quote.PublicPrice)
		assert.Equal(t, models.PriceSourceNone, quote.Source)
	}
}

func TestComputePriceRoundsHalfUp(t *testing.T) {
	listing := &models.Listing{
		PriceMode:   models.PriceModeRateTimesWeight,
		RatePerUnit: 33,
		Weight:      1.5, // 49.5 rounds to 50
	}

	quote := ComputePrice(listing, 0)
	assert.Equal(t, int64(50), quote.BasePrice)

	// 50 * 1.05 = 52.5 rounds to 53
	quote = ComputePrice(listing, 5)
	assert.Equal(t, int64(53), quote.PublicPrice)
}

func TestComputePriceZeroMargin(t *testing.T) {
	listing := &models.Listing{
		PriceMode:  models.PriceModeFlat,
		OfferPrice: 1234,
	}

	quote := ComputePrice(listing, 0)

	assert.Equal(t, int64(1234), quote.BasePrice)
	assert.Equal(t, int64(1234), quote.PublicPrice)
}

func TestComputePriceIsDeterministic(t *testing.T) {
	listing := &models.Listing{
		PriceMode:   models.PriceModeRateTimesWeight,
		RatePerUnit: 7321.77,
		Weight:      3.123,
	}

	first := ComputePrice(listing, 12.5)
	for i := 0; i < 10; i++ {
		assert.Equal(t, first, ComputePrice(listing, 12.5))
	}
}
