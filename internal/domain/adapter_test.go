// internal/domain/adapter_test.go
package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratnasetu/marketplace-backend/internal/models"
)

func TestForDomainKnowsAllThreeDomains(t *testing.T) {
	for _, d := range Domains() {
		adapter, err := ForDomain(d)
		require.NoError(t, err)
		assert.Equal(t, d, adapter.Domain())
		assert.Len(t, adapter.SKUPrefix(), 3)
	}
}

func TestForDomainRejectsUnknown(t *testing.T) {
	_, err := ForDomain(models.ProductDomain("antiques"))
	assert.Error(t, err)
}

func TestNormalizeTags(t *testing.T) {
	in := []string{"  Blue Sapphire ", "blue-sapphire", "CEYLON", "", "a_b", "--", "Sri Lanka"}

	out := NormalizeTags(in)

	assert.Equal(t, []string{"blue-sapphire", "ceylon", "a-b", "sri-lanka"}, out)
}

func TestNormalizeTagsKeepsFirstOccurrenceOrder(t *testing.T) {
	out := NormalizeTags([]string{"zircon", "Amethyst", "ZIRCON"})
	assert.Equal(t, []string{"zircon", "amethyst"}, out)
}

func TestGemstoneValidation(t *testing.T) {
	a := &GemstoneAdapter{}

	assert.NoError(t, a.ValidateAttributes(models.JSONB{
		"stone_type": "ruby", "carat": 2.5, "treatment": "unheated",
	}))

	assert.Error(t, a.ValidateAttributes(models.JSONB{"carat": 2.5}), "missing stone_type")
	assert.Error(t, a.ValidateAttributes(models.JSONB{"stone_type": "ruby"}), "missing carat")
	assert.Error(t, a.ValidateAttributes(models.JSONB{"stone_type": "ruby", "carat": -1.0}))
	assert.Error(t, a.ValidateAttributes(models.JSONB{
		"stone_type": "ruby", "carat": 2.5, "treatment": "irradiated",
	}))
}

func TestGemstoneTitleAndCategory(t *testing.T) {
	a := &GemstoneAdapter{}
	listing := &models.Listing{Attributes: models.JSONB{
		"stone_type": "blue sapphire", "carat": 3.02, "origin": "ceylon",
	}}

	assert.Equal(t, "3.02 Carat Blue Sapphire (Ceylon)", a.DisplayTitle(listing))
	assert.Equal(t, "blue-sapphire", a.Category(listing))
}

func TestGemstoneDeriveTagsMergesSupplierTags(t *testing.T) {
	a := &GemstoneAdapter{}
	listing := &models.Listing{
		Attributes: models.JSONB{"stone_type": "ruby", "origin": "burma", "treatment": "unheated"},
		Tags:       []string{"Ruby", "investment-grade"},
	}

	tags := a.DeriveTags(listing)

	assert.Contains(t, tags, "ruby")
	assert.Contains(t, tags, "burma")
	assert.Contains(t, tags, "unheated")
	assert.Contains(t, tags, "investment-grade")

	seen := map[string]int{}
	for _, tag := range tags {
		seen[tag]++
	}
	assert.Equal(t, 1, seen["ruby"], "merged tags must be de-duplicated")
}

func TestJewelleryValidation(t *testing.T) {
	a := &JewelleryAdapter{}

	assert.NoError(t, a.ValidateAttributes(models.JSONB{
		"jewellery_type": "ring", "metal": "gold", "gross_weight": 8.2, "net_weight": 6.1,
	}))

	assert.Error(t, a.ValidateAttributes(models.JSONB{"metal": "gold", "gross_weight": 8.2}))
	assert.Error(t, a.ValidateAttributes(models.JSONB{
		"jewellery_type": "ring", "metal": "gold", "gross_weight": 5.0, "net_weight": 6.0,
	}), "net weight above gross weight")
}

func TestRudrakshaValidation(t *testing.T) {
	a := &RudrakshaAdapter{}

	assert.NoError(t, a.ValidateAttributes(models.JSONB{
		"mukhi": 5.0, "origin": "nepal", "size_mm": 22.0,
	}))

	assert.Error(t, a.ValidateAttributes(models.JSONB{"mukhi": 0.0, "origin": "nepal", "size_mm": 22.0}))
	assert.Error(t, a.ValidateAttributes(models.JSONB{"mukhi": 22.0, "origin": "nepal", "size_mm": 22.0}))
	assert.Error(t, a.ValidateAttributes(models.JSONB{"mukhi": 5.5, "origin": "nepal", "size_mm": 22.0}))
	assert.Error(t, a.ValidateAttributes(models.JSONB{"mukhi": 5.0, "size_mm": 22.0}))
}

func TestRudrakshaCategoryAndTitle(t *testing.T) {
	a := &RudrakshaAdapter{}
	listing := &models.Listing{Attributes: models.JSONB{
		"mukhi": 5.0, "origin": "nepal", "size_mm": 22.5,
	}}

	assert.Equal(t, "5-mukhi", a.Category(listing))
	assert.Equal(t, "5 Mukhi Rudraksha 22.5mm (nepal)", a.DisplayTitle(listing))
	assert.Contains(t, a.DeriveTags(listing), "5-mukhi")
}
