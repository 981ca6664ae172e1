// internal/domain/gemstone.go
package domain

import (
	"fmt"
	"strings"

	"github.com/ratnasetu/marketplace-backend/internal/models"
)

// GemstoneAdapter handles loose gemstone listings (ruby, emerald, blue
// sapphire, ...). Weight is in carats, rates are per carat.
type GemstoneAdapter struct{}

func (a *GemstoneAdapter) Domain() models.ProductDomain { return models.DomainGemstone }

func (a *GemstoneAdapter) SKUPrefix() string { return "GEM" }

func (a *GemstoneAdapter) ValidateAttributes(attrs models.JSONB) error {
	if err := requireString(attrs, "stone_type"); err != nil {
		return err
	}
	if err := requirePositive(attrs, "carat"); err != nil {
		return err
	}

	if v, ok := attrs["treatment"]; ok {
		if s, ok := v.(string); ok {
			switch strings.ToLower(s) {
			case "", "none", "heated", "unheated", "oiled", "diffused":
			default:
				return fmt.Errorf("unknown treatment %q", s)
			}
		}
	}

	return nil
}

func (a *GemstoneAdapter) DisplayTitle(listing *models.Listing) string {
	stone := attrString(listing.Attributes, "stone_type")
	carat := attrFloat(listing.Attributes, "carat")
	origin := attrString(listing.Attributes, "origin")

	title := fmt.Sprintf("%.2f Carat %s", carat, strings.Title(stone))
	if origin != "" {
		title += " (" + strings.Title(origin) + ")"
	}
	return title
}

func (a *GemstoneAdapter) DeriveTags(listing *models.Listing) []string {
	tags := []string{
		attrString(listing.Attributes, "stone_type"),
		attrString(listing.Attributes, "origin"),
		attrString(listing.Attributes, "certification"),
	}
	if attrString(listing.Attributes, "treatment") == "unheated" {
		tags = append(tags, "unheated")
	}
	return NormalizeTags(append(tags, listing.Tags...))
}

func (a *GemstoneAdapter) Category(listing *models.Listing) string {
	return normalizeTag(attrString(listing.Attributes, "stone_type"))
}
