// internal/domain/jewellery.go
package domain

import (
	"fmt"
	"strings"

	"github.com/ratnasetu/marketplace-backend/internal/models"
)

// JewelleryAdapter handles gemstone jewellery (rings, pendants, bracelets).
type JewelleryAdapter struct{}

func (a *JewelleryAdapter) Domain() models.ProductDomain { return models.DomainJewellery }

func (a *JewelleryAdapter) SKUPrefix() string { return "JWL" }

func (a *JewelleryAdapter) ValidateAttributes(attrs models.JSONB) error {
	if err := requireString(attrs, "jewellery_type"); err != nil {
		return err
	}
	if err := requireString(attrs, "metal"); err != nil {
		return err
	}
	if err := requirePositive(attrs, "gross_weight"); err != nil {
		return err
	}

	net := attrFloat(attrs, "net_weight")
	if net > 0 && net > attrFloat(attrs, "gross_weight") {
		return fmt.Errorf("net_weight cannot exceed gross_weight")
	}

	return nil
}

func (a *JewelleryAdapter) DisplayTitle(listing *models.Listing) string {
	metal := attrString(listing.Attributes, "metal")
	jtype := attrString(listing.Attributes, "jewellery_type")
	stone := attrString(listing.Attributes, "stone_type")

	title := strings.Title(metal) + " " + strings.Title(jtype)
	if stone != "" {
		title = strings.Title(stone) + " " + title
	}
	return title
}

func (a *JewelleryAdapter) DeriveTags(listing *models.Listing) []string {
	tags := []string{
		attrString(listing.Attributes, "jewellery_type"),
		attrString(listing.Attributes, "metal"),
		attrString(listing.Attributes, "stone_type"),
		attrString(listing.Attributes, "purity"),
	}
	return NormalizeTags(append(tags, listing.Tags...))
}

func (a *JewelleryAdapter) Category(listing *models.Listing) string {
	return normalizeTag(attrString(listing.Attributes, "jewellery_type"))
}
