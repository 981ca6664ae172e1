// internal/domain/rudraksha.go
package domain

import (
	"fmt"

	"github.com/ratnasetu/marketplace-backend/internal/models"
)

// RudrakshaAdapter handles rudraksha bead listings. Mukhi is the face count,
// 1 through 21.
type RudrakshaAdapter struct{}

func (a *RudrakshaAdapter) Domain() models.ProductDomain { return models.DomainRudraksha }

func (a *RudrakshaAdapter) SKUPrefix() string { return "RUD" }

func (a *RudrakshaAdapter) ValidateAttributes(attrs models.JSONB) error {
	mukhi := attrFloat(attrs, "mukhi")
	if mukhi < 1 || mukhi > 21 || mukhi != float64(int(mukhi)) {
		return fmt.Errorf("attribute \"mukhi\" must be a whole number between 1 and 21")
	}
	if err := requireString(attrs, "origin"); err != nil {
		return err
	}
	if err := requirePositive(attrs, "size_mm"); err != nil {
		return err
	}
	return nil
}

func (a *RudrakshaAdapter) DisplayTitle(listing *models.Listing) string {
	mukhi := int(attrFloat(listing.Attributes, "mukhi"))
	origin := attrString(listing.Attributes, "origin")
	size := attrFloat(listing.Attributes, "size_mm")

	return fmt.Sprintf("%d Mukhi Rudraksha %.1fmm (%s)", mukhi, size, origin)
}

func (a *RudrakshaAdapter) DeriveTags(listing *models.Listing) []string {
	mukhi := int(attrFloat(listing.Attributes, "mukhi"))
	tags := []string{
		fmt.Sprintf("%d-mukhi", mukhi),
		attrString(listing.Attributes, "origin"),
	}
	return NormalizeTags(append(tags, listing.Tags...))
}

func (a *RudrakshaAdapter) Category(listing *models.Listing) string {
	return fmt.Sprintf("%d-mukhi", int(attrFloat(listing.Attributes, "mukhi")))
}
