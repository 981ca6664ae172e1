// internal/domain/adapter.go
package domain

import (
	"fmt"
	"strings"

	"github.com/ratnasetu/marketplace-backend/internal/models"
)

// Adapter supplies the product-specific pieces of the moderation pipeline.
// The pipeline itself is domain-agnostic; everything that differs between
// gemstones, jewellery and rudraksha lives behind this interface.
type Adapter interface {
	Domain() models.ProductDomain
	SKUPrefix() string
	ValidateAttributes(attrs models.JSONB) error
	DisplayTitle(listing *models.Listing) string
	DeriveTags(listing *models.Listing) []string
	Category(listing *models.Listing) string
}

var registry = map[models.ProductDomain]Adapter{}

func register(a Adapter) {
	registry[a.Domain()] = a
}

func init() {
	register(&GemstoneAdapter{})
	register(&JewelleryAdapter{})
	register(&RudrakshaAdapter{})
}

// ForDomain returns the adapter for a product domain.
func ForDomain(d models.ProductDomain) (Adapter, error) {
	a, ok := registry[d]
	if !ok {
		return nil, fmt.Errorf("unknown product domain: %s", d)
	}
	return a, nil
}

// Domains lists the registered product domains.
func Domains() []models.ProductDomain {
	return []models.ProductDomain{models.DomainGemstone, models.DomainJewellery, models.DomainRudraksha}
}

// NormalizeTags lowercases, restricts to [a-z0-9-] and de-duplicates while
// keeping the first occurrence order.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))

	for _, tag := range tags {
		normalized := normalizeTag(tag)
		if normalized == "" || seen[normalized] {
			continue
		}
		seen[normalized] = true
		out = append(out, normalized)
	}

	return out
}

func normalizeTag(tag string) string {
	tag = strings.ToLower(strings.TrimSpace(tag))

	var b strings.Builder
	lastHyphen := false
	for _, r := range tag {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastHyphen = false
		case r == '-' || r == ' ' || r == '_':
			if b.Len() > 0 && !lastHyphen {
				b.WriteRune('-')
				lastHyphen = true
			}
		}
	}

	return strings.TrimSuffix(b.String(), "-")
}

// Attribute accessors: attributes arrive as decoded JSON, so numbers are
// float64 and everything is optional.

func attrString(attrs models.JSONB, key string) string {
	if v, ok := attrs[key]; ok {
		if s, ok := v.(string); ok {
			return strings.TrimSpace(s)
		}
	}
	return ""
}

func attrFloat(attrs models.JSONB, key string) float64 {
	switch v := attrs[key].(type) {
	case float64:
		return v
	case int:
		return float64(v)
	case int64:
		return float64(v)
	}
	return 0
}

func requireString(attrs models.JSONB, key string) error {
	if attrString(attrs, key) == "" {
		return fmt.Errorf("attribute %q is required", key)
	}
	return nil
}

func requirePositive(attrs models.JSONB, key string) error {
	if attrFloat(attrs, key) <= 0 {
		return fmt.Errorf("attribute %q must be a positive number", key)
	}
	return nil
}
