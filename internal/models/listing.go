// internal/models/listing.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// MediaAsset is one uploaded file attached to a listing. Order is 0-based and
// contiguous within a kind; the image at order 0 is the cover image.
type MediaAsset struct {
	ID         string    `json:"id"`
	Kind       MediaKind `json:"kind"`
	StorageKey string    `json:"storage_key"`
	URL        string    `json:"url"`
	Order      int       `json:"order"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}

// MediaAssets is stored as a single jsonb column so every save replaces the
// whole array, never a per-element patch.
type MediaAssets []MediaAsset

func (m MediaAssets) Value() (driver.Value, error) {
	if m == nil {
		return json.Marshal(MediaAssets{})
	}
	return json.Marshal(m)
}

func (m *MediaAssets) Scan(value interface{}) error {
	if value == nil {
		*m = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, m)
}

// OfKind returns the assets of one kind in order.
func (m MediaAssets) OfKind(kind MediaKind) MediaAssets {
	var out MediaAssets
	for _, a := range m {
		if a.Kind == kind {
			out = append(out, a)
		}
	}
	return out
}

// CoverURL returns the URL of the image at order 0, or "".
func (m MediaAssets) CoverURL() string {
	for _, a := range m {
		if a.Kind == MediaKindImage && a.Order == 0 {
			return a.URL
		}
	}
	return ""
}

// Listing is the canonical submission record, keyed by (tenant, SKU).
type Listing struct {
	BaseModel
	SKUID      string        `json:"sku_id" gorm:"column:sku_id;size:40;uniqueIndex;not null"`
	TenantID   string        `json:"tenant_id" gorm:"size:40;not null;index:idx_listings_tenant_domain"`
	SupplierID string        `json:"supplier_id" gorm:"size:40;not null;index"`
	Domain     ProductDomain `json:"domain" gorm:"type:varchar(20);not null;index:idx_listings_tenant_domain"`
	Status     ListingStatus `json:"status" gorm:"type:varchar(20);default:'draft';index"`

	Title      string `json:"title" gorm:"size:255"`
	Attributes JSONB  `json:"attributes" gorm:"type:jsonb"`

	Tags pq.StringArray `json:"tags" gorm:"type:text[]"`

	Media MediaAssets `json:"media" gorm:"type:jsonb"`

	// Supplier cost inputs
	PriceMode   PriceMode `json:"price_mode" gorm:"type:varchar(20);default:'flat'"`
	OfferPrice  float64   `json:"offer_price" gorm:"type:decimal(12,2);default:0"`
	MRP         float64   `json:"mrp" gorm:"type:decimal(12,2);default:0"`
	RatePerUnit float64   `json:"rate_per_unit" gorm:"type:decimal(12,2);default:0"`
	Weight      float64   `json:"weight" gorm:"type:decimal(10,3);default:0"`

	// Derived pricing, written only by the moderation pipeline at approval
	AdminMarginPct float64     `json:"admin_margin_pct" gorm:"type:decimal(5,2);default:0"`
	BasePrice      int64       `json:"base_price" gorm:"default:0"`
	PublicPrice    int64       `json:"public_price" gorm:"default:0"`
	PriceSource    PriceSource `json:"price_source" gorm:"type:varchar(20);default:'NONE'"`

	RejectionReason string `json:"rejection_reason,omitempty" gorm:"type:text"`

	ApprovedAt *time.Time `json:"approved_at,omitempty"`
	ApprovedBy *uuid.UUID `json:"approved_by,omitempty" gorm:"type:uuid"`
	RejectedAt *time.Time `json:"rejected_at,omitempty"`
	RejectedBy *uuid.UUID `json:"rejected_by,omitempty" gorm:"type:uuid"`

	// Optimistic lock; bumped on every pipeline write
	Version int64 `json:"version" gorm:"default:0"`
}
