// internal/models/moderation.go
package models

import (
	"time"

	"github.com/lib/pq"
)

// QueueEntry mirrors a listing that is waiting for admin review. An entry
// exists exactly while the listing status is pending; its own Status marks
// whether the entry is a fresh submission or a send-back awaiting fixes.
type QueueEntry struct {
	BaseModel
	SKUID       string        `json:"sku_id" gorm:"column:sku_id;size:40;uniqueIndex;not null"`
	TenantID    string        `json:"tenant_id" gorm:"size:40;not null;index"`
	SupplierID  string        `json:"supplier_id" gorm:"size:40;not null"`
	Domain      ProductDomain `json:"domain" gorm:"type:varchar(20);not null;index"`
	Status      ListingStatus `json:"status" gorm:"type:varchar(20);not null;index"`
	Title       string        `json:"title" gorm:"size:255"`
	ThumbURL    string        `json:"thumb_url" gorm:"size:512"`
	SubmittedAt time.Time     `json:"submitted_at"`
}

// PublicationRecord is the public catalog projection of an approved listing.
// Hidden items keep their record with Visible=false.
type PublicationRecord struct {
	BaseModel
	SKUID       string        `json:"sku_id" gorm:"column:sku_id;size:40;uniqueIndex;not null"`
	TenantID    string        `json:"tenant_id" gorm:"size:40;not null"`
	Domain      ProductDomain `json:"domain" gorm:"type:varchar(20);not null;index"`
	Title       string        `json:"title" gorm:"size:255;not null"`
	Category    string        `json:"category" gorm:"size:100;index"`
	Attributes  JSONB         `json:"attributes" gorm:"type:jsonb"`
	Tags        pq.StringArray `json:"tags" gorm:"type:text[]"`
	Media       MediaAssets   `json:"media" gorm:"type:jsonb"`
	PublicPrice int64         `json:"public_price" gorm:"default:0"`
	PriceSource PriceSource   `json:"price_source" gorm:"type:varchar(20);default:'NONE'"`
	Visible     bool          `json:"visible" gorm:"default:true;index"`
	PublishedAt time.Time     `json:"published_at"`
}

// PriceOnRequest reports whether the catalog should render "price on request"
// instead of a zero amount.
func (p *PublicationRecord) PriceOnRequest() bool {
	return p.PublicPrice <= 0
}

// CatalogIndexEntry records that a SKU belongs to a tag/category/type bucket.
// Rows are rebuilt as a byproduct of publication, never mutated independently.
type CatalogIndexEntry struct {
	BaseModel
	Domain ProductDomain `json:"domain" gorm:"type:varchar(20);not null;uniqueIndex:idx_catalog_bucket_sku"`
	Bucket IndexBucket   `json:"bucket" gorm:"type:varchar(20);not null;uniqueIndex:idx_catalog_bucket_sku"`
	Key    string        `json:"key" gorm:"size:100;not null;uniqueIndex:idx_catalog_bucket_sku"`
	SKUID  string        `json:"sku_id" gorm:"column:sku_id;size:40;not null;uniqueIndex:idx_catalog_bucket_sku;index"`
}

// SKUCounter backs the per-(tenant, supplier, domain) SKU allocator.
type SKUCounter struct {
	BaseModel
	TenantID   string        `json:"tenant_id" gorm:"size:40;not null;uniqueIndex:idx_sku_counter_owner"`
	SupplierID string        `json:"supplier_id" gorm:"size:40;not null;uniqueIndex:idx_sku_counter_owner"`
	Domain     ProductDomain `json:"domain" gorm:"type:varchar(20);not null;uniqueIndex:idx_sku_counter_owner"`
	Counter    int64         `json:"counter" gorm:"default:0"`
}

// SupplierNotification is one supplier-inbox message (e.g. a send-back reason).
type SupplierNotification struct {
	BaseModel
	TenantID   string           `json:"tenant_id" gorm:"size:40;not null;index:idx_notifications_supplier"`
	SupplierID string           `json:"supplier_id" gorm:"size:40;not null;index:idx_notifications_supplier"`
	SKUID      string           `json:"sku_id" gorm:"column:sku_id;size:40;not null;index"`
	Type       NotificationType `json:"type" gorm:"type:varchar(20);not null"`
	Message    string           `json:"message" gorm:"type:text;not null"`
	Read       bool             `json:"read" gorm:"default:false;index"`
	ReadAt     *time.Time       `json:"read_at,omitempty"`
}
