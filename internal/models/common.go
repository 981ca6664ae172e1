// internal/models/common.go
package models

import (
	"database/sql/driver"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Base model with common fields
type BaseModel struct {
	ID        uuid.UUID      `json:"id" gorm:"type:uuid;primary_key;default:gen_random_uuid()"`
	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `json:"deleted_at,omitempty" gorm:"index"`
}

// JSONB type for PostgreSQL
type JSONB map[string]interface{}

func (j JSONB) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

func (j *JSONB) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}

	bytes, ok := value.([]byte)
	if !ok {
		return nil
	}

	return json.Unmarshal(bytes, j)
}

// Enums
type UserType string

const (
	UserTypeSupplier UserType = "supplier"
	UserTypeAdmin    UserType = "admin"
)

type ProductDomain string

const (
	DomainGemstone  ProductDomain = "gemstone"
	DomainJewellery ProductDomain = "jewellery"
	DomainRudraksha ProductDomain = "rudraksha"
)

type ListingStatus string

const (
	ListingStatusDraft    ListingStatus = "draft"
	ListingStatusPending  ListingStatus = "pending"
	ListingStatusApproved ListingStatus = "approved"
	ListingStatusRejected ListingStatus = "rejected"

	// Queue-entry marker only: a listing sent back for correction stays
	// pending, but its queue entry is flagged so admins can tell a fresh
	// submission from one awaiting supplier fixes.
	ListingStatusSupplierReview ListingStatus = "supplier_review"
)

type MediaKind string

const (
	MediaKindImage       MediaKind = "image"
	MediaKindVideo       MediaKind = "video"
	MediaKindCertificate MediaKind = "certificate"
)

type PriceMode string

const (
	PriceModeFlat            PriceMode = "flat"
	PriceModeRateTimesWeight PriceMode = "rate_times_weight"
)

type PriceSource string

const (
	PriceSourceOffer           PriceSource = "OFFER"
	PriceSourceMRP             PriceSource = "MRP"
	PriceSourceRateTimesWeight PriceSource = "RATE_TIMES_WEIGHT"
	PriceSourceNone            PriceSource = "NONE"
)

type IndexBucket string

const (
	IndexBucketTag      IndexBucket = "tag"
	IndexBucketCategory IndexBucket = "category"
)

type NotificationType string

const (
	NotificationTypeSendBack NotificationType = "send_back"
	NotificationTypeRejected NotificationType = "rejected"
)
