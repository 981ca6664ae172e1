// internal/services/moderation_service.go
package services

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ratnasetu/marketplace-backend/internal/cache"
	"github.com/ratnasetu/marketplace-backend/internal/config"
	"github.com/ratnasetu/marketplace-backend/internal/database"
	"github.com/ratnasetu/marketplace-backend/internal/domain"
	"github.com/ratnasetu/marketplace-backend/internal/models"
	"github.com/ratnasetu/marketplace-backend/internal/utils"
)

// ModerationService orchestrates the listing lifecycle: it validates
// transitions, computes derived fields and issues the multi-location write of
// each transition as one database transaction, so readers never observe a
// partially applied transition.
type ModerationService struct {
	db            *gorm.DB
	skuService    *SKUService
	mediaService  *MediaService
	notifications *NotificationService
	catalogCache  *cache.Cache
	config        *config.Config
}

// SupplierIdentity is the acting supplier, resolved upstream by the identity
// provider and trusted as given.
type SupplierIdentity struct {
	TenantID   string
	SupplierID string
}

type ListingRequest struct {
	Attributes  models.JSONB       `json:"attributes" validate:"required"`
	Tags        []string           `json:"tags,omitempty" validate:"max=20,dive,max=50"`
	PriceMode   models.PriceMode   `json:"price_mode,omitempty" validate:"omitempty,oneof=flat rate_times_weight"`
	OfferPrice  float64            `json:"offer_price,omitempty" validate:"min=0"`
	MRP         float64            `json:"mrp,omitempty" validate:"min=0"`
	RatePerUnit float64            `json:"rate_per_unit,omitempty" validate:"min=0"`
	Weight      float64            `json:"weight,omitempty" validate:"min=0"`
	Media       models.MediaAssets `json:"media,omitempty"`
}

type QueueFilter struct {
	utils.PaginationParams
	Domain *models.ProductDomain
	Status *models.ListingStatus
}

func NewModerationService(db *gorm.DB, skuService *SKUService, mediaService *MediaService,
	notifications *NotificationService, catalogCache *cache.Cache, config *config.Config) *ModerationService {
	return &ModerationService{
		db:            db,
		skuService:    skuService,
		mediaService:  mediaService,
		notifications: notifications,
		catalogCache:  catalogCache,
		config:        config,
	}
}

// SaveDraft allocates a SKU and creates a new draft listing. A failed SKU
// allocation creates nothing.
func (s *ModerationService) SaveDraft(supplier SupplierIdentity, productDomain models.ProductDomain, req *ListingRequest) (*models.Listing, error) {
	adapter, err := domain.ForDomain(productDomain)
	if err != nil {
		return nil, validationError("", "save_draft", err.Error())
	}

	if err := s.validateRequest(adapter, req, ""); err != nil {
		return nil, err
	}

	skuID, err := s.skuService.Allocate(supplier.TenantID, supplier.SupplierID, productDomain, adapter.SKUPrefix())
	if err != nil {
		return nil, err
	}

	listing := &models.Listing{
		SKUID:      skuID,
		TenantID:   supplier.TenantID,
		SupplierID: supplier.SupplierID,
		Domain:     productDomain,
		Status:     models.ListingStatusDraft,
		Media:      Reorder(req.Media),
	}
	s.applyRequest(adapter, listing, req)

	if err := s.db.Create(listing).Error; err != nil {
		return nil, fmt.Errorf("failed to create listing: %w", err)
	}

	return listing, nil
}

// UpdateListing persists a supplier edit. Editing an approved listing silently
// unpublishes it: in the same transaction the status is forced to pending, the
// queue entry is recreated and the publication record is removed, so a reader
// never observes the edited content as still approved.
func (s *ModerationService) UpdateListing(supplier SupplierIdentity, skuID string, req *ListingRequest) (*models.Listing, error) {
	listing, err := s.loadOwned(supplier, skuID, "update")
	if err != nil {
		return nil, err
	}

	adapter, err := domain.ForDomain(listing.Domain)
	if err != nil {
		return nil, validationError(skuID, "update", err.Error())
	}

	if err := s.validateRequest(adapter, req, skuID); err != nil {
		return nil, err
	}

	wasApproved := listing.Status == models.ListingStatusApproved
	s.applyRequest(adapter, listing, req)
	listing.Media = Reorder(req.Media)

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		switch {
		case wasApproved:
			listing.Status = models.ListingStatusPending
			if err := s.unpublish(tx, listing.SKUID); err != nil {
				return err
			}
			if err := s.upsertQueueEntry(tx, listing, models.ListingStatusPending); err != nil {
				return err
			}
		case listing.Status == models.ListingStatusPending:
			// Refresh the queue mirror so admins review the edited content.
			if err := s.upsertQueueEntry(tx, listing, models.ListingStatusPending); err != nil {
				return err
			}
		}
		return s.saveListing(tx, listing, "update")
	})
	if err != nil {
		return nil, err
	}

	if wasApproved {
		s.invalidateCatalog(listing)
	}

	return listing, nil
}

// Submit moves a listing into the admin review queue.
func (s *ModerationService) Submit(supplier SupplierIdentity, skuID string) (*models.Listing, error) {
	listing, err := s.loadOwned(supplier, skuID, "submit")
	if err != nil {
		return nil, err
	}

	if !canSubmit(listing.Status) {
		return nil, validationError(skuID, "submit",
			fmt.Sprintf("cannot submit a listing in status %s", listing.Status))
	}

	wasApproved := listing.Status == models.ListingStatusApproved
	listing.Status = models.ListingStatusPending

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if wasApproved {
			if err := s.unpublish(tx, listing.SKUID); err != nil {
				return err
			}
		}
		if err := s.upsertQueueEntry(tx, listing, models.ListingStatusPending); err != nil {
			return err
		}
		return s.saveListing(tx, listing, "submit")
	})
	if err != nil {
		return nil, err
	}

	if wasApproved {
		s.invalidateCatalog(listing)
	}

	return listing, nil
}

// Approve recomputes the price, publishes the listing and clears it from the
// review queue. Repeating an approve with no intervening edit yields the same
// public price, exactly one publication record and zero queue entries.
func (s *ModerationService) Approve(adminID uuid.UUID, skuID string, marginOverride *float64) (*models.Listing, error) {
	listing, err := s.loadBySKU(skuID, "approve")
	if err != nil {
		return nil, err
	}

	var queueEntry models.QueueEntry
	queueErr := s.db.Where("sku_id = ?", skuID).First(&queueEntry).Error
	if queueErr != nil {
		if !errors.Is(queueErr, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("failed to read queue entry: %w", queueErr)
		}
		// Re-approving an already approved listing is idempotent; anything
		// else without a queue entry is a stale reference.
		if listing.Status != models.ListingStatusApproved {
			return nil, notFoundError(skuID, "approve")
		}
	}

	adapter, err := domain.ForDomain(listing.Domain)
	if err != nil {
		return nil, validationError(skuID, "approve", err.Error())
	}

	if marginOverride != nil {
		if *marginOverride < 0 {
			return nil, validationError(skuID, "approve", "margin percentage cannot be negative")
		}
		listing.AdminMarginPct = *marginOverride
	}

	// Never trust a prior pricing run; margin or supplier inputs may have
	// changed since the last approval.
	quote := ComputePrice(listing, s.effectiveMargin(listing))

	now := time.Now()
	listing.Status = models.ListingStatusApproved
	listing.BasePrice = quote.BasePrice
	listing.PublicPrice = quote.PublicPrice
	listing.PriceSource = quote.Source
	listing.RejectionReason = ""
	listing.ApprovedAt = &now
	listing.ApprovedBy = &adminID
	listing.Title = adapter.DisplayTitle(listing)
	listing.Tags = adapter.DeriveTags(listing)

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := s.publish(tx, adapter, listing, now); err != nil {
			return err
		}
		if err := tx.Unscoped().Where("sku_id = ?", skuID).Delete(&models.QueueEntry{}).Error; err != nil {
			return fmt.Errorf("failed to remove queue entry: %w", err)
		}
		return s.saveListing(tx, listing, "approve")
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCatalog(listing)

	return listing, nil
}

// Reject requires a non-empty reason; an empty reason fails before any write.
func (s *ModerationService) Reject(adminID uuid.UUID, skuID, reason, supplierEmail string) (*models.Listing, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, validationError(skuID, "reject", "rejection reason is required")
	}

	listing, err := s.loadBySKU(skuID, "reject")
	if err != nil {
		return nil, err
	}

	var queueEntry models.QueueEntry
	if err := s.db.Where("sku_id = ?", skuID).First(&queueEntry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError(skuID, "reject")
		}
		return nil, fmt.Errorf("failed to read queue entry: %w", err)
	}

	now := time.Now()
	listing.Status = models.ListingStatusRejected
	listing.RejectionReason = reason
	listing.RejectedAt = &now
	listing.RejectedBy = &adminID

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := tx.Unscoped().Where("sku_id = ?", skuID).Delete(&models.QueueEntry{}).Error; err != nil {
			return fmt.Errorf("failed to remove queue entry: %w", err)
		}
		if err := s.notifications.CreateInTx(tx, listing, models.NotificationTypeRejected, reason); err != nil {
			return err
		}
		return s.saveListing(tx, listing, "reject")
	})
	if err != nil {
		return nil, err
	}

	if supplierEmail != "" {
		go func() {
			if err := s.notifications.SendRejectionEmail(supplierEmail, listing, reason); err != nil {
				logrus.WithError(err).WithField("sku", skuID).Warn("Failed to send rejection email")
			}
		}()
	}

	return listing, nil
}

// Hide pulls an approved listing off the public catalog without touching the
// supplier's submission status. No supplier notification is produced.
func (s *ModerationService) Hide(adminID uuid.UUID, skuID string) error {
	return s.setVisibility(skuID, "hide", false)
}

// Unhide restores a hidden publication record.
func (s *ModerationService) Unhide(adminID uuid.UUID, skuID string) error {
	return s.setVisibility(skuID, "unhide", true)
}

func (s *ModerationService) setVisibility(skuID, transition string, visible bool) error {
	var record models.PublicationRecord
	if err := s.db.Where("sku_id = ?", skuID).First(&record).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return notFoundError(skuID, transition)
		}
		return fmt.Errorf("failed to read publication record: %w", err)
	}

	if record.Visible == visible {
		return validationError(skuID, transition,
			fmt.Sprintf("publication is already %s", visibilityWord(record.Visible)))
	}

	if err := s.db.Model(&record).Update("visible", visible).Error; err != nil {
		return fmt.Errorf("failed to update publication visibility: %w", err)
	}

	s.invalidateCatalogKeys(string(record.Domain), record.SKUID)
	return nil
}

// SendBack pulls a published listing back for supplier correction: it is
// unpublished, re-queued under supplier_review and the supplier receives an
// unread inbox record carrying the exact reason.
func (s *ModerationService) SendBack(adminID uuid.UUID, skuID, reason, supplierEmail string) (*models.Listing, error) {
	if strings.TrimSpace(reason) == "" {
		return nil, validationError(skuID, "send_back", "send-back reason is required")
	}

	listing, err := s.loadBySKU(skuID, "send_back")
	if err != nil {
		return nil, err
	}

	if listing.Status != models.ListingStatusApproved {
		return nil, validationError(skuID, "send_back",
			fmt.Sprintf("cannot send back a listing in status %s", listing.Status))
	}

	listing.Status = models.ListingStatusPending
	listing.RejectionReason = reason

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		if err := s.unpublish(tx, listing.SKUID); err != nil {
			return err
		}
		if err := s.upsertQueueEntry(tx, listing, models.ListingStatusSupplierReview); err != nil {
			return err
		}
		if err := s.notifications.CreateInTx(tx, listing, models.NotificationTypeSendBack, reason); err != nil {
			return err
		}
		return s.saveListing(tx, listing, "send_back")
	})
	if err != nil {
		return nil, err
	}

	s.invalidateCatalog(listing)

	if supplierEmail != "" {
		go func() {
			if err := s.notifications.SendSendBackEmail(supplierEmail, listing, reason); err != nil {
				logrus.WithError(err).WithField("sku", skuID).Warn("Failed to send send-back email")
			}
		}()
	}

	return listing, nil
}

// DeleteListing removes a draft or rejected submission and purges its media
// blobs best-effort. Listings in review or published must leave the pipeline
// through a moderation decision first.
func (s *ModerationService) DeleteListing(supplier SupplierIdentity, skuID string) error {
	listing, err := s.loadOwned(supplier, skuID, "delete")
	if err != nil {
		return err
	}

	if listing.Status != models.ListingStatusDraft && listing.Status != models.ListingStatusRejected {
		return validationError(skuID, "delete",
			fmt.Sprintf("cannot delete a listing in status %s", listing.Status))
	}

	if err := s.db.Delete(listing).Error; err != nil {
		return fmt.Errorf("failed to delete listing: %w", err)
	}

	s.mediaService.PurgeAll(listing.Media)

	return nil
}

// SaveMedia persists a new media list for a listing. The media column is
// always replaced as a whole array, never patched per element, so partial
// writes can never skew the order sequence. A media edit is a supplier edit
// like any other: touching an approved listing silently unpublishes it.
func (s *ModerationService) SaveMedia(supplier SupplierIdentity, skuID string, media models.MediaAssets) (*models.Listing, error) {
	listing, err := s.loadOwned(supplier, skuID, "save_media")
	if err != nil {
		return nil, err
	}

	wasApproved := listing.Status == models.ListingStatusApproved
	listing.Media = Reorder(media)

	err = database.WithTransaction(s.db, func(tx *gorm.DB) error {
		switch {
		case wasApproved:
			listing.Status = models.ListingStatusPending
			if err := s.unpublish(tx, listing.SKUID); err != nil {
				return err
			}
			if err := s.upsertQueueEntry(tx, listing, models.ListingStatusPending); err != nil {
				return err
			}
		case listing.Status == models.ListingStatusPending:
			if err := s.upsertQueueEntry(tx, listing, models.ListingStatusPending); err != nil {
				return err
			}
		}
		return s.saveListing(tx, listing, "save_media")
	})
	if err != nil {
		return nil, err
	}

	if wasApproved {
		s.invalidateCatalog(listing)
	}

	return listing, nil
}

// Reads

func (s *ModerationService) GetListing(supplier SupplierIdentity, skuID string) (*models.Listing, error) {
	return s.loadOwned(supplier, skuID, "get")
}

func (s *ModerationService) GetListingForAdmin(skuID string) (*models.Listing, error) {
	return s.loadBySKU(skuID, "get")
}

func (s *ModerationService) ListSupplierListings(supplier SupplierIdentity, productDomain *models.ProductDomain,
	status *models.ListingStatus, params utils.PaginationParams) ([]models.Listing, int64, error) {

	query := s.db.Model(&models.Listing{}).
		Where("tenant_id = ? AND supplier_id = ?", supplier.TenantID, supplier.SupplierID)

	if productDomain != nil {
		query = query.Where("domain = ?", *productDomain)
	}
	if status != nil {
		query = query.Where("status = ?", *status)
	}
	if params.Search != "" {
		searchTerm := "%" + params.Search + "%"
		query = query.Where("title ILIKE ? OR sku_id ILIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count listings: %w", err)
	}

	allowedSortFields := []string{"created_at", "updated_at", "title", "status"}
	query = utils.ApplySort(query, params, allowedSortFields)
	query = utils.ApplyPagination(query, params)

	var listings []models.Listing
	if err := query.Find(&listings).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch listings: %w", err)
	}

	return listings, total, nil
}

// ListReviewQueue is the admin view: all pending listings across all tenants
// in one bulk read.
func (s *ModerationService) ListReviewQueue(filter QueueFilter) ([]models.QueueEntry, int64, error) {
	query := s.db.Model(&models.QueueEntry{})

	if filter.Domain != nil {
		query = query.Where("domain = ?", *filter.Domain)
	}
	if filter.Status != nil {
		query = query.Where("status = ?", *filter.Status)
	}
	if filter.Search != "" {
		searchTerm := "%" + filter.Search + "%"
		query = query.Where("title ILIKE ? OR sku_id ILIKE ?", searchTerm, searchTerm)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count queue entries: %w", err)
	}

	allowedSortFields := []string{"submitted_at", "created_at", "title"}
	query = utils.ApplySort(query, filter.PaginationParams, allowedSortFields)
	query = utils.ApplyPagination(query, filter.PaginationParams)

	var entries []models.QueueEntry
	if err := query.Find(&entries).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch queue entries: %w", err)
	}

	return entries, total, nil
}

// Transition rules

func canSubmit(status models.ListingStatus) bool {
	switch status {
	case models.ListingStatusDraft, models.ListingStatusRejected, models.ListingStatusApproved:
		return true
	}
	return false
}

// Helpers

func (s *ModerationService) validateRequest(adapter domain.Adapter, req *ListingRequest, skuID string) error {
	if err := utils.ValidateStruct(req); err != nil {
		return validationError(skuID, "validate", err.Error())
	}
	if err := adapter.ValidateAttributes(req.Attributes); err != nil {
		return validationError(skuID, "validate", err.Error())
	}
	if req.PriceMode == models.PriceModeRateTimesWeight && req.RatePerUnit > 0 && req.Weight <= 0 {
		return validationError(skuID, "validate", "weight must be positive when a rate is given")
	}
	return nil
}

func (s *ModerationService) applyRequest(adapter domain.Adapter, listing *models.Listing, req *ListingRequest) {
	listing.Attributes = req.Attributes
	if req.PriceMode != "" {
		listing.PriceMode = req.PriceMode
	} else if listing.PriceMode == "" {
		listing.PriceMode = models.PriceModeFlat
	}
	listing.OfferPrice = req.OfferPrice
	listing.MRP = req.MRP
	listing.RatePerUnit = req.RatePerUnit
	listing.Weight = req.Weight
	listing.Tags = domain.NormalizeTags(req.Tags)
	listing.Title = adapter.DisplayTitle(listing)
}

func (s *ModerationService) effectiveMargin(listing *models.Listing) float64 {
	if listing.AdminMarginPct > 0 {
		return listing.AdminMarginPct
	}
	return s.config.Pricing.DefaultMarginPct
}

func (s *ModerationService) loadBySKU(skuID, transition string) (*models.Listing, error) {
	var listing models.Listing
	if err := s.db.Where("sku_id = ?", skuID).First(&listing).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError(skuID, transition)
		}
		return nil, fmt.Errorf("database error: %w", err)
	}
	return &listing, nil
}

func (s *ModerationService) loadOwned(supplier SupplierIdentity, skuID, transition string) (*models.Listing, error) {
	listing, err := s.loadBySKU(skuID, transition)
	if err != nil {
		return nil, err
	}
	if listing.TenantID != supplier.TenantID || listing.SupplierID != supplier.SupplierID {
		return nil, accessDeniedError(skuID, transition)
	}
	return listing, nil
}

// saveListing writes all listing fields guarded by the optimistic version; a
// concurrent writer makes the guard miss and the whole transition is retried
// by the caller.
func (s *ModerationService) saveListing(tx *gorm.DB, listing *models.Listing, transition string) error {
	previous := listing.Version
	listing.Version = previous + 1

	result := tx.Model(&models.Listing{}).
		Where("id = ? AND version = ?", listing.ID, previous).
		Select("*").Omit("id", "created_at", "deleted_at").
		Updates(listing)
	if result.Error != nil {
		return fmt.Errorf("failed to save listing: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return writeConflictError(listing.SKUID, transition)
	}

	return nil
}

// upsertQueueEntry replaces the queue mirror of a listing. queueStatus is
// pending for ordinary submissions and supplier_review for send-backs. The
// delete is hard: queue rows are a rebuildable projection, and a soft-deleted
// row would still occupy the unique sku_id index and block the recreate.
func (s *ModerationService) upsertQueueEntry(tx *gorm.DB, listing *models.Listing, queueStatus models.ListingStatus) error {
	if err := tx.Unscoped().Where("sku_id = ?", listing.SKUID).Delete(&models.QueueEntry{}).Error; err != nil {
		return fmt.Errorf("failed to clear queue entry: %w", err)
	}

	entry := &models.QueueEntry{
		SKUID:       listing.SKUID,
		TenantID:    listing.TenantID,
		SupplierID:  listing.SupplierID,
		Domain:      listing.Domain,
		Status:      queueStatus,
		Title:       listing.Title,
		ThumbURL:    listing.Media.CoverURL(),
		SubmittedAt: time.Now(),
	}

	if err := tx.Create(entry).Error; err != nil {
		return fmt.Errorf("failed to create queue entry: %w", err)
	}

	return nil
}

// publish writes the publication record and rebuilds the catalog index
// buckets. The rebuild deletes every bucket row for the SKU first, so stale
// memberships from a previous tag set can never survive a re-publish. All
// deletes are hard deletes: these rows are rebuildable projections and their
// unique indexes cover soft-deleted rows too.
func (s *ModerationService) publish(tx *gorm.DB, adapter domain.Adapter, listing *models.Listing, publishedAt time.Time) error {
	if err := tx.Unscoped().Where("sku_id = ?", listing.SKUID).Delete(&models.PublicationRecord{}).Error; err != nil {
		return fmt.Errorf("failed to clear publication record: %w", err)
	}

	record := &models.PublicationRecord{
		SKUID:       listing.SKUID,
		TenantID:    listing.TenantID,
		Domain:      listing.Domain,
		Title:       listing.Title,
		Category:    adapter.Category(listing),
		Attributes:  listing.Attributes,
		Tags:        listing.Tags,
		Media:       listing.Media,
		PublicPrice: listing.PublicPrice,
		PriceSource: listing.PriceSource,
		Visible:     true,
		PublishedAt: publishedAt,
	}

	if err := tx.Create(record).Error; err != nil {
		return fmt.Errorf("failed to write publication record: %w", err)
	}

	if err := tx.Unscoped().Where("sku_id = ?", listing.SKUID).Delete(&models.CatalogIndexEntry{}).Error; err != nil {
		return fmt.Errorf("failed to clear catalog index entries: %w", err)
	}

	entries := make([]models.CatalogIndexEntry, 0, len(listing.Tags)+1)
	for _, tag := range listing.Tags {
		entries = append(entries, models.CatalogIndexEntry{
			Domain: listing.Domain,
			Bucket: models.IndexBucketTag,
			Key:    tag,
			SKUID:  listing.SKUID,
		})
	}
	if category := adapter.Category(listing); category != "" {
		entries = append(entries, models.CatalogIndexEntry{
			Domain: listing.Domain,
			Bucket: models.IndexBucketCategory,
			Key:    category,
			SKUID:  listing.SKUID,
		})
	}

	if len(entries) > 0 {
		if err := tx.Create(&entries).Error; err != nil {
			return fmt.Errorf("failed to write catalog index entries: %w", err)
		}
	}

	return nil
}

// unpublish hard-deletes the publication record and its index rows so a later
// re-publish can recreate them under the same unique sku_id.
func (s *ModerationService) unpublish(tx *gorm.DB, skuID string) error {
	if err := tx.Unscoped().Where("sku_id = ?", skuID).Delete(&models.PublicationRecord{}).Error; err != nil {
		return fmt.Errorf("failed to remove publication record: %w", err)
	}
	if err := tx.Unscoped().Where("sku_id = ?", skuID).Delete(&models.CatalogIndexEntry{}).Error; err != nil {
		return fmt.Errorf("failed to remove catalog index entries: %w", err)
	}
	return nil
}

func (s *ModerationService) invalidateCatalog(listing *models.Listing) {
	s.invalidateCatalogKeys(string(listing.Domain), listing.SKUID)
}

func (s *ModerationService) invalidateCatalogKeys(domainName, skuID string) {
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	s.catalogCache.Delete(ctx, cache.PublicationKey(domainName, skuID))
	s.catalogCache.DeleteByPrefix(ctx, cache.BucketPrefix(domainName))
}

func visibilityWord(visible bool) string {
	if visible {
		return "visible"
	}
	return "hidden"
}
