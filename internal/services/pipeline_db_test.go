// internal/services/pipeline_db_test.go
//
// Transition tests against a real postgres instance, so the gorm model layer
// (column mapping, unique indexes, soft-delete scoping) is exercised together
// with the raw SQL the services issue.
package services

import (
	"context"
	"log"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/ratnasetu/marketplace-backend/internal/config"
	"github.com/ratnasetu/marketplace-backend/internal/database"
	"github.com/ratnasetu/marketplace-backend/internal/models"
)

var testDB *gorm.DB

func setupTestDB() (func(context.Context, ...testcontainers.TerminateOption) error, error) {
	ctx := context.Background()

	dbContainer, err := tcpostgres.Run(
		ctx,
		"postgres:15",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("user"),
		tcpostgres.WithPassword("password"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second)),
	)
	if err != nil {
		return nil, err
	}

	dsn, err := dbContainer.ConnectionString(ctx, "sslmode=disable")
	if err != nil {
		return dbContainer.Terminate, err
	}

	testDB, err = gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return dbContainer.Terminate, err
	}

	if err := database.RunMigrations(testDB); err != nil {
		return dbContainer.Terminate, err
	}

	return dbContainer.Terminate, nil
}

func TestMain(m *testing.M) {
	teardown, err := setupTestDB()
	if err != nil {
		log.Fatalf("could not start postgres container: %v", err)
	}

	m.Run()

	if teardown != nil {
		if err := teardown(context.Background()); err != nil {
			log.Fatalf("could not teardown postgres container: %v", err)
		}
	}
}

func newPipeline(t *testing.T) *ModerationService {
	t.Helper()

	cfg := &config.Config{
		Pricing: config.PricingConfig{DefaultMarginPct: 10},
		SKU:     config.SKUConfig{RetryBudget: 5, CounterWidth: 5},
	}

	media, err := NewMediaService(cfg)
	require.NoError(t, err)

	return NewModerationService(testDB, NewSKUService(testDB, cfg), media,
		NewNotificationService(testDB, cfg), nil, cfg)
}

// Every test gets its own tenant so SKU counters and queue state never bleed
// across tests.
func newSupplier() SupplierIdentity {
	return SupplierIdentity{
		TenantID:   strings.ToUpper(uuid.New().String()[:8]),
		SupplierID: uuid.New().String(),
	}
}

func gemstoneRequest() *ListingRequest {
	return &ListingRequest{
		Attributes: models.JSONB{
			"stone_type": "ruby",
			"carat":      2.5,
			"origin":     "burma",
		},
		Tags:       []string{"unheated"},
		PriceMode:  models.PriceModeFlat,
		OfferPrice: 450,
		MRP:        500,
	}
}

func approvedListing(t *testing.T, svc *ModerationService, supplier SupplierIdentity) *models.Listing {
	t.Helper()

	listing, err := svc.SaveDraft(supplier, models.DomainGemstone, gemstoneRequest())
	require.NoError(t, err)

	_, err = svc.Submit(supplier, listing.SKUID)
	require.NoError(t, err)

	approved, err := svc.Approve(uuid.New(), listing.SKUID, nil)
	require.NoError(t, err)
	return approved
}

func countRows(t *testing.T, model interface{}, skuID string) int64 {
	t.Helper()

	// Unscoped so leftover soft-deleted rows would be counted too.
	var n int64
	require.NoError(t, testDB.Unscoped().Model(model).Where("sku_id = ?", skuID).Count(&n).Error)
	return n
}

func TestSubmitApprovePublishes(t *testing.T) {
	svc := newPipeline(t)
	supplier := newSupplier()

	listing, err := svc.SaveDraft(supplier, models.DomainGemstone, gemstoneRequest())
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(listing.SKUID, "GEM-"))

	_, err = svc.Submit(supplier, listing.SKUID)
	require.NoError(t, err)

	var entry models.QueueEntry
	require.NoError(t, testDB.Where("sku_id = ?", listing.SKUID).First(&entry).Error)
	assert.Equal(t, models.ListingStatusPending, entry.Status)

	approved, err := svc.Approve(uuid.New(), listing.SKUID, nil)
	require.NoError(t, err)
	assert.Equal(t, models.ListingStatusApproved, approved.Status)
	assert.Equal(t, int64(495), approved.PublicPrice) // 450 offer + 10% margin
	assert.Equal(t, models.PriceSourceOffer, approved.PriceSource)

	var record models.PublicationRecord
	require.NoError(t, testDB.Where("sku_id = ?", listing.SKUID).First(&record).Error)
	assert.True(t, record.Visible)
	assert.Equal(t, int64(495), record.PublicPrice)

	assert.Zero(t, countRows(t, &models.QueueEntry{}, listing.SKUID))

	var buckets []models.CatalogIndexEntry
	require.NoError(t, testDB.Where("sku_id = ?", listing.SKUID).Find(&buckets).Error)
	assert.NotEmpty(t, buckets)
}

func TestReApproveIsIdempotent(t *testing.T) {
	svc := newPipeline(t)
	listing := approvedListing(t, svc, newSupplier())

	again, err := svc.Approve(uuid.New(), listing.SKUID, nil)
	require.NoError(t, err)
	assert.Equal(t, listing.PublicPrice, again.PublicPrice)

	// Exactly one publication row, including any soft-deleted leftovers a
	// scoped delete would have stranded under the unique sku_id index.
	assert.Equal(t, int64(1), countRows(t, &models.PublicationRecord{}, listing.SKUID))
	assert.Zero(t, countRows(t, &models.QueueEntry{}, listing.SKUID))
}

func TestResubmitAfterApproveSurvivesTwoCycles(t *testing.T) {
	svc := newPipeline(t)
	supplier := newSupplier()
	listing := approvedListing(t, svc, supplier)

	// Re-submit unpublishes and recreates the queue entry under the same SKU.
	resubmitted, err := svc.Submit(supplier, listing.SKUID)
	require.NoError(t, err)
	assert.Equal(t, models.ListingStatusPending, resubmitted.Status)
	assert.Equal(t, int64(1), countRows(t, &models.QueueEntry{}, listing.SKUID))
	assert.Zero(t, countRows(t, &models.PublicationRecord{}, listing.SKUID))

	// Second full cycle recreates the publication and index rows.
	_, err = svc.Approve(uuid.New(), listing.SKUID, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), countRows(t, &models.PublicationRecord{}, listing.SKUID))
	assert.Zero(t, countRows(t, &models.QueueEntry{}, listing.SKUID))
}

func TestEditWhilePendingRefreshesQueueEntry(t *testing.T) {
	svc := newPipeline(t)
	supplier := newSupplier()

	listing, err := svc.SaveDraft(supplier, models.DomainGemstone, gemstoneRequest())
	require.NoError(t, err)
	_, err = svc.Submit(supplier, listing.SKUID)
	require.NoError(t, err)

	req := gemstoneRequest()
	req.Attributes["stone_type"] = "emerald"
	_, err = svc.UpdateListing(supplier, listing.SKUID, req)
	require.NoError(t, err)

	var entry models.QueueEntry
	require.NoError(t, testDB.Where("sku_id = ?", listing.SKUID).First(&entry).Error)
	assert.Contains(t, entry.Title, "Emerald")
	assert.Equal(t, int64(1), countRows(t, &models.QueueEntry{}, listing.SKUID))
}

func TestEditOnApprovedListingUnpublishes(t *testing.T) {
	svc := newPipeline(t)
	supplier := newSupplier()
	listing := approvedListing(t, svc, supplier)

	updated, err := svc.UpdateListing(supplier, listing.SKUID, gemstoneRequest())
	require.NoError(t, err)
	assert.Equal(t, models.ListingStatusPending, updated.Status)
	assert.Zero(t, countRows(t, &models.PublicationRecord{}, listing.SKUID))
	assert.Equal(t, int64(1), countRows(t, &models.QueueEntry{}, listing.SKUID))
}

func TestMediaEditOnApprovedListingUnpublishes(t *testing.T) {
	svc := newPipeline(t)
	supplier := newSupplier()
	listing := approvedListing(t, svc, supplier)

	media := models.MediaAssets{{
		ID:        uuid.New().String(),
		Kind:      models.MediaKindImage,
		URL:       "https://cdn.example.com/cover.jpg",
		CreatedAt: time.Now(),
		UpdatedAt: time.Now(),
	}}

	saved, err := svc.SaveMedia(supplier, listing.SKUID, media)
	require.NoError(t, err)
	assert.Equal(t, models.ListingStatusPending, saved.Status)
	assert.Zero(t, countRows(t, &models.PublicationRecord{}, listing.SKUID))

	var entry models.QueueEntry
	require.NoError(t, testDB.Where("sku_id = ?", listing.SKUID).First(&entry).Error)
	assert.Equal(t, models.ListingStatusPending, entry.Status)
}

func TestSendBackReturnsListingToPending(t *testing.T) {
	svc := newPipeline(t)
	supplier := newSupplier()
	listing := approvedListing(t, svc, supplier)

	reason := "certificate photo is unreadable"
	sentBack, err := svc.SendBack(uuid.New(), listing.SKUID, reason, "")
	require.NoError(t, err)
	assert.Equal(t, models.ListingStatusPending, sentBack.Status)
	assert.Zero(t, countRows(t, &models.PublicationRecord{}, listing.SKUID))

	var entry models.QueueEntry
	require.NoError(t, testDB.Where("sku_id = ?", listing.SKUID).First(&entry).Error)
	assert.Equal(t, models.ListingStatusSupplierReview, entry.Status)

	var notification models.SupplierNotification
	require.NoError(t, testDB.Where("sku_id = ?", listing.SKUID).First(&notification).Error)
	assert.Equal(t, models.NotificationTypeSendBack, notification.Type)
	assert.Equal(t, reason, notification.Message)
	assert.False(t, notification.Read)
}

func TestRejectClearsQueueAndStoresReason(t *testing.T) {
	svc := newPipeline(t)
	supplier := newSupplier()

	listing, err := svc.SaveDraft(supplier, models.DomainGemstone, gemstoneRequest())
	require.NoError(t, err)
	_, err = svc.Submit(supplier, listing.SKUID)
	require.NoError(t, err)

	rejected, err := svc.Reject(uuid.New(), listing.SKUID, "origin claim unverifiable", "")
	require.NoError(t, err)
	assert.Equal(t, models.ListingStatusRejected, rejected.Status)
	assert.Equal(t, "origin claim unverifiable", rejected.RejectionReason)
	assert.Zero(t, countRows(t, &models.QueueEntry{}, listing.SKUID))

	var notification models.SupplierNotification
	require.NoError(t, testDB.Where("sku_id = ?", listing.SKUID).First(&notification).Error)
	assert.Equal(t, models.NotificationTypeRejected, notification.Type)
}

func TestAllocateIssuesSequentialSKUs(t *testing.T) {
	svc := newPipeline(t)
	supplier := newSupplier()

	first, err := svc.SaveDraft(supplier, models.DomainGemstone, gemstoneRequest())
	require.NoError(t, err)
	second, err := svc.SaveDraft(supplier, models.DomainGemstone, gemstoneRequest())
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(first.SKUID, "-00001"), first.SKUID)
	assert.True(t, strings.HasSuffix(second.SKUID, "-00002"), second.SKUID)
}

func TestOwnershipIsEnforcedAcrossTenants(t *testing.T) {
	svc := newPipeline(t)
	owner := newSupplier()

	listing, err := svc.SaveDraft(owner, models.DomainGemstone, gemstoneRequest())
	require.NoError(t, err)

	_, err = svc.GetListing(newSupplier(), listing.SKUID)
	require.Error(t, err)
	assert.Equal(t, ErrCodeAccessDenied, CodeOf(err))
}
