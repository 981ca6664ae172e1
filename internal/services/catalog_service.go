// internal/services/catalog_service.go
package services

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/ratnasetu/marketplace-backend/internal/cache"
	"github.com/ratnasetu/marketplace-backend/internal/models"
	"github.com/ratnasetu/marketplace-backend/internal/utils"
)

// CatalogService serves the public, read-only catalog surface. It only ever
// sees publication records, never supplier submissions, and reads through the
// Redis cache with a database fallback.
type CatalogService struct {
	db           *gorm.DB
	catalogCache *cache.Cache
}

type catalogPage struct {
	Items []models.PublicationRecord `json:"items"`
	Total int64                      `json:"total"`
}

func NewCatalogService(db *gorm.DB, catalogCache *cache.Cache) *CatalogService {
	return &CatalogService{
		db:           db,
		catalogCache: catalogCache,
	}
}

// GetPublication returns one visible catalog item. Hidden and unpublished SKUs
// are indistinguishable from missing ones.
func (s *CatalogService) GetPublication(ctx context.Context, productDomain models.ProductDomain, skuID string) (*models.PublicationRecord, error) {
	key := cache.PublicationKey(string(productDomain), skuID)

	var cached models.PublicationRecord
	if s.catalogCache.GetJSON(ctx, key, &cached) {
		if !cached.Visible {
			return nil, notFoundError(skuID, "catalog_get")
		}
		return &cached, nil
	}

	var record models.PublicationRecord
	err := s.db.Where("domain = ? AND sku_id = ?", productDomain, skuID).First(&record).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, notFoundError(skuID, "catalog_get")
		}
		return nil, fmt.Errorf("failed to read publication: %w", err)
	}

	s.catalogCache.SetJSON(ctx, key, &record)

	if !record.Visible {
		return nil, notFoundError(skuID, "catalog_get")
	}

	return &record, nil
}

// ListByDomain returns visible items of one domain, newest publication first.
func (s *CatalogService) ListByDomain(ctx context.Context, productDomain models.ProductDomain, params utils.PaginationParams) ([]models.PublicationRecord, int64, error) {
	key := cache.BucketKey(string(productDomain), "all", "", params.Page, params.Limit)

	var page catalogPage
	if s.catalogCache.GetJSON(ctx, key, &page) {
		return page.Items, page.Total, nil
	}

	query := s.db.Model(&models.PublicationRecord{}).
		Where("domain = ? AND visible = ?", productDomain, true)

	items, total, err := s.runListQuery(query, params)
	if err != nil {
		return nil, 0, err
	}

	s.catalogCache.SetJSON(ctx, key, &catalogPage{Items: items, Total: total})
	return items, total, nil
}

// ListByBucket returns the visible members of one tag or category bucket.
func (s *CatalogService) ListByBucket(ctx context.Context, productDomain models.ProductDomain, bucket models.IndexBucket,
	bucketKey string, params utils.PaginationParams) ([]models.PublicationRecord, int64, error) {

	key := cache.BucketKey(string(productDomain), string(bucket), bucketKey, params.Page, params.Limit)

	var page catalogPage
	if s.catalogCache.GetJSON(ctx, key, &page) {
		return page.Items, page.Total, nil
	}

	query := s.db.Model(&models.PublicationRecord{}).
		Joins("JOIN catalog_index_entries ON catalog_index_entries.sku_id = publication_records.sku_id").
		Where("catalog_index_entries.domain = ? AND catalog_index_entries.bucket = ? AND catalog_index_entries.key = ?",
			productDomain, bucket, bucketKey).
		Where("publication_records.visible = ?", true)

	items, total, err := s.runListQuery(query, params)
	if err != nil {
		return nil, 0, err
	}

	s.catalogCache.SetJSON(ctx, key, &catalogPage{Items: items, Total: total})
	return items, total, nil
}

func (s *CatalogService) runListQuery(query *gorm.DB, params utils.PaginationParams) ([]models.PublicationRecord, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count publications: %w", err)
	}

	query = query.Order("published_at DESC")
	query = utils.ApplyPagination(query, params)

	var items []models.PublicationRecord
	if err := query.Find(&items).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch publications: %w", err)
	}

	return items, total, nil
}
