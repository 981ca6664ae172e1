// internal/services/sku_service.go
package services

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/ratnasetu/marketplace-backend/internal/config"
	"github.com/ratnasetu/marketplace-backend/internal/models"
)

type SKUService struct {
	db     *gorm.DB
	config *config.Config
}

func NewSKUService(db *gorm.DB, config *config.Config) *SKUService {
	return &SKUService{
		db:     db,
		config: config,
	}
}

// Allocate issues the next SKU for a (tenant, supplier, domain) triple. The
// counter increment is a compare-and-swap, not a read-then-write: under
// contention the swap fails and is retried up to the configured budget. When
// the budget is exhausted the caller must not create a listing; no SKU is
// reserved but lost.
func (s *SKUService) Allocate(tenantID, supplierID string, domain models.ProductDomain, prefix string) (string, error) {
	for attempt := 0; attempt < s.config.SKU.RetryBudget; attempt++ {
		value, err := s.tryIncrement(tenantID, supplierID, domain)
		if err != nil {
			return "", err
		}
		if value > 0 {
			return FormatSKU(prefix, tenantID, value, s.config.SKU.CounterWidth), nil
		}
	}

	return "", pipelineError(ErrCodeAllocationConflict, "", "allocate",
		fmt.Sprintf("SKU counter contention for %s/%s/%s, retry budget exhausted", tenantID, supplierID, domain), nil)
}

// tryIncrement returns the claimed counter value, or 0 when the CAS lost a
// race and should be retried.
func (s *SKUService) tryIncrement(tenantID, supplierID string, domain models.ProductDomain) (int64, error) {
	var counter models.SKUCounter
	err := s.db.Where("tenant_id = ? AND supplier_id = ? AND domain = ?", tenantID, supplierID, domain).
		First(&counter).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		counter = models.SKUCounter{
			TenantID:   tenantID,
			SupplierID: supplierID,
			Domain:     domain,
			Counter:    1,
		}
		if createErr := s.db.Create(&counter).Error; createErr != nil {
			// Lost the race to create the first row; retry via the CAS path.
			return 0, nil
		}
		return 1, nil
	}
	if err != nil {
		return 0, fmt.Errorf("failed to read SKU counter: %w", err)
	}

	next := counter.Counter + 1
	result := s.db.Model(&models.SKUCounter{}).
		Where("id = ? AND counter = ?", counter.ID, counter.Counter).
		Update("counter", next)
	if result.Error != nil {
		return 0, fmt.Errorf("failed to advance SKU counter: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return 0, nil
	}

	return next, nil
}

// FormatSKU builds the human-readable identifier: domain prefix, tenant short
// code and zero-padded counter, e.g. GEM-RSJL88-00042.
func FormatSKU(prefix, tenantID string, counter int64, width int) string {
	return fmt.Sprintf("%s-%s-%0*d", prefix, tenantCode(tenantID), width, counter)
}

// tenantCode condenses a tenant identifier (a business registration number)
// into an uppercase alphanumeric short code.
func tenantCode(tenantID string) string {
	var b strings.Builder
	for _, r := range strings.ToUpper(tenantID) {
		if (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
		}
		if b.Len() >= 6 {
			break
		}
	}
	if b.Len() == 0 {
		return "XXXXXX"
	}
	return b.String()
}
