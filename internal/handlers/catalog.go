// internal/handlers/catalog.go
package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/ratnasetu/marketplace-backend/internal/domain"
	"github.com/ratnasetu/marketplace-backend/internal/models"
	"github.com/ratnasetu/marketplace-backend/internal/services"
	"github.com/ratnasetu/marketplace-backend/internal/utils"
)

// CatalogHandler serves the public, unauthenticated storefront reads.
type CatalogHandler struct {
	catalogService *services.CatalogService
}

func NewCatalogHandler(catalogService *services.CatalogService) *CatalogHandler {
	return &CatalogHandler{
		catalogService: catalogService,
	}
}

func parseDomain(c *gin.Context) (models.ProductDomain, bool) {
	adapter, err := domain.ForDomain(models.ProductDomain(c.Param("domain")))
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return "", false
	}
	return adapter.Domain(), true
}

// GET /catalog/domains
func (h *CatalogHandler) GetDomains(c *gin.Context) {
	utils.SuccessResponse(c, gin.H{"domains": domain.Domains()})
}

// GET /catalog/:domain
func (h *CatalogHandler) GetItems(c *gin.Context) {
	productDomain, ok := parseDomain(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)

	items, total, err := h.catalogService.ListByDomain(c.Request.Context(), productDomain, params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := utils.CreatePaginationResult(items, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /catalog/:domain/items/:sku
func (h *CatalogHandler) GetItem(c *gin.Context) {
	productDomain, ok := parseDomain(c)
	if !ok {
		return
	}

	item, err := h.catalogService.GetPublication(c.Request.Context(), productDomain, c.Param("sku"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"item":             item,
		"price_on_request": item.PriceOnRequest(),
	})
}

// GET /catalog/:domain/tags/:tag
func (h *CatalogHandler) GetItemsByTag(c *gin.Context) {
	h.listByBucket(c, models.IndexBucketTag, c.Param("tag"))
}

// GET /catalog/:domain/categories/:category
func (h *CatalogHandler) GetItemsByCategory(c *gin.Context) {
	h.listByBucket(c, models.IndexBucketCategory, c.Param("category"))
}

func (h *CatalogHandler) listByBucket(c *gin.Context, bucket models.IndexBucket, key string) {
	productDomain, ok := parseDomain(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)

	items, total, err := h.catalogService.ListByBucket(c.Request.Context(), productDomain, bucket, key, params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := utils.CreatePaginationResult(items, total, params)
	utils.PaginatedResponse(c, result)
}
