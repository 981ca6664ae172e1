// internal/handlers/supplier.go
package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/ratnasetu/marketplace-backend/internal/domain"
	"github.com/ratnasetu/marketplace-backend/internal/i18n"
	"github.com/ratnasetu/marketplace-backend/internal/models"
	"github.com/ratnasetu/marketplace-backend/internal/services"
	"github.com/ratnasetu/marketplace-backend/internal/utils"
)

type SupplierHandler struct {
	moderationService   *services.ModerationService
	mediaService        *services.MediaService
	notificationService *services.NotificationService
}

func NewSupplierHandler(moderationService *services.ModerationService, mediaService *services.MediaService,
	notificationService *services.NotificationService) *SupplierHandler {
	return &SupplierHandler{
		moderationService:   moderationService,
		mediaService:        mediaService,
		notificationService: notificationService,
	}
}

func supplierFromContext(c *gin.Context) (services.SupplierIdentity, bool) {
	tenantID, hasTenant := utils.GetTenantIDFromContext(c)
	supplierID, hasSupplier := utils.GetSupplierIDFromContext(c)
	if !hasTenant || !hasSupplier {
		utils.ForbiddenResponse(c, "")
		return services.SupplierIdentity{}, false
	}
	return services.SupplierIdentity{TenantID: tenantID, SupplierID: supplierID}, true
}

// POST /supplier/:domain/listings
func (h *SupplierHandler) CreateListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	supplier, ok := supplierFromContext(c)
	if !ok {
		return
	}

	adapter, err := domain.ForDomain(models.ProductDomain(c.Param("domain")))
	if err != nil {
		utils.BadRequestResponse(c, err.Error(), nil)
		return
	}

	var req services.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	listing, err := h.moderationService.SaveDraft(supplier, adapter.Domain(), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"listing": listing,
		"message": i18n.T(lang, i18n.KeyListingCreated),
	})
}

// GET /supplier/listings
func (h *SupplierHandler) GetListings(c *gin.Context) {
	supplier, ok := supplierFromContext(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)

	var productDomain *models.ProductDomain
	if d := c.Query("domain"); d != "" {
		pd := models.ProductDomain(d)
		productDomain = &pd
	}

	var status *models.ListingStatus
	if s := c.Query("status"); s != "" {
		st := models.ListingStatus(s)
		status = &st
	}

	listings, total, err := h.moderationService.ListSupplierListings(supplier, productDomain, status, params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := utils.CreatePaginationResult(listings, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /supplier/listings/:sku
func (h *SupplierHandler) GetListing(c *gin.Context) {
	supplier, ok := supplierFromContext(c)
	if !ok {
		return
	}

	listing, err := h.moderationService.GetListing(supplier, c.Param("sku"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"listing": listing})
}

// PUT /supplier/listings/:sku
func (h *SupplierHandler) UpdateListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	supplier, ok := supplierFromContext(c)
	if !ok {
		return
	}

	var req services.ListingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	listing, err := h.moderationService.UpdateListing(supplier, c.Param("sku"), &req)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"listing": listing,
		"message": i18n.T(lang, i18n.KeyListingUpdated),
	})
}

// DELETE /supplier/listings/:sku
func (h *SupplierHandler) DeleteListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	supplier, ok := supplierFromContext(c)
	if !ok {
		return
	}

	if err := h.moderationService.DeleteListing(supplier, c.Param("sku")); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyListingDeleted)})
}

// POST /supplier/listings/:sku/submit
func (h *SupplierHandler) SubmitListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	supplier, ok := supplierFromContext(c)
	if !ok {
		return
	}

	listing, err := h.moderationService.Submit(supplier, c.Param("sku"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"listing": listing,
		"message": i18n.T(lang, i18n.KeyListingSubmitted),
	})
}

// POST /supplier/listings/:sku/media
func (h *SupplierHandler) UploadMedia(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	supplier, ok := supplierFromContext(c)
	if !ok {
		return
	}

	skuID := c.Param("sku")
	listing, err := h.moderationService.GetListing(supplier, skuID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	kind := models.MediaKind(c.DefaultPostForm("kind", string(models.MediaKindImage)))
	switch kind {
	case models.MediaKindImage, models.MediaKindVideo, models.MediaKindCertificate:
	default:
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "kind"), nil)
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "file"), nil)
		return
	}
	defer file.Close()

	asset, err := h.mediaService.Upload(supplier.TenantID, listing.Domain, skuID, kind, file, header, listing.Media)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	updated, err := h.moderationService.SaveMedia(supplier, skuID, append(listing.Media, *asset))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.CreatedResponse(c, gin.H{
		"asset":   asset,
		"listing": updated,
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
	})
}

// PUT /supplier/listings/:sku/media/:assetId
func (h *SupplierHandler) ReplaceMedia(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	supplier, ok := supplierFromContext(c)
	if !ok {
		return
	}

	skuID := c.Param("sku")
	assetID := c.Param("assetId")

	listing, err := h.moderationService.GetListing(supplier, skuID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	index := -1
	for i, a := range listing.Media {
		if a.ID == assetID {
			index = i
			break
		}
	}
	if index < 0 {
		utils.NotFoundResponse(c, "listing")
		return
	}

	file, header, err := c.Request.FormFile("file")
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationRequired, "file"), nil)
		return
	}
	defer file.Close()

	replaced, err := h.mediaService.Replace(supplier.TenantID, listing.Domain, skuID, listing.Media[index], file, header)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	media := make(models.MediaAssets, len(listing.Media))
	copy(media, listing.Media)
	media[index] = *replaced

	updated, err := h.moderationService.SaveMedia(supplier, skuID, media)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"asset":   replaced,
		"listing": updated,
		"message": i18n.T(lang, i18n.KeyFileUploadSuccess),
	})
}

// DELETE /supplier/listings/:sku/media/:assetId
func (h *SupplierHandler) DeleteMedia(c *gin.Context) {
	supplier, ok := supplierFromContext(c)
	if !ok {
		return
	}

	skuID := c.Param("sku")

	listing, err := h.moderationService.GetListing(supplier, skuID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	remaining, err := h.mediaService.Remove(listing.Media, c.Param("assetId"), true)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	updated, err := h.moderationService.SaveMedia(supplier, skuID, remaining)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"listing": updated})
}

// PUT /supplier/listings/:sku/media/order
func (h *SupplierHandler) ReorderMedia(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	supplier, ok := supplierFromContext(c)
	if !ok {
		return
	}

	skuID := c.Param("sku")

	var req struct {
		AssetIDs []string `json:"asset_ids"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	listing, err := h.moderationService.GetListing(supplier, skuID)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	byID := make(map[string]models.MediaAsset, len(listing.Media))
	for _, a := range listing.Media {
		byID[a.ID] = a
	}

	if len(req.AssetIDs) != len(byID) {
		utils.BadRequestResponse(c, "asset_ids must list every media asset exactly once", nil)
		return
	}

	reordered := make(models.MediaAssets, 0, len(req.AssetIDs))
	for _, id := range req.AssetIDs {
		asset, exists := byID[id]
		if !exists {
			utils.BadRequestResponse(c, "unknown media asset: "+id, nil)
			return
		}
		reordered = append(reordered, asset)
		delete(byID, id)
	}

	updated, err := h.moderationService.SaveMedia(supplier, skuID, reordered)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"listing": updated})
}

// GET /supplier/notifications
func (h *SupplierHandler) GetNotifications(c *gin.Context) {
	supplier, ok := supplierFromContext(c)
	if !ok {
		return
	}

	params := utils.GetPaginationParams(c)
	unreadOnly, _ := strconv.ParseBool(c.DefaultQuery("unread_only", "false"))

	notifications, total, err := h.notificationService.ListInbox(supplier.TenantID, supplier.SupplierID, unreadOnly, params)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := utils.CreatePaginationResult(notifications, total, params)
	utils.PaginatedResponse(c, result)
}

// POST /supplier/notifications/:id/read
func (h *SupplierHandler) MarkNotificationRead(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	supplier, ok := supplierFromContext(c)
	if !ok {
		return
	}

	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "notification id"), nil)
		return
	}

	if err := h.notificationService.MarkRead(supplier.TenantID, supplier.SupplierID, id); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyNotificationRead)})
}
