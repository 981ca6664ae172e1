// internal/handlers/admin.go
package handlers

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ratnasetu/marketplace-backend/internal/i18n"
	"github.com/ratnasetu/marketplace-backend/internal/models"
	"github.com/ratnasetu/marketplace-backend/internal/services"
	"github.com/ratnasetu/marketplace-backend/internal/utils"
)

type AdminHandler struct {
	moderationService *services.ModerationService
	db                *gorm.DB
}

func NewAdminHandler(moderationService *services.ModerationService, db *gorm.DB) *AdminHandler {
	return &AdminHandler{
		moderationService: moderationService,
		db:                db,
	}
}

func adminFromContext(c *gin.Context) (uuid.UUID, bool) {
	userIDStr, exists := utils.GetUserIDFromContext(c)
	if !exists {
		utils.UnauthorizedResponse(c, "")
		return uuid.Nil, false
	}

	adminID, err := uuid.Parse(userIDStr)
	if err != nil {
		utils.BadRequestResponse(c, "Invalid user ID", nil)
		return uuid.Nil, false
	}

	return adminID, true
}

// GET /admin/queue
func (h *AdminHandler) GetReviewQueue(c *gin.Context) {
	params := utils.GetPaginationParams(c)
	if params.Sort == "created_at" {
		params.Sort = "submitted_at"
	}

	filter := services.QueueFilter{PaginationParams: params}

	if d := c.Query("domain"); d != "" {
		pd := models.ProductDomain(d)
		filter.Domain = &pd
	}
	if s := c.Query("status"); s != "" {
		st := models.ListingStatus(s)
		filter.Status = &st
	}

	entries, total, err := h.moderationService.ListReviewQueue(filter)
	if err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := utils.CreatePaginationResult(entries, total, params)
	utils.PaginatedResponse(c, result)
}

// GET /admin/listings/:sku
func (h *AdminHandler) GetListing(c *gin.Context) {
	listing, err := h.moderationService.GetListingForAdmin(c.Param("sku"))
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"listing": listing})
}

// POST /admin/listings/:sku/approve
func (h *AdminHandler) ApproveListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	adminID, ok := adminFromContext(c)
	if !ok {
		return
	}

	var req struct {
		MarginPct *float64 `json:"margin_pct,omitempty"`
	}
	if c.Request.ContentLength > 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
			return
		}
	}

	listing, err := h.moderationService.Approve(adminID, c.Param("sku"), req.MarginPct)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"listing": listing,
		"message": i18n.T(lang, i18n.KeyListingApproved),
	})
}

// POST /admin/listings/:sku/reject
func (h *AdminHandler) RejectListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	adminID, ok := adminFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Reason        string `json:"reason"`
		SupplierEmail string `json:"supplier_email,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	listing, err := h.moderationService.Reject(adminID, c.Param("sku"), req.Reason, req.SupplierEmail)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"listing": listing,
		"message": i18n.T(lang, i18n.KeyListingRejected),
	})
}

// POST /admin/listings/:sku/send-back
func (h *AdminHandler) SendBackListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	adminID, ok := adminFromContext(c)
	if !ok {
		return
	}

	var req struct {
		Reason        string `json:"reason"`
		SupplierEmail string `json:"supplier_email,omitempty"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequestResponse(c, i18n.T(lang, i18n.KeyValidationInvalid, "input"), err.Error())
		return
	}

	listing, err := h.moderationService.SendBack(adminID, c.Param("sku"), req.Reason, req.SupplierEmail)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{
		"listing": listing,
		"message": i18n.T(lang, i18n.KeyListingSentBack),
	})
}

// POST /admin/listings/:sku/hide
func (h *AdminHandler) HideListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	adminID, ok := adminFromContext(c)
	if !ok {
		return
	}

	if err := h.moderationService.Hide(adminID, c.Param("sku")); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyListingHidden)})
}

// POST /admin/listings/:sku/unhide
func (h *AdminHandler) UnhideListing(c *gin.Context) {
	lang := utils.GetLangFromContext(c)
	adminID, ok := adminFromContext(c)
	if !ok {
		return
	}

	if err := h.moderationService.Unhide(adminID, c.Param("sku")); err != nil {
		respondServiceError(c, err)
		return
	}

	utils.SuccessResponse(c, gin.H{"message": i18n.T(lang, i18n.KeyListingUnhidden)})
}

// GET /admin/audit-logs
func (h *AdminHandler) GetAuditLogs(c *gin.Context) {
	params := utils.GetPaginationParams(c)

	query := h.db.Model(&models.AuditLog{})

	if resourceType := c.Query("resource_type"); resourceType != "" {
		query = query.Where("resource_type = ?", resourceType)
	}
	if skuID := c.Query("sku"); skuID != "" {
		query = query.Where("resource_id = ?", skuID)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	query = utils.ApplySort(query, params, []string{"created_at", "action"})
	query = utils.ApplyPagination(query, params)

	var logs []models.AuditLog
	if err := query.Find(&logs).Error; err != nil {
		utils.InternalErrorResponse(c, "")
		return
	}

	result := utils.CreatePaginationResult(logs, total, params)
	utils.PaginatedResponse(c, result)
}
