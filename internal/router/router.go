// internal/router/router.go
package router

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"

	"github.com/ratnasetu/marketplace-backend/internal/cache"
	"github.com/ratnasetu/marketplace-backend/internal/config"
	"github.com/ratnasetu/marketplace-backend/internal/handlers"
	"github.com/ratnasetu/marketplace-backend/internal/middleware"
	"github.com/ratnasetu/marketplace-backend/internal/services"
	"github.com/ratnasetu/marketplace-backend/internal/utils"
)

func Initialize(db *gorm.DB, cfg *config.Config) *gin.Engine {
	// Initialize services
	catalogCache := cache.New(cfg.Redis)
	notificationService := services.NewNotificationService(db, cfg)
	skuService := services.NewSKUService(db, cfg)

	mediaService, err := services.NewMediaService(cfg)
	if err != nil {
		logrus.WithError(err).Fatal("Failed to initialize media service")
	}

	moderationService := services.NewModerationService(db, skuService, mediaService, notificationService, catalogCache, cfg)
	catalogService := services.NewCatalogService(db, catalogCache)

	// Initialize handlers
	supplierHandler := handlers.NewSupplierHandler(moderationService, mediaService, notificationService)
	adminHandler := handlers.NewAdminHandler(moderationService, db)
	catalogHandler := handlers.NewCatalogHandler(catalogService)

	// Set JWT secret
	utils.SetJWTSecret(cfg.JWT.SecretKey)

	// Initialize Gin router
	r := gin.New()

	// Global middleware
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger())
	r.Use(middleware.CORS(cfg.Server.AllowedOrigins))
	r.Use(middleware.I18nMiddleware())
	r.Use(middleware.GeneralRateLimit())
	r.Use(middleware.AuditLogMiddleware(db))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": "1.0.0",
		})
	})

	// API v1 routes
	v1 := r.Group("/v1")
	{
		// Supplier routes
		supplier := v1.Group("/supplier")
		supplier.Use(middleware.AuthRequired(), middleware.SupplierRequired())
		{
			supplier.POST("/:domain/listings", supplierHandler.CreateListing)

			listings := supplier.Group("/listings")
			{
				listings.GET("", supplierHandler.GetListings)
				listings.GET("/:sku", supplierHandler.GetListing)
				listings.PUT("/:sku", supplierHandler.UpdateListing)
				listings.DELETE("/:sku", supplierHandler.DeleteListing)
				listings.POST("/:sku/submit", supplierHandler.SubmitListing)

				listings.POST("/:sku/media", middleware.UploadRateLimit(), supplierHandler.UploadMedia)
				listings.PUT("/:sku/media/order", supplierHandler.ReorderMedia)
				listings.PUT("/:sku/media/:assetId", middleware.UploadRateLimit(), supplierHandler.ReplaceMedia)
				listings.DELETE("/:sku/media/:assetId", supplierHandler.DeleteMedia)
			}

			notifications := supplier.Group("/notifications")
			{
				notifications.GET("", supplierHandler.GetNotifications)
				notifications.POST("/:id/read", supplierHandler.MarkNotificationRead)
			}
		}

		// Admin routes
		admin := v1.Group("/admin")
		admin.Use(middleware.AuthRequired(), middleware.AdminRequired())
		{
			admin.GET("/queue", adminHandler.GetReviewQueue)
			admin.GET("/audit-logs", adminHandler.GetAuditLogs)

			adminListings := admin.Group("/listings")
			{
				adminListings.GET("/:sku", adminHandler.GetListing)
				adminListings.POST("/:sku/approve", adminHandler.ApproveListing)
				adminListings.POST("/:sku/reject", adminHandler.RejectListing)
				adminListings.POST("/:sku/send-back", adminHandler.SendBackListing)
				adminListings.POST("/:sku/hide", adminHandler.HideListing)
				adminListings.POST("/:sku/unhide", adminHandler.UnhideListing)
			}
		}

		// Public catalog routes
		catalog := v1.Group("/catalog")
		catalog.Use(middleware.CatalogRateLimit())
		{
			catalog.GET("/domains", catalogHandler.GetDomains)
			catalog.GET("/:domain", catalogHandler.GetItems)
			catalog.GET("/:domain/items/:sku", catalogHandler.GetItem)
			catalog.GET("/:domain/tags/:tag", catalogHandler.GetItemsByTag)
			catalog.GET("/:domain/categories/:category", catalogHandler.GetItemsByCategory)
		}
	}

	return r
}
