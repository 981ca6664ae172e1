// internal/i18n/keys.go
package i18n

// Translation keys constants
const (
	// Common
	KeySuccess = "success"
	KeyError   = "error"

	// Authentication
	KeyAuthRequired     = "auth.required"
	KeyAuthInvalidToken = "auth.invalid_token"
	KeyAuthTokenExpired = "auth.token_expired"
	KeyAccessDenied     = "auth.access_denied"

	// Listings
	KeyListingCreated       = "listing.created"
	KeyListingUpdated       = "listing.updated"
	KeyListingDeleted       = "listing.deleted"
	KeyListingNotFound      = "listing.not_found"
	KeyListingSubmitted     = "listing.submitted"
	KeyListingApproved      = "listing.approved"
	KeyListingRejected      = "listing.rejected"
	KeyListingSentBack      = "listing.sent_back"
	KeyListingHidden        = "listing.hidden"
	KeyListingUnhidden      = "listing.unhidden"
	KeyListingSKUExhausted  = "listing.sku_exhausted"
	KeyListingWriteConflict = "listing.write_conflict"

	// Catalog
	KeyCatalogNotFound = "catalog.not_found"

	// Notifications
	KeyNotificationNotFound = "notification.not_found"
	KeyNotificationRead     = "notification.read"

	// Validation
	KeyValidationRequired = "validation.required"
	KeyValidationInvalid  = "validation.invalid"

	// File Upload
	KeyFileUploadSuccess = "file.upload_success"
	KeyFileUploadFailed  = "file.upload_failed"
	KeyFileInvalidType   = "file.invalid_type"
	KeyFileTooLarge      = "file.too_large"
)
