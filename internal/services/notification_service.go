// internal/services/notification_service.go
package services

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ratnasetu/marketplace-backend/internal/config"
	"github.com/ratnasetu/marketplace-backend/internal/models"
	"github.com/ratnasetu/marketplace-backend/internal/utils"
)

type NotificationService struct {
	db     *gorm.DB
	config *config.Config
}

type EmailTemplate struct {
	Subject string
	Body    string
}

func NewNotificationService(db *gorm.DB, config *config.Config) *NotificationService {
	return &NotificationService{
		db:     db,
		config: config,
	}
}

// CreateInTx writes an unread supplier-inbox record as part of the enclosing
// moderation transaction, so the notification exists iff the transition
// committed.
func (s *NotificationService) CreateInTx(tx *gorm.DB, listing *models.Listing, nType models.NotificationType, message string) error {
	notification := &models.SupplierNotification{
		TenantID:   listing.TenantID,
		SupplierID: listing.SupplierID,
		SKUID:      listing.SKUID,
		Type:       nType,
		Message:    message,
		Read:       false,
	}

	if err := tx.Create(notification).Error; err != nil {
		return fmt.Errorf("failed to create supplier notification: %w", err)
	}

	return nil
}

// ListInbox returns a supplier's notifications, newest first.
func (s *NotificationService) ListInbox(tenantID, supplierID string, unreadOnly bool, params utils.PaginationParams) ([]models.SupplierNotification, int64, error) {
	query := s.db.Model(&models.SupplierNotification{}).
		Where("tenant_id = ? AND supplier_id = ?", tenantID, supplierID)

	if unreadOnly {
		query = query.Where("read = ?", false)
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count notifications: %w", err)
	}

	query = utils.ApplySort(query, params, []string{"created_at"})
	query = utils.ApplyPagination(query, params)

	var notifications []models.SupplierNotification
	if err := query.Find(&notifications).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to fetch notifications: %w", err)
	}

	return notifications, total, nil
}

func (s *NotificationService) MarkRead(tenantID, supplierID string, id uuid.UUID) error {
	result := s.db.Model(&models.SupplierNotification{}).
		Where("id = ? AND tenant_id = ? AND supplier_id = ?", id, tenantID, supplierID).
		Updates(map[string]interface{}{"read": true, "read_at": gorm.Expr("NOW()")})

	if result.Error != nil {
		return fmt.Errorf("failed to mark notification read: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return pipelineError(ErrCodeNotFound, "", "mark_read", "notification not found", nil)
	}

	return nil
}

// Email notifications, best-effort. Supplier contact addresses come from the
// identity provider and are passed in by the caller.

func (s *NotificationService) SendSendBackEmail(email string, listing *models.Listing, reason string) error {
	data := map[string]interface{}{
		"Title":      listing.Title,
		"SKU":        listing.SKUID,
		"Reason":     reason,
		"ListingURL": fmt.Sprintf("%s/supplier/listings/%s", s.config.Frontend.BaseURL, listing.SKUID),
	}

	subject := "Listing Sent Back for Correction - " + listing.SKUID
	tmpl := s.getEmailTemplate("send_back")
	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(email, subject, body)
}

func (s *NotificationService) SendRejectionEmail(email string, listing *models.Listing, reason string) error {
	data := map[string]interface{}{
		"Title":  listing.Title,
		"SKU":    listing.SKUID,
		"Reason": reason,
	}

	subject := "Listing Rejected - " + listing.SKUID
	tmpl := s.getEmailTemplate("rejected")
	body, err := s.renderTemplate(tmpl.Body, data)
	if err != nil {
		return fmt.Errorf("failed to render email template: %w", err)
	}

	return s.sendEmail(email, subject, body)
}

// Helper methods
func (s *NotificationService) sendEmail(to, subject, body string) error {
	if s.config.Email.SMTPHost == "" {
		// Email not configured, just log
		fmt.Printf("Email would be sent to %s: %s\n", to, subject)
		return nil
	}

	// Setup authentication
	auth := smtp.PlainAuth("", s.config.Email.SMTPUsername, s.config.Email.SMTPPassword, s.config.Email.SMTPHost)

	// Compose message
	msg := []byte(fmt.Sprintf("To: %s\r\nSubject: %s\r\nContent-Type: text/html; charset=\"UTF-8\"\r\n\r\n%s", to, subject, body))

	// Send email
	addr := fmt.Sprintf("%s:%s", s.config.Email.SMTPHost, s.config.Email.SMTPPort)
	return smtp.SendMail(addr, auth, s.config.Email.FromEmail, []string{to}, msg)
}

func (s *NotificationService) renderTemplate(templateStr string, data interface{}) (string, error) {
	tmpl, err := template.New("email").Parse(templateStr)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", err
	}

	return buf.String(), nil
}

func (s *NotificationService) getEmailTemplate(templateType string) EmailTemplate {
	templates := map[string]EmailTemplate{
		"send_back": {
			Subject: "Listing Sent Back",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Your listing needs attention</h2>
	<p>Your listing "{{.Title}}" ({{.SKU}}) was sent back for correction:</p>
	<blockquote>{{.Reason}}</blockquote>
	<a href="{{.ListingURL}}">Fix and resubmit</a>
	<p>Best regards,<br>RatnaSetu Team</p>
</body>
</html>`,
		},
		"rejected": {
			Subject: "Listing Rejected",
			Body: `
<!DOCTYPE html>
<html>
<body>
	<h2>Listing rejected</h2>
	<p>Your listing "{{.Title}}" ({{.SKU}}) was rejected:</p>
	<blockquote>{{.Reason}}</blockquote>
	<p>You can edit the listing and submit it again.</p>
	<p>Best regards,<br>RatnaSetu Team</p>
</body>
</html>`,
		},
	}

	if tmpl, exists := templates[templateType]; exists {
		return tmpl
	}

	// Default template
	return EmailTemplate{
		Subject: "Notification",
		Body:    "<p>{{.Message}}</p>",
	}
}
