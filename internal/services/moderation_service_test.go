// internal/services/moderation_service_test.go
package services

import (
	"errors"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratnasetu/marketplace-backend/internal/config"
	"github.com/ratnasetu/marketplace-backend/internal/models"
)

func TestCanSubmit(t *testing.T) {
	cases := map[models.ListingStatus]bool{
		models.ListingStatusDraft:    true,
		models.ListingStatusRejected: true,
		models.ListingStatusApproved: true,
		models.ListingStatusPending:  false,
	}

	for status, want := range cases {
		assert.Equal(t, want, canSubmit(status), "status %s", status)
	}
}

func TestRejectRequiresReasonBeforeAnyWrite(t *testing.T) {
	// A nil db proves the reason check fires before the first read.
	svc := &ModerationService{}

	for _, reason := range []string{"", "   ", "\t\n"} {
		_, err := svc.Reject(uuid.New(), "GEM-T-00001", reason, "")
		require.Error(t, err)
		assert.Equal(t, ErrCodeValidationFailed, CodeOf(err))
	}
}

func TestSendBackRequiresReasonBeforeAnyWrite(t *testing.T) {
	svc := &ModerationService{}

	_, err := svc.SendBack(uuid.New(), "GEM-T-00001", "  ", "")
	require.Error(t, err)
	assert.Equal(t, ErrCodeValidationFailed, CodeOf(err))
}

func TestEffectiveMarginPrecedence(t *testing.T) {
	svc := &ModerationService{config: &config.Config{
		Pricing: config.PricingConfig{DefaultMarginPct: 15},
	}}

	assert.Equal(t, 15.0, svc.effectiveMargin(&models.Listing{}))
	assert.Equal(t, 22.5, svc.effectiveMargin(&models.Listing{AdminMarginPct: 22.5}))
}

func TestPipelineErrorCarriesContext(t *testing.T) {
	err := writeConflictError("GEM-T-00042", "approve")

	assert.Contains(t, err.Error(), "GEM-T-00042")
	assert.Contains(t, err.Error(), "approve")
	assert.Equal(t, ErrCodeWriteConflict, CodeOf(err))
}

func TestCodeOfUnwrapsWrappedErrors(t *testing.T) {
	inner := notFoundError("RUD-T-00007", "get")
	wrapped := fmt.Errorf("loading listing: %w", inner)

	assert.Equal(t, ErrCodeNotFound, CodeOf(wrapped))
	assert.Equal(t, ErrorCode(""), CodeOf(errors.New("plain")))
}
