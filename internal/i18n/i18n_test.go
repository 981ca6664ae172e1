// internal/i18n/i18n_test.go
package i18n

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTranslationFallback(t *testing.T) {
	require.NoError(t, Initialize(""))

	// Built-in English catalog answers directly.
	assert.Equal(t, "Listing not found", T("en", KeyListingNotFound))

	// Unknown languages fall back to English.
	assert.Equal(t, "Listing not found", T("hi", KeyListingNotFound))

	// Unknown keys come back verbatim.
	assert.Equal(t, "no.such.key", T("en", "no.such.key"))
}

func TestTranslationFormatting(t *testing.T) {
	require.NoError(t, Initialize(""))

	assert.Equal(t, "Invalid input", T("en", KeyValidationInvalid, "input"))
}
