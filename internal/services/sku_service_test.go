// internal/services/sku_service_test.go
package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatSKU(t *testing.T) {
	assert.Equal(t, "GEM-RSJL88-00042", FormatSKU("GEM", "rsjl-88", 42, 5))
	assert.Equal(t, "JWL-ACME-00001", FormatSKU("JWL", "acme", 1, 5))
	assert.Equal(t, "RUD-RSJL88-100000", FormatSKU("RUD", "rsjl-88", 100000, 5))
}

func TestTenantCodeCondensesIdentifier(t *testing.T) {
	assert.Equal(t, "RSJL88", tenantCode("rsjl-88-xyz"))
	assert.Equal(t, "ACME", tenantCode("acme"))
	assert.Equal(t, "A1B2C3", tenantCode("a1:b2:c3:d4"))
}

func TestTenantCodeFallback(t *testing.T) {
	assert.Equal(t, "XXXXXX", tenantCode(""))
	assert.Equal(t, "XXXXXX", tenantCode("----"))
}
