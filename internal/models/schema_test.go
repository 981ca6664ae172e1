// internal/models/schema_test.go
package models

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm/schema"
)

// Every raw query and index in the tree references the sku_id column, so the
// field mapping must never drift (gorm's initialism handling would otherwise
// derive sk_uid from SKUID).
func TestSKUIDMapsToSkuIDColumn(t *testing.T) {
	for _, model := range []interface{}{
		&Listing{},
		&QueueEntry{},
		&PublicationRecord{},
		&CatalogIndexEntry{},
		&SupplierNotification{},
	} {
		parsed, err := schema.Parse(model, &sync.Map{}, schema.NamingStrategy{})
		require.NoError(t, err)

		field := parsed.LookUpField("SKUID")
		require.NotNil(t, field, "%s has no SKUID field", parsed.Name)
		assert.Equal(t, "sku_id", field.DBName, "%s", parsed.Name)
	}
}
