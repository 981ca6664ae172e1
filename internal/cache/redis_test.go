// internal/cache/redis_test.go
package cache

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
)

// A disabled cache (Redis unreachable) must behave as a silent miss on every
// operation so callers always have the database fallback.
func TestDisabledCacheIsSafe(t *testing.T) {
	c := &Cache{}
	ctx := context.Background()

	var dest map[string]string
	assert.False(t, c.GetJSON(ctx, "k", &dest))

	c.SetJSON(ctx, "k", map[string]string{"a": "b"})
	c.Delete(ctx, "k")
	c.DeleteByPrefix(ctx, "catalog:")

	assert.False(t, c.GetJSON(ctx, "k", &dest))
}

func TestKeyHelpers(t *testing.T) {
	assert.Equal(t, "catalog:gemstone:sku:GEM-T-00001", PublicationKey("gemstone", "GEM-T-00001"))
	assert.Equal(t, "catalog:gemstone:list:", BucketPrefix("gemstone"))
	assert.Equal(t, "catalog:gemstone:list:tag:ruby:p2:l20", BucketKey("gemstone", "tag", "ruby", 2, 20))
}
