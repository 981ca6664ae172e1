// internal/services/media_service_test.go
package services

import (
	"bytes"
	"mime/multipart"
	"net/textproto"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ratnasetu/marketplace-backend/internal/config"
	"github.com/ratnasetu/marketplace-backend/internal/models"
)

type memoryFile struct {
	*bytes.Reader
}

func (f *memoryFile) Close() error { return nil }

func newTestMediaService() *MediaService {
	// No AWS credentials: blob operations are local no-ops, which is exactly
	// what the pure media-list logic under test needs.
	svc, _ := NewMediaService(&config.Config{})
	return svc
}

func newUpload(name string, size int64) (multipart.File, *multipart.FileHeader) {
	content := bytes.Repeat([]byte("x"), int(size))
	header := &multipart.FileHeader{
		Filename: name,
		Size:     size,
		Header:   textproto.MIMEHeader{"Content-Type": []string{"application/octet-stream"}},
	}
	return &memoryFile{bytes.NewReader(content)}, header
}

func asset(id string, kind models.MediaKind, order int) models.MediaAsset {
	return models.MediaAsset{ID: id, Kind: kind, Order: order, StorageKey: "k/" + id}
}

func assertContiguousPerKind(t *testing.T, assets models.MediaAssets) {
	t.Helper()
	next := map[models.MediaKind]int{}
	for _, a := range assets {
		assert.Equal(t, next[a.Kind], a.Order, "asset %s", a.ID)
		next[a.Kind]++
	}
}

func TestReorderAssignsContiguousOrders(t *testing.T) {
	assets := models.MediaAssets{
		asset("a", models.MediaKindImage, 7),
		asset("b", models.MediaKindVideo, 3),
		asset("c", models.MediaKindImage, 0),
		asset("d", models.MediaKindCertificate, 9),
		asset("e", models.MediaKindImage, 2),
	}

	out := Reorder(assets)

	require.Len(t, out, 5)
	assertContiguousPerKind(t, out)
	// Sequence within a kind follows the given slice order.
	assert.Equal(t, "a", out[0].ID)
	assert.Equal(t, 0, out[0].Order)
	assert.Equal(t, "c", out[2].ID)
	assert.Equal(t, 1, out[2].Order)
	assert.Equal(t, "e", out[4].ID)
	assert.Equal(t, 2, out[4].Order)
}

func TestReorderDoesNotMutateInput(t *testing.T) {
	assets := models.MediaAssets{asset("a", models.MediaKindImage, 5)}

	_ = Reorder(assets)

	assert.Equal(t, 5, assets[0].Order)
}

func TestRemoveCompactsOrders(t *testing.T) {
	svc := newTestMediaService()
	assets := Reorder(models.MediaAssets{
		asset("a", models.MediaKindImage, 0),
		asset("b", models.MediaKindImage, 0),
		asset("c", models.MediaKindImage, 0),
		asset("v", models.MediaKindVideo, 0),
	})

	remaining, err := svc.Remove(assets, "b", false)
	require.NoError(t, err)

	require.Len(t, remaining, 3)
	assertContiguousPerKind(t, remaining)
	assert.Equal(t, "a", remaining[0].ID)
	assert.Equal(t, "c", remaining[1].ID)
	assert.Equal(t, 1, remaining[1].Order)
	assert.Equal(t, "v", remaining[2].ID)
	assert.Equal(t, 0, remaining[2].Order)
}

func TestRemoveUnknownAsset(t *testing.T) {
	svc := newTestMediaService()

	_, err := svc.Remove(models.MediaAssets{asset("a", models.MediaKindImage, 0)}, "nope", false)

	require.Error(t, err)
	assert.Equal(t, ErrCodeNotFound, CodeOf(err))
}

func TestUploadAssignsNextOrderPerKind(t *testing.T) {
	svc := newTestMediaService()
	existing := models.MediaAssets{
		asset("a", models.MediaKindImage, 0),
		asset("b", models.MediaKindImage, 1),
		asset("v", models.MediaKindVideo, 0),
	}

	file, header := newUpload("ring.jpg", 128)
	uploaded, err := svc.Upload("tenant1", models.DomainJewellery, "JWL-ACME-00001", models.MediaKindImage, file, header, existing)
	require.NoError(t, err)

	assert.Equal(t, 2, uploaded.Order)
	assert.Equal(t, models.MediaKindImage, uploaded.Kind)
	assert.NotEmpty(t, uploaded.ID)
	assert.Contains(t, uploaded.StorageKey, "tenant1/jewellery/JWL-ACME-00001/images/")
}

func TestUploadRejectsWrongExtension(t *testing.T) {
	svc := newTestMediaService()

	file, header := newUpload("cert.exe", 128)
	_, err := svc.Upload("t", models.DomainGemstone, "GEM-T-00001", models.MediaKindCertificate, file, header, nil)

	require.Error(t, err)
	assert.Equal(t, ErrCodeValidationFailed, CodeOf(err))
}

func TestUploadRejectsOversizedFile(t *testing.T) {
	svc := newTestMediaService()

	file, header := newUpload("big.jpg", 64)
	header.Size = 11 * 1024 * 1024
	_, err := svc.Upload("t", models.DomainGemstone, "GEM-T-00001", models.MediaKindImage, file, header, nil)

	require.Error(t, err)
	assert.Equal(t, ErrCodeValidationFailed, CodeOf(err))
}

func TestReplaceRejectsWrongExtension(t *testing.T) {
	svc := newTestMediaService()
	original := asset("a", models.MediaKindImage, 0)

	file, header := newUpload("payload.exe", 64)
	_, err := svc.Replace("t", models.DomainGemstone, "GEM-T-00001", original, file, header)

	require.Error(t, err)
	assert.Equal(t, ErrCodeValidationFailed, CodeOf(err))
}

func TestReplaceUsesFreshKeyAndMonotonicTimestamp(t *testing.T) {
	svc := newTestMediaService()
	original := asset("a", models.MediaKindImage, 0)
	original.UpdatedAt = time.Now().Add(time.Hour) // clock skew ahead of now

	file, header := newUpload("new.jpg", 64)
	replaced, err := svc.Replace("t", models.DomainGemstone, "GEM-T-00001", original, file, header)
	require.NoError(t, err)

	assert.NotEqual(t, original.StorageKey, replaced.StorageKey)
	assert.True(t, replaced.UpdatedAt.After(original.UpdatedAt),
		"UpdatedAt must advance even when the wall clock lags the stored value")
	assert.Equal(t, original.ID, replaced.ID)
	assert.Equal(t, original.Order, replaced.Order)
}
