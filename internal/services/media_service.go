// internal/services/media_service.go
package services

import (
	"bytes"
	"fmt"
	"io"
	"mime/multipart"
	"path/filepath"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/credentials"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/s3"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/ratnasetu/marketplace-backend/internal/config"
	"github.com/ratnasetu/marketplace-backend/internal/models"
)

type MediaService struct {
	s3Client *s3.S3
	config   *config.Config
}

type mediaRules struct {
	folder       string
	maxSize      int64 // in bytes
	allowedTypes []string
}

func (r mediaRules) allows(ext string) bool {
	for _, allowedType := range r.allowedTypes {
		if ext == allowedType {
			return true
		}
	}
	return false
}

func NewMediaService(config *config.Config) (*MediaService, error) {
	if config.AWS.AccessKeyID == "" {
		// Return service without S3 for local development
		return &MediaService{config: config}, nil
	}

	// Create AWS session
	sess, err := session.NewSession(&aws.Config{
		Region: aws.String(config.AWS.Region),
		Credentials: credentials.NewStaticCredentials(
			config.AWS.AccessKeyID,
			config.AWS.SecretAccessKey,
			"",
		),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create AWS session: %w", err)
	}

	return &MediaService{
		s3Client: s3.New(sess),
		config:   config,
	}, nil
}

// Upload stores the blob and returns a MediaAsset carrying the next order for
// its kind. The listing itself is not persisted here; the caller appends the
// asset to the media list before saving. A failed put persists nothing.
func (s *MediaService) Upload(tenantID string, domain models.ProductDomain, skuID string, kind models.MediaKind,
	file multipart.File, header *multipart.FileHeader, existing models.MediaAssets) (*models.MediaAsset, error) {

	rules := rulesForKind(kind)

	if rules.maxSize > 0 && header.Size > rules.maxSize {
		return nil, validationError(skuID, "upload",
			fmt.Sprintf("file size %d bytes exceeds maximum allowed size %d bytes", header.Size, rules.maxSize))
	}

	fileExt := strings.ToLower(filepath.Ext(header.Filename))
	if !rules.allows(fileExt) {
		return nil, validationError(skuID, "upload", fmt.Sprintf("file type %s is not allowed for %s", fileExt, kind))
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	key := s.buildKey(tenantID, domain, skuID, rules.folder, fileExt)
	if err := s.putObject(key, fileBytes, header.Header.Get("Content-Type")); err != nil {
		return nil, storageError(skuID, err)
	}

	now := time.Now()
	asset := &models.MediaAsset{
		ID:         uuid.New().String(),
		Kind:       kind,
		StorageKey: key,
		URL:        s.resolveURL(key),
		Order:      len(existing.OfKind(kind)),
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	return asset, nil
}

// Reorder re-indexes order values to 0..n-1 per kind in the given sequence.
// Pure function, no I/O.
func Reorder(assets models.MediaAssets) models.MediaAssets {
	counts := make(map[models.MediaKind]int)
	out := make(models.MediaAssets, len(assets))

	for i, a := range assets {
		a.Order = counts[a.Kind]
		counts[a.Kind]++
		out[i] = a
	}

	return out
}

// Replace uploads the new file at a new storage key, never overwriting the old
// object in place, so URL caches and CDNs are naturally busted. The returned
// asset carries a strictly increasing UpdatedAt for consumer-side cache
// invalidation. The old blob is deleted best-effort.
func (s *MediaService) Replace(tenantID string, domain models.ProductDomain, skuID string, asset models.MediaAsset,
	file multipart.File, header *multipart.FileHeader) (*models.MediaAsset, error) {

	rules := rulesForKind(asset.Kind)

	if rules.maxSize > 0 && header.Size > rules.maxSize {
		return nil, validationError(skuID, "replace",
			fmt.Sprintf("file size %d bytes exceeds maximum allowed size %d bytes", header.Size, rules.maxSize))
	}

	fileExt := strings.ToLower(filepath.Ext(header.Filename))
	if !rules.allows(fileExt) {
		return nil, validationError(skuID, "replace", fmt.Sprintf("file type %s is not allowed for %s", fileExt, asset.Kind))
	}

	fileBytes, err := io.ReadAll(file)
	if err != nil {
		return nil, fmt.Errorf("failed to read file: %w", err)
	}

	key := s.buildKey(tenantID, domain, skuID, rules.folder, fileExt)
	if err := s.putObject(key, fileBytes, header.Header.Get("Content-Type")); err != nil {
		return nil, storageError(skuID, err)
	}

	oldKey := asset.StorageKey

	now := time.Now()
	if !now.After(asset.UpdatedAt) {
		now = asset.UpdatedAt.Add(time.Millisecond)
	}
	asset.StorageKey = key
	asset.URL = s.resolveURL(key)
	asset.UpdatedAt = now

	if err := s.deleteObject(oldKey); err != nil {
		logrus.WithError(err).WithField("key", oldKey).Warn("Failed to delete replaced media blob")
	}

	return &asset, nil
}

// Remove deletes the asset from the media list and compacts per-kind order
// values. When purgeFromStore is set the blob delete is best-effort: a storage
// failure never blocks removing the reference from the listing.
func (s *MediaService) Remove(assets models.MediaAssets, assetID string, purgeFromStore bool) (models.MediaAssets, error) {
	var removed *models.MediaAsset
	remaining := make(models.MediaAssets, 0, len(assets))

	for _, a := range assets {
		if a.ID == assetID {
			found := a
			removed = &found
			continue
		}
		remaining = append(remaining, a)
	}

	if removed == nil {
		return nil, pipelineError(ErrCodeNotFound, "", "media_delete", fmt.Sprintf("media asset %s not found", assetID), nil)
	}

	if purgeFromStore {
		if err := s.deleteObject(removed.StorageKey); err != nil {
			logrus.WithError(err).WithField("key", removed.StorageKey).Warn("Failed to purge media blob, removing reference anyway")
		}
	}

	return Reorder(remaining), nil
}

// PurgeAll deletes every blob owned by a listing, best-effort. Used by the
// listing delete cascade.
func (s *MediaService) PurgeAll(assets models.MediaAssets) {
	for _, a := range assets {
		if err := s.deleteObject(a.StorageKey); err != nil {
			logrus.WithError(err).WithField("key", a.StorageKey).Warn("Failed to purge media blob")
		}
	}
}

// PresignedURL resolves a short-lived download link, used for certificates
// which are not served through the public CDN.
func (s *MediaService) PresignedURL(key string, expiration time.Duration) (string, error) {
	if s.s3Client == nil {
		return "", fmt.Errorf("S3 client not configured")
	}

	req, _ := s.s3Client.GetObjectRequest(&s3.GetObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})

	url, err := req.Presign(expiration)
	if err != nil {
		return "", fmt.Errorf("failed to generate presigned URL: %w", err)
	}

	return url, nil
}

func rulesForKind(kind models.MediaKind) mediaRules {
	switch kind {
	case models.MediaKindVideo:
		return mediaRules{
			folder:       "videos",
			maxSize:      100 * 1024 * 1024, // 100MB
			allowedTypes: []string{".mp4", ".mov", ".webm"},
		}
	case models.MediaKindCertificate:
		return mediaRules{
			folder:       "certificates",
			maxSize:      10 * 1024 * 1024, // 10MB
			allowedTypes: []string{".pdf", ".jpg", ".jpeg", ".png"},
		}
	default:
		return mediaRules{
			folder:       "images",
			maxSize:      10 * 1024 * 1024, // 10MB
			allowedTypes: []string{".jpg", ".jpeg", ".png", ".webp"},
		}
	}
}

// buildKey follows {tenant}/{domain}/{sku}/{images|videos|certificates}/{name}.
// The generated name embeds a fresh UUID so a key is never reused.
func (s *MediaService) buildKey(tenantID string, domain models.ProductDomain, skuID, folder, ext string) string {
	name := fmt.Sprintf("%s_%s%s", time.Now().Format("20060102"), uuid.New().String()[:8], ext)
	return fmt.Sprintf("%s/%s/%s/%s/%s", tenantID, domain, skuID, folder, name)
}

func (s *MediaService) putObject(key string, fileBytes []byte, contentType string) error {
	if s.s3Client == nil {
		// Local development - nothing to store
		logrus.WithField("key", key).Debug("S3 not configured, skipping blob upload")
		return nil
	}

	params := &s3.PutObjectInput{
		Bucket:        aws.String(s.config.AWS.S3Bucket),
		Key:           aws.String(key),
		Body:          bytes.NewReader(fileBytes),
		ContentType:   aws.String(contentType),
		ContentLength: aws.Int64(int64(len(fileBytes))),
	}

	_, err := s.s3Client.PutObject(params)
	if err != nil {
		return fmt.Errorf("failed to upload to S3: %w", err)
	}

	return nil
}

func (s *MediaService) deleteObject(key string) error {
	if s.s3Client == nil {
		logrus.WithField("key", key).Debug("S3 not configured, skipping blob delete")
		return nil
	}

	_, err := s.s3Client.DeleteObject(&s3.DeleteObjectInput{
		Bucket: aws.String(s.config.AWS.S3Bucket),
		Key:    aws.String(key),
	})

	if err != nil {
		return fmt.Errorf("failed to delete file from S3: %w", err)
	}

	return nil
}

func (s *MediaService) resolveURL(key string) string {
	if s.config.AWS.CloudFrontURL != "" {
		return fmt.Sprintf("%s/%s", s.config.AWS.CloudFrontURL, key)
	}

	return fmt.Sprintf("https://%s.s3.%s.amazonaws.com/%s",
		s.config.AWS.S3Bucket, s.config.AWS.Region, key)
}
