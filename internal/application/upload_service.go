package application

import (
	"context"
	"io"
	"path/filepath"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"

	"github.com/oksasatya/store-admin-api/pkg/helpers"
)

// UploadService stores billboard and product images in GCS under a per-store
// prefix and hands back the public URL the dashboard embeds in entity payloads.
type UploadService struct {
	Guard  *StoreGuard
	Client *storage.Client
	Bucket string
}

func NewUploadService(guard *StoreGuard, client *storage.Client, bucket string) *UploadService {
	return &UploadService{Guard: guard, Client: client, Bucket: bucket}
}

func (s *UploadService) Upload(ctx context.Context, userID, storeID, filename, contentType string, r io.Reader) (string, error) {
	if _, err := s.Guard.Authorize(ctx, userID, storeID); err != nil {
		return "", err
	}
	ext := strings.ToLower(filepath.Ext(filename))
	objectPath := "stores/" + storeID + "/" + uuid.NewString() + ext
	return helpers.UploadObject(ctx, s.Client, s.Bucket, objectPath, contentType, r)
}
