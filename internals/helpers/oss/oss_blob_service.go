package helper

import (
	"context"
	"os"
	"strings"
)

func getEnv(k string) string { return strings.TrimSpace(os.Getenv(k)) }

// BlobService is the narrow storage surface the feature services consume:
// folder-by-name-or-reuse, file-in-folder, public-read visibility. Tests swap
// in a fake; production wires OSSBlobService.
type BlobService interface {
	EnsureFolder(ctx context.Context, name string) (folderID string, err error)
	SetFolderPublicRead(ctx context.Context, folderID string) error
	Upload(ctx context.Context, folderID, fileName, contentType string, body []byte) (key, publicURL string, err error)
	SetPublicRead(ctx context.Context, key string) error
}

// --------------------------------------------------
// Aliyun OSS implementation
// --------------------------------------------------

type OSSBlobService struct {
	svc *OSSService
}

func NewOSSBlobServiceFromEnv() (*OSSBlobService, error) {
	s, err := NewOSSServiceFromEnv()
	if err != nil {
		return nil, err
	}
	return &OSSBlobService{svc: s}, nil
}

func (b *OSSBlobService) EnsureFolder(ctx context.Context, name string) (string, error) {
	return b.svc.EnsureFolder(ctx, name)
}

func (b *OSSBlobService) SetFolderPublicRead(ctx context.Context, folderID string) error {
	return b.svc.SetFolderPublicRead(ctx, folderID)
}

func (b *OSSBlobService) Upload(ctx context.Context, folderID, fileName, contentType string, body []byte) (string, string, error) {
	key := strings.Trim(folderID, "/") + "/" + strings.TrimLeft(fileName, "/")
	if err := b.svc.UploadStream(ctx, key, body, contentType); err != nil {
		return "", "", err
	}
	return key, b.svc.PublicURL(key), nil
}

func (b *OSSBlobService) SetPublicRead(ctx context.Context, key string) error {
	return b.svc.SetPublicRead(ctx, key)
}
