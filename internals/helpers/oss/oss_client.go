// internals/helpers/oss: Aliyun OSS wrapper. A "folder" here is a key prefix
// marked by a zero-byte "<name>/" object, which is how the console models
// directories too.
package helper

import (
	"bytes"
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/aliyun/aliyun-oss-go-sdk/oss"
)

type OSSService struct {
	Client     *oss.Client
	Bucket     *oss.Bucket
	Endpoint   string
	BucketName string
}

func NewOSSServiceFromEnv() (*OSSService, error) {
	endpoint := getEnv("ALI_OSS_ENDPOINT")
	ak := getEnv("ALI_OSS_ACCESS_KEY")
	sk := getEnv("ALI_OSS_SECRET_KEY")
	sts := getEnv("ALI_OSS_SECURITY_TOKEN")
	bucketName := getEnv("ALI_OSS_BUCKET")
	if endpoint == "" || ak == "" || sk == "" || bucketName == "" {
		return nil, fmt.Errorf("missing env: ALI_OSS_ENDPOINT/ACCESS_KEY/SECRET_KEY/BUCKET")
	}

	var (
		client *oss.Client
		err    error
	)
	if sts != "" {
		client, err = oss.New(endpoint, ak, sk, oss.SecurityToken(sts))
	} else {
		client, err = oss.New(endpoint, ak, sk)
	}
	if err != nil {
		return nil, fmt.Errorf("oss.New: %w", err)
	}

	bkt, err := client.Bucket(bucketName)
	if err != nil {
		return nil, fmt.Errorf("client.Bucket: %w", err)
	}

	// light verification of bucket access
	if loc, err := client.GetBucketLocation(bucketName); err != nil {
		if se, ok := err.(oss.ServiceError); ok && se.StatusCode == 403 && se.Code == "AccessDenied" {
			log.Printf("[OSS] warn: skip location check due to AccessDenied (bucket=%s). Continuing.", bucketName)
		} else {
			return nil, fmt.Errorf("verify bucket: %w", err)
		}
	} else {
		log.Printf("[OSS] bucket %s location: %s", bucketName, loc)
	}

	return &OSSService{
		Client:     client,
		Bucket:     bkt,
		Endpoint:   endpoint,
		BucketName: bucketName,
	}, nil
}

/* =======================================================================
   Folder provisioning
======================================================================= */

// EnsureFolder resolves a folder by display name, creating the marker object
// when absent, and returns the folder id (the "<name>/" prefix). Resolution
// is by name, not by a persisted id: two first-ever runs racing here can both
// see "missing" and both create. For an existing folder the call is a pure
// lookup and returns the same id every time.
func (s *OSSService) EnsureFolder(ctx context.Context, name string) (string, error) {
	marker := strings.Trim(name, "/") + "/"
	if marker == "/" {
		return "", fmt.Errorf("empty folder name")
	}

	exist, err := s.Bucket.IsObjectExist(marker, oss.WithContext(ctx))
	if err != nil {
		return "", fmt.Errorf("lookup folder %q: %w", name, err)
	}
	if !exist {
		if err := s.Bucket.PutObject(marker, bytes.NewReader(nil), oss.WithContext(ctx)); err != nil {
			return "", fmt.Errorf("create folder %q: %w", name, err)
		}
		log.Printf("[OSS] 📁 folder created: %s", marker)
	}
	return marker, nil
}

// SetFolderPublicRead marks the folder marker object public-read. Callers
// treat a failure here as advisory.
func (s *OSSService) SetFolderPublicRead(ctx context.Context, folderID string) error {
	return s.Bucket.SetObjectACL(folderID, oss.ACLPublicRead, oss.WithContext(ctx))
}

/* =======================================================================
   Uploads
======================================================================= */

func (s *OSSService) UploadStream(ctx context.Context, key string, body []byte, contentType string) error {
	if key == "" {
		return fmt.Errorf("empty key")
	}
	if contentType == "" {
		contentType = "application/octet-stream"
	}
	opts := []oss.Option{
		oss.WithContext(ctx),
		oss.ContentType(contentType),
		oss.ContentDisposition("inline"),
		oss.CacheControl("public, max-age=31536000, immutable"),
	}
	return s.Bucket.PutObject(key, bytes.NewReader(body), opts...)
}

func (s *OSSService) SetPublicRead(ctx context.Context, key string) error {
	return s.Bucket.SetObjectACL(key, oss.ACLPublicRead, oss.WithContext(ctx))
}

func (s *OSSService) PublicURL(key string) string {
	host := strings.TrimPrefix(strings.TrimPrefix(s.Endpoint, "https://"), "http://")
	return fmt.Sprintf("https://%s.%s/%s", s.BucketName, host, key)
}
