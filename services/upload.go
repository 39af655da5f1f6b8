package services

import (
	"context"
	"fmt"
	"path"
	"strings"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/google/uuid"

	"github.com/rpupo63/portfolio-backend/config"
	"github.com/rpupo63/portfolio-backend/errs"
)

// allowedImageTypes are the content types accepted for image uploads.
var allowedImageTypes = map[string]string{
	"image/jpeg": ".jpg",
	"image/png":  ".png",
	"image/gif":  ".gif",
	"image/webp": ".webp",
}

// presignTTL is how long a generated upload URL stays valid.
const presignTTL = 15 * time.Minute

// Uploader hands out presigned S3 PUT URLs so the admin frontend can upload
// project and blog images directly to the bucket.
type Uploader struct {
	presign   *s3.PresignClient
	bucket    string
	publicURL string
}

// NewUploader builds an Uploader from the environment. Returns nil (disabled)
// when no bucket is configured.
func NewUploader(ctx context.Context, cfg map[string]string) (*Uploader, error) {
	bucket := config.GetString(cfg, "S3_UPLOAD_BUCKET", "")
	if bucket == "" {
		return nil, nil
	}

	awsCfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil {
		return nil, fmt.Errorf("loading AWS config: %w", err)
	}

	client := s3.NewFromConfig(awsCfg)
	return &Uploader{
		presign:   s3.NewPresignClient(client),
		bucket:    bucket,
		publicURL: strings.TrimSuffix(config.GetString(cfg, "S3_PUBLIC_URL", ""), "/"),
	}, nil
}

// UploadTarget is what the admin frontend needs to perform one upload.
type UploadTarget struct {
	UploadURL string `json:"uploadUrl"`
	PublicURL string `json:"publicUrl"`
	Key       string `json:"key"`
	ExpiresIn int    `json:"expiresInSeconds"`
}

// PresignImageUpload generates a presigned PUT URL for one image. The object
// key is derived from the filename, never from client-controlled paths.
func (u *Uploader) PresignImageUpload(ctx context.Context, filename, contentType string) (*UploadTarget, error) {
	ext, ok := allowedImageTypes[contentType]
	if !ok {
		return nil, errs.BadRequest(fmt.Sprintf("unsupported content type: %s", contentType))
	}

	base := strings.TrimSuffix(path.Base(filename), path.Ext(filename))
	if base == "" || base == "." {
		base = "image"
	}
	key := fmt.Sprintf("uploads/%s/%s-%s%s",
		time.Now().UTC().Format("2006/01"), base, uuid.New().String()[:8], ext)

	req, err := u.presign.PresignPutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(u.bucket),
		Key:         aws.String(key),
		ContentType: aws.String(contentType),
	}, s3.WithPresignExpires(presignTTL))
	if err != nil {
		return nil, fmt.Errorf("presigning upload for %s: %w", key, err)
	}

	publicURL := fmt.Sprintf("https://%s.s3.amazonaws.com/%s", u.bucket, key)
	if u.publicURL != "" {
		publicURL = u.publicURL + "/" + key
	}

	return &UploadTarget{
		UploadURL: req.URL,
		PublicURL: publicURL,
		Key:       key,
		ExpiresIn: int(presignTTL.Seconds()),
	}, nil
}
