package storage

import (
	"bytes"
	"context"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/chai2010/webp"
	"github.com/google/uuid"
	"golang.org/x/image/draw"

	"github.com/jellomark/beautishop-scheduler/internal/config"
	"github.com/jellomark/beautishop-scheduler/internal/httperr"
)

const (
	maxImageWidth = 1280
	webpQuality   = 80
)

// ImageStore re-encodes uploaded shop photos to WebP and keeps them in
// S3-compatible object storage.
type ImageStore struct {
	client    *s3.Client
	bucket    string
	publicURL string
}

func NewImageStore(cfg *config.Config) *ImageStore {
	opts := s3.Options{
		Region:      cfg.S3Region,
		Credentials: credentials.NewStaticCredentialsProvider(cfg.S3AccessKey, cfg.S3SecretKey, ""),
	}

	// Custom endpoint for MinIO-style deployments.
	if cfg.S3Endpoint != "" {
		opts.BaseEndpoint = aws.String(cfg.S3Endpoint)
		opts.UsePathStyle = true
	}

	publicURL := cfg.S3PublicURL
	if publicURL == "" {
		publicURL = fmt.Sprintf("https://%s.s3.%s.amazonaws.com", cfg.S3Bucket, cfg.S3Region)
	}

	return &ImageStore{
		client:    s3.New(opts),
		bucket:    cfg.S3Bucket,
		publicURL: strings.TrimRight(publicURL, "/"),
	}
}

// UploadShopImage decodes, downscales, and re-encodes the image, then
// uploads it under the shop's prefix. Returns the public URL.
func (s *ImageStore) UploadShopImage(
	ctx context.Context,
	shopID uuid.UUID,
	data []byte,
) (string, error) {

	src, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		return "", httperr.ErrBusiness("unsupported_image_format")
	}

	src = downscale(src)

	var buf bytes.Buffer
	if err := webp.Encode(&buf, src, &webp.Options{Quality: webpQuality}); err != nil {
		return "", err
	}

	key := fmt.Sprintf("shops/%s/%s.webp", shopID, uuid.New())

	_, err = s.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(s.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(buf.Bytes()),
		ContentType: aws.String("image/webp"),
	})
	if err != nil {
		return "", err
	}

	return s.publicURL + "/" + key, nil
}

func downscale(src image.Image) image.Image {
	bounds := src.Bounds()
	if bounds.Dx() <= maxImageWidth {
		return src
	}

	height := bounds.Dy() * maxImageWidth / bounds.Dx()
	dst := image.NewRGBA(image.Rect(0, 0, maxImageWidth, height))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
	return dst
}
