package services

import (
	"context"
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/s3"
)

// ErrUnsupportedImageType is returned when an upload is requested with a
// content type outside the avatar allowlist
var ErrUnsupportedImageType = errors.New("unsupported image type")

// Avatars and hotspot photos are the only things clients upload, so the
// bucket accepts web-displayable image types and nothing else.
var allowedImageTypes = map[string]bool{
	"image/jpeg": true,
	"image/png":  true,
	"image/webp": true,
}

const defaultPresignExpiry = 5 * time.Minute

var s3Client *s3.Client

func init() {
	cfg, err := config.LoadDefaultConfig(context.TODO(), config.WithRegion(os.Getenv("AWS_REGION")))
	if err != nil {
		panic(err)
	}
	s3Client = s3.NewFromConfig(cfg)
}

// IsAllowedImageType reports whether fileType is accepted for avatar and
// hotspot photo uploads.
func IsAllowedImageType(fileType string) bool {
	return allowedImageTypes[fileType]
}

// PresignExpiry returns how long presigned URLs stay valid, taken from
// S3_PRESIGN_EXPIRY_MINUTES when set to a positive integer.
func PresignExpiry() time.Duration {
	raw := os.Getenv("S3_PRESIGN_EXPIRY_MINUTES")
	if raw == "" {
		return defaultPresignExpiry
	}
	minutes, err := strconv.Atoi(raw)
	if err != nil || minutes <= 0 {
		return defaultPresignExpiry
	}
	return time.Duration(minutes) * time.Minute
}

// GenerateUploadURL generates a presigned URL for uploading an avatar or
// hotspot photo. The content type must pass the image allowlist; the
// returned key is the reference stored on the profile.
func GenerateUploadURL(fileName, fileType string) (string, string, error) {
	if !IsAllowedImageType(fileType) {
		return "", "", ErrUnsupportedImageType
	}

	key := "avatars/" + time.Now().Format("20060102150405") + "-" + fileName
	params := &s3.PutObjectInput{
		Bucket:      aws.String(os.Getenv("S3_BUCKET_NAME")),
		Key:         aws.String(key),
		ContentType: aws.String(fileType),
	}
	presigner := s3.NewPresignClient(s3Client)
	presignedURL, err := presigner.PresignPutObject(context.TODO(), params, s3.WithPresignExpires(PresignExpiry()))
	if err != nil {
		return "", "", err
	}
	return presignedURL.URL, key, nil
}

// GenerateReadURL generates a presigned URL for reading a stored object
func GenerateReadURL(key string) (string, error) {
	params := &s3.GetObjectInput{
		Bucket: aws.String(os.Getenv("S3_BUCKET_NAME")),
		Key:    aws.String(key),
	}
	presigner := s3.NewPresignClient(s3Client)
	presignedURL, err := presigner.PresignGetObject(context.TODO(), params, s3.WithPresignExpires(PresignExpiry()))
	if err != nil {
		return "", err
	}
	return presignedURL.URL, nil
}
