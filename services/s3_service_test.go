package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsAllowedImageType(t *testing.T) {
	assert.True(t, IsAllowedImageType("image/jpeg"))
	assert.True(t, IsAllowedImageType("image/png"))
	assert.True(t, IsAllowedImageType("image/webp"))

	assert.False(t, IsAllowedImageType("image/svg+xml"))
	assert.False(t, IsAllowedImageType("application/pdf"))
	assert.False(t, IsAllowedImageType("text/html"))
	assert.False(t, IsAllowedImageType(""))
}

func TestGenerateUploadURLRejectsUnsupportedType(t *testing.T) {
	_, _, err := GenerateUploadURL("resume.pdf", "application/pdf")
	assert.ErrorIs(t, err, ErrUnsupportedImageType)
}

func TestPresignExpiry(t *testing.T) {
	t.Setenv("S3_PRESIGN_EXPIRY_MINUTES", "")
	assert.Equal(t, 5*time.Minute, PresignExpiry())

	t.Setenv("S3_PRESIGN_EXPIRY_MINUTES", "15")
	assert.Equal(t, 15*time.Minute, PresignExpiry())

	t.Setenv("S3_PRESIGN_EXPIRY_MINUTES", "bogus")
	assert.Equal(t, 5*time.Minute, PresignExpiry())

	t.Setenv("S3_PRESIGN_EXPIRY_MINUTES", "-1")
	assert.Equal(t, 5*time.Minute, PresignExpiry())
}
