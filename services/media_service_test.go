package services

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"github.com/stretchr/testify/assert"
)

func fileHeader(name, contentType string, size int64) *multipart.FileHeader {
	header := textproto.MIMEHeader{}
	if contentType != "" {
		header.Set("Content-Type", contentType)
	}
	return &multipart.FileHeader{Filename: name, Size: size, Header: header}
}

func TestClassifyMedia(t *testing.T) {
	kind, err := ClassifyMedia(fileHeader("room.jpg", "image/jpeg", 1024))
	assert.NoError(t, err)
	assert.Equal(t, "image", kind)

	kind, err = ClassifyMedia(fileHeader("tour.mp4", "video/mp4", 1024))
	assert.NoError(t, err)
	assert.Equal(t, "video", kind)

	// Missing Content-Type falls back to the extension.
	kind, err = ClassifyMedia(fileHeader("room.webp", "", 1024))
	assert.NoError(t, err)
	assert.Equal(t, "image", kind)
}

func TestClassifyMediaRejectsUnsupported(t *testing.T) {
	_, err := ClassifyMedia(fileHeader("malware.exe", "application/octet-stream", 1024))
	assert.ErrorIs(t, err, ErrUnsupportedMedia)

	_, err = ClassifyMedia(fileHeader("notes.pdf", "application/pdf", 1024))
	assert.ErrorIs(t, err, ErrUnsupportedMedia)

	// Allowed extension but a non-media MIME type is still rejected.
	_, err = ClassifyMedia(fileHeader("fake.jpg", "application/octet-stream", 1024))
	assert.ErrorIs(t, err, ErrUnsupportedMedia)
}

func TestClassifyMediaRejectsOversize(t *testing.T) {
	_, err := ClassifyMedia(fileHeader("huge.mp4", "video/mp4", MaxUploadSize+1))
	assert.ErrorIs(t, err, ErrFileTooLarge)

	_, err = ClassifyMedia(fileHeader("exact.mp4", "video/mp4", MaxUploadSize))
	assert.NoError(t, err)
}
