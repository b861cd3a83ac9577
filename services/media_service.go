package services

import (
	"context"
	"errors"
	"fmt"
	"io"
	"math/rand"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/cloudinary/cloudinary-go/v2"
	"github.com/cloudinary/cloudinary-go/v2/api/uploader"
	config "github.com/hostelhub/hostelhub/configs"
)

const MaxUploadSize = 50 * 1024 * 1024 // 50MB per file

var (
	ErrUnsupportedMedia = errors.New("only images and videos are allowed")
	ErrFileTooLarge     = errors.New("file exceeds the 50MB upload limit")
)

var mediaKinds = map[string]string{
	".jpeg": "image",
	".jpg":  "image",
	".png":  "image",
	".gif":  "image",
	".webp": "image",
	".mp4":  "video",
	".webm": "video",
	".mov":  "video",
}

// ClassifyMedia validates an upload against the size ceiling and the
// allowed extension/MIME set, and reports whether it is an image or a
// video.
func ClassifyMedia(file *multipart.FileHeader) (string, error) {
	if file.Size > MaxUploadSize {
		return "", ErrFileTooLarge
	}

	kind, ok := mediaKinds[strings.ToLower(filepath.Ext(file.Filename))]
	if !ok {
		return "", ErrUnsupportedMedia
	}

	contentType := file.Header.Get("Content-Type")
	switch {
	case contentType == "":
		// Some clients omit it; the extension gate already passed.
	case strings.HasPrefix(contentType, "image/"):
		kind = "image"
	case strings.HasPrefix(contentType, "video/"):
		kind = "video"
	default:
		return "", ErrUnsupportedMedia
	}

	return kind, nil
}

// StoreMedia persists an already-validated upload and returns the public
// path. Cloudinary is used when configured, local disk otherwise.
func StoreMedia(file *multipart.FileHeader) (string, error) {
	if cloudinaryURL := config.Config("CLOUDINARY_URL"); cloudinaryURL != "" {
		return storeCloudinary(cloudinaryURL, file)
	}
	return storeLocal(file)
}

func storeLocal(file *multipart.FileHeader) (string, error) {
	dir := config.Config("UPLOAD_DIR")
	if dir == "" {
		dir = "./public/uploads"
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}

	name := fmt.Sprintf("%d-%d%s", time.Now().UnixMilli(), rand.Intn(1_000_000_000), strings.ToLower(filepath.Ext(file.Filename)))

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, name))
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", err
	}

	return "/uploads/" + name, nil
}

func storeCloudinary(cloudinaryURL string, file *multipart.FileHeader) (string, error) {
	cld, err := cloudinary.NewFromURL(cloudinaryURL)
	if err != nil {
		return "", err
	}

	src, err := file.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	result, err := cld.Upload.Upload(ctx, src, uploader.UploadParams{
		Folder: "hostelhub_media",
	})
	if err != nil {
		return "", err
	}

	return result.SecureURL, nil
}
