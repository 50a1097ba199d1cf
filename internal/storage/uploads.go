package storage

import (
	"errors"
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

const (
	maxUploadBytes = 10 << 20
	maxWidth       = 1600
)

var (
	ErrTooLarge = errors.New("image exceeds the 10MB upload limit")

	reUnsafe = regexp.MustCompile(`[^a-zA-Z0-9.\-_]+`)
)

// SaveImage stores an uploaded image under dir and returns the public URL
// path persisted on the owning row. Oversized images are scaled down to
// maxWidth; everything is re-encoded as JPEG.
func SaveImage(dir string, fh *multipart.FileHeader) (string, error) {
	if fh.Size > maxUploadBytes {
		return "", ErrTooLarge
	}
	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	img, err := imaging.Decode(src, imaging.AutoOrientation(true))
	if err != nil {
		return "", fmt.Errorf("decode image: %w", err)
	}
	if img.Bounds().Dx() > maxWidth {
		img = imaging.Resize(img, maxWidth, 0, imaging.Lanczos)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	name := UniqueFilename(fh.Filename)
	if err := imaging.Save(img, filepath.Join(dir, name), imaging.JPEGQuality(85)); err != nil {
		return "", fmt.Errorf("save image: %w", err)
	}
	return "/uploads/" + name, nil
}

// UniqueFilename builds a collision-free .jpg name keeping a sanitized hint
// of the original name.
func UniqueFilename(original string) string {
	base := strings.TrimSuffix(filepath.Base(original), filepath.Ext(original))
	safe := reUnsafe.ReplaceAllString(base, "_")
	if safe == "" || safe == "_" {
		safe = "imagem"
	}
	return fmt.Sprintf("%s-%s-%s.jpg", time.Now().Format("20060102"), uuid.NewString(), safe)
}

// Remove deletes a previously saved upload given its public URL path.
// Unknown paths are ignored.
func Remove(dir, urlPath string) {
	name := strings.TrimPrefix(urlPath, "/uploads/")
	if name == "" || name == urlPath || strings.Contains(name, "/") {
		return
	}
	_ = os.Remove(filepath.Join(dir, name))
}
