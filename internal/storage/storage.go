package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/disintegration/imaging"
	"github.com/google/uuid"
)

// Allowed upload MIME types: pdf, jpeg, png, doc, docx.
var allowedMimeTypes = map[string]bool{
	"application/pdf": true,
	"image/jpeg":      true,
	"image/png":       true,
	"application/msword": true,
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": true,
}

// MaxFileSize is the upload size ceiling.
const MaxFileSize = 5 * 1024 * 1024

const thumbnailMaxDim = 480

// Store writes uploaded documents under a per-user directory beneath the
// configured base.
type Store struct {
	base string
}

func New(base string) *Store {
	return &Store{base: base}
}

// EnsureBase creates the upload base directory.
func (s *Store) EnsureBase() error {
	return os.MkdirAll(s.base, 0755)
}

// AllowedType reports whether the MIME type is on the upload allow-list.
func AllowedType(mimeType string) bool {
	return allowedMimeTypes[mimeType]
}

// IsImage reports whether the MIME type is a raster image we can thumbnail.
func IsImage(mimeType string) bool {
	return mimeType == "image/jpeg" || mimeType == "image/png"
}

// Save writes the uploaded file into the user's directory under a
// collision-resistant name (timestamp plus random suffix plus the original
// extension) and returns the stored path.
func (s *Store) Save(userID uint, fh *multipart.FileHeader, originalName string) (string, error) {
	dir := filepath.Join(s.base, strconv.FormatUint(uint64(userID), 10))
	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("create user upload dir: %w", err)
	}

	suffix := strings.ReplaceAll(uuid.NewString(), "-", "")[:8]
	name := fmt.Sprintf("document-%d-%s%s", time.Now().UnixMilli(), suffix, filepath.Ext(originalName))
	path := filepath.Join(dir, name)

	src, err := fh.Open()
	if err != nil {
		return "", err
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		os.Remove(path)
		return "", err
	}
	return path, nil
}

// Thumbnail renders a downscaled JPEG next to the stored image and returns
// its path. Callers treat failure as non-fatal.
func (s *Store) Thumbnail(path string) (string, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return "", err
	}
	thumb := imaging.Fit(img, thumbnailMaxDim, thumbnailMaxDim, imaging.Lanczos)
	ext := filepath.Ext(path)
	thumbPath := strings.TrimSuffix(path, ext) + "_thumb.jpg"
	if err := imaging.Save(thumb, thumbPath); err != nil {
		return "", err
	}
	return thumbPath, nil
}

// Remove deletes a stored file. Removal failure is fatal to document
// deletion, so the error is returned as is.
func (s *Store) Remove(path string) error {
	return os.Remove(path)
}
