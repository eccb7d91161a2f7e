package storage

import (
	"bytes"
	"image"
	"image/png"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/disintegration/imaging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func imagingOpenBounds(path string) (image.Rectangle, error) {
	img, err := imaging.Open(path)
	if err != nil {
		return image.Rectangle{}, err
	}
	return img.Bounds(), nil
}

func multipartFile(t *testing.T, name string, content []byte) *multipart.FileHeader {
	t.Helper()
	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	w, err := mw.CreateFormFile("document", name)
	require.NoError(t, err)
	_, err = w.Write(content)
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest("POST", "/", buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))
	return req.MultipartForm.File["document"][0]
}

func TestSaveUsesPerUserDirAndUniqueName(t *testing.T) {
	s := New(t.TempDir())
	fh := multipartFile(t, "paystub.pdf", []byte("%PDF-1.4 fake"))

	path, err := s.Save(7, fh, "paystub.pdf")
	require.NoError(t, err)

	assert.Equal(t, "7", filepath.Base(filepath.Dir(path)))
	assert.Regexp(t, regexp.MustCompile(`^document-\d+-[0-9a-f]{8}\.pdf$`), filepath.Base(path))

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("%PDF-1.4 fake"), content)

	// A second save of the same original name must not collide.
	other, err := s.Save(7, multipartFile(t, "paystub.pdf", []byte("again")), "paystub.pdf")
	require.NoError(t, err)
	assert.NotEqual(t, path, other)
}

func TestThumbnailForPNG(t *testing.T) {
	s := New(t.TempDir())

	img := image.NewRGBA(image.Rect(0, 0, 900, 600))
	buf := &bytes.Buffer{}
	require.NoError(t, png.Encode(buf, img))

	path, err := s.Save(3, multipartFile(t, "lease.png", buf.Bytes()), "lease.png")
	require.NoError(t, err)

	thumbPath, err := s.Thumbnail(path)
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(thumbPath, "_thumb.jpg"))

	thumb, err := imagingOpenBounds(thumbPath)
	require.NoError(t, err)
	assert.LessOrEqual(t, thumb.Dx(), thumbnailMaxDim)
	assert.LessOrEqual(t, thumb.Dy(), thumbnailMaxDim)
}

func TestRemoveMissingFileFails(t *testing.T) {
	s := New(t.TempDir())
	err := s.Remove(filepath.Join(t.TempDir(), "nope.pdf"))
	assert.Error(t, err)
}

func TestAllowedTypes(t *testing.T) {
	assert.True(t, AllowedType("application/pdf"))
	assert.True(t, AllowedType("image/jpeg"))
	assert.True(t, AllowedType("image/png"))
	assert.True(t, AllowedType("application/msword"))
	assert.True(t, AllowedType("application/vnd.openxmlformats-officedocument.wordprocessingml.document"))
	assert.False(t, AllowedType("text/html"))
	assert.False(t, AllowedType("application/zip"))

	assert.True(t, IsImage("image/png"))
	assert.False(t, IsImage("application/pdf"))
}
