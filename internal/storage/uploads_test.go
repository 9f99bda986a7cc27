package storage

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fileHeader builds a *multipart.FileHeader the way Fiber would hand it to a
// handler, by round-tripping through a parsed multipart request.
func fileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	buf := &bytes.Buffer{}
	w := multipart.NewWriter(buf)
	part, err := w.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	req := httptest.NewRequest("POST", "/", buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["file"][0]
}

func TestUploads_Save(t *testing.T) {
	dir := t.TempDir()
	uploads := NewUploads(dir)

	path, err := uploads.Save(fileHeader(t, "dog.png", []byte("png bytes")))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "dog.png"), path)
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("png bytes"), data)
}

func TestUploads_Save_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	uploads := NewUploads(dir)

	path, err := uploads.Save(fileHeader(t, "cat.jpg", []byte("jpg")))
	require.NoError(t, err)
	assert.FileExists(t, path)
}

func TestUploads_Save_StripsPathComponents(t *testing.T) {
	dir := t.TempDir()
	uploads := NewUploads(dir)

	// Client-supplied names must not escape the upload directory.
	path, err := uploads.Save(fileHeader(t, "../../etc/passwd", []byte("x")))
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(dir, "passwd"), path)
	assert.FileExists(t, path)
}

func TestUploads_Save_Overwrite(t *testing.T) {
	dir := t.TempDir()
	uploads := NewUploads(dir)

	_, err := uploads.Save(fileHeader(t, "dog.png", []byte("first")))
	require.NoError(t, err)
	path, err := uploads.Save(fileHeader(t, "dog.png", []byte("second")))
	require.NoError(t, err)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, []byte("second"), data)
}
