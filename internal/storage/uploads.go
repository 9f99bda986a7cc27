// Package storage persists uploaded media files to local disk. It only deals
// with bytes and paths; recording metadata is the media repository's job.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
)

// Uploads saves uploaded files under a base directory.
type Uploads struct {
	dir string
}

// NewUploads creates an Uploads store rooted at dir.
func NewUploads(dir string) *Uploads {
	return &Uploads{dir: dir}
}

// Save writes the uploaded file under the base directory and returns the
// stored path. The directory is created on first use.
func (u *Uploads) Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(u.dir, 0o755); err != nil {
		return "", fmt.Errorf("create upload dir: %w", err)
	}

	// filepath.Base guards against path traversal in client-supplied names.
	path := filepath.Join(u.dir, filepath.Base(file.Filename))

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("create stored file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("write stored file: %w", err)
	}

	return path, nil
}
