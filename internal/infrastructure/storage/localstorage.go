// Package storage persists uploaded attachments on the local filesystem
// and exposes them under a public URL prefix.
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"casedesk/internal/domain/cases"
	"casedesk/internal/shared/config"
)

// unsafeChars collapses anything outside [A-Za-z0-9_.-] so uploaded
// filenames cannot escape the upload directory or break URLs.
var unsafeChars = regexp.MustCompile(`[^\w.\-]+`)

type LocalStorage struct {
	uploadDir    string
	publicPrefix string
}

func NewLocalStorage(cfg *config.StorageConfig) (*LocalStorage, error) {
	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &LocalStorage{
		uploadDir:    cfg.UploadDir,
		publicPrefix: strings.TrimRight(cfg.PublicPrefix, "/"),
	}, nil
}

// UploadDir returns the directory files are written to.
func (s *LocalStorage) UploadDir() string {
	return s.uploadDir
}

// Save writes one uploaded file to disk under a timestamped, sanitized
// name and returns its attachment record. The original filename is kept
// for display; the stored name is unique per upload.
func (s *LocalStorage) Save(file *multipart.FileHeader) (cases.Attachment, error) {
	src, err := file.Open()
	if err != nil {
		return cases.Attachment{}, fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	storedName := fmt.Sprintf("%d_%s", time.Now().UnixMilli(), SanitizeFilename(file.Filename))
	dstPath := filepath.Join(s.uploadDir, storedName)

	dst, err := os.Create(dstPath)
	if err != nil {
		return cases.Attachment{}, fmt.Errorf("failed to create file: %w", err)
	}
	defer dst.Close()

	size, err := io.Copy(dst, src)
	if err != nil {
		os.Remove(dstPath)
		return cases.Attachment{}, fmt.Errorf("failed to write file: %w", err)
	}

	return cases.Attachment{
		Filename: file.Filename,
		Path:     s.publicPrefix + "/" + storedName,
		Size:     size,
		MimeType: file.Header.Get("Content-Type"),
	}, nil
}

// SaveAll stores every file, cleaning up already-written files when one
// fails so a partial upload leaves nothing behind.
func (s *LocalStorage) SaveAll(files []*multipart.FileHeader) ([]cases.Attachment, error) {
	attachments := make([]cases.Attachment, 0, len(files))
	for _, file := range files {
		att, err := s.Save(file)
		if err != nil {
			for _, saved := range attachments {
				s.Remove(saved.Path)
			}
			return nil, err
		}
		attachments = append(attachments, att)
	}
	return attachments, nil
}

// Remove deletes a stored file given its public path. Missing files are
// not an error.
func (s *LocalStorage) Remove(publicPath string) error {
	name := filepath.Base(publicPath)
	if name == "." || name == "/" || name == "" {
		return nil
	}
	err := os.Remove(filepath.Join(s.uploadDir, name))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove file: %w", err)
	}
	return nil
}

// SanitizeFilename strips path components and replaces runs of unsafe
// characters with a single underscore.
func SanitizeFilename(name string) string {
	name = filepath.Base(name)
	name = unsafeChars.ReplaceAllString(name, "_")
	if name == "" || name == "." || name == ".." {
		name = "file"
	}
	return name
}
