package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

// LocalStorage writes uploads to a directory that the server also exposes as
// static files.
type LocalStorage struct {
	baseDir   string // directory on disk, e.g. "public/uploads"
	urlPrefix string // public prefix the directory is served under, e.g. "/uploads"
}

func NewLocalStorage(baseDir, urlPrefix string) *LocalStorage {
	return &LocalStorage{baseDir: baseDir, urlPrefix: strings.TrimSuffix(urlPrefix, "/")}
}

func (s *LocalStorage) Save(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.baseDir, 0o755); err != nil {
		return "", fmt.Errorf("storage: mkdir: %w", err)
	}

	name := uuid.NewString() + strings.ToLower(filepath.Ext(file.Filename))
	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("storage: open upload: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(s.baseDir, name))
	if err != nil {
		return "", fmt.Errorf("storage: create: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("storage: write: %w", err)
	}
	return s.urlPrefix + "/" + name, nil
}

func (s *LocalStorage) Remove(url string) error {
	if !strings.HasPrefix(url, s.urlPrefix+"/") {
		return nil
	}
	name := path.Base(strings.TrimPrefix(url, s.urlPrefix+"/"))
	if name == "" || name == "." || name == ".." {
		return nil
	}
	if err := os.Remove(filepath.Join(s.baseDir, name)); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("storage: remove: %w", err)
	}
	return nil
}
