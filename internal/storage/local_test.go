package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

// uploadHeader builds a *multipart.FileHeader the way gin would hand one to a
// controller.
func uploadHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	buf := &bytes.Buffer{}
	mw := multipart.NewWriter(buf)
	fw, err := mw.CreateFormFile("images", filename)
	if err != nil {
		t.Fatalf("create form file: %v", err)
	}
	if _, err := fw.Write(content); err != nil {
		t.Fatalf("write form file: %v", err)
	}
	mw.Close()

	req := httptest.NewRequest(http.MethodPost, "/", buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if err := req.ParseMultipartForm(1 << 20); err != nil {
		t.Fatalf("parse multipart: %v", err)
	}
	files := req.MultipartForm.File["images"]
	if len(files) != 1 {
		t.Fatalf("expected 1 file header, got %d", len(files))
	}
	return files[0]
}

func TestLocalStorageSave(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "/uploads")

	url, err := s.Save(uploadHeader(t, "photo.PNG", []byte("png-bytes")))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if !strings.HasPrefix(url, "/uploads/") {
		t.Errorf("expected /uploads/ prefix, got %q", url)
	}
	if !strings.HasSuffix(url, ".png") {
		t.Errorf("expected lowercased original extension, got %q", url)
	}

	name := strings.TrimPrefix(url, "/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	if err != nil {
		t.Fatalf("read stored file: %v", err)
	}
	if string(data) != "png-bytes" {
		t.Errorf("stored content mismatch: %q", data)
	}
}

func TestLocalStorageSaveGeneratesUniqueNames(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "/uploads")

	a, err := s.Save(uploadHeader(t, "same.jpg", []byte("a")))
	if err != nil {
		t.Fatalf("save a: %v", err)
	}
	b, err := s.Save(uploadHeader(t, "same.jpg", []byte("b")))
	if err != nil {
		t.Fatalf("save b: %v", err)
	}
	if a == b {
		t.Errorf("expected distinct names for identical uploads, got %q twice", a)
	}
}

func TestLocalStorageRemove(t *testing.T) {
	dir := t.TempDir()
	s := NewLocalStorage(dir, "/uploads")

	url, err := s.Save(uploadHeader(t, "gone.jpg", []byte("x")))
	if err != nil {
		t.Fatalf("save: %v", err)
	}
	if err := s.Remove(url); err != nil {
		t.Fatalf("remove: %v", err)
	}
	name := strings.TrimPrefix(url, "/uploads/")
	if _, err := os.Stat(filepath.Join(dir, name)); !os.IsNotExist(err) {
		t.Errorf("expected file to be gone, stat err = %v", err)
	}

	// Removing twice is fine.
	if err := s.Remove(url); err != nil {
		t.Errorf("second remove should be a no-op, got %v", err)
	}
}

func TestLocalStorageRemoveIgnoresForeignURLs(t *testing.T) {
	s := NewLocalStorage(t.TempDir(), "/uploads")

	for _, url := range []string{
		"/placeholder.svg?height=300&width=500",
		"https://cdn.example.com/pic.png",
		"/uploads/../../etc/passwd",
	} {
		if err := s.Remove(url); err != nil {
			t.Errorf("Remove(%q) = %v, want nil", url, err)
		}
	}
}
