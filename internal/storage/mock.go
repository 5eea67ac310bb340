package storage

import (
	"context"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"
)

// MockStorageService implements ObjectStorage on the local filesystem.
// This is for demo/testing without a cloud bucket; the HTTP layer serves
// the files back under /api/v1/images.
type MockStorageService struct {
	baseURL    string // server URL, e.g. "http://localhost:8080"
	uploadsDir string
}

func NewMockStorageService(baseURL, uploadsDir string) (*MockStorageService, error) {
	if err := os.MkdirAll(uploadsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}
	return &MockStorageService{baseURL: baseURL, uploadsDir: uploadsDir}, nil
}

func (m *MockStorageService) Upload(_ context.Context, key, _ string, r io.Reader) (string, error) {
	path, err := m.safePath(key)
	if err != nil {
		return "", err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return "", fmt.Errorf("failed to create directory for %s: %w", key, err)
	}

	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create file %s: %w", key, err)
	}
	defer f.Close()

	if _, err := io.Copy(f, r); err != nil {
		return "", fmt.Errorf("failed to write file %s: %w", key, err)
	}

	return fmt.Sprintf("%s/api/v1/images?key=%s", m.baseURL, url.QueryEscape(key)), nil
}

func (m *MockStorageService) Delete(_ context.Context, key string) error {
	path, err := m.safePath(key)
	if err != nil {
		return err
	}
	if err := os.Remove(path); err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to delete file %s: %w", key, err)
	}
	return nil
}

// ReadFile opens a stored blob for the HTTP download handler.
func (m *MockStorageService) ReadFile(key string) (io.ReadCloser, error) {
	path, err := m.safePath(key)
	if err != nil {
		return nil, err
	}
	return os.Open(path)
}

// safePath resolves key inside the uploads dir, rejecting traversal.
func (m *MockStorageService) safePath(key string) (string, error) {
	cleaned := filepath.Clean("/" + key)
	if strings.Contains(cleaned, "..") {
		return "", fmt.Errorf("invalid storage key %q", key)
	}
	return filepath.Join(m.uploadsDir, cleaned), nil
}
