package http

import (
	"io"
	"net/http"
	"path/filepath"

	"tweederent-backend/internal/storage"
)

// ImageHandler serves device photos back when the mock (local
// filesystem) storage is configured. With Firebase storage the image
// URLs point at the bucket directly and this handler is not mounted.
type ImageHandler struct {
	mockStorage *storage.MockStorageService
}

func NewImageHandler(mockStorage *storage.MockStorageService) *ImageHandler {
	return &ImageHandler{mockStorage: mockStorage}
}

func (h *ImageHandler) Download(w http.ResponseWriter, r *http.Request) {
	key := r.URL.Query().Get("key")
	if key == "" {
		http.Error(w, "Missing key parameter", http.StatusBadRequest)
		return
	}

	file, err := h.mockStorage.ReadFile(key)
	if err != nil {
		http.Error(w, "File not found", http.StatusNotFound)
		return
	}
	defer file.Close()

	contentType := "application/octet-stream"
	switch filepath.Ext(key) {
	case ".jpg", ".jpeg":
		contentType = "image/jpeg"
	case ".png":
		contentType = "image/png"
	case ".gif":
		contentType = "image/gif"
	}

	w.Header().Set("Content-Type", contentType)
	w.Header().Set("Cache-Control", "public, max-age=3600")
	io.Copy(w, file)
}
