package http

import (
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"tweederent-backend/internal/apperr"
	"tweederent-backend/internal/domain"
	"tweederent-backend/internal/service"
)

const maxImageUploadBytes = 10 << 20

// DeviceHandler exposes device listings, search and photo uploads.
type DeviceHandler struct {
	deviceSvc service.DeviceService
}

func NewDeviceHandler(deviceSvc service.DeviceService) *DeviceHandler {
	return &DeviceHandler{deviceSvc: deviceSvc}
}

func (h *DeviceHandler) Create(w http.ResponseWriter, r *http.Request) {
	var device domain.Device
	if !decodeBody(w, r, &device) {
		return
	}

	id, err := h.deviceSvc.AddDevice(r.Context(), userFromContext(r.Context()), &device)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *DeviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	device, err := h.deviceSvc.GetDevice(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, device)
}

func (h *DeviceHandler) Update(w http.ResponseWriter, r *http.Request) {
	var device domain.Device
	if !decodeBody(w, r, &device) {
		return
	}
	device.ID = mux.Vars(r)["id"]

	if err := h.deviceSvc.UpdateDevice(r.Context(), userFromContext(r.Context()), &device); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, device)
}

func (h *DeviceHandler) Delete(w http.ResponseWriter, r *http.Request) {
	if err := h.deviceSvc.DeleteDevice(r.Context(), userFromContext(r.Context()), mux.Vars(r)["id"]); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

func (h *DeviceHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	devices, err := h.deviceSvc.GetDevicesByOwner(r.Context(), userFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, devices)
}

// Search supports q, category and an optional lat/lng/radius_km triple.
func (h *DeviceHandler) Search(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	var center *domain.Location
	var radiusKM float64
	if q.Get("lat") != "" || q.Get("lng") != "" {
		lat, errLat := strconv.ParseFloat(q.Get("lat"), 64)
		lng, errLng := strconv.ParseFloat(q.Get("lng"), 64)
		if errLat != nil || errLng != nil {
			writeError(w, apperr.Validation("lat and lng must be decimal degrees"))
			return
		}
		radius, err := strconv.ParseFloat(q.Get("radius_km"), 64)
		if err != nil || radius <= 0 {
			writeError(w, apperr.Validation("radius_km must be a positive number"))
			return
		}
		center = &domain.Location{Latitude: lat, Longitude: lng}
		radiusKM = radius
	}

	devices, err := h.deviceSvc.SearchDevices(r.Context(), q.Get("q"), q.Get("category"), center, radiusKM)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, devices)
}

func (h *DeviceHandler) UploadImage(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxImageUploadBytes); err != nil {
		writeError(w, apperr.Validation("invalid multipart form"))
		return
	}
	file, header, err := r.FormFile("image")
	if err != nil {
		writeError(w, apperr.Validation("image file is required"))
		return
	}
	defer file.Close()

	contentType := header.Header.Get("Content-Type")
	switch contentType {
	case "image/jpeg", "image/png", "image/gif":
	default:
		writeError(w, apperr.Validation("unsupported image type %s", contentType))
		return
	}

	url, err := h.deviceSvc.UploadDeviceImage(
		r.Context(),
		userFromContext(r.Context()),
		mux.Vars(r)["id"],
		header.Filename,
		contentType,
		file,
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"url": url})
}

func (h *DeviceHandler) ListCategories(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.deviceSvc.ListCategories())
}
