package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"tweederent-backend/internal/apperr"
	"tweederent-backend/internal/service"
)

// RentalHandler exposes the booking flow and the rental status machine.
type RentalHandler struct {
	bookingSvc service.BookingService
	rentalSvc  service.RentalService
}

func NewRentalHandler(bookingSvc service.BookingService, rentalSvc service.RentalService) *RentalHandler {
	return &RentalHandler{bookingSvc: bookingSvc, rentalSvc: rentalSvc}
}

// parseDateMillis converts an epoch-milliseconds value to UTC time.
// The mobile clients send dates as millis.
func parseDateMillis(raw string) (time.Time, error) {
	millis, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return time.Time{}, apperr.Validation("invalid date %q, expected epoch milliseconds", raw)
	}
	return time.UnixMilli(millis).UTC(), nil
}

type createBookingRequest struct {
	DeviceID    string `json:"device_id"`
	StartMillis int64  `json:"start_date"`
	EndMillis   int64  `json:"end_date"`
}

func (h *RentalHandler) CreateBooking(w http.ResponseWriter, r *http.Request) {
	var req createBookingRequest
	if !decodeBody(w, r, &req) {
		return
	}

	rental, err := h.bookingSvc.CreateBooking(
		r.Context(),
		userFromContext(r.Context()),
		req.DeviceID,
		time.UnixMilli(req.StartMillis).UTC(),
		time.UnixMilli(req.EndMillis).UTC(),
	)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, rental)
}

type availabilityResponse struct {
	DeviceID  string `json:"device_id"`
	Available bool   `json:"available"`
}

func (h *RentalHandler) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	deviceID := mux.Vars(r)["id"]

	start, err := parseDateMillis(r.URL.Query().Get("start"))
	if err != nil {
		writeError(w, err)
		return
	}
	end, err := parseDateMillis(r.URL.Query().Get("end"))
	if err != nil {
		writeError(w, err)
		return
	}

	available, err := h.bookingSvc.CheckAvailability(r.Context(), deviceID, start, end)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, availabilityResponse{DeviceID: deviceID, Available: available})
}

func (h *RentalHandler) Approve(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.ApproveRental(r.Context(), userFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Deny(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.DenyRental(r.Context(), userFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Start(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.StartRental(r.Context(), userFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Complete(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.CompleteRental(r.Context(), userFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) Get(w http.ResponseWriter, r *http.Request) {
	rental, err := h.rentalSvc.GetRental(r.Context(), userFromContext(r.Context()), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rental)
}

func (h *RentalHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalSvc.GetUserRentals(r.Context(), userFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) ListReceivedRequests(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalSvc.GetReceivedRentalRequests(r.Context(), userFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}

func (h *RentalHandler) ListActive(w http.ResponseWriter, r *http.Request) {
	rentals, err := h.rentalSvc.GetActiveRentals(r.Context(), userFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, rentals)
}
