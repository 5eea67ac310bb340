package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"tweederent-backend/internal/service"
)

// ReviewHandler exposes review submission and the review listings.
type ReviewHandler struct {
	reviewSvc service.ReviewService
}

func NewReviewHandler(reviewSvc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{reviewSvc: reviewSvc}
}

type submitReviewRequest struct {
	RentalID string `json:"rental_id"`
	Rating   int    `json:"rating"`
	Comment  string `json:"comment"`
}

func (h *ReviewHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitReviewRequest
	if !decodeBody(w, r, &req) {
		return
	}

	id, err := h.reviewSvc.SubmitReview(r.Context(), userFromContext(r.Context()), req.RentalID, req.Rating, req.Comment)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, map[string]string{"id": id})
}

func (h *ReviewHandler) ListForUser(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewSvc.GetUserReviews(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}

func (h *ReviewHandler) ListForDevice(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviewSvc.GetDeviceReviews(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, reviews)
}
