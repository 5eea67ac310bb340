package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"tweederent-backend/internal/domain"
	"tweederent-backend/internal/service"
)

// UserHandler exposes profile reads and updates.
type UserHandler struct {
	userSvc service.UserService
}

func NewUserHandler(userSvc service.UserService) *UserHandler {
	return &UserHandler{userSvc: userSvc}
}

func (h *UserHandler) GetMe(w http.ResponseWriter, r *http.Request) {
	user, err := h.userSvc.GetProfile(r.Context(), userFromContext(r.Context()))
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	user, err := h.userSvc.GetProfile(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}

type updateProfileRequest struct {
	Name        string          `json:"name"`
	PhoneNumber string          `json:"phone_number"`
	Location    domain.Location `json:"location"`
}

func (h *UserHandler) UpdateMe(w http.ResponseWriter, r *http.Request) {
	var req updateProfileRequest
	if !decodeBody(w, r, &req) {
		return
	}

	userID := userFromContext(r.Context())
	if err := h.userSvc.UpdateProfile(r.Context(), userID, req.Name, req.PhoneNumber, req.Location); err != nil {
		writeError(w, err)
		return
	}

	user, err := h.userSvc.GetProfile(r.Context(), userID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, user)
}
