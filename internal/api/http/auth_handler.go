package http

import (
	"net/http"
	"strings"
	"time"

	"tweederent-backend/internal/apperr"
	"tweederent-backend/internal/domain"
	"tweederent-backend/internal/identity"
	"tweederent-backend/internal/logger"
	"tweederent-backend/internal/repository"
)

// AuthHandler exposes account registration and session endpoints on top
// of the identity provider.
type AuthHandler struct {
	provider identity.Provider
	users    repository.UserRepository
}

func NewAuthHandler(provider identity.Provider, users repository.UserRepository) *AuthHandler {
	return &AuthHandler{provider: provider, users: users}
}

type signUpRequest struct {
	Email       string `json:"email"`
	Password    string `json:"password"`
	Name        string `json:"name"`
	PhoneNumber string `json:"phone_number"`
}

type signUpResponse struct {
	UserID string `json:"user_id"`
}

func (h *AuthHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req signUpRequest
	if !decodeBody(w, r, &req) {
		return
	}
	req.Email = strings.TrimSpace(strings.ToLower(req.Email))
	if req.Email == "" || !strings.Contains(req.Email, "@") {
		writeError(w, apperr.Validation("a valid email is required"))
		return
	}
	if len(req.Password) < 8 {
		writeError(w, apperr.Validation("password must be at least 8 characters"))
		return
	}

	userID, err := h.provider.SignUp(r.Context(), req.Email, req.Password)
	if err != nil {
		writeError(w, err)
		return
	}

	// The local provider creates the profile document itself; the
	// Firebase provider only creates the auth account.
	user, err := h.users.GetByID(r.Context(), userID)
	if apperr.Is(err, apperr.KindNotFound) {
		user = &domain.User{
			ID:         userID,
			Email:      req.Email,
			CreateDate: time.Now().UTC(),
		}
		if err := h.users.Create(r.Context(), user); err != nil {
			writeError(w, err)
			return
		}
	} else if err != nil {
		writeError(w, err)
		return
	}

	if req.Name != "" || req.PhoneNumber != "" {
		user.Name = req.Name
		user.PhoneNumber = req.PhoneNumber
		user.UpdateDate = time.Now().UTC()
		if err := h.users.Update(r.Context(), user); err != nil {
			writeError(w, err)
			return
		}
	}

	logger.Info("User registered", "user_id", userID, "email", req.Email)
	writeJSON(w, http.StatusCreated, signUpResponse{UserID: userID})
}

type signInRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type signInResponse struct {
	Token string `json:"token"`
}

func (h *AuthHandler) SignIn(w http.ResponseWriter, r *http.Request) {
	var req signInRequest
	if !decodeBody(w, r, &req) {
		return
	}

	token, err := h.provider.SignIn(r.Context(), strings.TrimSpace(strings.ToLower(req.Email)), req.Password)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, signInResponse{Token: token})
}

func (h *AuthHandler) SignOut(w http.ResponseWriter, r *http.Request) {
	header := r.Header.Get("Authorization")
	token := strings.TrimPrefix(header, "Bearer ")
	if token == "" || token == header {
		writeJSON(w, http.StatusUnauthorized, errorResponse{Error: "missing bearer token"})
		return
	}

	if err := h.provider.SignOut(r.Context(), token); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusNoContent, nil)
}

type passwordResetRequest struct {
	Email string `json:"email"`
}

func (h *AuthHandler) SendPasswordReset(w http.ResponseWriter, r *http.Request) {
	var req passwordResetRequest
	if !decodeBody(w, r, &req) {
		return
	}

	// Always answer 202, so the endpoint does not reveal which emails
	// have accounts.
	if _, err := h.provider.SendPasswordReset(r.Context(), strings.TrimSpace(strings.ToLower(req.Email))); err != nil {
		logger.Debug("Password reset request failed", "error", err)
	}
	writeJSON(w, http.StatusAccepted, nil)
}
