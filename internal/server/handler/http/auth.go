// Package http provides the HTTP handlers and router for the
// food-ordering API.
package http

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/familygrill/backend/internal/models"
)

// AuthService defines the interface for authentication operations
// required by the HTTP handlers.
type AuthService interface {
	// Register validates and stores a new user.
	Register(ctx context.Context, req models.RegisterRequest) (models.User, error)
	// Login authenticates a user by email and password.
	Login(ctx context.Context, email, password string) (models.User, error)
	// UpdateProfile sets name and phone on an existing account.
	UpdateProfile(ctx context.Context, req models.ProfileUpdate) error
	// ChangePassword verifies the current password and stores a new hash.
	ChangePassword(ctx context.Context, req models.PasswordChange) error
}

// AuthHandler handles HTTP requests for registration, login and account
// maintenance.
type AuthHandler struct {
	AuthService AuthService
}

// Register handles POST /api/register.
// It expects email, password, confirm and accepted_terms, and responds
// with the stored user (password hash excluded) on success.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req models.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, codeMissingField, "email and password are required")
		return
	}

	user, err := h.AuthService.Register(r.Context(), req)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// Login handles POST /api/login.
// On success it responds with the account's email and role. No session
// or token is issued.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	if req.Email == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, codeMissingField, "email and password are required")
		return
	}

	user, err := h.AuthService.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{
		"status": "ok",
		"email":  user.Email,
		"role":   user.Role,
	})
}

// UpdateProfile handles PUT /api/users/profile.
func (h *AuthHandler) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	var req models.ProfileUpdate
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	if req.Email == "" {
		writeError(w, http.StatusBadRequest, codeMissingField, "email is required")
		return
	}

	if err := h.AuthService.UpdateProfile(r.Context(), req); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// ChangePassword handles POST /api/users/password.
func (h *AuthHandler) ChangePassword(w http.ResponseWriter, r *http.Request) {
	var req models.PasswordChange
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, codeInvalidRequestBody, "invalid request body")
		return
	}
	if req.Email == "" || req.CurrentPassword == "" || req.NewPassword == "" {
		writeError(w, http.StatusBadRequest, codeMissingField, "email and both passwords are required")
		return
	}

	if err := h.AuthService.ChangePassword(r.Context(), req); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
