package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/familygrill/backend/internal/ids"
	"github.com/familygrill/backend/internal/models"
	"github.com/familygrill/backend/internal/security"
)

// Machine-readable error codes returned alongside the message.
const (
	codeInvalidRequestBody = "invalid_request_body"
	codeMissingField       = "missing_required_field"
	codeInvalidID          = "invalid_id"
	codeNotFound           = "not_found"
	codeEmailTaken         = "email_taken"
	codeInvalidCredentials = "invalid_credentials"
	codePasswordMismatch   = "password_mismatch"
	codeTermsNotAccepted   = "terms_not_accepted"
	codeInvalidPassword    = "invalid_password"
	codeInvalidStatus      = "invalid_status"
	codeInvalidGuests      = "invalid_guests"
	codeInternalError      = "internal_error"
)

type errorResponse struct {
	Error string `json:"error"`
	Code  string `json:"code"`
}

func writeError(w http.ResponseWriter, status int, code, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(errorResponse{Error: msg, Code: code})
}

// writeServiceError maps domain errors to HTTP statuses. The malformed-id
// and not-found cases stay distinct: the first is the client's fault, the
// second is a miss.
func writeServiceError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, ids.ErrInvalidID):
		writeError(w, http.StatusBadRequest, codeInvalidID, "invalid id")
	case errors.Is(err, models.ErrNotFound):
		writeError(w, http.StatusNotFound, codeNotFound, "not found")
	case errors.Is(err, models.ErrEmailTaken):
		writeError(w, http.StatusConflict, codeEmailTaken, "email already registered")
	case errors.Is(err, models.ErrInvalidCredentials):
		writeError(w, http.StatusUnauthorized, codeInvalidCredentials, "invalid credentials")
	case errors.Is(err, models.ErrPasswordMismatch):
		writeError(w, http.StatusBadRequest, codePasswordMismatch, "passwords do not match")
	case errors.Is(err, models.ErrTermsNotAccepted):
		writeError(w, http.StatusBadRequest, codeTermsNotAccepted, "terms must be accepted")
	case errors.Is(err, security.ErrEmptySecret), errors.Is(err, security.ErrSecretTooLong):
		writeError(w, http.StatusBadRequest, codeInvalidPassword, "invalid password")
	case errors.Is(err, models.ErrInvalidStatus):
		writeError(w, http.StatusBadRequest, codeInvalidStatus, "invalid status")
	case errors.Is(err, models.ErrInvalidGuests):
		writeError(w, http.StatusBadRequest, codeInvalidGuests, "guests must be positive")
	default:
		writeError(w, http.StatusInternalServerError, codeInternalError, "internal error")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}
