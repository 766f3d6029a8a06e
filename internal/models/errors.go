package models

import "errors"

// Sentinel errors returned by services and repositories. Handlers map
// these to HTTP statuses with errors.Is; they are never conflated.
var (
	// ErrNotFound means a well-formed id (or email) matched no record.
	ErrNotFound = errors.New("not found")
	// ErrEmailTaken means registration hit an already registered email.
	ErrEmailTaken = errors.New("email already registered")
	// ErrInvalidCredentials means the password did not verify against
	// the stored hash. Wrong password and unreadable hash are deliberately
	// indistinguishable.
	ErrInvalidCredentials = errors.New("invalid credentials")
	// ErrPasswordMismatch means password and confirm differ on registration.
	ErrPasswordMismatch = errors.New("passwords do not match")
	// ErrTermsNotAccepted means registration without accepting the terms.
	ErrTermsNotAccepted = errors.New("terms must be accepted")
	// ErrInvalidStatus means a status transition to an unknown status value.
	ErrInvalidStatus = errors.New("invalid status")
	// ErrInvalidGuests means a reservation for zero or negative guests.
	ErrInvalidGuests = errors.New("guests must be positive")
)
