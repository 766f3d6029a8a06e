// Package service provides the business logic for authentication, the
// catalog, orders and reservations, delegating persistence to repositories.
package service

import (
	"context"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/familygrill/backend/internal/models"
)

// UserRepository defines the persistence operations required by the
// authentication service.
type UserRepository interface {
	// EmailExists reports whether a user with the given email exists.
	EmailExists(ctx context.Context, email string) (bool, error)
	// FindByEmail returns the user registered under email.
	FindByEmail(ctx context.Context, email string) (models.User, error)
	// FindByID returns the user with the given store id.
	FindByID(ctx context.Context, id bson.ObjectID) (models.User, error)
	// Insert creates a new user record and returns the assigned id.
	Insert(ctx context.Context, u models.User) (bson.ObjectID, error)
	// UpdateProfile sets name and phone for the user with the given email.
	UpdateProfile(ctx context.Context, email, name, phone string) error
	// UpdatePasswordHash replaces the stored credential hash.
	UpdatePasswordHash(ctx context.Context, email, hash string) error
}

// Hasher defines the credential operations required by the
// authentication service.
type Hasher interface {
	// Hash derives a salted one-way hash from secret.
	Hash(secret string) (string, error)
	// Verify reports whether secret matches the stored hash.
	Verify(secret, stored string) bool
}

// AuthService implements registration, login and account maintenance.
type AuthService struct {
	repo   UserRepository
	hasher Hasher
}

// NewAuthService constructs an AuthService using the provided repository
// and hasher.
func NewAuthService(repo UserRepository, hasher Hasher) *AuthService {
	return &AuthService{repo: repo, hasher: hasher}
}

// Register validates the request, hashes the password and stores the new
// user. The plaintext password and the confirm field are never persisted.
// Returns the stored record as the store re-read it.
func (s *AuthService) Register(ctx context.Context, req models.RegisterRequest) (models.User, error) {
	if req.Password != req.Confirm {
		return models.User{}, models.ErrPasswordMismatch
	}
	if !req.AcceptedTerms {
		return models.User{}, models.ErrTermsNotAccepted
	}

	exists, err := s.repo.EmailExists(ctx, req.Email)
	if err != nil {
		return models.User{}, err
	}
	if exists {
		return models.User{}, models.ErrEmailTaken
	}

	hash, err := s.hasher.Hash(req.Password)
	if err != nil {
		return models.User{}, err
	}

	id, err := s.repo.Insert(ctx, models.User{
		Email:         req.Email,
		PasswordHash:  hash,
		AcceptedTerms: req.AcceptedTerms,
		Active:        true,
		Role:          models.RoleCustomer,
	})
	if err != nil {
		return models.User{}, err
	}

	return s.repo.FindByID(ctx, id)
}

// Login authenticates a user by email and password. An unknown email
// yields models.ErrNotFound; a password that does not verify yields
// models.ErrInvalidCredentials. No session or token is issued.
func (s *AuthService) Login(ctx context.Context, email, password string) (models.User, error) {
	u, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		return models.User{}, err
	}
	if !s.hasher.Verify(password, u.PasswordHash) {
		return models.User{}, models.ErrInvalidCredentials
	}
	return u, nil
}

// UpdateProfile sets name and phone on the account registered under the
// request's email.
func (s *AuthService) UpdateProfile(ctx context.Context, req models.ProfileUpdate) error {
	return s.repo.UpdateProfile(ctx, req.Email, req.Name, req.Phone)
}

// ChangePassword verifies the current password and replaces the stored
// hash with one derived from the new password.
func (s *AuthService) ChangePassword(ctx context.Context, req models.PasswordChange) error {
	u, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return err
	}
	if !s.hasher.Verify(req.CurrentPassword, u.PasswordHash) {
		return models.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(req.NewPassword)
	if err != nil {
		return err
	}
	return s.repo.UpdatePasswordHash(ctx, req.Email, hash)
}
