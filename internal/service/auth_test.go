package service

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/familygrill/backend/internal/models"
)

type mockUserRepo struct {
	EmailExistsFunc        func(ctx context.Context, email string) (bool, error)
	FindByEmailFunc        func(ctx context.Context, email string) (models.User, error)
	FindByIDFunc           func(ctx context.Context, id bson.ObjectID) (models.User, error)
	InsertFunc             func(ctx context.Context, u models.User) (bson.ObjectID, error)
	UpdateProfileFunc      func(ctx context.Context, email, name, phone string) error
	UpdatePasswordHashFunc func(ctx context.Context, email, hash string) error
}

func (m *mockUserRepo) EmailExists(ctx context.Context, email string) (bool, error) {
	return m.EmailExistsFunc(ctx, email)
}
func (m *mockUserRepo) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return m.FindByEmailFunc(ctx, email)
}
func (m *mockUserRepo) FindByID(ctx context.Context, id bson.ObjectID) (models.User, error) {
	return m.FindByIDFunc(ctx, id)
}
func (m *mockUserRepo) Insert(ctx context.Context, u models.User) (bson.ObjectID, error) {
	return m.InsertFunc(ctx, u)
}
func (m *mockUserRepo) UpdateProfile(ctx context.Context, email, name, phone string) error {
	return m.UpdateProfileFunc(ctx, email, name, phone)
}
func (m *mockUserRepo) UpdatePasswordHash(ctx context.Context, email, hash string) error {
	return m.UpdatePasswordHashFunc(ctx, email, hash)
}

// fakeHasher is a deterministic stand-in for the bcrypt hasher.
type fakeHasher struct {
	hashErr error
}

func (f *fakeHasher) Hash(secret string) (string, error) {
	if f.hashErr != nil {
		return "", f.hashErr
	}
	return "hashed:" + secret, nil
}

func (f *fakeHasher) Verify(secret, stored string) bool {
	return stored == "hashed:"+secret
}

func TestRegister_Success(t *testing.T) {
	assignedID := bson.NewObjectID()
	var inserted models.User

	repo := &mockUserRepo{
		EmailExistsFunc: func(ctx context.Context, email string) (bool, error) {
			return false, nil
		},
		InsertFunc: func(ctx context.Context, u models.User) (bson.ObjectID, error) {
			inserted = u
			return assignedID, nil
		},
		FindByIDFunc: func(ctx context.Context, id bson.ObjectID) (models.User, error) {
			if id != assignedID {
				t.Errorf("FindByID received id = %s; want %s", id.Hex(), assignedID.Hex())
			}
			return models.User{ID: id, Email: "alice@example.com", Role: models.RoleCustomer}, nil
		},
	}
	svc := NewAuthService(repo, &fakeHasher{})

	got, err := svc.Register(context.Background(), models.RegisterRequest{
		Email:         "alice@example.com",
		Password:      "Secret123!",
		Confirm:       "Secret123!",
		AcceptedTerms: true,
	})
	if err != nil {
		t.Fatalf("Register returned error: %v", err)
	}

	if got.ID != assignedID {
		t.Errorf("Register returned id %s; want %s", got.ID.Hex(), assignedID.Hex())
	}
	if inserted.PasswordHash != "hashed:Secret123!" {
		t.Errorf("stored hash = %q; want the hasher output", inserted.PasswordHash)
	}
	if !inserted.ID.IsZero() {
		t.Errorf("insert carried id %s; the store must assign it", inserted.ID.Hex())
	}
	if inserted.Role != models.RoleCustomer {
		t.Errorf("inserted role = %q; want %q", inserted.Role, models.RoleCustomer)
	}
	if !inserted.Active {
		t.Error("inserted user must be active")
	}
}

func TestRegister_Validation(t *testing.T) {
	tests := []struct {
		name    string
		req     models.RegisterRequest
		exists  bool
		wantErr error
	}{
		{
			name:    "confirm mismatch",
			req:     models.RegisterRequest{Email: "a@b.c", Password: "one", Confirm: "two", AcceptedTerms: true},
			wantErr: models.ErrPasswordMismatch,
		},
		{
			name:    "terms not accepted",
			req:     models.RegisterRequest{Email: "a@b.c", Password: "one", Confirm: "one"},
			wantErr: models.ErrTermsNotAccepted,
		},
		{
			name:    "email taken",
			req:     models.RegisterRequest{Email: "a@b.c", Password: "one", Confirm: "one", AcceptedTerms: true},
			exists:  true,
			wantErr: models.ErrEmailTaken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepo{
				EmailExistsFunc: func(ctx context.Context, email string) (bool, error) {
					return tt.exists, nil
				},
			}
			svc := NewAuthService(repo, &fakeHasher{})

			_, err := svc.Register(context.Background(), tt.req)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Register error = %v; want %v", err, tt.wantErr)
			}
		})
	}
}

func TestRegister_HashError(t *testing.T) {
	wantErr := errors.New("hash failed")
	repo := &mockUserRepo{
		EmailExistsFunc: func(ctx context.Context, email string) (bool, error) {
			return false, nil
		},
	}
	svc := NewAuthService(repo, &fakeHasher{hashErr: wantErr})

	_, err := svc.Register(context.Background(), models.RegisterRequest{
		Email: "a@b.c", Password: "one", Confirm: "one", AcceptedTerms: true,
	})
	if !errors.Is(err, wantErr) {
		t.Errorf("Register error = %v; want %v", err, wantErr)
	}
}

func TestLogin(t *testing.T) {
	stored := models.User{Email: "bob@example.com", PasswordHash: "hashed:right", Role: models.RoleCustomer}

	tests := []struct {
		name     string
		email    string
		password string
		findErr  error
		wantErr  error
	}{
		{name: "success", email: "bob@example.com", password: "right"},
		{name: "unknown email", email: "nobody@example.com", password: "right", findErr: models.ErrNotFound, wantErr: models.ErrNotFound},
		{name: "wrong password", email: "bob@example.com", password: "wrong", wantErr: models.ErrInvalidCredentials},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &mockUserRepo{
				FindByEmailFunc: func(ctx context.Context, email string) (models.User, error) {
					if tt.findErr != nil {
						return models.User{}, tt.findErr
					}
					return stored, nil
				},
			}
			svc := NewAuthService(repo, &fakeHasher{})

			got, err := svc.Login(context.Background(), tt.email, tt.password)
			if !errors.Is(err, tt.wantErr) {
				t.Fatalf("Login error = %v; want %v", err, tt.wantErr)
			}
			if tt.wantErr == nil && got.Email != stored.Email {
				t.Errorf("Login returned email %q; want %q", got.Email, stored.Email)
			}
		})
	}
}

func TestChangePassword(t *testing.T) {
	stored := models.User{Email: "carol@example.com", PasswordHash: "hashed:old"}

	t.Run("success", func(t *testing.T) {
		var newHash string
		repo := &mockUserRepo{
			FindByEmailFunc: func(ctx context.Context, email string) (models.User, error) {
				return stored, nil
			},
			UpdatePasswordHashFunc: func(ctx context.Context, email, hash string) error {
				newHash = hash
				return nil
			},
		}
		svc := NewAuthService(repo, &fakeHasher{})

		err := svc.ChangePassword(context.Background(), models.PasswordChange{
			Email: "carol@example.com", CurrentPassword: "old", NewPassword: "new",
		})
		if err != nil {
			t.Fatalf("ChangePassword returned error: %v", err)
		}
		if newHash != "hashed:new" {
			t.Errorf("stored hash = %q; want %q", newHash, "hashed:new")
		}
	})

	t.Run("wrong current password", func(t *testing.T) {
		repo := &mockUserRepo{
			FindByEmailFunc: func(ctx context.Context, email string) (models.User, error) {
				return stored, nil
			},
		}
		svc := NewAuthService(repo, &fakeHasher{})

		err := svc.ChangePassword(context.Background(), models.PasswordChange{
			Email: "carol@example.com", CurrentPassword: "guess", NewPassword: "new",
		})
		if !errors.Is(err, models.ErrInvalidCredentials) {
			t.Errorf("ChangePassword error = %v; want ErrInvalidCredentials", err)
		}
	})
}

func TestUpdateProfile(t *testing.T) {
	called := false
	repo := &mockUserRepo{
		UpdateProfileFunc: func(ctx context.Context, email, name, phone string) error {
			called = true
			if email != "dave@example.com" || name != "Dave" || phone != "555-0101" {
				t.Errorf("UpdateProfile received (%q, %q, %q)", email, name, phone)
			}
			return nil
		},
	}
	svc := NewAuthService(repo, &fakeHasher{})

	err := svc.UpdateProfile(context.Background(), models.ProfileUpdate{
		Email: "dave@example.com", Name: "Dave", Phone: "555-0101",
	})
	if err != nil {
		t.Fatalf("UpdateProfile returned error: %v", err)
	}
	if !called {
		t.Fatal("expected UpdateProfile to be called on repo")
	}
}
