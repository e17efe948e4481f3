package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tiendaropa/backoffice/internal/hash"
	"github.com/tiendaropa/backoffice/internal/models"
	"github.com/tiendaropa/backoffice/internal/repo"
	"github.com/tiendaropa/backoffice/internal/session"
)

// dummyHash keeps login timing comparable when the email does not
// exist: the handler still pays for one bcrypt comparison.
var dummyHash, _ = hash.HashPassword("not-a-real-password")

type AuthService struct {
	Repo     *repo.GormRepo
	Sessions session.Store
}

// Login verifies the credentials and establishes a session. Unknown
// email and wrong password both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.Session, error) {
	user, err := s.Repo.GetUserByEmail(ctx, email)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		hash.CheckPassword(dummyHash, password)
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, password) {
		return nil, ErrInvalidCredentials
	}

	return s.Sessions.Create(ctx, user.ID, user.FullName)
}

// Logout destroys the session unconditionally; a missing or already
// expired token is not an error.
func (s *AuthService) Logout(ctx context.Context, token string) error {
	return s.Sessions.Delete(ctx, token)
}
