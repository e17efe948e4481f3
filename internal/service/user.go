package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/tiendaropa/backoffice/internal/hash"
	"github.com/tiendaropa/backoffice/internal/models"
	"github.com/tiendaropa/backoffice/internal/repo"
	"github.com/tiendaropa/backoffice/internal/transport"
)

const minPasswordLen = 6

type UserService struct {
	Repo *repo.GormRepo
}

func (s *UserService) List(ctx context.Context) ([]models.User, error) {
	return s.Repo.GetUsers(ctx)
}

func (s *UserService) Get(ctx context.Context, id uint) (*models.User, error) {
	user, err := s.Repo.GetUser(ctx, id)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) Create(ctx context.Context, req transport.CreateUserRequest) (*models.User, error) {
	v := &ValidationError{}

	fullName := trimmed(req.FullName)
	if req.FullName == nil || fullName == "" {
		v.Add("full_name", "full_name is required")
	}
	email := trimmed(req.Email)
	if req.Email == nil || email == "" {
		v.Add("email", "email is required")
	}
	switch {
	case req.Password == nil || *req.Password == "":
		v.Add("password", "password is required")
	case len(*req.Password) < minPasswordLen:
		v.Add("password", "password must be at least 6 characters")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	taken, err := s.Repo.EmailTaken(ctx, email)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, ErrEmailTaken
	}

	pwHash, err := hash.HashPassword(*req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		FullName:     fullName,
		Email:        email,
		PasswordHash: pwHash,
	}
	if err := s.Repo.CreateUser(ctx, user); err != nil {
		// Unique index backstop for the check-then-insert race.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Update(ctx context.Context, id uint, req transport.UpdateUserRequest) (*models.User, error) {
	v := &ValidationError{}

	fullName := trimmed(req.FullName)
	if req.FullName == nil || fullName == "" {
		v.Add("full_name", "full_name is required")
	}
	email := trimmed(req.Email)
	if req.Email == nil || email == "" {
		v.Add("email", "email is required")
	}
	if err := v.OrNil(); err != nil {
		return nil, err
	}

	user, err := s.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	// Keeping the current email is always allowed.
	if user.Email != email {
		taken, err := s.Repo.EmailTaken(ctx, email)
		if err != nil {
			return nil, err
		}
		if taken {
			return nil, ErrEmailTaken
		}
	}

	user.FullName = fullName
	user.Email = email
	if err := s.Repo.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return user, nil
}

func (s *UserService) Delete(ctx context.Context, id uint) error {
	if _, err := s.Get(ctx, id); err != nil {
		return err
	}
	return s.Repo.DeleteUser(ctx, id)
}
