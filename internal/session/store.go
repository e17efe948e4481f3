package session

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/tiendaropa/backoffice/internal/models"
)

var ErrNotFound = errors.New("session not found")

// Store maps opaque session tokens to the authenticated user's id and
// display name. Handlers receive it explicitly; there is no ambient
// session state.
type Store interface {
	Create(ctx context.Context, userID uint, userName string) (*models.Session, error)
	Get(ctx context.Context, token string) (*models.Session, error)
	Delete(ctx context.Context, token string) error
}

// GormStore persists sessions in the database so logins survive a
// process restart.
type GormStore struct {
	DB  *gorm.DB
	TTL time.Duration
}

func NewGormStore(db *gorm.DB, ttl time.Duration) *GormStore {
	return &GormStore{DB: db, TTL: ttl}
}

func (s *GormStore) Create(ctx context.Context, userID uint, userName string) (*models.Session, error) {
	sess := models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		UserName:  userName,
		ExpiresAt: time.Now().Add(s.TTL),
	}
	if err := s.DB.WithContext(ctx).Create(&sess).Error; err != nil {
		return nil, err
	}
	return &sess, nil
}

func (s *GormStore) Get(ctx context.Context, token string) (*models.Session, error) {
	sess := models.Session{}
	err := s.DB.WithContext(ctx).Where("token = ?", token).First(&sess).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if time.Now().After(sess.ExpiresAt) {
		_ = s.Delete(ctx, token)
		return nil, ErrNotFound
	}
	return &sess, nil
}

func (s *GormStore) Delete(ctx context.Context, token string) error {
	return s.DB.WithContext(ctx).Where("token = ?", token).Delete(&models.Session{}).Error
}
