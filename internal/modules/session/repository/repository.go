package repository

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
)

type SessionRepository interface {
	Create(ctx context.Context, session *entity.Session) error
	// FindValid returns the session row for token with expires_at
	// strictly in the future, or gorm.ErrRecordNotFound. An expired
	// row for the token is deleted on the way.
	FindValid(ctx context.Context, token string, now time.Time) (*entity.Session, error)
	// ResolveUser joins user_sessions and users on a valid token.
	// Like FindValid, it purges an expired row for the token.
	ResolveUser(ctx context.Context, token string, now time.Time) (*entity.User, error)
	Delete(ctx context.Context, token string) error
	DeleteExpired(ctx context.Context, now time.Time) (int64, error)
	// DeleteByUser removes every session of userID except the one
	// holding keepToken; an empty keepToken removes them all.
	DeleteByUser(ctx context.Context, userID uuid.UUID, keepToken string) error
}

type sessionRepository struct {
	db *gorm.DB
}

func NewSessionRepository(db *gorm.DB) SessionRepository {
	return &sessionRepository{db: db}
}

func (r *sessionRepository) Create(ctx context.Context, session *entity.Session) error {
	return r.db.WithContext(ctx).Create(session).Error
}

func (r *sessionRepository) FindValid(ctx context.Context, token string, now time.Time) (*entity.Session, error) {
	var session entity.Session
	err := r.db.WithContext(ctx).
		Where("token = ? AND expires_at > ?", token, now).
		First(&session).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.purgeExpired(ctx, token, now)
		}
		return nil, err
	}
	return &session, nil
}

// purgeExpired drops an expired row for token so stale sessions do not
// sit in the table until the next sweep. Best effort.
func (r *sessionRepository) purgeExpired(ctx context.Context, token string, now time.Time) {
	r.db.WithContext(ctx).
		Where("token = ? AND expires_at <= ?", token, now).
		Delete(&entity.Session{})
}

func (r *sessionRepository) ResolveUser(ctx context.Context, token string, now time.Time) (*entity.User, error) {
	var user entity.User
	err := r.db.WithContext(ctx).
		Joins("JOIN user_sessions ON user_sessions.user_id = users.id").
		Where("user_sessions.token = ? AND user_sessions.expires_at > ?", token, now).
		First(&user).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			r.purgeExpired(ctx, token, now)
		}
		return nil, err
	}
	return &user, nil
}

func (r *sessionRepository) Delete(ctx context.Context, token string) error {
	return r.db.WithContext(ctx).
		Where("token = ?", token).
		Delete(&entity.Session{}).Error
}

func (r *sessionRepository) DeleteExpired(ctx context.Context, now time.Time) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("expires_at <= ?", now).
		Delete(&entity.Session{})
	return res.RowsAffected, res.Error
}

func (r *sessionRepository) DeleteByUser(ctx context.Context, userID uuid.UUID, keepToken string) error {
	q := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if keepToken != "" {
		q = q.Where("token <> ?", keepToken)
	}
	return q.Delete(&entity.Session{}).Error
}
