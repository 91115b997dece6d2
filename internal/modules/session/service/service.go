package session

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/internal/modules/session/repository"
)

// DefaultTTL is how long a freshly issued session stays valid.
const DefaultTTL = 30 * 24 * time.Hour

// Service translates opaque bearer tokens into authenticated identities
// and manages token lifecycle. Every endpoint is gated through it.
type Service interface {
	// Create issues a new random token for userID.
	Create(ctx context.Context, userID uuid.UUID) (string, error)
	// Validate reports whether token belongs to an unexpired session.
	// Any storage error counts as invalid (fail closed).
	Validate(ctx context.Context, token string) bool
	// ResolveUser returns the user owning a valid session, or nil.
	ResolveUser(ctx context.Context, token string) *entity.User
	// Destroy deletes the session unconditionally; destroying an
	// unknown token is not an error.
	Destroy(ctx context.Context, token string) error
	// DestroyOthers revokes every session of userID except the one
	// holding keepToken.
	DestroyOthers(ctx context.Context, userID uuid.UUID, keepToken string) error
	// IsAdmin reports whether token resolves to the admin role.
	IsAdmin(ctx context.Context, token string) bool
	// ReapExpired removes sessions past their expiry.
	ReapExpired(ctx context.Context) (int64, error)
}

type service struct {
	repo repository.SessionRepository
	ttl  time.Duration
	log  *zap.Logger
}

func NewService(repo repository.SessionRepository, ttl time.Duration, log *zap.Logger) Service {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &service{repo: repo, ttl: ttl, log: log}
}

func (s *service) Create(ctx context.Context, userID uuid.UUID) (string, error) {
	token, err := newToken()
	if err != nil {
		return "", err
	}

	sess := &entity.Session{
		Token:     token,
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.ttl),
	}
	if err := s.repo.Create(ctx, sess); err != nil {
		return "", fmt.Errorf("failed to create session: %w", err)
	}

	return token, nil
}

func (s *service) Validate(ctx context.Context, token string) bool {
	if token == "" {
		return false
	}
	_, err := s.repo.FindValid(ctx, token, time.Now())
	return err == nil
}

func (s *service) ResolveUser(ctx context.Context, token string) *entity.User {
	if token == "" {
		return nil
	}
	user, err := s.repo.ResolveUser(ctx, token, time.Now())
	if err != nil {
		return nil
	}
	return user
}

func (s *service) Destroy(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.repo.Delete(ctx, token)
}

func (s *service) DestroyOthers(ctx context.Context, userID uuid.UUID, keepToken string) error {
	return s.repo.DeleteByUser(ctx, userID, keepToken)
}

func (s *service) IsAdmin(ctx context.Context, token string) bool {
	user := s.ResolveUser(ctx, token)
	return user != nil && user.IsAdmin()
}

func (s *service) ReapExpired(ctx context.Context) (int64, error) {
	n, err := s.repo.DeleteExpired(ctx, time.Now())
	if err != nil {
		return 0, err
	}
	if n > 0 {
		s.log.Info("reaped expired sessions", zap.Int64("count", n))
	}
	return n, nil
}

// newToken returns 256 bits from the CSPRNG, hex encoded.
func newToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to generate session token: %w", err)
	}
	return hex.EncodeToString(buf), nil
}
