package user

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/internal/modules/session/service"
	"github.com/zidaf/inayaspace/internal/modules/user/dto"
	"github.com/zidaf/inayaspace/internal/modules/user/repository"
	"github.com/zidaf/inayaspace/pkg/apperror"
	"github.com/zidaf/inayaspace/pkg/mailer"
)

// passwordSpecials is the fixed special-character set at least one of
// which every new password must contain.
const passwordSpecials = "!$@*%"

type AuthService interface {
	Login(ctx context.Context, email, password string) (*dto.AuthResponse, error)
	Verify(ctx context.Context, token string) (*entity.User, error)
	Logout(ctx context.Context, token string) error
	// ChangePassword rotates the password and revokes every other
	// session of the user; token is the session making the change.
	ChangePassword(ctx context.Context, user *entity.User, token, current, newPassword string) error
}

type authService struct {
	repo     repository.UserRepository
	sessions session.Service
	mail     mailer.Mailer
	log      *zap.Logger
}

func NewAuthService(repo repository.UserRepository, sessions session.Service, mail mailer.Mailer, log *zap.Logger) AuthService {
	if log == nil {
		log = zap.NewNop()
	}
	return &authService{
		repo:     repo,
		sessions: sessions,
		mail:     mail,
		log:      log,
	}
}

func (s *authService) Login(ctx context.Context, email, password string) (*dto.AuthResponse, error) {
	if email == "" || password == "" {
		return nil, fmt.Errorf("%w: email and password are required", apperror.ErrBadRequest)
	}

	user, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: invalid credentials", apperror.ErrUnauthorized)
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, fmt.Errorf("%w: invalid credentials", apperror.ErrUnauthorized)
	}

	token, err := s.sessions.Create(ctx, user.ID)
	if err != nil {
		return nil, err
	}

	return &dto.AuthResponse{
		Success: true,
		Token:   token,
		User:    user,
	}, nil
}

func (s *authService) Verify(ctx context.Context, token string) (*entity.User, error) {
	user := s.sessions.ResolveUser(ctx, token)
	if user == nil {
		return nil, fmt.Errorf("%w: session expired", apperror.ErrUnauthorized)
	}
	return user, nil
}

func (s *authService) Logout(ctx context.Context, token string) error {
	return s.sessions.Destroy(ctx, token)
}

func (s *authService) ChangePassword(ctx context.Context, user *entity.User, token, current, newPassword string) error {
	if current == "" || newPassword == "" {
		return fmt.Errorf("%w: passwords are required", apperror.ErrBadRequest)
	}

	if !PasswordMeetsPolicy(newPassword) {
		return fmt.Errorf("%w: password must contain at least 8 characters and one special character (%s)",
			apperror.ErrBadRequest, passwordSpecials)
	}

	// Re-fetch: the hash in the context user may be stale.
	stored, err := s.repo.FindByID(ctx, user.ID)
	if err != nil {
		return err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte(current)); err != nil {
		return fmt.Errorf("%w: current password is incorrect", apperror.ErrBadRequest)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.repo.UpdatePassword(ctx, user.ID, string(hash)); err != nil {
		return err
	}

	// A leaked credential may have opened sessions on other devices;
	// only the session performing the change survives.
	if err := s.sessions.DestroyOthers(ctx, user.ID, token); err != nil {
		s.log.Warn("failed to revoke other sessions", zap.String("email", stored.Email), zap.Error(err))
	}

	// Notification is best effort; the password is already changed.
	if s.mail != nil {
		go func(email string) {
			subject := "Changement de mot de passe - INAYASPACE"
			body := fmt.Sprintf("<p>Votre mot de passe a été modifié avec succès le %s.</p>",
				time.Now().Format("02/01/2006 à 15:04"))
			if err := s.mail.Send(email, subject, body); err != nil {
				s.log.Warn("password change mail failed", zap.String("email", email), zap.Error(err))
			}
		}(stored.Email)
	}

	return nil
}

// PasswordMeetsPolicy reports whether pw has at least 8 characters and
// at least one of the required special characters.
func PasswordMeetsPolicy(pw string) bool {
	return len(pw) >= 8 && strings.ContainsAny(pw, passwordSpecials)
}
