package user

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
	sessionRepo "github.com/zidaf/inayaspace/internal/modules/session/repository"
	session "github.com/zidaf/inayaspace/internal/modules/session/service"
	"github.com/zidaf/inayaspace/internal/modules/user/repository"
	"github.com/zidaf/inayaspace/internal/testutil/testdb"
	"github.com/zidaf/inayaspace/pkg/apperror"
)

func TestPasswordMeetsPolicy(t *testing.T) {
	cases := []struct {
		name string
		pw   string
		want bool
	}{
		{"valid with special", "famille2024!", true},
		{"exactly 8 with special", "abcdefg$", true},
		{"too short even with special", "abc!def", false},
		{"long but no special", "famille2024", false},
		{"special not in the allowed set", "famille2024#", false},
		{"empty", "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, PasswordMeetsPolicy(tc.pw))
		})
	}
}

func newAuthFixture(t *testing.T) (AuthService, *gorm.DB, *entity.User) {
	t.Helper()
	db := testdb.Open(t)

	hash, err := bcrypt.GenerateFromPassword([]byte("secret2024!"), bcrypt.MinCost)
	require.NoError(t, err)

	user := &entity.User{
		Email:        "maman@example.com",
		PasswordHash: string(hash),
		Role:         entity.RoleMaman,
	}
	require.NoError(t, db.Create(user).Error)

	sessions := session.NewService(sessionRepo.NewSessionRepository(db), session.DefaultTTL, nil)
	svc := NewAuthService(repository.NewUserRepository(db), sessions, nil, nil)
	return svc, db, user
}

func TestLogin(t *testing.T) {
	svc, _, user := newAuthFixture(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, user.Email, "secret2024!")
	require.NoError(t, err)
	require.True(t, resp.Success)
	require.Len(t, resp.Token, 64)
	require.Equal(t, user.Email, resp.User.Email)

	// The issued token resolves back to the same user.
	verified, err := svc.Verify(ctx, resp.Token)
	require.NoError(t, err)
	require.Equal(t, user.ID, verified.ID)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	svc, _, user := newAuthFixture(t)
	ctx := context.Background()

	_, err := svc.Login(ctx, user.Email, "wrong-password")
	require.ErrorIs(t, err, apperror.ErrUnauthorized)

	// An unknown account gets the same error as a wrong password.
	_, err = svc.Login(ctx, "nobody@example.com", "secret2024!")
	require.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.Login(ctx, "", "")
	require.ErrorIs(t, err, apperror.ErrBadRequest)
}

func TestLogoutInvalidatesSession(t *testing.T) {
	svc, _, user := newAuthFixture(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, user.Email, "secret2024!")
	require.NoError(t, err)

	require.NoError(t, svc.Logout(ctx, resp.Token))

	_, err = svc.Verify(ctx, resp.Token)
	require.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestChangePassword(t *testing.T) {
	svc, _, user := newAuthFixture(t)
	ctx := context.Background()

	resp, err := svc.Login(ctx, user.Email, "secret2024!")
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword(ctx, user, resp.Token, "secret2024!", "nouveau2025$"))

	// Old password no longer works, new one does.
	_, err = svc.Login(ctx, user.Email, "secret2024!")
	require.ErrorIs(t, err, apperror.ErrUnauthorized)

	_, err = svc.Login(ctx, user.Email, "nouveau2025$")
	require.NoError(t, err)
}

func TestChangePasswordRevokesOtherSessions(t *testing.T) {
	svc, _, user := newAuthFixture(t)
	ctx := context.Background()

	// Two devices logged in with the old password.
	current, err := svc.Login(ctx, user.Email, "secret2024!")
	require.NoError(t, err)
	other, err := svc.Login(ctx, user.Email, "secret2024!")
	require.NoError(t, err)

	require.NoError(t, svc.ChangePassword(ctx, user, current.Token, "secret2024!", "nouveau2025$"))

	// The session that changed the password survives, the other dies.
	_, err = svc.Verify(ctx, current.Token)
	require.NoError(t, err)
	_, err = svc.Verify(ctx, other.Token)
	require.ErrorIs(t, err, apperror.ErrUnauthorized)
}

func TestChangePasswordRejections(t *testing.T) {
	svc, _, user := newAuthFixture(t)
	ctx := context.Background()

	err := svc.ChangePassword(ctx, user, "", "wrong-current", "nouveau2025$")
	require.ErrorIs(t, err, apperror.ErrBadRequest)

	// New password failing the policy is rejected before any check of
	// the current one.
	err = svc.ChangePassword(ctx, user, "", "secret2024!", "weak")
	require.ErrorIs(t, err, apperror.ErrBadRequest)

	err = svc.ChangePassword(ctx, user, "", "secret2024!", "longenoughbutplain")
	require.ErrorIs(t, err, apperror.ErrBadRequest)

	// The stored password is untouched.
	_, err = svc.Login(ctx, user.Email, "secret2024!")
	require.NoError(t, err)
}
