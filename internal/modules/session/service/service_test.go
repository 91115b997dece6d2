package session

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/internal/modules/session/repository"
	"github.com/zidaf/inayaspace/internal/testutil/testdb"
)

func newTestService(t *testing.T) (Service, *gorm.DB, *entity.User) {
	t.Helper()
	db := testdb.Open(t)

	user := &entity.User{
		Email:        "papa@example.com",
		PasswordHash: "x",
		Role:         entity.RolePapa,
	}
	require.NoError(t, db.Create(user).Error)

	svc := NewService(repository.NewSessionRepository(db), DefaultTTL, nil)
	return svc, db, user
}

func TestCreateAndValidate(t *testing.T) {
	svc, _, user := newTestService(t)
	ctx := context.Background()

	token, err := svc.Create(ctx, user.ID)
	require.NoError(t, err)
	require.Len(t, token, 64)

	require.True(t, svc.Validate(ctx, token))

	resolved := svc.ResolveUser(ctx, token)
	require.NotNil(t, resolved)
	require.Equal(t, user.ID, resolved.ID)
	require.Equal(t, entity.RolePapa, resolved.Role)
}

func TestTokensAreUnique(t *testing.T) {
	svc, _, user := newTestService(t)
	ctx := context.Background()

	t1, err := svc.Create(ctx, user.ID)
	require.NoError(t, err)
	t2, err := svc.Create(ctx, user.ID)
	require.NoError(t, err)
	require.NotEqual(t, t1, t2)
}

func TestExpiredSessionIsInvalid(t *testing.T) {
	svc, db, user := newTestService(t)
	ctx := context.Background()

	expired := &entity.Session{
		Token:     "deadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeefdeadbeef",
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(-time.Minute),
	}
	require.NoError(t, db.Create(expired).Error)

	require.False(t, svc.Validate(ctx, expired.Token))
	require.Nil(t, svc.ResolveUser(ctx, expired.Token))

	// The failed lookup also purged the stale row.
	var count int64
	require.NoError(t, db.Model(&entity.Session{}).
		Where("token = ?", expired.Token).
		Count(&count).Error)
	require.EqualValues(t, 0, count)
}

func TestDestroyInvalidatesToken(t *testing.T) {
	svc, _, user := newTestService(t)
	ctx := context.Background()

	token, err := svc.Create(ctx, user.ID)
	require.NoError(t, err)

	require.NoError(t, svc.Destroy(ctx, token))
	require.False(t, svc.Validate(ctx, token))

	// Destroying again, or destroying nothing, is fine.
	require.NoError(t, svc.Destroy(ctx, token))
	require.NoError(t, svc.Destroy(ctx, ""))
}

func TestDestroyOthersKeepsCurrentSession(t *testing.T) {
	svc, db, user := newTestService(t)
	ctx := context.Background()

	other := &entity.User{Email: "maman@example.com", PasswordHash: "x", Role: entity.RoleMaman}
	require.NoError(t, db.Create(other).Error)

	keep, err := svc.Create(ctx, user.ID)
	require.NoError(t, err)
	second, err := svc.Create(ctx, user.ID)
	require.NoError(t, err)
	third, err := svc.Create(ctx, user.ID)
	require.NoError(t, err)
	otherUsers, err := svc.Create(ctx, other.ID)
	require.NoError(t, err)

	require.NoError(t, svc.DestroyOthers(ctx, user.ID, keep))

	require.True(t, svc.Validate(ctx, keep))
	require.False(t, svc.Validate(ctx, second))
	require.False(t, svc.Validate(ctx, third))

	// Sessions of other accounts are untouched.
	require.True(t, svc.Validate(ctx, otherUsers))
}

func TestUnknownAndEmptyTokens(t *testing.T) {
	svc, _, _ := newTestService(t)
	ctx := context.Background()

	require.False(t, svc.Validate(ctx, ""))
	require.False(t, svc.Validate(ctx, "nope"))
	require.Nil(t, svc.ResolveUser(ctx, "nope"))
}

func TestIsAdmin(t *testing.T) {
	svc, db, parent := newTestService(t)
	ctx := context.Background()

	admin := &entity.User{
		Email:        "admin@example.com",
		PasswordHash: "x",
		Role:         entity.RoleAdmin,
	}
	require.NoError(t, db.Create(admin).Error)

	parentToken, err := svc.Create(ctx, parent.ID)
	require.NoError(t, err)
	adminToken, err := svc.Create(ctx, admin.ID)
	require.NoError(t, err)

	require.False(t, svc.IsAdmin(ctx, parentToken))
	require.True(t, svc.IsAdmin(ctx, adminToken))
	require.False(t, svc.IsAdmin(ctx, "unknown"))
}

func TestReapExpired(t *testing.T) {
	svc, db, user := newTestService(t)
	ctx := context.Background()

	live, err := svc.Create(ctx, user.ID)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		sess := &entity.Session{
			Token:     fmt.Sprintf("expired-%d", i),
			UserID:    user.ID,
			ExpiresAt: time.Now().Add(-time.Hour),
		}
		require.NoError(t, db.Create(sess).Error)
	}

	n, err := svc.ReapExpired(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 3, n)

	require.True(t, svc.Validate(ctx, live))
}
