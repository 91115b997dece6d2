package photo

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/internal/modules/photo/dto"
	"github.com/zidaf/inayaspace/internal/modules/photo/repository"
	"github.com/zidaf/inayaspace/internal/testutil/testdb"
	"github.com/zidaf/inayaspace/pkg/apperror"
)

func newPhotoFixture(t *testing.T) (Service, *gorm.DB, *entity.User, *entity.User, *entity.User) {
	t.Helper()
	db := testdb.Open(t)

	papa := &entity.User{Email: "papa@example.com", PasswordHash: "x", Role: entity.RolePapa}
	maman := &entity.User{Email: "maman@example.com", PasswordHash: "x", Role: entity.RoleMaman}
	admin := &entity.User{Email: "admin@example.com", PasswordHash: "x", Role: entity.RoleAdmin}
	require.NoError(t, db.Create(papa).Error)
	require.NoError(t, db.Create(maman).Error)
	require.NoError(t, db.Create(admin).Error)

	svc := NewService(repository.NewPhotoRepository(db), nil)
	return svc, db, papa, maman, admin
}

func TestAddPhoto(t *testing.T) {
	svc, _, papa, _, _ := newPhotoFixture(t)
	ctx := context.Background()

	photo, err := svc.Add(ctx, papa, dto.PhotoRequest{
		Action: "add",
		Title:  "Premier sourire",
		URL:    "https://res.cloudinary.com/demo/sourire.webp",
	})
	require.NoError(t, err)
	require.Equal(t, entity.RolePapa, photo.Author)
	require.NotEmpty(t, photo.TakenAt)

	_, err = svc.Add(ctx, papa, dto.PhotoRequest{Action: "add", Title: "sans url"})
	require.ErrorIs(t, err, apperror.ErrBadRequest)

	_, err = svc.Add(ctx, papa, dto.PhotoRequest{Action: "add", URL: "https://x/y.webp"})
	require.ErrorIs(t, err, apperror.ErrBadRequest)
}

func TestListOrderedByTakenAt(t *testing.T) {
	svc, _, papa, _, _ := newPhotoFixture(t)
	ctx := context.Background()

	for _, takenAt := range []string{"2026-08-01", "2026-08-20", "2026-08-10"} {
		_, err := svc.Add(ctx, papa, dto.PhotoRequest{
			Action:  "add",
			Title:   "photo " + takenAt,
			URL:     "https://x/" + takenAt + ".webp",
			TakenAt: takenAt,
		})
		require.NoError(t, err)
	}

	photos, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, photos, 3)
	require.Equal(t, "2026-08-20", photos[0].TakenAt)
	require.Equal(t, "2026-08-01", photos[2].TakenAt)
}

func TestPhotoOwnershipIsPerRole(t *testing.T) {
	svc, _, papa, maman, admin := newPhotoFixture(t)
	ctx := context.Background()

	photo, err := svc.Add(ctx, papa, dto.PhotoRequest{
		Action:  "add",
		Title:   "Bain du soir",
		URL:     "https://x/bain.webp",
		TakenAt: "2026-08-12",
	})
	require.NoError(t, err)

	_, err = svc.Update(ctx, maman, dto.PhotoRequest{
		Action: "update", ID: photo.ID, Title: "x", TakenAt: "2026-08-12",
	})
	require.ErrorIs(t, err, apperror.ErrForbidden)
	require.ErrorIs(t, svc.Delete(ctx, maman, photo.ID), apperror.ErrForbidden)

	updated, err := svc.Update(ctx, papa, dto.PhotoRequest{
		Action: "update", ID: photo.ID, Title: "Bain du soir, bis", TakenAt: "2026-08-12",
	})
	require.NoError(t, err)
	require.Equal(t, "Bain du soir, bis", updated.Title)

	require.NoError(t, svc.Delete(ctx, admin, photo.ID))
}

func TestMutatingMissingPhoto(t *testing.T) {
	svc, _, papa, _, _ := newPhotoFixture(t)
	ctx := context.Background()

	_, err := svc.Update(ctx, papa, dto.PhotoRequest{Action: "update", ID: uuid.New(), Title: "x"})
	require.ErrorIs(t, err, apperror.ErrForbidden)
	require.ErrorIs(t, svc.Delete(ctx, papa, uuid.New()), apperror.ErrForbidden)

	// A nil id is a malformed request, not a permissions problem.
	_, err = svc.Update(ctx, papa, dto.PhotoRequest{Action: "update"})
	require.ErrorIs(t, err, apperror.ErrBadRequest)
	require.ErrorIs(t, svc.Delete(ctx, papa, uuid.Nil), apperror.ErrBadRequest)
}
