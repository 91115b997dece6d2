package comment

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/internal/modules/comment/dto"
	"github.com/zidaf/inayaspace/internal/modules/comment/repository"
	"github.com/zidaf/inayaspace/internal/testutil/testdb"
	"github.com/zidaf/inayaspace/pkg/apperror"
)

func newCommentFixture(t *testing.T) (Service, *gorm.DB, *entity.User, *entity.User, *entity.User) {
	t.Helper()
	db := testdb.Open(t)

	papa := &entity.User{Email: "papa@example.com", PasswordHash: "x", Role: entity.RolePapa}
	maman := &entity.User{Email: "maman@example.com", PasswordHash: "x", Role: entity.RoleMaman}
	admin := &entity.User{Email: "admin@example.com", PasswordHash: "x", Role: entity.RoleAdmin}
	require.NoError(t, db.Create(papa).Error)
	require.NoError(t, db.Create(maman).Error)
	require.NoError(t, db.Create(admin).Error)

	svc := NewService(repository.NewCommentRepository(db))
	return svc, db, papa, maman, admin
}

func TestCreateComment(t *testing.T) {
	svc, _, papa, _, _ := newCommentFixture(t)
	ctx := context.Background()
	contentID := uuid.New()

	created, err := svc.Create(ctx, papa, dto.CreateCommentRequest{
		ContentType: entity.ContentPhoto,
		ContentID:   contentID,
		Text:        "  Quelle belle photo !  ",
	})
	require.NoError(t, err)
	require.Equal(t, "Quelle belle photo !", created.Text)
	require.Equal(t, papa.Email, created.Email)
	require.Equal(t, entity.RolePapa, created.UserType)

	listed, err := svc.ListForContent(ctx, entity.ContentPhoto, contentID)
	require.NoError(t, err)
	require.Len(t, listed, 1)
	require.Equal(t, created.ID, listed[0].ID)
}

func TestCommentLengthBound(t *testing.T) {
	svc, _, papa, _, _ := newCommentFixture(t)
	ctx := context.Background()

	atLimit := strings.Repeat("a", entity.CommentMaxLength)
	_, err := svc.Create(ctx, papa, dto.CreateCommentRequest{
		ContentType: entity.ContentPhoto,
		ContentID:   uuid.New(),
		Text:        atLimit,
	})
	require.NoError(t, err)

	_, err = svc.Create(ctx, papa, dto.CreateCommentRequest{
		ContentType: entity.ContentPhoto,
		ContentID:   uuid.New(),
		Text:        atLimit + "a",
	})
	require.ErrorIs(t, err, apperror.ErrBadRequest)

	_, err = svc.Create(ctx, papa, dto.CreateCommentRequest{
		ContentType: entity.ContentPhoto,
		ContentID:   uuid.New(),
		Text:        "   ",
	})
	require.ErrorIs(t, err, apperror.ErrBadRequest)
}

func TestCommentOwnership(t *testing.T) {
	svc, _, papa, maman, admin := newCommentFixture(t)
	ctx := context.Background()
	contentID := uuid.New()

	created, err := svc.Create(ctx, papa, dto.CreateCommentRequest{
		ContentType: entity.ContentJournal,
		ContentID:   contentID,
		Text:        "premier commentaire",
	})
	require.NoError(t, err)

	// Another parent can neither edit nor delete it.
	err = svc.Update(ctx, maman, dto.UpdateCommentRequest{CommentID: created.ID, Text: "modifié"})
	require.ErrorIs(t, err, apperror.ErrForbidden)
	err = svc.Delete(ctx, maman, created.ID)
	require.ErrorIs(t, err, apperror.ErrForbidden)

	// The owner can edit.
	require.NoError(t, svc.Update(ctx, papa, dto.UpdateCommentRequest{CommentID: created.ID, Text: "modifié"}))
	listed, err := svc.ListForContent(ctx, entity.ContentJournal, contentID)
	require.NoError(t, err)
	require.Equal(t, "modifié", listed[0].Text)

	// The admin can delete anyone's comment.
	require.NoError(t, svc.Delete(ctx, admin, created.ID))
	listed, err = svc.ListForContent(ctx, entity.ContentJournal, contentID)
	require.NoError(t, err)
	require.Empty(t, listed)
}

func TestMutatingMissingCommentIsForbidden(t *testing.T) {
	svc, _, papa, _, _ := newCommentFixture(t)
	ctx := context.Background()

	err := svc.Update(ctx, papa, dto.UpdateCommentRequest{CommentID: uuid.New(), Text: "x"})
	require.ErrorIs(t, err, apperror.ErrForbidden)

	err = svc.Delete(ctx, papa, uuid.New())
	require.ErrorIs(t, err, apperror.ErrForbidden)
}
