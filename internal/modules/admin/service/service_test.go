package admin

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/internal/modules/admin/dto"
	"github.com/zidaf/inayaspace/internal/modules/admin/repository"
	"github.com/zidaf/inayaspace/internal/testutil/testdb"
	"github.com/zidaf/inayaspace/pkg/apperror"
)

func newAdminFixture(t *testing.T) (Service, *gorm.DB, *entity.User) {
	t.Helper()
	db := testdb.Open(t)

	admin := &entity.User{Email: "admin@example.com", PasswordHash: "x", Role: entity.RoleAdmin}
	require.NoError(t, db.Create(admin).Error)

	svc := NewService(repository.NewAdminRepository(db))
	return svc, db, admin
}

func TestStats(t *testing.T) {
	svc, db, _ := newAdminFixture(t)
	ctx := context.Background()

	papa := &entity.User{Email: "papa@example.com", PasswordHash: "x", Role: entity.RolePapa}
	maman := &entity.User{Email: "maman@example.com", PasswordHash: "x", Role: entity.RoleMaman}
	require.NoError(t, db.Create(papa).Error)
	require.NoError(t, db.Create(maman).Error)

	require.NoError(t, db.Create(&entity.Photo{Title: "plage", URL: "https://x/p.webp", TakenAt: "2026-08-01", Author: entity.RolePapa}).Error)
	require.NoError(t, db.Create(&entity.JournalEntry{Title: "premier mot", Content: "inaya a dit papa", EntryDate: "2026-08-02", Author: entity.RoleMaman}).Error)
	require.NoError(t, db.Create(&entity.Comment{UserID: papa.ID, ContentType: entity.ContentPhoto, ContentID: uuid.New(), Text: "bravo"}).Error)

	stats, err := svc.Stats(ctx)
	require.NoError(t, err)
	require.EqualValues(t, 1, stats.Photos)
	require.EqualValues(t, 0, stats.Videos)
	require.EqualValues(t, 1, stats.Journal)
	require.EqualValues(t, 1, stats.Comments)
	// The admin account does not count as a family member.
	require.EqualValues(t, 2, stats.FamilyMembers)
}

func TestUpdateConfigUpsertsAndLogs(t *testing.T) {
	svc, _, admin := newAdminFixture(t)
	ctx := context.Background()

	require.NoError(t, svc.UpdateConfig(ctx, admin, "site_title", "Notre espace"))
	require.NoError(t, svc.UpdateConfig(ctx, admin, "site_title", "INAYASPACE"))

	config, err := svc.GetConfig(ctx)
	require.NoError(t, err)
	require.Len(t, config, 1)
	require.Equal(t, "site_title", config[0].Key)
	require.Equal(t, "INAYASPACE", config[0].Value)
	require.Equal(t, admin.ID.String(), config[0].UpdatedBy)

	logs, err := svc.Logs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.Equal(t, "update_config", logs[0].Action)
	require.Equal(t, admin.Email, logs[0].AdminEmail)
}

func TestManageContent(t *testing.T) {
	svc, db, admin := newAdminFixture(t)
	ctx := context.Background()

	entry := &entity.JournalEntry{Title: "avant", Content: "contenu", EntryDate: "2026-08-10", Author: entity.RolePapa}
	require.NoError(t, db.Create(entry).Error)

	err := svc.ManageContent(ctx, admin, dto.AdminRequest{
		Action:      "manage_content",
		Operation:   "update",
		ContentType: entity.ContentJournal,
		ContentID:   entry.ID.String(),
		Data: map[string]interface{}{
			"title": "après",
			"id":    "ignored",
		},
	})
	require.NoError(t, err)

	var updated entity.JournalEntry
	require.NoError(t, db.First(&updated, "id = ?", entry.ID).Error)
	require.Equal(t, "après", updated.Title)
	require.Equal(t, "contenu", updated.Content)

	err = svc.ManageContent(ctx, admin, dto.AdminRequest{
		Action:      "manage_content",
		Operation:   "delete",
		ContentType: entity.ContentJournal,
		ContentID:   entry.ID.String(),
	})
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&entity.JournalEntry{}).Count(&count).Error)
	require.Zero(t, count)

	logs, err := svc.Logs(ctx)
	require.NoError(t, err)
	require.Len(t, logs, 2)
	require.Equal(t, "delete_content", logs[0].Action)
	require.Equal(t, "journal_entries", logs[0].TargetTable)
}

func TestManageContentRejections(t *testing.T) {
	svc, _, admin := newAdminFixture(t)
	ctx := context.Background()

	err := svc.ManageContent(ctx, admin, dto.AdminRequest{
		Action:      "manage_content",
		Operation:   "delete",
		ContentType: "users",
		ContentID:   uuid.New().String(),
	})
	require.ErrorIs(t, err, apperror.ErrBadRequest)

	err = svc.ManageContent(ctx, admin, dto.AdminRequest{
		Action:      "manage_content",
		Operation:   "delete",
		ContentType: entity.ContentPhoto,
		ContentID:   uuid.New().String(),
	})
	require.ErrorIs(t, err, apperror.ErrForbidden)

	err = svc.ManageContent(ctx, admin, dto.AdminRequest{
		Action:      "manage_content",
		Operation:   "archive",
		ContentType: entity.ContentPhoto,
		ContentID:   uuid.New().String(),
	})
	require.ErrorIs(t, err, apperror.ErrBadRequest)
}
