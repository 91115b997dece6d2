package repository

import (
	"context"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/zidaf/inayaspace/internal/entity"
)

type AdminRepository interface {
	CountTable(ctx context.Context, model interface{}) (int64, error)
	CountFamilyMembers(ctx context.Context) (int64, error)
	ListConfig(ctx context.Context) ([]entity.AppConfig, error)
	UpsertConfig(ctx context.Context, cfg *entity.AppConfig) error
	CreateLog(ctx context.Context, log *entity.AdminLog) error
	ListLogs(ctx context.Context, limit int) ([]entity.AdminLog, error)
	// UpdateContent applies column updates to one row of an allowed
	// content table; returns gorm.ErrRecordNotFound when no row matched.
	UpdateContent(ctx context.Context, table string, id string, updates map[string]interface{}) error
	DeleteContent(ctx context.Context, table string, id string) error
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CountTable(ctx context.Context, model interface{}) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(model).Count(&count).Error
	return count, err
}

func (r *adminRepository) CountFamilyMembers(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&entity.User{}).
		Where("role <> ?", entity.RoleAdmin).
		Count(&count).Error
	return count, err
}

func (r *adminRepository) ListConfig(ctx context.Context) ([]entity.AppConfig, error) {
	var entries []entity.AppConfig
	err := r.db.WithContext(ctx).Order("config_key ASC").Find(&entries).Error
	return entries, err
}

func (r *adminRepository) UpsertConfig(ctx context.Context, cfg *entity.AppConfig) error {
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "config_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"config_value", "updated_by", "updated_at"}),
		}).
		Create(cfg).Error
}

func (r *adminRepository) CreateLog(ctx context.Context, log *entity.AdminLog) error {
	return r.db.WithContext(ctx).Create(log).Error
}

func (r *adminRepository) ListLogs(ctx context.Context, limit int) ([]entity.AdminLog, error) {
	var logs []entity.AdminLog
	err := r.db.WithContext(ctx).
		Preload("Admin").
		Order("created_at DESC").
		Limit(limit).
		Find(&logs).Error
	return logs, err
}

func (r *adminRepository) UpdateContent(ctx context.Context, table string, id string, updates map[string]interface{}) error {
	res := r.db.WithContext(ctx).Table(table).Where("id = ?", id).Updates(updates)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

func (r *adminRepository) DeleteContent(ctx context.Context, table string, id string) error {
	// table comes from the service's whitelist, never from user input
	res := r.db.WithContext(ctx).Exec("DELETE FROM "+table+" WHERE id = ?", id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}
