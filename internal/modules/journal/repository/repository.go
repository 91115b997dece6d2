package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
)

type JournalRepository interface {
	List(ctx context.Context) ([]entity.JournalEntry, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.JournalEntry, error)
	Create(ctx context.Context, entry *entity.JournalEntry) error
	Update(ctx context.Context, entry *entity.JournalEntry) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type journalRepository struct {
	db *gorm.DB
}

func NewJournalRepository(db *gorm.DB) JournalRepository {
	return &journalRepository{db: db}
}

func (r *journalRepository) List(ctx context.Context) ([]entity.JournalEntry, error) {
	var entries []entity.JournalEntry
	err := r.db.WithContext(ctx).
		Order("entry_date DESC").
		Find(&entries).Error
	return entries, err
}

func (r *journalRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.JournalEntry, error) {
	var entry entity.JournalEntry
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&entry).Error; err != nil {
		return nil, err
	}
	return &entry, nil
}

func (r *journalRepository) Create(ctx context.Context, entry *entity.JournalEntry) error {
	return r.db.WithContext(ctx).Create(entry).Error
}

func (r *journalRepository) Update(ctx context.Context, entry *entity.JournalEntry) error {
	return r.db.WithContext(ctx).Save(entry).Error
}

func (r *journalRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.JournalEntry{}).Error
}
