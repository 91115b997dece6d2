package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
)

type PhotoRepository interface {
	List(ctx context.Context) ([]entity.Photo, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error)
	Create(ctx context.Context, photo *entity.Photo) error
	Update(ctx context.Context, photo *entity.Photo) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type photoRepository struct {
	db *gorm.DB
}

func NewPhotoRepository(db *gorm.DB) PhotoRepository {
	return &photoRepository{db: db}
}

func (r *photoRepository) List(ctx context.Context) ([]entity.Photo, error) {
	var photos []entity.Photo
	err := r.db.WithContext(ctx).
		Order("taken_at DESC").
		Find(&photos).Error
	return photos, err
}

func (r *photoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Photo, error) {
	var photo entity.Photo
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&photo).Error; err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *photoRepository) Create(ctx context.Context, photo *entity.Photo) error {
	return r.db.WithContext(ctx).Create(photo).Error
}

func (r *photoRepository) Update(ctx context.Context, photo *entity.Photo) error {
	return r.db.WithContext(ctx).Save(photo).Error
}

func (r *photoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Photo{}).Error
}
