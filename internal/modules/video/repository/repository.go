package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
)

type VideoRepository interface {
	List(ctx context.Context) ([]entity.Video, error)
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error)
	Create(ctx context.Context, video *entity.Video) error
	Update(ctx context.Context, video *entity.Video) error
	Delete(ctx context.Context, id uuid.UUID) error
}

type videoRepository struct {
	db *gorm.DB
}

func NewVideoRepository(db *gorm.DB) VideoRepository {
	return &videoRepository{db: db}
}

func (r *videoRepository) List(ctx context.Context) ([]entity.Video, error) {
	var videos []entity.Video
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Find(&videos).Error
	return videos, err
}

func (r *videoRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Video, error) {
	var video entity.Video
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func (r *videoRepository) Create(ctx context.Context, video *entity.Video) error {
	return r.db.WithContext(ctx).Create(video).Error
}

func (r *videoRepository) Update(ctx context.Context, video *entity.Video) error {
	return r.db.WithContext(ctx).Save(video).Error
}

func (r *videoRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).
		Where("id = ?", id).
		Delete(&entity.Video{}).Error
}
