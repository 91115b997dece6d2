package video

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/internal/modules/video/dto"
	"github.com/zidaf/inayaspace/internal/modules/video/repository"
	"github.com/zidaf/inayaspace/pkg/apperror"
)

const defaultCategory = "General"

type Service interface {
	List(ctx context.Context) ([]entity.Video, error)
	Create(ctx context.Context, user *entity.User, req dto.CreateVideoRequest) (*entity.Video, error)
	Update(ctx context.Context, user *entity.User, req dto.UpdateVideoRequest) (*entity.Video, error)
	Delete(ctx context.Context, user *entity.User, id uuid.UUID) error
}

type videoService struct {
	repo repository.VideoRepository
}

func NewService(repo repository.VideoRepository) Service {
	return &videoService{repo: repo}
}

func (s *videoService) List(ctx context.Context) ([]entity.Video, error) {
	return s.repo.List(ctx)
}

func (s *videoService) Create(ctx context.Context, user *entity.User, req dto.CreateVideoRequest) (*entity.Video, error) {
	// Videos are added by the parents only.
	if user.IsAdmin() {
		return nil, apperror.ErrForbidden
	}

	category := req.Category
	if category == "" {
		category = defaultCategory
	}

	video := &entity.Video{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		Category:    category,
		Author:      user.Role,
	}
	if err := s.repo.Create(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *videoService) Update(ctx context.Context, user *entity.User, req dto.UpdateVideoRequest) (*entity.Video, error) {
	video, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: video not found", apperror.ErrForbidden)
		}
		return nil, err
	}

	if !user.IsAdmin() && video.Author != user.Role {
		return nil, apperror.ErrForbidden
	}

	video.Title = req.Title
	video.Description = req.Description
	if req.URL != "" {
		video.URL = req.URL
	}
	video.Category = req.Category
	if err := s.repo.Update(ctx, video); err != nil {
		return nil, err
	}
	return video, nil
}

func (s *videoService) Delete(ctx context.Context, user *entity.User, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: id is required", apperror.ErrBadRequest)
	}

	video, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: video not found", apperror.ErrForbidden)
		}
		return err
	}

	if !user.IsAdmin() && video.Author != user.Role {
		return apperror.ErrForbidden
	}

	return s.repo.Delete(ctx, id)
}
