package photo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/internal/modules/photo/dto"
	"github.com/zidaf/inayaspace/internal/modules/photo/repository"
	search "github.com/zidaf/inayaspace/internal/modules/search/service"
	"github.com/zidaf/inayaspace/pkg/apperror"
)

type Service interface {
	List(ctx context.Context) ([]entity.Photo, error)
	Add(ctx context.Context, user *entity.User, req dto.PhotoRequest) (*entity.Photo, error)
	Update(ctx context.Context, user *entity.User, req dto.PhotoRequest) (*entity.Photo, error)
	Delete(ctx context.Context, user *entity.User, id uuid.UUID) error
}

type photoService struct {
	repo   repository.PhotoRepository
	search search.Service
}

func NewService(repo repository.PhotoRepository, searchSvc search.Service) Service {
	return &photoService{repo: repo, search: searchSvc}
}

func (s *photoService) List(ctx context.Context) ([]entity.Photo, error) {
	return s.repo.List(ctx)
}

func (s *photoService) Add(ctx context.Context, user *entity.User, req dto.PhotoRequest) (*entity.Photo, error) {
	if req.Title == "" || req.URL == "" {
		return nil, fmt.Errorf("%w: title and url are required", apperror.ErrBadRequest)
	}

	takenAt := req.TakenAt
	if takenAt == "" {
		takenAt = time.Now().Format("2006-01-02")
	}

	photo := &entity.Photo{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		TakenAt:     takenAt,
		Location:    req.Location,
		Author:      user.Role,
	}
	if err := s.repo.Create(ctx, photo); err != nil {
		return nil, err
	}

	s.index(photo)
	return photo, nil
}

func (s *photoService) Update(ctx context.Context, user *entity.User, req dto.PhotoRequest) (*entity.Photo, error) {
	if req.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: id is required", apperror.ErrBadRequest)
	}

	photo, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: photo not found", apperror.ErrForbidden)
		}
		return nil, err
	}

	if !user.IsAdmin() && photo.Author != user.Role {
		return nil, apperror.ErrForbidden
	}

	photo.Title = req.Title
	photo.Description = req.Description
	photo.TakenAt = req.TakenAt
	photo.Location = req.Location
	if err := s.repo.Update(ctx, photo); err != nil {
		return nil, err
	}

	s.index(photo)
	return photo, nil
}

func (s *photoService) Delete(ctx context.Context, user *entity.User, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: id is required", apperror.ErrBadRequest)
	}

	photo, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: photo not found", apperror.ErrForbidden)
		}
		return err
	}

	if !user.IsAdmin() && photo.Author != user.Role {
		return apperror.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.search != nil {
		s.search.Delete(entity.ContentPhoto, id.String())
	}
	return nil
}

func (s *photoService) index(photo *entity.Photo) {
	if s.search == nil {
		return
	}
	s.search.Index(search.Document{
		ContentType: entity.ContentPhoto,
		ContentID:   photo.ID.String(),
		Title:       photo.Title,
		Body:        photo.Description + " " + photo.Location,
		Date:        photo.TakenAt,
		Author:      photo.Author,
	})
}
