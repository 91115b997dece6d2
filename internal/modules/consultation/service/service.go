package consultation

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/internal/modules/consultation/dto"
	"github.com/zidaf/inayaspace/internal/modules/consultation/repository"
	"github.com/zidaf/inayaspace/pkg/apperror"
)

type Service interface {
	List(ctx context.Context) ([]entity.Consultation, error)
	Add(ctx context.Context, user *entity.User, req dto.ConsultationRequest) (*entity.Consultation, error)
	Update(ctx context.Context, user *entity.User, req dto.ConsultationRequest) (*entity.Consultation, error)
	Delete(ctx context.Context, user *entity.User, id uuid.UUID) error
}

type consultationService struct {
	repo repository.ConsultationRepository
}

func NewService(repo repository.ConsultationRepository) Service {
	return &consultationService{repo: repo}
}

func (s *consultationService) List(ctx context.Context) ([]entity.Consultation, error) {
	return s.repo.List(ctx)
}

func (s *consultationService) Add(ctx context.Context, user *entity.User, req dto.ConsultationRequest) (*entity.Consultation, error) {
	if req.Location == "" || req.Practitioner == "" || req.ConsultationDate == "" {
		return nil, fmt.Errorf("%w: location, practitioner and date are required", apperror.ErrBadRequest)
	}

	consultation := &entity.Consultation{
		Location:         req.Location,
		Practitioner:     req.Practitioner,
		ConsultationDate: req.ConsultationDate,
		Time:             req.Time,
		Notes:            req.Notes,
		Author:           user.Role,
	}
	if err := s.repo.Create(ctx, consultation); err != nil {
		return nil, err
	}
	return consultation, nil
}

func (s *consultationService) Update(ctx context.Context, user *entity.User, req dto.ConsultationRequest) (*entity.Consultation, error) {
	if req.ID == uuid.Nil {
		return nil, fmt.Errorf("%w: id is required", apperror.ErrBadRequest)
	}

	consultation, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: consultation not found", apperror.ErrForbidden)
		}
		return nil, err
	}

	if !user.IsAdmin() && consultation.Author != user.Role {
		return nil, apperror.ErrForbidden
	}

	consultation.Location = req.Location
	consultation.Practitioner = req.Practitioner
	consultation.ConsultationDate = req.ConsultationDate
	consultation.Time = req.Time
	consultation.Notes = req.Notes
	if err := s.repo.Update(ctx, consultation); err != nil {
		return nil, err
	}
	return consultation, nil
}

func (s *consultationService) Delete(ctx context.Context, user *entity.User, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: id is required", apperror.ErrBadRequest)
	}

	consultation, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: consultation not found", apperror.ErrForbidden)
		}
		return err
	}

	if !user.IsAdmin() && consultation.Author != user.Role {
		return apperror.ErrForbidden
	}

	return s.repo.Delete(ctx, id)
}
