package event

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/internal/modules/event/dto"
	"github.com/zidaf/inayaspace/internal/modules/event/repository"
	search "github.com/zidaf/inayaspace/internal/modules/search/service"
	"github.com/zidaf/inayaspace/pkg/apperror"
)

type Service interface {
	List(ctx context.Context) ([]entity.Event, error)
	Create(ctx context.Context, user *entity.User, req dto.CreateEventRequest) (*entity.Event, error)
	Update(ctx context.Context, user *entity.User, req dto.UpdateEventRequest) (*entity.Event, error)
	Delete(ctx context.Context, user *entity.User, id uuid.UUID) error
}

type eventService struct {
	repo   repository.EventRepository
	search search.Service
}

func NewService(repo repository.EventRepository, searchSvc search.Service) Service {
	return &eventService{repo: repo, search: searchSvc}
}

func (s *eventService) List(ctx context.Context) ([]entity.Event, error) {
	return s.repo.List(ctx)
}

func (s *eventService) Create(ctx context.Context, user *entity.User, req dto.CreateEventRequest) (*entity.Event, error) {
	// Events are planned by the parents only.
	if user.IsAdmin() {
		return nil, apperror.ErrForbidden
	}

	event := &entity.Event{
		Title:       req.Title,
		Description: req.Description,
		EventDate:   req.Date,
		Time:        req.Time,
		Location:    req.Location,
		Author:      user.Role,
	}
	if err := s.repo.Create(ctx, event); err != nil {
		return nil, err
	}

	s.index(event)
	return event, nil
}

func (s *eventService) Update(ctx context.Context, user *entity.User, req dto.UpdateEventRequest) (*entity.Event, error) {
	event, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: event not found", apperror.ErrForbidden)
		}
		return nil, err
	}

	if !user.IsAdmin() && event.Author != user.Role {
		return nil, apperror.ErrForbidden
	}

	event.Title = req.Title
	event.Description = req.Description
	event.EventDate = req.Date
	event.Time = req.Time
	event.Location = req.Location
	if err := s.repo.Update(ctx, event); err != nil {
		return nil, err
	}

	s.index(event)
	return event, nil
}

func (s *eventService) Delete(ctx context.Context, user *entity.User, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: id is required", apperror.ErrBadRequest)
	}

	event, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: event not found", apperror.ErrForbidden)
		}
		return err
	}

	if !user.IsAdmin() && event.Author != user.Role {
		return apperror.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.search != nil {
		s.search.Delete(entity.ContentEvent, id.String())
	}
	return nil
}

func (s *eventService) index(event *entity.Event) {
	if s.search == nil {
		return
	}
	s.search.Index(search.Document{
		ContentType: entity.ContentEvent,
		ContentID:   event.ID.String(),
		Title:       event.Title,
		Body:        event.Description + " " + event.Location,
		Date:        event.EventDate,
		Author:      event.Author,
	})
}
