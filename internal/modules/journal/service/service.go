package journal

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/internal/modules/journal/dto"
	"github.com/zidaf/inayaspace/internal/modules/journal/repository"
	search "github.com/zidaf/inayaspace/internal/modules/search/service"
	"github.com/zidaf/inayaspace/pkg/apperror"
)

type Service interface {
	List(ctx context.Context) ([]entity.JournalEntry, error)
	Create(ctx context.Context, user *entity.User, req dto.CreateEntryRequest) (*entity.JournalEntry, error)
	Update(ctx context.Context, user *entity.User, req dto.UpdateEntryRequest) (*entity.JournalEntry, error)
	Delete(ctx context.Context, user *entity.User, id uuid.UUID) error
}

type journalService struct {
	repo   repository.JournalRepository
	search search.Service
}

func NewService(repo repository.JournalRepository, searchSvc search.Service) Service {
	return &journalService{repo: repo, search: searchSvc}
}

func (s *journalService) List(ctx context.Context) ([]entity.JournalEntry, error) {
	return s.repo.List(ctx)
}

func (s *journalService) Create(ctx context.Context, user *entity.User, req dto.CreateEntryRequest) (*entity.JournalEntry, error) {
	// The journal belongs to the parents; the admin account cannot
	// write entries.
	if user.IsAdmin() {
		return nil, apperror.ErrForbidden
	}

	date := req.Date
	if date == "" {
		date = time.Now().Format("2006-01-02")
	}

	entry := &entity.JournalEntry{
		Title:     req.Title,
		Content:   req.Content,
		Mood:      req.Mood,
		EntryDate: date,
		Author:    user.Role,
	}
	if err := s.repo.Create(ctx, entry); err != nil {
		return nil, err
	}

	s.index(entry)
	return entry, nil
}

func (s *journalService) Update(ctx context.Context, user *entity.User, req dto.UpdateEntryRequest) (*entity.JournalEntry, error) {
	entry, err := s.repo.FindByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, fmt.Errorf("%w: journal entry not found", apperror.ErrForbidden)
		}
		return nil, err
	}

	if !user.IsAdmin() && entry.Author != user.Role {
		return nil, apperror.ErrForbidden
	}

	entry.Title = req.Title
	entry.Content = req.Content
	entry.Mood = req.Mood
	entry.EntryDate = req.Date
	if err := s.repo.Update(ctx, entry); err != nil {
		return nil, err
	}

	s.index(entry)
	return entry, nil
}

func (s *journalService) Delete(ctx context.Context, user *entity.User, id uuid.UUID) error {
	if id == uuid.Nil {
		return fmt.Errorf("%w: id is required", apperror.ErrBadRequest)
	}

	entry, err := s.repo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: journal entry not found", apperror.ErrForbidden)
		}
		return err
	}

	if !user.IsAdmin() && entry.Author != user.Role {
		return apperror.ErrForbidden
	}

	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}

	if s.search != nil {
		s.search.Delete(entity.ContentJournal, id.String())
	}
	return nil
}

func (s *journalService) index(entry *entity.JournalEntry) {
	if s.search == nil {
		return
	}
	s.search.Index(search.Document{
		ContentType: entity.ContentJournal,
		ContentID:   entry.ID.String(),
		Title:       entry.Title,
		Body:        entry.Content,
		Date:        entry.EntryDate,
		Author:      entry.Author,
	})
}
