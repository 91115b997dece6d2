package comment

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/internal/modules/comment/dto"
	"github.com/zidaf/inayaspace/internal/modules/comment/repository"
	"github.com/zidaf/inayaspace/pkg/apperror"
)

type Service interface {
	ListForContent(ctx context.Context, contentType string, contentID uuid.UUID) ([]dto.CommentResponse, error)
	Create(ctx context.Context, user *entity.User, req dto.CreateCommentRequest) (*dto.CommentResponse, error)
	Update(ctx context.Context, user *entity.User, req dto.UpdateCommentRequest) error
	Delete(ctx context.Context, user *entity.User, commentID uuid.UUID) error
}

type commentService struct {
	repo repository.CommentRepository
}

func NewService(repo repository.CommentRepository) Service {
	return &commentService{repo: repo}
}

func (s *commentService) ListForContent(ctx context.Context, contentType string, contentID uuid.UUID) ([]dto.CommentResponse, error) {
	comments, err := s.repo.ListForContent(ctx, contentType, contentID)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.CommentResponse, 0, len(comments))
	for i := range comments {
		resp = append(resp, dto.NewCommentResponse(&comments[i], &comments[i].User))
	}
	return resp, nil
}

func (s *commentService) Create(ctx context.Context, user *entity.User, req dto.CreateCommentRequest) (*dto.CommentResponse, error) {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return nil, fmt.Errorf("%w: comment text is required", apperror.ErrBadRequest)
	}
	if len(text) > entity.CommentMaxLength {
		return nil, fmt.Errorf("%w: comment cannot exceed %d characters", apperror.ErrBadRequest, entity.CommentMaxLength)
	}

	comment := &entity.Comment{
		UserID:      user.ID,
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		Text:        text,
	}
	if err := s.repo.Create(ctx, comment); err != nil {
		return nil, err
	}

	resp := dto.NewCommentResponse(comment, user)
	return &resp, nil
}

func (s *commentService) Update(ctx context.Context, user *entity.User, req dto.UpdateCommentRequest) error {
	text := strings.TrimSpace(req.Text)
	if text == "" {
		return fmt.Errorf("%w: comment text is required", apperror.ErrBadRequest)
	}
	if len(text) > entity.CommentMaxLength {
		return fmt.Errorf("%w: comment cannot exceed %d characters", apperror.ErrBadRequest, entity.CommentMaxLength)
	}

	comment, err := s.repo.FindByID(ctx, req.CommentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: comment not found", apperror.ErrForbidden)
		}
		return err
	}

	// Comments are owned per user, unlike content items.
	if comment.UserID != user.ID && !user.IsAdmin() {
		return apperror.ErrForbidden
	}

	comment.Text = text
	return s.repo.Update(ctx, comment)
}

func (s *commentService) Delete(ctx context.Context, user *entity.User, commentID uuid.UUID) error {
	comment, err := s.repo.FindByID(ctx, commentID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: comment not found", apperror.ErrForbidden)
		}
		return err
	}

	if comment.UserID != user.ID && !user.IsAdmin() {
		return apperror.ErrForbidden
	}

	return s.repo.Delete(ctx, commentID)
}
