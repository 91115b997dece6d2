package admin

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/internal/modules/admin/dto"
	"github.com/zidaf/inayaspace/internal/modules/admin/repository"
	"github.com/zidaf/inayaspace/pkg/apperror"
)

const logListLimit = 100

// contentTables maps the API content types to their tables, and doubles
// as the whitelist for manage_content.
var contentTables = map[string]string{
	entity.ContentPhoto:        "photos",
	entity.ContentVideo:        "videos",
	entity.ContentJournal:      "journal_entries",
	entity.ContentConsultation: "consultations",
	entity.ContentEvent:        "events",
}

// mutableColumns lists the columns manage_content may touch per table.
var mutableColumns = map[string][]string{
	"photos":          {"title", "description", "url", "taken_at", "location"},
	"videos":          {"title", "description", "url", "category"},
	"journal_entries": {"title", "content", "mood", "entry_date"},
	"consultations":   {"location", "practitioner", "consultation_date", "time", "notes"},
	"events":          {"title", "description", "event_date", "time", "location"},
}

type Service interface {
	Stats(ctx context.Context) (*dto.StatsResponse, error)
	GetConfig(ctx context.Context) ([]dto.ConfigEntry, error)
	UpdateConfig(ctx context.Context, admin *entity.User, key, value string) error
	ManageContent(ctx context.Context, admin *entity.User, req dto.AdminRequest) error
	Logs(ctx context.Context) ([]dto.LogEntry, error)
}

type adminService struct {
	repo repository.AdminRepository
}

func NewService(repo repository.AdminRepository) Service {
	return &adminService{repo: repo}
}

func (s *adminService) Stats(ctx context.Context) (*dto.StatsResponse, error) {
	stats := &dto.StatsResponse{}

	counters := []struct {
		model interface{}
		dst   *int64
	}{
		{&entity.Photo{}, &stats.Photos},
		{&entity.Video{}, &stats.Videos},
		{&entity.JournalEntry{}, &stats.Journal},
		{&entity.Consultation{}, &stats.Consultations},
		{&entity.Event{}, &stats.Events},
		{&entity.Comment{}, &stats.Comments},
		{&entity.Like{}, &stats.Likes},
	}
	for _, c := range counters {
		count, err := s.repo.CountTable(ctx, c.model)
		if err != nil {
			return nil, err
		}
		*c.dst = count
	}

	family, err := s.repo.CountFamilyMembers(ctx)
	if err != nil {
		return nil, err
	}
	stats.FamilyMembers = family
	return stats, nil
}

func (s *adminService) GetConfig(ctx context.Context) ([]dto.ConfigEntry, error) {
	entries, err := s.repo.ListConfig(ctx)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.ConfigEntry, 0, len(entries))
	for _, e := range entries {
		resp = append(resp, dto.ConfigEntry{
			Key:       e.Key,
			Value:     e.Value,
			UpdatedBy: e.UpdatedBy.String(),
			UpdatedAt: e.UpdatedAt,
		})
	}
	return resp, nil
}

func (s *adminService) UpdateConfig(ctx context.Context, admin *entity.User, key, value string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return fmt.Errorf("%w: config key is required", apperror.ErrBadRequest)
	}

	if err := s.repo.UpsertConfig(ctx, &entity.AppConfig{
		Key:       key,
		Value:     value,
		UpdatedBy: admin.ID,
	}); err != nil {
		return err
	}

	s.log(ctx, admin, "update_config", "app_config", key, fmt.Sprintf("set %s", key))
	return nil
}

func (s *adminService) ManageContent(ctx context.Context, admin *entity.User, req dto.AdminRequest) error {
	table, ok := contentTables[req.ContentType]
	if !ok {
		return fmt.Errorf("%w: unknown content type", apperror.ErrBadRequest)
	}
	if req.ContentID == "" {
		return fmt.Errorf("%w: content_id is required", apperror.ErrBadRequest)
	}

	switch req.Operation {
	case "update":
		updates := filterColumns(table, req.Data)
		if len(updates) == 0 {
			return fmt.Errorf("%w: no updatable fields given", apperror.ErrBadRequest)
		}
		if err := s.repo.UpdateContent(ctx, table, req.ContentID, updates); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: content not found", apperror.ErrForbidden)
			}
			return err
		}
		s.log(ctx, admin, "update_content", table, req.ContentID, detailsJSON(updates))
		return nil

	case "delete":
		if err := s.repo.DeleteContent(ctx, table, req.ContentID); err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return fmt.Errorf("%w: content not found", apperror.ErrForbidden)
			}
			return err
		}
		s.log(ctx, admin, "delete_content", table, req.ContentID, "")
		return nil

	default:
		return fmt.Errorf("%w: operation must be update or delete", apperror.ErrBadRequest)
	}
}

func (s *adminService) Logs(ctx context.Context) ([]dto.LogEntry, error) {
	logs, err := s.repo.ListLogs(ctx, logListLimit)
	if err != nil {
		return nil, err
	}

	resp := make([]dto.LogEntry, 0, len(logs))
	for _, l := range logs {
		resp = append(resp, dto.LogEntry{
			ID:          l.ID.String(),
			AdminEmail:  l.Admin.Email,
			Action:      l.Action,
			TargetTable: l.TargetTable,
			TargetID:    l.TargetID,
			Details:     l.Details,
			CreatedAt:   l.CreatedAt,
		})
	}
	return resp, nil
}

func (s *adminService) log(ctx context.Context, admin *entity.User, action, table, targetID, details string) {
	err := s.repo.CreateLog(ctx, &entity.AdminLog{
		AdminID:     admin.ID,
		Action:      action,
		TargetTable: table,
		TargetID:    targetID,
		Details:     details,
	})
	if err != nil {
		zap.L().Warn("admin log write failed", zap.String("action", action), zap.Error(err))
	}
}

func filterColumns(table string, data map[string]interface{}) map[string]interface{} {
	allowed := mutableColumns[table]
	updates := make(map[string]interface{})
	for _, col := range allowed {
		if v, ok := data[col]; ok {
			updates[col] = v
		}
	}
	return updates
}

func detailsJSON(updates map[string]interface{}) string {
	b, err := json.Marshal(updates)
	if err != nil {
		return ""
	}
	return string(b)
}
