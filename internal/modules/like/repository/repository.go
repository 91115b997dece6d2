package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
)

type LikeRepository interface {
	FindEmoji(ctx context.Context, id uint) (*entity.EmojiType, error)
	// Upsert creates the like or replaces its emoji; returns the
	// previous emoji id (0 when the user had no like yet).
	Upsert(ctx context.Context, like *entity.Like) (uint, error)
	// Remove deletes the user's like; returns the removed emoji id
	// (0 when there was nothing to remove).
	Remove(ctx context.Context, userID uuid.UUID, contentType string, contentID uuid.UUID) (uint, error)
	CountsForContent(ctx context.Context, contentType string, contentID uuid.UUID) (map[string]int64, error)
	ListForContent(ctx context.Context, contentType string, contentID uuid.UUID) ([]entity.Like, error)
	UserLike(ctx context.Context, userID uuid.UUID, contentType string, contentID uuid.UUID) (*entity.Like, error)
}

type likeRepository struct {
	db *gorm.DB
}

func NewLikeRepository(db *gorm.DB) LikeRepository {
	return &likeRepository{db: db}
}

func (r *likeRepository) FindEmoji(ctx context.Context, id uint) (*entity.EmojiType, error) {
	var emoji entity.EmojiType
	if err := r.db.WithContext(ctx).First(&emoji, id).Error; err != nil {
		return nil, err
	}
	return &emoji, nil
}

func (r *likeRepository) Upsert(ctx context.Context, like *entity.Like) (uint, error) {
	// Find with a slice avoids GORM's "record not found" log noise.
	var existing []entity.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND content_type = ? AND content_id = ?",
			like.UserID, like.ContentType, like.ContentID).
		Limit(1).
		Find(&existing).Error
	if err != nil {
		return 0, err
	}

	if len(existing) == 0 {
		if err := r.db.WithContext(ctx).Create(like).Error; err != nil {
			return 0, err
		}
		return 0, nil
	}

	record := existing[0]
	oldEmojiID := record.EmojiID
	if record.EmojiID != like.EmojiID {
		record.EmojiID = like.EmojiID
		if err := r.db.WithContext(ctx).Save(&record).Error; err != nil {
			return 0, err
		}
	}
	like.ID = record.ID
	return oldEmojiID, nil
}

func (r *likeRepository) Remove(ctx context.Context, userID uuid.UUID, contentType string, contentID uuid.UUID) (uint, error) {
	var existing []entity.Like
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND content_type = ? AND content_id = ?",
			userID, contentType, contentID).
		Limit(1).
		Find(&existing).Error
	if err != nil {
		return 0, err
	}
	if len(existing) == 0 {
		return 0, nil
	}

	if err := r.db.WithContext(ctx).Delete(&existing[0]).Error; err != nil {
		return 0, err
	}
	return existing[0].EmojiID, nil
}

func (r *likeRepository) CountsForContent(ctx context.Context, contentType string, contentID uuid.UUID) (map[string]int64, error) {
	type result struct {
		Emoji string
		Count int64
	}
	var results []result

	err := r.db.WithContext(ctx).
		Model(&entity.Like{}).
		Select("emoji_types.emoji as emoji, count(*) as count").
		Joins("JOIN emoji_types ON emoji_types.id = likes.emoji_id").
		Where("likes.content_type = ? AND likes.content_id = ?", contentType, contentID).
		Group("emoji_types.emoji").
		Scan(&results).Error
	if err != nil {
		return nil, err
	}

	counts := make(map[string]int64)
	for _, res := range results {
		counts[res.Emoji] = res.Count
	}
	return counts, nil
}

func (r *likeRepository) ListForContent(ctx context.Context, contentType string, contentID uuid.UUID) ([]entity.Like, error) {
	var likes []entity.Like
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Emoji").
		Where("content_type = ? AND content_id = ?", contentType, contentID).
		Order("created_at ASC").
		Find(&likes).Error
	return likes, err
}

func (r *likeRepository) UserLike(ctx context.Context, userID uuid.UUID, contentType string, contentID uuid.UUID) (*entity.Like, error) {
	var likes []entity.Like
	err := r.db.WithContext(ctx).
		Preload("Emoji").
		Where("user_id = ? AND content_type = ? AND content_id = ?",
			userID, contentType, contentID).
		Limit(1).
		Find(&likes).Error
	if err != nil {
		return nil, err
	}
	if len(likes) == 0 {
		return nil, nil
	}
	return &likes[0], nil
}
