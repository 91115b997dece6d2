package like

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/internal/modules/like/dto"
	"github.com/zidaf/inayaspace/internal/modules/like/repository"
	"github.com/zidaf/inayaspace/pkg/apperror"
)

const countsTTL = 7 * 24 * time.Hour

type Service interface {
	Like(ctx context.Context, user *entity.User, req dto.LikeRequest) error
	Unlike(ctx context.Context, user *entity.User, req dto.UnlikeRequest) error
	GetLikes(ctx context.Context, user *entity.User, contentType string, contentID uuid.UUID) (*dto.LikesResponse, error)
}

type likeService struct {
	repo        repository.LikeRepository
	redisClient *redis.Client
}

// NewService builds the like service; redisClient may be nil, counts
// then always come from the database.
func NewService(repo repository.LikeRepository, redisClient *redis.Client) Service {
	return &likeService{repo: repo, redisClient: redisClient}
}

func countsKey(contentType string, contentID uuid.UUID) string {
	return fmt.Sprintf("counts:%s:%s", contentType, contentID.String())
}

func (s *likeService) Like(ctx context.Context, user *entity.User, req dto.LikeRequest) error {
	emoji, err := s.repo.FindEmoji(ctx, req.EmojiID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return fmt.Errorf("%w: unknown emoji", apperror.ErrBadRequest)
		}
		return err
	}

	like := &entity.Like{
		UserID:      user.ID,
		ContentType: req.ContentType,
		ContentID:   req.ContentID,
		EmojiID:     req.EmojiID,
	}
	oldEmojiID, err := s.repo.Upsert(ctx, like)
	if err != nil {
		return err
	}

	if s.redisClient == nil || oldEmojiID == req.EmojiID {
		return nil
	}

	pipe := s.redisClient.Pipeline()
	if oldEmojiID != 0 {
		if oldEmoji, err := s.repo.FindEmoji(ctx, oldEmojiID); err == nil {
			pipe.HIncrBy(ctx, countsKey(req.ContentType, req.ContentID), oldEmoji.Emoji, -1)
		}
	}
	pipe.HIncrBy(ctx, countsKey(req.ContentType, req.ContentID), emoji.Emoji, 1)
	if _, err := pipe.Exec(ctx); err != nil {
		// DB already consistent, cache will rebuild on next read
		zap.L().Warn("like count cache update failed", zap.Error(err))
	}
	return nil
}

func (s *likeService) Unlike(ctx context.Context, user *entity.User, req dto.UnlikeRequest) error {
	removedEmojiID, err := s.repo.Remove(ctx, user.ID, req.ContentType, req.ContentID)
	if err != nil {
		return err
	}

	if s.redisClient == nil || removedEmojiID == 0 {
		return nil
	}

	if emoji, err := s.repo.FindEmoji(ctx, removedEmojiID); err == nil {
		if err := s.redisClient.HIncrBy(ctx, countsKey(req.ContentType, req.ContentID), emoji.Emoji, -1).Err(); err != nil {
			zap.L().Warn("like count cache update failed", zap.Error(err))
		}
	}
	return nil
}

func (s *likeService) GetLikes(ctx context.Context, user *entity.User, contentType string, contentID uuid.UUID) (*dto.LikesResponse, error) {
	counts := make(map[string]int64)
	cacheHit := false

	if s.redisClient != nil {
		val, err := s.redisClient.HGetAll(ctx, countsKey(contentType, contentID)).Result()
		if err == nil && len(val) > 0 {
			cacheHit = true
			for k, v := range val {
				count, _ := strconv.ParseInt(v, 10, 64)
				if count > 0 {
					counts[k] = count
				}
			}
		}
	}

	if !cacheHit {
		dbCounts, err := s.repo.CountsForContent(ctx, contentType, contentID)
		if err != nil {
			return nil, err
		}
		counts = dbCounts

		if s.redisClient != nil {
			key := countsKey(contentType, contentID)
			pipe := s.redisClient.Pipeline()
			pipe.Del(ctx, key)
			for emoji, count := range counts {
				pipe.HSet(ctx, key, emoji, count)
			}
			pipe.Expire(ctx, key, countsTTL)
			_, _ = pipe.Exec(ctx)
		}
	}

	resp := &dto.LikesResponse{Counts: counts}
	if resp.Counts == nil {
		resp.Counts = make(map[string]int64)
	}

	rows, err := s.repo.ListForContent(ctx, contentType, contentID)
	if err != nil {
		return nil, err
	}
	resp.Likes = make([]dto.LikeInfo, 0, len(rows))
	for _, row := range rows {
		resp.Likes = append(resp.Likes, dto.LikeInfo{
			UserEmail: row.User.Email,
			UserType:  row.User.Role,
			Emoji:     row.Emoji.Emoji,
			CreatedAt: row.CreatedAt,
		})
	}

	userLike, err := s.repo.UserLike(ctx, user.ID, contentType, contentID)
	if err != nil {
		return nil, err
	}
	if userLike != nil {
		resp.UserHasLiked = true
		emoji := userLike.Emoji.Emoji
		resp.UserEmoji = &emoji
	}
	return resp, nil
}
