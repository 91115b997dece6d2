package dto

import (
	"time"

	"github.com/google/uuid"
)

type LikeRequest struct {
	ContentType string    `json:"content_type" binding:"required,oneof=photos videos journal consultations events"`
	ContentID   uuid.UUID `json:"content_id" binding:"required"`
	EmojiID     uint      `json:"emoji_id" binding:"required"`
}

type UnlikeRequest struct {
	ContentType string    `json:"content_type" binding:"required,oneof=photos videos journal consultations events"`
	ContentID   uuid.UUID `json:"content_id" binding:"required"`
}

// LikeInfo is one like joined with its author and emoji.
type LikeInfo struct {
	UserEmail string    `json:"email"`
	UserType  string    `json:"user_type"`
	Emoji     string    `json:"emoji"`
	CreatedAt time.Time `json:"created_at"`
}

// LikesResponse aggregates likes for one content item plus the
// calling user's own state.
type LikesResponse struct {
	Likes        []LikeInfo       `json:"likes"`
	Counts       map[string]int64 `json:"emoji_counts"`
	UserHasLiked bool             `json:"user_has_liked"`
	UserEmoji    *string          `json:"user_emoji,omitempty"`
}
