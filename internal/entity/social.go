package entity

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// CommentMaxLength bounds comment bodies.
const CommentMaxLength = 150

type Comment struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_lookup,priority:3" json:"user_id"`
	User        User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ContentType string    `gorm:"size:20;not null;index:idx_comments_lookup,priority:1" json:"content_type"`
	ContentID   uuid.UUID `gorm:"type:uuid;not null;index:idx_comments_lookup,priority:2" json:"content_id"`
	Text        string    `gorm:"size:150;not null" json:"comment_text"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (c *Comment) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

type EmojiType struct {
	ID    uint   `gorm:"primaryKey" json:"id"`
	Emoji string `gorm:"size:10;uniqueIndex;not null" json:"emoji"`
	Name  string `gorm:"size:50;not null" json:"name"`
}

func (e *EmojiType) TableName() string {
	return "emoji_types"
}

// Like holds at most one row per (user, content_type, content_id);
// re-liking replaces the emoji, DELETE removes the row.
type Like struct {
	ID          uuid.UUID `gorm:"type:uuid;primaryKey" json:"id"`
	UserID      uuid.UUID `gorm:"type:uuid;not null;index:idx_likes_unique,unique,priority:1" json:"user_id"`
	User        User      `gorm:"constraint:OnDelete:CASCADE" json:"-"`
	ContentType string    `gorm:"size:20;not null;index:idx_likes_unique,unique,priority:2;index:idx_likes_lookup,priority:1" json:"content_type"`
	ContentID   uuid.UUID `gorm:"type:uuid;not null;index:idx_likes_unique,unique,priority:3;index:idx_likes_lookup,priority:2" json:"content_id"`
	EmojiID     uint      `gorm:"not null" json:"emoji_id"`
	Emoji       EmojiType `gorm:"foreignKey:EmojiID" json:"-"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`
}

func (l *Like) BeforeCreate(tx *gorm.DB) error {
	if l.ID == uuid.Nil {
		l.ID = uuid.New()
	}
	return nil
}
