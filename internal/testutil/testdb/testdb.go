package testdb

import (
	"testing"

	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/zidaf/inayaspace/internal/entity"
)

// Open returns an isolated in-memory database with the full schema and
// the default emoji set, torn down with the test.
func Open(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	// Every pooled connection to ":memory:" would get its own empty
	// database; keep the pool at one.
	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB: %v", err)
	}
	sqlDB.SetMaxOpenConns(1)

	if err := db.AutoMigrate(
		&entity.User{},
		&entity.Session{},
		&entity.Photo{},
		&entity.Video{},
		&entity.JournalEntry{},
		&entity.Consultation{},
		&entity.Event{},
		&entity.Comment{},
		&entity.EmojiType{},
		&entity.Like{},
		&entity.AppConfig{},
		&entity.AdminLog{},
	); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	emojis := []entity.EmojiType{
		{Emoji: "❤️", Name: "heart"},
		{Emoji: "😍", Name: "love"},
		{Emoji: "😂", Name: "laugh"},
	}
	if err := db.Create(&emojis).Error; err != nil {
		t.Fatalf("failed to seed emoji types: %v", err)
	}

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	return db
}
