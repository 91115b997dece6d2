package main

import (
	"context"
	"log"
	"os"
	"strings"

	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/config"
	"github.com/zidaf/inayaspace/internal/entity"
	"github.com/zidaf/inayaspace/internal/server"
	"github.com/zidaf/inayaspace/pkg/database"
	"github.com/zidaf/inayaspace/pkg/mailer"
	"github.com/zidaf/inayaspace/pkg/storage"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logger, err := newLogger(cfg.AppEnv)
	if err != nil {
		log.Fatalf("failed to build logger: %v", err)
	}
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	db, err := database.Connect(cfg.DSN())
	if err != nil {
		logger.Fatal("database connection failed", zap.Error(err))
	}
	if err := migrate(db); err != nil {
		logger.Fatal("migration failed", zap.Error(err))
	}
	if err := seedEmojiTypes(db); err != nil {
		logger.Fatal("failed to seed emoji types", zap.Error(err))
	}
	if cfg.AppEnv == "development" {
		if err := seedFamilyUsers(db, logger); err != nil {
			logger.Fatal("failed to seed family users", zap.Error(err))
		}
	}

	opts := server.Options{
		Config: cfg,
		DB:     db,
		Logger: logger,
	}

	if cfg.RedisURL != "" {
		redisOpts, err := redis.ParseURL(cfg.RedisURL)
		if err != nil {
			logger.Fatal("invalid REDIS_URL", zap.Error(err))
		}
		opts.Redis = redis.NewClient(redisOpts)
	}

	if cfg.MeiliSearchHost != "" {
		host := cfg.MeiliSearchHost
		if !strings.HasPrefix(host, "http") {
			host = "http://" + host + ":7700"
		}
		opts.Meili = meilisearch.New(host, meilisearch.WithAPIKey(cfg.MeiliMasterKey))
	}

	if os.Getenv("CLOUDINARY_URL") != "" {
		mediaStorage, err := storage.NewCloudinaryStorage()
		if err != nil {
			logger.Fatal("failed to initialize cloudinary storage", zap.Error(err))
		}
		opts.Storage = mediaStorage
	}

	if cfg.SMTPHost != "" {
		opts.Mail = mailer.NewSMTPMailer(mailer.SMTPConfig{
			Host:     cfg.SMTPHost,
			Port:     cfg.SMTPPort,
			User:     cfg.SMTPUser,
			Pass:     cfg.SMTPPass,
			From:     cfg.MailFrom,
			FromName: cfg.MailName,
		})
	}

	srv := server.New(opts)
	srv.StartSessionSweeper(context.Background(), cfg.SessionSweepInterval)

	logger.Info("starting server", zap.String("port", cfg.Port), zap.String("env", cfg.AppEnv))
	if err := srv.Run(":" + cfg.Port); err != nil {
		logger.Fatal("server exited with error", zap.Error(err))
	}
}

func newLogger(appEnv string) (*zap.Logger, error) {
	if appEnv == "development" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}

func migrate(db *gorm.DB) error {
	return db.AutoMigrate(
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
	)
}

func seedEmojiTypes(db *gorm.DB) error {
	defaults := []entity.EmojiType{
		{Emoji: "❤️", Name: "heart"},
		{Emoji: "😍", Name: "love"},
		{Emoji: "😂", Name: "laugh"},
		{Emoji: "🥰", Name: "adore"},
		{Emoji: "👏", Name: "clap"},
	}

	for _, e := range defaults {
		var count int64
		if err := db.Model(&entity.EmojiType{}).
			Where("emoji = ?", e.Emoji).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			if err := db.Create(&e).Error; err != nil {
				return err
			}
		}
	}
	return nil
}

// seedFamilyUsers creates the dev accounts from SEED_* env vars so no
// credential ever lives in the source tree. Accounts with missing
// variables are skipped.
func seedFamilyUsers(db *gorm.DB, logger *zap.Logger) error {
	seeds := []struct {
		role     string
		emailVar string
		passVar  string
	}{
		{entity.RolePapa, "SEED_PAPA_EMAIL", "SEED_PAPA_PASSWORD"},
		{entity.RoleMaman, "SEED_MAMAN_EMAIL", "SEED_MAMAN_PASSWORD"},
		{entity.RoleAdmin, "SEED_ADMIN_EMAIL", "SEED_ADMIN_PASSWORD"},
	}

	for _, s := range seeds {
		email := os.Getenv(s.emailVar)
		password := os.Getenv(s.passVar)
		if email == "" || password == "" {
			continue
		}

		var count int64
		if err := db.Model(&entity.User{}).
			Where("email = ?", email).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			continue
		}

		hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
		if err != nil {
			return err
		}
		if err := db.Create(&entity.User{
			Email:        email,
			PasswordHash: string(hash),
			Role:         s.role,
		}).Error; err != nil {
			return err
		}
		logger.Info("seeded user", zap.String("role", s.role), zap.String("email", email))
	}
	return nil
}
