package server

import (
	"context"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/meilisearch/meilisearch-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/zidaf/inayaspace/internal/config"
	"github.com/zidaf/inayaspace/internal/middleware"
	"github.com/zidaf/inayaspace/pkg/mailer"
	"github.com/zidaf/inayaspace/pkg/storage"

	adminHttp "github.com/zidaf/inayaspace/internal/modules/admin/delivery/http"
	adminRepo "github.com/zidaf/inayaspace/internal/modules/admin/repository"
	adminService "github.com/zidaf/inayaspace/internal/modules/admin/service"

	attachmentHttp "github.com/zidaf/inayaspace/internal/modules/attachment/delivery/http"
	attachmentService "github.com/zidaf/inayaspace/internal/modules/attachment/service"

	commentHttp "github.com/zidaf/inayaspace/internal/modules/comment/delivery/http"
	commentRepo "github.com/zidaf/inayaspace/internal/modules/comment/repository"
	commentService "github.com/zidaf/inayaspace/internal/modules/comment/service"

	consultationHttp "github.com/zidaf/inayaspace/internal/modules/consultation/delivery/http"
	consultationRepo "github.com/zidaf/inayaspace/internal/modules/consultation/repository"
	consultationService "github.com/zidaf/inayaspace/internal/modules/consultation/service"

	eventHttp "github.com/zidaf/inayaspace/internal/modules/event/delivery/http"
	eventRepo "github.com/zidaf/inayaspace/internal/modules/event/repository"
	eventService "github.com/zidaf/inayaspace/internal/modules/event/service"

	journalHttp "github.com/zidaf/inayaspace/internal/modules/journal/delivery/http"
	journalRepo "github.com/zidaf/inayaspace/internal/modules/journal/repository"
	journalService "github.com/zidaf/inayaspace/internal/modules/journal/service"

	likeHttp "github.com/zidaf/inayaspace/internal/modules/like/delivery/http"
	likeRepo "github.com/zidaf/inayaspace/internal/modules/like/repository"
	likeService "github.com/zidaf/inayaspace/internal/modules/like/service"

	photoHttp "github.com/zidaf/inayaspace/internal/modules/photo/delivery/http"
	photoRepo "github.com/zidaf/inayaspace/internal/modules/photo/repository"
	photoService "github.com/zidaf/inayaspace/internal/modules/photo/service"

	searchHttp "github.com/zidaf/inayaspace/internal/modules/search/delivery/http"
	searchService "github.com/zidaf/inayaspace/internal/modules/search/service"

	sessionRepo "github.com/zidaf/inayaspace/internal/modules/session/repository"
	sessionService "github.com/zidaf/inayaspace/internal/modules/session/service"

	userHttp "github.com/zidaf/inayaspace/internal/modules/user/delivery/http"
	userRepo "github.com/zidaf/inayaspace/internal/modules/user/repository"
	userService "github.com/zidaf/inayaspace/internal/modules/user/service"

	videoHttp "github.com/zidaf/inayaspace/internal/modules/video/delivery/http"
	videoRepo "github.com/zidaf/inayaspace/internal/modules/video/repository"
	videoService "github.com/zidaf/inayaspace/internal/modules/video/service"
)

// Options carries the external dependencies. Redis, Meili, Storage and
// Mail may be nil; the matching features then degrade gracefully.
type Options struct {
	Config  *config.Config
	DB      *gorm.DB
	Redis   *redis.Client
	Meili   meilisearch.ServiceManager
	Storage storage.MediaStorage
	Mail    mailer.Mailer
	Logger  *zap.Logger
}

type Server struct {
	engine   *gin.Engine
	sessions sessionService.Service
	log      *zap.Logger
}

func New(opts Options) *Server {
	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	sessions := sessionService.NewService(
		sessionRepo.NewSessionRepository(opts.DB),
		opts.Config.SessionTTL,
		log,
	)
	authMw := middleware.NewAuthMiddleware(sessions)

	searchSvc := searchService.NewService(opts.Meili, log)
	searchHandler := searchHttp.NewSearchHandler(searchSvc)

	authSvc := userService.NewAuthService(userRepo.NewUserRepository(opts.DB), sessions, opts.Mail, log)
	authHandler := userHttp.NewAuthHandler(authSvc)

	photoHandler := photoHttp.NewPhotoHandler(
		photoService.NewService(photoRepo.NewPhotoRepository(opts.DB), searchSvc))
	videoHandler := videoHttp.NewVideoHandler(
		videoService.NewService(videoRepo.NewVideoRepository(opts.DB)))
	journalHandler := journalHttp.NewJournalHandler(
		journalService.NewService(journalRepo.NewJournalRepository(opts.DB), searchSvc))
	consultationHandler := consultationHttp.NewConsultationHandler(
		consultationService.NewService(consultationRepo.NewConsultationRepository(opts.DB)))
	eventHandler := eventHttp.NewEventHandler(
		eventService.NewService(eventRepo.NewEventRepository(opts.DB), searchSvc))

	commentHandler := commentHttp.NewCommentHandler(
		commentService.NewService(commentRepo.NewCommentRepository(opts.DB)))
	likeHandler := likeHttp.NewLikeHandler(
		likeService.NewService(likeRepo.NewLikeRepository(opts.DB), opts.Redis))

	adminHandler := adminHttp.NewAdminHandler(
		adminService.NewService(adminRepo.NewAdminRepository(opts.DB)))
	attachmentHandler := attachmentHttp.NewAttachmentHandler(
		attachmentService.NewService(opts.Storage, opts.Config.CloudinaryUploadFolder))

	router := gin.New()
	router.Use(gin.Recovery())
	setupCORS(router, opts.Config.AllowedOrigins)

	api := router.Group("/api")

	// Login and logout live on the same action-dispatched endpoint, so
	// /api/auth stays public and the service checks tokens itself.
	api.POST("/auth", authHandler.HandleAuth)

	protected := api.Group("")
	protected.Use(authMw.RequireAuth())
	{
		protected.POST("/change-password", authHandler.ChangePassword)

		protected.POST("/photos", photoHandler.Handle)
		protected.POST("/consultations", consultationHandler.Handle)

		protected.GET("/videos", videoHandler.List)
		protected.POST("/videos", videoHandler.Create)
		protected.PUT("/videos", videoHandler.Update)
		protected.DELETE("/videos", videoHandler.Delete)

		protected.GET("/journal", journalHandler.List)
		protected.POST("/journal", journalHandler.Create)
		protected.PUT("/journal", journalHandler.Update)
		protected.DELETE("/journal", journalHandler.Delete)

		protected.GET("/events", eventHandler.List)
		protected.POST("/events", eventHandler.Create)
		protected.PUT("/events", eventHandler.Update)
		protected.DELETE("/events", eventHandler.Delete)

		protected.GET("/comments", commentHandler.List)
		protected.POST("/comments", commentHandler.Create)
		protected.PUT("/comments", commentHandler.Update)
		protected.DELETE("/comments", commentHandler.Delete)

		protected.GET("/likes", likeHandler.Get)
		protected.POST("/likes", likeHandler.Like)
		protected.DELETE("/likes", likeHandler.Unlike)

		protected.GET("/search", searchHandler.Search)
		protected.POST("/upload", attachmentHandler.Upload)

		adminGroup := protected.Group("/admin")
		adminGroup.Use(authMw.RequireAdmin())
		{
			adminGroup.GET("", adminHandler.Get)
			adminGroup.POST("", adminHandler.Post)
		}
	}

	return &Server{engine: router, sessions: sessions, log: log}
}

// StartSessionSweeper reaps expired sessions on a fixed interval until
// ctx is cancelled.
func (s *Server) StartSessionSweeper(ctx context.Context, interval time.Duration) {
	if interval <= 0 {
		interval = 12 * time.Hour
	}
	go func() {
		ticker := time.NewTicker(interval)
		defer ticker.Stop()

		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				if _, err := s.sessions.ReapExpired(ctx); err != nil {
					s.log.Warn("session sweep failed", zap.Error(err))
				}
			}
		}
	}()
}

func (s *Server) Run(addr string) error {
	return s.engine.Run(addr)
}

// Engine exposes the router, mainly for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func setupCORS(router *gin.Engine, allowedOrigins string) {
	var origins []string
	for _, o := range strings.Split(allowedOrigins, ",") {
		if o = strings.TrimSpace(o); o != "" {
			origins = append(origins, o)
		}
	}
	if len(origins) == 0 {
		origins = []string{"http://localhost:3000"}
	}

	router.Use(cors.New(cors.Config{
		AllowOrigins:     origins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
}
