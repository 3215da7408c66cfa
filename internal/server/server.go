package server

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/tuyoleni/nust-competion-api/config"
	"github.com/tuyoleni/nust-competion-api/internal/db"
	"github.com/tuyoleni/nust-competion-api/internal/handlers"
	"github.com/tuyoleni/nust-competion-api/internal/services"
	"github.com/tuyoleni/nust-competion-api/internal/storage"
	"github.com/tuyoleni/nust-competion-api/internal/store"
)

// Server wraps the HTTP server and router.
type Server struct {
	httpServer *http.Server
	router     *chi.Mux
	db         *sql.DB
}

// New constructs a Server with basic middleware and defaults.
func New(ctx context.Context, cfg config.Config) (*Server, error) {
	dbConn, err := db.Open(ctx, cfg)
	if err != nil {
		return nil, err
	}

	objects, err := newObjectStorage(ctx, cfg)
	if err != nil {
		_ = dbConn.Close()
		return nil, err
	}
	if err := objects.EnsureBucket(ctx); err != nil {
		_ = dbConn.Close()
		return nil, fmt.Errorf("ensure bucket: %w", err)
	}

	userRepo := store.NewUserRepository(dbConn)
	competitionRepo := store.NewCompetitionRepository(dbConn)
	teamRepo := store.NewTeamRepository(dbConn)
	registrationRepo := store.NewRegistrationRepository(dbConn)
	messageRepo := store.NewMessageRepository(dbConn)
	blogRepo := store.NewBlogRepository(dbConn)
	commentRepo := store.NewCommentRepository(dbConn)
	imageRepo := store.NewImageRepository(dbConn)

	userService := services.NewUserService(userRepo)
	competitionService := services.NewCompetitionService(competitionRepo)
	teamService := services.NewTeamService(teamRepo)
	registrationService := services.NewRegistrationService(registrationRepo)
	messageService := services.NewMessageService(messageRepo)
	blogService := services.NewBlogService(blogRepo, commentRepo)
	commentService := services.NewCommentService(commentRepo)
	imageService := services.NewImageService(imageRepo, objects)

	jwtSecret := strings.TrimSpace(cfg.JWT.Secret)
	if jwtSecret == "" {
		_ = dbConn.Close()
		return nil, errors.New("JWT_SECRET is required")
	}

	authMiddleware := handlers.RequireAuth(jwtSecret)

	router := chi.NewRouter()
	router.Use(
		middleware.RequestID,
		middleware.RealIP,
		middleware.Recoverer,
		middleware.Logger,
		middleware.Timeout(60*time.Second),
	)
	router.Get("/healthz", handlers.Healthz)
	router.Route("/api/v1/users", func(r chi.Router) {
		handlers.UserRouter(r, userService, jwtSecret, authMiddleware)
	})
	router.Route("/api/v1/competitions", func(r chi.Router) {
		handlers.CompetitionRouter(r, competitionService, authMiddleware)
	})
	router.Route("/api/v1/teams", func(r chi.Router) {
		handlers.TeamRouter(r, teamService, registrationService, authMiddleware)
	})
	router.Route("/api/v1/messages", func(r chi.Router) {
		handlers.MessageRouter(r, messageService)
	})
	router.Route("/api/v1/images", func(r chi.Router) {
		handlers.ImageRouter(r, imageService)
	})
	router.Route("/api/v1/blogs", func(r chi.Router) {
		handlers.BlogRouter(r, blogService)
	})
	router.Route("/api/v1/comments", func(r chi.Router) {
		handlers.CommentRouter(r, commentService)
	})

	port := cfg.ServerPort
	if port == 0 {
		port = 8080
	}

	httpServer := &http.Server{
		Addr:         fmt.Sprintf(":%d", port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	return &Server{
		httpServer: httpServer,
		router:     router,
		db:         dbConn,
	}, nil
}

func newObjectStorage(ctx context.Context, cfg config.Config) (*storage.Storage, error) {
	switch cfg.Storage.Backend {
	case "gcs":
		client, err := storage.NewGCSClient(ctx, cfg.Storage.GCS)
		if err != nil {
			return nil, fmt.Errorf("gcs client: %w", err)
		}
		return storage.NewStorage(client), nil
	default:
		client, err := storage.NewMinioClient(cfg.Storage.Minio)
		if err != nil {
			return nil, fmt.Errorf("minio client: %w", err)
		}
		return storage.NewStorage(client), nil
	}
}

// Router exposes the chi router for route registration.
func (s *Server) Router() *chi.Mux {
	return s.router
}

// Start runs the HTTP server.
func (s *Server) Start() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown attempts a graceful shutdown.
func (s *Server) Shutdown() error {
	if s.db != nil {
		_ = s.db.Close()
	}
	return s.httpServer.Close()
}
