package main

import (
	"fmt"
	"log"
	"net/http"
	"time"

	"moonradar/internal/api"
	"moonradar/internal/coindata"
	"moonradar/internal/middleware"
	"moonradar/internal/repository"
	"moonradar/internal/repository/memory"
	"moonradar/internal/service"
	"moonradar/internal/session"
	"moonradar/pkg/logger"
	"go.uber.org/zap"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// storage is the full persistence surface, satisfied by both the
// Postgres repository and the in-memory one.
type storage interface {
	service.UserRepository
	service.WatchlistRepository
	service.InviteRepository
	Close() error
}

func main() {
	cfg, err := LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	err = logger.Initialize(cfg.LogLevel)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logger.Sync()
	zapLogger := logger.Logger()

	var repo storage
	switch cfg.Storage.Driver {
	case storageMemory:
		repo = memory.New()
		zapLogger.Info("Using in-memory storage")
	default:
		repo, err = repository.New(cfg.Database)
		if err != nil {
			zapLogger.Fatal("Failed to initialize repository", zap.Error(err))
		}
	}
	defer repo.Close()

	sessionTTL := time.Duration(cfg.Session.TTLHours) * time.Hour

	var sessions session.Store
	switch cfg.Session.Store {
	case sessionStoreRedis:
		sessions, err = session.NewRedisStore(cfg.Redis, sessionTTL)
		if err != nil {
			zapLogger.Fatal("Failed to initialize redis session store", zap.Error(err))
		}
	default:
		sessions = session.NewMemoryStore(sessionTTL)
	}

	coins, err := coindata.NewStaticProvider()
	if err != nil {
		zapLogger.Fatal("Failed to load coin dataset", zap.Error(err))
	}

	authService := service.NewAuthService(repo, repo)
	userService := service.NewUserService(repo, repo, cfg.Invite.BaseURL)
	watchlistService := service.NewWatchlistService(repo)

	sessionAuth := middleware.NewSessionAuth(sessions, cfg.Session.CookieName)
	cookie := api.SessionCookie{
		Name:   cfg.Session.CookieName,
		MaxAge: int(sessionTTL.Seconds()),
	}

	router := gin.New()
	router.Use(gin.Recovery())

	config := cors.DefaultConfig()
	// Cookies require credentialed CORS, which cannot be combined with
	// AllowAllOrigins.
	config.AllowOriginFunc = func(origin string) bool { return true }
	config.AllowMethods = []string{
		http.MethodHead,
		http.MethodGet,
		http.MethodPost,
		http.MethodPut,
		http.MethodPatch,
		http.MethodDelete,
	}
	config.AllowHeaders = []string{"*"}
	config.AllowCredentials = true
	config.MaxAge = 12 * time.Hour

	router.Use(cors.New(config))

	a := router.Group("/api")
	api.NewAuthRoutes(a, authService, sessions, cookie, sessionAuth)
	api.NewUserRoutes(a, userService, sessionAuth)
	api.NewWatchlistRoutes(a, watchlistService, sessionAuth)
	api.NewCoinRoutes(a, coins)

	addr := fmt.Sprintf("%s:%s", cfg.Server.Host, cfg.Server.Port)
	zapLogger.Info("Starting server", zap.String("addr", addr))
	if err := router.Run(addr); err != nil {
		zapLogger.Fatal("Failed to start server", zap.Error(err))
	}
}
