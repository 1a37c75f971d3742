package main

import (
	"context"
	"database/sql"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"goparts/internal/access"
	intconfig "goparts/internal/config"
	router "goparts/internal/http"
	"goparts/internal/http/handlers"
	"goparts/internal/http/middleware"
	"goparts/internal/repositories"
	"goparts/internal/session"
	"goparts/internal/utils"
)

func main() {
	env := intconfig.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	logger, err := utils.NewLogger(env.AppEnv)
	if err != nil {
		panic("failed to initialize logger: " + err.Error())
	}
	defer func() { _ = logger.Sync() }()

	db, err := intconfig.ConnectDB(env.DSN())
	if err != nil {
		logger.Fatal("database unavailable", zap.Error(err))
	}
	defer db.Close()
	logger.Info("connected to MySQL", zap.String("host", env.DBHost), zap.String("database", env.DBName))

	backend, closeBackend := sessionBackend(env, logger)
	defer closeBackend()
	store := session.NewThrottled(backend, env.SessionWriteInterval, env.SessionReadInterval, logger)

	if env.JWTSecret == "" {
		logger.Warn("JWT_SECRET is empty, session tokens are decoded without signature verification")
	}

	hs := newHandlers(env, db, store, logger)
	r := router.NewRouter(env, hs, logger)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		logger.Info("server listening", zap.String("addr", env.AppAddr), zap.String("env", env.AppEnv))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server")

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server shutdown failed", zap.Error(err))
	}
	if err := store.Close(); err != nil {
		logger.Error("flushing session writes failed", zap.Error(err))
	}

	logger.Info("server stopped")
}

// sessionBackend picks the physical session store. The returned func releases it.
func sessionBackend(env intconfig.Env, logger *zap.Logger) (session.Store, func()) {
	if env.SessionBackend != "redis" {
		logger.Info("using in-memory session store")
		return session.NewMemoryStore(), func() {}
	}
	client, err := intconfig.NewRedisClient(env)
	if err != nil {
		logger.Fatal("redis unavailable", zap.Error(err))
	}
	logger.Info("using redis session store", zap.String("addr", env.RedisAddr))
	return session.NewRedisStore(client, "goparts:session", env.SessionTTL), func() { _ = client.Close() }
}

func newHandlers(env intconfig.Env, db *sql.DB, store session.Store, logger *zap.Logger) *handlers.Handlers {
	return &handlers.Handlers{
		DB:         db,
		Store:      store,
		Controller: access.NewController(access.NewJWTDecoder(env.JWTSecret), logger),
		Policy:     access.DefaultPolicy(),
		Resources:  repositories.ResourceRepository{DB: db},
		Orders:     repositories.OrderRepository{DB: db},
		Cookie: middleware.CookieConfig{
			Name:   "gp_session",
			Secure: env.CookieSecure,
			MaxAge: int(env.SessionTTL.Seconds()),
		},
		Neighbors: env.PaginationNeighbors,
		Logger:    logger,
	}
}
