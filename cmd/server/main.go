package main

import (
	"context"
	"errors"
	"flag"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/d60-Lab/microblog/internal/api/handler"
	"github.com/d60-Lab/microblog/internal/api/router"
	"github.com/d60-Lab/microblog/internal/cache"
	"github.com/d60-Lab/microblog/internal/config"
	"github.com/d60-Lab/microblog/internal/database"
	"github.com/d60-Lab/microblog/internal/repository"
	"github.com/d60-Lab/microblog/internal/service"
	"github.com/d60-Lab/microblog/pkg/logger"
	"github.com/d60-Lab/microblog/pkg/tracing"
)

func main() {
	configPath := flag.String("config", "", "path to config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		panic(err)
	}
	if err := logger.Init(cfg.Server.Mode); err != nil {
		panic(err)
	}
	defer logger.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{Dsn: cfg.SentryDSN}); err != nil {
			logger.Fatal("sentry init", zap.Error(err))
		}
		defer sentry.Flush(2 * time.Second)
	}

	if cfg.OTLPHost != "" {
		shutdown, err := tracing.Init(ctx, cfg.OTLPHost, "microblog")
		if err != nil {
			logger.Fatal("tracing init", zap.Error(err))
		}
		defer func() { _ = shutdown(context.Background()) }()
	}

	db, err := database.Open(cfg.Database)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       cfg.Redis.DB,
	})
	defer rdb.Close()

	users := repository.NewUserRepository(db)
	posts := repository.NewPostRepository(db)
	groups := repository.NewGroupRepository(db)
	comments := repository.NewCommentRepository(db)
	follows := repository.NewFollowRepository(db)

	postSvc := service.NewPostService(posts, groups, comments)
	commentSvc := service.NewCommentService(comments, posts)
	relSvc := service.NewRelationshipService(follows)
	feedSvc := service.NewFeedService(follows, posts)
	authSvc := service.NewAuthService(users, cfg.Auth.JWTSecret, cfg.Auth.TokenTTL)

	pages := cache.NewPageCache(rdb)
	h := handler.New(users, postSvc, commentSvc, relSvc, feedSvc, authSvc, pages, cfg.Cache.IndexTTL)

	srv := &http.Server{
		Addr:    cfg.Server.Addr,
		Handler: router.New(h, authSvc, cfg),
	}

	go func() {
		logger.Info("listening", zap.String("addr", cfg.Server.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("serve", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}
