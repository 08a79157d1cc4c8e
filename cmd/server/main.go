package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jeopardy-server/internal/cache"
	"jeopardy-server/internal/config"
	"jeopardy-server/internal/repository"
	"jeopardy-server/internal/service"
	"jeopardy-server/internal/transport/rest"
	"jeopardy-server/internal/transport/ws"
)

func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx := context.Background()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	// MongoDB connection
	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer mongoClient.Disconnect(ctx)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := mongoClient.Ping(pingCtx, nil); err != nil {
		log.Fatal().Err(err).Msg("failed to ping MongoDB")
	}
	log.Info().Msg("connected to MongoDB")

	db := mongoClient.Database(cfg.MongoDatabase)

	// Redis connection
	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	if _, err := rdb.Ping(ctx).Result(); err != nil {
		log.Fatal().Err(err).Msg("failed to ping Redis")
	}
	log.Info().Msg("connected to Redis")

	// Repositories
	userRepo := repository.NewUserRepo(db)
	categoryRepo := repository.NewCategoryRepo(db)

	// Caches and the in-memory session store
	leaderboard := cache.NewLeaderboardCache(rdb)
	gameStore := cache.NewGameStore(cfg.SessionTTL, cfg.SessionSweep)
	defer gameStore.Close()

	// WebSocket hub
	wsHub := ws.NewHub()

	// External collaborators (nil when not configured; game over stays
	// best-effort either way)
	var highscore service.HighscoreClient
	if cfg.HighscoreURL != "" {
		highscore = service.NewSOAPHighscoreClient(cfg.HighscoreURL, cfg.HighscoreUserKey, log)
	}
	var social service.SocialClient
	if cfg.SocialWebhookURL != "" {
		social = service.NewWebhookSocialClient(cfg.SocialWebhookURL, log)
	}

	// Services
	authSvc := service.NewAuthService(userRepo, cfg.JWTSecret)
	evaluator := service.NewEvaluatorService()
	gameSvc := service.NewGameService(userRepo, categoryRepo, gameStore, evaluator,
		highscore, social, leaderboard, nil, log)
	gameSvc.SetBroadcaster(wsHub)

	router := rest.NewRouter(&rest.Container{
		AuthService: authSvc,
		GameService: gameSvc,
		Leaderboard: leaderboard,
		WSHub:       wsHub,
		Logger:      log,
	})

	srv := &http.Server{
		Addr:    ":" + cfg.HTTPPort,
		Handler: router,
	}

	go func() {
		log.Info().Str("port", cfg.HTTPPort).Msg("server starting")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("listen and serve")
		}
	}()

	// Wait for interrupt
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Info().Msg("shutting down server")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Fatal().Err(err).Msg("server forced to shutdown")
	}

	log.Info().Msg("server exited")
}
