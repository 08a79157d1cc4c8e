package main

import (
	"context"
	"os"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"jeopardy-server/internal/cache"
	"jeopardy-server/internal/config"
	"jeopardy-server/internal/model"
	"jeopardy-server/internal/repository"
	"jeopardy-server/internal/service"
)

// Seeds the question catalog from DBpedia and a pair of demo accounts.
// Safe to re-run: the catalog is rebuilt from scratch and candidate pools
// come from the Redis cache when warm.
func main() {
	log := zerolog.New(os.Stdout).With().Timestamp().Logger()
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("failed to load config")
	}

	mongoClient, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.MongoURI))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to MongoDB")
	}
	defer mongoClient.Disconnect(ctx)

	db := mongoClient.Database(cfg.MongoDatabase)
	categoryRepo := repository.NewCategoryRepo(db)
	userRepo := repository.NewUserRepo(db)

	rdb := redis.NewClient(&redis.Options{Addr: cfg.RedisAddr})
	defer rdb.Close()

	poolCache := cache.NewPoolCache(rdb, cfg.PoolCacheTTL)
	source := service.NewDBPediaClient(cfg.DBPediaEndpoint, cfg.CandidateLimit)
	generator := service.NewGeneratorService(nil)
	catalog := service.NewCatalogService(source, poolCache, generator, categoryRepo, log)

	if err := categoryRepo.DeleteAll(ctx); err != nil {
		log.Fatal().Err(err).Msg("failed to clear catalog")
	}

	name := model.LocalizedText{model.LocaleEN: "Movies", model.LocaleDE: "Filme"}
	topics := []service.TopicSpec{
		{Topic: "Alfred_Hitchcock", Value: 50},
		{Topic: "Tim_Burton", Value: 40},
		{Topic: "Martin_Scorsese", Value: 30},
		{Topic: "Christopher_Nolan", Value: 20},
		{Topic: "Steven_Spielberg", Value: 10},
	}

	category, err := catalog.BuildCategory(ctx, name, topics)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to build category")
	}
	log.Info().Str("category", category.ID).Int("questions", len(category.Questions)).Msg("catalog seeded")

	seedUsers(ctx, log, userRepo)
}

func seedUsers(ctx context.Context, log zerolog.Logger, users repository.UserRepo) {
	authSvc := service.NewAuthService(users, "seed-only")

	demo := []model.RegisterRequest{
		{Username: "admin", Password: "admin", FirstName: "Ad", LastName: "Min", Gender: model.GenderFemale, BirthDate: "1990-01-12"},
		{Username: "player", Password: "player", Gender: model.GenderMale},
	}
	for _, req := range demo {
		existing, err := users.GetByUsername(ctx, req.Username)
		if err != nil {
			log.Fatal().Err(err).Msg("failed to check user")
		}
		if existing != nil {
			continue
		}
		if _, err := authSvc.Register(ctx, req); err != nil {
			log.Fatal().Err(err).Str("username", req.Username).Msg("failed to seed user")
		}
		log.Info().Str("username", req.Username).Msg("user seeded")
	}
}
