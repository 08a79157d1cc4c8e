package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config holds all server settings, loaded from the environment.
type Config struct {
	MongoURI      string `envconfig:"MONGO_URI" default:"mongodb://localhost:27017"`
	MongoDatabase string `envconfig:"MONGO_DB" default:"jeopardy"`
	RedisAddr     string `envconfig:"REDIS_ADDR" default:"localhost:6379"`
	HTTPPort      string `envconfig:"PORT" default:"8080"`

	JWTSecret string `envconfig:"JWT_SECRET" default:"super-secret-key-change-in-production"`

	// SessionTTL is the sliding expiration window for in-memory games.
	SessionTTL   time.Duration `envconfig:"SESSION_TTL" default:"1h"`
	SessionSweep time.Duration `envconfig:"SESSION_SWEEP" default:"1m"`

	// Content source settings for the seeding pipeline.
	DBPediaEndpoint string        `envconfig:"DBPEDIA_ENDPOINT" default:"https://dbpedia.org/sparql"`
	CandidateLimit  int           `envconfig:"CANDIDATE_LIMIT" default:"30"`
	PoolCacheTTL    time.Duration `envconfig:"POOL_CACHE_TTL" default:"24h"`

	// External collaborators invoked at game over.
	HighscoreURL     string `envconfig:"HIGHSCORE_URL" default:""`
	HighscoreUserKey string `envconfig:"HIGHSCORE_USER_KEY" default:""`
	SocialWebhookURL string `envconfig:"SOCIAL_WEBHOOK_URL" default:""`
}

// Load reads the configuration from the environment.
func Load() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}
